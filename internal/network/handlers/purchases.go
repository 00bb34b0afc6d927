package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avtomag/loyalty/internal/helpers"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/services"
	"github.com/avtomag/loyalty/internal/validators"
	"go.uber.org/zap"
)

// RegisterPurchaseHandler — регистрация покупки для начисления баллов
func RegisterPurchaseHandler(s services.PurchasesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil || len(body) == 0 {
			logger.Warn("Invalid body:", zap.Error(err))
			http.Error(w, "Invalid body format", http.StatusBadRequest)
			return
		}
		defer func() {
			if err := r.Body.Close(); err != nil {
				logger.Error("Error to close body:", zap.Error(err))
			}
		}()

		orderNumber := strings.TrimSpace(string(body))

		if !validators.CheckOrderNumber(orderNumber) {
			logger.Warn("Invalid order number format", orderNumber)
			http.Error(w, "Invalid order number format", http.StatusUnprocessableEntity)
			return
		}

		err = s.RegisterPurchase(r.Context(), username, orderNumber)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPurchaseAlreadyUploaded):
				w.WriteHeader(http.StatusOK)
				return
			case errors.Is(err, services.ErrPurchaseUploadedByAnother):
				http.Error(w, "Order number already uploaded by another customer", http.StatusConflict)
				return
			default:
				logger.Error("Failed to register purchase:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusAccepted)
	})
}

// GetPurchasesHandler — получение списка покупок покупателя
func GetPurchasesHandler(s services.PurchasesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		purchases, err := s.GetPurchases(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get purchases:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(purchases) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.PurchaseResponse
		for _, purchase := range purchases {
			item := models.PurchaseResponse{
				OrderNumber: purchase.OrderNumber,
				Status:      purchase.Status,
				UploadedAt:  purchase.CreatedAt.Format(time.RFC3339),
			}
			if purchase.Status == models.PurchaseStatusProcessed {
				amount, _ := purchase.Amount.Float64()
				item.Amount = amount
				item.Points = purchase.Points
			}
			response = append(response, item)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
