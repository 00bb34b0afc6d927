package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/avtomag/loyalty/internal/helpers"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/services"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetAdminStatsHandler — сводная статистика программы лояльности
func GetAdminStatsHandler(s services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.GetAdminStats(r.Context())
		if err != nil {
			logger.Error("Failed to get admin stats:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetCustomersHandler — список покупателей с баллами для админки
func GetCustomersHandler(s services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		var minBalance *int64
		if v := r.URL.Query().Get("minBalance"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				http.Error(w, "Invalid minBalance", http.StatusBadRequest)
				return
			}
			minBalance = &n
		}
		level := r.URL.Query().Get("level")

		customers, err := s.GetCustomersWithPoints(r.Context(), minBalance, level, limit, offset)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownLevel):
				http.Error(w, "Unknown level", http.StatusBadRequest)
			default:
				logger.Error("Failed to get customers:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		if len(customers) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// AdjustPointsHandler — ручная корректировка баллов администратором
func AdjustPointsHandler(s services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных об администраторе
		adminID, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		customerID := chi.URLParam(r, "id")

		var req models.AdjustmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		transaction, err := s.ManualAdjustment(r.Context(), customerID, req.Points, req.Description, adminID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrZeroAdjustment):
				http.Error(w, "Zero points adjustment", http.StatusBadRequest)
			case errors.Is(err, storage.ErrCustomerNotFound):
				http.Error(w, "Customer not found", http.StatusNotFound)
			case errors.Is(err, services.ErrInsufficientPoints):
				http.Error(w, "Insufficient points", http.StatusPaymentRequired)
			default:
				logger.Error("Failed to adjust points:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		response := models.TransactionResponse{
			Amount:      transaction.Amount,
			Kind:        transaction.Kind,
			Description: transaction.Description,
			CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
