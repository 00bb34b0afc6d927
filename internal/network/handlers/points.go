package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avtomag/loyalty/internal/helpers"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/services"
	"github.com/avtomag/loyalty/internal/storage"
	"go.uber.org/zap"
)

// GetStatsHandler — получение баланса и уровня покупателя
func GetStatsHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		stats, err := l.GetCustomerStats(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrCustomerNotFound):
				http.Error(w, "Customer not found", http.StatusNotFound)
			default:
				logger.Error("Failed to get customer stats:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
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

// GetTransactionsHandler — получение истории операций покупателя
func GetTransactionsHandler(l services.LedgerService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		limit, offset := parsePagination(r)
		transactions, err := l.GetTransactions(r.Context(), username, limit, offset)
		if err != nil {
			logger.Error("Failed to get transactions:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(transactions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.TransactionResponse
		for _, t := range transactions {
			item := models.TransactionResponse{
				Amount:      t.Amount,
				Kind:        t.Kind,
				Description: t.Description,
				CreatedAt:   t.CreatedAt.Format(time.RFC3339),
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
