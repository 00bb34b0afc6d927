package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/services"
	"go.uber.org/zap"
)

func settingsToResponse(settings *models.SettingsData) models.SettingsResponse {
	pointsPerUnit, _ := settings.PointsPerUnit.Float64()
	minPurchase, _ := settings.MinPurchase.Float64()
	bronze, _ := settings.BronzeMultiplier.Float64()
	silver, _ := settings.SilverMultiplier.Float64()
	gold, _ := settings.GoldMultiplier.Float64()
	platinum, _ := settings.PlatinumMultiplier.Float64()
	return models.SettingsResponse{
		PointsPerUnit:      pointsPerUnit,
		MinPurchase:        minPurchase,
		Active:             settings.Active,
		BronzeMultiplier:   bronze,
		SilverMultiplier:   silver,
		GoldMultiplier:     gold,
		PlatinumMultiplier: platinum,
		UpdatedAt:          settings.UpdatedAt.Format(time.RFC3339),
	}
}

// GetSettingsHandler — получение настроек программы лояльности
func GetSettingsHandler(s services.SettingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := s.GetSettings(r.Context())
		if err != nil {
			logger.Error("Failed to get settings:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settingsToResponse(settings)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// UpdateSettingsHandler — обновление настроек программы лояльности
func UpdateSettingsHandler(s services.SettingsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.SettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		settings, err := s.UpdateSettings(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSettings):
				http.Error(w, "Invalid settings values", http.StatusBadRequest)
			default:
				logger.Error("Failed to update settings:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settingsToResponse(settings)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
