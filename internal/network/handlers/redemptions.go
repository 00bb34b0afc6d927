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
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func redemptionToResponse(redemption *models.RedemptionData) (models.RedemptionResponse, error) {
	var snapshot models.RewardSnapshot
	if err := json.Unmarshal(redemption.Snapshot, &snapshot); err != nil {
		return models.RedemptionResponse{}, err
	}
	item := models.RedemptionResponse{
		Code:       redemption.Code,
		PointCost:  redemption.PointCost,
		Reward:     snapshot,
		ExpireAt:   redemption.ExpireAt.Format(time.RFC3339),
		Used:       redemption.Used,
		RedeemedAt: redemption.CreatedAt.Format(time.RFC3339),
	}
	if redemption.UsedAt != nil {
		item.UsedAt = redemption.UsedAt.Format(time.RFC3339)
	}
	return item, nil
}

func writeRedemption(w http.ResponseWriter, redemption *models.RedemptionData, status int) {
	response, err := redemptionToResponse(redemption)
	if err != nil {
		logger.Error("Failed to decode reward snapshot:", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
		return
	}
}

// RedeemRewardHandler — обмен баллов на награду, выдаёт одноразовый код
func RedeemRewardHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		rewardID := chi.URLParam(r, "id")

		redemption, err := s.RedeemReward(r.Context(), username, rewardID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrRewardNotFound):
				http.Error(w, "Reward not found", http.StatusNotFound)
			case errors.Is(err, services.ErrInsufficientPoints):
				http.Error(w, "Insufficient points", http.StatusPaymentRequired)
			case errors.Is(err, services.ErrRewardInactive),
				errors.Is(err, services.ErrRewardExpired),
				errors.Is(err, services.ErrLevelTooLow),
				errors.Is(err, services.ErrUsageLimitReached),
				errors.Is(err, services.ErrCustomerLimitReached):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				logger.Error("Failed to redeem reward:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		writeRedemption(w, redemption, http.StatusOK)
	})
}

// GetRedemptionsHandler — список выданных покупателю кодов
func GetRedemptionsHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		limit, offset := parsePagination(r)
		redemptions, err := s.GetRedemptions(r.Context(), username, limit, offset)
		if err != nil {
			logger.Error("Failed to get redemptions:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(redemptions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.RedemptionResponse
		for i := range redemptions {
			item, err := redemptionToResponse(&redemptions[i])
			if err != nil {
				logger.Error("Failed to decode reward snapshot:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
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

// MarkUsedHandler — погашение одноразового кода на кассе
func MarkUsedHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")

		redemption, err := s.MarkUsed(r.Context(), code)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrRedemptionNotFound):
				http.Error(w, "Redemption not found", http.StatusNotFound)
			case errors.Is(err, services.ErrRedemptionUsed):
				http.Error(w, "Redemption code already used", http.StatusConflict)
			case errors.Is(err, services.ErrRedemptionExpired):
				http.Error(w, "Redemption code has expired", http.StatusGone)
			default:
				logger.Error("Failed to mark redemption used:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		writeRedemption(w, redemption, http.StatusOK)
	})
}
