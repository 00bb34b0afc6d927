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

func rewardToResponse(reward models.RewardData) models.RewardResponse {
	discount, _ := reward.DiscountValue.Float64()
	item := models.RewardResponse{
		RewardID:      reward.RewardID,
		Name:          reward.Name,
		Description:   reward.Description,
		Type:          reward.Type,
		PointCost:     reward.PointCost,
		DiscountValue: discount,
		MinLevel:      reward.MinLevel,
		UsageLimit:    reward.UsageLimit,
		UsageCount:    reward.UsageCount,
		CustomerLimit: reward.CustomerLimit,
		Active:        reward.Active,
		Featured:      reward.Featured,
		SortOrder:     reward.SortOrder,
	}
	if reward.ExpireAt != nil {
		item.ExpireAt = reward.ExpireAt.Format(time.RFC3339)
	}
	return item
}

func writeRewards(w http.ResponseWriter, rewards []models.RewardData) {
	if len(rewards) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var response []models.RewardResponse
	for _, reward := range rewards {
		response = append(response, rewardToResponse(reward))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// GetAvailableRewardsHandler — витрина наград, доступных покупателю
func GetAvailableRewardsHandler(s services.RewardsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		limit, offset := parsePagination(r)
		rewards, err := s.GetAvailableRewards(r.Context(), username, limit, offset)
		if err != nil {
			logger.Error("Failed to get available rewards:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeRewards(w, rewards)
	})
}

// GetRewardsHandler — полный каталог наград для админки
func GetRewardsHandler(s services.RewardsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		filter := models.RewardsFilter{Limit: limit, Offset: offset}
		if v := r.URL.Query().Get("active"); v != "" {
			if active, err := strconv.ParseBool(v); err == nil {
				filter.Active = &active
			}
		}
		rewards, err := s.GetRewards(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to get rewards:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeRewards(w, rewards)
	})
}

// CreateRewardHandler — создание награды в каталоге
func CreateRewardHandler(s services.RewardsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.RewardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		reward, err := s.CreateReward(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidReward):
				http.Error(w, "Invalid reward", http.StatusBadRequest)
			default:
				logger.Error("Failed to create reward:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(rewardToResponse(*reward)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			return
		}
	})
}

// UpdateRewardHandler — изменение награды в каталоге
func UpdateRewardHandler(s services.RewardsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rewardID := chi.URLParam(r, "id")
		var req models.RewardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		reward, err := s.UpdateReward(r.Context(), rewardID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidReward):
				http.Error(w, "Invalid reward", http.StatusBadRequest)
			case errors.Is(err, storage.ErrRewardNotFound):
				http.Error(w, "Reward not found", http.StatusNotFound)
			default:
				logger.Error("Failed to update reward:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rewardToResponse(*reward)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// DeleteRewardHandler — удаление награды из каталога
func DeleteRewardHandler(s services.RewardsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rewardID := chi.URLParam(r, "id")
		err := s.DeleteReward(r.Context(), rewardID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrRewardNotFound):
				http.Error(w, "Reward not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrRewardInUse):
				http.Error(w, "Reward has redemptions", http.StatusConflict)
			default:
				logger.Error("Failed to delete reward:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
