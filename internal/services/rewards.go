package services

import (
	"context"
	"errors"
	"time"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidReward = errors.New("invalid reward")
)

type RewardsService interface {
	CreateReward(ctx context.Context, request models.RewardRequest) (*models.RewardData, error)
	UpdateReward(ctx context.Context, rewardID string, request models.RewardRequest) (*models.RewardData, error)
	DeleteReward(ctx context.Context, rewardID string) error
	GetRewards(ctx context.Context, filter models.RewardsFilter) ([]models.RewardData, error)
	GetAvailableRewards(ctx context.Context, login string, limit int, offset int) ([]models.RewardData, error)
}

type Rewards struct {
	Storage     storage.RewardsStorage
	Customers   storage.CustomersStorage
	Redemptions storage.RedemptionsStorage
}

// Создание сервиса
func NewRewards(rewards storage.RewardsStorage, customers storage.CustomersStorage, redemptions storage.RedemptionsStorage) RewardsService {
	return &Rewards{Storage: rewards, Customers: customers, Redemptions: redemptions}
}

// CreateReward добавляет награду в каталог
func (s *Rewards) CreateReward(ctx context.Context, request models.RewardRequest) (*models.RewardData, error) {
	reward, err := rewardFromRequest(request)
	if err != nil {
		return nil, err
	}
	reward.RewardID = uuid.New().String()

	if err := s.Storage.AddReward(ctx, *reward); err != nil {
		logger.Error("Failed to add reward", zap.Error(err))
		return nil, err
	}
	return s.Storage.GetReward(ctx, reward.RewardID)
}

// UpdateReward изменяет награду. Условия уже выданных кодов не меняются -
// они зафиксированы снимком при списании
func (s *Rewards) UpdateReward(ctx context.Context, rewardID string, request models.RewardRequest) (*models.RewardData, error) {
	reward, err := rewardFromRequest(request)
	if err != nil {
		return nil, err
	}
	reward.RewardID = rewardID

	if err := s.Storage.UpdateReward(ctx, *reward); err != nil {
		if !errors.Is(err, storage.ErrRewardNotFound) {
			logger.Error("Failed to update reward", zap.Error(err))
		}
		return nil, err
	}
	return s.Storage.GetReward(ctx, rewardID)
}

// DeleteReward удаляет награду из каталога
func (s *Rewards) DeleteReward(ctx context.Context, rewardID string) error {
	if err := s.Storage.DeleteReward(ctx, rewardID); err != nil {
		if !errors.Is(err, storage.ErrRewardNotFound) && !errors.Is(err, storage.ErrRewardInUse) {
			logger.Error("Failed to delete reward", zap.Error(err))
		}
		return err
	}
	return nil
}

// GetRewards возвращает каталог наград для админки
func (s *Rewards) GetRewards(ctx context.Context, filter models.RewardsFilter) ([]models.RewardData, error) {
	rewards, err := s.Storage.GetRewards(ctx, filter)
	if err != nil {
		logger.Error("Failed to get rewards", zap.Error(err))
		return nil, err
	}
	return rewards, nil
}

// GetAvailableRewards возвращает награды, доступные покупателю прямо сейчас:
// активные, не истёкшие, по карману, по уровню и в пределах лимитов
func (s *Rewards) GetAvailableRewards(ctx context.Context, login string, limit int, offset int) ([]models.RewardData, error) {
	customer, err := s.Customers.GetCustomerByLogin(ctx, login)
	if err != nil {
		logger.Error("Failed to get customer", zap.Error(err))
		return nil, err
	}
	level := ClassifyLevel(customer.LifetimeEarned)

	active := true
	rewards, err := s.Storage.GetRewards(ctx, models.RewardsFilter{Active: &active, Limit: limit, Offset: offset})
	if err != nil {
		logger.Error("Failed to get rewards", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	var available []models.RewardData
	for _, reward := range rewards {
		if reward.ExpireAt != nil && reward.ExpireAt.Before(now) {
			continue
		}
		if reward.PointCost > customer.Balance {
			continue
		}
		if reward.MinLevel != "" && LevelRank(level) < LevelRank(reward.MinLevel) {
			continue
		}
		if reward.UsageLimit != nil && reward.UsageCount >= *reward.UsageLimit {
			continue
		}
		if reward.CustomerLimit != nil {
			count, err := s.Redemptions.CountRedemptions(ctx, customer.CustomerID, reward.RewardID)
			if err != nil {
				logger.Error("Failed to count redemptions", zap.Error(err))
				return nil, err
			}
			if count >= *reward.CustomerLimit {
				continue
			}
		}
		available = append(available, reward)
	}
	return available, nil
}

func rewardFromRequest(request models.RewardRequest) (*models.RewardData, error) {
	if request.Name == "" || request.PointCost <= 0 {
		return nil, ErrInvalidReward
	}
	switch request.Type {
	case models.RewardTypeDiscount, models.RewardTypeProduct, models.RewardTypeService, models.RewardTypeGift:
	default:
		return nil, ErrInvalidReward
	}
	if request.MinLevel != "" && LevelRank(request.MinLevel) < 0 {
		return nil, ErrInvalidReward
	}

	reward := models.RewardData{
		Name:          request.Name,
		Description:   request.Description,
		Type:          request.Type,
		PointCost:     request.PointCost,
		DiscountValue: decimal.NewFromFloat(request.DiscountValue),
		MinLevel:      request.MinLevel,
		UsageLimit:    request.UsageLimit,
		CustomerLimit: request.CustomerLimit,
		Active:        request.Active,
		Featured:      request.Featured,
		SortOrder:     request.SortOrder,
	}

	if request.ExpireAt != "" {
		expireAt, err := time.Parse(time.RFC3339, request.ExpireAt)
		if err != nil {
			return nil, ErrInvalidReward
		}
		reward.ExpireAt = &expireAt
	}
	return &reward, nil
}
