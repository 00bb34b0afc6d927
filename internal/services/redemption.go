package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

var (
	ErrRewardInactive       = errors.New("reward is not active")
	ErrRewardExpired        = errors.New("reward has expired")
	ErrLevelTooLow          = errors.New("customer level is too low")
	ErrUsageLimitReached    = errors.New("reward usage limit reached")
	ErrCustomerLimitReached = errors.New("customer redemption limit reached")
	ErrRedemptionUsed       = errors.New("redemption code already used")
	ErrRedemptionExpired    = errors.New("redemption code has expired")
)

const (
	// Алфавит кода: заглавные латинские буквы и цифры
	CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength   = 10
	// Срок действия выданного кода
	RedemptionTTL = 30 * 24 * time.Hour
	// Попытки выдачи при коллизии кода
	codeRetries = 3
)

type RedemptionService interface {
	RedeemReward(ctx context.Context, login string, rewardID string) (*models.RedemptionData, error)
	MarkUsed(ctx context.Context, code string) (*models.RedemptionData, error)
	GetRedemptions(ctx context.Context, login string, limit int, offset int) ([]models.RedemptionData, error)
}

type Redemption struct {
	Storage   storage.RedemptionsStorage
	Rewards   storage.RewardsStorage
	Customers storage.CustomersStorage
}

// Создание сервиса
func NewRedemption(redemptions storage.RedemptionsStorage, rewards storage.RewardsStorage, customers storage.CustomersStorage) RedemptionService {
	return &Redemption{Storage: redemptions, Rewards: rewards, Customers: customers}
}

// RedeemReward проверяет право покупателя на награду и выдаёт одноразовый код.
// Списание баллов, запись кода и счётчик использований меняются атомарно:
// отказ на любом шаге не оставляет частичных изменений
func (s *Redemption) RedeemReward(ctx context.Context, login string, rewardID string) (*models.RedemptionData, error) {
	customer, err := s.Customers.GetCustomerByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	reward, err := s.Rewards.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	if !reward.Active {
		return nil, ErrRewardInactive
	}
	if reward.ExpireAt != nil && reward.ExpireAt.Before(time.Now()) {
		return nil, ErrRewardExpired
	}
	if customer.Balance < reward.PointCost {
		return nil, ErrInsufficientPoints
	}
	level := ClassifyLevel(customer.LifetimeEarned)
	if reward.MinLevel != "" && LevelRank(level) < LevelRank(reward.MinLevel) {
		return nil, ErrLevelTooLow
	}
	if reward.UsageLimit != nil && reward.UsageCount >= *reward.UsageLimit {
		return nil, ErrUsageLimitReached
	}
	if reward.CustomerLimit != nil {
		count, err := s.Storage.CountRedemptions(ctx, customer.CustomerID, reward.RewardID)
		if err != nil {
			logger.Error("Failed to count redemptions", zap.Error(err))
			return nil, err
		}
		if count >= *reward.CustomerLimit {
			return nil, ErrCustomerLimitReached
		}
	}

	// снимок условий награды фиксируется в выданном коде
	discount, _ := reward.DiscountValue.Float64()
	snapshot, err := json.Marshal(models.RewardSnapshot{
		Name:          reward.Name,
		Description:   reward.Description,
		Type:          reward.Type,
		PointCost:     reward.PointCost,
		DiscountValue: discount,
		MinLevel:      reward.MinLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reward snapshot: %w", err)
	}

	var redemption *models.RedemptionData
	// коллизия кода крайне маловероятна, но возможна: повторяем выдачу
	// с новым кодом, не затирая чужой
	err = retry.Do(ctx, retry.WithMaxRetries(codeRetries, retry.NewConstant(time.Millisecond)), func(ctx context.Context) error {
		code, err := GenerateRedemptionCode()
		if err != nil {
			return err
		}

		candidate := models.RedemptionData{
			Code:       code,
			CustomerID: customer.CustomerID,
			RewardID:   reward.RewardID,
			PointCost:  reward.PointCost,
			Snapshot:   snapshot,
			ExpireAt:   time.Now().Add(RedemptionTTL),
			CreatedAt:  time.Now(),
		}
		transaction := models.TransactionData{
			TransactionID: uuid.New().String(),
			CustomerID:    customer.CustomerID,
			Amount:        reward.PointCost,
			Kind:          models.TransactionRedeemReward,
			Description:   fmt.Sprintf("Redeem reward: %s", reward.Name),
			RewardID:      reward.RewardID,
		}

		if err := s.Storage.AddRedemption(ctx, candidate, transaction); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				logger.Warn("Redemption code collision, retrying", code)
				return retry.RetryableError(err)
			}
			return err
		}
		redemption = &candidate
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientBalance):
			// конкурирующее списание успело раньше
			return nil, ErrInsufficientPoints
		case errors.Is(err, storage.ErrUsageLimitReached):
			return nil, ErrUsageLimitReached
		case errors.Is(err, storage.ErrAlreadyExists):
			logger.Error("Failed to issue unique redemption code", zap.Error(err))
			return nil, err
		default:
			logger.Error("Failed to redeem reward", zap.Error(err))
			return nil, err
		}
	}
	return redemption, nil
}

// MarkUsed отмечает код использованным ровно один раз.
// Повторный вызов или истёкший код - ошибка, код одноразовый
func (s *Redemption) MarkUsed(ctx context.Context, code string) (*models.RedemptionData, error) {
	redemption, err := s.Storage.GetRedemption(ctx, code)
	if err != nil {
		return nil, err
	}
	if redemption.Used {
		return nil, ErrRedemptionUsed
	}
	if redemption.ExpireAt.Before(time.Now()) {
		return nil, ErrRedemptionExpired
	}

	if err := s.Storage.MarkRedemptionUsed(ctx, code); err != nil {
		// конкурирующий вызов успел раньше
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrRedemptionUsed
		}
		logger.Error("Failed to mark redemption used", zap.Error(err))
		return nil, err
	}

	return s.Storage.GetRedemption(ctx, code)
}

// GetRedemptions возвращает выданные покупателю коды, новые первыми
func (s *Redemption) GetRedemptions(ctx context.Context, login string, limit int, offset int) ([]models.RedemptionData, error) {
	customer, err := s.Customers.GetCustomerByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	redemptions, err := s.Storage.GetRedemptions(ctx, customer.CustomerID, limit, offset)
	if err != nil {
		logger.Error("Failed to get redemptions:", zap.Error(err))
		return nil, err
	}
	return redemptions, nil
}

// GenerateRedemptionCode - случайный код из 10 символов алфавита A-Z0-9
func GenerateRedemptionCode() (string, error) {
	buffer := make([]byte, CodeLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("failed to generate redemption code: %w", err)
	}
	code := make([]byte, CodeLength)
	for i, b := range buffer {
		code[i] = CodeAlphabet[int(b)%len(CodeAlphabet)]
	}
	return string(code), nil
}
