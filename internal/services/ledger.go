package services

import (
	"context"
	"errors"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNegativePoints     = errors.New("points must not be negative")
	ErrInsufficientPoints = errors.New("insufficient points")
)

// LedgerService - единственный путь изменения баланса покупателя.
// Журнал операций только пополняется, исправления - компенсирующими записями
type LedgerService interface {
	Award(ctx context.Context, customerID string, points int64, kind string, description string, meta models.TransactionMeta) (*models.TransactionData, error)
	Deduct(ctx context.Context, customerID string, points int64, kind string, description string, meta models.TransactionMeta) (*models.TransactionData, error)
	GetCustomerStats(ctx context.Context, login string) (*models.CustomerStatsResponse, error)
	GetTransactions(ctx context.Context, login string, limit int, offset int) ([]models.TransactionData, error)
}

type Ledger struct {
	Storage   storage.LedgerStorage
	Customers storage.CustomersStorage
	Settings  storage.SettingsStorage
}

// Создание сервиса
func NewLedger(ledger storage.LedgerStorage, customers storage.CustomersStorage, settings storage.SettingsStorage) LedgerService {
	return &Ledger{Storage: ledger, Customers: customers, Settings: settings}
}

// Award начисляет баллы покупателю. Начисление и обновление баланса
// выполняются хранилищем атомарно
func (s *Ledger) Award(ctx context.Context, customerID string, points int64, kind string, description string, meta models.TransactionMeta) (*models.TransactionData, error) {
	if points < 0 {
		return nil, ErrNegativePoints
	}

	transaction := models.TransactionData{
		TransactionID: uuid.New().String(),
		CustomerID:    customerID,
		Amount:        points,
		Kind:          kind,
		Description:   description,
		OrderNumber:   meta.OrderNumber,
		RewardID:      meta.RewardID,
		AdminID:       meta.AdminID,
		ExpireAt:      meta.ExpireAt,
	}

	if err := s.Storage.AddEarning(ctx, transaction); err != nil {
		logger.Error("Failed to add earning", zap.Error(err))
		return nil, err
	}
	return &transaction, nil
}

// Deduct списывает баллы покупателя. При недостатке баллов возвращает
// ErrInsufficientPoints, конкурирующее списание не уводит баланс в минус
func (s *Ledger) Deduct(ctx context.Context, customerID string, points int64, kind string, description string, meta models.TransactionMeta) (*models.TransactionData, error) {
	if points <= 0 {
		return nil, ErrNegativePoints
	}

	transaction := models.TransactionData{
		TransactionID: uuid.New().String(),
		CustomerID:    customerID,
		Amount:        points,
		Kind:          kind,
		Description:   description,
		OrderNumber:   meta.OrderNumber,
		RewardID:      meta.RewardID,
		AdminID:       meta.AdminID,
		ExpireAt:      meta.ExpireAt,
	}

	if err := s.Storage.AddDeduction(ctx, transaction); err != nil {
		if errors.Is(err, storage.ErrInsufficientBalance) {
			return nil, ErrInsufficientPoints
		}
		logger.Error("Failed to add deduction", zap.Error(err))
		return nil, err
	}
	transaction.Amount = -points
	return &transaction, nil
}

// GetCustomerStats возвращает баланс, накопленные и списанные баллы,
// уровень покупателя и сколько осталось до следующего уровня
func (s *Ledger) GetCustomerStats(ctx context.Context, login string) (*models.CustomerStatsResponse, error) {
	customer, err := s.Customers.GetCustomerByLogin(ctx, login)
	if err != nil {
		logger.Error("Failed to get customer", zap.Error(err))
		return nil, err
	}

	settings, err := s.Settings.GetSettings(ctx)
	if err != nil {
		logger.Error("Failed to get settings", zap.Error(err))
		return nil, err
	}

	level := ClassifyLevel(customer.LifetimeEarned)
	multiplier, _ := settings.MultiplierFor(level).Float64()

	return &models.CustomerStatsResponse{
		Balance:          customer.Balance,
		LifetimeEarned:   customer.LifetimeEarned,
		LifetimeRedeemed: customer.LifetimeRedeemed,
		Level:            level,
		PointsToNext:     PointsToNextLevel(customer.LifetimeEarned),
		Multiplier:       multiplier,
	}, nil
}

// GetTransactions возвращает историю операций покупателя, новые записи первыми
func (s *Ledger) GetTransactions(ctx context.Context, login string, limit int, offset int) ([]models.TransactionData, error) {
	customer, err := s.Customers.GetCustomerByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrCustomerNotFound) {
			logger.Warn("Customer not found", login)
			return nil, err
		}
		logger.Error("Error getting customer", zap.Error(err))
		return nil, err
	}

	transactions, err := s.Storage.GetTransactions(ctx, customer.CustomerID, limit, offset)
	if err != nil {
		logger.Error("Failed to get transactions:", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
