package services

import (
	"context"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AccrualService interface {
	ComputePurchasePoints(ctx context.Context, customerID string, amount decimal.Decimal) (int64, error)
}

type Accrual struct {
	Settings  storage.SettingsStorage
	Customers storage.CustomersStorage
}

// Создание сервиса
func NewAccrual(settings storage.SettingsStorage, customers storage.CustomersStorage) AccrualService {
	return &Accrual{Settings: settings, Customers: customers}
}

// ComputePurchasePoints считает баллы за покупку: базовое начисление по курсу
// из настроек, затем множитель уровня покупателя. Начисления не производит
func (s *Accrual) ComputePurchasePoints(ctx context.Context, customerID string, amount decimal.Decimal) (int64, error) {
	customer, err := s.Customers.GetCustomer(ctx, customerID)
	if err != nil {
		logger.Error("Failed to get customer", zap.Error(err))
		return 0, err
	}

	settings, err := s.Settings.GetSettings(ctx)
	if err != nil {
		logger.Error("Failed to get settings", zap.Error(err))
		return 0, err
	}

	// программа выключена или сумма ниже порога - баллы не начисляются
	if !settings.Active || amount.LessThan(settings.MinPurchase) {
		return 0, nil
	}

	basePoints := amount.Mul(settings.PointsPerUnit).Floor()

	level := ClassifyLevel(customer.LifetimeEarned)
	multiplier := settings.MultiplierFor(level)

	return basePoints.Mul(multiplier).Floor().IntPart(), nil
}
