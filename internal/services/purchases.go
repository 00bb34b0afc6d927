package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avtomag/loyalty/internal/client"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPurchaseAlreadyUploaded   = errors.New("purchase already uploaded by this customer")
	ErrPurchaseUploadedByAnother = errors.New("purchase already uploaded by another customer")
)

type PurchasesService interface {
	RegisterPurchase(ctx context.Context, login string, orderNumber string) error
	GetPurchases(ctx context.Context, login string) ([]models.PurchaseData, error)
	GetProcessingPurchases(ctx context.Context, count int) ([]string, error)
	ProcessPurchase(ctx context.Context, orderNumber string) error
}

type Purchases struct {
	Storage   storage.PurchasesStorage
	Customers storage.CustomersStorage
	Accrual   AccrualService
	Orders    client.OrdersService
}

// Создание сервиса
func NewPurchases(purchases storage.PurchasesStorage, customers storage.CustomersStorage, accrual AccrualService, orders client.OrdersService) PurchasesService {
	return &Purchases{Storage: purchases, Customers: customers, Accrual: accrual, Orders: orders}
}

// RegisterPurchase регистрирует покупку для начисления баллов, проверяя,
// не была ли она уже зарегистрирована другим покупателем
func (s *Purchases) RegisterPurchase(ctx context.Context, login string, orderNumber string) error {
	customer, err := s.Customers.GetCustomerByLogin(ctx, login)
	if err != nil {
		return err
	}

	existing, err := s.Storage.GetPurchase(ctx, orderNumber)
	if err != nil && !errors.Is(err, storage.ErrPurchaseNotFound) {
		return err
	}

	if existing != nil {
		if existing.CustomerID == customer.CustomerID {
			return ErrPurchaseAlreadyUploaded
		}
		return ErrPurchaseUploadedByAnother
	}

	err = s.Storage.AddPurchase(ctx, models.PurchaseData{
		OrderNumber: orderNumber,
		CustomerID:  customer.CustomerID,
		Amount:      decimal.Zero,
		CreatedAt:   time.Now(),
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		// конкурирующая регистрация успела первой - смотрим, чья покупка
		existing, getErr := s.Storage.GetPurchase(ctx, orderNumber)
		if getErr != nil {
			return getErr
		}
		if existing.CustomerID == customer.CustomerID {
			return ErrPurchaseAlreadyUploaded
		}
		return ErrPurchaseUploadedByAnother
	}
	return err
}

// GetPurchases возвращает покупки покупателя с начисленными баллами
func (s *Purchases) GetPurchases(ctx context.Context, login string) ([]models.PurchaseData, error) {
	customer, err := s.Customers.GetCustomerByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	purchases, err := s.Storage.GetPurchases(ctx, customer.CustomerID)
	if err != nil {
		logger.Error("Failed to get purchases:", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}

// GetProcessingPurchases - захват пачки покупок для фоновой обработки
func (s *Purchases) GetProcessingPurchases(ctx context.Context, count int) ([]string, error) {
	return s.Storage.ClaimPurchasesForProcessing(ctx, count)
}

// ProcessPurchase запрашивает статус оплаты заказа у сервиса заказов и
// начисляет баллы за оплаченную покупку
func (s *Purchases) ProcessPurchase(ctx context.Context, orderNumber string) error {
	purchase, err := s.Storage.GetPurchase(ctx, orderNumber)
	if err != nil {
		return err
	}

	amount, status, err := s.Orders.GetOrderPayment(ctx, orderNumber)
	if err != nil {
		return err
	}

	switch status {
	case client.OrderStatusPaid:
		return s.processPaid(ctx, purchase, decimal.NewFromFloat(amount))
	case client.OrderStatusInvalid:
		// заказ отменён - баллов не будет
		return s.Storage.ProcessPurchase(ctx, orderNumber, models.PurchaseStatusInvalid, decimal.Zero, nil)
	case client.OrderStatusRefunded:
		// возврат заказа - терминальный статус без баллов
		return s.Storage.ProcessPurchase(ctx, orderNumber, models.PurchaseStatusRefunded, decimal.Zero, nil)
	default:
		// заказ ещё не оплачен, покупка остаётся в обработке
		return nil
	}
}

func (s *Purchases) processPaid(ctx context.Context, purchase *models.PurchaseData, amount decimal.Decimal) error {
	points, err := s.Accrual.ComputePurchasePoints(ctx, purchase.CustomerID, amount)
	if err != nil {
		return err
	}

	// нулевое начисление не создаёт записи в журнале
	var transaction *models.TransactionData
	if points > 0 {
		transaction = &models.TransactionData{
			TransactionID: uuid.New().String(),
			CustomerID:    purchase.CustomerID,
			Amount:        points,
			Kind:          models.TransactionEarnPurchase,
			Description:   fmt.Sprintf("Purchase %s", purchase.OrderNumber),
			OrderNumber:   purchase.OrderNumber,
		}
	}

	return s.Storage.ProcessPurchase(ctx, purchase.OrderNumber, models.PurchaseStatusProcessed, amount, transaction)
}
