package services

import (
	"context"
	"errors"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrZeroAdjustment = errors.New("zero points adjustment")
	ErrUnknownLevel   = errors.New("unknown level")
)

const RecentTransactionsLimit = 20

type AdminService interface {
	GetAdminStats(ctx context.Context) (*models.AdminStatsResponse, error)
	GetCustomersWithPoints(ctx context.Context, minBalance *int64, level string, limit int, offset int) ([]models.CustomerListItem, error)
	ManualAdjustment(ctx context.Context, customerID string, points int64, description string, adminID string) (*models.TransactionData, error)
}

type Admin struct {
	Storage   storage.AdminStorage
	Customers storage.CustomersStorage
	Ledger    LedgerService
}

// Создание сервиса
func NewAdmin(admin storage.AdminStorage, customers storage.CustomersStorage, ledger LedgerService) AdminService {
	return &Admin{Storage: admin, Customers: customers, Ledger: ledger}
}

// GetAdminStats возвращает сводку программы и последние операции
func (s *Admin) GetAdminStats(ctx context.Context) (*models.AdminStatsResponse, error) {
	stats, err := s.Storage.GetProgramStats(ctx)
	if err != nil {
		logger.Error("Failed to get program stats", zap.Error(err))
		return nil, err
	}

	recent, err := s.Storage.GetRecentTransactions(ctx, RecentTransactionsLimit)
	if err != nil {
		logger.Error("Failed to get recent transactions", zap.Error(err))
		return nil, err
	}

	response := &models.AdminStatsResponse{
		CustomersWithBalance: stats.CustomersWithBalance,
		TotalEarned:          stats.TotalEarned,
		TotalRedeemed:        stats.TotalRedeemed,
		ActiveRewards:        stats.ActiveRewards,
		TotalRedemptions:     stats.TotalRedemptions,
	}
	for _, transaction := range recent {
		response.RecentTransactions = append(response.RecentTransactions, models.AdminTransactionResponse{
			Login:       transaction.Login,
			Amount:      transaction.Amount,
			Kind:        transaction.Kind,
			Description: transaction.Description,
			CreatedAt:   transaction.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return response, nil
}

// GetCustomersWithPoints возвращает покупателей с баллами, сортировка по
// убыванию баланса. Фильтр по уровню переводится в границы накопленных баллов
func (s *Admin) GetCustomersWithPoints(ctx context.Context, minBalance *int64, level string, limit int, offset int) ([]models.CustomerListItem, error) {
	filter := models.CustomersFilter{
		MinBalance: minBalance,
		Limit:      limit,
		Offset:     offset,
	}
	if level != "" {
		minEarned, maxEarned, ok := LevelBounds(level)
		if !ok {
			return nil, ErrUnknownLevel
		}
		filter.MinEarned = minEarned
		filter.MaxEarned = maxEarned
	}

	customers, err := s.Customers.GetCustomersWithPoints(ctx, filter)
	if err != nil {
		logger.Error("Failed to get customers", zap.Error(err))
		return nil, err
	}

	var items []models.CustomerListItem
	for _, customer := range customers {
		items = append(items, models.CustomerListItem{
			CustomerID:       customer.CustomerID,
			Login:            customer.Login,
			Balance:          customer.Balance,
			LifetimeEarned:   customer.LifetimeEarned,
			LifetimeRedeemed: customer.LifetimeRedeemed,
			Level:            ClassifyLevel(customer.LifetimeEarned),
		})
	}
	return items, nil
}

// ManualAdjustment - ручная корректировка баллов администратором.
// Положительная дельта начисляется, отрицательная списывается,
// нулевая отклоняется
func (s *Admin) ManualAdjustment(ctx context.Context, customerID string, points int64, description string, adminID string) (*models.TransactionData, error) {
	if points == 0 {
		return nil, ErrZeroAdjustment
	}

	meta := models.TransactionMeta{AdminID: adminID}
	if points > 0 {
		return s.Ledger.Award(ctx, customerID, points, models.TransactionEarnManual, description, meta)
	}
	return s.Ledger.Deduct(ctx, customerID, -points, models.TransactionAdjustManual, description, meta)
}
