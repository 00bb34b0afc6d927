package storage

import (
	"context"
	"fmt"

	"github.com/avtomag/loyalty/internal/models"
)

const (
	GetProgramStats = `SELECT
						   (SELECT COUNT(*) FROM CUSTOMERS WHERE balance > 0),
						   (SELECT COALESCE(SUM(lifetime_earned), 0) FROM CUSTOMERS),
						   (SELECT COALESCE(SUM(lifetime_redeemed), 0) FROM CUSTOMERS),
						   (SELECT COUNT(*) FROM REWARDS WHERE active),
						   (SELECT COUNT(*) FROM REDEMPTIONS);`
	GetRecentTransactions = `SELECT t.id, c.login, t.amount, t.kind, t.description, t.created_at
							 FROM TRANSACTIONS t
							 JOIN CUSTOMERS c ON c.id = t.customer_id
							 ORDER BY t.created_at DESC
							 LIMIT $1;`
)

type AdminDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAdminStorage(db *Database) AdminStorage {
	return &AdminDatabase{DB: db}
}

// GetProgramStats - сводные показатели программы одним запросом
func (s *AdminDatabase) GetProgramStats(ctx context.Context) (*models.ProgramStats, error) {
	var stats models.ProgramStats
	err := s.DB.Pool.QueryRow(ctx, GetProgramStats).Scan(
		&stats.CustomersWithBalance,
		&stats.TotalEarned,
		&stats.TotalRedeemed,
		&stats.ActiveRewards,
		&stats.TotalRedemptions,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get program stats: %w", err)
	}
	return &stats, nil
}

// GetRecentTransactions - последние операции вместе с логинами покупателей
func (s *AdminDatabase) GetRecentTransactions(ctx context.Context, limit int) ([]models.AdminTransaction, error) {
	rows, err := s.DB.Pool.Query(ctx, GetRecentTransactions, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.AdminTransaction
	for rows.Next() {
		var transaction models.AdminTransaction
		err := rows.Scan(
			&transaction.TransactionID,
			&transaction.Login,
			&transaction.Amount,
			&transaction.Kind,
			&transaction.Description,
			&transaction.CreatedAt,
		)
		if err != nil {
			return transactions, fmt.Errorf("failed scan transaction data: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}
