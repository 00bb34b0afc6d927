package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	// admin_id - логин администратора из токена, не UUID
	InsertTransaction = `INSERT INTO TRANSACTIONS (id, customer_id, amount, kind, description, order_number, reward_id, admin_id, expire_at, created_at)
						 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, '')::uuid, NULLIF($8, ''), $9, $10);`
	CreditBalance = `UPDATE CUSTOMERS
					 SET balance = balance + $1,
						 lifetime_earned = lifetime_earned + $1
					 WHERE id = $2;`
	// условное списание: при недостатке баллов строка не обновляется
	DebitBalance = `UPDATE CUSTOMERS
					SET balance = balance - $1,
						lifetime_redeemed = lifetime_redeemed + $1
					WHERE id = $2 AND balance >= $1;`
	GetTransactions = `SELECT id, customer_id, amount, kind, description,
							  COALESCE(order_number, ''), COALESCE(reward_id::text, ''), COALESCE(admin_id, ''),
							  expire_at, created_at
					   FROM TRANSACTIONS
					   WHERE customer_id = $1
					   ORDER BY created_at DESC
					   LIMIT $2 OFFSET $3;`
)

type LedgerDatabase struct {
	DB *Database
}

// Создание хранилища
func NewLedgerStorage(db *Database) LedgerStorage {
	return &LedgerDatabase{DB: db}
}

// AddEarning - запись о начислении баллов и обновление баланса покупателя в одной транзакции
func (s *LedgerDatabase) AddEarning(ctx context.Context, transaction models.TransactionData) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("Earning. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// начисление увеличивает баланс и накопленные баллы только при amount > 0
	if transaction.Amount > 0 {
		var result pgconn.CommandTag
		result, err = tx.Exec(ctx, CreditBalance, transaction.Amount, transaction.CustomerID)
		if err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		if result.RowsAffected() == 0 {
			err = ErrCustomerNotFound
			return err
		}
	}

	if err = s.insertTransaction(ctx, tx, transaction, transaction.Amount); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

// AddDeduction - запись о списании баллов и условное уменьшение баланса
// в одной транзакции. При недостатке баллов возвращает ErrInsufficientBalance,
// конкурирующее списание не может увести баланс в минус
func (s *LedgerDatabase) AddDeduction(ctx context.Context, transaction models.TransactionData) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("Deduction. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var result pgconn.CommandTag
	result, err = tx.Exec(ctx, DebitBalance, transaction.Amount, transaction.CustomerID)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if result.RowsAffected() == 0 {
		// либо покупателя нет, либо баллов не хватает
		if _, lookupErr := NewCustomersStorage(s.DB).GetCustomer(ctx, transaction.CustomerID); lookupErr != nil {
			err = lookupErr
			return err
		}
		err = ErrInsufficientBalance
		return err
	}

	// в журнал списание попадает с отрицательным знаком
	if err = s.insertTransaction(ctx, tx, transaction, -transaction.Amount); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *LedgerDatabase) insertTransaction(ctx context.Context, tx pgx.Tx, transaction models.TransactionData, amount int64) error {
	createdAt := transaction.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := tx.Exec(ctx, InsertTransaction,
		transaction.TransactionID,
		transaction.CustomerID,
		amount,
		transaction.Kind,
		transaction.Description,
		transaction.OrderNumber,
		transaction.RewardID,
		transaction.AdminID,
		transaction.ExpireAt,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetTransactions - история операций покупателя, новые записи первыми
func (s *LedgerDatabase) GetTransactions(ctx context.Context, customerID string, limit int, offset int) ([]models.TransactionData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetTransactions, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.TransactionData
	for rows.Next() {
		var transaction models.TransactionData
		err := rows.Scan(
			&transaction.TransactionID,
			&transaction.CustomerID,
			&transaction.Amount,
			&transaction.Kind,
			&transaction.Description,
			&transaction.OrderNumber,
			&transaction.RewardID,
			&transaction.AdminID,
			&transaction.ExpireAt,
			&transaction.CreatedAt,
		)
		if err != nil {
			return transactions, fmt.Errorf("failed scan transaction data: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}
