package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	InsertPurchase = `INSERT INTO PURCHASES (order_number, customer_id, status, amount, points, retry_count, created_at, updated_at)
					  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
					  ON CONFLICT (order_number) DO NOTHING
					  RETURNING order_number;`
	GetPurchase = `SELECT order_number, customer_id, status, amount, points, created_at
				   FROM PURCHASES WHERE order_number = $1;`
	GetPurchases = `SELECT order_number, customer_id, status, amount, points, created_at
					FROM PURCHASES WHERE customer_id = $1
					ORDER BY created_at DESC;`
	ClaimPurchasesForProcessing = `UPDATE PURCHASES
								   SET status = 'PROCESSING',
									   retry_count = retry_count + 1,
									   updated_at = NOW()
								   WHERE order_number IN (
									   SELECT order_number FROM PURCHASES
									   WHERE status = 'NEW' OR (status = 'PROCESSING' AND retry_count < 3)
									   ORDER BY created_at
									   LIMIT $1
									   FOR UPDATE SKIP LOCKED
								   )
								   RETURNING order_number;`
	UpdatePurchaseStatus = `UPDATE PURCHASES
							SET status = $1,
								amount = $2,
								points = $3,
								updated_at = NOW()
							WHERE order_number = $4;`
)

type PurchaseDatabase struct {
	DB *Database
}

// Создание хранилища
func NewPurchasesStorage(db *Database) PurchasesStorage {
	return &PurchaseDatabase{DB: db}
}

func (s *PurchaseDatabase) AddPurchase(ctx context.Context, purchase models.PurchaseData) error {
	var prevNumber string
	createdAt := purchase.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	err := s.DB.Pool.QueryRow(ctx, InsertPurchase,
		purchase.OrderNumber,
		purchase.CustomerID,
		models.PurchaseStatusNew,
		purchase.Amount,
		0,
		0,
		createdAt,
		createdAt,
	).Scan(&prevNumber)

	if err == nil {
		return nil
	}
	// вставка не прошла по конфликту номера заказа
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}
	// Проверяем именно нарушение уникальности
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to add purchase: %w", err)
}

func (s *PurchaseDatabase) GetPurchase(ctx context.Context, orderNumber string) (*models.PurchaseData, error) {
	var purchase models.PurchaseData
	err := s.DB.Pool.QueryRow(ctx, GetPurchase, orderNumber).Scan(
		&purchase.OrderNumber,
		&purchase.CustomerID,
		&purchase.Status,
		&purchase.Amount,
		&purchase.Points,
		&purchase.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return &purchase, nil
}

func (s *PurchaseDatabase) GetPurchases(ctx context.Context, customerID string) ([]models.PurchaseData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetPurchases, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.PurchaseData
	for rows.Next() {
		var purchase models.PurchaseData
		err := rows.Scan(
			&purchase.OrderNumber,
			&purchase.CustomerID,
			&purchase.Status,
			&purchase.Amount,
			&purchase.Points,
			&purchase.CreatedAt,
		)
		if err != nil {
			return purchases, fmt.Errorf("failed scan purchase data: %w", err)
		}
		purchases = append(purchases, purchase)
	}
	return purchases, rows.Err()
}

// ClaimPurchasesForProcessing - захват пачки покупок для обработки воркером.
// Блокировка строк с SKIP LOCKED исключает двойную обработку соседними воркерами
func (s *PurchaseDatabase) ClaimPurchasesForProcessing(ctx context.Context, count int) ([]string, error) {
	rows, err := s.DB.Pool.Query(ctx, ClaimPurchasesForProcessing, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim purchases: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var orderNumber string
		if err := rows.Scan(&orderNumber); err != nil {
			return numbers, fmt.Errorf("failed scan order number: %w", err)
		}
		numbers = append(numbers, orderNumber)
	}
	return numbers, rows.Err()
}

// ProcessPurchase - итог обработки покупки: новый статус, сумма и начисленные
// баллы вместе с записью в журнал и обновлением баланса в одной транзакции.
// Нулевое начисление (transaction == nil) записей в журнал не создаёт
func (s *PurchaseDatabase) ProcessPurchase(ctx context.Context, orderNumber string, status string, amount decimal.Decimal, transaction *models.TransactionData) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("ProcessPurchase. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var points int64
	if transaction != nil {
		points = transaction.Amount
	}

	// Обновляем статус покупки и начисление
	_, err = tx.Exec(ctx, UpdatePurchaseStatus, status, amount, points, orderNumber)
	if err != nil {
		return fmt.Errorf("failed to update purchase status: %w", err)
	}

	// Обновляем баланс и пишем операцию (только если есть начисление)
	if transaction != nil && transaction.Amount > 0 {
		_, err = tx.Exec(ctx, CreditBalance, transaction.Amount, transaction.CustomerID)
		if err != nil {
			return fmt.Errorf("failed to update customer balance: %w", err)
		}
		_, err = tx.Exec(ctx, InsertTransaction,
			transaction.TransactionID,
			transaction.CustomerID,
			transaction.Amount,
			transaction.Kind,
			transaction.Description,
			transaction.OrderNumber,
			transaction.RewardID,
			transaction.AdminID,
			transaction.ExpireAt,
			time.Now(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ProcessPurchase. Commit failed: %w", err)
	}
	return nil
}
