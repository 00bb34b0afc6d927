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
	"go.uber.org/zap"
)

const (
	InsertRedemption = `INSERT INTO REDEMPTIONS (code, customer_id, reward_id, point_cost, snapshot, expire_at, created_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7);`
	// условное увеличение счётчика: при достигнутом лимите строка не обновляется
	IncrementUsage = `UPDATE REWARDS
					  SET usage_count = usage_count + 1
					  WHERE id = $1 AND (usage_limit IS NULL OR usage_count < usage_limit);`
	GetRedemption = `SELECT code, customer_id, reward_id, point_cost, snapshot, expire_at, used, used_at, created_at
					 FROM REDEMPTIONS WHERE code = $1;`
	GetRedemptions = `SELECT code, customer_id, reward_id, point_cost, snapshot, expire_at, used, used_at, created_at
					  FROM REDEMPTIONS
					  WHERE customer_id = $1
					  ORDER BY created_at DESC
					  LIMIT $2 OFFSET $3;`
	CountRedemptions = `SELECT COUNT(*) FROM REDEMPTIONS WHERE customer_id = $1 AND reward_id = $2;`
	// код одноразовый: повторное использование не проходит по условию NOT used
	MarkRedemptionUsed = `UPDATE REDEMPTIONS
						  SET used = TRUE, used_at = NOW()
						  WHERE code = $1 AND NOT used;`
)

type RedemptionDatabase struct {
	DB *Database
}

// Создание хранилища
func NewRedemptionsStorage(db *Database) RedemptionsStorage {
	return &RedemptionDatabase{DB: db}
}

// AddRedemption - выдача кода на награду: списание баллов, запись в журнал,
// сохранение кода и увеличение счётчика использований награды в одной
// транзакции. Любая неудача откатывает всё целиком
func (s *RedemptionDatabase) AddRedemption(ctx context.Context, redemption models.RedemptionData, transaction models.TransactionData) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("Redemption. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Условно списываем баллы (конкурирующее списание получит отказ)
	var result pgconn.CommandTag
	result, err = tx.Exec(ctx, DebitBalance, transaction.Amount, transaction.CustomerID)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if result.RowsAffected() == 0 {
		err = ErrInsufficientBalance
		return err
	}

	// 2. Запись в журнал операций (со знаком минус)
	_, err = tx.Exec(ctx, InsertTransaction,
		transaction.TransactionID,
		transaction.CustomerID,
		-transaction.Amount,
		transaction.Kind,
		transaction.Description,
		transaction.OrderNumber,
		transaction.RewardID,
		transaction.AdminID,
		transaction.ExpireAt,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	// 3. Сохраняем выданный код со снимком условий награды
	_, err = tx.Exec(ctx, InsertRedemption,
		redemption.Code,
		redemption.CustomerID,
		redemption.RewardID,
		redemption.PointCost,
		redemption.Snapshot,
		redemption.ExpireAt,
		redemption.CreatedAt,
	)
	if err != nil {
		// Проверяем нарушение уникальности кода
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			err = ErrAlreadyExists
			return err
		}
		return fmt.Errorf("insert redemption: %w", err)
	}

	// 4. Условно увеличиваем счётчик использований награды
	result, err = tx.Exec(ctx, IncrementUsage, redemption.RewardID)
	if err != nil {
		return fmt.Errorf("update reward usage: %w", err)
	}
	if result.RowsAffected() == 0 {
		err = ErrUsageLimitReached
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *RedemptionDatabase) GetRedemption(ctx context.Context, code string) (*models.RedemptionData, error) {
	redemption, err := scanRedemption(s.DB.Pool.QueryRow(ctx, GetRedemption, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRedemptionNotFound
		}
		return nil, fmt.Errorf("failed to get redemption: %w", err)
	}
	return redemption, nil
}

// GetRedemptions - выданные коды покупателя, новые первыми
func (s *RedemptionDatabase) GetRedemptions(ctx context.Context, customerID string, limit int, offset int) ([]models.RedemptionData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetRedemptions, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []models.RedemptionData
	for rows.Next() {
		redemption, err := scanRedemption(rows)
		if err != nil {
			return redemptions, fmt.Errorf("failed scan redemption data: %w", err)
		}
		redemptions = append(redemptions, *redemption)
	}
	return redemptions, rows.Err()
}

// CountRedemptions - число списаний покупателя по конкретной награде
func (s *RedemptionDatabase) CountRedemptions(ctx context.Context, customerID string, rewardID string) (int64, error) {
	var count int64
	err := s.DB.Pool.QueryRow(ctx, CountRedemptions, customerID, rewardID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count redemptions: %w", err)
	}
	return count, nil
}

// MarkRedemptionUsed - одноразовая отметка об использовании кода.
// Повторный вызов возвращает ErrAlreadyExists
func (s *RedemptionDatabase) MarkRedemptionUsed(ctx context.Context, code string) error {
	result, err := s.DB.Pool.Exec(ctx, MarkRedemptionUsed, code)
	if err != nil {
		return fmt.Errorf("failed to mark redemption used: %w", err)
	}
	if result.RowsAffected() == 0 {
		// либо кода нет, либо он уже использован
		if _, err := s.GetRedemption(ctx, code); err != nil {
			return err
		}
		return ErrAlreadyExists
	}
	return nil
}

func scanRedemption(row pgx.Row) (*models.RedemptionData, error) {
	var redemption models.RedemptionData
	err := row.Scan(
		&redemption.Code,
		&redemption.CustomerID,
		&redemption.RewardID,
		&redemption.PointCost,
		&redemption.Snapshot,
		&redemption.ExpireAt,
		&redemption.Used,
		&redemption.UsedAt,
		&redemption.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &redemption, nil
}
