package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/avtomag/loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	InsertReward = `INSERT INTO REWARDS (id, name, description, type, point_cost, discount_value, min_level,
										usage_limit, customer_limit, expire_at, active, featured, sort_order)
					VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12, $13);`
	UpdateReward = `UPDATE REWARDS
					SET name = $2,
						description = $3,
						type = $4,
						point_cost = $5,
						discount_value = $6,
						min_level = NULLIF($7, ''),
						usage_limit = $8,
						customer_limit = $9,
						expire_at = $10,
						active = $11,
						featured = $12,
						sort_order = $13,
						updated_at = NOW()
					WHERE id = $1;`
	DeleteReward = `DELETE FROM REWARDS WHERE id = $1;`
	GetReward    = `SELECT id, name, description, type, point_cost, COALESCE(discount_value, 0), COALESCE(min_level, ''),
						   usage_limit, usage_count, customer_limit, expire_at, active, featured, sort_order,
						   created_at, updated_at
					FROM REWARDS WHERE id = $1;`
	GetRewards = `SELECT id, name, description, type, point_cost, COALESCE(discount_value, 0), COALESCE(min_level, ''),
						 usage_limit, usage_count, customer_limit, expire_at, active, featured, sort_order,
						 created_at, updated_at
				  FROM REWARDS
				  %s
				  ORDER BY featured DESC, sort_order, created_at
				  LIMIT $1 OFFSET $2;`
)

type RewardDatabase struct {
	DB *Database
}

// Создание хранилища
func NewRewardsStorage(db *Database) RewardsStorage {
	return &RewardDatabase{DB: db}
}

func (s *RewardDatabase) AddReward(ctx context.Context, reward models.RewardData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertReward,
		reward.RewardID,
		reward.Name,
		reward.Description,
		reward.Type,
		reward.PointCost,
		discountOrNil(reward.DiscountValue),
		reward.MinLevel,
		reward.UsageLimit,
		reward.CustomerLimit,
		reward.ExpireAt,
		reward.Active,
		reward.Featured,
		reward.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to add reward: %w", err)
	}
	return nil
}

// UpdateReward - изменение награды. Счётчик использований не перезаписывается
func (s *RewardDatabase) UpdateReward(ctx context.Context, reward models.RewardData) error {
	result, err := s.DB.Pool.Exec(ctx, UpdateReward,
		reward.RewardID,
		reward.Name,
		reward.Description,
		reward.Type,
		reward.PointCost,
		discountOrNil(reward.DiscountValue),
		reward.MinLevel,
		reward.UsageLimit,
		reward.CustomerLimit,
		reward.ExpireAt,
		reward.Active,
		reward.Featured,
		reward.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to update reward: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrRewardNotFound
	}
	return nil
}

// DeleteReward - удаление награды. Награда с выданными кодами защищена
// ограничением внешнего ключа
func (s *RewardDatabase) DeleteReward(ctx context.Context, rewardID string) error {
	result, err := s.DB.Pool.Exec(ctx, DeleteReward, rewardID)
	if err != nil {
		// код 23503 - на награду ссылаются выданные коды
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrRewardInUse
		}
		return fmt.Errorf("failed to delete reward: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrRewardNotFound
	}
	return nil
}

func (s *RewardDatabase) GetReward(ctx context.Context, rewardID string) (*models.RewardData, error) {
	reward, err := scanReward(s.DB.Pool.QueryRow(ctx, GetReward, rewardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}
	return reward, nil
}

func (s *RewardDatabase) GetRewards(ctx context.Context, filter models.RewardsFilter) ([]models.RewardData, error) {
	condition := ""
	if filter.Active != nil {
		if *filter.Active {
			condition = "WHERE active"
		} else {
			condition = "WHERE NOT active"
		}
	}

	rows, err := s.DB.Pool.Query(ctx, fmt.Sprintf(GetRewards, condition), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards: %w", err)
	}
	defer rows.Close()

	var rewards []models.RewardData
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return rewards, fmt.Errorf("failed scan reward data: %w", err)
		}
		rewards = append(rewards, *reward)
	}
	return rewards, rows.Err()
}

func scanReward(row pgx.Row) (*models.RewardData, error) {
	var reward models.RewardData
	err := row.Scan(
		&reward.RewardID,
		&reward.Name,
		&reward.Description,
		&reward.Type,
		&reward.PointCost,
		&reward.DiscountValue,
		&reward.MinLevel,
		&reward.UsageLimit,
		&reward.UsageCount,
		&reward.CustomerLimit,
		&reward.ExpireAt,
		&reward.Active,
		&reward.Featured,
		&reward.SortOrder,
		&reward.CreatedAt,
		&reward.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func discountOrNil(value decimal.Decimal) *decimal.Decimal {
	if value.IsZero() {
		return nil
	}
	return &value
}
