package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы наград
const (
	RewardTypeDiscount = "DISCOUNT"
	RewardTypeProduct  = "PRODUCT"
	RewardTypeService  = "SERVICE"
	RewardTypeGift     = "GIFT"
)

// RewardData - модель награды каталога
type RewardData struct {
	RewardID      string
	Name          string
	Description   string
	Type          string
	PointCost     int64
	DiscountValue decimal.Decimal
	MinLevel      string
	UsageLimit    *int64
	UsageCount    int64
	CustomerLimit *int64
	ExpireAt      *time.Time
	Active        bool
	Featured      bool
	SortOrder     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RewardsFilter - модель фильтра списка наград
type RewardsFilter struct {
	Active *bool
	Limit  int
	Offset int
}

// RewardRequest - модель создания/изменения награды, приходит извне
type RewardRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	PointCost     int64   `json:"point_cost"`
	DiscountValue float64 `json:"discount_value,omitempty"`
	MinLevel      string  `json:"min_level,omitempty"`
	UsageLimit    *int64  `json:"usage_limit,omitempty"`
	CustomerLimit *int64  `json:"customer_limit,omitempty"`
	ExpireAt      string  `json:"expire_at,omitempty"`
	Active        bool    `json:"active"`
	Featured      bool    `json:"featured"`
	SortOrder     int     `json:"sort_order"`
}

// RewardResponse - структура ответа с наградой
type RewardResponse struct {
	RewardID      string  `json:"reward_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	PointCost     int64   `json:"point_cost"`
	DiscountValue float64 `json:"discount_value,omitempty"`
	MinLevel      string  `json:"min_level,omitempty"`
	UsageLimit    *int64  `json:"usage_limit,omitempty"`
	UsageCount    int64   `json:"usage_count"`
	CustomerLimit *int64  `json:"customer_limit,omitempty"`
	ExpireAt      string  `json:"expire_at,omitempty"`
	Active        bool    `json:"active"`
	Featured      bool    `json:"featured"`
	SortOrder     int     `json:"sort_order"`
}
