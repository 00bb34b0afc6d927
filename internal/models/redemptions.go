package models

import "time"

// RewardSnapshot - копия условий награды на момент списания.
// Последующие изменения награды не влияют на выданный код
type RewardSnapshot struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	PointCost     int64   `json:"point_cost"`
	DiscountValue float64 `json:"discount_value,omitempty"`
	MinLevel      string  `json:"min_level,omitempty"`
}

// RedemptionData - модель выданного кода на награду
type RedemptionData struct {
	Code       string
	CustomerID string
	RewardID   string
	PointCost  int64
	Snapshot   []byte
	ExpireAt   time.Time
	Used       bool
	UsedAt     *time.Time
	CreatedAt  time.Time
}

// RedemptionResponse - структура ответа с выданным кодом
type RedemptionResponse struct {
	Code       string         `json:"code"`
	PointCost  int64          `json:"point_cost"`
	Reward     RewardSnapshot `json:"reward"`
	ExpireAt   string         `json:"expire_at"`
	Used       bool           `json:"used"`
	UsedAt     string         `json:"used_at,omitempty"`
	RedeemedAt string         `json:"redeemed_at"`
}
