package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsData - модель глобальных настроек программы лояльности (единственная запись)
type SettingsData struct {
	PointsPerUnit      decimal.Decimal
	MinPurchase        decimal.Decimal
	Active             bool
	BronzeMultiplier   decimal.Decimal
	SilverMultiplier   decimal.Decimal
	GoldMultiplier     decimal.Decimal
	PlatinumMultiplier decimal.Decimal
	UpdatedAt          time.Time
}

// MultiplierFor - возвращает множитель начисления для уровня лояльности.
// Нулевой множитель допустим и означает отсутствие начислений для уровня,
// для отрицательного (некорректная запись) используется 1.0
func (s *SettingsData) MultiplierFor(level string) decimal.Decimal {
	var multiplier decimal.Decimal
	switch level {
	case LevelBronze:
		multiplier = s.BronzeMultiplier
	case LevelSilver:
		multiplier = s.SilverMultiplier
	case LevelGold:
		multiplier = s.GoldMultiplier
	case LevelPlatinum:
		multiplier = s.PlatinumMultiplier
	}
	if multiplier.IsNegative() {
		return decimal.NewFromInt(1)
	}
	return multiplier
}

// DefaultSettings - настройки программы по умолчанию (создаются при первом чтении)
func DefaultSettings() SettingsData {
	one := decimal.NewFromInt(1)
	return SettingsData{
		PointsPerUnit:      one,
		MinPurchase:        decimal.Zero,
		Active:             true,
		BronzeMultiplier:   one,
		SilverMultiplier:   one,
		GoldMultiplier:     one,
		PlatinumMultiplier: one,
	}
}

// SettingsRequest - модель запроса обновления настроек, приходит извне
type SettingsRequest struct {
	PointsPerUnit      float64 `json:"points_per_unit"`
	MinPurchase        float64 `json:"min_purchase"`
	Active             bool    `json:"active"`
	BronzeMultiplier   float64 `json:"bronze_multiplier"`
	SilverMultiplier   float64 `json:"silver_multiplier"`
	GoldMultiplier     float64 `json:"gold_multiplier"`
	PlatinumMultiplier float64 `json:"platinum_multiplier"`
}

// SettingsResponse - структура ответа с настройками программы
type SettingsResponse struct {
	PointsPerUnit      float64 `json:"points_per_unit"`
	MinPurchase        float64 `json:"min_purchase"`
	Active             bool    `json:"active"`
	BronzeMultiplier   float64 `json:"bronze_multiplier"`
	SilverMultiplier   float64 `json:"silver_multiplier"`
	GoldMultiplier     float64 `json:"gold_multiplier"`
	PlatinumMultiplier float64 `json:"platinum_multiplier"`
	UpdatedAt          string  `json:"updated_at"`
}
