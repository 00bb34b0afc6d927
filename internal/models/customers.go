package models

// Уровни программы лояльности (по возрастанию)
const (
	LevelBronze   = "BRONZE"
	LevelSilver   = "SILVER"
	LevelGold     = "GOLD"
	LevelPlatinum = "PLATINUM"
)

// CustomerData - модель покупателя из хранилища
type CustomerData struct {
	CustomerID       string
	Login            string
	Balance          int64
	LifetimeEarned   int64
	LifetimeRedeemed int64
}

// CustomerStatsResponse - структура ответа с балансом и уровнем покупателя
type CustomerStatsResponse struct {
	Balance          int64   `json:"balance"`
	LifetimeEarned   int64   `json:"lifetime_earned"`
	LifetimeRedeemed int64   `json:"lifetime_redeemed"`
	Level            string  `json:"level"`
	PointsToNext     int64   `json:"points_to_next_level"`
	Multiplier       float64 `json:"multiplier"`
}

// CustomersFilter - модель фильтра списка покупателей для админки.
// Границы по накопленным баллам вычисляются сервисом из уровня
type CustomersFilter struct {
	MinBalance *int64
	MinEarned  *int64
	MaxEarned  *int64
	Limit      int
	Offset     int
}

// CustomerListItem - структура элемента списка покупателей для админки
type CustomerListItem struct {
	CustomerID       string `json:"customer_id"`
	Login            string `json:"login"`
	Balance          int64  `json:"balance"`
	LifetimeEarned   int64  `json:"lifetime_earned"`
	LifetimeRedeemed int64  `json:"lifetime_redeemed"`
	Level            string `json:"level"`
}
