package models

import "time"

// ProgramStats - модель сводной статистики программы лояльности
type ProgramStats struct {
	CustomersWithBalance int64
	TotalEarned          int64
	TotalRedeemed        int64
	ActiveRewards        int64
	TotalRedemptions     int64
}

// AdminTransaction - модель операции с баллами вместе с покупателем
type AdminTransaction struct {
	TransactionID string
	Login         string
	Amount        int64
	Kind          string
	Description   string
	CreatedAt     time.Time
}

// AdminStatsResponse - структура ответа со сводной статистикой для админки
type AdminStatsResponse struct {
	CustomersWithBalance int64                      `json:"customers_with_balance"`
	TotalEarned          int64                      `json:"total_earned"`
	TotalRedeemed        int64                      `json:"total_redeemed"`
	ActiveRewards        int64                      `json:"active_rewards"`
	TotalRedemptions     int64                      `json:"total_redemptions"`
	RecentTransactions   []AdminTransactionResponse `json:"recent_transactions"`
}

// AdminTransactionResponse - структура ответа с последними операциями
type AdminTransactionResponse struct {
	Login       string `json:"login"`
	Amount      int64  `json:"amount"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// AdjustmentRequest - модель запроса ручной корректировки баллов
type AdjustmentRequest struct {
	Points      int64  `json:"points"`
	Description string `json:"description"`
}
