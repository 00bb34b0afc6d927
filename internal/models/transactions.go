package models

import "time"

// Виды операций с баллами
const (
	TransactionEarnPurchase = "EARN_PURCHASE"
	TransactionEarnManual   = "EARN_MANUAL"
	TransactionEarnBonus    = "EARN_BONUS"
	TransactionRedeemReward = "REDEEM_REWARD"
	TransactionAdjustManual = "ADJUST_MANUAL"
	TransactionExpire       = "EXPIRE"
)

// TransactionData - модель операции с баллами. Записи журнала неизменяемы,
// корректировки выполняются новыми компенсирующими записями
type TransactionData struct {
	TransactionID string
	CustomerID    string
	Amount        int64
	Kind          string
	Description   string
	OrderNumber   string
	RewardID      string
	AdminID       string
	ExpireAt      *time.Time
	CreatedAt     time.Time
}

// TransactionMeta - модель необязательных ссылок операции (заказ, награда, администратор)
type TransactionMeta struct {
	OrderNumber string
	RewardID    string
	AdminID     string
	ExpireAt    *time.Time
}

// TransactionResponse - структура ответа с операцией по баллам
type TransactionResponse struct {
	Amount      int64  `json:"amount"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}
