package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы покупок
const (
	PurchaseStatusNew        = "NEW"
	PurchaseStatusProcessing = "PROCESSING"
	PurchaseStatusProcessed  = "PROCESSED"
	PurchaseStatusInvalid    = "INVALID"
	PurchaseStatusRefunded   = "REFUNDED"
)

// PurchaseData - модель зарегистрированной покупки
type PurchaseData struct {
	OrderNumber string
	CustomerID  string
	Status      string
	Amount      decimal.Decimal
	Points      int64
	CreatedAt   time.Time
}

// PurchaseResponse - структура ответа с покупкой и начисленными баллами
type PurchaseResponse struct {
	OrderNumber string  `json:"order"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount,omitempty"`
	Points      int64   `json:"points,omitempty"`
	UploadedAt  string  `json:"uploaded_at"`
}
