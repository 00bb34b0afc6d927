package client

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Статусы заказа в сервисе заказов магазина
const (
	OrderStatusRegistered = "REGISTERED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusPaid       = "PAID"
	OrderStatusInvalid    = "INVALID"
	OrderStatusRefunded   = "REFUNDED"
)

// PaymentResponse - ответ сервиса заказов о статусе оплаты
type PaymentResponse struct {
	Order  string  `json:"order"`
	Status string  `json:"status"`
	Amount float64 `json:"amount,omitempty"`
}

type OrdersService interface {
	GetOrderPayment(ctx context.Context, orderNumber string) (float64, string, error)
}

var (
	ErrServiceUnavailable = errors.New("orders service unavailable")
	ErrOrderNotRegistered = errors.New("order not registered")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
