package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avtomag/loyalty/internal/client"
	"github.com/avtomag/loyalty/internal/logger"
)

type OrdersClient struct {
	Client  *client.Client
	Limiter *client.RateLimiter
}

func NewOrdersClient(baseURL string) client.OrdersService {
	return &OrdersClient{
		Client:  client.NewClient(baseURL, &http.Client{}),
		Limiter: client.NewRateLimiter(),
	}
}

func (s *OrdersClient) GetOrderPayment(ctx context.Context, orderNumber string) (float64, string, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return 0, "", err
	}

	resp, err := s.Client.GetOrder(ctx, orderNumber)
	if err != nil {
		// проверка большого количеста запросов
		if rateLimitErr, ok := err.(*client.RateLimitError); ok {
			logger.Warn("Too many requests to orders service:", orderNumber)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return 0, client.OrderStatusProcessing, nil
		}
		return 0, client.OrderStatusInvalid, err
	}
	// проверяем возможные статусы
	if resp.Status != client.OrderStatusRegistered &&
		resp.Status != client.OrderStatusProcessing &&
		resp.Status != client.OrderStatusInvalid &&
		resp.Status != client.OrderStatusRefunded &&
		resp.Status != client.OrderStatusPaid {
		logger.Error("Undefined status request:", resp.Status)
		return 0, "", fmt.Errorf("undefined status request %s", resp.Status)
	}
	return resp.Amount, resp.Status, nil
}
