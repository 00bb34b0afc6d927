package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avtomag/loyalty/internal/config"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker(timeout time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "orders-service",
		Timeout: timeout, // по истечении пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// PurchaseWorker - фоновый воркер начисления баллов за покупки
type PurchaseWorker struct {
	Purchases    services.PurchasesService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewPurchaseWorker - конструктор обработчика покупок
func NewPurchaseWorker(purchases services.PurchasesService, cfg config.OrdersConfig) *PurchaseWorker {
	return &PurchaseWorker{
		Purchases:    purchases,
		Breaker:      InitCircuitBreaker(cfg.ProcessingTimeout),
		QuitChan:     make(chan struct{}),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *PurchaseWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *PurchaseWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *PurchaseWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("PurchaseWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch - обработка пачки покупок
func (w *PurchaseWorker) ProcessBatch(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	orderNumbers, err := w.Purchases.GetProcessingPurchases(ctx, w.BatchSize)

	if err != nil {
		logger.Error("error get purchases for processing", err)
		return
	}

	for _, orderNumber := range orderNumbers {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Purchases.ProcessPurchase(ctx, orderNumber)
		})

		if err != nil {
			logger.Error("Error purchase processing", err)
		}
	}
}
