package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avtomag/loyalty/internal/config"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/network/router"
	"github.com/avtomag/loyalty/internal/services"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/avtomag/loyalty/internal/worker"
)

func Run(config config.Config, storage storage.Storage) {

	// сервис покупок используется и маршрутизатором, и воркером
	orders := services.NewOrdersClient(config.Orders.OrdersAddr)
	accrual := services.NewAccrual(storage.Settings, storage.Customers)
	purchases := services.NewPurchases(storage.Purchases, storage.Customers, accrual, orders)

	router := router.NewRouter(config, storage, purchases)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// Создание и запуск воркера
	worker := worker.NewPurchaseWorker(purchases, config.Orders)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	worker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
