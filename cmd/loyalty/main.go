package main

import (
	"context"
	"fmt"

	"github.com/avtomag/loyalty/internal/app"
	"github.com/avtomag/loyalty/internal/config"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// подключение к БД и миграции
	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		panic(fmt.Sprintf("can't create database: %s ", err.Error()))
	}
	defer database.Close()
	if err := database.Initialize(context.Background()); err != nil {
		panic(fmt.Sprintf("can't initialize database: %s ", err.Error()))
	}
	// запуск сервиса
	app.Run(config, storage.NewStorage(database))
}
