package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr  string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"secret"`
	OrdersAddr  string `env:"ORDERS_SYSTEM_ADDRESS" envDefault:"http://localhost:8081"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// OrdersConfig модель настроек работы с сервисом заказов магазина
type OrdersConfig struct {
	OrdersAddr        string
	BatchSize         int
	PollInterval      time.Duration
	ProcessingTimeout time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	Orders OrdersConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		orders   = pflag.StringP("orders", "r", args.OrdersAddr, "Orders system address in a form host:port.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Orders: OrdersConfig{
			OrdersAddr:        *orders,
			BatchSize:         10,
			PollInterval:      5 * time.Second,
			ProcessingTimeout: 30 * time.Second,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Orders: OrdersConfig{
			OrdersAddr:        ":8081",
			BatchSize:         10,
			PollInterval:      5 * time.Second,
			ProcessingTimeout: 30 * time.Second,
		},
	}
}
