package storage

import (
	"context"
	"errors"

	"github.com/avtomag/loyalty/internal/models"
	"github.com/shopspring/decimal"
)

type SettingsStorage interface {
	GetSettings(ctx context.Context) (*models.SettingsData, error)
	UpdateSettings(ctx context.Context, settings models.SettingsData) error
}

type CustomersStorage interface {
	GetCustomer(ctx context.Context, customerID string) (*models.CustomerData, error)
	GetCustomerByLogin(ctx context.Context, login string) (*models.CustomerData, error)
	GetCustomersWithPoints(ctx context.Context, filter models.CustomersFilter) ([]models.CustomerData, error)
}

type LedgerStorage interface {
	AddEarning(ctx context.Context, transaction models.TransactionData) error
	AddDeduction(ctx context.Context, transaction models.TransactionData) error
	GetTransactions(ctx context.Context, customerID string, limit int, offset int) ([]models.TransactionData, error)
}

type RewardsStorage interface {
	AddReward(ctx context.Context, reward models.RewardData) error
	UpdateReward(ctx context.Context, reward models.RewardData) error
	DeleteReward(ctx context.Context, rewardID string) error
	GetReward(ctx context.Context, rewardID string) (*models.RewardData, error)
	GetRewards(ctx context.Context, filter models.RewardsFilter) ([]models.RewardData, error)
}

type RedemptionsStorage interface {
	AddRedemption(ctx context.Context, redemption models.RedemptionData, transaction models.TransactionData) error
	GetRedemption(ctx context.Context, code string) (*models.RedemptionData, error)
	GetRedemptions(ctx context.Context, customerID string, limit int, offset int) ([]models.RedemptionData, error)
	CountRedemptions(ctx context.Context, customerID string, rewardID string) (int64, error)
	MarkRedemptionUsed(ctx context.Context, code string) error
}

type PurchasesStorage interface {
	AddPurchase(ctx context.Context, purchase models.PurchaseData) error
	GetPurchase(ctx context.Context, orderNumber string) (*models.PurchaseData, error)
	GetPurchases(ctx context.Context, customerID string) ([]models.PurchaseData, error)
	ClaimPurchasesForProcessing(ctx context.Context, count int) ([]string, error)
	ProcessPurchase(ctx context.Context, orderNumber string, status string, amount decimal.Decimal, transaction *models.TransactionData) error
}

type AdminStorage interface {
	GetProgramStats(ctx context.Context) (*models.ProgramStats, error)
	GetRecentTransactions(ctx context.Context, limit int) ([]models.AdminTransaction, error)
}

type Storage struct {
	Settings    SettingsStorage
	Customers   CustomersStorage
	Ledger      LedgerStorage
	Rewards     RewardsStorage
	Redemptions RedemptionsStorage
	Purchases   PurchasesStorage
	Admin       AdminStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Settings:    NewSettingsStorage(db),
		Customers:   NewCustomersStorage(db),
		Ledger:      NewLedgerStorage(db),
		Rewards:     NewRewardsStorage(db),
		Redemptions: NewRedemptionsStorage(db),
		Purchases:   NewPurchasesStorage(db),
		Admin:       NewAdminStorage(db),
	}
}

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrRedemptionNotFound = errors.New("redemption not found")
	ErrPurchaseNotFound   = errors.New("purchase not found")

	ErrAlreadyExists       = errors.New("already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUsageLimitReached   = errors.New("usage limit reached")
	ErrRewardInUse         = errors.New("reward has redemptions")
)
