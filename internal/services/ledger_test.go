package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avtomag/loyalty/internal/config"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/avtomag/loyalty/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLedgerService_Award(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedger := mocks.NewMockLedgerStorage(ctrl)
	mockCustomers := mocks.NewMockCustomersStorage(ctrl)
	mockSettings := mocks.NewMockSettingsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockLedger, mockCustomers, mockSettings)

	testCases := []struct {
		Name           string
		CustomerID     string
		Points         int64
		SetupMocks     func()
		ExpectedError  error
		ExpectedAmount int64
	}{
		{
			Name:          "Error. Negative points #1",
			CustomerID:    "1",
			Points:        -10,
			SetupMocks:    func() {},
			ExpectedError: ErrNegativePoints,
		},
		{
			Name:       "Error. Customer not found #2",
			CustomerID: "1",
			Points:     10,
			SetupMocks: func() {
				mockLedger.EXPECT().AddEarning(gomock.Any(), gomock.Any()).Return(storage.ErrCustomerNotFound)
			},
			ExpectedError: storage.ErrCustomerNotFound,
		},
		{
			Name:       "Success. Zero award is allowed #3",
			CustomerID: "1",
			Points:     0,
			SetupMocks: func() {
				mockLedger.EXPECT().AddEarning(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError:  nil,
			ExpectedAmount: 0,
		},
		{
			Name:       "Success. #4",
			CustomerID: "1",
			Points:     150,
			SetupMocks: func() {
				mockLedger.EXPECT().AddEarning(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError:  nil,
			ExpectedAmount: 150,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			transaction, err := ledger.Award(ctx, tc.CustomerID, tc.Points, models.TransactionEarnBonus, "bonus", models.TransactionMeta{})

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && transaction.Amount != tc.ExpectedAmount {
				t.Errorf("Expected amount '%d', got: '%d'", tc.ExpectedAmount, transaction.Amount)
			}
		})
	}
}

func TestLedgerService_Deduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedger := mocks.NewMockLedgerStorage(ctrl)
	mockCustomers := mocks.NewMockCustomersStorage(ctrl)
	mockSettings := mocks.NewMockSettingsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockLedger, mockCustomers, mockSettings)

	testCases := []struct {
		Name           string
		CustomerID     string
		Points         int64
		SetupMocks     func()
		ExpectedError  error
		ExpectedAmount int64
	}{
		{
			Name:          "Error. Zero deduction #1",
			CustomerID:    "1",
			Points:        0,
			SetupMocks:    func() {},
			ExpectedError: ErrNegativePoints,
		},
		{
			Name:       "Error. Insufficient points #2",
			CustomerID: "1",
			Points:     100,
			SetupMocks: func() {
				mockLedger.EXPECT().AddDeduction(gomock.Any(), gomock.Any()).Return(storage.ErrInsufficientBalance)
			},
			ExpectedError: ErrInsufficientPoints,
		},
		{
			Name:       "Error. Customer not found #3",
			CustomerID: "1",
			Points:     100,
			SetupMocks: func() {
				mockLedger.EXPECT().AddDeduction(gomock.Any(), gomock.Any()).Return(storage.ErrCustomerNotFound)
			},
			ExpectedError: storage.ErrCustomerNotFound,
		},
		{
			Name:       "Success. Amount recorded as negative #4",
			CustomerID: "1",
			Points:     100,
			SetupMocks: func() {
				mockLedger.EXPECT().AddDeduction(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError:  nil,
			ExpectedAmount: -100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			transaction, err := ledger.Deduct(ctx, tc.CustomerID, tc.Points, models.TransactionRedeemReward, "redeem", models.TransactionMeta{})

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && transaction.Amount != tc.ExpectedAmount {
				t.Errorf("Expected amount '%d', got: '%d'", tc.ExpectedAmount, transaction.Amount)
			}
		})
	}
}

func TestLedgerService_GetCustomerStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedger := mocks.NewMockLedgerStorage(ctrl)
	mockCustomers := mocks.NewMockCustomersStorage(ctrl)
	mockSettings := mocks.NewMockSettingsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ledger := NewLedger(mockLedger, mockCustomers, mockSettings)

	settings := &models.SettingsData{
		PointsPerUnit:      decimal.NewFromFloat(0.5),
		MinPurchase:        decimal.NewFromInt(100),
		Active:             true,
		BronzeMultiplier:   decimal.NewFromInt(1),
		SilverMultiplier:   decimal.NewFromFloat(1.5),
		GoldMultiplier:     decimal.NewFromInt(2),
		PlatinumMultiplier: decimal.NewFromInt(3),
	}

	testCases := []struct {
		Name          string
		Login         string
		SetupMocks    func()
		ExpectedError error
		ExpectedStats *models.CustomerStatsResponse
	}{
		{
			Name:  "Error. Customer not found #1",
			Login: "mda",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(nil, storage.ErrCustomerNotFound)
			},
			ExpectedError: storage.ErrCustomerNotFound,
			ExpectedStats: nil,
		},
		{
			Name:  "Error. Failed get settings #2",
			Login: "mda",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(&models.CustomerData{CustomerID: "1"}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(nil, errors.New("failed to get settings"))
			},
			ExpectedError: errors.New("failed to get settings"),
			ExpectedStats: nil,
		},
		{
			Name:  "Success. Silver customer #3",
			Login: "mda",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(&models.CustomerData{
					CustomerID: "1", Login: "mda", Balance: 700, LifetimeEarned: 1200, LifetimeRedeemed: 500,
				}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
			},
			ExpectedError: nil,
			ExpectedStats: &models.CustomerStatsResponse{
				Balance:          700,
				LifetimeEarned:   1200,
				LifetimeRedeemed: 500,
				Level:            models.LevelSilver,
				PointsToNext:     3800,
				Multiplier:       1.5,
			},
		},
		{
			Name:  "Success. Platinum has nothing above #4",
			Login: "mda",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(&models.CustomerData{
					CustomerID: "1", Login: "mda", Balance: 100, LifetimeEarned: 16000, LifetimeRedeemed: 15900,
				}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
			},
			ExpectedError: nil,
			ExpectedStats: &models.CustomerStatsResponse{
				Balance:          100,
				LifetimeEarned:   16000,
				LifetimeRedeemed: 15900,
				Level:            models.LevelPlatinum,
				PointsToNext:     0,
				Multiplier:       3,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			stats, err := ledger.GetCustomerStats(ctx, tc.Login)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedStats, stats)
			if len(diff) != 0 {
				t.Errorf("expected stats mismatch:\n %s", diff)
			}
		})
	}
}
