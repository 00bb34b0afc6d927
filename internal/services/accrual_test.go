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
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAccrualService_ComputePurchasePoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSettings := mocks.NewMockSettingsStorage(ctrl)
	mockCustomers := mocks.NewMockCustomersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	accrual := NewAccrual(mockSettings, mockCustomers)

	baseSettings := func() *models.SettingsData {
		return &models.SettingsData{
			PointsPerUnit:      decimal.NewFromFloat(0.5),
			MinPurchase:        decimal.NewFromInt(100),
			Active:             true,
			BronzeMultiplier:   decimal.NewFromInt(1),
			SilverMultiplier:   decimal.NewFromFloat(1.5),
			GoldMultiplier:     decimal.NewFromInt(2),
			PlatinumMultiplier: decimal.NewFromInt(3),
		}
	}

	testCases := []struct {
		Name           string
		CustomerID     string
		Amount         decimal.Decimal
		SetupMocks     func()
		ExpectedError  error
		ExpectedPoints int64
	}{
		{
			Name:       "Error. Customer not found #1",
			CustomerID: "1",
			Amount:     decimal.NewFromInt(500),
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(nil, storage.ErrCustomerNotFound)
			},
			ExpectedError:  storage.ErrCustomerNotFound,
			ExpectedPoints: 0,
		},
		{
			Name:       "Error. Failed get settings #2",
			CustomerID: "1",
			Amount:     decimal.NewFromInt(500),
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1"}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(nil, errors.New("failed to get settings"))
			},
			ExpectedError:  errors.New("failed to get settings"),
			ExpectedPoints: 0,
		},
		{
			Name:       "Program inactive, no points #3",
			CustomerID: "1",
			Amount:     decimal.NewFromInt(500),
			SetupMocks: func() {
				settings := baseSettings()
				settings.Active = false
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1"}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
			},
			ExpectedError:  nil,
			ExpectedPoints: 0,
		},
		{
			Name:       "Below minimum purchase, no points #4",
			CustomerID: "1",
			Amount:     decimal.NewFromFloat(99.99),
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1"}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(baseSettings(), nil)
			},
			ExpectedError:  nil,
			ExpectedPoints: 0,
		},
		{
			Name:       "Base points rounded down for bronze #5",
			CustomerID: "1",
			Amount:     decimal.NewFromFloat(101.5),
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1", LifetimeEarned: 0}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(baseSettings(), nil)
			},
			ExpectedError:  nil,
			ExpectedPoints: 50,
		},
		{
			Name:       "Silver multiplier applied after base rounding #6",
			CustomerID: "1",
			Amount:     decimal.NewFromInt(101),
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1", LifetimeEarned: 2000}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(baseSettings(), nil)
			},
			ExpectedError:  nil,
			ExpectedPoints: 75,
		},
		{
			Name:       "Platinum multiplier #7",
			CustomerID: "1",
			Amount:     decimal.NewFromInt(200),
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1", LifetimeEarned: 20000}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(baseSettings(), nil)
			},
			ExpectedError:  nil,
			ExpectedPoints: 300,
		},
		{
			Name:       "Zero multiplier disables accrual for the level #8",
			CustomerID: "1",
			Amount:     decimal.NewFromInt(200),
			SetupMocks: func() {
				settings := baseSettings()
				settings.BronzeMultiplier = decimal.Zero
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1", LifetimeEarned: 0}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
			},
			ExpectedError:  nil,
			ExpectedPoints: 0,
		},
		{
			Name:       "Negative multiplier falls back to 1.0 #9",
			CustomerID: "1",
			Amount:     decimal.NewFromInt(200),
			SetupMocks: func() {
				settings := baseSettings()
				settings.BronzeMultiplier = decimal.NewFromInt(-1)
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1", LifetimeEarned: 0}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
			},
			ExpectedError:  nil,
			ExpectedPoints: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			points, err := accrual.ComputePurchasePoints(ctx, tc.CustomerID, tc.Amount)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if points != tc.ExpectedPoints {
				t.Errorf("Expected points '%d', got: '%d'", tc.ExpectedPoints, points)
			}
		})
	}
}
