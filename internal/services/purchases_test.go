package services

import (
	"context"
	"testing"
	"time"

	clientmocks "github.com/avtomag/loyalty/internal/client/mocks"
	"github.com/avtomag/loyalty/internal/config"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/avtomag/loyalty/internal/storage/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPurchasesService_RegisterPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPurchases := mocks.NewMockPurchasesStorage(ctrl)
	mockCustomers := mocks.NewMockCustomersStorage(ctrl)
	mockSettings := mocks.NewMockSettingsStorage(ctrl)
	mockOrders := clientmocks.NewMockOrdersService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	purchases := NewPurchases(mockPurchases, mockCustomers, NewAccrual(mockSettings, mockCustomers), mockOrders)

	customer := &models.CustomerData{CustomerID: "1", Login: "mda"}

	testCases := []struct {
		Name          string
		OrderNumber   string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:        "Error. Customer not found #1",
			OrderNumber: "123456",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(nil, storage.ErrCustomerNotFound)
			},
			ExpectedError: storage.ErrCustomerNotFound,
		},
		{
			Name:        "Error. Already uploaded by this customer #2",
			OrderNumber: "123456",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(customer, nil)
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "123456").Return(&models.PurchaseData{OrderNumber: "123456", CustomerID: "1"}, nil)
			},
			ExpectedError: ErrPurchaseAlreadyUploaded,
		},
		{
			Name:        "Error. Uploaded by another customer #3",
			OrderNumber: "123456",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(customer, nil)
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "123456").Return(&models.PurchaseData{OrderNumber: "123456", CustomerID: "2"}, nil)
			},
			ExpectedError: ErrPurchaseUploadedByAnother,
		},
		{
			Name:        "Success. #4",
			OrderNumber: "654321",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(customer, nil)
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "654321").Return(nil, storage.ErrPurchaseNotFound)
				mockPurchases.EXPECT().AddPurchase(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name:        "Error. Lost insert race to the same customer #5",
			OrderNumber: "654321",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(customer, nil)
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "654321").Return(nil, storage.ErrPurchaseNotFound)
				mockPurchases.EXPECT().AddPurchase(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "654321").Return(&models.PurchaseData{OrderNumber: "654321", CustomerID: "1"}, nil)
			},
			ExpectedError: ErrPurchaseAlreadyUploaded,
		},
		{
			Name:        "Error. Lost insert race to another customer #6",
			OrderNumber: "654321",
			SetupMocks: func() {
				mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(customer, nil)
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "654321").Return(nil, storage.ErrPurchaseNotFound)
				mockPurchases.EXPECT().AddPurchase(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "654321").Return(&models.PurchaseData{OrderNumber: "654321", CustomerID: "2"}, nil)
			},
			ExpectedError: ErrPurchaseUploadedByAnother,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := purchases.RegisterPurchase(ctx, "mda", tc.OrderNumber)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestPurchasesService_ProcessPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPurchases := mocks.NewMockPurchasesStorage(ctrl)
	mockCustomers := mocks.NewMockCustomersStorage(ctrl)
	mockSettings := mocks.NewMockSettingsStorage(ctrl)
	mockOrders := clientmocks.NewMockOrdersService(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	purchases := NewPurchases(mockPurchases, mockCustomers, NewAccrual(mockSettings, mockCustomers), mockOrders)

	purchase := &models.PurchaseData{OrderNumber: "123456", CustomerID: "1", Status: models.PurchaseStatusProcessing}
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
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Success. Paid order awards points #1",
			SetupMocks: func() {
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "123456").Return(purchase, nil)
				mockOrders.EXPECT().GetOrderPayment(gomock.Any(), "123456").Return(500.0, "PAID", nil)
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1", LifetimeEarned: 0}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
				mockPurchases.EXPECT().ProcessPurchase(gomock.Any(), "123456", models.PurchaseStatusProcessed, gomock.Any(), gomock.Not(gomock.Nil())).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Success. Below minimum purchase writes no transaction #2",
			SetupMocks: func() {
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "123456").Return(purchase, nil)
				mockOrders.EXPECT().GetOrderPayment(gomock.Any(), "123456").Return(50.0, "PAID", nil)
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "1").Return(&models.CustomerData{CustomerID: "1"}, nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(settings, nil)
				mockPurchases.EXPECT().ProcessPurchase(gomock.Any(), "123456", models.PurchaseStatusProcessed, gomock.Any(), gomock.Nil()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Success. Invalid order gets no points #3",
			SetupMocks: func() {
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "123456").Return(purchase, nil)
				mockOrders.EXPECT().GetOrderPayment(gomock.Any(), "123456").Return(0.0, "INVALID", nil)
				mockPurchases.EXPECT().ProcessPurchase(gomock.Any(), "123456", models.PurchaseStatusInvalid, gomock.Any(), gomock.Nil()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Success. Refunded order is terminal without points #4",
			SetupMocks: func() {
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "123456").Return(purchase, nil)
				mockOrders.EXPECT().GetOrderPayment(gomock.Any(), "123456").Return(0.0, "REFUNDED", nil)
				mockPurchases.EXPECT().ProcessPurchase(gomock.Any(), "123456", models.PurchaseStatusRefunded, gomock.Any(), gomock.Nil()).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name: "Success. Unpaid order stays in processing #5",
			SetupMocks: func() {
				mockPurchases.EXPECT().GetPurchase(gomock.Any(), "123456").Return(purchase, nil)
				mockOrders.EXPECT().GetOrderPayment(gomock.Any(), "123456").Return(0.0, "PROCESSING", nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := purchases.ProcessPurchase(ctx, "123456")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			}
		})
	}
}
