package services

import (
	"context"
	"testing"
	"time"

	"github.com/avtomag/loyalty/internal/config"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestRewardsService_CreateReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRewards := mocks.NewMockRewardsStorage(ctrl)
	mockCustomers := mocks.NewMockCustomersStorage(ctrl)
	mockRedemptions := mocks.NewMockRedemptionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	rewards := NewRewards(mockRewards, mockCustomers, mockRedemptions)

	testCases := []struct {
		Name          string
		Request       models.RewardRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Empty name #1",
			Request:       models.RewardRequest{PointCost: 100, Type: models.RewardTypeDiscount},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidReward,
		},
		{
			Name:          "Error. Non-positive point cost #2",
			Request:       models.RewardRequest{Name: "Oil change", PointCost: 0, Type: models.RewardTypeService},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidReward,
		},
		{
			Name:          "Error. Unknown type #3",
			Request:       models.RewardRequest{Name: "Oil change", PointCost: 100, Type: "COUPON"},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidReward,
		},
		{
			Name:          "Error. Unknown minimal level #4",
			Request:       models.RewardRequest{Name: "Oil change", PointCost: 100, Type: models.RewardTypeService, MinLevel: "DIAMOND"},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidReward,
		},
		{
			Name:          "Error. Malformed expiration #5",
			Request:       models.RewardRequest{Name: "Oil change", PointCost: 100, Type: models.RewardTypeService, ExpireAt: "tomorrow"},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidReward,
		},
		{
			Name:    "Success. #6",
			Request: models.RewardRequest{Name: "Oil change", PointCost: 100, Type: models.RewardTypeService, MinLevel: models.LevelSilver, Active: true},
			SetupMocks: func() {
				mockRewards.EXPECT().AddReward(gomock.Any(), gomock.Any()).Return(nil)
				mockRewards.EXPECT().GetReward(gomock.Any(), gomock.Any()).Return(&models.RewardData{Name: "Oil change"}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := rewards.CreateReward(ctx, tc.Request)

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

func TestRewardsService_GetAvailableRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRewards := mocks.NewMockRewardsStorage(ctrl)
	mockCustomers := mocks.NewMockCustomersStorage(ctrl)
	mockRedemptions := mocks.NewMockRedemptionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	rewards := NewRewards(mockRewards, mockCustomers, mockRedemptions)

	// покупатель уровня SILVER с балансом 500
	customer := &models.CustomerData{CustomerID: "1", Login: "mda", Balance: 500, LifetimeEarned: 2000}

	expired := time.Now().Add(-time.Hour)
	usageLimit := int64(10)
	customerLimit := int64(1)

	catalog := []models.RewardData{
		{RewardID: "r1", Name: "Affordable", PointCost: 100, Active: true},
		{RewardID: "r2", Name: "Too expensive", PointCost: 1000, Active: true},
		{RewardID: "r3", Name: "Expired", PointCost: 100, Active: true, ExpireAt: &expired},
		{RewardID: "r4", Name: "Gold only", PointCost: 100, Active: true, MinLevel: models.LevelGold},
		{RewardID: "r5", Name: "Sold out", PointCost: 100, Active: true, UsageLimit: &usageLimit, UsageCount: 10},
		{RewardID: "r6", Name: "Already redeemed by customer", PointCost: 100, Active: true, CustomerLimit: &customerLimit},
	}

	mockCustomers.EXPECT().GetCustomerByLogin(gomock.Any(), "mda").Return(customer, nil)
	mockRewards.EXPECT().GetRewards(gomock.Any(), gomock.Any()).Return(catalog, nil)
	mockRedemptions.EXPECT().CountRedemptions(gomock.Any(), "1", "r6").Return(int64(1), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	available, err := rewards.GetAvailableRewards(ctx, "mda", 50, 0)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	expected := []models.RewardData{catalog[0]}
	diff := cmp.Diff(expected, available)
	if len(diff) != 0 {
		t.Errorf("expected rewards mismatch:\n %s", diff)
	}
}
