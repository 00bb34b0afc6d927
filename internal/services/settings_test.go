package services

import (
	"context"
	"testing"
	"time"

	"github.com/avtomag/loyalty/internal/config"
	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestSettingsService_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSettings := mocks.NewMockSettingsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	settings := NewSettings(mockSettings)

	validRequest := models.SettingsRequest{
		PointsPerUnit:      0.5,
		MinPurchase:        100,
		Active:             true,
		BronzeMultiplier:   1,
		SilverMultiplier:   1.5,
		GoldMultiplier:     2,
		PlatinumMultiplier: 3,
	}

	testCases := []struct {
		Name          string
		Request       models.SettingsRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Negative points per unit #1",
			Request:       models.SettingsRequest{PointsPerUnit: -0.5},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidSettings,
		},
		{
			Name:          "Error. Negative multiplier #2",
			Request:       models.SettingsRequest{PointsPerUnit: 0.5, GoldMultiplier: -2},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidSettings,
		},
		{
			Name:    "Success. #3",
			Request: validRequest,
			SetupMocks: func() {
				mockSettings.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).Return(nil)
				mockSettings.EXPECT().GetSettings(gomock.Any()).Return(&models.SettingsData{Active: true}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := settings.UpdateSettings(ctx, tc.Request)

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
