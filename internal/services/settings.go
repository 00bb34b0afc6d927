package services

import (
	"context"
	"errors"

	"github.com/avtomag/loyalty/internal/logger"
	"github.com/avtomag/loyalty/internal/models"
	"github.com/avtomag/loyalty/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidSettings = errors.New("invalid settings values")
)

type SettingsService interface {
	GetSettings(ctx context.Context) (*models.SettingsData, error)
	UpdateSettings(ctx context.Context, request models.SettingsRequest) (*models.SettingsData, error)
}

type Settings struct {
	Storage storage.SettingsStorage
}

// Создание сервиса
func NewSettings(storage storage.SettingsStorage) SettingsService {
	return &Settings{Storage: storage}
}

// GetSettings возвращает настройки программы (создаются лениво при первом чтении)
func (s *Settings) GetSettings(ctx context.Context) (*models.SettingsData, error) {
	settings, err := s.Storage.GetSettings(ctx)
	if err != nil {
		logger.Error("Failed to get settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

// UpdateSettings обновляет настройки программы администратором
func (s *Settings) UpdateSettings(ctx context.Context, request models.SettingsRequest) (*models.SettingsData, error) {
	// Отрицательные коэффициенты и пороги не имеют смысла
	if request.PointsPerUnit < 0 || request.MinPurchase < 0 ||
		request.BronzeMultiplier < 0 || request.SilverMultiplier < 0 ||
		request.GoldMultiplier < 0 || request.PlatinumMultiplier < 0 {
		return nil, ErrInvalidSettings
	}

	settings := models.SettingsData{
		PointsPerUnit:      decimal.NewFromFloat(request.PointsPerUnit),
		MinPurchase:        decimal.NewFromFloat(request.MinPurchase),
		Active:             request.Active,
		BronzeMultiplier:   decimal.NewFromFloat(request.BronzeMultiplier),
		SilverMultiplier:   decimal.NewFromFloat(request.SilverMultiplier),
		GoldMultiplier:     decimal.NewFromFloat(request.GoldMultiplier),
		PlatinumMultiplier: decimal.NewFromFloat(request.PlatinumMultiplier),
	}

	if err := s.Storage.UpdateSettings(ctx, settings); err != nil {
		logger.Error("Failed to update settings", zap.Error(err))
		return nil, err
	}

	return s.Storage.GetSettings(ctx)
}
