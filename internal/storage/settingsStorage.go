package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avtomag/loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	GetSettings = `SELECT points_per_unit, min_purchase, active,
						  bronze_multiplier, silver_multiplier, gold_multiplier, platinum_multiplier,
						  updated_at
				   FROM SETTINGS WHERE id = 1;`
	InsertSettings = `INSERT INTO SETTINGS (id, points_per_unit, min_purchase, active,
										   bronze_multiplier, silver_multiplier, gold_multiplier, platinum_multiplier)
					  VALUES (1, $1, $2, $3, $4, $5, $6, $7)
					  ON CONFLICT (id) DO NOTHING;`
	UpdateSettings = `UPDATE SETTINGS
					  SET points_per_unit = $1,
						  min_purchase = $2,
						  active = $3,
						  bronze_multiplier = $4,
						  silver_multiplier = $5,
						  gold_multiplier = $6,
						  platinum_multiplier = $7,
						  updated_at = NOW()
					  WHERE id = 1;`
)

type SettingsDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSettingsStorage(db *Database) SettingsStorage {
	return &SettingsDatabase{DB: db}
}

// GetSettings - чтение настроек программы. Единственная запись создаётся
// лениво при первом чтении
func (s *SettingsDatabase) GetSettings(ctx context.Context) (*models.SettingsData, error) {
	settings, err := s.readSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	// записи ещё нет - создаём настройки по умолчанию
	defaults := models.DefaultSettings()
	_, err = s.DB.Pool.Exec(ctx, InsertSettings,
		defaults.PointsPerUnit,
		defaults.MinPurchase,
		defaults.Active,
		defaults.BronzeMultiplier,
		defaults.SilverMultiplier,
		defaults.GoldMultiplier,
		defaults.PlatinumMultiplier,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}

	settings, err = s.readSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsDatabase) readSettings(ctx context.Context) (*models.SettingsData, error) {
	var (
		pointsPerUnit      decimal.Decimal
		minPurchase        decimal.Decimal
		active             bool
		bronzeMultiplier   decimal.Decimal
		silverMultiplier   decimal.Decimal
		goldMultiplier     decimal.Decimal
		platinumMultiplier decimal.Decimal
		updatedAt          time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, GetSettings).Scan(
		&pointsPerUnit,
		&minPurchase,
		&active,
		&bronzeMultiplier,
		&silverMultiplier,
		&goldMultiplier,
		&platinumMultiplier,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &models.SettingsData{
		PointsPerUnit:      pointsPerUnit,
		MinPurchase:        minPurchase,
		Active:             active,
		BronzeMultiplier:   bronzeMultiplier,
		SilverMultiplier:   silverMultiplier,
		GoldMultiplier:     goldMultiplier,
		PlatinumMultiplier: platinumMultiplier,
		UpdatedAt:          updatedAt,
	}, nil
}

// UpdateSettings - изменение настроек программы администратором
func (s *SettingsDatabase) UpdateSettings(ctx context.Context, settings models.SettingsData) error {
	// запись может отсутствовать, если настройки ещё ни разу не читались
	if _, err := s.GetSettings(ctx); err != nil {
		return err
	}

	_, err := s.DB.Pool.Exec(ctx, UpdateSettings,
		settings.PointsPerUnit,
		settings.MinPurchase,
		settings.Active,
		settings.BronzeMultiplier,
		settings.SilverMultiplier,
		settings.GoldMultiplier,
		settings.PlatinumMultiplier,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
