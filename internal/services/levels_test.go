package services

import (
	"testing"

	"github.com/avtomag/loyalty/internal/models"
)

func TestClassifyLevel(t *testing.T) {
	testCases := []struct {
		Name           string
		LifetimeEarned int64
		ExpectedLevel  string
	}{
		{Name: "Zero earned is bronze #1", LifetimeEarned: 0, ExpectedLevel: models.LevelBronze},
		{Name: "Below silver threshold #2", LifetimeEarned: 999, ExpectedLevel: models.LevelBronze},
		{Name: "Exactly silver threshold #3", LifetimeEarned: 1000, ExpectedLevel: models.LevelSilver},
		{Name: "Between silver and gold #4", LifetimeEarned: 4999, ExpectedLevel: models.LevelSilver},
		{Name: "Exactly gold threshold #5", LifetimeEarned: 5000, ExpectedLevel: models.LevelGold},
		{Name: "Exactly platinum threshold #6", LifetimeEarned: 15000, ExpectedLevel: models.LevelPlatinum},
		{Name: "Far above platinum #7", LifetimeEarned: 1000000, ExpectedLevel: models.LevelPlatinum},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			level := ClassifyLevel(tc.LifetimeEarned)
			if level != tc.ExpectedLevel {
				t.Errorf("Expected level '%s', got: '%s'", tc.ExpectedLevel, level)
			}
		})
	}
}

func TestPointsToNextLevel(t *testing.T) {
	testCases := []struct {
		Name           string
		LifetimeEarned int64
		ExpectedPoints int64
	}{
		{Name: "Bronze start #1", LifetimeEarned: 0, ExpectedPoints: 1000},
		{Name: "One point to silver #2", LifetimeEarned: 999, ExpectedPoints: 1},
		{Name: "Fresh silver #3", LifetimeEarned: 1000, ExpectedPoints: 4000},
		{Name: "Fresh gold #4", LifetimeEarned: 5000, ExpectedPoints: 10000},
		{Name: "Platinum is the top #5", LifetimeEarned: 15000, ExpectedPoints: 0},
		{Name: "Above platinum #6", LifetimeEarned: 20000, ExpectedPoints: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			points := PointsToNextLevel(tc.LifetimeEarned)
			if points != tc.ExpectedPoints {
				t.Errorf("Expected points '%d', got: '%d'", tc.ExpectedPoints, points)
			}
		})
	}
}

func TestLevelRank(t *testing.T) {
	testCases := []struct {
		Name         string
		Level        string
		ExpectedRank int
	}{
		{Name: "Bronze #1", Level: models.LevelBronze, ExpectedRank: 0},
		{Name: "Silver #2", Level: models.LevelSilver, ExpectedRank: 1},
		{Name: "Gold #3", Level: models.LevelGold, ExpectedRank: 2},
		{Name: "Platinum #4", Level: models.LevelPlatinum, ExpectedRank: 3},
		{Name: "Unknown level #5", Level: "DIAMOND", ExpectedRank: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rank := LevelRank(tc.Level)
			if rank != tc.ExpectedRank {
				t.Errorf("Expected rank '%d', got: '%d'", tc.ExpectedRank, rank)
			}
		})
	}
}

func TestLevelBounds(t *testing.T) {
	testCases := []struct {
		Name        string
		Level       string
		ExpectedMin int64
		ExpectedMax *int64
		ExpectedOk  bool
	}{
		{Name: "Bronze bounds #1", Level: models.LevelBronze, ExpectedMin: 0, ExpectedMax: int64Ptr(1000), ExpectedOk: true},
		{Name: "Gold bounds #2", Level: models.LevelGold, ExpectedMin: 5000, ExpectedMax: int64Ptr(15000), ExpectedOk: true},
		{Name: "Platinum has no upper bound #3", Level: models.LevelPlatinum, ExpectedMin: 15000, ExpectedMax: nil, ExpectedOk: true},
		{Name: "Unknown level #4", Level: "DIAMOND", ExpectedOk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			min, max, ok := LevelBounds(tc.Level)
			if ok != tc.ExpectedOk {
				t.Errorf("Expected ok '%v', got: '%v'", tc.ExpectedOk, ok)
			}
			if !ok {
				return
			}
			if *min != tc.ExpectedMin {
				t.Errorf("Expected min '%d', got: '%d'", tc.ExpectedMin, *min)
			}
			if (max == nil) != (tc.ExpectedMax == nil) {
				t.Errorf("Expected max '%v', got: '%v'", tc.ExpectedMax, max)
			} else if max != nil && *max != *tc.ExpectedMax {
				t.Errorf("Expected max '%d', got: '%d'", *tc.ExpectedMax, *max)
			}
		})
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
