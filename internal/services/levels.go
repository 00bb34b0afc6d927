package services

import "github.com/avtomag/loyalty/internal/models"

// LevelThreshold - минимальное число накопленных баллов для уровня
type LevelThreshold struct {
	Level     string
	MinEarned int64
}

// Пороги уровней по возрастанию. Единственное место, где они определены:
// классификация, расчёт до следующего уровня и фильтры админки читают отсюда
var levelTable = []LevelThreshold{
	{models.LevelBronze, 0},
	{models.LevelSilver, 1000},
	{models.LevelGold, 5000},
	{models.LevelPlatinum, 15000},
}

// ClassifyLevel - уровень покупателя по накопленным за всё время баллам
func ClassifyLevel(lifetimeEarned int64) string {
	level := levelTable[0].Level
	for _, threshold := range levelTable {
		if lifetimeEarned >= threshold.MinEarned {
			level = threshold.Level
		}
	}
	return level
}

// PointsToNextLevel - сколько баллов осталось до следующего уровня,
// 0 - достигнут высший уровень
func PointsToNextLevel(lifetimeEarned int64) int64 {
	for _, threshold := range levelTable {
		if lifetimeEarned < threshold.MinEarned {
			return threshold.MinEarned - lifetimeEarned
		}
	}
	return 0
}

// LevelRank - порядковый номер уровня для сравнения, -1 для неизвестного
func LevelRank(level string) int {
	for rank, threshold := range levelTable {
		if threshold.Level == level {
			return rank
		}
	}
	return -1
}

// LevelBounds - границы накопленных баллов для уровня.
// Отсутствие верхней границы у высшего уровня обозначается nil
func LevelBounds(level string) (*int64, *int64, bool) {
	for i, threshold := range levelTable {
		if threshold.Level != level {
			continue
		}
		min := threshold.MinEarned
		if i+1 < len(levelTable) {
			max := levelTable[i+1].MinEarned
			return &min, &max, true
		}
		return &min, nil, true
	}
	return nil, nil, false
}
