package db

import (
	"time"
)

// CycleSchema is one poll cycle's outcome. Failed cycles keep whichever
// fields had been resolved before the failure.
type CycleSchema struct {
	ID             uint
	StartTime      time.Time
	Success        bool
	CurrentPlayers int
	MaxPlayers     int
	MapName        string
	Mode           string
}

func CreateCycle(cycle CycleSchema) (CycleSchema, error) {
	if db == nil {
		return CycleSchema{}, ErrDisabled
	}
	result := db.Create(&cycle)
	if result.Error != nil {
		return CycleSchema{}, result.Error
	}
	return cycle, nil
}

// RecentCycles returns cycles recorded at or after since, oldest first.
func RecentCycles(since time.Time) ([]CycleSchema, error) {
	if db == nil {
		return nil, ErrDisabled
	}
	var cycles []CycleSchema
	result := db.Where("start_time >= ?", since).Order("id asc").Find(&cycles)
	if result.Error != nil {
		return nil, result.Error
	}
	return cycles, nil
}
