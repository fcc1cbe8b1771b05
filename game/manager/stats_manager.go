package manager

import (
	"sort"
	"time"
)

// maxHistory caps the number of finished runs kept for averages.
const maxHistory = 50

// Snapshot is a read-only copy of the session statistics.
type Snapshot struct {
	SessionID   string  `json:"session"`
	Length      int     `json:"length"`
	BestLength  int     `json:"best"`
	FoodsEaten  int     `json:"foods"`
	Resets      int     `json:"resets"`
	Ticks       int64   `json:"ticks"`
	AverageRun  float64 `json:"avgRun"`
	MedianRun   float64 `json:"medianRun"`
	AvgTickMs   float64 `json:"avgTickMs"`
	ElapsedSecs float64 `json:"elapsed"`
}

// StatsManager tracks the current session in memory. Nothing is written to disk.
// It belongs to the game loop goroutine.
type StatsManager struct {
	sessionID   string
	startTime   time.Time
	length      int
	bestLength  int
	foodsEaten  int
	resets      int
	ticks       int64
	totalTickNs int64
	runs        []int
	now         func() time.Time
}

func NewStatsManager(sessionID string) *StatsManager {
	return newStatsManager(sessionID, time.Now)
}

func newStatsManager(sessionID string, now func() time.Time) *StatsManager {
	return &StatsManager{
		sessionID:  sessionID,
		startTime:  now(),
		length:     1,
		bestLength: 1,
		runs:       make([]int, 0, maxHistory),
		now:        now,
	}
}

// RecordTick accounts one finished tick and the snake length after it.
func (sm *StatsManager) RecordTick(elapsed time.Duration, length int) {
	sm.ticks++
	sm.totalTickNs += elapsed.Nanoseconds()
	sm.length = length
	if length > sm.bestLength {
		sm.bestLength = length
	}
}

func (sm *StatsManager) RecordFood() {
	sm.foodsEaten++
}

// RecordReset closes the current run with the length it reached.
func (sm *StatsManager) RecordReset(finalLength int) {
	sm.resets++
	if finalLength > sm.bestLength {
		sm.bestLength = finalLength
	}
	if len(sm.runs) >= maxHistory {
		sm.runs = sm.runs[1:]
	}
	sm.runs = append(sm.runs, finalLength)
	sm.length = 1
}

func (sm *StatsManager) Snapshot() Snapshot {
	var avgMs float64
	if sm.ticks > 0 {
		avgMs = float64(sm.totalTickNs) / float64(sm.ticks) / 1e6
	}
	return Snapshot{
		SessionID:   sm.sessionID,
		Length:      sm.length,
		BestLength:  sm.bestLength,
		FoodsEaten:  sm.foodsEaten,
		Resets:      sm.resets,
		Ticks:       sm.ticks,
		AverageRun:  sm.averageRun(),
		MedianRun:   sm.medianRun(),
		AvgTickMs:   avgMs,
		ElapsedSecs: sm.now().Sub(sm.startTime).Seconds(),
	}
}

func (sm *StatsManager) averageRun() float64 {
	if len(sm.runs) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.runs {
		total += r
	}
	return float64(total) / float64(len(sm.runs))
}

func (sm *StatsManager) medianRun() float64 {
	if len(sm.runs) == 0 {
		return 0
	}
	sorted := make([]int, len(sm.runs))
	copy(sorted, sm.runs)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid])
}
