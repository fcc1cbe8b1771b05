package manager

import (
	"testing"
	"time"
)

func TestStatsManager(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sm := newStatsManager("abc", func() time.Time { return clock })

	sm.RecordTick(2*time.Millisecond, 1)
	sm.RecordFood()
	sm.RecordTick(4*time.Millisecond, 2)
	sm.RecordTick(0, 5)
	sm.RecordReset(5)
	sm.RecordReset(2)
	sm.RecordReset(3)
	clock = clock.Add(10 * time.Second)

	snap := sm.Snapshot()
	if snap.SessionID != "abc" || snap.Ticks != 3 || snap.FoodsEaten != 1 || snap.Resets != 3 {
		t.Errorf("unexpected counters: %+v", snap)
	}
	if snap.Length != 1 || snap.BestLength != 5 {
		t.Errorf("length=%d best=%d", snap.Length, snap.BestLength)
	}
	if snap.AvgTickMs != 2 {
		t.Errorf("AvgTickMs = %v, want 2", snap.AvgTickMs)
	}
	if snap.AverageRun != 10.0/3 || snap.MedianRun != 3 {
		t.Errorf("average=%v median=%v", snap.AverageRun, snap.MedianRun)
	}
	if snap.ElapsedSecs != 10 {
		t.Errorf("ElapsedSecs = %v", snap.ElapsedSecs)
	}
}

func TestStatsHistoryIsCapped(t *testing.T) {
	sm := NewStatsManager("x")
	for i := 0; i < maxHistory+10; i++ {
		sm.RecordReset(i)
	}
	if len(sm.runs) != maxHistory || sm.runs[0] != 10 {
		t.Errorf("history len=%d first=%d", len(sm.runs), sm.runs[0])
	}
	if sm.Snapshot().MedianRun != float64(10+maxHistory+9)/2 {
		t.Errorf("median = %v", sm.Snapshot().MedianRun)
	}
}
