package advent

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestUnlockedCount_outsideDecember(t *testing.T) {
	months := []time.Month{
		time.January, time.February, time.March, time.April, time.May, time.June,
		time.July, time.August, time.September, time.October, time.November,
	}
	for _, m := range months {
		for _, d := range []int{1, 15, 28} {
			if got := UnlockedCount(date(2025, m, d)); got != 0 {
				t.Errorf("UnlockedCount(%v %d) = %v; want 0", m, d, got)
			}
		}
	}
}

func TestUnlockedCount_december(t *testing.T) {
	tests := []struct {
		day  int
		want int
	}{
		{1, 1},
		{10, 10},
		{23, 23},
		{24, 24},
		{25, 24},
		{31, 24},
	}
	for _, tt := range tests {
		if got := UnlockedCount(date(2025, time.December, tt.day)); got != tt.want {
			t.Errorf("UnlockedCount(December %d) = %v; want %v", tt.day, got, tt.want)
		}
	}
}

func TestDayView_availability(t *testing.T) {
	for _, unlocked := range []int{0, 10, 24} {
		for day := FirstDay; day <= LastDay; day++ {
			view := DayView(day, unlocked)
			if want := day <= unlocked; view.Available != want {
				t.Errorf("DayView(%d, %d).Available = %v; want %v", day, unlocked, view.Available, want)
			}
			if view.Day != day {
				t.Errorf("DayView(%d, %d).Day = %v; want %v", day, unlocked, view.Day, day)
			}
		}
	}
}

func TestDayView_tasks(t *testing.T) {
	for day := FirstDay; day <= LastDay; day++ {
		if view := DayView(day, 0); view.Task == "" {
			t.Errorf("DayView(%d, 0).Task is empty", day)
		}
	}

	// days outside the curated range fall back to the placeholder
	if got := DayView(25, 24).Task; got != fallbackTask {
		t.Errorf("DayView(25, 24).Task = %q; want %q", got, fallbackTask)
	}
	if got := DayView(0, 24).Task; got != fallbackTask {
		t.Errorf("DayView(0, 24).Task = %q; want %q", got, fallbackTask)
	}
}

func TestDays(t *testing.T) {
	days, unlocked := Days(date(2025, time.December, 10))
	if unlocked != 10 {
		t.Errorf("unlocked = %v; want 10", unlocked)
	}
	if len(days) != LastDay {
		t.Fatalf("len(days) = %v; want %v", len(days), LastDay)
	}
	for i, day := range days {
		if day.Day != i+1 {
			t.Errorf("days[%d].Day = %v; want %v", i, day.Day, i+1)
		}
		if want := day.Day <= 10; day.Available != want {
			t.Errorf("days[%d].Available = %v; want %v", i, day.Available, want)
		}
	}
}
