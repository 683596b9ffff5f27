package deadline

import (
	"testing"
	"time"
)

var base = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestUntil(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		want Remaining
	}{
		{"five days out", base.Add(5 * 24 * time.Hour), Remaining{Days: 5}},
		{"mixed breakdown", base.Add(2*24*time.Hour + 3*time.Hour + 45*time.Minute), Remaining{Days: 2, Hours: 3, Minutes: 45}},
		{"under a minute", base.Add(30 * time.Second), Remaining{}},
		{"exactly now", base, Remaining{Passed: true}},
		{"already passed", base.Add(-time.Hour), Remaining{Passed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Until(tt.due, base)
			if got != tt.want {
				t.Errorf("Until() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUrgency(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		want Band
	}{
		{"week out is normal", base.Add(7 * 24 * time.Hour), BandNormal},
		{"exactly three days is normal", base.Add(3 * 24 * time.Hour), BandNormal},
		{"two days is warning", base.Add(2 * 24 * time.Hour), BandWarning},
		{"hours left is critical", base.Add(6 * time.Hour), BandCritical},
		{"passed", base.Add(-time.Minute), BandPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Urgency(tt.due, base)
			if got != tt.want {
				t.Errorf("Urgency() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverdue_Boundary(t *testing.T) {
	due := base.Add(5 * 24 * time.Hour)

	if Overdue(due, base.Add(4*24*time.Hour)) {
		t.Error("4 days in: expected not overdue")
	}
	if Overdue(due, due) {
		t.Error("equal instants: expected not overdue")
	}
	if !Overdue(due, base.Add(6*24*time.Hour)) {
		t.Error("6 days in: expected overdue")
	}
}
