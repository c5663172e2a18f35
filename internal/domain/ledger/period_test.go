package ledger

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"", PeriodAll, false},
		{"all", PeriodAll, false},
		{"today", PeriodToday, false},
		{"week", PeriodWeek, false},
		{"month", PeriodMonth, false},
		{"year", "", true},
		{"Today", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePeriod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLowerBound(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	tests := []struct {
		period   Period
		want     time.Time
		hasBound bool
	}{
		{PeriodAll, time.Time{}, false},
		{PeriodToday, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), true},
		// week is a rolling 168h window, not aligned to any calendar week
		{PeriodWeek, time.Date(2024, time.March, 8, 12, 0, 0, 0, time.Local), true},
		{PeriodMonth, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local), true},
	}

	for _, tt := range tests {
		got, ok := tt.period.LowerBound(now)
		if ok != tt.hasBound {
			t.Errorf("%s: bound present = %v, want %v", tt.period, ok, tt.hasBound)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("%s: LowerBound = %v, want %v", tt.period, got, tt.want)
		}
	}
}

func TestLowerBound_FilterIsMonotonicSubset(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	all := []*Transaction{
		{ID: "t1", TransactionDate: now.Add(-time.Hour)},
		{ID: "t2", TransactionDate: now.Add(-3 * 24 * time.Hour)},
		{ID: "t3", TransactionDate: now.Add(-20 * 24 * time.Hour)},
		{ID: "t4", TransactionDate: now.Add(-200 * 24 * time.Hour)},
	}

	for _, period := range []Period{PeriodAll, PeriodToday, PeriodWeek, PeriodMonth} {
		from, ok := period.LowerBound(now)

		var filtered []*Transaction
		for _, tx := range all {
			if !ok || !tx.TransactionDate.Before(from) {
				filtered = append(filtered, tx)
			}
		}

		if len(filtered) > len(all) {
			t.Errorf("%s: filtered set larger than input", period)
		}
		for _, tx := range filtered {
			if ok && tx.TransactionDate.Before(from) {
				t.Errorf("%s: transaction %s dated %v before lower bound %v", period, tx.ID, tx.TransactionDate, from)
			}
		}
		if period == PeriodAll && len(filtered) != len(all) {
			t.Errorf("all: filtered %d of %d, want the unfiltered set", len(filtered), len(all))
		}
	}
}
