package dashboard

import (
	"testing"

	"ecosnap/internal/features/waste"
)

func TestBucketByMonthFillsAllTwelve(t *testing.T) {
	buckets := BucketByMonth(nil)
	if len(buckets) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(buckets))
	}
	for i, b := range buckets {
		if b.Month != i+1 {
			t.Fatalf("bucket %d has month %d", i, b.Month)
		}
	}
}

func TestBucketByMonthPlacesCounts(t *testing.T) {
	rows := []waste.MonthStatusCount{
		{Month: 1, Status: waste.StatusPending, Count: 3},
		{Month: 1, Status: waste.StatusCompleted, Count: 1},
		{Month: 6, Status: waste.StatusScheduled, Count: 5},
		{Month: 12, Status: waste.StatusPaymented, Count: 2},
		{Month: 13, Status: waste.StatusPending, Count: 99}, // out of range, dropped
	}

	buckets := BucketByMonth(rows)

	if buckets[0].Pending != 3 || buckets[0].Completed != 1 {
		t.Fatalf("january bucket wrong: %+v", buckets[0])
	}
	if buckets[5].Scheduled != 5 {
		t.Fatalf("june bucket wrong: %+v", buckets[5])
	}
	if buckets[11].Paymented != 2 {
		t.Fatalf("december bucket wrong: %+v", buckets[11])
	}

	var total int64
	for _, b := range buckets {
		total += b.Pending + b.Paymented + b.Scheduled + b.Completed
	}
	if total != 11 {
		t.Fatalf("out-of-range row leaked into buckets, total=%d", total)
	}
}
