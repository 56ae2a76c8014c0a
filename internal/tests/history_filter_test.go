package tests

import (
	"context"
	"testing"

	"petroserve/internal/domain"
	"petroserve/internal/repository/memory"
	"petroserve/internal/service"
)

// ──────────────────────────────────────────────
// HISTORY FILTERING
// ──────────────────────────────────────────────

func seededRecords(t *testing.T) []*domain.ServiceHistoryRecord {
	t.Helper()
	records, err := memory.NewHistoryRepository().GetAll(context.Background())
	if err != nil {
		t.Fatalf("loading seed records: %v", err)
	}
	return records
}

func TestFilterHistory_AllPassesEverything(t *testing.T) {
	t.Parallel()

	records := seededRecords(t)

	filtered := service.FilterHistory(records, service.HistoryQuery{TypeFilter: service.TypeFilterAll})
	if len(filtered) != len(records) {
		t.Errorf("expected %d records, got %d", len(records), len(filtered))
	}

	// Zero-value query behaves like ALL.
	filtered = service.FilterHistory(records, service.HistoryQuery{})
	if len(filtered) != len(records) {
		t.Errorf("zero-value query: expected %d records, got %d", len(records), len(filtered))
	}
}

func TestFilterHistory_TypeFilters(t *testing.T) {
	t.Parallel()

	records := seededRecords(t)

	fuel := service.FilterHistory(records, service.HistoryQuery{TypeFilter: service.TypeFilterFuelOnly})
	if len(fuel) != 3 {
		t.Errorf("expected 3 fuel records, got %d", len(fuel))
	}
	for _, rec := range fuel {
		if rec.ServiceType != domain.ServiceTypeFuel {
			t.Errorf("fuel filter leaked %s record %s", rec.ServiceType, rec.OrderNumber)
		}
	}

	mechanic := service.FilterHistory(records, service.HistoryQuery{TypeFilter: service.TypeFilterMechanicOnly})
	if len(mechanic) != 2 {
		t.Errorf("expected 2 mechanic records, got %d", len(mechanic))
	}
}

func TestFilterHistory_SearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	records := seededRecords(t)

	for _, search := range []string{"battery", "BATTERY", "BaTtErY"} {
		filtered := service.FilterHistory(records, service.HistoryQuery{Search: search})
		if len(filtered) != 1 {
			t.Fatalf("search %q: expected 1 record, got %d", search, len(filtered))
		}
		if filtered[0].OrderNumber != "ORD-2024-002" {
			t.Errorf("search %q: expected ORD-2024-002, got %s", search, filtered[0].OrderNumber)
		}
	}
}

func TestFilterHistory_SearchMatchesAcrossFields(t *testing.T) {
	t.Parallel()

	records := seededRecords(t)

	cases := []struct {
		search   string
		expected int
	}{
		{"dl 01", 1},    // vehicle number
		{"ORD-2024", 5}, // order number prefix
		{"mumbai", 1},   // location
		{"diesel", 1},   // fuel type
		{"petrol", 2},   // fuel type, two records
		{"no-such-text", 0},
	}

	for _, tc := range cases {
		filtered := service.FilterHistory(records, service.HistoryQuery{Search: tc.search})
		if len(filtered) != tc.expected {
			t.Errorf("search %q: expected %d records, got %d", tc.search, tc.expected, len(filtered))
		}
	}
}

func TestFilterHistory_CombinesTypeAndSearch(t *testing.T) {
	t.Parallel()

	records := seededRecords(t)

	// "petrol" matches two fuel records; the mechanic filter empties it.
	filtered := service.FilterHistory(records, service.HistoryQuery{
		TypeFilter: service.TypeFilterMechanicOnly,
		Search:     "petrol",
	})
	if len(filtered) != 0 {
		t.Errorf("expected no records, got %d", len(filtered))
	}
}

func TestFilterHistory_PureAndIdempotent(t *testing.T) {
	t.Parallel()

	records := seededRecords(t)
	query := service.HistoryQuery{TypeFilter: service.TypeFilterFuelOnly, Search: "petrol"}

	once := service.FilterHistory(records, query)
	twice := service.FilterHistory(once, query)

	if len(once) != len(twice) {
		t.Errorf("filtering twice changed the result: %d vs %d", len(once), len(twice))
	}

	// The input set is never mutated.
	if len(records) != 5 {
		t.Errorf("input records mutated, now %d", len(records))
	}
}

// ──────────────────────────────────────────────
// AGGREGATES
// ──────────────────────────────────────────────

func TestTotalSpent_CountsCompletedOnly(t *testing.T) {
	t.Parallel()

	records := seededRecords(t)

	// 2400 + 650 + 3520 + 300; the ongoing order does not count.
	if total := service.TotalSpent(records); !almostEqual(total, 6870) {
		t.Errorf("expected total 6870, got %.2f", total)
	}
}

func TestCountByStatus(t *testing.T) {
	t.Parallel()

	records := seededRecords(t)

	counts := service.CountByStatus(records)
	if counts.Completed != 4 {
		t.Errorf("expected 4 completed, got %d", counts.Completed)
	}
	if counts.Fuel != 3 {
		t.Errorf("expected 3 fuel, got %d", counts.Fuel)
	}
	if counts.Mechanic != 2 {
		t.Errorf("expected 2 mechanic, got %d", counts.Mechanic)
	}
}

func TestHistoryRecords_MostRecentFirst(t *testing.T) {
	t.Parallel()

	records := seededRecords(t)

	for i := 1; i < len(records); i++ {
		if records[i].PlacedAt.After(records[i-1].PlacedAt) {
			t.Errorf("records out of order at index %d", i)
		}
	}
}
