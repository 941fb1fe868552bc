package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shastriUF/calorie-counter/internal/logger"
	"github.com/shastriUF/calorie-counter/internal/model"
	"github.com/shastriUF/calorie-counter/internal/service"
)

func TestDateKeyMatchesMobileFormat(t *testing.T) {
	t.Parallel()
	// The mobile app keyed storage on toLocaleDateString(): no leading
	// zeros, month first.
	got := service.DateKey(time.Date(2025, time.January, 5, 14, 30, 0, 0, time.Local))
	if got != "1/5/2025" {
		t.Fatalf("date key %q, want 1/5/2025", got)
	}
	got = service.DateKey(time.Date(2024, time.November, 23, 0, 0, 0, 0, time.Local))
	if got != "11/23/2024" {
		t.Fatalf("date key %q, want 11/23/2024", got)
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	t.Parallel()
	gw, _ := newTestGateway(t)
	ctx := context.Background()

	catalog := service.NewCatalog()
	if _, err := catalog.Upsert("rice", 1.3, "grams"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, err := catalog.Upsert("egg", 78, "count"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := gw.SaveCatalog(ctx, catalog); err != nil {
		t.Fatalf("save catalog: %v", err)
	}

	loaded, err := gw.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(loaded.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(loaded.Ingredients))
	}
	egg, ok := loaded.Resolve("egg")
	if !ok {
		t.Fatalf("egg missing after round trip")
	}
	if egg.CaloriesPerCount == nil || *egg.CaloriesPerCount != 78 {
		t.Fatalf("count density lost: %+v", egg)
	}
	if egg.CaloriesPerGram != nil || egg.CaloriesPerMl != nil {
		t.Fatalf("nil densities must stay nil: %+v", egg)
	}
}

func TestLoadAbsentYieldsEmptyDefaults(t *testing.T) {
	t.Parallel()
	gw, _ := newTestGateway(t)
	ctx := context.Background()

	catalog, err := gw.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(catalog.Ingredients) != 0 {
		t.Fatalf("expected empty catalog")
	}
	ledger, err := gw.LoadDay(ctx, "1/5/2025")
	if err != nil {
		t.Fatalf("load day: %v", err)
	}
	if len(ledger.Entries) != 0 {
		t.Fatalf("expected empty ledger")
	}
}

func TestSaveDayWritesLedgerAndLegacyTotal(t *testing.T) {
	t.Parallel()
	gw, mem := newTestGateway(t)
	ctx := context.Background()

	ledger := service.NewLedger()
	ledger.Entries = append(ledger.Entries,
		model.ConsumedEntry{Name: "rice", Quantity: 150, Unit: "grams", Calories: 195, Meal: model.MealLunch},
		model.ConsumedEntry{Name: "egg", Quantity: 2, Unit: "count", Calories: 156, Meal: model.MealBreakfast},
	)
	if err := gw.SaveDay(ctx, "1/5/2025", ledger); err != nil {
		t.Fatalf("save day: %v", err)
	}

	raw, ok, err := mem.GetString(ctx, "consumedItems_1/5/2025")
	if err != nil || !ok {
		t.Fatalf("ledger key missing: ok=%v err=%v", ok, err)
	}
	if raw == "" {
		t.Fatalf("empty ledger document")
	}
	total, ok, err := mem.GetString(ctx, "calories_1/5/2025")
	if err != nil || !ok {
		t.Fatalf("legacy total key missing: ok=%v err=%v", ok, err)
	}
	if total != "351" {
		t.Fatalf("legacy total %q, want 351", total)
	}

	loaded, err := gw.LoadDay(ctx, "1/5/2025")
	if err != nil {
		t.Fatalf("load day: %v", err)
	}
	if len(loaded.Entries) != 2 || loaded.Entries[0].Name != "rice" {
		t.Fatalf("round trip lost entries: %+v", loaded.Entries)
	}
	if loaded.Entries[1].Meal != model.MealBreakfast {
		t.Fatalf("meal lost: %+v", loaded.Entries[1])
	}
}

func TestReadFaultDegradesToEmptyAndSurfaces(t *testing.T) {
	t.Parallel()
	gw := service.NewGateway(failingStore{}, logger.Nop())
	ctx := context.Background()

	catalog, err := gw.LoadCatalog(ctx)
	if !errors.Is(err, service.ErrStorageIO) {
		t.Fatalf("expected ErrStorageIO, got %v", err)
	}
	if catalog == nil || len(catalog.Ingredients) != 0 {
		t.Fatalf("degraded load must still return an empty catalog")
	}

	ledger, err := gw.LoadDay(ctx, "1/5/2025")
	if !errors.Is(err, service.ErrStorageIO) {
		t.Fatalf("expected ErrStorageIO, got %v", err)
	}
	if ledger == nil || len(ledger.Entries) != 0 {
		t.Fatalf("degraded load must still return an empty ledger")
	}
}

func TestWriteFaultSurfaces(t *testing.T) {
	t.Parallel()
	gw := service.NewGateway(failingStore{}, logger.Nop())
	ctx := context.Background()

	if err := gw.SaveCatalog(ctx, service.NewCatalog()); !errors.Is(err, service.ErrStorageIO) {
		t.Fatalf("expected ErrStorageIO, got %v", err)
	}
	if err := gw.SaveDay(ctx, "1/5/2025", service.NewLedger()); !errors.Is(err, service.ErrStorageIO) {
		t.Fatalf("expected ErrStorageIO, got %v", err)
	}
}
