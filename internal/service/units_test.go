package service_test

import (
	"errors"
	"math"
	"testing"

	"github.com/shastriUF/calorie-counter/internal/service"
)

func TestDensityFromEntryPopulatesExactlyOneFamily(t *testing.T) {
	t.Parallel()
	cases := []struct {
		unit   string
		family string
	}{
		{"grams", "gram"},
		{"oz", "gram"},
		{"teaspoons", "ml"},
		{"tablespoons", "ml"},
		{"cups", "ml"},
		{"ml", "ml"},
		{"count", "count"},
	}
	for _, tc := range cases {
		d, err := service.DensityFromEntry(100, tc.unit)
		if err != nil {
			t.Fatalf("density from %s: %v", tc.unit, err)
		}
		set := 0
		if d.PerGram != nil {
			set++
			if tc.family != "gram" {
				t.Fatalf("%s populated gram density", tc.unit)
			}
		}
		if d.PerMl != nil {
			set++
			if tc.family != "ml" {
				t.Fatalf("%s populated ml density", tc.unit)
			}
		}
		if d.PerCount != nil {
			set++
			if tc.family != "count" {
				t.Fatalf("%s populated count density", tc.unit)
			}
		}
		if set != 1 {
			t.Fatalf("%s populated %d densities, want exactly 1", tc.unit, set)
		}
	}
}

func TestDensityConsumptionRoundTrip(t *testing.T) {
	t.Parallel()
	// One unit consumed must recover the calorie amount declared per unit.
	for _, unit := range service.Units {
		for _, amount := range []float64{0.5, 12, 95.2, 880} {
			d, err := service.DensityFromEntry(amount, unit)
			if err != nil {
				t.Fatalf("density from %g %s: %v", amount, unit, err)
			}
			got, err := service.CaloriesForConsumption(d, unit, 1)
			if err != nil {
				t.Fatalf("consume 1 %s: %v", unit, err)
			}
			if math.Abs(got-amount) > 1e-9*amount {
				t.Fatalf("round trip %g via %s: got %g", amount, unit, got)
			}
		}
	}
}

func TestCaloriesForConsumptionCrossUnitWithinFamily(t *testing.T) {
	t.Parallel()
	// 480 kcal per cup is 2 kcal/ml; 3 tablespoons is 45 ml.
	d, err := service.DensityFromEntry(480, "cups")
	if err != nil {
		t.Fatalf("density from cups: %v", err)
	}
	got, err := service.CaloriesForConsumption(d, "tablespoons", 3)
	if err != nil {
		t.Fatalf("consume tablespoons: %v", err)
	}
	if math.Abs(got-90) > 1e-9 {
		t.Fatalf("expected 90 calories, got %g", got)
	}
}

func TestDensityFromEntryRejectsUnknownUnit(t *testing.T) {
	t.Parallel()
	_, err := service.DensityFromEntry(10, "handfuls")
	if !errors.Is(err, service.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}

func TestCaloriesForConsumptionMissingFamily(t *testing.T) {
	t.Parallel()
	d, err := service.DensityFromEntry(1.3, "grams")
	if err != nil {
		t.Fatalf("density from grams: %v", err)
	}
	_, err = service.CaloriesForConsumption(d, "cups", 1)
	if !errors.Is(err, service.ErrConversionUnavailable) {
		t.Fatalf("expected ErrConversionUnavailable, got %v", err)
	}
}
