package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shastriUF/calorie-counter/internal/model"
)

// CurrentExportVersion is the interchange document version. Import
// requires an exact match; any drift is rejected rather than risking a
// silent misread of a changed schema.
const CurrentExportVersion = 1.1

// ExportDocument is the self-describing file shared between devices.
// Meal is set only for meal-scoped exports; an absent meal means the
// document carries the whole day.
type ExportDocument struct {
	Version       float64               `json:"version"`
	Date          string                `json:"date"`
	Meal          string                `json:"meal,omitempty"`
	ConsumedItems []model.ConsumedEntry `json:"consumedItems"`
}

// ExportDay snapshots the full ledger for dateKey.
func ExportDay(ledger *Ledger, dateKey string) ExportDocument {
	items := make([]model.ConsumedEntry, len(ledger.Entries))
	copy(items, ledger.Entries)
	return ExportDocument{
		Version:       CurrentExportVersion,
		Date:          dateKey,
		ConsumedItems: items,
	}
}

// ExportMeal snapshots only the entries for one meal. Exporting an empty
// selection fails with ErrEmptySelection rather than producing an empty
// file.
func ExportMeal(ledger *Ledger, dateKey, meal string) (ExportDocument, error) {
	if !model.ValidMeal(meal) {
		return ExportDocument{}, fmt.Errorf("unknown meal %q (use %s)", meal, strings.Join(model.Meals, ", "))
	}
	items := ledger.FilterByMeal(meal)
	if len(items) == 0 {
		return ExportDocument{}, fmt.Errorf("%w: %s on %s", ErrEmptySelection, meal, dateKey)
	}
	return ExportDocument{
		Version:       CurrentExportVersion,
		Date:          dateKey,
		Meal:          meal,
		ConsumedItems: items,
	}, nil
}

// ExportFileName names the shared file: calories_<date-with-dashes>.json
// for a full day, with the meal appended for meal-scoped exports.
func ExportFileName(dateKey, meal string) string {
	name := "calories_" + strings.ReplaceAll(dateKey, "/", "-")
	if meal != "" {
		name += "_" + meal
	}
	return name + ".json"
}

// EncodeExportDocument renders the document as the UTF-8 JSON written to
// the shared file.
func EncodeExportDocument(doc ExportDocument) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export document: %w", err)
	}
	return raw, nil
}

// DecodeExportDocument parses and validates a shared file. Version must
// equal CurrentExportVersion exactly; a missing version or missing
// consumedItems field is malformed.
func DecodeExportDocument(raw []byte) (ExportDocument, error) {
	var probe struct {
		Version       *float64               `json:"version"`
		Date          string                 `json:"date"`
		Meal          string                 `json:"meal"`
		ConsumedItems *[]model.ConsumedEntry `json:"consumedItems"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ExportDocument{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if probe.Version == nil {
		return ExportDocument{}, fmt.Errorf("%w: missing version", ErrMalformedDocument)
	}
	if *probe.Version != CurrentExportVersion {
		return ExportDocument{}, fmt.Errorf("%w: file is version %g, this app reads version %g",
			ErrVersionMismatch, *probe.Version, CurrentExportVersion)
	}
	if probe.ConsumedItems == nil {
		return ExportDocument{}, fmt.Errorf("%w: missing consumedItems", ErrMalformedDocument)
	}
	return ExportDocument{
		Version:       *probe.Version,
		Date:          probe.Date,
		Meal:          probe.Meal,
		ConsumedItems: *probe.ConsumedItems,
	}, nil
}

// ImportOutcome reports where an import landed so the caller can decide
// whether its current view needs refreshing.
type ImportOutcome struct {
	Date       string
	Meal       string
	Merged     bool
	EntryCount int
	Total      float64
}

// ImportDocument applies a decoded document to the store. A meal-scoped
// document replaces just that meal within the target day: existing
// entries for the same meal are dropped (entries with no meal are left
// alone) and the document's entries are appended. A full-day document
// replaces the day wholesale. The result is persisted before returning.
func (g *Gateway) ImportDocument(ctx context.Context, doc ExportDocument) (ImportOutcome, error) {
	if strings.TrimSpace(doc.Date) == "" {
		return ImportOutcome{}, fmt.Errorf("%w: missing date", ErrMalformedDocument)
	}

	var ledger *Ledger
	if doc.Meal != "" {
		existing, err := g.LoadDay(ctx, doc.Date)
		if err != nil {
			return ImportOutcome{}, err
		}
		ledger = NewLedger()
		for _, e := range existing.Entries {
			if e.Meal == doc.Meal {
				continue
			}
			ledger.Entries = append(ledger.Entries, e)
		}
		ledger.Entries = append(ledger.Entries, doc.ConsumedItems...)
	} else {
		ledger = NewLedger()
		ledger.Entries = append(ledger.Entries, doc.ConsumedItems...)
	}

	if err := g.SaveDay(ctx, doc.Date, ledger); err != nil {
		return ImportOutcome{}, err
	}
	return ImportOutcome{
		Date:       doc.Date,
		Meal:       doc.Meal,
		Merged:     doc.Meal != "",
		EntryCount: len(ledger.Entries),
		Total:      ledger.TotalCalories(),
	}, nil
}
