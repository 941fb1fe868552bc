package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/shastriUF/calorie-counter/internal/store"
)

const (
	ingredientsKey  = "ingredients"
	ledgerKeyPrefix = "consumedItems_"
	totalKeyPrefix  = "calories_"
)

// DateKey formats a day the way the mobile app's toLocaleDateString()
// did: M/D/YYYY with no leading zeros. Existing stores are keyed on this
// exact format, so it must never change shape; any future migration to a
// canonical key touches only this function.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// LedgerKey derives the store key holding a day's consumed entries.
func LedgerKey(dateKey string) string {
	return ledgerKeyPrefix + dateKey
}

// Gateway moves the catalog and day ledgers between memory and the
// backing store. In-memory copies are caches; the store is ground truth
// across restarts. Writes are last-write-wins with no retry.
type Gateway struct {
	store store.Store
	log   *zap.SugaredLogger
}

func NewGateway(st store.Store, log *zap.SugaredLogger) *Gateway {
	return &Gateway{store: st, log: log}
}

// LoadCatalog reads the ingredient catalog. An absent key is the
// first-run case and yields an empty catalog. A read fault also yields
// an empty catalog so the session can proceed, but is logged and
// returned so the caller can warn that state may be stale.
func (g *Gateway) LoadCatalog(ctx context.Context) (*Catalog, error) {
	catalog := NewCatalog()
	raw, ok, err := g.store.GetString(ctx, ingredientsKey)
	if err != nil {
		g.log.Errorw("load ingredient catalog", "key", ingredientsKey, "err", err)
		return catalog, fmt.Errorf("%w: %v", ErrStorageIO, err)
	}
	if !ok {
		return catalog, nil
	}
	if err := json.Unmarshal([]byte(raw), &catalog.Ingredients); err != nil {
		g.log.Errorw("decode ingredient catalog", "key", ingredientsKey, "err", err)
		return NewCatalog(), fmt.Errorf("%w: decode %s: %v", ErrStorageIO, ingredientsKey, err)
	}
	return catalog, nil
}

// SaveCatalog overwrites the stored catalog unconditionally.
func (g *Gateway) SaveCatalog(ctx context.Context, catalog *Catalog) error {
	raw, err := json.Marshal(catalog.Ingredients)
	if err != nil {
		return fmt.Errorf("encode ingredient catalog: %w", err)
	}
	if err := g.store.SetString(ctx, ingredientsKey, string(raw)); err != nil {
		g.log.Errorw("save ingredient catalog", "key", ingredientsKey, "err", err)
		return fmt.Errorf("%w: %v", ErrStorageIO, err)
	}
	return nil
}

// LoadDay reads the ledger stored under dateKey. Absent key means the
// day has no entries yet; read faults degrade to an empty ledger and are
// logged and returned like LoadCatalog's.
func (g *Gateway) LoadDay(ctx context.Context, dateKey string) (*Ledger, error) {
	ledger := NewLedger()
	key := LedgerKey(dateKey)
	raw, ok, err := g.store.GetString(ctx, key)
	if err != nil {
		g.log.Errorw("load day ledger", "key", key, "err", err)
		return ledger, fmt.Errorf("%w: %v", ErrStorageIO, err)
	}
	if !ok {
		return ledger, nil
	}
	if err := json.Unmarshal([]byte(raw), &ledger.Entries); err != nil {
		g.log.Errorw("decode day ledger", "key", key, "err", err)
		return NewLedger(), fmt.Errorf("%w: decode %s: %v", ErrStorageIO, key, err)
	}
	return ledger, nil
}

// SaveDay overwrites the stored ledger for dateKey. The day total is
// also written under the legacy calories_<dateKey> key the mobile app
// maintained; it is never read back, totals always come from entries.
func (g *Gateway) SaveDay(ctx context.Context, dateKey string, ledger *Ledger) error {
	raw, err := json.Marshal(ledger.Entries)
	if err != nil {
		return fmt.Errorf("encode day ledger: %w", err)
	}
	key := LedgerKey(dateKey)
	if err := g.store.SetString(ctx, key, string(raw)); err != nil {
		g.log.Errorw("save day ledger", "key", key, "err", err)
		return fmt.Errorf("%w: %v", ErrStorageIO, err)
	}
	total := strconv.FormatFloat(ledger.TotalCalories(), 'f', -1, 64)
	if err := g.store.SetString(ctx, totalKeyPrefix+dateKey, total); err != nil {
		g.log.Errorw("save day total", "key", totalKeyPrefix+dateKey, "err", err)
		return fmt.Errorf("%w: %v", ErrStorageIO, err)
	}
	return nil
}
