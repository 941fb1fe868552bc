package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shastriUF/calorie-counter/internal/logger"
	"github.com/shastriUF/calorie-counter/internal/service"
	"github.com/shastriUF/calorie-counter/internal/store"
)

func newTestGateway(t *testing.T) (*service.Gateway, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemory()
	return service.NewGateway(mem, logger.Nop()), mem
}

func newRiceCatalog(t *testing.T) *service.Catalog {
	t.Helper()
	catalog := service.NewCatalog()
	if _, err := catalog.Upsert("rice", 1.3, "grams"); err != nil {
		t.Fatalf("seed rice: %v", err)
	}
	return catalog
}

var errStoreDown = errors.New("store down")

// failingStore fails every operation, for the degraded-read paths.
type failingStore struct{}

func (failingStore) GetString(context.Context, string) (string, bool, error) {
	return "", false, errStoreDown
}

func (failingStore) SetString(context.Context, string, string) error {
	return errStoreDown
}

func (failingStore) Close() error { return nil }
