package service

import "errors"

var (
	// ErrIngredientNotFound means a consumption referenced a name that is
	// not in the catalog. User-correctable; never fatal.
	ErrIngredientNotFound = errors.New("ingredient not found")

	// ErrConversionUnavailable means the ingredient exists but has no
	// density recorded for the requested unit's measure family.
	ErrConversionUnavailable = errors.New("no calorie density for this unit's measure")

	// ErrInvalidUnit means a unit outside the fixed vocabulary. The CLI
	// constrains input to the vocabulary, so this is defensive only.
	ErrInvalidUnit = errors.New("unsupported unit")

	// ErrVersionMismatch rejects an export file whose version differs
	// from CurrentExportVersion. No forward or backward compatibility.
	ErrVersionMismatch = errors.New("incompatible export version")

	// ErrMalformedDocument rejects an export file that does not parse or
	// lacks the consumedItems field.
	ErrMalformedDocument = errors.New("malformed export document")

	// ErrEmptySelection rejects a meal export with no matching entries.
	ErrEmptySelection = errors.New("no entries for the requested meal")

	// ErrStorageIO wraps read/write faults from the backing store.
	ErrStorageIO = errors.New("storage failure")
)
