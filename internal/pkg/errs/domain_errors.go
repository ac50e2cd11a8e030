package errs

import (
	"sync"

	cr "github.com/cockroachdb/errors"
)

// Category markers. Sentinels declared with NewCategorized belong to one of
// these so the HTTP layer can map whole families of errors to a status code
// while each sentinel stays distinguishable from its siblings.
var (
	ErrNotFound   = New("not found")
	ErrConflict   = New("conflict")
	ErrValidation = New("validation failed")
	ErrForbidden  = New("forbidden")

	ErrIdempotencyKeyRequired = New("idempotency key required")
	ErrDatabaseOperation      = New("database operation failed")
)

type categorized struct {
	sentinel error
	category error
}

var (
	registryMu sync.RWMutex
	registry   []categorized
)

// NewCategorized declares a sentinel belonging to category.
func NewCategorized(msg string, category error) error {
	return Categorize(cr.New(msg), category)
}

// Categorize registers sentinel as a member of category and returns it.
// Call it only from package-level var declarations.
func Categorize(sentinel, category error) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, categorized{sentinel: sentinel, category: category})
	return sentinel
}

func inCategory(err, category error) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, c := range registry {
		if c.category == category && cr.Is(err, c.sentinel) {
			return true
		}
	}
	return false
}

// WithCause returns sentinel carrying cause as secondary context. The public
// message stays the sentinel's while logs keep the cause.
func WithCause(sentinel, cause error) error {
	return cr.WithSecondaryError(sentinel, cause)
}
