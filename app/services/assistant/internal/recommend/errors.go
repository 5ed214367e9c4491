package recommend

import "errors"

// Failure taxonomy for the two I/O boundaries. These never cross the
// Recommender boundary; they exist so the failure kind is explicit in logs
// and checkable in tests.
var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrCompletionRequest  = errors.New("completion request failed")
	ErrCompletionEmpty    = errors.New("completion returned no usable content")
)
