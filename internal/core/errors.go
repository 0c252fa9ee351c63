// ABOUTME: Error taxonomy for the recommendation pipeline
// ABOUTME: Distinguishes aborting failures from the degradable explanation failure
package core

import (
	"errors"
	"fmt"
)

// ErrNoPreferences marks an empty preference record.
var ErrNoPreferences = errors.New("preference record has no users")

// EmbeddingError wraps a failure of the embedding provider: unreachable,
// timed out, or a malformed response.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string { return fmt.Sprintf("embedding provider: %v", e.Err) }
func (e *EmbeddingError) Unwrap() error { return e.Err }

// AggregationError wraps whatever stopped the group query vector from
// being computed: an invalid record or any member's embedding failure.
// It aborts the request.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string { return fmt.Sprintf("aggregating preferences: %v", e.Err) }
func (e *AggregationError) Unwrap() error { return e.Err }

// RetrievalError wraps a catalog store transport failure. Zero matches is
// a valid empty result, never a RetrievalError. It aborts the request.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string { return fmt.Sprintf("retrieving matches: %v", e.Err) }
func (e *RetrievalError) Unwrap() error { return e.Err }

// ExplanationError wraps a generation provider failure. It is non-fatal:
// the ranked list is still returned with the explanation left unset.
type ExplanationError struct {
	Err error
}

func (e *ExplanationError) Error() string { return fmt.Sprintf("generating explanation: %v", e.Err) }
func (e *ExplanationError) Unwrap() error { return e.Err }
