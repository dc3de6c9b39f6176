// Package cache provides caching for expensive layout inputs.
//
// Two things are worth caching in practice: background color samples
// (decoding and averaging image regions) and complete layout plans keyed
// by their input options. The Cache interface abstracts the backend so
// the CLI can use a file cache, the server can use Redis, and tests can
// use the null cache.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached artifact type. Samples are derived purely from
// image bytes and can live long; plans embed option defaults that may
// change between releases.
const (
	TTLSample = 24 * time.Hour
	TTLPlan   = time.Hour
)

// Cache is the storage backend interface.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether
	// the key was found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SampleKeyOpts identifies a sampled background region.
type SampleKeyOpts struct {
	X, Y, W, H float64
	Grid       int
}

// PlanKeyOpts identifies a computed layout plan.
type PlanKeyOpts struct {
	// OptionsHash is the hash of the serialized layout options.
	OptionsHash string
	// BackgroundHash is the hash of the background image bytes,
	// empty when no background was supplied.
	BackgroundHash string
}

// Keyer generates cache keys for the different cached artifact types.
// Keys embed every input that affects the cached value so stale entries
// can never be served for changed inputs.
type Keyer interface {
	// SampleKey generates a key for a background color sample.
	SampleKey(imageHash string, opts SampleKeyOpts) string

	// PlanKey generates a key for a complete layout plan.
	PlanKey(opts PlanKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SampleKey generates a key for a background color sample.
func (k *DefaultKeyer) SampleKey(imageHash string, opts SampleKeyOpts) string {
	return hashKey("sample", imageHash, opts.X, opts.Y, opts.W, opts.H, opts.Grid)
}

// PlanKey generates a key for a complete layout plan.
func (k *DefaultKeyer) PlanKey(opts PlanKeyOpts) string {
	return hashKey("plan", opts.OptionsHash, opts.BackgroundHash)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
