package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful when a shared Redis instance serves several deployments
// and each needs its own cache namespace.
//
// Example usage:
//
//	// Channel-specific keys
//	channelKeyer := NewScopedKeyer(NewDefaultKeyer(), "channel:abc123:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SampleKey generates a prefixed key for a background color sample.
func (k *ScopedKeyer) SampleKey(imageHash string, opts SampleKeyOpts) string {
	return k.prefix + k.inner.SampleKey(imageHash, opts)
}

// PlanKey generates a prefixed key for a layout plan.
func (k *ScopedKeyer) PlanKey(opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(opts)
}
