// Package store persists computed layout plans.
//
// This package defines an interface for plan storage with implementations
// for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for the layout service
//
// # Architecture
//
// A Plan wraps the request options and the computed result as opaque JSON
// documents plus a few indexed fields (ID, creation time, options hash).
// Keeping the payloads opaque lets the wire formats evolve without
// migrations; the indexed fields are what the service queries by.
//
// # Usage
//
//	st := store.NewMemoryStore()
//	plan := store.NewPlan(optsJSON, resultJSON, optsHash)
//	if err := st.Put(ctx, plan); err != nil {
//	    return err
//	}
//	got, err := st.Get(ctx, plan.ID)
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a plan does not exist.
var ErrNotFound = errors.New("not found")

// Plan is a stored layout plan.
type Plan struct {
	ID          string          `json:"id" bson:"_id"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	OptionsHash string          `json:"options_hash" bson:"options_hash"`
	Options     json.RawMessage `json:"options" bson:"options"`
	Result      json.RawMessage `json:"result" bson:"result"`
}

// NewPlan wraps serialized options and result into a Plan with a fresh ID.
func NewPlan(options, result json.RawMessage, optionsHash string) *Plan {
	return &Plan{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		OptionsHash: optionsHash,
		Options:     options,
		Result:      result,
	}
}

// Store is the interface for plan storage backends.
type Store interface {
	// Get retrieves a plan by ID.
	// Returns nil, ErrNotFound if the plan doesn't exist.
	Get(ctx context.Context, id string) (*Plan, error)

	// Put stores a plan, replacing any existing plan with the same ID.
	Put(ctx context.Context, plan *Plan) error

	// List returns up to limit plans, newest first.
	List(ctx context.Context, limit int) ([]*Plan, error)

	// Delete removes a plan. Deleting a missing plan is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
