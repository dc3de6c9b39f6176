package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewPlan(t *testing.T) {
	opts := json.RawMessage(`{"text":"HI"}`)
	res := json.RawMessage(`{"text":{"font_size":120}}`)

	plan := NewPlan(opts, res, "hash123")
	if plan.ID == "" {
		t.Error("NewPlan should assign an ID")
	}
	if plan.CreatedAt.IsZero() {
		t.Error("NewPlan should set CreatedAt")
	}
	if plan.OptionsHash != "hash123" {
		t.Errorf("OptionsHash = %q", plan.OptionsHash)
	}

	other := NewPlan(opts, res, "hash123")
	if other.ID == plan.ID {
		t.Error("plan IDs should be unique")
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	// Get before Put
	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get of missing plan = %v, want ErrNotFound", err)
	}

	plan := NewPlan(json.RawMessage(`{}`), json.RawMessage(`{}`), "h1")
	if err := s.Put(ctx, plan); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := s.Get(ctx, plan.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ID != plan.ID || got.OptionsHash != "h1" {
		t.Errorf("Get returned %+v", got)
	}

	// Stored plans are copies; mutating the original must not leak.
	plan.OptionsHash = "mutated"
	got, _ = s.Get(ctx, plan.ID)
	if got.OptionsHash != "h1" {
		t.Error("store should hold a copy, not the caller's pointer")
	}

	// Delete
	if err := s.Delete(ctx, plan.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, plan.ID); !errors.Is(err, ErrNotFound) {
		t.Error("Get after Delete should return ErrNotFound")
	}

	// Deleting a missing plan is not an error
	if err := s.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing plan: %v", err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		plan := NewPlan(json.RawMessage(`{}`), json.RawMessage(`{}`), "h")
		plan.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := s.Put(ctx, plan); err != nil {
			t.Fatalf("Put error: %v", err)
		}
	}

	plans, err := s.List(ctx, 3)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("got %d plans, want 3", len(plans))
	}
	for i := 1; i < len(plans); i++ {
		if plans[i].CreatedAt.After(plans[i-1].CreatedAt) {
			t.Error("List should return plans newest first")
		}
	}

	// limit 0 returns everything
	all, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("got %d plans, want 5", len(all))
	}
}
