package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/etnz/selftrack"
)

// Adapter persists the portfolio aggregate under Key in a KV.
type Adapter struct {
	kv  KV
	key string
}

var (
	_ selftrack.Store       = (*Adapter)(nil)
	_ selftrack.Quarantiner = (*Adapter)(nil)
)

// NewAdapter returns an Adapter on kv.
func NewAdapter(kv KV) *Adapter { return &Adapter{kv: kv, key: Key} }

// KV returns the underlying key-value store.
func (a *Adapter) KV() KV { return a.kv }

// Load returns the persisted aggregate, or nil if there is none.
// A value that cannot be decoded is reported as selftrack.ErrCorrupt.
func (a *Adapter) Load(ctx context.Context) (*selftrack.AppState, error) {
	data, err := a.kv.Get(ctx, a.key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", a.key, err)
	}
	s, err := selftrack.UnmarshalState(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", a.key, err)
	}
	return &s, nil
}

// Save writes the whole aggregate under the key.
func (a *Adapter) Save(ctx context.Context, s selftrack.AppState) error {
	data, err := selftrack.MarshalState(s)
	if err != nil {
		return fmt.Errorf("could not encode portfolio: %w", err)
	}
	if err := a.kv.Set(ctx, a.key, data); err != nil {
		return fmt.Errorf("could not write %q: %w", a.key, err)
	}
	log.Printf("saved %q (%d bytes)", a.key, len(data))
	return nil
}

// Quarantine copies the current raw value to Key+".corrupt", so that it is
// not lost when the aggregate gets saved again.
func (a *Adapter) Quarantine(ctx context.Context) error {
	data, err := a.kv.Get(ctx, a.key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	dst := a.key + ".corrupt"
	if err := a.kv.Set(ctx, dst, data); err != nil {
		return err
	}
	log.Printf("warning: corrupt %q copied to %q", a.key, dst)
	return nil
}

func (a *Adapter) Close() error { return a.kv.Close() }
