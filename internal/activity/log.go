// Package activity maintains the bounded, append-only feed of workflow
// events. The feed is stored newest-first under a single record key and is
// capped at types.ActivityCap entries; older entries are silently dropped.
package activity

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

// Log appends and lists activity entries against a record store.
type Log struct {
	store types.RecordStore
}

// NewLog creates a log bound to the given store.
func NewLog(store types.RecordStore) *Log {
	return &Log{store: store}
}

// Append prepends entry and truncates to the ActivityCap most recent, in a
// single read-modify-write cycle against the store. Retention follows
// insertion order; timestamps are never compared.
func (l *Log) Append(entry types.ActivityEntry) error {
	entries := []types.ActivityEntry{}
	if err := l.store.Get(types.KeyActivity, &entries); err != nil {
		return fmt.Errorf("read activity log: %w", err)
	}

	entries = append([]types.ActivityEntry{entry}, entries...)
	if len(entries) > types.ActivityCap {
		entries = entries[:types.ActivityCap]
	}

	if err := l.store.Set(types.KeyActivity, entries); err != nil {
		return fmt.Errorf("write activity log: %w", err)
	}
	return nil
}

// Record builds an entry stamped with the current time and appends it.
func (l *Log) Record(title, detail string) error {
	return l.Append(types.ActivityEntry{
		Title:     title,
		Detail:    detail,
		Timestamp: time.Now(),
	})
}

// List returns the stored entries, newest first.
func (l *Log) List() ([]types.ActivityEntry, error) {
	entries := []types.ActivityEntry{}
	if err := l.store.Get(types.KeyActivity, &entries); err != nil {
		return nil, fmt.Errorf("read activity log: %w", err)
	}
	return entries, nil
}
