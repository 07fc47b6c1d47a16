// Package kv implements the domain repositories on top of a kvstore.Store.
// Each collection is one JSON blob; records are decoded strictly and
// validated so a malformed blob surfaces as ErrCorruptRecord.
package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
)

var ErrCorruptRecord = errors.New("stored record is malformed")

const (
	collectionAttendance = "attendance"
	collectionProfile    = "profile"
	keyLeaveRequests     = "leaveRequests"
	keySalaryData        = "salaryData"
	keyRegisteredUsers   = "registeredUsers"
)

// load decodes the blob at key into dst. found is false when the key has
// never been written.
func load(ctx context.Context, store kvstore.Store, key string, dst any) (found bool, err error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	// A JSON null would reset dst to its zero value and leave maps nil.
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, corrupt(key, errors.New("collection is null"))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	return true, nil
}

func save(ctx context.Context, store kvstore.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func corrupt(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
}
