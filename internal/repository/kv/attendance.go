package kv

import (
	"context"
	"sort"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
)

type AttendanceRepository struct {
	store kvstore.Store
}

func NewAttendanceRepository(store kvstore.Store) attendance.Repository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	key := kvstore.Key(collectionAttendance, employeeID)

	var records []attendance.Record
	if _, err := load(ctx, r.store, key, &records); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, corrupt(key, err)
		}
		if seen[rec.Date] {
			return nil, corrupt(key, errDuplicateDate(rec.Date))
		}
		seen[rec.Date] = true
	}

	sortNewestFirst(records)
	return records, nil
}

func (r *AttendanceRepository) Save(ctx context.Context, employeeID string, record attendance.Record) error {
	records, err := r.ListByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if records[i].Date == record.Date {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	sortNewestFirst(records)
	return save(ctx, r.store, kvstore.Key(collectionAttendance, employeeID), records)
}

func sortNewestFirst(records []attendance.Record) {
	// YYYY-MM-DD sorts lexically.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}

type errDuplicateDate string

func (e errDuplicateDate) Error() string {
	return "duplicate record for " + string(e)
}
