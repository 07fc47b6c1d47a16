package kv

import (
	"context"
	"fmt"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
)

type RegisteredEmployeeRepository struct {
	store kvstore.Store
}

func NewRegisteredEmployeeRepository(store kvstore.Store) employee.RegisteredRepository {
	return &RegisteredEmployeeRepository{store: store}
}

func (r *RegisteredEmployeeRepository) List(ctx context.Context) ([]employee.RegisteredEmployee, error) {
	var registered []employee.RegisteredEmployee
	if _, err := load(ctx, r.store, keyRegisteredUsers, &registered); err != nil {
		return nil, err
	}
	for _, e := range registered {
		if err := e.Validate(); err != nil {
			return nil, corrupt(keyRegisteredUsers, err)
		}
	}
	return registered, nil
}

// Add appends e. Uniqueness is the directory service's concern.
func (r *RegisteredEmployeeRepository) Add(ctx context.Context, e employee.RegisteredEmployee) error {
	registered, err := r.List(ctx)
	if err != nil {
		return err
	}
	registered = append(registered, e)
	return save(ctx, r.store, keyRegisteredUsers, registered)
}

type ProfileRepository struct {
	store kvstore.Store
}

func NewProfileRepository(store kvstore.Store) employee.ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) Get(ctx context.Context, employeeID string) (employee.ProfileOverlay, error) {
	key := kvstore.Key(collectionProfile, employeeID)

	var overlay employee.ProfileOverlay
	found, err := load(ctx, r.store, key, &overlay)
	if err != nil {
		return employee.ProfileOverlay{}, err
	}
	if !found {
		return employee.ProfileOverlay{}, employee.ErrProfileNotFound
	}
	if err := overlay.Validate(); err != nil {
		return employee.ProfileOverlay{}, corrupt(key, err)
	}
	if overlay.EmployeeID != employeeID {
		return employee.ProfileOverlay{}, corrupt(key, fmt.Errorf("overlay belongs to %s", overlay.EmployeeID))
	}
	return overlay, nil
}

func (r *ProfileRepository) Save(ctx context.Context, overlay employee.ProfileOverlay) error {
	return save(ctx, r.store, kvstore.Key(collectionProfile, overlay.EmployeeID), overlay)
}
