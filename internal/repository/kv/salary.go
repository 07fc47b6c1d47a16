package kv

import (
	"context"
	"fmt"
	"sort"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
)

// SalaryRepository keeps every salary structure in one map keyed by employee
// id. Derived amounts are written for readers of the raw blob but recomputed
// from baseSalary on every read.
type SalaryRepository struct {
	store kvstore.Store
}

func NewSalaryRepository(store kvstore.Store) payroll.SalaryRepository {
	return &SalaryRepository{store: store}
}

func (r *SalaryRepository) loadAll(ctx context.Context) (map[string]payroll.SalaryStructure, error) {
	salaries := make(map[string]payroll.SalaryStructure)
	if _, err := load(ctx, r.store, keySalaryData, &salaries); err != nil {
		return nil, err
	}

	for id, stored := range salaries {
		if err := stored.Validate(); err != nil {
			return nil, corrupt(keySalaryData, err)
		}
		if stored.EmployeeID != id {
			return nil, corrupt(keySalaryData, fmt.Errorf("entry %s holds employee %s", id, stored.EmployeeID))
		}
		computed, err := payroll.ComputeFor(id, stored.BaseSalary)
		if err != nil {
			return nil, corrupt(keySalaryData, err)
		}
		salaries[id] = computed
	}
	return salaries, nil
}

func (r *SalaryRepository) Get(ctx context.Context, employeeID string) (payroll.SalaryStructure, error) {
	salaries, err := r.loadAll(ctx)
	if err != nil {
		return payroll.SalaryStructure{}, err
	}
	s, ok := salaries[employeeID]
	if !ok {
		return payroll.SalaryStructure{}, payroll.ErrSalaryNotFound
	}
	return s, nil
}

func (r *SalaryRepository) List(ctx context.Context) ([]payroll.SalaryStructure, error) {
	salaries, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]payroll.SalaryStructure, 0, len(salaries))
	for _, s := range salaries {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].EmployeeID < list[j].EmployeeID
	})
	return list, nil
}

func (r *SalaryRepository) Save(ctx context.Context, salary payroll.SalaryStructure) error {
	salaries, err := r.loadAll(ctx)
	if err != nil {
		return err
	}

	computed, err := payroll.ComputeFor(salary.EmployeeID, salary.BaseSalary)
	if err != nil {
		return err
	}
	salaries[salary.EmployeeID] = computed
	return save(ctx, r.store, keySalaryData, salaries)
}
