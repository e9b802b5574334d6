package wizard_test

import (
	"errors"

	"github.com/envelope-zero/onboarding/internal/models"
	"github.com/envelope-zero/onboarding/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errStoreFailure = errors.New("the store rejected the record")

// call is one add operation received by the recordingStore.
type call struct {
	op     string
	id     uuid.UUID
	record any
}

// recordingStore is an in-memory store.Store that remembers every
// committed add in order. Adds of the operation named in failOp fail.
type recordingStore struct {
	calls        []call
	failOp       string
	transactions int
}

var _ store.Store = (*recordingStore)(nil)

func (s *recordingStore) add(op string, m *models.DefaultModel, record any) error {
	if s.failOp == op {
		return errStoreFailure
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	s.calls = append(s.calls, call{op: op, id: m.ID, record: record})
	return nil
}

func (s *recordingStore) AddOrganization(o *models.Organization) error {
	return s.add("organization", &o.DefaultModel, *o)
}

func (s *recordingStore) AddDepartment(d *models.Department) error {
	return s.add("department", &d.DefaultModel, *d)
}

func (s *recordingStore) AddTeam(t *models.Team) error {
	return s.add("team", &t.DefaultModel, *t)
}

func (s *recordingStore) AddManager(m *models.Manager) error {
	return s.add("manager", &m.DefaultModel, *m)
}

func (s *recordingStore) AddBudget(b *models.Budget) error {
	return s.add("budget", &b.DefaultModel, *b)
}

// Transaction only keeps the adds of fn when it succeeds.
func (s *recordingStore) Transaction(fn func(store.Store) error) error {
	tx := &recordingStore{failOp: s.failOp}
	if err := fn(tx); err != nil {
		return err
	}

	s.calls = append(s.calls, tx.calls...)
	s.transactions++
	return nil
}

func (s *recordingStore) ops() []string {
	ops := make([]string, 0, len(s.calls))
	for _, c := range s.calls {
		ops = append(ops, c.op)
	}
	return ops
}

func (s *recordingStore) filter(op string) []call {
	var result []call
	for _, c := range s.calls {
		if c.op == op {
			result = append(result, c)
		}
	}
	return result
}

func ptr[T any](v T) *T {
	return &v
}

func amount(i int64) decimal.Decimal {
	return decimal.NewFromInt(i)
}
