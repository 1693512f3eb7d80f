package constraint

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/realset/pkg/intervalset"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/labels"
)

// ErrOutOfRange is returned by Validate for values outside the allowed set.
var ErrOutOfRange = errors.New("value out of range")

// Table holds named constraints. The allowed values for a selection of
// constraints are the intersection of their sets.
type Table interface {
	Get(name string) (Constraint, error)
	Claim(name string, set *intervalset.Set, l labels.Set) error
	Update(name string, set *intervalset.Set, l labels.Set) error
	Release(name string) error

	Iterate() *Iterator

	Count() int
	Has(name string) bool

	GetAll() map[string]Constraint
	GetByLabel(selector labels.Selector) Constraints

	Allowed(selector labels.Selector) *intervalset.Set
	Validate(selector labels.Selector, x float64) error
}

type ValidationFn func(c Constraint) error

func NewTable(initEntries Constraints, v ValidationFn) (Table, error) {
	r := &table{
		m:          new(sync.RWMutex),
		table:      map[string]Constraint{},
		validateFn: v,
	}

	var errm error
	for _, c := range initEntries {
		if err := r.add(c, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table struct {
	m          *sync.RWMutex
	table      map[string]Constraint
	validateFn ValidationFn
}

func (r *table) validate(c Constraint, init bool) error {
	if c.Name() == "" {
		return fmt.Errorf("constraint name cannot be empty")
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *table) Get(name string) (Constraint, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	c, ok := r.table[name]
	if !ok {
		return nil, fmt.Errorf("no match found for: %s", name)
	}
	return c, nil
}

func (r *table) Claim(name string, set *intervalset.Set, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(NewConstraint(name, set, l), false)
}

func (r *table) Update(name string, set *intervalset.Set, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.update(NewConstraint(name, set, l))
}

func (r *table) Release(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.delete(name)
}

func (r *table) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table) iterate() *Iterator {
	keys := make([]string, 0, len(r.table))
	entries := make(map[string]Constraint, len(r.table))
	for key, c := range r.table {
		keys = append(keys, key)
		entries[key] = c
	}
	sort.Strings(keys)

	return &Iterator{current: -1, keys: keys, table: entries}
}

func (r *table) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[name]
	return ok
}

func (r *table) GetAll() map[string]Constraint {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[string]Constraint, len(r.table))
	for name, c := range r.table {
		entries[name] = c
	}
	return entries
}

func (r *table) GetByLabel(selector labels.Selector) Constraints {
	entries := Constraints{}

	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value().Labels()) {
			entries = append(entries, iter.Value())
		}
	}
	return entries
}

// Allowed returns the values that satisfy every constraint matching
// selector. With no matching constraint every real is allowed.
func (r *table) Allowed(selector labels.Selector) *intervalset.Set {
	allowed := intervalset.Reals()
	for _, c := range r.GetByLabel(selector) {
		allowed = allowed.Intersect(c.Set())
	}
	return allowed
}

// Validate returns an error wrapping ErrOutOfRange if x violates any
// constraint matching selector.
func (r *table) Validate(selector labels.Selector, x float64) error {
	allowed := r.Allowed(selector)
	if allowed.Contains(x) {
		return nil
	}
	logrus.WithField("selector", selector.String()).
		WithField("value", x).
		Debug("value rejected")
	return fmt.Errorf("%v: %w, allowed: %s", x, ErrOutOfRange, allowed.Inequality())
}

func (r *table) add(c Constraint, init bool) error {
	if err := r.validate(c, init); err != nil {
		logrus.WithError(err).WithField("constraint", c.Name()).Warn("constraint rejected")
		return err
	}
	if _, ok := r.table[c.Name()]; ok {
		return fmt.Errorf("constraint %s already exists", c.Name())
	}
	r.table[c.Name()] = c
	return nil
}

func (r *table) update(c Constraint) error {
	if err := r.validate(c, false); err != nil {
		logrus.WithError(err).WithField("constraint", c.Name()).Warn("constraint update rejected")
		return err
	}
	if _, ok := r.table[c.Name()]; !ok {
		return fmt.Errorf("constraint %s not found", c.Name())
	}
	r.table[c.Name()] = c
	return nil
}

func (r *table) delete(name string) error {
	if _, ok := r.table[name]; !ok {
		return fmt.Errorf("constraint %s not found", name)
	}
	delete(r.table, name)
	return nil
}
