package constraint

import (
	"fmt"

	"github.com/henderiw/realset/pkg/intervalset"
	"k8s.io/apimachinery/pkg/labels"
)

// Constraint is a named set of allowed values.
type Constraint interface {
	Name() string
	Set() *intervalset.Set
	Labels() labels.Set
	String() string
	Equal(c2 Constraint) bool
}

type constraint struct {
	name   string
	set    *intervalset.Set
	labels labels.Set
}

type Constraints []Constraint

func (r constraint) Name() string          { return r.name }
func (r constraint) Set() *intervalset.Set { return r.set }
func (r constraint) Labels() labels.Set    { return r.labels }
func (r constraint) String() string {
	return fmt.Sprintf("name: %s, set: %s, labels: %s", r.name, r.set.String(), r.labels.String())
}
func (r constraint) Equal(c2 Constraint) bool {
	return r.Name() == c2.Name() &&
		r.set.Equal(c2.Set()) &&
		r.labels.String() == c2.Labels().String()
}

func NewConstraint(name string, set *intervalset.Set, l labels.Set) Constraint {
	if set == nil {
		set = intervalset.Empty()
	}
	return constraint{
		name:   name,
		set:    set,
		labels: labels.Merge(nil, l),
	}
}
