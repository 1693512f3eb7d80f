package constraint

import (
	"errors"
	"sync"
	"testing"

	"github.com/henderiw/realset/pkg/intervalset"
	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

var initEntries = Constraints{
	NewConstraint("sensor", intervalset.MustParse("[-40, 85]"), map[string]string{"unit": "celsius", "scope": "hw"}),
	NewConstraint("comfort", intervalset.MustParse("[18, 24)", "(26, 28]"), map[string]string{"unit": "celsius", "scope": "room"}),
	NewConstraint("frequency", intervalset.MustParse("(0, inf)"), map[string]string{"unit": "hz"}),
}

func TestNewTable(t *testing.T) {
	cases := map[string]struct {
		initEntries     Constraints
		validation      ValidationFn
		expectedEntries int
		expectedErr     bool
	}{
		"NewWithoutInitEntries": {
			initEntries:     nil,
			expectedEntries: 0,
		},
		"NewWithInitEntries": {
			initEntries:     initEntries,
			validation:      func(c Constraint) error { return nil },
			expectedEntries: 3,
		},
		"NewErrorDuplicate": {
			initEntries:     append(Constraints{initEntries[0]}, initEntries...),
			expectedEntries: 3,
			expectedErr:     true,
		},
		"NewErrorEmptyName": {
			initEntries:     Constraints{NewConstraint("", nil, nil)},
			expectedEntries: 0,
			expectedErr:     true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable(tc.initEntries, tc.validation)
			if tc.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
		})
	}
}

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		newSuccessEntries map[string]string
		newFailedEntries  map[string]string
		expectedEntries   int
	}{
		"Normal": {
			newSuccessEntries: map[string]string{
				"pressure": "[0, 10]",
				"humidity": "[0, 100]",
			},
			newFailedEntries: map[string]string{
				"sensor":   "[0, 1]",
				"negative": "(-inf, 0)",
			},
			expectedEntries: 5,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable(initEntries, func(c Constraint) error {
				if c.Set().Contains(-1) {
					return errors.New("negative values are not allowed")
				}
				return nil
			})
			assert.NoError(t, err)

			for n, s := range tc.newSuccessEntries {
				err := r.Claim(n, intervalset.MustParse(s), nil)
				assert.NoError(t, err)
			}
			for n, s := range tc.newFailedEntries {
				err := r.Claim(n, intervalset.MustParse(s), nil)
				assert.Error(t, err)
			}
			for _, c := range initEntries {
				if !r.Has(c.Name()) {
					t.Errorf("%s expecting initEntry: %s\n", name, c.Name())
				}
			}
			for n := range tc.newSuccessEntries {
				if !r.Has(n) {
					t.Errorf("%s expecting success claim entry: %s\n", name, n)
				}
			}
			if r.Has("negative") {
				t.Errorf("%s no expecting failed claim entry: negative\n", name)
			}
			c, err := r.Get("sensor")
			assert.NoError(t, err)
			assert.True(t, c.Equal(initEntries[0]))
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
		})
	}
}

func TestUpdateRelease(t *testing.T) {
	r, err := NewTable(initEntries, nil)
	assert.NoError(t, err)

	assert.NoError(t, r.Update("sensor", intervalset.MustParse("[-20, 60]"), map[string]string{"unit": "celsius"}))
	assert.Error(t, r.Update("missing", intervalset.MustParse("[0, 1]"), nil))

	c, err := r.Get("sensor")
	assert.NoError(t, err)
	assert.Equal(t, "[-20, 60]", c.Set().String())
	assert.Equal(t, "unit=celsius", c.Labels().String())

	assert.NoError(t, r.Release("sensor"))
	assert.Error(t, r.Release("sensor"))
	_, err = r.Get("sensor")
	assert.Error(t, err)
	assert.Equal(t, 2, r.Count())
}

func TestIterate(t *testing.T) {
	r, err := NewTable(initEntries, nil)
	assert.NoError(t, err)

	var names []string
	iter := r.Iterate()
	for iter.Next() {
		assert.Equal(t, iter.Name(), iter.Value().Name())
		names = append(names, iter.Name())
	}
	assert.Equal(t, []string{"comfort", "frequency", "sensor"}, names)
	assert.Equal(t, 3, len(r.GetAll()))
}

func TestAllowed(t *testing.T) {
	r, err := NewTable(initEntries, nil)
	assert.NoError(t, err)

	cases := map[string]struct {
		selector labels.Selector
		expected string
		members  int
	}{
		"Celsius": {
			selector: labels.SelectorFromSet(labels.Set{"unit": "celsius"}),
			expected: "[18, 24) ∪ (26, 28]",
			members:  2,
		},
		"Hardware": {
			selector: labels.SelectorFromSet(labels.Set{"scope": "hw"}),
			expected: "[-40, 85]",
			members:  1,
		},
		"Everything": {
			selector: labels.Everything(),
			expected: "[18, 24) ∪ (26, 28]",
			members:  3,
		},
		"NoMatch": {
			selector: labels.SelectorFromSet(labels.Set{"unit": "kelvin"}),
			expected: "R",
			members:  0,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.members, len(r.GetByLabel(tc.selector)))
			assert.Equal(t, tc.expected, r.Allowed(tc.selector).String())
		})
	}
}

func TestValidate(t *testing.T) {
	r, err := NewTable(initEntries, nil)
	assert.NoError(t, err)

	celsius := labels.SelectorFromSet(labels.Set{"unit": "celsius"})
	assert.NoError(t, r.Validate(celsius, 20))
	assert.NoError(t, r.Validate(celsius, 28))

	err = r.Validate(celsius, 25)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Contains(t, err.Error(), "18 ≤ x < 24  or  26 < x ≤ 28")

	assert.Error(t, r.Validate(labels.SelectorFromSet(labels.Set{"unit": "hz"}), 0))
}

func TestConcurrentAccess(t *testing.T) {
	r, err := NewTable(initEntries, nil)
	assert.NoError(t, err)

	celsius := labels.SelectorFromSet(labels.Set{"unit": "celsius"})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = r.Validate(celsius, float64(j))
				_ = r.Update("frequency", intervalset.MustParse("(0, inf)"), map[string]string{"unit": "hz"})
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 3, r.Count())
}
