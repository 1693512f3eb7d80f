package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/realset/pkg/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/labels"
)

var expectedConfig = &Config{
	Constraints: []Constraint{
		{Name: "sensor", Labels: map[string]string{"unit": "celsius", "scope": "hw"}, Intervals: []string{"[-40, 85]"}},
		{Name: "comfort", Labels: map[string]string{"unit": "celsius", "scope": "room"}, Intervals: []string{"[18, 24)", "(26, 28]", "[22, 25]"}},
		{Name: "frequency", Labels: map[string]string{"unit": "hz"}, Intervals: []string{"(0, inf)"}},
	},
}

func TestLoad(t *testing.T) {
	cases := map[string]struct {
		path        string
		expectedErr bool
	}{
		"TOML":        {path: "testdata/constraints.toml"},
		"YAML":        {path: "testdata/constraints.yaml"},
		"Unsupported": {path: "testdata/constraints.json", expectedErr: true},
		"Missing":     {path: "testdata/missing.yaml", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := Load(tc.path)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(expectedConfig, c); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	_, err := Decode([]byte("constraints: [\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("[[constraint]\n"), FormatTOML)
	assert.Error(t, err)

	_, err = Decode([]byte(""), Format("ini"))
	assert.Error(t, err)

	c, err := Decode([]byte(""), FormatYAML)
	assert.NoError(t, err)
	assert.Empty(t, c.Constraints)
}

func TestTable(t *testing.T) {
	c, err := Load("testdata/constraints.toml")
	require.NoError(t, err)

	tbl, err := c.Table(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Count())

	comfort, err := tbl.Get("comfort")
	require.NoError(t, err)
	assert.Equal(t, "[18, 25] ∪ (26, 28]", comfort.Set().String())

	celsius := labels.SelectorFromSet(labels.Set{"unit": "celsius"})
	assert.Equal(t, "[18, 25] ∪ (26, 28]", tbl.Allowed(celsius).String())
	assert.NoError(t, tbl.Validate(celsius, 24.5))
	assert.Error(t, tbl.Validate(celsius, 25.5))
}

func TestTableReportsDropped(t *testing.T) {
	c, err := Load("testdata/broken.yaml")
	require.NoError(t, err)

	tbl, err := c.Table(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, interval.ErrInvalidInterval)
	assert.ErrorIs(t, err, interval.ErrUnparseable)
	assert.Contains(t, err.Error(), "constraint sensor already exists")
	assert.Contains(t, err.Error(), "constraint name cannot be empty")

	// the valid part of the first definition survives
	require.Equal(t, 1, tbl.Count())
	sensor, err := tbl.Get("sensor")
	require.NoError(t, err)
	assert.Equal(t, "[-40, 85]", sensor.Set().String())
}
