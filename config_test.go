package polyhedra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigMerge(t *testing.T) {
	defaults := DefaultFacesConfig()
	merged := defaults.Merge(Config{"fill_opacity": 1.0, "fill_color": "#ff0000"})

	assert.Equal(t, 1.0, merged.Float("fill_opacity", 0))
	assert.Equal(t, true, merged.Bool("shade_in_3d", false))
	assert.Equal(t, "#ff0000", merged.String("fill_color", ""))

	// Defaults are left untouched.
	assert.Equal(t, 0.5, defaults.Float("fill_opacity", 0))
	assert.NotContains(t, defaults, "fill_color")
}

func TestConfigMergeIsShallow(t *testing.T) {
	merged := DefaultGraphConfig().Merge(Config{"edge_config": Config{"stroke_width": 2}})

	edge := merged.Sub("edge_config")
	assert.Equal(t, 2.0, edge.Float("stroke_width", 0))
	assert.NotContains(t, edge, "stroke_opacity")
}

func TestConfigGetters(t *testing.T) {
	c := Config{
		"int":    3,
		"float":  float32(0.25),
		"bool":   true,
		"string": "dot",
		"map":    map[string]any{"a": 1},
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"int as float", c.Float("int", 0), 3.0},
		{"float32 as float", c.Float("float", 0), 0.25},
		{"missing float", c.Float("missing", 7), 7.0},
		{"wrong type float", c.Float("string", 7), 7.0},
		{"bool", c.Bool("bool", false), true},
		{"missing bool", c.Bool("missing", true), true},
		{"string", c.String("string", ""), "dot"},
		{"missing string", c.String("missing", "x"), "x"},
		{"plain map as sub", c.Sub("map").Float("a", 0), 1.0},
		{"missing sub", len(c.Sub("missing")), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
