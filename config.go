package polyhedra

// Config is a flat bag of named style options. The core never interprets it:
// it is merged over defaults and handed to the renderer untouched.
type Config map[string]any

// DefaultFacesConfig returns the style applied to face polygons: a
// semi-transparent fill with depth-aware shading.
func DefaultFacesConfig() Config {
	return Config{
		"fill_opacity": 0.5,
		"shade_in_3d":  true,
	}
}

// DefaultGraphConfig returns the style applied to the vertex/edge graph:
// vertices drawn as dots, edges invisible.
func DefaultGraphConfig() Config {
	return Config{
		"vertex_type": "dot3d",
		"edge_config": Config{
			"stroke_opacity": 0.0,
		},
	}
}

// Merge returns a new Config holding c overridden by every key of overrides.
// The merge is shallow: a nested Config in overrides replaces the default one.
func (c Config) Merge(overrides Config) Config {
	merged := make(Config, len(c)+len(overrides))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy.
func (c Config) Clone() Config {
	return Config(nil).Merge(c)
}

// Float returns the numeric value stored under key, or fallback.
func (c Config) Float(key string, fallback float64) float64 {
	switch v := c[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}

// Bool returns the boolean stored under key, or fallback.
func (c Config) Bool(key string, fallback bool) bool {
	if v, ok := c[key].(bool); ok {
		return v
	}
	return fallback
}

// String returns the string stored under key, or fallback.
func (c Config) String(key string, fallback string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return fallback
}

// Sub returns the nested Config stored under key, or an empty one.
func (c Config) Sub(key string) Config {
	switch v := c[key].(type) {
	case Config:
		return v
	case map[string]any:
		return Config(v)
	}
	return Config{}
}
