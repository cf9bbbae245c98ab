package authoring

// Config controls lesson generation.
type Config struct {
	MaxTokens   int
	Temperature float64
	// MinSteps and MaxSteps bound the generated step count requested in
	// the prompt.
	MinSteps int
	MaxSteps int
}

// DefaultConfig returns production generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
		MinSteps:    4,
		MaxSteps:    8,
	}
}
