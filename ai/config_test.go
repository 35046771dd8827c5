package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		EmbeddingHost:   "http://localhost:11434",
		EmbeddingModel:  "bge-small-en-v1.5",
		GenerationHost:  "https://api.together.xyz",
		GenerationModel: "meta-llama/Llama-3-70b-chat-hf",
		Temperature:     0.1,
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "bge-small-en-v1.5", cfg.EmbeddingModel)
	assert.Equal(t, "https://api.together.xyz/v1", cfg.GenerationHost)
	assert.Equal(t, "meta-llama/Llama-3-70b-chat-hf", cfg.GenerationModel)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 0.1, cfg.Temperature)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.GenerationHost)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:8080/v1"),
			WithGenerationHost("http://gen:9090/v1"),
			WithEmbeddingModel("custom-embed"),
			WithGenerationModel("custom-gen"),
			WithAPIKey("secret"),
			WithTemperature(0.7),
			WithMaxTokens(256),
		)

		assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://gen:9090/v1", cfg.GenerationHost)
		assert.Equal(t, "custom-embed", cfg.EmbeddingModel)
		assert.Equal(t, "custom-gen", cfg.GenerationModel)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, 0.7, cfg.Temperature)
		assert.Equal(t, 256, cfg.MaxTokens)
	})
}

func TestConfigToken(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "none", cfg.Token())

	cfg.APIKey = "abc"
	assert.Equal(t, "abc", cfg.Token())
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{name: "already has /v1", host: "http://localhost:11434/v1", expected: "http://localhost:11434/v1"},
		{name: "missing /v1", host: "http://localhost:11434", expected: "http://localhost:11434/v1"},
		{name: "has trailing slash", host: "http://localhost:11434/", expected: "http://localhost:11434/v1"},
		{name: "empty host", host: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{EmbeddingHost: tt.host, GenerationHost: tt.host}

			cfg.Normalize()

			assert.Equal(t, tt.expected, cfg.EmbeddingHost)
			assert.Equal(t, tt.expected, cfg.GenerationHost)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := validConfig()

		require.NoError(t, cfg.Validate())

		// Should also normalize
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "https://api.together.xyz/v1", cfg.GenerationHost)
	})

	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }, "EmbeddingHost"},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }, "EmbeddingModel"},
		{"missing generation host", func(c *Config) { c.GenerationHost = "" }, "GenerationHost"},
		{"missing generation model", func(c *Config) { c.GenerationModel = "" }, "GenerationModel"},
		{"temperature too low", func(c *Config) { c.Temperature = -0.1 }, "Temperature"},
		{"temperature too high", func(c *Config) { c.Temperature = 2.5 }, "Temperature"},
		{"negative max tokens", func(c *Config) { c.MaxTokens = -1 }, "MaxTokens"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
