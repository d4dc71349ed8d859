package redis

import (
	"testing"
)

func TestKeyBuilder_Environment_Prefixes(t *testing.T) {
	tests := []struct {
		name           string
		environment    string
		expectedPrefix string
	}{
		{
			name:           "Production environment should use prod prefix",
			environment:    "production",
			expectedPrefix: "prod",
		},
		{
			name:           "Development environment should use staging prefix",
			environment:    "development",
			expectedPrefix: "staging",
		},
		{
			name:           "Staging environment should use staging prefix",
			environment:    "staging",
			expectedPrefix: "staging",
		},
		{
			name:           "Unknown environment should default to prod prefix",
			environment:    "unknown",
			expectedPrefix: "prod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKeyBuilder(tt.environment)
			if kb.GetPrefix() != tt.expectedPrefix {
				t.Errorf("NewKeyBuilder(%s).GetPrefix() = %s, want %s",
					tt.environment, kb.GetPrefix(), tt.expectedPrefix)
			}
		})
	}
}

func TestKeyBuilder_KeyGeneration(t *testing.T) {
	prod := NewKeyBuilder("production")
	dev := NewKeyBuilder("development")

	tests := []struct {
		name     string
		method   func() string
		expected string
	}{
		{
			name:     "Credential key",
			method:   prod.KeyCredential,
			expected: "prod:yt_api_key",
		},
		{
			name:     "Watch history key",
			method:   prod.KeyWatchHistory,
			expected: "prod:watch_history",
		},
		{
			name:     "Development credential key",
			method:   dev.KeyCredential,
			expected: "staging:yt_api_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.method(); got != tt.expected {
				t.Errorf("%s = %s, want %s", tt.name, got, tt.expected)
			}
		})
	}
}
