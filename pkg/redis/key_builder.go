package redis

import "fmt"

// KeyBuilder provides environment-aware key building. The same prefixes are
// used by every storage backend so a database can be shared between
// environments.
type KeyBuilder struct {
	prefix string // Environment prefix (staging/prod)
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

func (kb *KeyBuilder) KeyCredential() string {
	return kb.BuildKey(KeyCredential)
}

func (kb *KeyBuilder) KeyWatchHistory() string {
	return kb.BuildKey(KeyWatchHistory)
}
