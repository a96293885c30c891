// README: Secret source abstraction with a process-lifetime cache.
package infra

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// SecretSource resolves a named credential. Implementations may call out to a
// secret manager; callers should wrap them in a CachedSecretSource so the
// lookup happens at most once per process.
type SecretSource interface {
	Get(ctx context.Context, name string) (string, error)
}

// EnvSecretSource resolves secrets from environment variables, which is how
// credentials reach short-lived execution contexts in this deployment.
type EnvSecretSource struct{}

func (EnvSecretSource) Get(_ context.Context, name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("secret %s not set", name)
	}
	return v, nil
}

// CachedSecretSource memoizes successful lookups for the process lifetime.
// Credential rotation therefore requires a restart.
type CachedSecretSource struct {
	src SecretSource

	mu    sync.RWMutex
	cache map[string]string
}

func NewCachedSecretSource(src SecretSource) *CachedSecretSource {
	return &CachedSecretSource{src: src, cache: map[string]string{}}
}

func (c *CachedSecretSource) Get(ctx context.Context, name string) (string, error) {
	c.mu.RLock()
	v, ok := c.cache[name]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := c.src.Get(ctx, name)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.cache[name] = v
	c.mu.Unlock()
	return v, nil
}
