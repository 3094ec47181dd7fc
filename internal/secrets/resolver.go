package secrets

import (
	"fmt"
	"os"
	"strings"

	derr "github.com/tripdeck/concierge/internal/domain/errors"
)

// Resolver looks up a named provider secret. Lookups happen at first client
// use, so a provider with absent credentials never blocks unrelated startup.
type Resolver interface {
	Resolve(name string) (string, error)
}

// EnvResolver reads secrets from process environment.
type EnvResolver struct{}

func NewEnvResolver() EnvResolver {
	return EnvResolver{}
}

func (EnvResolver) Resolve(name string) (string, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return "", fmt.Errorf("%w: %s environment variable is required", derr.ErrMissingCredential, name)
	}
	return value, nil
}

// StaticResolver serves fixture secrets from a map, for tests.
type StaticResolver map[string]string

func (r StaticResolver) Resolve(name string) (string, error) {
	value, ok := r[name]
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s environment variable is required", derr.ErrMissingCredential, name)
	}
	return value, nil
}
