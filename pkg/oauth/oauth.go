package oauth

import (
	"context"
	"errors"
)

var (
	ErrTokenRejected   = errors.New("social token rejected by provider")
	ErrUnknownProvider = errors.New("unknown social provider")
)

// UserInfo is the external profile a provider vouches for.
type UserInfo struct {
	ID      string
	Name    string
	Email   string
	Picture string
}

// Verifier validates a third-party identity token for one provider.
type Verifier interface {
	Provider() string
	VerifyToken(ctx context.Context, token string) (*UserInfo, error)
}

// Registry maps provider names to their verifiers.
type Registry struct {
	verifiers map[string]Verifier
}

// NewRegistry creates a registry from the given verifiers.
func NewRegistry(verifiers ...Verifier) *Registry {
	r := &Registry{verifiers: make(map[string]Verifier, len(verifiers))}
	for _, v := range verifiers {
		r.verifiers[v.Provider()] = v
	}
	return r
}

// Lookup returns the verifier for the named provider.
func (r *Registry) Lookup(provider string) (Verifier, error) {
	v, ok := r.verifiers[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return v, nil
}
