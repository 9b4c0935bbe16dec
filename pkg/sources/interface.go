package sources

import (
	"context"

	"github.com/kerbaras/pible/pkg/data"
)

// Resolver turns a verse coordinate into its text for one translation.
type Resolver interface {
	Resolve(ctx context.Context, ref data.Reference, credential string) (string, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(ctx context.Context, ref data.Reference, credential string) (string, error)

func (f ResolverFunc) Resolve(ctx context.Context, ref data.Reference, credential string) (string, error) {
	return f(ctx, ref, credential)
}

// Registry selects a Resolver by translation.
type Registry struct {
	resolvers map[data.Translation]Resolver
}

// NewRegistry wires the local resolver to KJV and the remote one to ESV.
// A nil resolver leaves that translation unregistered.
func NewRegistry(local, remote Resolver) *Registry {
	r := &Registry{resolvers: make(map[data.Translation]Resolver)}
	if local != nil {
		r.Register(data.KJV, local)
	}
	if remote != nil {
		r.Register(data.ESV, remote)
	}
	return r
}

// Register binds a resolver to a translation, replacing any previous one.
func (r *Registry) Register(t data.Translation, resolver Resolver) {
	r.resolvers[t] = resolver
}

func (r *Registry) Lookup(t data.Translation) (Resolver, error) {
	resolver, ok := r.resolvers[t]
	if !ok {
		return nil, &data.TranslationError{Translation: string(t)}
	}
	return resolver, nil
}
