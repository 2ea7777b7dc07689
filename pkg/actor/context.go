package actor

import "context"

type actorContextKey struct{}

// WithActor adds a resolved actor to the context.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, a)
}

// FromContext retrieves the resolved actor from the context. The second
// return value is false for anonymous requests.
func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorContextKey{}).(Actor)
	return a, ok
}
