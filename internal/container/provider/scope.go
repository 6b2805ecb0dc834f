package provider

import "context"

type providerKey struct{}

// Attach returns a child context through which descendants can reach p.
func (p *Provider) Attach(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the nearest provider in ctx.
func FromContext(ctx context.Context) (*Provider, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	return p, ok && p != nil
}

// Use returns the current bundle of the nearest provider, or DefaultValue
// when ctx carries none.
func Use(ctx context.Context) Value {
	p, ok := FromContext(ctx)
	if !ok {
		return DefaultValue()
	}
	return p.Value()
}

// Consume passes the current bundle to render. It is the callback form of
// Use and shares its fallback.
func Consume(ctx context.Context, render func(Value)) {
	if render == nil {
		return
	}
	render(Use(ctx))
}
