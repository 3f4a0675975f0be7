package chain

import (
	"context"

	"github.com/ib-77/try3/pkg/try"
)

// Chain wraps a try.Try with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result try.Try[T]
}

// Start creates a new chain from a try.Try
func Start[T any](ctx context.Context, result try.Try[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, try.Success(value))
}

// Run creates a new chain from the captured outcome of f
func Run[T any](ctx context.Context, f func(context.Context) T) *Chain[T] {
	return Start(ctx, try.RunWith(options(ctx), func() T { return f(ctx) }))
}

// Result returns the underlying try.Try
func (c *Chain[T]) Result() try.Try[T] {
	return c.result
}

func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns try.Try[U]. Panics are not captured.
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) try.Try[U]) *Chain[U] {
	return Start(c.ctx, try.Bind(c.result, func(v T) try.Try[U] {
		return onSuccess(c.ctx, v)
	}))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, try.Bind(c.result, func(v T) try.Try[U] {
		return try.RunEWith(options(c.ctx), func() (U, error) {
			return tryOnSuccess(c.ctx, v)
		})
	}))
}

// Map chains a transformation function, capturing its panics
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, try.Bind(c.result, func(v T) try.Try[U] {
		return try.RunWith(options(c.ctx), func() U {
			return onSuccess(c.ctx, v)
		})
	}))
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	if c.result.IsSuccess() && onSuccess != nil {
		onSuccess(c.ctx, c.result.Value())
	}
	return c
}

// OnFailure performs a side effect on failure without changing the result
func (c *Chain[T]) OnFailure(onFailure func(context.Context, error)) *Chain[T] {
	if c.result.IsFailure() && onFailure != nil {
		onFailure(c.ctx, c.result.Err())
	}
	return c
}

// Recover hands a failure to onFailure and continues with its result
func (c *Chain[T]) Recover(onFailure func(context.Context, error) try.Try[T]) *Chain[T] {
	return Start(c.ctx, c.result.Recover(func(err error) try.Try[T] {
		return onFailure(c.ctx, err)
	}))
}

// OrElse replaces a failure with a successful default value
func (c *Chain[T]) OrElse(defaultValue T) *Chain[T] {
	return Start(c.ctx, c.result.OrElse(defaultValue))
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {
	return try.Fold(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err error) U { return onFailure(c.ctx, err) })
}

func options(ctx context.Context) try.Options {
	return try.GetCaptureOptions(ctx, try.DefaultOptions())
}
