// Package options implements generic functional options for per-call settings.
package options

// OptionConstructor returns the defaults options are applied on top of.
type OptionConstructor[T any] func() T

// OptionCallback modifies options in place.
type OptionCallback[T any] func(*T)

// ApplyOptions builds T from constructor (or the zero value when constructor
// is nil) and applies cbs in order, so later callbacks win.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		if cb != nil {
			cb(&opts)
		}
	}

	return opts
}
