// Package opaque provides optimization barriers for timing loops.
//
// A benchmark loop that calls a pure function with a loop-invariant argument
// and ignores the result gives the compiler license to hoist the call out of
// the loop or drop it entirely. Routing the argument through Value and the
// result through Result closes both doors: neither function is ever inlined,
// so the compiler can prove nothing about what goes in or what comes out.
package opaque

// Value returns x unchanged. The compiler cannot assume anything about the
// returned value, so a call taking it as an argument is never constant-folded
// or cached across loop iterations.
//
//go:noinline
func Value[T any](x T) T {
	return x
}

// Result returns y unchanged. Passing a call's result through Result marks it
// as observed, so the call that produced it is never eliminated as dead code.
//
//go:noinline
func Result[T any](y T) T {
	return y
}
