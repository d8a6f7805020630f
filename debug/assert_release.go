//go:build !debug

// Package debug provides invariant checks for the kernel's state objects.
// They are enabled with the debug build tag and compile to nothing
// otherwise, so they may be sprinkled into allocator and input paths that
// run on every byte.
package debug

// Enabled reports whether assertions are compiled in. Guard checks that
// need extra work (anything that could panic) with `if debug.Enabled{...}`.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
