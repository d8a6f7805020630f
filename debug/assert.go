//go:build debug

package debug

// Enabled reports whether assertions are compiled in. Guard checks that
// need extra work (anything that could panic) with `if debug.Enabled{...}`.
const Enabled = true

func Assert(b bool, message string) {
	if !b {
		panic("assertion failed: " + message)
	}
}

func AssertErrNil(err error) {
	if err != nil {
		panic(err)
	}
}
