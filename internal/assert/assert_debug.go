//go:build debug
// +build debug

package assert

import "fmt"

// DEBUG reports whether this build was compiled with -tags debug.
const DEBUG = true

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
