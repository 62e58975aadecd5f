//go:build !debug
// +build !debug

// Package assert provides cheap invariant checks that compile to nothing
// unless built with -tags debug. Grounded on the teacher's assert package:
// same DEBUG const + no-op Assert signature, split across two build-tagged
// files instead of one function body testing a bool. A release-build call
// still evaluates its arguments unless it is guarded as described on
// Assert.
package assert

// DEBUG reports whether this build was compiled with -tags debug.
const DEBUG = false

// Assert is a no-op in a release build. Wrap calls in
// `if assert.DEBUG { ... }` so the Go compiler drops the whole statement,
// including the cost of building msg's arguments, rather than relying on
// Assert itself to discard them.
func Assert(test bool, msg string, a ...interface{}) {}
