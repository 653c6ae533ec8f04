// Package errdefer runs cleanup operations
// that must be deferred until the end of a function,
// but which may return errors that should be returned from the function.
package errdefer

import "errors"

// Run calls fn and joins any error it returns with the given error.
//
// Use it inside a defer statement with a named return.
func Run(err *error, fn func() error) {
	*err = errors.Join(*err, fn())
}
