// Package flagvalue provides flag.Value implementations.
package flagvalue
