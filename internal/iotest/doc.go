// Package iotest provides io helpers for tests.
package iotest
