// Package decl names table-driven test cases by their file:line declaration.
package decl

import (
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
)

// New captures the location of the caller.
func New[T any](data T) Declaration[T] {
	return Declaration[T]{
		Decl: decl(2),
		Data: data,
	}
}

type Declaration[T any] struct {
	Decl string
	Data T
}

// Run runs fn as a subtest of t for every declaration.
func Run[T any](
	t *testing.T,
	decls []Declaration[T],
	fn func(t *testing.T, data T),
) {
	t.Helper()
	for _, d := range decls {
		d := d
		t.Run(d.Decl, func(t *testing.T) { fn(t, d.Data) })
	}
}

func decl(skipFrames int) string {
	_, filename, line, _ := runtime.Caller(skipFrames)
	return fmt.Sprintf("%s:%d", filepath.Base(filename), line)
}
