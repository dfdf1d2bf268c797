// Package testeq reports the differences between expected and actual
// collections item by item, which is more readable than a single
// diff of two large values.
package testeq

import (
	"fmt"

	"github.com/evolib/evo/pkg/container"
	"github.com/evolib/evo/pkg/container/maplist"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// Writer is implemented by *testing.T and *testing.B.
type Writer interface {
	Helper()
	Errorf(fmt string, v ...any)
}

// Maps reports the differences between expected and actual
// in ascending key order.
func Maps[K constraints.Ordered, V any](
	writer Writer,
	title string,
	expected, actual map[K]V,
	check func(expected, actual V) (errMsg string),
	stringify func(V) string,
) (ok bool) {
	writer.Helper()
	exp, act := maplist.New[K, V](), maplist.New[K, V]()
	for k, v := range expected {
		exp.Add(k, v, true)
	}
	for k, v := range actual {
		act.Add(k, v, true)
	}
	return Containers[K, V](writer, title, exp, act, check, stringify)
}

// Containers reports the differences between expected and actual
// in the iteration order of expected followed by the iteration order
// of actual for unexpected keys.
func Containers[K, V any](
	writer Writer,
	title string,
	expected, actual container.Map[K, V],
	check func(expected, actual V) (errMsg string),
	stringify func(V) string,
) (ok bool) {
	writer.Helper()
	ok = true

	container.Visit(expected, func(k K, ev V) (stop bool) {
		av := actual.Find(k)
		if av == nil {
			writer.Errorf(
				"missing %s %v (%s)",
				title, k, stringify(ev),
			)
			ok = false
			return false
		}
		if msg := check(ev, *av); msg != "" {
			writer.Errorf(
				"mismatching %s %v: %s",
				title, k, msg,
			)
			ok = false
		}
		return false
	})

	container.Visit(actual, func(k K, av V) (stop bool) {
		if expected.Find(k) == nil {
			writer.Errorf(
				"unexpected %s %v (%s)",
				title, k, stringify(av),
			)
			ok = false
		}
		return false
	})

	return ok
}

// Slices reports the differences between expect and actual index by index.
func Slices[T any](
	writer Writer,
	title string,
	expect, actual []T,
	check func(expected, actual T) (errMsg string),
	stringify func(T) string,
) (ok bool) {
	writer.Helper()
	ok = true

	for i := 0; i < len(expect) || i < len(actual); i++ {
		switch {
		case i >= len(expect):
			writer.Errorf(
				"unexpected %s at index %d (%s)",
				title, i, stringify(actual[i]),
			)
		case i >= len(actual):
			writer.Errorf(
				"missing %s at index %d (%s)",
				title, i, stringify(expect[i]),
			)
		default:
			errMsg := check(expect[i], actual[i])
			if errMsg == "" {
				continue
			}
			writer.Errorf(
				"mismatching %s at index %d: %s",
				title, i, errMsg,
			)
		}
		ok = false
	}
	return ok
}

// Diff is a check function that reports the difference between
// expected and actual as a -expected +actual diff.
func Diff[T any](expected, actual T) (errMsg string) {
	return cmp.Diff(expected, actual)
}

// Sprint is a stringify function for any type.
func Sprint[T any](v T) string { return fmt.Sprint(v) }
