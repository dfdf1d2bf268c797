package testeq_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/evolib/evo/pkg/compare"
	"github.com/evolib/evo/pkg/container"
	"github.com/evolib/evo/pkg/container/hamap"
	"github.com/evolib/evo/pkg/container/maplist"
	"github.com/evolib/evo/pkg/decl"
	"github.com/evolib/evo/pkg/testeq"
	"github.com/stretchr/testify/require"
)

// Recorder collects the reported differences.
type Recorder struct{ Lines []string }

func (r *Recorder) Helper() {}

func (r *Recorder) Errorf(format string, v ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, v...))
}

func sameInt(expected, actual int) (errMsg string) {
	if expected != actual {
		return fmt.Sprintf("want %d, got %d", expected, actual)
	}
	return ""
}

type MapsCase struct {
	Expected, Actual map[int]int
	Lines            []string
}

func TestMaps(t *testing.T) {
	decl.Run(t, []decl.Declaration[MapsCase]{
		decl.New(MapsCase{}),
		decl.New(MapsCase{
			Expected: map[int]int{1: 10, 2: 20},
			Actual:   map[int]int{2: 20, 1: 10},
		}),
		decl.New(MapsCase{
			Expected: map[int]int{3: 30, -4: 40, 5: 50},
			Actual:   map[int]int{3: 31, -4: 40, 5: 52},
			Lines: []string{
				"mismatching entry 3: want 30, got 31",
				"mismatching entry 5: want 50, got 52",
			},
		}),
		decl.New(MapsCase{
			Expected: map[int]int{12: 1, 2: 2},
			Actual:   map[int]int{7: 7},
			Lines: []string{
				"missing entry 2 (2)",
				"missing entry 12 (1)",
				"unexpected entry 7 (7)",
			},
		}),
		decl.New(MapsCase{
			Expected: map[int]int{0: 0},
			Actual:   map[int]int{0: 0, -1: 9, 100: 8},
			Lines: []string{
				"unexpected entry -1 (9)",
				"unexpected entry 100 (8)",
			},
		}),
	}, func(t *testing.T, td MapsCase) {
		r := new(Recorder)
		ok := testeq.Maps(r, "entry", td.Expected, td.Actual,
			sameInt, strconv.Itoa)
		require.Equal(t, td.Lines, r.Lines)
		require.Equal(t, len(td.Lines) == 0, ok)
	})
}

type SlicesCase struct {
	Expected, Actual []string
	Lines            []string
}

func TestSlices(t *testing.T) {
	decl.Run(t, []decl.Declaration[SlicesCase]{
		decl.New(SlicesCase{}),
		decl.New(SlicesCase{
			Expected: []string{"x", "y"},
			Actual:   []string{"x", "y"},
		}),
		decl.New(SlicesCase{
			Expected: []string{"x", "y", "z"},
			Actual:   []string{"x", "q"},
			Lines: []string{
				"mismatching word at index 1: want y, got q",
				"missing word at index 2 (z)",
			},
		}),
		decl.New(SlicesCase{
			Expected: []string{"x"},
			Actual:   []string{"w", "v"},
			Lines: []string{
				"mismatching word at index 0: want x, got w",
				"unexpected word at index 1 (v)",
			},
		}),
	}, func(t *testing.T, td SlicesCase) {
		r := new(Recorder)
		ok := testeq.Slices(r, "word", td.Expected, td.Actual,
			func(e, a string) string {
				if e != a {
					return "want " + e + ", got " + a
				}
				return ""
			},
			testeq.Sprint[string],
		)
		require.Equal(t, td.Lines, r.Lines)
		require.Equal(t, len(td.Lines) == 0, ok)
	})
}

// TestContainersAcrossImplementations compares maps of different
// implementations, expected entries are reported in the order
// of the expected map.
func TestContainersAcrossImplementations(t *testing.T) {
	expected := maplist.New[string, int]()
	expected.Add("b", 2, true)
	expected.Add("a", 1, true)
	expected.Add("c", 3, true)

	for _, actual := range []container.Map[string, int]{
		hamap.New[string, int](),
		maplist.NewWith[string, int](compare.CompareR[string]{}),
	} {
		actual.Add("c", 4, true)
		actual.Add("b", 2, true)

		r := new(Recorder)
		ok := testeq.Containers[string, int](r, "key", expected, actual,
			sameInt, strconv.Itoa)
		require.False(t, ok)
		require.Equal(t, []string{
			"missing key a (1)",
			"mismatching key c: want 3, got 4",
		}, r.Lines)

		actual.Add("a", 1, true)
		actual.Add("c", 3, true)
		r = new(Recorder)
		require.True(t, testeq.Containers[string, int](r, "key",
			expected, actual, sameInt, strconv.Itoa))
		require.Empty(t, r.Lines)
	}
}

func TestDiff(t *testing.T) {
	type span struct{ From, To int }
	require.Empty(t, testeq.Diff(span{1, 2}, span{1, 2}))
	msg := testeq.Diff(span{1, 2}, span{1, 3})
	require.Contains(t, msg, "To:")

	r := new(Recorder)
	require.False(t, testeq.Maps(r, "span",
		map[string]span{"s": {1, 2}},
		map[string]span{"s": {0, 2}},
		testeq.Diff[span], testeq.Sprint[span],
	))
	require.Len(t, r.Lines, 1)
	require.Contains(t, r.Lines[0], "mismatching span s: ")
	require.Contains(t, r.Lines[0], "From:")
}

func TestSprint(t *testing.T) {
	require.Equal(t, "[1 2]", testeq.Sprint([]int{1, 2}))
	require.Equal(t, "<nil>", testeq.Sprint[error](nil))
}
