package decl_test

import (
	"testing"

	"github.com/evolib/evo/pkg/decl"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d := decl.New(42)
	require.Equal(t, "decl_test.go:11", d.Decl)
	require.Equal(t, 42, d.Data)
}

func TestRun(t *testing.T) {
	var names []string
	var data []string
	decl.Run(t, []decl.Declaration[string]{
		decl.New("a"),
		decl.New("b"),
	}, func(t *testing.T, s string) {
		names = append(names, t.Name())
		data = append(data, s)
	})
	require.Equal(t, []string{
		"TestRun/decl_test.go:20",
		"TestRun/decl_test.go:21",
	}, names)
	require.Equal(t, []string{"a", "b"}, data)
}
