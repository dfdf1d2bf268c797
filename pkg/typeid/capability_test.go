package typeid_test

import (
	"testing"

	"github.com/evolib/evo/pkg/typeid"
	"github.com/stretchr/testify/require"
)

type Version struct{ Major, Minor int }

func (v Version) Null() bool {
	return v == Version{}
}

func (v *Version) Clear() {
	*v = Version{}
}

func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		return v.Major - o.Major
	}
	return v.Minor - o.Minor
}

func (v Version) Equal(o Version) bool {
	return v == o
}

func (v Version) Hash(seed uint64) uint64 {
	return seed*31 + uint64(v.Major)<<32 + uint64(v.Minor)
}

func (v Version) Copy() Version {
	return v
}

func (v Version) Size() int {
	return 0
}

func (v Version) Empty() bool {
	return true
}

func (v Version) Shared() bool {
	return false
}

func (v *Version) Unrelated(other Version) int {
	return 0
}

type Bag struct{ n int }

func (b *Bag) Null() bool {
	return b == nil
}

func (b *Bag) Empty() bool {
	return b.n == 0
}

func (b *Bag) Size() int {
	return b.n
}

func (b *Bag) Shared() bool {
	return false
}

func TestIsItem(t *testing.T) {
	require.True(t, typeid.IsItem[Version]())
	require.False(t, typeid.IsItem[int]())
	require.False(t, typeid.IsItem[string]())
	require.False(t, typeid.IsItem[Bag]())
}

func TestIsContainer(t *testing.T) {
	require.True(t, typeid.IsContainer[Bag]())
	require.True(t, typeid.IsContainer[*Bag]())
	require.True(t, typeid.IsContainer[Version]())
	require.False(t, typeid.IsContainer[int]())
}

func TestIsCopier(t *testing.T) {
	require.True(t, typeid.IsCopier[Version]())
	require.False(t, typeid.IsCopier[Bag]())
}
