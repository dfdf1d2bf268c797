package container_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/evolib/evo/pkg/container"
)

func forEachImplB(
	b *testing.B,
	fn func(*testing.B, container.Map[string, int]),
) {
	for _, impl := range implementations {
		b.Run(impl.Name, func(b *testing.B) {
			fn(b, impl.Make())
		})
	}
}

var (
	GI int
	GB bool
)

func BenchmarkAdd(b *testing.B) {
	for _, td := range []int{8, 64, 192, 512, 1024} {
		b.Run(fmt.Sprintf("%v", td), func(b *testing.B) {
			keys := MakeKeys(td)
			forEachImplB(b, func(b *testing.B, m container.Map[string, int]) {
				for n := 0; n < b.N; n++ {
					m.Clear()
					for i := 0; i < len(keys); i++ {
						m.Add(keys[i], i, true)
					}
				}
			})
		})
	}
}

func BenchmarkUpdate(b *testing.B) {
	for _, td := range []int{8, 64, 192, 512, 1024} {
		b.Run(fmt.Sprintf("%v", td), func(b *testing.B) {
			forEachImplB(b, func(b *testing.B, m container.Map[string, int]) {
				keys := SetNewKeys(td, m)
				b.ResetTimer()
				for n := 0; n < b.N; n++ {
					for i := 0; i < len(keys); i++ {
						m.Add(keys[i], n, true)
					}
				}
			})
		})
	}
}

func BenchmarkFind(b *testing.B) {
	for _, td := range []int{8, 64, 192, 512, 1024} {
		b.Run(fmt.Sprintf("%v", td), func(b *testing.B) {
			forEachImplB(b, func(b *testing.B, m container.Map[string, int]) {
				keys := SetNewKeys(td, m)
				b.ResetTimer()
				for n, i := 0, -1; n < b.N; n++ {
					i++
					if i >= len(keys) {
						i = 0
					}
					v := m.Find(keys[i])
					GI, GB = *v, v != nil
				}
			})
		})
	}
}

func BenchmarkSetFrom(b *testing.B) {
	for _, td := range []int{8, 64, 1024} {
		b.Run(fmt.Sprintf("%v", td), func(b *testing.B) {
			forEachImplB(b, func(b *testing.B, m container.Map[string, int]) {
				keys := SetNewKeys(td, m)
				c := implementations[0].Make()
				b.ResetTimer()
				for n := 0; n < b.N; n++ {
					c.SetFrom(m)
					GI = *c.FindM(keys[0])
				}
			})
		})
	}
}

func MakeKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = RandString(20)
	}
	return keys
}

func SetNewKeys(n int, m container.Map[string, int]) []string {
	keys := MakeKeys(n)
	for i := range keys {
		m.Add(keys[i], i, true)
	}
	return keys
}

func RandString(n int) string {
	letters := []byte(
		"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_",
	)
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
