package bench

import (
	"fmt"

	"github.com/evolib/evo/pkg/config"
	"github.com/evolib/evo/pkg/container"
	"github.com/evolib/evo/pkg/container/gomap"
	"github.com/evolib/evo/pkg/container/hamap"
	"github.com/evolib/evo/pkg/container/maplist"
)

// Subject is the surface measured for every implementation.
type Subject interface {
	Add(key string, value int)
	Find(key string) (int, bool)
	Remove(key string) bool

	// Iterate visits all pairs returning their number
	// and the sum of their values.
	Iterate() (count, sum int)

	Clear()
	Size() int
}

// NewSubject creates an empty subject of the given implementation.
func NewSubject(impl config.Implementation, capacity int) (Subject, error) {
	switch impl {
	case config.ImplMapList:
		return &mapSubject{m: maplist.New[string, int]()}, nil
	case config.ImplHamap:
		return &mapSubject{m: hamap.New[string, int]()}, nil
	case config.ImplGoMap:
		return &goMapSubject{m: gomap.New[string, int](capacity)}, nil
	}
	return nil, fmt.Errorf("unsupported implementation: %s", impl)
}

type mapSubject struct {
	m container.Map[string, int]
}

func (s *mapSubject) Add(key string, value int) { s.m.Add(key, value, true) }
func (s *mapSubject) Remove(key string) bool    { return s.m.Remove(key) }
func (s *mapSubject) Clear()                    { s.m.Clear() }
func (s *mapSubject) Size() int                 { return s.m.Size() }

func (s *mapSubject) Find(key string) (int, bool) {
	if v := s.m.Find(key); v != nil {
		return *v, true
	}
	return 0, false
}

func (s *mapSubject) Iterate() (count, sum int) {
	var pos container.IterKey
	for p := s.m.IterFirst(&pos); p != nil; p = s.m.IterNext(&pos) {
		count++
		sum += p.Second
	}
	return count, sum
}

type goMapSubject struct {
	m *gomap.Map[string, int]
}

func (s *goMapSubject) Add(key string, value int)   { s.m.Add(key, value, true) }
func (s *goMapSubject) Find(key string) (int, bool) { return s.m.Find(key) }
func (s *goMapSubject) Remove(key string) bool      { return s.m.Remove(key) }
func (s *goMapSubject) Clear()                      { s.m.Reset() }
func (s *goMapSubject) Size() int                   { return s.m.Size() }

func (s *goMapSubject) Iterate() (count, sum int) {
	s.m.Visit(func(_ string, v int) bool {
		count++
		sum += v
		return false
	})
	return count, sum
}
