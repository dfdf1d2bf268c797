// Package bench measures the map implementations against each other.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/evolib/evo/pkg/config"
	"github.com/evolib/evo/pkg/enum"
	"github.com/evolib/evo/pkg/statistics"
	"github.com/phuslu/log"
)

var (
	ErrTimeout      = errors.New("benchmark timed out")
	ErrInconsistent = errors.New("inconsistent map state")
	ErrKeySpace     = errors.New("key length too short")
)

// Operation is a measured map operation.
type Operation uint8

const (
	OpAdd Operation = iota
	OpFind
	OpIterate
	OpRemove
)

var Operations = enum.New[Operation]("add", "find", "iterate", "remove")

func (o Operation) String() string { return Operations.String(o) }

// Result holds the statistics of a single
// operation of an implementation at a map size.
type Result struct {
	Implementation config.Implementation
	Size           int
	Operation      Operation
	Stats          *statistics.Sync
}

type Runner struct {
	conf *config.Config
	log  log.Logger
}

func New(conf *config.Config, l log.Logger) *Runner {
	return &Runner{conf: conf, log: l}
}

// Run measures impls at every configured size.
// The results collected so far are returned together with ErrTimeout
// when the configured timeout is exceeded.
func (r *Runner) Run(
	ctx context.Context,
	impls []config.Implementation,
) ([]Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.conf.Timeout)
	defer cancel()

	rnd := rand.New(rand.NewSource(r.conf.Seed))
	results := make([]Result, 0, len(r.conf.Sizes)*len(impls)*Operations.Size())

	for _, size := range r.conf.Sizes {
		if !keySpaceFits(r.conf.KeyLength, size) {
			return results, fmt.Errorf(
				"%w: %d distinct keys of length %d",
				ErrKeySpace, size, r.conf.KeyLength,
			)
		}
		keys := MakeKeys(rnd, size, r.conf.KeyLength)
		order := rnd.Perm(size)
		for _, impl := range impls {
			res, err := r.measure(ctx, impl, keys, order)
			results = append(results, res...)
			if err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

func (r *Runner) measure(
	ctx context.Context,
	impl config.Implementation,
	keys []string,
	order []int,
) ([]Result, error) {
	s, err := NewSubject(impl, len(keys))
	if err != nil {
		return nil, err
	}

	results := make([]Result, Operations.Size())
	for _, op := range Operations.Values() {
		results[op] = Result{
			Implementation: impl,
			Size:           len(keys),
			Operation:      op,
			Stats:          statistics.NewSync(),
		}
	}

	var expectSum int
	for i := range keys {
		expectSum += i
	}

	for round := 0; round < r.conf.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				err = ErrTimeout
			}
			r.log.Warn().
				Str("impl", impl.String()).
				Int("size", len(keys)).
				Int("round", round).
				Err(err).
				Msg("aborted")
			return results, err
		}

		s.Clear()
		sample(results[OpAdd].Stats, len(keys), func() {
			for i := range keys {
				s.Add(keys[i], i)
			}
		})
		if s.Size() != len(keys) {
			return results, fmt.Errorf(
				"%w: %s has size %d after adding %d keys",
				ErrInconsistent, impl, s.Size(), len(keys),
			)
		}

		missing := 0
		sample(results[OpFind].Stats, len(keys), func() {
			for _, i := range order {
				if v, ok := s.Find(keys[i]); !ok || v != i {
					missing++
				}
			}
		})
		if missing > 0 {
			return results, fmt.Errorf(
				"%w: %s misses %d of %d keys",
				ErrInconsistent, impl, missing, len(keys),
			)
		}

		var count, sum int
		sample(results[OpIterate].Stats, len(keys), func() {
			count, sum = s.Iterate()
		})
		if count != len(keys) || sum != expectSum {
			return results, fmt.Errorf(
				"%w: %s iterated %d pairs (sum %d), expected %d (sum %d)",
				ErrInconsistent, impl, count, sum, len(keys), expectSum,
			)
		}

		sample(results[OpRemove].Stats, len(keys), func() {
			for _, i := range order {
				s.Remove(keys[i])
			}
		})
		if s.Size() != 0 {
			return results, fmt.Errorf(
				"%w: %s has size %d after removing all keys",
				ErrInconsistent, impl, s.Size(),
			)
		}
	}

	r.log.Info().
		Str("impl", impl.String()).
		Int("size", len(keys)).
		Int("rounds", r.conf.Rounds).
		Dur("add", results[OpAdd].Stats.GetTimePerOperation()).
		Dur("find", results[OpFind].Stats.GetTimePerOperation()).
		Dur("iterate", results[OpIterate].Stats.GetTimePerOperation()).
		Dur("remove", results[OpRemove].Stats.GetTimePerOperation()).
		Msg("measured")

	return results, nil
}

func sample(s *statistics.Sync, operations int, fn func()) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	fn()
	d := time.Since(start)
	runtime.ReadMemStats(&after)
	s.Update(operations, after.TotalAlloc-before.TotalAlloc, d)
}

const letters = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

func keySpaceFits(length, n int) bool {
	p := 1
	for i := 0; i < length && p < n; i++ {
		p *= len(letters)
	}
	return p >= n
}

// MakeKeys returns n distinct random keys of the given length.
func MakeKeys(rnd *rand.Rand, n, length int) []string {
	seen := make(map[string]struct{}, n)
	keys := make([]string, 0, n)
	b := make([]byte, length)
	for len(keys) < n {
		for i := range b {
			b[i] = letters[rnd.Intn(len(letters))]
		}
		k := string(b)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// Write prints results as a table.
func Write(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "implementation\tsize\toperation\tsamples\ttime/op\t"+
		"alloc/op\tops/s\t")
	for _, r := range results {
		var opsPerSec int64
		if d := r.Stats.GetTotalTime(); d > 0 {
			opsPerSec = int64(float64(r.Stats.GetOperations()) / d.Seconds())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t\n",
			r.Implementation,
			humanize.Comma(int64(r.Size)),
			r.Operation,
			r.Stats.GetSamples(),
			r.Stats.GetTimePerOperation(),
			humanize.IBytes(uint64(r.Stats.GetBytesPerOperation())),
			humanize.Comma(opsPerSec),
		)
	}
	return tw.Flush()
}
