// Package statistics provides synchronized thread-safe timing
// counters for benchmarked map operations.
package statistics

import (
	"sync/atomic"
	"time"
)

// Sync accumulates the timings of a single operation.
type Sync struct {
	samples        int64
	operations     int64
	allocatedBytes int64
	totalTime      int64
	highestTime    int64
	lowestTime     int64
	averageTime    int64
}

func NewSync() *Sync {
	return &Sync{lowestTime: -1}
}

// Update records a sample that executed operations
// in the given time allocating allocatedBytes.
func (s *Sync) Update(
	operations int,
	allocatedBytes uint64,
	processingTime time.Duration,
) {
	samples := atomic.AddInt64(&s.samples, 1)
	atomic.AddInt64(&s.operations, int64(operations))
	atomic.AddInt64(&s.allocatedBytes, int64(allocatedBytes))
	atomic.AddInt64(&s.totalTime, int64(processingTime))

	// Highest time
	if int64(processingTime) > atomic.LoadInt64(&s.highestTime) {
		atomic.StoreInt64(&s.highestTime, int64(processingTime))
	}

	// Lowest time
	if l := atomic.LoadInt64(&s.lowestTime); l < 0 ||
		int64(processingTime) < l {
		atomic.StoreInt64(&s.lowestTime, int64(processingTime))
	}

	// Average time
	curAvgTime := atomic.LoadInt64(&s.averageTime)
	atomic.AddInt64(
		&s.averageTime,
		(int64(processingTime)-curAvgTime)/samples,
	)
}

func (s *Sync) GetSamples() int64 {
	return atomic.LoadInt64(&s.samples)
}

func (s *Sync) GetOperations() int64 {
	return atomic.LoadInt64(&s.operations)
}

func (s *Sync) GetAllocatedBytes() int64 {
	return atomic.LoadInt64(&s.allocatedBytes)
}

func (s *Sync) GetTotalTime() time.Duration {
	return time.Duration(atomic.LoadInt64(&s.totalTime))
}

func (s *Sync) GetHighestTime() time.Duration {
	return time.Duration(atomic.LoadInt64(&s.highestTime))
}

// GetLowestTime returns 0 before the first update.
func (s *Sync) GetLowestTime() time.Duration {
	if l := atomic.LoadInt64(&s.lowestTime); l > 0 {
		return time.Duration(l)
	}
	return 0
}

func (s *Sync) GetAverageTime() time.Duration {
	return time.Duration(atomic.LoadInt64(&s.averageTime))
}

// GetTimePerOperation returns the mean time of a single operation.
func (s *Sync) GetTimePerOperation() time.Duration {
	ops := atomic.LoadInt64(&s.operations)
	if ops < 1 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&s.totalTime) / ops)
}

// GetBytesPerOperation returns the mean allocation of a single operation.
func (s *Sync) GetBytesPerOperation() int64 {
	ops := atomic.LoadInt64(&s.operations)
	if ops < 1 {
		return 0
	}
	return atomic.LoadInt64(&s.allocatedBytes) / ops
}
