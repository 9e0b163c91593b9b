package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// The match caches pointers at construction; ticks write directly to the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// String renders every metric as key=value, ints first, each group in key order
func (r *Registry) String() string {
	var sb strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%d", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%.2f", key, v.Get())
	})
	return sb.String()
}
