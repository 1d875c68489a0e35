package domain

import (
	"sort"

	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// StrategicOverlay is the set of start times an operator forced into the disputed state.
// It lives only in memory and is not safe for concurrent use; the owner guards it.
type StrategicOverlay struct {
	keys map[types.TimeString]struct{}
}

// NewStrategicOverlay creates an overlay with the given start times flagged
func NewStrategicOverlay(times ...types.TimeString) *StrategicOverlay {
	o := &StrategicOverlay{keys: make(map[types.TimeString]struct{}, len(times))}
	for _, t := range times {
		o.keys[t] = struct{}{}
	}
	return o
}

// Contains reports whether the start time is flagged
func (o *StrategicOverlay) Contains(t types.TimeString) bool {
	if o == nil {
		return false
	}
	_, ok := o.keys[t]
	return ok
}

// Toggle flips membership and returns the new state
func (o *StrategicOverlay) Toggle(t types.TimeString) bool {
	if _, ok := o.keys[t]; ok {
		delete(o.keys, t)
		return false
	}
	o.keys[t] = struct{}{}
	return true
}

// Keys returns flagged start times in ascending order
func (o *StrategicOverlay) Keys() []types.TimeString {
	out := make([]types.TimeString, 0, len(o.keys))
	for k := range o.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IsBefore(out[j]) })
	return out
}

// Clone returns an independent copy
func (o *StrategicOverlay) Clone() *StrategicOverlay {
	return NewStrategicOverlay(o.Keys()...)
}

// Len returns the number of flagged start times
func (o *StrategicOverlay) Len() int {
	return len(o.keys)
}
