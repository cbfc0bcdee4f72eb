package palette

import (
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Rotation is the set of colors handed out to unseen labels, in initial
// least-recently-used order.
var Rotation = []Color{Red, Green, Yellow, Magenta, Cyan}

// KnownTags seeds well-known Android log labels with fixed colors.
var KnownTags = map[string]Color{
	"dalvikvm":        Blue,
	"Process":         Blue,
	"ActivityManager": Cyan,
	"ActivityThread":  Cyan,
}

// Allocator assigns colors to labels, reusing the least recently used color
// of the rotation for every label it has not seen before.
type Allocator struct {
	mu       sync.Mutex
	assigned map[string]Color
	recent   []Color
	logger   *log.Logger
}

// AllocatorOption customises an Allocator.
type AllocatorOption func(*Allocator)

// WithSeeds adds fixed label colors on top of the built-in known tags.
func WithSeeds(seeds map[string]Color) AllocatorOption {
	return func(a *Allocator) {
		for label, c := range seeds {
			a.assigned[label] = c
		}
	}
}

// WithLogger reports recency bookkeeping misses on logger.
func WithLogger(logger *log.Logger) AllocatorOption {
	return func(a *Allocator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAllocator returns an allocator seeded with KnownTags.
func NewAllocator(opts ...AllocatorOption) *Allocator {
	a := &Allocator{
		assigned: make(map[string]Color, len(KnownTags)),
		recent:   slices.Clone(Rotation),
		logger:   log.New(io.Discard),
	}
	for label, c := range KnownTags {
		a.assigned[label] = c
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Allocate returns the color for label and marks it most recently used.
func (a *Allocator) Allocate(label string) Color {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.assigned[label]
	if !ok {
		c = a.recent[0]
		a.assigned[label] = c
	}
	a.touch(c, label)
	return c
}

// touch moves c to the most recently used end. A color outside the rotation
// is never queued; the miss is reported and allocation carries on.
func (a *Allocator) touch(c Color, label string) {
	idx := slices.Index(a.recent, c)
	if idx < 0 {
		a.logger.Debug("color not in recency queue", "color", c, "label", label)
		return
	}
	a.recent = append(slices.Delete(a.recent, idx, idx+1), c)
}

// Lookup returns the color already assigned to label without touching the
// recency order.
func (a *Allocator) Lookup(label string) (Color, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	c, ok := a.assigned[label]
	return c, ok
}

// Recent returns a copy of the recency queue, least recently used first.
func (a *Allocator) Recent() []Color {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.recent)
}
