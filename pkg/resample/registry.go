package resample

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Registry is a container for all available resamplers
type Registry struct {
	resamplers map[string]Resampler
	mu         sync.RWMutex
}

// NewRegistry creates a new, empty resampler registry
func NewRegistry() *Registry {
	return &Registry{
		resamplers: make(map[string]Resampler),
	}
}

// NewDefaultRegistry creates a registry holding every built-in resampler
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewKernelResampler("bilinear", draw.BiLinear))
	r.Register(NewKernelResampler("nearest", draw.NearestNeighbor))
	r.Register(NewKernelResampler("approx-bilinear", draw.ApproxBiLinear))
	r.Register(NewKernelResampler("catmullrom", draw.CatmullRom))
	r.Register(NewNfntResampler("lanczos3", resize.Lanczos3))
	r.Register(NewGiftResampler("box", gift.BoxResampling))
	return r
}

// Register adds a resampler to the registry, replacing any with the same name
func (r *Registry) Register(resampler Resampler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resamplers[strings.ToLower(resampler.Name())] = resampler
}

// Get finds a resampler by name (case-insensitive)
func (r *Registry) Get(name string) (Resampler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rs, ok := r.resamplers[strings.ToLower(strings.TrimSpace(name))]; ok {
		return rs, nil
	}

	names := make([]string, 0, len(r.resamplers))
	for n := range r.resamplers {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("unknown resampler %q (available: %s)", name, strings.Join(names, ", "))
}

// Names returns the registered resampler names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resamplers))
	for n := range r.resamplers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
