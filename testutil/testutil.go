package testutil

import (
	"image"
	"image/color"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Color returns a random opaque color.
func (r *RNG) Color() color.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.colorLocked()
}

func (r *RNG) colorLocked() color.RGBA {
	return color.RGBA{
		R: uint8(r.rand.Intn(256)),
		G: uint8(r.rand.Intn(256)),
		B: uint8(r.rand.Intn(256)),
		A: 255,
	}
}

// Colors returns num random opaque colors.
// Locks only once per call (preferred over calling Color in a loop).
func (r *RNG) Colors(num int) []color.Color {
	r.mu.Lock()
	defer r.mu.Unlock()

	colors := make([]color.Color, num)
	for i := range colors {
		colors[i] = r.colorLocked()
	}

	return colors
}

// Palette returns a random palette with size entries.
// Entries may repeat for small color spaces; palette order is random.
func (r *RNG) Palette(size int) color.Palette {
	r.mu.Lock()
	defer r.mu.Unlock()

	palette := make(color.Palette, size)
	for i := range palette {
		palette[i] = r.colorLocked()
	}

	return palette
}

// Image returns an image of the given size filled with random opaque colors.
func (r *RNG) Image(width, height int) *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, r.colorLocked())
		}
	}

	return img
}
