package texture

import (
	"fmt"

	"github.com/lovepotion/love"
)

// Sampler applies sampler state to one native texture.
// Errors indicate native resource exhaustion.
type Sampler[T comparable] interface {
	ApplyFilter(tex T, f Filter) error
	ApplyWrap(tex T, w Wrap) error
}

type applied struct {
	filter Filter
	wrap   Wrap
}

// Cache remembers the sampler state each texture currently holds and the
// baseline given to textures registered later. It is not safe for
// concurrent use.
type Cache[T comparable] struct {
	sampler Sampler[T]

	filter   Filter
	wrap     Wrap
	textures map[T]applied
}

// NewCache returns a cache with DefaultFilter and DefaultWrap as baseline.
func NewCache[T comparable](s Sampler[T]) *Cache[T] {
	return &Cache[T]{
		sampler:  s,
		filter:   DefaultFilter(),
		wrap:     DefaultWrap(),
		textures: make(map[T]applied),
	}
}

// DefaultFilter returns the baseline filter.
func (c *Cache[T]) DefaultFilter() Filter { return c.filter }

// DefaultWrap returns the baseline wrap.
func (c *Cache[T]) DefaultWrap() Wrap { return c.wrap }

// SetDefaultFilter changes the baseline for textures registered afterwards.
// Existing textures keep their sampler state.
func (c *Cache[T]) SetDefaultFilter(f Filter) {
	c.filter = f
}

// SetDefaultWrap changes the baseline for textures registered afterwards.
func (c *Cache[T]) SetDefaultWrap(w Wrap) {
	c.wrap = w
}

// Register applies the baseline to a newly created texture.
func (c *Cache[T]) Register(tex T) error {
	if err := c.sampler.ApplyFilter(tex, c.filter); err != nil {
		return fmt.Errorf("texture: register: %w", err)
	}
	if err := c.sampler.ApplyWrap(tex, c.wrap); err != nil {
		return fmt.Errorf("texture: register: %w", err)
	}
	c.textures[tex] = applied{filter: c.filter, wrap: c.wrap}
	return nil
}

// Forget drops a released texture from the cache.
func (c *Cache[T]) Forget(tex T) {
	delete(c.textures, tex)
}

// Len returns the number of tracked textures.
func (c *Cache[T]) Len() int { return len(c.textures) }

// Filter returns the filter tex currently holds.
func (c *Cache[T]) Filter(tex T) (Filter, bool) {
	a, ok := c.textures[tex]
	return a.filter, ok
}

// Wrap returns the wrap tex currently holds.
func (c *Cache[T]) Wrap(tex T) (Wrap, bool) {
	a, ok := c.textures[tex]
	return a.wrap, ok
}

// SetTextureFilter applies f to tex right away and makes it the baseline.
// The driver is skipped when tex already holds f. An untracked texture is
// assumed to hold the baseline wrap.
func (c *Cache[T]) SetTextureFilter(tex T, f Filter) error {
	c.filter = f

	a, ok := c.textures[tex]
	if ok && a.filter == f {
		return nil
	}
	if err := c.sampler.ApplyFilter(tex, f); err != nil {
		return fmt.Errorf("texture: set filter: %w", err)
	}
	if !ok {
		a.wrap = c.wrap
	}
	a.filter = f
	c.textures[tex] = a

	love.Logger().Debug("texture: filter applied", "min", f.Min, "mag", f.Mag, "mip", f.Mip())
	return nil
}

// SetTextureWrap applies w to tex right away and makes it the baseline.
func (c *Cache[T]) SetTextureWrap(tex T, w Wrap) error {
	c.wrap = w

	a, ok := c.textures[tex]
	if ok && a.wrap == w {
		return nil
	}
	if err := c.sampler.ApplyWrap(tex, w); err != nil {
		return fmt.Errorf("texture: set wrap: %w", err)
	}
	if !ok {
		a.filter = c.filter
	}
	a.wrap = w
	c.textures[tex] = a

	love.Logger().Debug("texture: wrap applied", "s", w.S, "t", w.T, "r", w.R)
	return nil
}
