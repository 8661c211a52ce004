package provider

import (
	"math"
	"sync"
)

// #region cache-key
// pointKey is a (T, p) pair rounded to 1 micro-unit, so float jitter from
// repeated finite-difference stencils still hits the cache.
type pointKey struct {
	t int64
	p int64
}

func keyOf(T, p float64) pointKey {
	return pointKey{t: int64(math.Round(T * 1e6)), p: int64(math.Round(p * 1e6))}
}

// cacheEntry memoizes a value together with the error it was produced with,
// so domain errors are not re-evaluated either.
type cacheEntry struct {
	val float64
	err error
}

// #endregion cache-key

// #region cached
// Cached is a read-through memoization wrapper around a reference provider.
// Grids are tiny and runs short-lived, so there is no eviction. The maps are
// mutex guarded because checks may evaluate concurrently.
type Cached struct {
	inner Reference

	mu       sync.Mutex
	density  map[pointKey]cacheEntry
	enthalpy map[pointKey]cacheEntry
	sound    map[pointKey]cacheEntry
	psat     map[int64]cacheEntry
	splits   map[int64]splitEntry
}

type splitEntry struct {
	val PhaseSplit
	err error
}

// Cache wraps a reference provider with per-point memoization.
func Cache(inner Reference) *Cached {
	return &Cached{
		inner:    inner,
		density:  make(map[pointKey]cacheEntry),
		enthalpy: make(map[pointKey]cacheEntry),
		sound:    make(map[pointKey]cacheEntry),
		psat:     make(map[int64]cacheEntry),
		splits:   make(map[int64]splitEntry),
	}
}

// Name identifies the provider in summaries and capability tables.
func (c *Cached) Name() string { return c.inner.Name() }

// Fluid returns the fluid symbol.
func (c *Cached) Fluid() string { return c.inner.Fluid() }

// Capabilities forwards the inner capability set.
func (c *Cached) Capabilities() Capabilities { return c.inner.Capabilities() }

// CriticalTemperature forwards the inner critical temperature.
func (c *Cached) CriticalTemperature() float64 { return c.inner.CriticalTemperature() }

// #endregion cached

// #region lookups
func (c *Cached) lookup(m map[pointKey]cacheEntry, T, p float64, f func(float64, float64) (float64, error)) (float64, error) {
	k := keyOf(T, p)
	c.mu.Lock()
	if e, ok := m[k]; ok {
		c.mu.Unlock()
		return e.val, e.err
	}
	c.mu.Unlock()

	val, err := f(T, p)

	c.mu.Lock()
	m[k] = cacheEntry{val: val, err: err}
	c.mu.Unlock()
	return val, err
}

// Density memoizes the inner density lookup.
func (c *Cached) Density(T, p float64) (float64, error) {
	return c.lookup(c.density, T, p, c.inner.Density)
}

// Enthalpy memoizes the inner enthalpy lookup.
func (c *Cached) Enthalpy(T, p float64) (float64, error) {
	return c.lookup(c.enthalpy, T, p, c.inner.Enthalpy)
}

// SpeedOfSound memoizes the inner speed-of-sound lookup.
func (c *Cached) SpeedOfSound(T, p float64) (float64, error) {
	return c.lookup(c.sound, T, p, c.inner.SpeedOfSound)
}

// SaturationPressure memoizes the inner saturation-pressure lookup.
func (c *Cached) SaturationPressure(T float64) (float64, error) {
	k := int64(math.Round(T * 1e6))
	c.mu.Lock()
	if e, ok := c.psat[k]; ok {
		c.mu.Unlock()
		return e.val, e.err
	}
	c.mu.Unlock()

	val, err := c.inner.SaturationPressure(T)

	c.mu.Lock()
	c.psat[k] = cacheEntry{val: val, err: err}
	c.mu.Unlock()
	return val, err
}

// PhaseSplit memoizes the inner VLE split.
func (c *Cached) PhaseSplit(T float64) (PhaseSplit, error) {
	k := int64(math.Round(T * 1e6))
	c.mu.Lock()
	if e, ok := c.splits[k]; ok {
		c.mu.Unlock()
		return e.val, e.err
	}
	c.mu.Unlock()

	val, err := c.inner.PhaseSplit(T)

	c.mu.Lock()
	c.splits[k] = splitEntry{val: val, err: err}
	c.mu.Unlock()
	return val, err
}

// #endregion lookups
