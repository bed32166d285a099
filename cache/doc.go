// Package cache memoizes balloon outlines between layout passes.
//
// The balloon package itself never caches: every call recomputes the
// outline from its inputs. Views that lay out the same balloon repeatedly
// can keep an Outlines cache keyed by rect and configuration instead.
//
//	outlines := cache.New(128)
//	path := outlines.Outline(rect, cfg)
//
// Outlines is safe for concurrent use. Returned paths are copies, so
// callers may transform them without affecting the cache.
package cache
