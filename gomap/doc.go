// Package gomap converts Go values into markup tree nodes under a
// declarative configuration instead of hand-written per-type
// conversion code.
//
// A Mapper is assembled once at a composition root from Options that
// populate typed registries: per-type node names and post-build
// adapters, and named builders and transformers which struct tags (or
// config files) refer to by name. Struct fields declare their own
// markers in the "markup" tag:
//
//	type Item struct {
//		Code   string `markup:"attr"`
//		Weight int    `markup:"attr,transform=percent"`
//		Notes  string `markup:"name=note"`
//		Secret string `markup:"omit"`
//	}
//
// Shape (collection vs. scalar), placement (attribute vs. child vs.
// custom builder), formatting (transformer) and whole-node cleanup
// (adapter) are each configurable independently; anything left
// unconfigured resolves to a documented default rather than an error.
package gomap
