// Package markup builds, queries, and declaratively populates an
// in-memory markup document tree, and renders it to text.
//
// The tree model lives in ir, bulk whole-document edits go through the
// visitor engine in visit, lookups through the restricted path matcher
// in xpath, and object ingestion through the reflection-driven mapper
// in gomap. This package ties those together into the document-level
// surface: bulk edits, query and ingestion entry points, rendering to
// a file, and diffing of rendered documents.
package markup
