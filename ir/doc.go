// Package ir holds the in-memory representation of a markup document:
// a tree of named nodes carrying optional text content, ordered
// attributes, and ordered children with parent back-references.
//
// All operations in this package are total over valid node references;
// structural misuse (re-attaching without detaching, setting content on
// a node with children) is permitted and left to callers to avoid.
package ir
