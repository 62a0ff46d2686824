// Package encode renders a markup document tree to its textual form:
// a header processing instruction followed by a recursive, tab-indented
// tag representation. A node with content renders the content inline
// and skips its children, even when the children sequence is non-empty;
// a node with neither content nor children renders as a self-closing
// tag.
package encode
