package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttributeFirstMatchLookup(t *testing.T) {
	n := NewNode("n")
	n.AddAttribute("k", "first")
	n.AddAttribute("k", "second")
	v, ok := n.Attribute("k")
	if !ok || v != "first" {
		t.Errorf("expected first match, got %q ok=%v", v, ok)
	}
	if _, ok := n.Attribute("absent"); ok {
		t.Errorf("lookup of absent attribute reported found")
	}
}

func TestRemoveAttributeRemovesAll(t *testing.T) {
	n := NewNode("n")
	n.AddAttribute("k", "1")
	n.AddAttribute("other", "x")
	n.AddAttribute("k", "2")
	n.RemoveAttribute("k")
	want := []Attribute{{Name: "other", Value: "x"}}
	if diff := cmp.Diff(want, n.Attrs()); diff != "" {
		t.Errorf("unexpected attributes (-want +got):\n%s", diff)
	}
}

func TestAttrsPreservesOrderAndDuplicates(t *testing.T) {
	n := NewNode("n")
	n.AddAttribute("b", "1")
	n.AddAttribute("a", "2")
	n.AddAttribute("b", "3")
	want := []Attribute{{"b", "1"}, {"a", "2"}, {"b", "3"}}
	if diff := cmp.Diff(want, n.Attrs()); diff != "" {
		t.Errorf("unexpected attributes (-want +got):\n%s", diff)
	}
}

func TestAttrsIsACopy(t *testing.T) {
	n := NewNode("n")
	n.AddAttribute("k", "v")
	attrs := n.Attrs()
	attrs[0].Value = "mutated"
	if v, _ := n.Attribute("k"); v != "v" {
		t.Errorf("mutating Attrs result affected node: %q", v)
	}
}

func TestClearAttributes(t *testing.T) {
	n := NewNode("n")
	n.AddAttribute("k", "v")
	n.ClearAttributes()
	if len(n.Attrs()) != 0 {
		t.Errorf("attributes remain after clear")
	}
}
