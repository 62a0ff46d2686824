package gomap

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/markfmt/go-markup/ir"
)

type Person struct {
	First string
	Last  string
	City  string
}

func TestMapDefaults(t *testing.T) {
	m := New()
	node, err := m.Map(Person{First: "Joe", Last: "Fix", City: "Oslo"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if node.Name != "Person" {
		t.Errorf("expected node named Person, got %q", node.Name)
	}
	if len(node.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(node.Children))
	}
	wantNames := []string{"First", "Last", "City"}
	wantContent := []string{"Joe", "Fix", "Oslo"}
	for i, c := range node.Children {
		if c.Name != wantNames[i] {
			t.Errorf("child %d: expected name %q, got %q", i, wantNames[i], c.Name)
		}
		if c.Content != wantContent[i] {
			t.Errorf("child %d: expected content %q, got %q", i, wantContent[i], c.Content)
		}
		if c.Parent != node {
			t.Errorf("child %d: wrong parent", i)
		}
	}
	if len(node.Attributes) != 0 {
		t.Errorf("unexpected attributes %v", node.Attributes)
	}
}

type Parcel struct {
	Code   string `markup:"attr"`
	Weight int    `markup:"attr,transform=percent"`
}

func TestMapAttributeBuildersAndTransformer(t *testing.T) {
	m := New(WithTransformer("percent", func(v any) (string, error) {
		return fmt.Sprintf("%v%%", v), nil
	}))
	node, err := m.Map(Parcel{Code: "123", Weight: 20})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(node.Children) != 0 {
		t.Errorf("expected zero children, got %d", len(node.Children))
	}
	attrs := node.Attrs()
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %v", attrs)
	}
	if attrs[0] != (ir.Attribute{Name: "Code", Value: "123"}) {
		t.Errorf("unexpected code attribute %v", attrs[0])
	}
	if attrs[1] != (ir.Attribute{Name: "Weight", Value: "20%"}) {
		t.Errorf("unexpected weight attribute %v", attrs[1])
	}
}

type WithMarkers struct {
	Kept    string `markup:"name=kept-name"`
	Omitted string `markup:"omit"`
	Dashed  string `markup:"-"`
}

func TestFieldMarkers(t *testing.T) {
	m := New()
	node, err := m.Map(WithMarkers{Kept: "v", Omitted: "x", Dashed: "y"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(node.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(node.Children))
	}
	if node.Children[0].Name != "kept-name" {
		t.Errorf("name override not applied: %q", node.Children[0].Name)
	}
}

func TestEmptyFieldsSkipped(t *testing.T) {
	m := New()
	node, err := m.Map(Person{First: "Joe"}) // Last, City zero
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(node.Children) != 1 {
		t.Errorf("expected empty fields to be skipped, got %d children", len(node.Children))
	}
}

type Crate struct {
	Label string
	Items []Person
}

func TestCollectionWrapper(t *testing.T) {
	m := New()
	node, err := m.Map(Crate{
		Label: "c1",
		Items: []Person{{First: "A"}, {First: "B"}},
	})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(node.Children) != 2 {
		t.Fatalf("expected label child and wrapper, got %d children", len(node.Children))
	}
	wrapper := node.Children[1]
	if wrapper.Name != "Items" {
		t.Errorf("wrapper named %q", wrapper.Name)
	}
	if len(wrapper.Children) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(wrapper.Children))
	}
	for i, want := range []string{"A", "B"} {
		el := wrapper.Children[i]
		if el.Name != "Person" {
			t.Errorf("element %d named %q, want Person", i, el.Name)
		}
		if got, _ := firstChildContent(el, "First"); got != want {
			t.Errorf("element %d First = %q, want %q", i, got, want)
		}
	}
}

func TestEmptyCollectionSkipped(t *testing.T) {
	m := New()
	node, err := m.Map(Crate{Label: "c1"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(node.Children) != 1 {
		t.Errorf("empty collection produced a wrapper: %d children", len(node.Children))
	}
}

type Outer struct {
	Inner Person
}

func TestNestedStructField(t *testing.T) {
	m := New()
	node, err := m.Map(Outer{Inner: Person{First: "A"}})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(node.Children) != 1 || node.Children[0].Name != "Inner" {
		t.Fatalf("unexpected children %v", node.Children)
	}
	if got, ok := firstChildContent(node.Children[0], "First"); !ok || got != "A" {
		t.Errorf("nested struct not mapped recursively")
	}
}

type Report struct {
	Title string `markup:"attr"`
	Body  string
}

func TestRegistryAdapterRunsOnce(t *testing.T) {
	calls := 0
	m := New(WithAdapter("Report", func(n *ir.Node) {
		calls++
		n.Rename("report")
		n.RemoveAttribute("Title")
	}))
	node, err := m.Map(Report{Title: "t", Body: "b"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if calls != 1 {
		t.Errorf("adapter called %d times", calls)
	}
	if node.Name != "report" {
		t.Errorf("adapter mutation lost: %q", node.Name)
	}
	if len(node.Attrs()) != 0 {
		t.Errorf("adapter attribute removal lost")
	}
}

type SelfAdapting struct {
	B string
	A string
}

// AdaptNode enforces child order by name.
func (s SelfAdapting) AdaptNode(n *ir.Node) {
	if len(n.Children) != 2 {
		return
	}
	if n.Children[0].Name > n.Children[1].Name {
		first := n.Children[0]
		n.Detach(first)
		n.Attach(first)
	}
}

func TestInterfaceAdapter(t *testing.T) {
	m := New()
	node, err := m.Map(SelfAdapting{B: "2", A: "1"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if node.Children[0].Name != "A" || node.Children[1].Name != "B" {
		t.Errorf("interface adapter did not reorder: %v", node.Children)
	}
}

func TestRegistryAdapterWinsOverInterface(t *testing.T) {
	m := New(WithAdapter("SelfAdapting", func(n *ir.Node) {
		n.Rename("overridden")
	}))
	node, err := m.Map(SelfAdapting{B: "2", A: "1"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if node.Name != "overridden" {
		t.Errorf("registry adapter did not win")
	}
	// interface adapter must not also have run
	if node.Children[0].Name != "B" {
		t.Errorf("interface adapter ran alongside registry adapter")
	}
}

func TestTypeNameOverride(t *testing.T) {
	m := New(WithTypeName("Person", "person"))
	node, err := m.Map(Person{First: "A"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if node.Name != "person" {
		t.Errorf("type name override not applied: %q", node.Name)
	}
}

func TestOptionOverridesWinOverTags(t *testing.T) {
	m := New(
		WithFieldName("WithMarkers", "Kept", "from-config"),
		WithFieldExcluded("Person", "City"),
	)
	node, err := m.Map(WithMarkers{Kept: "v"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if node.Children[0].Name != "from-config" {
		t.Errorf("config name did not win over tag: %q", node.Children[0].Name)
	}
	p, err := m.Map(Person{First: "A", City: "Oslo"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	for _, c := range p.Children {
		if c.Name == "City" {
			t.Errorf("excluded field mapped")
		}
	}
}

type BadBuilder struct {
	V string `markup:"builder=no-such"`
}

// An unknown builder name resolves to the child-with-content default
// rather than failing.
func TestUnknownBuilderFallsBack(t *testing.T) {
	m := New()
	node, err := m.Map(BadBuilder{V: "x"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(node.Children) != 1 || node.Children[0].Content != "x" {
		t.Errorf("fallback builder not applied: %v", node.Children)
	}
}

type CustomBuilt struct {
	V string `markup:"builder=upper-attr"`
}

func TestCustomBuilder(t *testing.T) {
	m := New(WithBuilder("upper-attr", func(parent *ir.Node, name, text string) {
		parent.AddAttribute(strings.ToUpper(name), text)
	}))
	node, err := m.Map(CustomBuilt{V: "x"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if v, ok := node.Attribute("V"); !ok || v != "x" {
		t.Errorf("custom builder not applied: %v", node.Attrs())
	}
}

func TestMapNamed(t *testing.T) {
	m := New()
	node, err := m.MapNamed("wrapped", Person{First: "A"})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if node.Name != "wrapped" {
		t.Errorf("explicit name not used: %q", node.Name)
	}
}

func TestMapStringMapSortedKeys(t *testing.T) {
	m := New()
	node, err := m.MapNamed("env", map[string]any{
		"b": "2",
		"a": "1",
		"c": map[string]any{"x": "y"},
	})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(node.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(node.Children))
	}
	wantNames := []string{"a", "b", "c"}
	for i, c := range node.Children {
		if c.Name != wantNames[i] {
			t.Errorf("child %d named %q, want %q", i, c.Name, wantNames[i])
		}
	}
	if node.Children[0].Content != "1" {
		t.Errorf("entry content wrong: %q", node.Children[0].Content)
	}
	if got, ok := firstChildContent(node.Children[2], "x"); !ok || got != "y" {
		t.Errorf("nested map entry not mapped")
	}
}

func TestMapNonStringKeysError(t *testing.T) {
	m := New()
	_, err := m.MapNamed("bad", map[int]string{1: "x"})
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("expected MarshalError, got %v", err)
	}
}

type Loop struct {
	Name string
	Next *Loop
}

func TestCircularReferenceDetected(t *testing.T) {
	a := &Loop{Name: "a"}
	b := &Loop{Name: "b", Next: a}
	a.Next = b
	m := New()
	_, err := m.Map(a)
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("expected MarshalError for cycle, got %v", err)
	}
	if !strings.Contains(me.Error(), "circular") {
		t.Errorf("unexpected message %q", me.Error())
	}
}

func TestMapNil(t *testing.T) {
	m := New()
	if _, err := m.Map(nil); err == nil {
		t.Errorf("expected error mapping nil")
	}
}

func TestMapScalar(t *testing.T) {
	m := New()
	node, err := m.MapNamed("n", 42)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if node.Content != "42" {
		t.Errorf("scalar content %q", node.Content)
	}
}

func TestPointerFieldsFollowed(t *testing.T) {
	first := "A"
	type P struct {
		First *string
		Skip  *string
	}
	m := New()
	node, err := m.Map(P{First: &first})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(node.Children) != 1 {
		t.Fatalf("expected nil pointer skipped, got %d children", len(node.Children))
	}
	if node.Children[0].Content != "A" {
		t.Errorf("pointer not dereferenced: %q", node.Children[0].Content)
	}
}

func firstChildContent(n *ir.Node, name string) (string, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c.Content, true
		}
	}
	return "", false
}

