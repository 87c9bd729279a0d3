package diagram

import (
	"context"
	"strings"
	"testing"

	"github.com/ontouml/ontokit/pkg/model"
)

func testGraph(t *testing.T) *model.Graph {
	t.Helper()
	g := model.New(model.Project{ID: "p"})
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(g.Add("", &model.Model{Header: model.Header{ID: "m"}}))
	must(g.Add("m", &model.Class{Header: model.Header{ID: "person", Name: "Person", Stereotypes: []string{"kind"}}}))
	must(g.Add("m", &model.Class{Header: model.Header{ID: "student", Name: "Student", Stereotypes: []string{"role"}}}))
	must(g.Add("m", &model.Class{Header: model.Header{ID: "anon"}}))
	must(g.Add("m", &model.Generalization{Header: model.Header{ID: "g1"}, General: "person", Specific: "student"}))

	s := model.NewShape("s1", "person", true)
	s.SetFill(model.RGB(0xff, 0xda, 0xda))
	must(g.AddShape(model.NewShape("s0", "person", false)))
	must(g.AddShape(s))
	must(g.AddShape(model.NewShape("s2", "student", true)))
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})

	wants := []string{
		`"person" [label="«kind»\nPerson", fillcolor="#ffdada"];`,
		`"student" [label="«role»\nStudent", fillcolor="#ffffff"];`,
		`"anon" [label="anon", fillcolor="#ffffff"];`,
		`"student" -> "person";`,
		`arrowhead=empty`,
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("malformed DOT:\n%s", dot)
	}
}

func TestToDOTWithIDs(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{IDs: true})
	if !strings.Contains(dot, `label="«kind»\nPerson\n(person)"`) {
		t.Errorf("ids not in labels:\n%s", dot)
	}
	if strings.Contains(dot, "(anon)") {
		t.Error("unnamed class should not repeat its id")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(testGraph(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "Person") {
		t.Errorf("unexpected SVG output: %.200s", s)
	}
}

func TestRenderSVGInvalid(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "digraph {"); err == nil {
		t.Error("expected parse error")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if plain := []byte("<svg/>"); string(normalizeViewBox(plain)) != "<svg/>" {
		t.Error("svg without viewBox should be unchanged")
	}
}
