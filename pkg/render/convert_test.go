package render

import "testing"

func TestConvertSVGPassthrough(t *testing.T) {
	svg := []byte("<svg/>")
	for _, path := range []string{"out.svg", "OUT.SVG", "out"} {
		got, err := Convert(svg, path)
		if err != nil {
			t.Fatalf("Convert(%q) error: %v", path, err)
		}
		if string(got) != string(svg) {
			t.Errorf("Convert(%q) = %s", path, got)
		}
	}
}

func TestConvertUnsupported(t *testing.T) {
	if _, err := Convert([]byte("<svg/>"), "out.gif"); err == nil {
		t.Error("expected error for .gif")
	}
}
