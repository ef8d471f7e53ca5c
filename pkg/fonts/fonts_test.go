package fonts

import "testing"

func TestFace(t *testing.T) {
	for _, f := range []Family{Regular, Bold, Mono} {
		face, err := Face(f, 14)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if h := face.Metrics().Height; h <= 0 {
			t.Errorf("%s: height = %v", f, h)
		}
	}
}

func TestFontCached(t *testing.T) {
	a, err := Font(Regular)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Font(Regular)
	if a != b {
		t.Error("Font should return the cached instance")
	}
}

func TestUnknownFamily(t *testing.T) {
	if _, err := Font("comic"); err == nil {
		t.Error("expected error")
	}
}
