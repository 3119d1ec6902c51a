package glyphs

import (
	"testing"

	"github.com/Ayoub94x/Cestini-esa-configurator/pdf"
)

var knownCodes = []string{
	"color", "v0", "light", "ashtray", "waste_limiter", "bird_net",
	"dog_compartment", "fill_sensor", "custom_plate", "uhf_tag", "pole_hook",
}

func TestRegistry_KnowsEveryCatalogOption(t *testing.T) {
	r := NewRegistry()
	for _, code := range knownCodes {
		if !r.Known(code) {
			t.Fatalf("no glyph registered for option %q", code)
		}
	}
	if r.Known("hologram") {
		t.Fatal("unexpected glyph for made-up code")
	}
}

func TestRegistry_UnknownCodeFallsBack(t *testing.T) {
	r := NewRegistry()
	fn := r.Lookup("hologram")
	if fn == nil {
		t.Fatal("lookup must never return nil")
	}

	b := pdf.NewBuilder()
	p := b.NewPage(100, 100)
	fn(p, 50, 50, 16, pdf.Color{})
	out, err := b.Bytes()
	if err != nil {
		t.Fatalf("fallback glyph produced unserializable page: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
}

func TestGlyphs_AllDrawWithoutPanic(t *testing.T) {
	r := NewRegistry()
	b := pdf.NewBuilder()
	p := b.NewPage(pdf.A4Width, pdf.A4Height)
	for i, code := range knownCodes {
		fn := r.Lookup(code)
		fn(p, 50+float64(i)*40, 400, 16, pdf.RGB(55, 65, 81))
	}
	if _, err := b.Bytes(); err != nil {
		t.Fatalf("serialize: %v", err)
	}
}

func TestRegister_OverridesAndIgnoresNil(t *testing.T) {
	r := NewRegistry()
	called := false
	r.Register("color", func(p *pdf.Page, cx, cy, size float64, c pdf.Color) { called = true })
	r.Register("light", nil) // must keep the existing glyph

	b := pdf.NewBuilder()
	p := b.NewPage(100, 100)
	r.Lookup("color")(p, 10, 10, 16, pdf.Color{})
	if !called {
		t.Fatal("registered override not invoked")
	}
	if !r.Known("light") {
		t.Fatal("nil registration must not unregister a glyph")
	}
}
