// Package glyphs draws the small vector icons that mark options inside the
// exported quote. Each known option code registers a drawing routine; codes
// without one fall back to a plain circle, so a new catalog option never
// breaks document generation.
package glyphs

import "github.com/Ayoub94x/Cestini-esa-configurator/pdf"

// Func draws one glyph centered on (cx, cy), sized to fit a size×size box,
// in the given color. Coordinates are PDF page coordinates (y up).
type Func func(p *pdf.Page, cx, cy, size float64, color pdf.Color)

// Registry maps option codes to glyph drawing routines.
type Registry struct {
	byCode map[string]Func
}

// NewRegistry returns a registry preloaded with the built-in option glyphs.
func NewRegistry() *Registry {
	r := &Registry{byCode: make(map[string]Func)}
	for code, fn := range builtin {
		r.Register(code, fn)
	}
	return r
}

// Register binds a drawing routine to an option code, replacing any
// previous binding.
func (r *Registry) Register(code string, fn Func) {
	if fn != nil {
		r.byCode[code] = fn
	}
}

// Lookup returns the glyph for a code, or the generic fallback when the
// code is unknown.
func (r *Registry) Lookup(code string) Func {
	if fn, ok := r.byCode[code]; ok {
		return fn
	}
	return Fallback
}

// Known reports whether a dedicated glyph exists for the code.
func (r *Registry) Known(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// Fallback is the generic glyph for unrecognized codes.
func Fallback(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	p.DrawCircle(cx, cy, size/4, pdf.RectOptions{StrokeColor: color, LineWidth: size / 16, Stroke: true})
}
