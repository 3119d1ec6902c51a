// Package pdf builds and serializes the quote documents the configurator
// exports. It covers exactly what those documents need: multiple A4 pages,
// the two core Helvetica faces, stroked and filled vector paths, RGB raster
// images with alpha, and a paginating table. Output is deterministic: the
// same drawing calls always produce the same bytes.
package pdf

import (
	"bytes"
	"math"
	"strconv"
)

// Page dimensions in points.
const (
	A4Width  = 595.0
	A4Height = 842.0
)

// Font selects one of the built-in core faces.
type Font int

const (
	Helvetica Font = iota
	HelveticaBold
)

func (f Font) resource() string {
	if f == HelveticaBold {
		return "F2"
	}
	return "F1"
}

// Color is an RGB color with components in [0,1]. The zero value draws in
// black.
type Color struct {
	R, G, B float64
}

// RGB builds a Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Info carries the document information dictionary. CreationDate, when set,
// must already be in PDF date format (D:YYYYMMDDHHmmSS).
type Info struct {
	Title        string
	Author       string
	Subject      string
	Producer     string
	CreationDate string
}

// TextOptions configures DrawText.
type TextOptions struct {
	Font  Font
	Size  float64
	Color Color
}

// LineOptions configures DrawLine.
type LineOptions struct {
	Color Color
	Width float64
}

// RectOptions configures DrawRect. With neither Stroke nor Fill set the
// rectangle is stroked, matching the builder convention.
type RectOptions struct {
	StrokeColor Color
	FillColor   Color
	LineWidth   float64
	Stroke      bool
	Fill        bool
}

// Builder assembles a document page by page.
type Builder struct {
	info  Info
	pages []*Page
}

// NewBuilder constructs an empty document builder.
func NewBuilder() *Builder { return &Builder{} }

// SetInfo sets the document information dictionary.
func (b *Builder) SetInfo(info Info) *Builder {
	b.info = info
	return b
}

// NewPage appends a page of the given size and returns it for drawing.
func (b *Builder) NewPage(width, height float64) *Page {
	p := &Page{builder: b, Width: width, Height: height}
	b.pages = append(b.pages, p)
	return p
}

// PageCount returns the number of pages added so far.
func (b *Builder) PageCount() int { return len(b.pages) }

// Page is one document page. Coordinates follow PDF conventions: the origin
// is the bottom-left corner, y grows upward.
type Page struct {
	builder *Builder
	Width   float64
	Height  float64

	content bytes.Buffer
	fonts   map[string]bool
	images  []*Image
}

// DrawText paints a single line of text with its baseline at (x, y).
func (p *Page) DrawText(text string, x, y float64, opts TextOptions) *Page {
	size := opts.Size
	if size <= 0 {
		size = 12
	}
	res := opts.Font.resource()
	p.useFont(res)

	p.op("BT")
	p.content.WriteString("/" + res + " " + ftoa(size) + " Tf\n")
	p.opf("Tm", 1, 0, 0, 1, x, y)
	p.opf("rg", opts.Color.R, opts.Color.G, opts.Color.B)
	p.content.WriteString("(")
	p.content.Write(encodeWinAnsi(text))
	p.content.WriteString(") Tj\n")
	p.op("ET")
	return p
}

// DrawTextRight paints text so that it ends at (x, y).
func (p *Page) DrawTextRight(text string, x, y float64, opts TextOptions) *Page {
	return p.DrawText(text, x-MeasureText(text, opts.Size, opts.Font), y, opts)
}

// DrawTextCentered paints text horizontally centered on x.
func (p *Page) DrawTextCentered(text string, x, y float64, opts TextOptions) *Page {
	return p.DrawText(text, x-MeasureText(text, opts.Size, opts.Font)/2, y, opts)
}

// DrawLine strokes a straight segment.
func (p *Page) DrawLine(x1, y1, x2, y2 float64, opts LineOptions) *Page {
	p.op("q")
	p.opf("RG", opts.Color.R, opts.Color.G, opts.Color.B)
	if opts.Width > 0 {
		p.opf("w", opts.Width)
	}
	p.opf("m", x1, y1)
	p.opf("l", x2, y2)
	p.op("S")
	p.op("Q")
	return p
}

// DrawRect paints a rectangle with its lower-left corner at (x, y).
func (p *Page) DrawRect(x, y, w, h float64, opts RectOptions) *Page {
	if !opts.Stroke && !opts.Fill {
		opts.Stroke = true
	}
	p.op("q")
	p.applyPaint(opts)
	p.opf("re", x, y, w, h)
	p.op(paintOperator(opts))
	p.op("Q")
	return p
}

// DrawPath paints an arbitrary path.
func (p *Page) DrawPath(path *Path, opts RectOptions) *Page {
	if path == nil || len(path.segments) == 0 {
		return p
	}
	if !opts.Stroke && !opts.Fill {
		opts.Stroke = true
	}
	p.op("q")
	p.applyPaint(opts)
	for _, seg := range path.segments {
		p.opf(seg.op, seg.args...)
	}
	if path.closed {
		p.op("h")
	}
	p.op(paintOperator(opts))
	p.op("Q")
	return p
}

// kappa is the cubic Bézier circle constant.
const kappa = 0.5522847498

// DrawEllipse paints an ellipse centered on (cx, cy).
func (p *Page) DrawEllipse(cx, cy, rx, ry float64, opts RectOptions) *Page {
	ox, oy := rx*kappa, ry*kappa
	path := NewPath().
		MoveTo(cx-rx, cy).
		CurveTo(cx-rx, cy+oy, cx-ox, cy+ry, cx, cy+ry).
		CurveTo(cx+ox, cy+ry, cx+rx, cy+oy, cx+rx, cy).
		CurveTo(cx+rx, cy-oy, cx+ox, cy-ry, cx, cy-ry).
		CurveTo(cx-ox, cy-ry, cx-rx, cy-oy, cx-rx, cy).
		Close()
	return p.DrawPath(path, opts)
}

// DrawCircle paints a circle centered on (cx, cy).
func (p *Page) DrawCircle(cx, cy, r float64, opts RectOptions) *Page {
	return p.DrawEllipse(cx, cy, r, r, opts)
}

// DrawImage paints an image scaled into the w×h box whose lower-left corner
// is at (x, y). A nil image is a no-op.
func (p *Page) DrawImage(img *Image, x, y, w, h float64) *Page {
	if img == nil {
		return p
	}
	name := p.addImage(img)
	p.op("q")
	p.opf("cm", w, 0, 0, h, x, y)
	p.content.WriteString("/" + name + " Do\n")
	p.op("Q")
	return p
}

func (p *Page) addImage(img *Image) string {
	for i, existing := range p.images {
		if existing == img {
			return imageName(i)
		}
	}
	p.images = append(p.images, img)
	return imageName(len(p.images) - 1)
}

func imageName(i int) string { return "Im" + strconv.Itoa(i+1) }

func (p *Page) useFont(res string) {
	if p.fonts == nil {
		p.fonts = make(map[string]bool)
	}
	p.fonts[res] = true
}

func (p *Page) applyPaint(opts RectOptions) {
	if opts.Fill {
		p.opf("rg", opts.FillColor.R, opts.FillColor.G, opts.FillColor.B)
	}
	if opts.Stroke {
		p.opf("RG", opts.StrokeColor.R, opts.StrokeColor.G, opts.StrokeColor.B)
		if opts.LineWidth > 0 {
			p.opf("w", opts.LineWidth)
		}
	}
}

func paintOperator(opts RectOptions) string {
	switch {
	case opts.Fill && opts.Stroke:
		return "B"
	case opts.Fill:
		return "f"
	default:
		return "S"
	}
}

func (p *Page) op(name string) {
	p.content.WriteString(name)
	p.content.WriteByte('\n')
}

func (p *Page) opf(name string, args ...float64) {
	for _, a := range args {
		p.content.WriteString(ftoa(a))
		p.content.WriteByte(' ')
	}
	p.content.WriteString(name)
	p.content.WriteByte('\n')
}

// Path accumulates move/line/curve segments for DrawPath.
type Path struct {
	segments []pathSegment
	closed   bool
}

type pathSegment struct {
	op   string
	args []float64
}

// NewPath starts an empty path.
func NewPath() *Path { return &Path{} }

func (p *Path) MoveTo(x, y float64) *Path {
	p.segments = append(p.segments, pathSegment{op: "m", args: []float64{x, y}})
	return p
}

func (p *Path) LineTo(x, y float64) *Path {
	p.segments = append(p.segments, pathSegment{op: "l", args: []float64{x, y}})
	return p
}

func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.segments = append(p.segments, pathSegment{op: "c", args: []float64{c1x, c1y, c2x, c2y, x, y}})
	return p
}

func (p *Path) Close() *Path {
	p.closed = true
	return p
}

// MeasureText approximates the rendered width of text in points. Core font
// metrics are not embedded; half the em square per glyph tracks Helvetica
// closely enough for the alignment decisions this package makes.
func MeasureText(text string, size float64, _ Font) float64 {
	if size <= 0 {
		size = 12
	}
	n := 0
	for range text {
		n++
	}
	return float64(n) * size * 0.5
}

// ftoa formats a coordinate with up to three decimals, no trailing zeros.
func ftoa(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0" // avoids "-0" for tiny negatives
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// encodeWinAnsi maps a string to WinAnsi bytes, escaping the characters
// that delimit PDF string literals. Unmappable runes render as '?'.
func encodeWinAnsi(s string) []byte {
	var out []byte
	for _, r := range s {
		var b byte
		switch {
		case r == '\\' || r == '(' || r == ')':
			out = append(out, '\\', byte(r))
			continue
		case r < 0x80:
			b = byte(r)
		case r <= 0xFF && (r < 0x80 || r > 0x9F):
			b = byte(r)
		default:
			b = winAnsiExtra(r)
		}
		out = append(out, b)
	}
	return out
}

// winAnsiExtra covers the non-Latin-1 code points WinAnsi assigns to the
// 0x80..0x9F range, the ones quote text actually uses.
func winAnsiExtra(r rune) byte {
	switch r {
	case '€':
		return 0x80
	case '‘':
		return 0x91
	case '’':
		return 0x92
	case '“':
		return 0x93
	case '”':
		return 0x94
	case '•':
		return 0x95
	case '–':
		return 0x96
	case '—':
		return 0x97
	case '™':
		return 0x99
	default:
		return '?'
	}
}
