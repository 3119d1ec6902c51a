package glyphs

import "github.com/Ayoub94x/Cestini-esa-configurator/pdf"

// Accent colors used inside a few glyphs, matching the preview icon set.
var (
	accentRed   = pdf.RGB(239, 68, 68)
	accentGreen = pdf.RGB(34, 197, 94)
	accentBlue  = pdf.RGB(59, 130, 246)
	accentAmber = pdf.RGB(245, 158, 11)
)

// builtin holds one drawing routine per known option code. Glyphs are
// authored on a 24-unit grid and scaled into the requested box.
var builtin = map[string]Func{
	"color":           drawPalette,
	"v0":              drawFlameOff,
	"light":           drawBulb,
	"ashtray":         drawCigarette,
	"waste_limiter":   drawArrowToLine,
	"bird_net":        drawBird,
	"dog_compartment": drawDog,
	"fill_sensor":     drawSignalBars,
	"custom_plate":    drawInfoBadge,
	"uhf_tag":         drawRadioTower,
	"pole_hook":       drawAnchor,
}

func stroke(color pdf.Color, width float64) pdf.RectOptions {
	return pdf.RectOptions{Stroke: true, StrokeColor: color, LineWidth: width}
}

func fill(color pdf.Color) pdf.RectOptions {
	return pdf.RectOptions{Fill: true, FillColor: color}
}

func line(color pdf.Color, width float64) pdf.LineOptions {
	return pdf.LineOptions{Color: color, Width: width}
}

// drawPalette: painter's palette with three paint dots.
func drawPalette(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	w, h := 12*s, 8*s
	p.DrawRect(cx-w/2, cy-h/2, w, h, stroke(color, 1.5*s))
	p.DrawCircle(cx+w/3, cy, 2*s, stroke(color, 1.5*s))
	p.DrawCircle(cx-w/3, cy+h/4, s, fill(accentRed))
	p.DrawCircle(cx-w/6, cy+h/4, s, fill(accentGreen))
	p.DrawCircle(cx, cy+h/4, s, fill(accentBlue))
}

// drawFlameOff: flame outline with a slash through it.
func drawFlameOff(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	pts := [][2]float64{
		{cx, cy + 6*s},
		{cx - 3*s, cy + 2*s},
		{cx - 2*s, cy - 2*s},
		{cx + 2*s, cy - 2*s},
		{cx + 3*s, cy + 2*s},
	}
	path := pdf.NewPath().MoveTo(pts[0][0], pts[0][1])
	for _, pt := range pts[1:] {
		path.LineTo(pt[0], pt[1])
	}
	path.Close()
	p.DrawPath(path, stroke(color, 1.5*s))
	p.DrawLine(cx-6*s, cy+6*s, cx+6*s, cy-6*s, line(color, 2*s))
}

// drawBulb: light bulb with base lines.
func drawBulb(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	p.DrawCircle(cx, cy+2*s, 4*s, stroke(color, 1.5*s))
	p.DrawLine(cx-2*s, cy-2*s, cx+2*s, cy-2*s, line(color, 1.5*s))
	p.DrawLine(cx-2*s, cy-3*s, cx+2*s, cy-3*s, line(color, 1.5*s))
	p.DrawLine(cx-s, cy-4*s, cx+s, cy-4*s, line(color, 1.5*s))
}

// drawCigarette: cigarette with filter tip and glowing end.
func drawCigarette(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	p.DrawLine(cx-6*s, cy, cx+6*s, cy, line(color, 2*s))
	p.DrawRect(cx+4*s, cy-s, 2*s, 2*s, fill(accentAmber))
	p.DrawCircle(cx-6*s, cy, s, fill(accentRed))
}

// drawArrowToLine: downward arrow meeting a base line.
func drawArrowToLine(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	p.DrawLine(cx-6*s, cy-6*s, cx+6*s, cy-6*s, line(color, 2*s))
	p.DrawLine(cx, cy+6*s, cx, cy-4*s, line(color, 2*s))
	p.DrawLine(cx-3*s, cy-s, cx, cy-4*s, line(color, 2*s))
	p.DrawLine(cx+3*s, cy-s, cx, cy-4*s, line(color, 2*s))
}

// drawBird: perched bird silhouette.
func drawBird(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	p.DrawLine(cx-4*s, cy, cx+2*s, cy, line(color, 1.5*s))
	p.DrawLine(cx-2*s, cy, cx-s, cy+3*s, line(color, 1.5*s))
	p.DrawLine(cx-s, cy+3*s, cx+s, cy+2*s, line(color, 1.5*s))
	p.DrawCircle(cx+2*s, cy, 1.5*s, stroke(color, 1.5*s))
	p.DrawLine(cx+3.5*s, cy, cx+5*s, cy+s, line(color, 1.5*s))
}

// drawDog: dog silhouette with head, body, legs and tail.
func drawDog(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	p.DrawCircle(cx-2*s, cy+s, 2*s, stroke(color, 1.5*s))
	p.DrawLine(cx-3*s, cy+2*s, cx-2*s, cy+4*s, line(color, 1.5*s))
	p.DrawLine(cx-s, cy+2*s, cx-2*s, cy+4*s, line(color, 1.5*s))
	p.DrawEllipse(cx+s, cy-s, 3*s, 2*s, stroke(color, 1.5*s))
	p.DrawLine(cx-s, cy-2*s, cx-s, cy-4*s, line(color, 1.5*s))
	p.DrawLine(cx+s, cy-2*s, cx+s, cy-4*s, line(color, 1.5*s))
	p.DrawLine(cx+3*s, cy-2*s, cx+3*s, cy-4*s, line(color, 1.5*s))
	p.DrawLine(cx+4*s, cy, cx+6*s, cy+2*s, line(color, 1.5*s))
}

// drawSignalBars: four bars of increasing height.
func drawSignalBars(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	for i, h := range []float64{2, 4, 6, 8} {
		x := cx - 6*s + float64(i)*3*s
		p.DrawRect(x, cy-4*s, 2*s, h*s, fill(color))
	}
}

// drawInfoBadge: circled information mark.
func drawInfoBadge(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	p.DrawCircle(cx, cy, 6*s, stroke(color, 1.5*s))
	p.DrawCircle(cx, cy+2*s, s, fill(color))
	p.DrawRect(cx-0.5*s, cy-4*s, s, 4*s, fill(color))
}

// drawRadioTower: mast with cross beams and radiating waves.
func drawRadioTower(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	p.DrawLine(cx, cy-6*s, cx, cy+6*s, line(color, 2*s))
	p.DrawLine(cx-2*s, cy+2*s, cx+2*s, cy+2*s, line(color, 2*s))
	p.DrawLine(cx-s, cy+4*s, cx+s, cy+4*s, line(color, 2*s))
	for i := 1; i <= 3; i++ {
		r := float64(i) * 2 * s
		p.DrawEllipse(cx+4*s, cy+4*s, r, r, stroke(color, s))
	}
}

// drawAnchor: anchor with ring, arms and flukes.
func drawAnchor(p *pdf.Page, cx, cy, size float64, color pdf.Color) {
	s := size / 24
	p.DrawLine(cx, cy+6*s, cx, cy-4*s, line(color, 2*s))
	p.DrawCircle(cx, cy+6*s, 2*s, stroke(color, 1.5*s))
	p.DrawLine(cx-4*s, cy-2*s, cx+4*s, cy-2*s, line(color, 2*s))
	p.DrawLine(cx-4*s, cy-2*s, cx-2*s, cy-4*s, line(color, 2*s))
	p.DrawLine(cx+4*s, cy-2*s, cx+2*s, cy-4*s, line(color, 2*s))
	p.DrawLine(cx-2*s, cy-4*s, cx-3*s, cy-3*s, line(color, 2*s))
	p.DrawLine(cx+2*s, cy-4*s, cx+3*s, cy-3*s, line(color, 2*s))
}
