package quote

import (
	"fmt"
	"time"

	"github.com/Ayoub94x/Cestini-esa-configurator/assets"
	"github.com/Ayoub94x/Cestini-esa-configurator/catalog"
	"github.com/Ayoub94x/Cestini-esa-configurator/pdf"
	"github.com/Ayoub94x/Cestini-esa-configurator/pricing"
)

const margin = 48.0

// Sober palette shared by all sections.
var (
	colorPrimary   = pdf.RGB(17, 24, 39)
	colorSecondary = pdf.RGB(55, 65, 81)
	colorBorder    = pdf.RGB(229, 231, 235)
	colorText      = pdf.RGB(17, 24, 39)
	colorMuted     = pdf.RGB(107, 114, 128)
	colorHeaderBG  = pdf.RGB(245, 247, 250)
)

// cursor walks a page from the top down. pdf coordinates grow upward, so
// every draw call flips through py.
type cursor struct {
	builder *pdf.Builder
	page    *pdf.Page
	y       float64 // distance from the top edge
}

func (c *cursor) py(yTop float64) float64 { return c.page.Height - yTop }

func (c *cursor) text(s string, x, yTop float64, opts pdf.TextOptions) {
	c.page.DrawText(s, x, c.py(yTop), opts)
}

func (c *cursor) textRight(s string, x, yTop float64, opts pdf.TextOptions) {
	c.page.DrawTextRight(s, x, c.py(yTop), opts)
}

func (c *cursor) rule(yTop, width float64) {
	c.page.DrawLine(margin, c.py(yTop), c.page.Width-margin, c.py(yTop),
		pdf.LineOptions{Color: colorBorder, Width: width})
}

// sectionTitle draws a section heading with its underline and advances the
// cursor past both.
func (c *cursor) sectionTitle(title string, advance float64) {
	c.text(title, margin, c.y, pdf.TextOptions{Font: pdf.HelveticaBold, Size: 11, Color: colorSecondary})
	c.rule(c.y+6, 0.6)
	c.y += advance
}

func (g *Generator) render(
	snap *catalog.Snapshot,
	sel pricing.Selection,
	bin *catalog.Bin,
	breakdown *pricing.Breakdown,
	req Request,
	pair assets.Pair,
	now time.Time,
	number string,
) ([]byte, int, error) {
	b := pdf.NewBuilder()
	b.SetInfo(pdf.Info{
		Title:        fmt.Sprintf("Preventivo %s %sL", bin.Name, bin.Size),
		Author:       g.issuer.Name,
		Subject:      "Preventivo " + number,
		Producer:     "Cestini ESA Configurator",
		CreationDate: now.UTC().Format("D:20060102150405"),
	})
	c := &cursor{builder: b, page: b.NewPage(pdf.A4Width, pdf.A4Height), y: margin}

	g.renderHeader(c, pair.Logo, now, number)
	g.renderClient(c, req.Client)
	g.renderProduct(c, bin, sel, pair.Photo)
	g.renderOptions(c, snap, sel)
	endY := g.renderPriceTable(c, breakdown)
	g.renderTotals(c, breakdown, req.Notes, endY)

	data, err := b.Bytes()
	if err != nil {
		return nil, 0, err
	}
	return data, b.PageCount(), nil
}

func (g *Generator) renderHeader(c *cursor, logo *assets.Raster, now time.Time, number string) {
	// Logo fitted into a 140×40 box, aspect preserved.
	if logo != nil {
		logo = assets.Fit(logo, 560, 160)
		drawW := float64(logo.Width) / float64(logo.Height) * 40
		drawH := 40.0
		if drawW > 140 {
			s := 140 / drawW
			drawW = 140
			drawH *= s
		}
		c.page.DrawImage(pdf.FromImage(logo.Image), margin, c.py(c.y+drawH), drawW, drawH)
	} else {
		c.page.DrawRect(margin, c.py(c.y+40), 140, 40, pdf.RectOptions{StrokeColor: colorBorder, LineWidth: 0.6})
		c.page.DrawTextCentered("Logo non disponibile", margin+70, c.py(c.y+22),
			pdf.TextOptions{Size: 8, Color: colorMuted})
	}

	right := c.page.Width - margin
	c.textRight(g.issuer.Name, right, c.y+8, pdf.TextOptions{Font: pdf.HelveticaBold, Size: 10, Color: colorText})
	for i, line := range g.issuer.Lines {
		c.textRight(line, right, c.y+22+float64(i)*12, pdf.TextOptions{Size: 9, Color: colorMuted})
	}
	c.y += 66

	c.text("Preventivo", margin, c.y, pdf.TextOptions{Font: pdf.HelveticaBold, Size: 22, Color: colorPrimary})
	meta := pdf.TextOptions{Size: 10, Color: colorMuted}
	c.textRight("Data: "+now.Format("02/01/2006"), right, c.y-6, meta)
	c.textRight("N° "+number, right, c.y+8, meta)

	c.y += 16
	c.rule(c.y, 0.8)
	c.y += 20
}

func (g *Generator) renderClient(c *cursor, client ClientInfo) {
	c.sectionTitle("Dati Cliente", 18)

	lines := client.lines()
	if len(lines) == 0 {
		c.text("— Nessun dato cliente fornito —", margin, c.y, pdf.TextOptions{Size: 10, Color: colorMuted})
		c.y += 32
		return
	}
	for i, line := range lines {
		c.text(line, margin, c.y+float64(i)*14, pdf.TextOptions{Size: 10, Color: colorText})
	}
	c.y += float64(len(lines))*14 + 18
}

func (g *Generator) renderProduct(c *cursor, bin *catalog.Bin, sel pricing.Selection, photo *assets.Raster) {
	c.sectionTitle("Dettagli Prodotto", 22)

	const boxW, boxH = 110.0, 95.0
	boxTop := c.y
	c.page.DrawRect(margin, c.py(boxTop+boxH), boxW, boxH, pdf.RectOptions{StrokeColor: colorBorder, LineWidth: 0.6})

	if photo != nil {
		photo = assets.Fit(photo, 440, 380)
		scale := boxW / float64(photo.Width)
		if s := boxH / float64(photo.Height); s < scale {
			scale = s
		}
		drawW := float64(photo.Width) * scale
		drawH := float64(photo.Height) * scale
		drawX := margin + (boxW-drawW)/2
		drawTop := boxTop + (boxH-drawH)/2
		c.page.DrawImage(pdf.FromImage(photo.Image), drawX, c.py(drawTop+drawH), drawW, drawH)
	} else {
		c.page.DrawTextCentered("Immagine non disponibile", margin+boxW/2, c.py(boxTop+boxH/2),
			pdf.TextOptions{Size: 9, Color: colorMuted})
	}

	detailsX := margin + boxW + 16
	detailsY := boxTop + 10
	c.text(fmt.Sprintf("%s %sL", bin.Name, bin.Size), detailsX, detailsY,
		pdf.TextOptions{Font: pdf.HelveticaBold, Size: 14, Color: colorPrimary})

	type specRow struct{ label, value string }
	specs := []specRow{
		{"Modello", bin.Name},
		{"Capacità", string(bin.Size) + " L"},
		{"Quantità", fmt.Sprintf("%d pz", sel.Quantity)},
		{"Produzione", fmt.Sprintf("%d giorni", bin.ProdDays)},
	}
	if pricing.ExceedsTruckCapacity(bin, sel.Quantity) {
		specs = append(specs, specRow{"Trasporto", fmt.Sprintf("oltre %d pz per camion", bin.MaxPerTruck)})
	}

	specY := detailsY + 18
	for _, spec := range specs {
		c.text(spec.label+":", detailsX, specY, pdf.TextOptions{Size: 10, Color: colorMuted})
		c.text(spec.value, detailsX+60, specY, pdf.TextOptions{Size: 10, Color: colorText})
		specY += 14
	}

	bottom := boxTop + boxH
	if specY > bottom {
		bottom = specY
	}
	c.y = bottom + 18
}

// selectedOptions lists the options the quote itemizes: the color surcharge
// first when active, then the active catalog options available for the
// selected size, in catalog declaration order.
func selectedOptions(snap *catalog.Snapshot, sel pricing.Selection) []catalog.Option {
	var out []catalog.Option
	if sel.ColorActive {
		if opt := snap.OptionByCode(pricing.ColorOptionCode); opt != nil {
			out = append(out, *opt)
		}
	}
	for _, opt := range snap.Options {
		if opt.Code == pricing.ColorOptionCode || !sel.Options[opt.Code] {
			continue
		}
		if !opt.Available(sel.Size) {
			continue
		}
		out = append(out, opt)
	}
	return out
}

func (g *Generator) renderOptions(c *cursor, snap *catalog.Snapshot, sel pricing.Selection) {
	opts := selectedOptions(snap, sel)
	if len(opts) == 0 {
		return
	}
	c.sectionTitle("Optional selezionati", 18)

	for i, opt := range opts {
		rowY := c.y + float64(i)*18
		draw := g.glyphs.Lookup(opt.Code)
		draw(c.page, margin+7, c.py(rowY-4), 14, colorSecondary)
		label := opt.Label
		if delta := formatDelta(opt); delta != "" {
			label += " " + delta
		}
		c.text(label, margin+22, rowY, pdf.TextOptions{Size: 10, Color: colorText})
	}
	c.y += float64(len(opts))*18 + 12
}

func (g *Generator) renderPriceTable(c *cursor, breakdown *pricing.Breakdown) float64 {
	c.sectionTitle("Riepilogo prezzi", 16)

	rows := [][]pdf.Cell{{
		{Text: "Descrizione"},
		{Text: "Quantità", Align: pdf.AlignCenter},
		{Text: "Prezzo unitario", Align: pdf.AlignRight},
		{Text: "Totale", Align: pdf.AlignRight},
	}}
	for _, item := range breakdown.Items {
		rows = append(rows, []pdf.Cell{
			{Text: item.Label, Color: colorText},
			{Text: fmt.Sprintf("%d", item.Quantity), Align: pdf.AlignCenter, Color: colorText},
			{Text: formatEUR(item.UnitPrice), Align: pdf.AlignRight, Color: colorText},
			{Text: formatEUR(item.Total), Align: pdf.AlignRight, Font: pdf.HelveticaBold, Color: colorText},
		})
	}

	table := pdf.Table{
		Columns:    []float64{230, 70, 100, 99}, // content width at A4 with 48pt margins
		Rows:       rows,
		HeaderRows: 1,
	}
	end, endY := c.page.DrawTable(table, pdf.TableOptions{
		X:            margin,
		Y:            c.py(c.y),
		CellPadding:  8,
		BorderColor:  colorBorder,
		BorderWidth:  0.5,
		HeaderFill:   colorHeaderBG,
		HeaderColor:  colorText,
		DefaultSize:  10,
		BottomMargin: margin,
		TopMargin:    margin,
	})
	c.page = end
	return endY
}

func (g *Generator) renderTotals(c *cursor, breakdown *pricing.Breakdown, notes string, tableEndY float64) {
	bullets := g.issuer.Terms
	if notes != "" {
		bullets = append([]string{notes}, g.issuer.Terms...)
	}

	// Keep the totals band and terms together; break to a fresh page when
	// the table ended too close to the bottom edge.
	needed := 42 + 18 + float64(len(bullets))*14 + 20
	if tableEndY-18-needed < margin {
		c.page = c.builder.NewPage(c.page.Width, c.page.Height)
		c.y = margin
	} else {
		c.y = c.py(tableEndY) + 18
	}

	c.rule(c.y, 0.8)
	c.text("Totale preventivo (IVA esclusa)", margin, c.y+20,
		pdf.TextOptions{Font: pdf.HelveticaBold, Size: 12, Color: colorText})
	c.textRight(formatEUR(breakdown.Total), c.page.Width-margin, c.y+22,
		pdf.TextOptions{Font: pdf.HelveticaBold, Size: 20, Color: colorText})

	c.y += 42
	c.sectionTitle("Condizioni e note", 18)
	for i, line := range bullets {
		c.text("• "+line, margin, c.y+float64(i)*14, pdf.TextOptions{Size: 9, Color: colorText})
	}
}
