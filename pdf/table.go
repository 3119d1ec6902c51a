package pdf

// HAlign controls horizontal text alignment within a table cell.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// Cell is one table cell.
type Cell struct {
	Text  string
	Font  Font
	Size  float64
	Align HAlign
	Color Color
}

// Table is a matrix of cells with fixed column widths. The first HeaderRows
// rows are styled with the header fill and repeated after a page break.
type Table struct {
	Columns    []float64
	Rows       [][]Cell
	HeaderRows int
}

// TableOptions configures table rendering. Y is the top edge of the first
// row; rendering walks downward and breaks to a new page when the next row
// would cross BottomMargin.
type TableOptions struct {
	X            float64
	Y            float64
	CellPadding  float64
	BorderColor  Color
	BorderWidth  float64
	HeaderFill   Color
	HeaderColor  Color
	DefaultSize  float64
	BottomMargin float64
	TopMargin    float64 // first-row Y on continuation pages
}

// DrawTable renders the table starting on this page, adding pages as rows
// overflow. It returns the page the table ended on and the y coordinate of
// the final row's bottom edge.
func (p *Page) DrawTable(t Table, opts TableOptions) (*Page, float64) {
	if len(t.Columns) == 0 || len(t.Rows) == 0 {
		return p, opts.Y
	}
	pad := opts.CellPadding
	if pad == 0 {
		pad = 4
	}
	defaultSize := opts.DefaultSize
	if defaultSize == 0 {
		defaultSize = 10
	}
	borderWidth := opts.BorderWidth
	if borderWidth == 0 {
		borderWidth = 0.5
	}
	headerCount := t.HeaderRows
	if headerCount > len(t.Rows) {
		headerCount = len(t.Rows)
	}

	rowHeight := func(row []Cell) float64 {
		h := 0.0
		for _, c := range row {
			size := c.Size
			if size == 0 {
				size = defaultSize
			}
			if ch := size*1.2 + 2*pad; ch > h {
				h = ch
			}
		}
		return h
	}

	cur := p
	curY := opts.Y

	drawRow := func(row []Cell, height float64, isHeader bool) {
		x := opts.X
		for col := 0; col < len(t.Columns) && col < len(row); col++ {
			cell := row[col]
			width := t.Columns[col]
			if isHeader {
				cur.DrawRect(x, curY-height, width, height, RectOptions{
					Fill:      true,
					FillColor: opts.HeaderFill,
				})
			}
			cur.DrawRect(x, curY-height, width, height, RectOptions{
				Stroke:      true,
				StrokeColor: opts.BorderColor,
				LineWidth:   borderWidth,
			})

			size := cell.Size
			if size == 0 {
				size = defaultSize
			}
			font := cell.Font
			color := cell.Color
			if isHeader {
				if font == Helvetica {
					font = HelveticaBold
				}
				color = opts.HeaderColor
			}
			textY := curY - pad - size
			textOpts := TextOptions{Font: font, Size: size, Color: color}
			switch cell.Align {
			case AlignCenter:
				cur.DrawTextCentered(cell.Text, x+width/2, textY, textOpts)
			case AlignRight:
				cur.DrawTextRight(cell.Text, x+width-pad, textY, textOpts)
			default:
				cur.DrawText(cell.Text, x+pad, textY, textOpts)
			}
			x += width
		}
		curY -= height
	}

	for i, row := range t.Rows {
		height := rowHeight(row)
		if i >= headerCount && curY-height < opts.BottomMargin {
			cur = cur.builder.NewPage(cur.Width, cur.Height)
			curY = cur.Height - opts.TopMargin
			for j := 0; j < headerCount; j++ {
				drawRow(t.Rows[j], rowHeight(t.Rows[j]), true)
			}
		}
		drawRow(row, height, i < headerCount)
	}
	return cur, curY
}
