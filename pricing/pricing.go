// Package pricing turns a configurator selection into an ordered list of
// priced line items. Everything here is a pure computation over a catalog
// snapshot: no I/O, safe to call on every selection change.
package pricing

import (
	"fmt"
	"math"

	"github.com/Ayoub94x/Cestini-esa-configurator/catalog"
)

const (
	MinQuantity = 1
	MaxQuantity = 50
)

// ColorOptionCode is the catalog code of the custom-color surcharge, which
// the UI toggles separately from the other options.
const ColorOptionCode = "color"

// Selection is the user's in-progress configuration, as owned by the host's
// state container. The calculator only reads it.
type Selection struct {
	ModelID     string
	Size        catalog.Size
	Options     map[string]bool
	ColorActive bool
	Color       string
	Quantity    int
}

// LineItem is one priced row of the breakdown. Total is always
// UnitPrice × Quantity with UnitPrice already rounded to cents.
type LineItem struct {
	Label     string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// Breakdown is the full ordered price summary for a selection. Total equals
// Subtotal: quotes are issued tax-exclusive.
type Breakdown struct {
	Items    []LineItem
	Subtotal float64
	Total    float64
}

// ClampQuantity normalizes a requested quantity into the contractual 1..50
// range. Applied at the selection boundary so invalid values never reach
// the calculator.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// Compute builds the price breakdown for a selection against a catalog
// snapshot. A nil bin (nothing selected yet) yields a nil breakdown.
//
// Ordering is contractual: the base bin first, the color surcharge second
// when active, then the remaining active options in catalog declaration
// order. The rendered quote table depends on this order being stable.
func Compute(snap *catalog.Snapshot, sel Selection) *Breakdown {
	if snap == nil {
		return nil
	}
	bin := snap.BinFor(sel.ModelID, sel.Size)
	if bin == nil {
		return nil
	}
	qty := ClampQuantity(sel.Quantity)

	b := &Breakdown{}
	b.add(LineItem{
		Label:     fmt.Sprintf("Cestino %s %sL", bin.Name, bin.Size),
		Quantity:  qty,
		UnitPrice: bin.BasePrice,
	})

	if sel.ColorActive {
		if opt := snap.OptionByCode(ColorOptionCode); opt != nil {
			b.add(LineItem{
				Label:     opt.Label,
				Quantity:  qty,
				UnitPrice: round2(bin.BasePrice * opt.Price / 100),
			})
		}
	}

	for _, opt := range snap.Options {
		if opt.Code == ColorOptionCode || !sel.Options[opt.Code] {
			continue
		}
		if !opt.Available(bin.Size) {
			// A leftover toggle from a previous size is not an error,
			// the option simply does not apply.
			continue
		}
		unit := opt.Price
		if opt.Percentage {
			// Round the unit price before multiplying by quantity.
			// Rounding the line total instead shifts exported totals
			// by cents against what the screen showed.
			unit = round2(bin.BasePrice * opt.Price / 100)
		}
		b.add(LineItem{Label: opt.Label, Quantity: qty, UnitPrice: unit})
	}

	b.Total = b.Subtotal
	return b
}

func (b *Breakdown) add(item LineItem) {
	item.UnitPrice = round2(item.UnitPrice)
	item.Total = item.UnitPrice * float64(item.Quantity)
	b.Items = append(b.Items, item)
	b.Subtotal += item.Total
}

// ExceedsTruckCapacity reports whether the selected quantity overflows one
// logistics load of the given bin.
func ExceedsTruckCapacity(bin *catalog.Bin, quantity int) bool {
	if bin == nil {
		return false
	}
	return quantity > bin.MaxPerTruck
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
