// Package catalog holds the product data the configurator prices and renders:
// bin models, their size variants, and the optional add-ons. Records are
// grouped into immutable snapshots; an external source replaces the whole
// snapshot, it never mutates records a reader may be iterating.
package catalog

// Size is a bin volume code as printed on the price list ("50/60", "80", "110").
type Size string

const (
	Size50  Size = "50/60"
	Size80  Size = "80"
	Size110 Size = "110"
)

// BinModel is a product family shown in the model picker.
type BinModel struct {
	ID    string
	Name  string
	Image string
}

// Bin is one purchasable model × size configuration.
type Bin struct {
	ModelID     string
	Size        Size
	Name        string
	BasePrice   float64
	ProdDays    int
	BaseImage   string
	MaxPerTruck int
}

// Option is an optional add-on. Price is either a flat amount in euro or,
// when Percentage is set, a percentage of the bin's base price. An empty
// AvailableFor slice means the option fits every size.
type Option struct {
	Code         string
	Label        string
	Price        float64
	Percentage   bool
	AvailableFor []Size
}

// Available reports whether the option can be mounted on a bin of the
// given size.
func (o Option) Available(size Size) bool {
	if len(o.AvailableFor) == 0 {
		return true
	}
	for _, s := range o.AvailableFor {
		if s == size {
			return true
		}
	}
	return false
}

// Snapshot is one immutable generation of the catalog. Lookups walk slices
// in declaration order; that order is load-bearing for the price breakdown.
type Snapshot struct {
	Models  []BinModel
	Bins    []Bin
	Options []Option
}

// BinFor returns the bin for a model/size pair, or nil if the catalog has
// no such variant.
func (s *Snapshot) BinFor(modelID string, size Size) *Bin {
	for i := range s.Bins {
		if s.Bins[i].ModelID == modelID && s.Bins[i].Size == size {
			return &s.Bins[i]
		}
	}
	return nil
}

// BinsForModel returns every size variant of a model, in catalog order.
func (s *Snapshot) BinsForModel(modelID string) []Bin {
	var out []Bin
	for _, b := range s.Bins {
		if b.ModelID == modelID {
			out = append(out, b)
		}
	}
	return out
}

// OptionByCode returns the option with the given code, or nil.
func (s *Snapshot) OptionByCode(code string) *Option {
	for i := range s.Options {
		if s.Options[i].Code == code {
			return &s.Options[i]
		}
	}
	return nil
}

// ModelByID returns the model with the given id, or nil.
func (s *Snapshot) ModelByID(id string) *BinModel {
	for i := range s.Models {
		if s.Models[i].ID == id {
			return &s.Models[i]
		}
	}
	return nil
}
