// Package quote turns a catalog selection into a finished quote PDF. It
// recomputes the price breakdown, resolves the brand logo and product photo,
// and lays out the document sections against a vertical cursor: header,
// client block, product block, selected options, price table, totals and
// terms. Output is deterministic for a fixed clock and fixed images.
package quote

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Ayoub94x/Cestini-esa-configurator/assets"
	"github.com/Ayoub94x/Cestini-esa-configurator/catalog"
	"github.com/Ayoub94x/Cestini-esa-configurator/glyphs"
	"github.com/Ayoub94x/Cestini-esa-configurator/observability"
	"github.com/Ayoub94x/Cestini-esa-configurator/pricing"
)

var (
	// ErrGenerationInFlight is returned when Generate is called while a
	// previous call on the same Generator is still running.
	ErrGenerationInFlight = errors.New("quote generation already in flight")

	// ErrNothingSelected is returned when the selection does not resolve
	// to a bin in the current catalog snapshot.
	ErrNothingSelected = errors.New("no bin selected")
)

// ClientInfo is the optional recipient block printed on the quote.
type ClientInfo struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

func (c ClientInfo) lines() []string {
	var out []string
	if c.Name != "" {
		out = append(out, c.Name)
	}
	if c.Address != "" {
		out = append(out, c.Address)
	}
	var contact []string
	if c.Email != "" {
		contact = append(contact, c.Email)
	}
	if c.Phone != "" {
		contact = append(contact, c.Phone)
	}
	if len(contact) > 0 {
		out = append(out, strings.Join(contact, " • "))
	}
	return out
}

// Issuer identifies the company issuing the quote.
type Issuer struct {
	Name    string
	Lines   []string // address and fiscal lines, printed top-right
	LogoRef string
	Terms   []string // standard conditions appended after any free notes
}

// DefaultIssuer returns the ESA identity quotes carry unless overridden.
func DefaultIssuer() Issuer {
	return Issuer{
		Name: "Ecologia Soluzione Ambiente S.p.A.",
		Lines: []string{
			"Via Vittorio Veneto, 2-2/A",
			"42021 Bibbiano (RE)",
			"P.IVA IT01494430356",
		},
		LogoRef: "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/Logo_ESA-SH0r2i3VZYnYmHs6wymFizOyag967i.png",
		Terms: []string{
			"Validità del preventivo: 30 giorni",
			"Prezzi netti, IVA esclusa",
			"Condizioni di pagamento secondo accordi",
		},
	}
}

// Request is one quote to generate.
type Request struct {
	Selection pricing.Selection
	Client    ClientInfo
	Notes     string
}

// Document is the generated artifact.
type Document struct {
	Bytes    []byte
	Filename string
	Number   string
	Pages    int
}

// Config tunes a Generator. Zero values fall back to the default issuer,
// the built-in glyph registry, a no-op logger and the wall clock.
type Config struct {
	Issuer *Issuer
	Glyphs *glyphs.Registry
	Logger observability.Logger
	Clock  func() time.Time
}

// Generator renders quotes against the live catalog. One generation runs at
// a time; concurrent calls fail fast with ErrGenerationInFlight.
type Generator struct {
	store   *catalog.Store
	fetcher assets.Fetcher
	glyphs  *glyphs.Registry
	log     observability.Logger
	now     func() time.Time
	issuer  Issuer

	busy atomic.Bool
}

// NewGenerator builds a Generator over a catalog store and an image fetcher.
func NewGenerator(store *catalog.Store, fetcher assets.Fetcher, cfg Config) *Generator {
	g := &Generator{
		store:   store,
		fetcher: fetcher,
		glyphs:  cfg.Glyphs,
		log:     cfg.Logger,
		now:     cfg.Clock,
		issuer:  DefaultIssuer(),
	}
	if cfg.Issuer != nil {
		g.issuer = *cfg.Issuer
	}
	if g.glyphs == nil {
		g.glyphs = glyphs.NewRegistry()
	}
	if g.log == nil {
		g.log = observability.NopLogger{}
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// Generate renders the quote for req and returns the finished document.
// Image failures degrade to placeholders; anything else aborts with no
// partial output.
func (g *Generator) Generate(ctx context.Context, req Request) (*Document, error) {
	if !g.busy.CompareAndSwap(false, true) {
		return nil, ErrGenerationInFlight
	}
	defer g.busy.Store(false)

	start := g.now()
	snap := g.store.Current()
	sel := req.Selection
	sel.Quantity = pricing.ClampQuantity(sel.Quantity)

	bin := snap.BinFor(sel.ModelID, sel.Size)
	breakdown := pricing.Compute(snap, sel)
	if bin == nil || breakdown == nil {
		return nil, ErrNothingSelected
	}

	fetchStart := g.now()
	pair, err := assets.FetchPair(ctx, g.fetcher, g.issuer.LogoRef, bin.BaseImage, g.log)
	if err != nil {
		return nil, fmt.Errorf("fetch quote images: %w", err)
	}
	g.log.Debug("quote images resolved",
		observability.Float64(observability.MetricAssetFetch, g.now().Sub(fetchStart).Seconds()))

	now := g.now()
	number := quoteNumber(now)
	data, pages, err := g.render(snap, sel, bin, breakdown, req, pair, now, number)
	if err != nil {
		return nil, fmt.Errorf("render quote: %w", err)
	}

	g.log.Info("quote generated",
		observability.String("number", number),
		observability.String("model", bin.ModelID),
		observability.Int(observability.MetricPageCount, pages),
		observability.Float64(observability.MetricGenerateTime, g.now().Sub(start).Seconds()))

	return &Document{
		Bytes:    data,
		Filename: Filename(bin.ModelID, now),
		Number:   number,
		Pages:    pages,
	}, nil
}

// Filename names the generated artifact from the product family and the
// issue date.
func Filename(modelID string, now time.Time) string {
	return fmt.Sprintf("quote_%s_%s.pdf", modelID, now.Format("2006-01-02"))
}

// quoteNumber derives the printed quote number from the clock, keeping the
// last six digits of the millisecond timestamp.
func quoteNumber(now time.Time) string {
	return fmt.Sprintf("ESA-%06d", now.UnixMilli()%1_000_000)
}

// formatEUR renders an amount the way Italian locales print euro values:
// thousands separated by dots, comma decimals, trailing euro sign.
func formatEUR(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}
	sb.WriteByte(',')
	sb.WriteString(fracPart)
	sb.WriteString(" €")
	return sb.String()
}

// formatDelta renders an option's price delta for the options list.
func formatDelta(opt catalog.Option) string {
	if opt.Price == 0 {
		return ""
	}
	n := strconv.FormatFloat(opt.Price, 'f', -1, 64)
	if opt.Percentage {
		return "(+" + n + "%)"
	}
	return "(+€" + n + ")"
}
