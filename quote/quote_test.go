package quote

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/Ayoub94x/Cestini-esa-configurator/assets"
	"github.com/Ayoub94x/Cestini-esa-configurator/catalog"
	"github.com/Ayoub94x/Cestini-esa-configurator/pricing"
)

var fixedTime = time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

type stubFetcher struct{}

func (stubFetcher) Fetch(_ context.Context, _ string) (*assets.Raster, error) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return &assets.Raster{Image: img, Width: 8, Height: 8}, nil
}

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, string) (*assets.Raster, error) {
	return nil, errors.New("unreachable")
}

type blockingFetcher struct {
	started chan struct{}
	release chan struct{}
}

func (f *blockingFetcher) Fetch(context.Context, string) (*assets.Raster, error) {
	select {
	case f.started <- struct{}{}:
	default:
	}
	<-f.release
	return nil, errors.New("blocked")
}

func testGenerator(f assets.Fetcher) *Generator {
	return NewGenerator(catalog.NewStore(catalog.Default()), f, Config{Clock: fixedClock})
}

func testSelection() pricing.Selection {
	return pricing.Selection{
		ModelID:     "branca",
		Size:        catalog.Size50,
		Options:     map[string]bool{"light": true, "pole_hook": true},
		ColorActive: true,
		Color:       "#ff5500",
		Quantity:    3,
	}
}

func TestGenerateProducesDocument(t *testing.T) {
	g := testGenerator(stubFetcher{})
	doc, err := g.Generate(context.Background(), Request{
		Selection: testSelection(),
		Client:    ClientInfo{Name: "Rossi S.r.l.", Email: "info@rossi.it"},
		Notes:     "Consegna entro ottobre",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(doc.Bytes) == 0 {
		t.Fatal("empty document")
	}
	if !bytes.HasPrefix(doc.Bytes, []byte("%PDF-1.7")) {
		t.Fatal("output is not a PDF")
	}
	if doc.Pages < 1 {
		t.Fatalf("pages = %d", doc.Pages)
	}
	if doc.Filename != "quote_branca_2026-09-01.pdf" {
		t.Fatalf("filename = %q", doc.Filename)
	}
	wantNumber := quoteNumber(fixedTime)
	if doc.Number != wantNumber {
		t.Fatalf("number = %q, want %q", doc.Number, wantNumber)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	req := Request{Selection: testSelection(), Client: ClientInfo{Name: "Comune di Bibbiano"}}

	first, err := testGenerator(stubFetcher{}).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := testGenerator(stubFetcher{}).Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !bytes.Equal(first.Bytes, second.Bytes) {
		t.Fatal("same inputs produced different bytes")
	}
}

func TestGenerateDegradesOnImageFailure(t *testing.T) {
	g := testGenerator(failingFetcher{})
	doc, err := g.Generate(context.Background(), Request{Selection: testSelection()})
	if err != nil {
		t.Fatalf("generate with failing fetcher: %v", err)
	}
	if len(doc.Bytes) == 0 {
		t.Fatal("placeholder document should still render")
	}
}

func TestGenerateNothingSelected(t *testing.T) {
	g := testGenerator(stubFetcher{})
	_, err := g.Generate(context.Background(), Request{Selection: pricing.Selection{ModelID: "nope", Size: catalog.Size50, Quantity: 1}})
	if !errors.Is(err, ErrNothingSelected) {
		t.Fatalf("err = %v, want ErrNothingSelected", err)
	}
}

func TestGenerateSingleFlight(t *testing.T) {
	f := &blockingFetcher{started: make(chan struct{}, 1), release: make(chan struct{})}
	g := testGenerator(f)

	done := make(chan error, 1)
	go func() {
		_, err := g.Generate(context.Background(), Request{Selection: testSelection()})
		done <- err
	}()

	<-f.started
	if _, err := g.Generate(context.Background(), Request{Selection: testSelection()}); !errors.Is(err, ErrGenerationInFlight) {
		t.Fatalf("concurrent call: err = %v, want ErrGenerationInFlight", err)
	}
	close(f.release)
	if err := <-done; err != nil {
		t.Fatalf("first call: %v", err)
	}

	// The slot frees up once the first call finishes.
	if _, err := g.Generate(context.Background(), Request{Selection: testSelection()}); err != nil {
		t.Fatalf("after release: %v", err)
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := testGenerator(stubFetcher{})
	if _, err := g.Generate(ctx, Request{Selection: testSelection()}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestGenerateClampsQuantity(t *testing.T) {
	g := testGenerator(stubFetcher{})
	sel := testSelection()
	sel.Quantity = 500
	doc, err := g.Generate(context.Background(), Request{Selection: sel})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(doc.Bytes) == 0 {
		t.Fatal("empty document")
	}
}

func TestSelectedOptionsOrderAndAvailability(t *testing.T) {
	snap := catalog.Default()
	sel := pricing.Selection{
		ModelID:     "branca",
		Size:        catalog.Size80,
		Options:     map[string]bool{"pole_hook": true, "light": true, "v0": true},
		ColorActive: true,
	}
	opts := selectedOptions(snap, sel)

	// Color first, then catalog order; pole_hook is 50/60-only and drops out.
	want := []string{"color", "v0", "light"}
	if len(opts) != len(want) {
		t.Fatalf("got %d options, want %d", len(opts), len(want))
	}
	for i, code := range want {
		if opts[i].Code != code {
			t.Fatalf("option %d = %q, want %q", i, opts[i].Code, code)
		}
	}
}

func TestFormatEUR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{945, "945,00 €"},
		{3.5, "3,50 €"},
		{1234.5, "1.234,50 €"},
		{1234567.89, "1.234.567,89 €"},
		{0, "0,00 €"},
		{-12.3, "-12,30 €"},
	}
	for _, tc := range cases {
		if got := formatEUR(tc.in); got != tc.want {
			t.Fatalf("formatEUR(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	if got := formatDelta(catalog.Option{Price: 80}); got != "(+€80)" {
		t.Fatalf("flat delta = %q", got)
	}
	if got := formatDelta(catalog.Option{Price: 5, Percentage: true}); got != "(+5%)" {
		t.Fatalf("percentage delta = %q", got)
	}
	if got := formatDelta(catalog.Option{Price: 3.5}); got != "(+€3.5)" {
		t.Fatalf("fractional delta = %q", got)
	}
	if got := formatDelta(catalog.Option{}); got != "" {
		t.Fatalf("zero delta = %q", got)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("cesto", fixedTime); got != "quote_cesto_2026-09-01.pdf" {
		t.Fatalf("filename = %q", got)
	}
}
