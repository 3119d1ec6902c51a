package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ayoub94x/Cestini-esa-configurator/observability"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	r, err := Decode(pngBytes(t, 40, 30))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Width != 40 || r.Height != 30 {
		t.Fatalf("got %dx%d, want 40x30", r.Width, r.Height)
	}
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestFitDownscalesPreservingAspect(t *testing.T) {
	r, err := Decode(pngBytes(t, 400, 200))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	fitted := Fit(r, 100, 100)
	if fitted.Width != 100 || fitted.Height != 50 {
		t.Fatalf("got %dx%d, want 100x50", fitted.Width, fitted.Height)
	}
}

func TestFitPassesThroughSmallImages(t *testing.T) {
	r, err := Decode(pngBytes(t, 20, 20))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := Fit(r, 100, 100); got != r {
		t.Fatal("small raster should pass through unchanged")
	}
	if got := Fit(nil, 100, 100); got != nil {
		t.Fatal("nil raster should stay nil")
	}
}

func TestHTTPFetcher(t *testing.T) {
	data := pngBytes(t, 16, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/missing.png" {
			http.NotFound(w, req)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	f := NewHTTPFetcher()
	r, err := f.Fetch(context.Background(), srv.URL+"/logo.png")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if r.Width != 16 || r.Height != 16 {
		t.Fatalf("got %dx%d, want 16x16", r.Width, r.Height)
	}
	if _, err := f.Fetch(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Fatal("expected error for 404")
	}
}

type mapFetcher map[string][]byte

func (m mapFetcher) Fetch(_ context.Context, ref string) (*Raster, error) {
	data, ok := m[ref]
	if !ok {
		return nil, errors.New("no such asset")
	}
	return Decode(data)
}

func TestFetchPairDegradesPerSlot(t *testing.T) {
	f := mapFetcher{"logo": pngBytes(t, 10, 10)}
	pair, err := FetchPair(context.Background(), f, "logo", "photo", observability.NopLogger{})
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	if pair.Logo == nil {
		t.Fatal("logo should have resolved")
	}
	if pair.Photo != nil {
		t.Fatal("failed photo fetch should leave slot nil")
	}
}

func TestFetchPairBothResolve(t *testing.T) {
	f := mapFetcher{"logo": pngBytes(t, 10, 10), "photo": pngBytes(t, 20, 20)}
	pair, err := FetchPair(context.Background(), f, "logo", "photo", nil)
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	if pair.Logo == nil || pair.Photo == nil {
		t.Fatal("both slots should resolve")
	}
	if pair.Photo.Width != 20 {
		t.Fatalf("photo width = %d, want 20", pair.Photo.Width)
	}
}

func TestFetchPairCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := mapFetcher{"logo": pngBytes(t, 10, 10), "photo": pngBytes(t, 10, 10)}
	if _, err := FetchPair(ctx, f, "logo", "photo", nil); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
