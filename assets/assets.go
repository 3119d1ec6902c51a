// Package assets resolves the image references a quote needs (brand logo,
// product photo) into decoded rasters. The renderer never touches the
// network itself: it hands references to a Fetcher and receives pixels and
// natural dimensions, or a failure it degrades into a placeholder.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif" // register decoders for the formats the catalog serves
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/Ayoub94x/Cestini-esa-configurator/observability"
)

// Raster is a decoded image plus its natural pixel dimensions.
type Raster struct {
	Image  image.Image
	Width  int
	Height int
}

// Fetcher resolves an image reference into a decoded raster or fails.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (*Raster, error)
}

// maxImageBytes bounds how much image data a single fetch will buffer.
const maxImageBytes = 16 << 20

// HTTPFetcher resolves http(s) URLs with a shared client.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns a fetcher with a sane default timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: 30 * time.Second}}
}

var _ Fetcher = (*HTTPFetcher)(nil)

func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) (*Raster, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", ref, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: status %s", ref, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", ref, err)
	}
	return Decode(data)
}

// FileFetcher resolves references as paths on the local filesystem.
type FileFetcher struct{}

var _ Fetcher = FileFetcher{}

func (FileFetcher) Fetch(_ context.Context, ref string) (*Raster, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read image file: %w", err)
	}
	return Decode(data)
}

// Decode turns raw image bytes into a Raster.
func Decode(data []byte) (*Raster, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	return &Raster{Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}

// Fit downscales the raster to fit within maxW×maxH, preserving aspect
// ratio. Rasters already inside the box pass through unchanged.
func Fit(r *Raster, maxW, maxH int) *Raster {
	if r == nil {
		return nil
	}
	if r.Width <= maxW && r.Height <= maxH {
		return r
	}
	fitted := imaging.Fit(r.Image, maxW, maxH, imaging.Lanczos)
	b := fitted.Bounds()
	return &Raster{Image: fitted, Width: b.Dx(), Height: b.Dy()}
}

// Pair holds the two images a quote embeds. Either field is nil when its
// fetch failed; the renderer substitutes a placeholder.
type Pair struct {
	Logo  *Raster
	Photo *Raster
}

// FetchPair resolves the logo and product photo concurrently. The fetches
// are independent, so one failing never blocks or fails the other: a
// failure is logged and leaves the slot nil. Only context cancellation
// aborts the pair as a whole.
func FetchPair(ctx context.Context, f Fetcher, logoRef, photoRef string, log observability.Logger) (Pair, error) {
	if log == nil {
		log = observability.NopLogger{}
	}
	var pair Pair
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := f.Fetch(gctx, logoRef)
		if err != nil {
			log.Warn("logo unavailable", observability.String("ref", logoRef), observability.Error("err", err))
			return nil
		}
		pair.Logo = r
		return nil
	})
	g.Go(func() error {
		r, err := f.Fetch(gctx, photoRef)
		if err != nil {
			log.Warn("product photo unavailable", observability.String("ref", photoRef), observability.Error("err", err))
			return nil
		}
		pair.Photo = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return Pair{}, err
	}
	if err := ctx.Err(); err != nil {
		return Pair{}, err
	}
	return pair, nil
}
