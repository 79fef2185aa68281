package report

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"time"

	_ "image/gif"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	maxImageBytes  = 10 << 20
	maxImagePixels = 40_000_000
)

// ImageSource loads the raw bytes of a picture by URL.
type ImageSource interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
}

// Image is a picture in a format the workbook can embed.
type Image struct {
	Data      []byte
	Ext       string // ".png" or ".jpg"
	Width     int
	Height    int
	Converted bool
}

// Prepare decodes raw picture bytes. PNG and JPEG within maxW×maxH are
// returned untouched; any other decodable format is re-encoded as PNG, and
// larger pictures are downsampled to fit. Pictures declaring more than
// maxImagePixels are refused before decoding.
func Prepare(raw []byte, maxW, maxH int) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode image: empty %s", format)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("decode image: %s of %dx%d exceeds %d pixels", format, cfg.Width, cfg.Height, maxImagePixels)
	}

	oversized := cfg.Width > maxW || cfg.Height > maxH
	if !oversized {
		switch format {
		case "png":
			return &Image{Data: raw, Ext: ".png", Width: cfg.Width, Height: cfg.Height}, nil
		case "jpeg":
			return &Image{Data: raw, Ext: ".jpg", Width: cfg.Width, Height: cfg.Height}, nil
		}
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s image: %w", format, err)
	}
	if oversized {
		img = shrink(img, maxW, maxH)
	}

	var buf bytes.Buffer
	out := &Image{Ext: ".png", Converted: format != "png" && format != "jpeg"}
	if format == "jpeg" {
		out.Ext = ".jpg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	} else {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	b := img.Bounds()
	out.Data = buf.Bytes()
	out.Width, out.Height = b.Dx(), b.Dy()
	return out, nil
}

// Fit scales w×h into maxW×maxH keeping the aspect ratio. Height is
// matched first; the width bound wins when the picture is too wide.
func Fit(w, h int, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	ratio := float64(w) / float64(h)
	tw, th := maxH*ratio, maxH
	if tw > maxW {
		tw, th = maxW, maxW/ratio
	}
	return tw, th
}

func shrink(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	tw, th := Fit(b.Dx(), b.Dy(), float64(maxW), float64(maxH))
	w, h := int(tw+0.5), int(th+0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
