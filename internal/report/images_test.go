package report

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 80, B: 40, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(w, h)))
	return buf.Bytes()
}

func TestPreparePassesPNGThrough(t *testing.T) {
	raw := encodePNG(t, 40, 20)

	img, err := Prepare(raw, 300, 100)
	require.NoError(t, err)
	assert.Equal(t, ".png", img.Ext)
	assert.Equal(t, raw, img.Data)
	assert.Equal(t, 40, img.Width)
	assert.Equal(t, 20, img.Height)
	assert.False(t, img.Converted)
}

func TestPrepareConvertsBMPToPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, solid(30, 10)))

	img, err := Prepare(buf.Bytes(), 300, 100)
	require.NoError(t, err)
	assert.Equal(t, ".png", img.Ext)
	assert.True(t, img.Converted)

	decoded, err := png.Decode(bytes.NewReader(img.Data))
	require.NoError(t, err)
	assert.Equal(t, 30, decoded.Bounds().Dx())
}

func TestPrepareShrinksLargePictures(t *testing.T) {
	img, err := Prepare(encodePNG(t, 1200, 400), 300, 100)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Width)
	assert.Equal(t, 100, img.Height)
}

func TestPrepareRejectsGarbage(t *testing.T) {
	_, err := Prepare([]byte("<html>not found</html>"), 300, 100)
	assert.Error(t, err)
}

// withDimensions rewrites the IHDR chunk of a PNG so it declares w×h
// without carrying the pixel data.
func withDimensions(t *testing.T, raw []byte, w, h uint32) []byte {
	t.Helper()
	out := append([]byte(nil), raw...)
	require.Equal(t, "IHDR", string(out[12:16]))
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestPrepareRefusesHugeDeclaredDimensions(t *testing.T) {
	raw := withDimensions(t, encodePNG(t, 1, 1), 20000, 20000)

	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 20000, cfg.Width)

	img, err := Prepare(raw, 300, 100)
	assert.Error(t, err)
	assert.Nil(t, img)
}

func TestFit(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		tw, th float64
	}{
		{"square is bound by height", 100, 100, 50, 50},
		{"wide is bound by width", 600, 100, 150, 25},
		{"tall", 100, 400, 12.5, 50},
		{"unknown size", 0, 0, 150, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw, th := Fit(tt.w, tt.h, 150, 50)
			assert.InDelta(t, tt.tw, tw, 1e-9)
			assert.InDelta(t, tt.th, th, 1e-9)
		})
	}
}
