// Package render composites the monitored server's map art with its game
// mode abbreviation for use as a profile avatar.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"git.sr.ht/~sbinet/gg"
	"github.com/corpix/uarand"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"

	"marnewatch/engine/marne"
)

const (
	darkenedFile  = "info_image.jpg"
	compositeFile = "map_mode.jpg"

	brightnessDrop = 25
)

// RenderError reports which stage of compositing failed.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

type Renderer struct {
	HTTP   *http.Client
	OutDir string
	font   *truetype.Font
}

func NewRenderer(outDir string) *Renderer {
	font, err := truetype.Parse(gobold.TTF)
	if err != nil {
		panic(err)
	}
	return &Renderer{
		HTTP:   &http.Client{},
		OutDir: outDir,
		font:   font,
	}
}

// Render downloads the map art, darkens it, overlays the mode abbreviation
// in white, and writes the result. Both the darkened intermediate and the
// composite land in OutDir under fixed names, overwriting the previous
// cycle's files. Returns the composite path.
func (r *Renderer) Render(abbreviation, imageURL string) (string, error) {
	body, err := r.download(imageURL)
	if err != nil {
		return "", &RenderError{Stage: "download", Err: &marne.NetworkError{URL: imageURL, Err: err}}
	}

	src, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return "", &RenderError{Stage: "decode", Err: err}
	}

	bounds := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	darken(img, brightnessDrop)

	darkenedPath := filepath.Join(r.OutDir, darkenedFile)
	if err := writeJPEG(darkenedPath, img); err != nil {
		return "", &RenderError{Stage: "encode", Err: err}
	}

	geo := overlayGeometry(img.Bounds().Dx(), img.Bounds().Dy())
	face := truetype.NewFace(r.font, &truetype.Options{
		Size: geo.ScaleY,
	})

	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(face)
	dc.SetRGB(1, 1, 1)
	dc.Push()
	dc.Translate(float64(geo.X), float64(geo.Y))
	dc.Scale(geo.ScaleX/geo.ScaleY, 1)
	dc.DrawStringAnchored(abbreviation, 0, 0, 0, 1)
	dc.Pop()

	compositePath := filepath.Join(r.OutDir, compositeFile)
	if err := writeJPEG(compositePath, dc.Image()); err != nil {
		return "", &RenderError{Stage: "encode", Err: err}
	}

	return compositePath, nil
}

func (r *Renderer) download(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", uarand.GetRandom())

	resp, err := r.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// darken lowers every color channel by delta, saturating at black. Alpha is
// left alone.
func darken(img *image.RGBA, delta uint8) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		for j := i; j < i+3; j++ {
			if pix[j] > delta {
				pix[j] -= delta
			} else {
				pix[j] = 0
			}
		}
	}
}

func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, nil); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
