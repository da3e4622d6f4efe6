package benchdocs

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"

	"github.com/bench-ai/benchdocs/views"
)

// IconKind names a raster asset referenced from the head tags.
type IconKind string

const (
	IconFavicon IconKind = "favicon"
	IconPreview IconKind = "preview"
)

// icon dimensions and the share of the canvas width the logo occupies
var iconSpecs = map[IconKind]struct {
	width, height int
	logoShare     float64
	background    color.Color
}{
	IconFavicon: {width: 32, height: 32, logoShare: 1, background: color.Transparent},
	IconPreview: {width: 1200, height: 630, logoShare: 0.5, background: color.White},
}

// supersampling factor for the master raster before it is scaled down
const rasterScale = 16

// RenderIcon rasterizes the logo into a PNG for the given asset.
func RenderIcon(kind IconKind) ([]byte, error) {
	spec, ok := iconSpecs[kind]
	if !ok {
		return nil, fmt.Errorf("benchdocs: unknown icon %q", kind)
	}

	dst := image.NewRGBA(image.Rect(0, 0, spec.width, spec.height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(spec.background), image.Point{}, draw.Src)

	master := rasterizeLogo(rasterScale)
	logoW := int(math.Round(float64(spec.width) * spec.logoShare))
	logoH := logoW * views.LogoViewBoxHeight / views.LogoViewBoxWidth
	offX := (spec.width - logoW) / 2
	offY := (spec.height - logoH) / 2
	draw.CatmullRom.Scale(dst, image.Rect(offX, offY, offX+logoW, offY+logoH), master, master.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("benchdocs: encode %s png: %w", kind, err)
	}
	return buf.Bytes(), nil
}

// rasterizeLogo draws the logo rects at scale pixels per viewBox unit.
func rasterizeLogo(scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, views.LogoViewBoxWidth*scale, views.LogoViewBoxHeight*scale))
	fill := image.NewUniform(views.LogoColor)
	s := float64(scale)
	for _, r := range views.LogoRects() {
		rect := image.Rect(
			int(math.Round(r.X*s)),
			int(math.Round(r.Y*s)),
			int(math.Round((r.X+r.Width)*s)),
			int(math.Round((r.Y+r.Height)*s)),
		)
		draw.Draw(img, rect, fill, image.Point{}, draw.Src)
	}
	return img
}

// FaviconSVG returns the standalone svg document served as /favicon.svg.
func FaviconSVG(ctx context.Context) ([]byte, error) {
	s, err := views.RenderString(ctx, views.LogoSVG(32, 32))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}
