package views

import (
	"image/color"
	"strconv"
)

// LogoViewBox is the coordinate space the logo rects are defined in.
const (
	LogoViewBoxWidth  = 65
	LogoViewBoxHeight = 42
)

// LogoFill is the bench colour used for every logo rect.
const LogoFill = "#7E6000"

// LogoColor is LogoFill as an RGBA value for raster output.
var LogoColor = color.RGBA{R: 0x7E, G: 0x60, B: 0x00, A: 0xFF}

// Rect is one bar of the bench mark, in viewBox units.
type Rect struct {
	X, Y, Width, Height float64
}

// LogoRects returns the bench geometry: the seat, two legs, the backrest
// rail and the top rail. LogoSVG and the raster icons both draw from it.
func LogoRects() []Rect {
	return []Rect{
		{Y: 27.5171, Width: 65, Height: 7.96552},
		{X: 11.6853, Y: 35.4829, Width: 4.38202, Height: 6.51724},
		{X: 48.9326, Y: 35.4829, Width: 4.38202, Height: 6.51724},
		{X: 9.49438, Y: 13.7588, Width: 46.0112, Height: 7.24138},
		{X: 9.49438, Width: 46.0112, Height: 7.24138},
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
