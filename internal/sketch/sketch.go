package sketch

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// The sketch tool keeps its layers explicit - an ordered stroke list plus
// independent text labels - so flattening is a pure function over the
// document and needs no rendering surface.

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Stroke struct {
	Points []Point `json:"points"`
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Erase  bool    `json:"erase,omitempty"`
}

type TextLabel struct {
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Font  string  `json:"font"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

type Document struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Strokes []Stroke    `json:"strokes"`
	Labels  []TextLabel `json:"texts"`
}

const (
	defaultWidth  = 800
	defaultHeight = 450
)

var (
	fontOnce   sync.Once
	regular    *opentype.Font
	fontLoaded bool
)

func regularFont() (*opentype.Font, bool) {
	fontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return
		}
		regular = f
		fontLoaded = true
	})
	return regular, fontLoaded
}

// Flatten composites strokes in order (erase strokes paint the canvas color)
// and then every text label onto a single white raster.
func (d Document) Flatten() *image.NRGBA {
	w, h := d.Width, d.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	canvas := color.NRGBA{255, 255, 255, 255}
	img := imaging.New(w, h, canvas)

	for _, s := range d.Strokes {
		col := parseHexColor(s.Color)
		if s.Erase {
			col = canvas
		}
		drawStroke(img, s, col)
	}
	for _, l := range d.Labels {
		drawLabel(img, l)
	}
	return img
}

// PNG flattens and encodes the document.
func (d Document) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, d.Flatten(), imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURL returns the flattened image as an embeddable image payload, the
// form quotation items store.
func (d Document) DataURL() (string, error) {
	data, err := d.PNG()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

func drawStroke(img *image.NRGBA, s Stroke, col color.NRGBA) {
	r := s.Width / 2
	if r < 0.5 {
		r = 0.5
	}
	if len(s.Points) == 1 {
		stamp(img, s.Points[0].X, s.Points[0].Y, r, col)
		return
	}
	for i := 1; i < len(s.Points); i++ {
		a, b := s.Points[i-1], s.Points[i]
		dist := math.Hypot(b.X-a.X, b.Y-a.Y)
		steps := int(dist*2) + 1
		for t := 0; t <= steps; t++ {
			f := float64(t) / float64(steps)
			stamp(img, a.X+(b.X-a.X)*f, a.Y+(b.Y-a.Y)*f, r, col)
		}
	}
}

// stamp paints a filled disc, the round pen tip.
func stamp(img *image.NRGBA, cx, cy, r float64, col color.NRGBA) {
	bounds := img.Bounds()
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}

// drawLabel renders one text layer. The requested family is honored only in
// size and color; a single embedded face keeps the output deterministic
// without shipping system fonts.
func drawLabel(img *image.NRGBA, l TextLabel) {
	if l.Text == "" {
		return
	}
	ft, ok := regularFont()
	if !ok {
		return
	}
	size := l.Size
	if size <= 0 {
		size = 16
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return
	}
	defer face.Close()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(parseHexColor(l.Color)),
		Face: face,
		// labels anchor at their top-left corner
		Dot: fixed.Point26_6{X: floatToFixed(l.X), Y: floatToFixed(l.Y) + face.Metrics().Ascent},
	}
	drawer.DrawString(l.Text)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// parseHexColor understands #rgb and #rrggbb; anything else falls back to
// black, the pen default.
func parseHexColor(s string) color.NRGBA {
	black := color.NRGBA{0, 0, 0, 255}
	if len(s) == 0 || s[0] != '#' {
		return black
	}
	hex := s[1:]
	parse := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}
	switch len(hex) {
	case 3:
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := parse(hex[i])
			if !ok {
				return black
			}
			rgb[i] = v*16 + v
		}
		return color.NRGBA{rgb[0], rgb[1], rgb[2], 255}
	case 6:
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := parse(hex[2*i])
			lo, ok2 := parse(hex[2*i+1])
			if !ok1 || !ok2 {
				return black
			}
			rgb[i] = hi*16 + lo
		}
		return color.NRGBA{rgb[0], rgb[1], rgb[2], 255}
	}
	return black
}
