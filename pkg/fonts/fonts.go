// Package fonts provides the parsed fonts used for raster export.
//
// The fonts are the Go fonts from golang.org/x/image, compiled into the
// binary, so export works without any system fonts installed.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Family selects one of the embedded fonts.
type Family string

const (
	Regular Family = "regular"
	Bold    Family = "bold"
	Mono    Family = "mono"
)

var sources = map[Family][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Mono:    gomono.TTF,
}

// Parsed fonts (computed once on first access).
var (
	parsed   = map[Family]*truetype.Font{}
	parsedMu sync.Mutex
)

// Font returns the parsed font for f.
func Font(f Family) (*truetype.Font, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()

	if ft, ok := parsed[f]; ok {
		return ft, nil
	}
	data, ok := sources[f]
	if !ok {
		return nil, fmt.Errorf("unknown font family %q", f)
	}
	ft, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", f, err)
	}
	parsed[f] = ft
	return ft, nil
}

// Face returns a font face of f at size points (72 DPI, so points equal
// pixels).
func Face(f Family, size float64) (font.Face, error) {
	ft, err := Font(f)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(ft, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// FontFamily is the CSS font-family used by SVG export.
const FontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`
