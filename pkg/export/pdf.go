package export

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"

	"github.com/go-pdf/fpdf"
)

// PageLayout returns the fpdf orientation and page size that give a page
// of exactly width x height points. Landscape pages are declared with the
// short side first, as fpdf swaps the dimensions for them.
func PageLayout(width, height float64) (string, fpdf.SizeType) {
	if width > height {
		return "L", fpdf.SizeType{Wd: height, Ht: width}
	}
	return "P", fpdf.SizeType{Wd: width, Ht: height}
}

// writePDF places a PNG on a single page the size of its pixel dimensions,
// one point per pixel.
func writePDF(w io.Writer, png []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(png))
	if err != nil {
		return fmt.Errorf("decode raster: %w", err)
	}
	width, height := float64(cfg.Width), float64(cfg.Height)
	orientation, size := PageLayout(width, height)

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("mindmap", opts, bytes.NewReader(png))
	pdf.ImageOptions("mindmap", 0, 0, width, height, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
