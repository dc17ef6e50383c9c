// Command fsar-quicklook renders a PNG quicklook of a RAT raster: the
// amplitude of an SLC or the values of a float raster such as an incidence
// angle map.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/polinsar/fsarcamp/internal/version"
	"github.com/polinsar/fsarcamp/raster"
	"github.com/polinsar/fsarcamp/rat"
)

func main() {
	input := flag.String("i", "", "input RAT file")
	output := flag.String("o", "quicklook.png", "output PNG path")
	maxDim := flag.Int("max-dim", 1024, "presum the image down to at most this many pixels per axis")
	showVersion := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *input == "" {
		log.Fatal("usage: fsar-quicklook -i <file.rat> [-o <file.png>] [-max-dim <n>]")
	}

	img, err := loadAmplitude(*input)
	if err != nil {
		log.Fatalf("load %s: %v", *input, err)
	}
	img = shrink(img, *maxDim)

	p := plot.New()
	p.Title.Text = *input
	p.X.Label.Text = "range"
	p.Y.Label.Text = "azimuth"

	h := plotter.NewHeatMap(floatGrid{img}, moreland.BlackBody().Palette(255))
	h.Min, h.Max = displayRange(img)
	p.Add(h)

	if err := p.Save(8*vg.Inch, 8*vg.Inch*vg.Length(img.Rows)/vg.Length(img.Cols), *output); err != nil {
		log.Fatalf("save quicklook: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *output, img.Rows, img.Cols)
}

// loadAmplitude reads the raster, taking the amplitude when the file holds
// complex samples.
func loadAmplitude(path string) (*raster.Float, error) {
	hdr, err := rat.ReadHeader(path)
	if err != nil {
		return nil, err
	}
	if hdr.Type.IsComplex() {
		slc, err := rat.ReadComplex(path)
		if err != nil {
			return nil, err
		}
		return raster.Amplitude(slc), nil
	}
	return rat.ReadFloat(path)
}

func shrink(img *raster.Float, maxDim int) *raster.Float {
	winRows := (img.Rows + maxDim - 1) / maxDim
	winCols := (img.Cols + maxDim - 1) / maxDim
	if winRows <= 1 && winCols <= 1 {
		return img
	}
	return raster.Presum(img, winRows, winCols)
}

// displayRange clips the color scale to the 2nd and 98th percentile of the
// finite values, which keeps bright scatterers from washing out the image.
func displayRange(img *raster.Float) (lo, hi float64) {
	vals := make([]float64, 0, len(img.Data))
	for _, v := range img.Data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return 0, 1
	}
	sort.Float64s(vals)
	lo = stat.Quantile(0.02, stat.Empirical, vals, nil)
	hi = stat.Quantile(0.98, stat.Empirical, vals, nil)
	if lo >= hi {
		hi = lo + 1
	}
	return lo, hi
}

// floatGrid adapts a raster to the gonum/plot grid interface. Row 0 is
// drawn at the bottom, matching the azimuth axis direction.
type floatGrid struct {
	f *raster.Float
}

func (g floatGrid) Dims() (c, r int)   { return g.f.Cols, g.f.Rows }
func (g floatGrid) Z(c, r int) float64 { return g.f.At(r, c) }
func (g floatGrid) X(c int) float64    { return float64(c) }
func (g floatGrid) Y(r int) float64    { return float64(r) }
