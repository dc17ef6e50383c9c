package cropex14

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/ground"
)

// biomassFiles lists the vegetation measurement spreadsheets of the
// campaign, one file per measurement day.
var biomassFiles = []string{
	"Veg_Wallerfing_2014_05_15.xlsx",
	"Veg_Wallerfing_2014_05_22.xlsx",
	"Veg_Wallerfing_2014_06_04.xlsx",
	"Veg_Wallerfing_2014_06_12.xlsx",
	"Veg_Wallerfing_2014_06_18.xlsx",
	"Veg_Wallerfing_2014_07_03.xlsx",
	"Veg_Wallerfing_2014_07_18.xlsx",
	"Veg_Wallerfing_2014_07_24.xlsx",
	"Veg_Wallerfing_2014_07_30.xlsx",
	"Veg_Wallerfing_2014_08_21.xlsx",
}

// Row positions in the vegetation spreadsheets. The layout is column per
// point: column A holds labels, each following column one sampling point.
const (
	bioRowPointID   = 2
	bioRowTime      = 4
	bioRowLatitude  = 9
	bioRowLongitude = 10
	bioRowHeight    = 26 // vegetation height, cm
	bioRowBBCH      = 32
	bioRowWet       = 38 // sample 1 fresh weight, g
	bioRowDry       = 39 // sample 1 dry weight, g
	bioRowVWC       = 41 // sample 1 water content, percent, bag removed
	bioRowMoisture  = 55 // first of six soil moisture samples, vol percent
)

// Biomass loads the vegetation ground measurements of the campaign from a
// folder with the Wallerfing vegetation spreadsheets.
type Biomass struct {
	dir string
}

// NewBiomass returns a loader over the spreadsheet folder.
func NewBiomass(dir string) *Biomass {
	return &Biomass{dir: dir}
}

// Points loads all vegetation measurements of the campaign. Optional cells
// parse tolerantly into NaN, columns without a point label are skipped.
func (b *Biomass) Points() ([]ground.BiomassPoint, error) {
	var out []ground.BiomassPoint
	for _, file := range biomassFiles {
		pts, err := readBiomassFile(filepath.Join(b.dir, file))
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
	}
	return out, nil
}

// GeocodedPoints loads all measurements and attaches radar coordinates
// through the lookup table of the given pass.
func (b *Biomass) GeocodedPoints(c *Campaign, passName string, band fsarcamp.Band) ([]ground.BiomassPoint, error) {
	pts, err := b.Points()
	if err != nil {
		return nil, err
	}
	pass, err := c.Pass(passName, band)
	if err != nil {
		return nil, err
	}
	lut, err := pass.GTCLUT()
	if err != nil {
		return nil, err
	}
	ground.GeocodeBiomass(pts, lut)
	return pts, nil
}

func readBiomassFile(path string) ([]ground.BiomassPoint, error) {
	const sheet = "Tabelle1"
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fsarcamp.PathError(path, err)
	}
	defer f.Close()

	header, err := cellValue(f, sheet, 1, 1)
	if err != nil {
		return nil, fsarcamp.Formatf("%s: %v", path, err)
	}
	date, err := time.Parse("02.01.2006", strings.TrimSpace(strings.TrimPrefix(header, "Date:")))
	if err != nil {
		return nil, fsarcamp.Formatf("%s: sheet date: %v", path, err)
	}
	cols, err := f.GetCols(sheet)
	if err != nil {
		return nil, fsarcamp.Formatf("%s: %v", path, err)
	}
	var out []ground.BiomassPoint
	for col := 2; col <= len(cols); col++ {
		pointID, _ := cellValue(f, sheet, col, bioRowPointID)
		pointID = strings.TrimSpace(pointID)
		if pointID == "" {
			continue // comment columns widen some sheets
		}
		when := date
		if raw, _ := cellValue(f, sheet, col, bioRowTime); raw != "" {
			for _, layout := range []string{"15:04:05", "15:04"} {
				if t, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
					when = date.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
					break
				}
			}
		}
		lat := cellFloat(f, sheet, col, bioRowLatitude)
		lon := cellFloat(f, sheet, col, bioRowLongitude)
		samples := make([]float64, 6)
		for s := 0; s < 6; s++ {
			samples[s] = cellFloat(f, sheet, col, bioRowMoisture+s) / 100
		}
		out = append(out, ground.BiomassPoint{
			Point:        ground.NewPoint("", pointID, when, lat, lon),
			Height:       cellFloat(f, sheet, col, bioRowHeight) / 100,
			BBCH:         cellFloat(f, sheet, col, bioRowBBCH),
			WetWeight:    cellFloat(f, sheet, col, bioRowWet),
			DryWeight:    cellFloat(f, sheet, col, bioRowDry),
			VWC:          cellFloat(f, sheet, col, bioRowVWC) / 100,
			SoilMoisture: ground.MeanValid(samples),
		})
	}
	return out, nil
}
