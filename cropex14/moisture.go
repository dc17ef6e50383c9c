package cropex14

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/ground"
)

// Moisture field names used in the measurement records.
const (
	FieldTriangular = "Triangular"
	FieldMeteo      = "Meteo"
	FieldBig        = "Big"
)

// moistureSheet describes one sheet of the soil moisture spreadsheets. The
// sheets share a fixed layout: the measurement date is spread over the cells
// E5, G5 and I5, the time sits in E6, and the point rows start at row 20
// with point number, latitude, longitude and up to six volumetric samples.
type moistureSheet struct {
	file    string
	sheet   string
	rows    int
	field   string
	offset  int  // added to the point number, distinguishes parallel teams
	badLon  bool // sheet carries the known longitude typo, see fixLongitude
}

// moistureSheets is the manifest of all CROPEX 2014 soil moisture sheets.
// Row counts differ per measurement day, some days use different sheet names.
var moistureSheets = []moistureSheet{
	{file: "Wallerfing_soil_moisture_2014_04_09.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_04_09.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_04_09.xlsx", sheet: "Big Field", rows: 62, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_04_10.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_04_10.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_04_10.xlsx", sheet: "Big Field", rows: 47, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_04_11.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_04_11.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_04_11.xlsx", sheet: "Big Field", rows: 42, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_05_15.xlsx", sheet: "Triangular Field", rows: 9, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_05_15.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_05_15.xlsx", sheet: "Big Field", rows: 51, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_05_22.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_05_22.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_05_22.xlsx", sheet: "Big Field", rows: 54, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_06_04.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_06_04.xlsx", sheet: "Meteorological Station", rows: 12, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_06_04.xlsx", sheet: "Big Field", rows: 46, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_06_12.xlsx", sheet: "Triangular Field", rows: 8, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_06_12.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_06_12.xlsx", sheet: "Big Field", rows: 49, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_06_18.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_06_18.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_06_18.xlsx", sheet: "Big Field", rows: 50, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_06_27.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular, badLon: true},
	{file: "Wallerfing_soil_moisture_2014_06_27.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_06_27.xlsx", sheet: "Big Bare Field", rows: 49, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_07_03.xlsx", sheet: "Triangular Field", rows: 12, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_07_03.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_07_03.xlsx", sheet: "Big Bare Field", rows: 46, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_07_18.xlsx", sheet: "Triangular Field", rows: 12, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_07_18.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_07_18.xlsx", sheet: "Big Bare Field", rows: 50, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_07_24.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_07_24.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_07_24.xlsx", sheet: "Big Field", rows: 52, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_07_30(Only two Points).xlsx", sheet: "Triangular Field", rows: 2, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_08_04.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_08_04.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_08_04.xlsx", sheet: "Big Field", rows: 38, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_08_21.xlsx", sheet: "Triangular Field (1)", rows: 6, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_08_21.xlsx", sheet: "Triangular Field (2)", rows: 5, field: FieldTriangular, offset: 6},
	{file: "Wallerfing_soil_moisture_2014_08_21.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_08_21.xlsx", sheet: "Big Field", rows: 52, field: FieldBig},
	{file: "Wallerfing_soil_moisture_2014_08_24.xlsx", sheet: "Triangular Field", rows: 11, field: FieldTriangular},
	{file: "Wallerfing_soil_moisture_2014_08_24.xlsx", sheet: "Meteorological Station", rows: 10, field: FieldMeteo},
	{file: "Wallerfing_soil_moisture_2014_08_24.xlsx", sheet: "Big Field", rows: 43, field: FieldBig},
}

// Moisture loads the soil moisture ground measurements of the campaign from
// a folder with the Wallerfing spreadsheet files.
type Moisture struct {
	dir string
}

// NewMoisture returns a loader over the spreadsheet folder.
func NewMoisture(dir string) *Moisture {
	return &Moisture{dir: dir}
}

// Points loads all soil moisture measurements of the campaign. Rows without
// coordinates or without any valid sample are skipped. The known longitude
// typo in the 2014-06-27 triangular field sheet is corrected.
func (m *Moisture) Points() ([]ground.MoisturePoint, error) {
	var out []ground.MoisturePoint
	for _, spec := range moistureSheets {
		pts, err := readMoistureSheet(filepath.Join(m.dir, spec.file), spec)
		if err != nil {
			return nil, err
		}
		if spec.badLon {
			if err := fixLongitude(spec.file, pts); err != nil {
				return nil, err
			}
		}
		out = append(out, pts...)
	}
	return out, nil
}

// GeocodedPoints loads all measurements and attaches radar coordinates
// through the lookup table of the given pass.
func (m *Moisture) GeocodedPoints(c *Campaign, passName string, band fsarcamp.Band) ([]ground.MoisturePoint, error) {
	pts, err := m.Points()
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
	ground.GeocodeMoisture(pts, lut)
	return pts, nil
}

// fixLongitude corrects point 3 of the 2014-06-27 triangular field sheet.
// The spreadsheet carries an incorrect longitude there, noted in its
// comments. The correction refuses to apply if the value does not match the
// known typo, so a revised spreadsheet is not silently corrupted.
func fixLongitude(file string, pts []ground.MoisturePoint) error {
	const badLon, goodLon = 12.85467, 12.85407
	if len(pts) < 3 || math.Abs(pts[2].Longitude-badLon) > 1e-9 {
		return fsarcamp.Formatf("%s: unexpected longitude at point 3, refusing correction", file)
	}
	pts[2].Longitude = goodLon
	return nil
}

func readMoistureSheet(path string, spec moistureSheet) ([]ground.MoisturePoint, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fsarcamp.PathError(path, err)
	}
	defer f.Close()

	when, err := sheetDateTime(f, spec.sheet)
	if err != nil {
		return nil, fsarcamp.Formatf("%s sheet %q: %v", path, spec.sheet, err)
	}
	var out []ground.MoisturePoint
	for i := 0; i < spec.rows; i++ {
		row := 20 + i
		num, err := cellInt(f, spec.sheet, 2, row)
		if err != nil {
			return nil, fsarcamp.Formatf("%s sheet %q row %d: point number: %v", path, spec.sheet, row, err)
		}
		lat := cellFloat(f, spec.sheet, 3, row)
		lon := cellFloat(f, spec.sheet, 4, row)
		if math.IsNaN(lat) || math.IsNaN(lon) {
			continue
		}
		samples := make([]float64, 6)
		for s := 0; s < 6; s++ {
			samples[s] = cellFloat(f, spec.sheet, 5+s, row) / 100
		}
		mean := ground.MeanValid(samples)
		if math.IsNaN(mean) {
			continue
		}
		pointID := "P_" + strconv.Itoa(num+spec.offset)
		out = append(out, ground.MoisturePoint{
			Point:    ground.NewPoint(spec.field, pointID, when, lat, lon),
			Moisture: mean,
			Samples:  samples,
		})
	}
	return out, nil
}

// sheetDateTime assembles the measurement date from the cells E5, G5 and I5
// (day, month name, year) and the time from E6. A missing or malformed time
// falls back to midnight, matching sheets where the time was not recorded.
func sheetDateTime(f *excelize.File, sheet string) (time.Time, error) {
	day, err := cellValue(f, sheet, 5, 5)
	if err != nil {
		return time.Time{}, err
	}
	month, _ := cellValue(f, sheet, 7, 5)
	year, _ := cellValue(f, sheet, 9, 5)
	date, err := time.Parse("2 January 2006", strings.TrimSpace(day+" "+month+" "+year))
	if err != nil {
		return time.Time{}, err
	}
	raw, _ := cellValue(f, sheet, 5, 6)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			return date.Add(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second), nil
		}
	}
	return date, nil
}

func cellValue(f *excelize.File, sheet string, col, row int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return f.GetCellValue(sheet, name)
}

func cellFloat(f *excelize.File, sheet string, col, row int) float64 {
	raw, err := cellValue(f, sheet, col, row)
	if err != nil {
		return math.NaN()
	}
	return tolerantFloat(raw)
}

func cellInt(f *excelize.File, sheet string, col, row int) (int, error) {
	raw, err := cellValue(f, sheet, col, row)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// tolerantFloat parses spreadsheet numbers the way the field teams wrote
// them: plain numbers, ranges like "9-10" (averaged), and decimal commas.
// Everything else becomes NaN.
func tolerantFloat(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN()
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	if lo, hi, ok := strings.Cut(raw, "-"); ok && lo != "" {
		v1, err1 := strconv.ParseFloat(lo, 64)
		v2, err2 := strconv.ParseFloat(hi, 64)
		if err1 == nil && err2 == nil {
			return (v1 + v2) / 2
		}
	}
	if strings.Count(raw, ",") == 1 {
		if v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64); err == nil {
			return v
		}
	}
	return math.NaN()
}
