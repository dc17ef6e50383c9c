package cropex25

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/ground"
)

// Measurement period identifiers. Days with several flights have separate
// morning, noon and evening periods.
const (
	Apr16     = "APR-16"
	Apr22     = "APR-22"
	Apr25     = "APR-25"
	Apr28Morn = "APR-28-MORN"
	Apr28Noon = "APR-28-NOON"
	Apr28Even = "APR-28-EVEN"
	May11     = "MAY-11"
	May16     = "MAY-16"
	May21     = "MAY-21"
	May27     = "MAY-27"
	Jun03Morn = "JUN-03-MORN"
	Jun03Noon = "JUN-03-NOON"
	Jun03Even = "JUN-03-EVEN"
	Jun06     = "JUN-06"
	Jun12     = "JUN-12"
	Jun18     = "JUN-18"
	Jun24     = "JUN-24"
	Jun30     = "JUN-30"
	Jul03     = "JUL-03"
	Jul09     = "JUL-09"
	Jul15Morn = "JUL-15-MORN"
	Jul15Noon = "JUL-15-NOON"
	Jul15Even = "JUL-15-EVEN"
	Jul21     = "JUL-21"
)

// periodFiles maps a period to the measurement date and the file suffix
// distinguishing several flights on the same day.
var periodFiles = map[string]struct {
	date   string
	suffix string
}{
	Apr16:     {"2025-04-16", ""},
	Apr22:     {"2025-04-22", ""},
	Apr25:     {"2025-04-25", ""},
	Apr28Morn: {"2025-04-28", "_1"},
	Apr28Noon: {"2025-04-28", "_2"},
	Apr28Even: {"2025-04-28", "_3"},
	May11:     {"2025-05-11", ""},
	May16:     {"2025-05-16", ""},
	May21:     {"2025-05-21", ""},
	May27:     {"2025-05-27", ""},
	Jun03Morn: {"2025-06-03", "_1"},
	Jun03Noon: {"2025-06-03", "_2"},
	Jun03Even: {"2025-06-03", "_3"},
	Jun06:     {"2025-06-06", ""},
	Jun12:     {"2025-06-12", ""},
	Jun18:     {"2025-06-18", ""},
	Jun24:     {"2025-06-24", ""},
	Jun30:     {"2025-06-30", ""},
	Jul03:     {"2025-07-03", ""},
	Jul09:     {"2025-07-09", ""},
	Jul15Morn: {"2025-07-15", "_1"},
	Jul15Noon: {"2025-07-15", "_2"},
	Jul15Even: {"2025-07-15", "_3"},
	Jul21:     {"2025-07-21", ""},
}

// regionFields maps region identifiers to the field ids used in the ground
// measurement file names.
var regionFields = map[string]string{
	EitelsriedMaize:  "Eitelsried_Maize",
	EitelsriedPotato: "Eitelsried_Potato",
	EitelsriedWheat:  "Eitelsried_Wheat",
}

// Moisture loads the preliminary soil moisture ground measurements of the
// campaign. Each region and period pair sits in its own CSV file below the
// data folder, named {date}_{field}/{date}_{field}_SoilMoisture{n}.csv.
type Moisture struct {
	dir string
}

// NewMoisture returns a loader over the preliminary data folder.
func NewMoisture(dir string) *Moisture {
	return &Moisture{dir: dir}
}

// Points loads the measurements of one region and period. Each row carries
// up to six volumetric samples, the record moisture is their mean.
func (m *Moisture) Points(region, period string) ([]ground.MoisturePoint, error) {
	field, ok := regionFields[region]
	if !ok {
		return nil, fsarcamp.NotFoundf("region %q", region)
	}
	pf, ok := periodFiles[period]
	if !ok {
		return nil, fsarcamp.NotFoundf("period %q", period)
	}
	name := fmt.Sprintf("%s_%s_SoilMoisture%s.csv", pf.date, field, pf.suffix)
	path := filepath.Join(m.dir, fmt.Sprintf("%s_%s", pf.date, field), name)
	return readMoistureCSV(path, field)
}

func readMoistureCSV(path, field string) ([]ground.MoisturePoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fsarcamp.PathError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fsarcamp.Formatf("%s: read header: %v", path, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"date_time", "point_id", "latitude", "longitude", "soil_moisture_1"} {
		if _, ok := col[required]; !ok {
			return nil, fsarcamp.Formatf("%s: missing column %q", path, required)
		}
	}

	var out []ground.MoisturePoint
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fsarcamp.Formatf("%s: %v", path, err)
		}
		when, err := time.Parse("2006-01-02 15:04:05", rec[col["date_time"]])
		if err != nil {
			return nil, fsarcamp.Formatf("%s: date_time %q: %v", path, rec[col["date_time"]], err)
		}
		lat, err1 := strconv.ParseFloat(rec[col["latitude"]], 64)
		lon, err2 := strconv.ParseFloat(rec[col["longitude"]], 64)
		if err1 != nil || err2 != nil {
			return nil, fsarcamp.Formatf("%s: malformed coordinates for point %q", path, rec[col["point_id"]])
		}
		samples := make([]float64, 0, 6)
		for s := 1; s <= 6; s++ {
			idx, ok := col["soil_moisture_"+strconv.Itoa(s)]
			if !ok {
				break
			}
			v, err := strconv.ParseFloat(rec[idx], 64)
			if err != nil {
				continue
			}
			samples = append(samples, v)
		}
		out = append(out, ground.MoisturePoint{
			Point:    ground.NewPoint(field, rec[col["point_id"]], when, lat, lon),
			Moisture: ground.MeanValid(samples),
			Samples:  samples,
		})
	}
	return out, nil
}
