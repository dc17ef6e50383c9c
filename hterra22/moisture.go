package hterra22

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/ground"
)

// LoadMoisture reads the consolidated soil moisture CSV of the campaign.
// The file carries one row per probe reading with the columns date_time,
// point_id, field, latitude, longitude, soil_moisture (0 to 1), easting and
// northing. Column order is taken from the header.
func LoadMoisture(path string) ([]ground.MoisturePoint, error) {
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
	for _, required := range []string{"date_time", "point_id", "field", "latitude", "longitude", "soil_moisture"} {
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
		when, err := parseCSVTime(rec[col["date_time"]])
		if err != nil {
			return nil, fsarcamp.Formatf("%s: date_time %q: %v", path, rec[col["date_time"]], err)
		}
		lat, err1 := strconv.ParseFloat(rec[col["latitude"]], 64)
		lon, err2 := strconv.ParseFloat(rec[col["longitude"]], 64)
		sm, err3 := strconv.ParseFloat(rec[col["soil_moisture"]], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fsarcamp.Formatf("%s: malformed numeric value in row for point %q", path, rec[col["point_id"]])
		}
		out = append(out, ground.MoisturePoint{
			Point:    ground.NewPoint(rec[col["field"]], rec[col["point_id"]], when, lat, lon),
			Moisture: sm,
		})
	}
	return out, nil
}

func parseCSVTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02T15:04:05"} {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// stripe selects the readings of one measurement walk: a field strip and
// the local time window in which it was sampled. An optional set of point
// number ranges narrows the selection where some probes misbehaved.
type stripe struct {
	field    string
	from, to string
	ranges   [][2]int
}

func (s stripe) matches(p ground.MoisturePoint) bool {
	from, _ := time.Parse("2006-01-02 15:04:05", s.from)
	to, _ := time.Parse("2006-01-02 15:04:05", s.to)
	if p.Field != s.field || p.Date.Before(from) || p.Date.After(to) {
		return false
	}
	if s.ranges == nil {
		return true
	}
	if len(p.PointID) < 2 {
		return false
	}
	num, err := strconv.Atoi(p.PointID[1:]) // ids are P1..P77
	if err != nil {
		return false
	}
	for _, r := range s.ranges {
		if num >= r[0] && num <= r[1] {
			return true
		}
	}
	return false
}

// group is one interpolation group: points that are spatially close enough
// that soil moisture may be interpolated between them. Groups of the same
// region must not be interpolated together.
type group []stripe

// interpolationGroups maps region and time period to the measurement walks
// of that field and flight. The time windows were established manually from
// the field protocols.
var interpolationGroups = map[string]map[string][]group{
	CreaBSQu: {
		Apr28AM: {{{field: "CREA_BARESOIL", from: "2022-04-28 08:45:00", to: "2022-04-28 11:09:00"}}},
		// Points P4-P17 are missing in the afternoon, interpolating all
		// points at once produces artifacts, so smaller groups are used.
		Apr28PM: {
			{{field: "CREA_BARESOIL", from: "2022-04-28 14:13:00", to: "2022-04-28 16:39:00", ranges: [][2]int{{23, 77}}}},
			{{field: "CREA_BARESOIL", from: "2022-04-28 14:13:00", to: "2022-04-28 16:39:00", ranges: [][2]int{{18, 28}}}},
			{{field: "CREA_BARESOIL", from: "2022-04-28 14:13:00", to: "2022-04-28 16:39:00", ranges: [][2]int{{1, 3}, {19, 22}}}},
		},
		Apr29AM: {{{field: "CREA_BARESOIL", from: "2022-04-29 08:43:00", to: "2022-04-29 10:28:00"}}},
		Apr29PM: {{{field: "CREA_BARESOIL", from: "2022-04-29 13:30:00", to: "2022-04-29 15:01:00"}}},
		Jun15AM: {{{field: "CREA_QUINOA", from: "2022-06-15 08:39:00", to: "2022-06-15 10:33:00"}}},
		Jun15PM: {{{field: "CREA_QUINOA", from: "2022-06-15 14:02:00", to: "2022-06-15 15:16:00"}}},
		Jun16AM: {{{field: "CREA_QUINOA", from: "2022-06-16 08:39:00", to: "2022-06-16 09:49:00"}}},
		Jun16PM: {{{field: "CREA_QUINOA", from: "2022-06-16 13:48:00", to: "2022-06-16 14:42:00"}}},
	},
	CreaDW: {
		Apr28AM: {
			{
				{field: "CREA_DURUMWHEAT26", from: "2022-04-28 10:42:00", to: "2022-04-28 11:34:00"},
				{field: "CREA_DURUMWHEAT27", from: "2022-04-28 09:42:00", to: "2022-04-28 10:40:00"},
			},
			{{field: "CREA_DURUMWHEAT29", from: "2022-04-28 08:56:00", to: "2022-04-28 09:41:00"}},
		},
		Apr28PM: {
			{
				{field: "CREA_DURUMWHEAT26", from: "2022-04-28 16:11:00", to: "2022-04-28 16:50:00"},
				{field: "CREA_DURUMWHEAT27", from: "2022-04-28 15:27:00", to: "2022-04-28 16:07:00"},
			},
			{{field: "CREA_DURUMWHEAT29", from: "2022-04-28 14:35:00", to: "2022-04-28 15:26:00"}},
		},
		Apr29AM: {
			{
				{field: "CREA_DURUMWHEAT26", from: "2022-04-29 10:32:00", to: "2022-04-29 11:21:00"},
				{field: "CREA_DURUMWHEAT27", from: "2022-04-29 09:40:00", to: "2022-04-29 10:31:00"},
				{field: "CREA_DURUMWHEAT28", from: "2022-04-29 08:50:00", to: "2022-04-29 09:38:00"},
			},
		},
		Apr29PM: {
			{
				{field: "CREA_DURUMWHEAT26", from: "2022-04-29 15:07:00", to: "2022-04-29 15:55:00"},
				{field: "CREA_DURUMWHEAT27", from: "2022-04-29 14:14:00", to: "2022-04-29 15:06:00"},
				{field: "CREA_DURUMWHEAT28", from: "2022-04-29 13:35:00", to: "2022-04-29 14:09:00"},
			},
		},
	},
	CreaSF: {
		Jun15AM: {{{field: "CREA_SUNFLOWER", from: "2022-06-15 08:43:00", to: "2022-06-15 09:11:00"}}},
		Jun15PM: {{{field: "CREA_SUNFLOWER", from: "2022-06-15 14:14:00", to: "2022-06-15 14:50:00"}}},
		Jun16AM: {{{field: "CREA_SUNFLOWER", from: "2022-06-16 08:45:00", to: "2022-06-16 09:14:00"}}},
		Jun16PM: {{{field: "CREA_SUNFLOWER", from: "2022-06-16 13:56:00", to: "2022-06-16 14:13:00"}}},
	},
	CreaMA: {
		Jun15AM: {
			{
				{field: "CREA_MAIS1", from: "2022-06-15 09:46:00", to: "2022-06-15 10:29:00"},
				{field: "CREA_MAIS2", from: "2022-06-15 09:12:00", to: "2022-06-15 09:45:00"},
			},
		},
		Jun15PM: {
			{
				{field: "CREA_MAIS1", from: "2022-06-15 15:28:00", to: "2022-06-15 16:17:00"},
				{field: "CREA_MAIS2", from: "2022-06-15 14:51:00", to: "2022-06-15 15:26:00"},
			},
		},
		Jun16AM: {
			{
				{field: "CREA_MAIS1", from: "2022-06-16 09:56:00", to: "2022-06-16 10:27:00"},
				{field: "CREA_MAIS2", from: "2022-06-16 09:18:00", to: "2022-06-16 09:55:00"},
			},
		},
		Jun16PM: {
			{
				{field: "CREA_MAIS1", from: "2022-06-16 14:47:00", to: "2022-06-16 14:54:00"},
				{field: "CREA_MAIS2", from: "2022-06-16 14:14:00", to: "2022-06-16 14:24:00"},
			},
		},
	},
	CaioneDW: {
		Apr28AM: {
			{{field: "CAIONE1_DURUMWHEAT29", from: "2022-04-28 09:10:00", to: "2022-04-28 10:28:00"}},
			{
				{field: "CAIONE1_DURUMWHEAT24", from: "2022-04-28 13:25:00", to: "2022-04-28 13:50:00"},
				{field: "CAIONE1_DURUMWHEAT27", from: "2022-04-28 11:48:00", to: "2022-04-28 12:52:00"},
			},
			{{field: "CAIONE2_DURUMWHEAT29", from: "2022-04-28 10:38:00", to: "2022-04-28 11:06:00"}},
			{
				{field: "CAIONE2_DURUMWHEAT24", from: "2022-04-28 13:50:00", to: "2022-04-28 14:13:00"},
				{field: "CAIONE2_DURUMWHEAT27", from: "2022-04-28 12:57:00", to: "2022-04-28 13:25:00"},
			},
		},
		Apr28PM: {
			{{field: "CAIONE1_DURUMWHEAT29", from: "2022-04-28 14:38:00", to: "2022-04-28 15:16:00"}},
			{
				{field: "CAIONE1_DURUMWHEAT24", from: "2022-04-28 17:00:00", to: "2022-04-28 17:20:00"},
				{field: "CAIONE1_DURUMWHEAT27", from: "2022-04-28 16:05:00", to: "2022-04-28 16:30:00"},
			},
			{{field: "CAIONE2_DURUMWHEAT29", from: "2022-04-28 15:28:00", to: "2022-04-28 15:56:00"}},
			{
				{field: "CAIONE2_DURUMWHEAT24", from: "2022-04-28 17:22:00", to: "2022-04-28 17:41:00"},
				{field: "CAIONE2_DURUMWHEAT27", from: "2022-04-28 16:31:00", to: "2022-04-28 16:59:00"},
			},
		},
		Apr29AM: {
			{
				{field: "CAIONE1_DURUMWHEAT24", from: "2022-04-29 10:38:00", to: "2022-04-29 11:22:00"},
				{field: "CAIONE1_DURUMWHEAT27", from: "2022-04-29 12:17:00", to: "2022-04-29 12:35:00"},
				{field: "CAIONE1_DURUMWHEAT28", from: "2022-04-29 09:50:00", to: "2022-04-29 10:30:00"},
			},
			{
				{field: "CAIONE2_DURUMWHEAT24", from: "2022-04-29 11:25:00", to: "2022-04-29 12:13:00"},
				{field: "CAIONE2_DURUMWHEAT27", from: "2022-04-29 12:36:00", to: "2022-04-29 12:55:00"},
				{field: "CAIONE2_DURUMWHEAT28", from: "2022-04-29 09:06:00", to: "2022-04-29 09:43:00"},
			},
		},
		Apr29PM: {
			{
				{field: "CAIONE1_DURUMWHEAT24", from: "2022-04-29 15:04:00", to: "2022-04-29 15:19:00"},
				{field: "CAIONE1_DURUMWHEAT27", from: "2022-04-29 14:25:00", to: "2022-04-29 14:41:00"},
				{field: "CAIONE1_DURUMWHEAT28", from: "2022-04-29 13:28:00", to: "2022-04-29 13:56:00"},
			},
			{
				{field: "CAIONE2_DURUMWHEAT24", from: "2022-04-29 15:20:00", to: "2022-04-29 15:34:00"},
				{field: "CAIONE2_DURUMWHEAT27", from: "2022-04-29 14:45:00", to: "2022-04-29 15:03:00"},
				{field: "CAIONE2_DURUMWHEAT28", from: "2022-04-29 13:57:00", to: "2022-04-29 14:23:00"},
			},
		},
	},
	CaioneAA: {
		Jun15AM: {
			{
				{field: "CAIONE_ALFAALFA1", from: "2022-06-15 09:48:00", to: "2022-06-15 10:13:00"},
				{field: "CAIONE_ALFAALFA2", from: "2022-06-15 10:26:00", to: "2022-06-15 10:38:00"},
				{field: "CAIONE_ALFAALFA3", from: "2022-06-15 10:42:00", to: "2022-06-15 11:00:00"},
			},
		},
		Jun15PM: {
			{
				{field: "CAIONE_ALFAALFA1", from: "2022-06-15 15:00:00", to: "2022-06-15 15:25:00"},
				{field: "CAIONE_ALFAALFA2", from: "2022-06-15 15:40:00", to: "2022-06-15 15:54:00"},
				{field: "CAIONE_ALFAALFA3", from: "2022-06-15 15:56:00", to: "2022-06-15 16:08:00"},
			},
		},
		Jun16AM: {
			{
				{field: "CAIONE_ALFAALFA1", from: "2022-06-16 11:00:00", to: "2022-06-16 11:12:00"},
				{field: "CAIONE_ALFAALFA2", from: "2022-06-16 09:13:00", to: "2022-06-16 09:56:00"},
				{field: "CAIONE_ALFAALFA3", from: "2022-06-16 09:54:00", to: "2022-06-16 10:30:00"},
			},
		},
		Jun16PM: {
			{
				{field: "CAIONE_ALFAALFA1", from: "2022-06-16 14:06:00", to: "2022-06-16 14:18:00"},
				{field: "CAIONE_ALFAALFA2", from: "2022-06-16 14:20:00", to: "2022-06-16 14:32:00"},
				{field: "CAIONE_ALFAALFA3", from: "2022-06-16 14:39:00", to: "2022-06-16 14:51:00"},
			},
		},
	},
	CaioneMA: {
		Jun15AM: {
			{
				{field: "CAIONE_MAIS1", from: "2022-06-15 09:05:00", to: "2022-06-15 10:04:00"},
				{field: "CAIONE_MAIS2", from: "2022-06-15 10:05:00", to: "2022-06-15 11:07:00"},
				{field: "CAIONE_MAIS3", from: "2022-06-15 11:26:00", to: "2022-06-15 12:19:00"},
			},
			{{field: "CAIONE_MAIS4", from: "2022-06-15 09:00:00", to: "2022-06-15 09:34:00"}},
		},
		Jun15PM: {
			{
				{field: "CAIONE_MAIS1", from: "2022-06-15 14:33:00", to: "2022-06-15 15:16:00"},
				{field: "CAIONE_MAIS2", from: "2022-06-15 15:18:00", to: "2022-06-15 16:03:00"},
				{field: "CAIONE_MAIS3", from: "2022-06-15 16:09:00", to: "2022-06-15 16:47:00"},
			},
			{{field: "CAIONE_MAIS4", from: "2022-06-15 14:33:00", to: "2022-06-15 14:57:00"}},
		},
		Jun16AM: {
			{
				{field: "CAIONE_MAIS1", from: "2022-06-16 09:20:00", to: "2022-06-16 10:10:00"},
				{field: "CAIONE_MAIS2", from: "2022-06-16 10:11:00", to: "2022-06-16 11:13:00"},
				// P1-P25 are missing here, P26 distorts the interpolation.
				{field: "CAIONE_MAIS3", from: "2022-06-16 11:41:00", to: "2022-06-16 12:05:00", ranges: [][2]int{{27, 52}}},
			},
			{{field: "CAIONE_MAIS4", from: "2022-06-16 11:19:00", to: "2022-06-16 11:44:00"}},
		},
		Jun16PM: {
			{
				{field: "CAIONE_MAIS1", from: "2022-06-16 14:00:00", to: "2022-06-16 14:38:00"},
				{field: "CAIONE_MAIS2", from: "2022-06-16 14:40:00", to: "2022-06-16 15:21:00"},
				{field: "CAIONE_MAIS3", from: "2022-06-16 15:22:00", to: "2022-06-16 15:53:00"},
			},
			{{field: "CAIONE_MAIS4", from: "2022-06-16 15:05:00", to: "2022-06-16 15:31:00"}},
		},
	},
}

// InterpolationGroups selects the measurement points of one region and time
// period, split into spatial interpolation groups. Points of different
// groups must not be interpolated together. The farm-level regions CREA and
// CAIONE return the groups of all their fields.
func InterpolationGroups(points []ground.MoisturePoint, region, period string) ([][]ground.MoisturePoint, error) {
	subRegions := []string{region}
	switch region {
	case CREA:
		subRegions = []string{CreaBSQu, CreaDW, CreaSF, CreaMA}
	case CAIONE:
		subRegions = []string{CaioneDW, CaioneAA, CaioneMA}
	default:
		if _, ok := interpolationGroups[region]; !ok {
			return nil, fsarcamp.NotFoundf("region %q", region)
		}
	}
	var out [][]ground.MoisturePoint
	for _, sub := range subRegions {
		for _, g := range interpolationGroups[sub][period] {
			var pts []ground.MoisturePoint
			for _, s := range g {
				for _, p := range points {
					if s.matches(p) {
						pts = append(pts, p)
					}
				}
			}
			if len(pts) > 0 {
				out = append(out, pts)
			}
		}
	}
	return out, nil
}

// RegionMoisture returns the mean volumetric soil moisture of a region in
// one time period, NaN-free. ErrNotFound when no measurements match.
func RegionMoisture(points []ground.MoisturePoint, region, period string) (float64, error) {
	groups, err := InterpolationGroups(points, region, period)
	if err != nil {
		return 0, err
	}
	var vals []float64
	for _, g := range groups {
		for _, p := range g {
			vals = append(vals, p.Moisture)
		}
	}
	if len(vals) == 0 {
		return 0, fsarcamp.NotFoundf("no measurements for region %q in period %q", region, period)
	}
	return ground.MeanValid(vals), nil
}
