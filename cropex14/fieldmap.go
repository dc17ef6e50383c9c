package cropex14

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/polinsar/fsarcamp"
	"github.com/polinsar/fsarcamp/geo"
	"github.com/polinsar/fsarcamp/internal/shp"
)

// Crop is one crop entry of a field: the Bavarian land-use code and the
// cultivated area in hectares.
type Crop struct {
	Code int
	Area float64
}

// FieldInfo is one field polygon of the Wallerfing field map with its crop
// attributes. Boundary is in WGS84 longitude/latitude, BoundaryGK keeps the
// original Gauss-Krüger zone 4 coordinates of the shapefile.
type FieldInfo struct {
	Crops      []Crop
	Boundary   orb.Polygon
	BoundaryGK orb.Polygon
}

// FieldMap reads the shapefile with the field polygons and crop types of
// the Wallerfing test site.
type FieldMap struct {
	shpPath string
}

// NewFieldMap returns a field map over the given .shp file. The companion
// .dbf attribute table is expected next to it.
func NewFieldMap(shpPath string) *FieldMap {
	return &FieldMap{shpPath: shpPath}
}

// Fields loads all field polygons with their crop attributes.
func (m *FieldMap) Fields() ([]FieldInfo, error) {
	polys, err := shp.ReadPolygons(m.shpPath)
	if err != nil {
		return nil, err
	}
	dbfPath := strings.TrimSuffix(m.shpPath, ".shp") + ".dbf"
	table, err := shp.ReadTable(dbfPath)
	if err != nil {
		return nil, err
	}
	if len(table.Records) != len(polys) {
		return nil, fsarcamp.Formatf("%s: %d polygons but %d attribute records",
			m.shpPath, len(polys), len(table.Records))
	}
	fields := make([]FieldInfo, 0, len(polys))
	for i, gk := range polys {
		info := FieldInfo{
			BoundaryGK: gk,
			Boundary:   gkPolygonToWGS84(gk),
			Crops:      recordCrops(table.Records[i]),
		}
		fields = append(fields, info)
	}
	return fields, nil
}

// FieldByID loads the polygons of one named field. Fields are matched by
// reference points known to lie on them, some fields span several polygons.
func (m *FieldMap) FieldByID(id string) ([]FieldInfo, error) {
	points, ok := fieldPoints[id]
	if !ok {
		return nil, fsarcamp.NotFoundf("field %q", id)
	}
	fields, err := m.Fields()
	if err != nil {
		return nil, err
	}
	var out []FieldInfo
	for _, pt := range points {
		for _, f := range fields {
			if planar.PolygonContains(f.Boundary, pt) {
				out = append(out, f)
				break
			}
		}
	}
	if len(out) == 0 {
		return nil, fsarcamp.NotFoundf("field %q: no polygon contains its reference points", id)
	}
	return out, nil
}

// recordCrops pulls the up to five crop code/area pairs out of one
// attribute record. The columns follow the Bavarian land-use register
// naming, e.g. nu14_n_c1 (code) and nu14_f_c1 (area).
func recordCrops(rec map[string]string) []Crop {
	var crops []Crop
	for i := 1; i <= 5; i++ {
		suffix := strconv.Itoa(i)
		code, err := strconv.Atoi(strings.TrimSpace(rec["nu14_n_c"+suffix]))
		if err != nil || code == 0 {
			continue
		}
		area, _ := strconv.ParseFloat(strings.TrimSpace(rec["nu14_f_c"+suffix]), 64)
		crops = append(crops, Crop{Code: code, Area: area})
	}
	return crops
}

func gkPolygonToWGS84(gk orb.Polygon) orb.Polygon {
	out := make(orb.Polygon, 0, len(gk))
	for _, ring := range gk {
		converted := make(orb.Ring, 0, len(ring))
		for _, pt := range ring {
			lat, lon := geo.GKZone4ToWGS84(pt[0], pt[1])
			converted = append(converted, orb.Point{lon, lat})
		}
		out = append(out, converted)
	}
	return out
}

// cropNames maps the Bavarian land-use register codes found on the
// Wallerfing fields to English crop descriptions (from "a6_codierung_fnn").
var cropNames = map[int]string{
	115: "Winter wheat",
	116: "Summer wheat",
	131: "Winter barley",
	132: "Summer barley",
	140: "Oat",
	156: "Winter triticale",
	157: "Summer triticale",
	171: "Grain maize",
	172: "Corn-Cob-Mix",
	210: "Peas",
	220: "Beans",
	311: "Winter rapeseed",
	320: "Sunflowers",
	411: "Silage maize",
	422: "Clover / alfalfa mix",
	423: "Alfalfa",
	424: "Agricultural grass",
	426: "Other cereals as whole plant silage",
	441: "Green areas",
	451: "Grasslands (incl orchards)",
	452: "Mowed pastures",
	453: "Pastures",
	460: "Summer pastures for sheep walking",
	560: "Set aside arable land",
	567: "Disused permanent grassland",
	591: "Farmland out of production",
	592: "Set aside grassland",
	611: "Potatoes",
	612: "Other potatoes",
	613: "Industrial potatoes",
	615: "Seed potatoes",
	619: "Other potatoes",
	620: "Sugar beet",
	630: "Jerusalem artichokes",
	640: "Starch potatoes",
	710: "Vegetables",
	720: "Outdoor vegetables",
	811: "Pome and stone fruit",
	812: "Orchard (without meadow / arable land)",
	824: "Hazelnuts",
	846: "Christmas tree plantations outside the forest",
	848: "Short rotation forest trees",
	851: "Vines cultivated",
	890: "Other permanent crops",
	896: "Miscanthus",
	897: "Other perennial energy crops",
	920: "House garden",
	980: "Sudan grass",
	990: "Other non used area",
	996: "Storage field",
}

// CropDescription resolves a land-use code to its crop description.
func CropDescription(code int) (string, bool) {
	name, ok := cropNames[code]
	return name, ok
}
