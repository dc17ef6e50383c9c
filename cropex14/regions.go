package cropex14

import "github.com/paulmach/orb"

// Field identifiers of the Wallerfing test site.
const (
	CornC1       = "CORN_C1" // corn field next to the meteorological station
	CornC1Center = "CORN_C1_CENTER"
	CornC2       = "CORN_C2" // corn field on the big field
	CornC3       = "CORN_C3"
	CornC5       = "CORN_C5"
	CornC6       = "CORN_C6"
	WheatW1      = "WHEAT_W1"
	WheatW2      = "WHEAT_W2"
	WheatW4      = "WHEAT_W4"
	WheatW5      = "WHEAT_W5"
	WheatW7      = "WHEAT_W7"
	WheatW10     = "WHEAT_W10" // triangular wheat field
	BarleyB1     = "BARLEY_B1"
	RapeseedR1   = "RAPESEED_R1"
	SugarBeetSB2 = "SUGAR_BEET_SB2"
)

// fieldPoints maps field identifiers to reference points (lon, lat) that lie
// on the field. The field map resolves a field id to its polygons by
// point-in-polygon lookup of these points.
var fieldPoints = map[string][]orb.Point{
	CornC1:       {{12.874096, 48.694220}, {12.875333, 48.694533}},
	CornC1Center: {{12.874096, 48.694220}},
	CornC2:       {{12.873469, 48.696072}},
	CornC3:       {{12.875444, 48.697499}},
	CornC5:       {{12.872011, 48.702637}},
	CornC6:       {{12.869678, 48.703700}},
	WheatW1:      {{12.877348, 48.697276}},
	WheatW2:      {{12.873871, 48.700504}},
	WheatW4:      {{12.863705, 48.701121}},
	WheatW5:      {{12.868541, 48.701644}},
	WheatW7:      {{12.863067, 48.697123}},
	WheatW10:     {{12.854872, 48.690192}},
	BarleyB1:     {{12.874718, 48.698977}},
	RapeseedR1:   {{12.868209, 48.687849}},
	SugarBeetSB2: {{12.8630, 48.6947}},
}

// Fields returns the known field identifiers, in no particular order.
func Fields() []string {
	ids := make([]string, 0, len(fieldPoints))
	for id := range fieldPoints {
		ids = append(ids, id)
	}
	return ids
}
