package cropex25

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Region identifiers of the Eitelsried test site. Each region covers the
// part of a field with soil moisture measurements. Puch test site
// definitions will be added once the data is consolidated.
const (
	EitelsriedMaize  = "CR25-EITELSRIED-MAIZE"
	EitelsriedPotato = "CR25-EITELSRIED-POTATO"
	EitelsriedWheat  = "CR25-EITELSRIED-WHEAT"
)

// RegionPolygons maps region identifiers to boundary polygons in WGS84
// longitude/latitude coordinates.
var RegionPolygons = map[string]orb.Polygon{
	EitelsriedMaize: {{
		{11.17278645800869, 48.18502314439328},
		{11.17350812287046, 48.18533410463681},
		{11.17575055405398, 48.18603473687025},
		{11.17622832249746, 48.18624340815962},
		{11.17575118394909, 48.18771418684338},
		{11.17437262413883, 48.18867261913626},
		{11.17309875903978, 48.18801851173351},
		{11.17224292229551, 48.1870489939315},
		{11.17259093857684, 48.18509547481131},
	}},
	EitelsriedPotato: {{
		{11.17278236457158, 48.184445194127},
		{11.17350421883094, 48.18445127163915},
		{11.17419613396293, 48.18434141285729},
		{11.18068775882051, 48.18586493367545},
		{11.18066893971662, 48.18669982899348},
		{11.1783290482405, 48.18617056616241},
		{11.17735890646289, 48.18648126004705},
		{11.17641604518258, 48.18616649245348},
		{11.17568606758535, 48.18593014618482},
		{11.17447266529804, 48.18558310574561},
		{11.17356657994018, 48.18528528587626},
		{11.17294867118114, 48.18502253862198},
		{11.17281083826994, 48.18484913217939},
	}},
	EitelsriedWheat: {{
		{11.1656491314938, 48.18142015022188},
		{11.16579405997857, 48.18009374605076},
		{11.16887186174786, 48.18065504855313},
		{11.16860243616368, 48.18158432340719},
		{11.16896274236345, 48.18269397442587},
		{11.16840499817774, 48.18297604799496},
		{11.16779513167568, 48.182847760896},
		{11.1671710032665, 48.18284265434719},
		{11.16535329596632, 48.18278574918555},
	}},
}

// RegionContains reports whether the point (lon, lat) lies inside the
// region polygon. Unknown regions contain nothing.
func RegionContains(region string, lon, lat float64) bool {
	poly, ok := RegionPolygons[region]
	if !ok {
		return false
	}
	return planar.PolygonContains(poly, orb.Point{lon, lat})
}
