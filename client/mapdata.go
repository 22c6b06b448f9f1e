package client

// Marker kinds shown on the city map.
const (
	MarkerMarket     = "market"
	MarkerBin        = "bin"
	MarkerCollection = "collection"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker is one point of interest on the Bissau map.
type Marker struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Position LatLng `json:"position"`
	Full     bool   `json:"full,omitempty"` // bins only
}

// BissauCenter is the map's initial viewport center.
var BissauCenter = LatLng{Lat: 11.8632, Lng: -15.5984}

// The marker set is static demo data for Bissau. There is no live feed.
var mapMarkers = []Marker{
	{ID: "market-1", Kind: MarkerMarket, Name: "Comercial Santy", Position: LatLng{11.858, -15.590}},
	{ID: "market-2", Kind: MarkerMarket, Name: "Supermercado Darling", Position: LatLng{11.865, -15.600}},
	{ID: "market-3", Kind: MarkerMarket, Name: "Ghada", Position: LatLng{11.862, -15.595}},
	{ID: "market-4", Kind: MarkerMarket, Name: "Chapa de Bissau", Position: LatLng{11.860, -15.585}},
	{ID: "market-5", Kind: MarkerMarket, Name: "MiniMercado Alvalade", Position: LatLng{11.870, -15.590}},
	{ID: "market-6", Kind: MarkerMarket, Name: "Spar Bissau", Position: LatLng{11.855, -15.592}},
	{ID: "bin-8842", Kind: MarkerBin, Name: "Smart Bin #8842", Position: LatLng{11.864, -15.599}, Full: true},
	{ID: "bin-8845", Kind: MarkerBin, Name: "Smart Bin #8845", Position: LatLng{11.862, -15.596}},
	{ID: "collect-1", Kind: MarkerCollection, Name: "Av. Amílcar Cabral", Position: LatLng{11.860, -15.597}},
	{ID: "collect-2", Kind: MarkerCollection, Name: "Rua 12", Position: LatLng{11.866, -15.601}},
}

// MarkersFor filters the map by role: collectors see bins and pending
// collection points, residents see drop-off markets and bins.
func MarkersFor(role string) []Marker {
	var out []Marker
	for _, m := range mapMarkers {
		switch m.Kind {
		case MarkerBin:
			out = append(out, m)
		case MarkerCollection:
			if role == RoleCollector {
				out = append(out, m)
			}
		case MarkerMarket:
			if role != RoleCollector {
				out = append(out, m)
			}
		}
	}
	return out
}
