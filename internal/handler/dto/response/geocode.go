package response

import "folio-api/internal/infra/geocode"

type GeocodeResult struct {
	DisplayName string `json:"displayName"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func FromGeocodeResult(r geocode.Result) GeocodeResult {
	return GeocodeResult{
		DisplayName: r.DisplayName,
		Lat:         r.Lat,
		Lon:         r.Lon,
	}
}

func FromGeocodeResults(results []geocode.Result) []GeocodeResult {
	out := make([]GeocodeResult, 0, len(results))
	for _, r := range results {
		out = append(out, FromGeocodeResult(r))
	}
	return out
}
