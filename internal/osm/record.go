// Package osm defines the OpenStreetMap record model and the Overpass client
// used to fetch phone-tagged records per country.
package osm

// PhoneKeys lists the phone-like tag keys the audit inspects, in
// presentation order.
var PhoneKeys = []string{
	"phone",
	"contact:phone",
	"mobile",
	"contact:mobile",
	"fax",
	"contact:fax",
}

// WebsiteKeys lists website-like tag keys; the first one present on a
// record wins.
var WebsiteKeys = []string{
	"website",
	"contact:website",
	"url",
}

// Record is one OSM element with its tags. Ways and relations carry their
// computed center as Lat/Lon.
type Record struct {
	ID   int64
	Type string
	Tags map[string]string
	Lat  float64
	Lon  float64
}

// Name returns the record's display name, if tagged.
func (r Record) Name() string {
	return r.Tags["name"]
}
