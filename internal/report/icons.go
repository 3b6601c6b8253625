package report

// iconEntry maps a tag key (and optionally a value) to an icon name. The
// list is checked in order; an empty Value matches any value of the key.
type iconEntry struct {
	Key   string
	Value string
	Icon  string
}

var icons = []iconEntry{
	{Key: "amenity", Value: "post_office", Icon: "post_office"},
	{Key: "amenity", Value: "pharmacy", Icon: "pharmacy"},
	{Key: "amenity", Value: "restaurant", Icon: "restaurant"},
	{Key: "amenity", Value: "cafe", Icon: "cafe"},
	{Key: "amenity", Value: "townhall", Icon: "townhall"},
	{Key: "amenity", Value: "", Icon: "amenity"},
	{Key: "shop", Value: "", Icon: "shop"},
	{Key: "tourism", Value: "", Icon: "tourism"},
	{Key: "office", Value: "", Icon: "office"},
	{Key: "craft", Value: "", Icon: "craft"},
	{Key: "leisure", Value: "", Icon: "leisure"},
}

// IconFor picks the icon name for a record's tags, falling back to a plain
// marker.
func IconFor(tags map[string]string) string {
	for _, entry := range icons {
		value, ok := tags[entry.Key]
		if !ok {
			continue
		}
		if entry.Value == "" || entry.Value == value {
			return entry.Icon
		}
	}
	return "marker"
}
