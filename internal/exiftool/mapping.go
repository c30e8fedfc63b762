package exiftool

// Tag names with special encoding rules in the command builder.
const (
	tagLatitude     = "GPSLatitude"
	tagLatitudeRef  = "GPSLatitudeRef"
	tagLongitude    = "GPSLongitude"
	tagLongitudeRef = "GPSLongitudeRef"
	tagKeywords     = "Keywords"
	tagSubject      = "Subject"
)

// DefaultFieldMap translates flattened sidecar keys into exiftool tag names.
// Keys absent from the table pass through unchanged, so already-qualified tag
// names (e.g. "XMP:CreatorTool") flow straight to the command line.
var DefaultFieldMap = map[string]string{
	"title":              "Title",
	"description":        "Description",
	"caption":            "Caption-Abstract",
	"author":             "Artist",
	"copyright":          "Copyright",
	"date":               "DateTimeOriginal",
	"rating":             "Rating",
	"keywords":           tagKeywords,
	"tags":               tagKeywords,
	"latitude":           tagLatitude,
	"longitude":          tagLongitude,
	"location.latitude":  tagLatitude,
	"location.longitude": tagLongitude,
	"gps.latitude":       tagLatitude,
	"gps.longitude":      tagLongitude,
	"camera.make":        "Make",
	"camera.model":       "Model",
	"camera.lens":        "LensModel",
}

// MapField resolves a flattened key to its exiftool tag, falling back to the
// key itself when the table has no entry.
func MapField(table map[string]string, key string) string {
	if tag, ok := table[key]; ok {
		return tag
	}
	return key
}
