package exiftool

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nir0k/SidecarSync/internal/sidecar"
)

// baseArgs is prepended to every invocation: edit the image in place and
// force UTF-8 for the legacy IPTC caption fields.
var baseArgs = []string{"-overwrite_original", "-codedcharacterset=utf8"}

// FieldIssue records one field that could not be turned into arguments.
type FieldIssue struct {
	Key    string
	Value  string
	Reason string
}

// BuildArgs converts flattened metadata into an exiftool argument list.
// Fields are processed in input order. Empty values are skipped entirely.
// Coordinate fields become an absolute value plus a hemisphere reference tag;
// keyword fields fan out append-style into both Keywords and Subject. A
// malformed field is reported as an issue and skipped without aborting its
// siblings.
func BuildArgs(table map[string]string, fields []sidecar.Field) ([]string, []FieldIssue) {
	args := append([]string(nil), baseArgs...)
	var issues []FieldIssue

	for _, f := range fields {
		if f.Value.IsZero() {
			continue
		}
		switch tag := MapField(table, f.Key); tag {
		case tagLatitude:
			coord, err := parseCoordinate(f.Value)
			if err != nil {
				issues = append(issues, FieldIssue{Key: f.Key, Value: f.Value.String(), Reason: err.Error()})
				continue
			}
			args = append(args,
				fmt.Sprintf("-%s=%s", tagLatitude, formatCoordinate(coord)),
				fmt.Sprintf("-%s=%s", tagLatitudeRef, hemisphere(coord, "N", "S")),
			)
		case tagLongitude:
			coord, err := parseCoordinate(f.Value)
			if err != nil {
				issues = append(issues, FieldIssue{Key: f.Key, Value: f.Value.String(), Reason: err.Error()})
				continue
			}
			args = append(args,
				fmt.Sprintf("-%s=%s", tagLongitude, formatCoordinate(coord)),
				fmt.Sprintf("-%s=%s", tagLongitudeRef, hemisphere(coord, "E", "W")),
			)
		case tagKeywords, tagSubject:
			for _, kw := range keywordList(f.Value) {
				args = append(args,
					fmt.Sprintf("-%s+=%s", tagKeywords, kw),
					fmt.Sprintf("-%s+=%s", tagSubject, kw),
				)
			}
		default:
			args = append(args, fmt.Sprintf("-%s=%s", tag, f.Value.String()))
		}
	}
	return args, issues
}

func parseCoordinate(v sidecar.Value) (float64, error) {
	coord, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("not a decimal coordinate")
	}
	return coord, nil
}

// formatCoordinate renders the absolute coordinate in plain decimal form;
// exiftool does not accept scientific notation for GPS values.
func formatCoordinate(coord float64) string {
	return strconv.FormatFloat(math.Abs(coord), 'f', -1, 64)
}

func hemisphere(coord float64, pos, neg string) string {
	if coord < 0 {
		return neg
	}
	return pos
}

// keywordList normalizes a keywords value: sequences are used as-is, strings
// are split on commas; every item is trimmed and blanks are dropped.
func keywordList(v sidecar.Value) []string {
	var raw []string
	if v.Kind == sidecar.KindSequence {
		for _, item := range v.Sequence {
			raw = append(raw, item.String())
		}
	} else {
		raw = strings.Split(v.String(), ",")
	}

	out := make([]string, 0, len(raw))
	for _, kw := range raw {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
