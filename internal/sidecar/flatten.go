package sidecar

// Field is one flattened key/value pair.
type Field struct {
	Key   string
	Value Value
}

// Flatten turns a nested Record into an ordered list of dotted-path fields.
// Nested mappings recurse with the key path extended by sep; empty mappings
// contribute no fields. Output order is the traversal order: parent keys
// before children, siblings in document order.
func Flatten(rec Record, sep string) []Field {
	var out []Field
	flattenInto(&out, rec, "", sep)
	return out
}

func flattenInto(out *[]Field, rec Record, prefix, sep string) {
	for _, e := range rec {
		key := e.Key
		if prefix != "" {
			key = prefix + sep + e.Key
		}
		if e.Value.Kind == KindMapping {
			flattenInto(out, e.Value.Mapping, key, sep)
			continue
		}
		*out = append(*out, Field{Key: key, Value: e.Value})
	}
}
