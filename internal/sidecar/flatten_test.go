package sidecar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, doc string) Record {
	t.Helper()
	rec, err := Decode([]byte(doc))
	require.NoError(t, err)
	return rec
}

func flatKeys(fields []Field) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestFlattenNested(t *testing.T) {
	rec := mustDecode(t, `title: A
location:
  latitude: 48.8566
  longitude: 2.3522
camera:
  lens:
    model: EF 50mm
`)

	fields := Flatten(rec, ".")
	require.Equal(t, []string{
		"title",
		"location.latitude",
		"location.longitude",
		"camera.lens.model",
	}, flatKeys(fields))
	require.Equal(t, 48.8566, fields[1].Value.Scalar)
}

func TestFlattenPrefixEquivalence(t *testing.T) {
	// Flattening a wrapped record must equal flattening the inner record
	// with every key prefixed by the parent key, at any depth.
	inner := mustDecode(t, "a: 1\nb:\n  c: 2\n")
	wrapped := mustDecode(t, "parent:\n  a: 1\n  b:\n    c: 2\n")

	wrappedFields := Flatten(wrapped, ".")

	var expected []Field
	for _, f := range Flatten(inner, ".") {
		expected = append(expected, Field{Key: "parent." + f.Key, Value: f.Value})
	}
	require.Equal(t, expected, wrappedFields)
}

func TestFlattenEmptyMappingContributesNothing(t *testing.T) {
	rec := mustDecode(t, "empty: {}\ntitle: A\n")
	fields := Flatten(rec, ".")
	require.Equal(t, []string{"title"}, flatKeys(fields))
}

func TestFlattenSeparator(t *testing.T) {
	rec := mustDecode(t, "a:\n  b: 1\n")
	fields := Flatten(rec, "/")
	require.Equal(t, []string{"a/b"}, flatKeys(fields))
}

func TestFlattenSequenceBoundDirectly(t *testing.T) {
	rec := mustDecode(t, "keywords:\n  - a\n  - b\n")
	fields := Flatten(rec, ".")
	require.Len(t, fields, 1)
	require.Equal(t, KindSequence, fields[0].Value.Kind)
}
