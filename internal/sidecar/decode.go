package sidecar

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeFile reads and decodes one sidecar file into a Record.
func DecodeFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	rec, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return rec, nil
}

// Decode parses a YAML document into a Record. The generic map decoding of
// yaml.v3 loses document order, so the node tree is walked directly instead.
func Decode(data []byte) (Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse sidecar: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Record{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("sidecar root is not a mapping")
	}
	return decodeMapping(root)
}

func decodeMapping(n *yaml.Node) (Record, error) {
	rec := make(Record, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		val, err := decodeValue(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		rec = append(rec, Entry{Key: n.Content[i].Value, Value: val})
	}
	return rec, nil
}

func decodeValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m, err := decodeMapping(n)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindMapping, Mapping: m}, nil
	case yaml.SequenceNode:
		seq := make([]Value, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decodeValue(item)
			if err != nil {
				return Value{}, err
			}
			seq = append(seq, v)
		}
		return Value{Kind: KindSequence, Sequence: seq}, nil
	case yaml.AliasNode:
		return decodeValue(n.Alias)
	default:
		var s any
		if err := n.Decode(&s); err != nil {
			return Value{}, fmt.Errorf("decode scalar %q: %w", n.Value, err)
		}
		return Value{Kind: KindScalar, Scalar: s}, nil
	}
}
