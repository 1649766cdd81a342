// Package document decodes YAML or JSON payloads into tree values, preserving
// object member order.
package document

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/tq/internal/number"
	"github.com/jacoelho/tq/internal/tree"
)

var (
	// ErrInvalidInput indicates an empty or unreadable payload.
	ErrInvalidInput = errors.New("document: invalid input")

	// ErrDecode indicates the payload is not a decodable document.
	ErrDecode = errors.New("document: decode error")
)

// Parse decodes one document from r.
func Parse(r io.Reader) (*tree.Value, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return ParseBytes(payload)
}

// ParseBytes decodes one YAML or JSON document. JSON is handled by the same
// decoder since every JSON document is a YAML document.
func ParseBytes(payload []byte) (*tree.Value, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: payload is empty", ErrInvalidInput)
	}

	var data any
	if err := yaml.UnmarshalWithOptions(payload, &data, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return fromOrdered(data)
}

// fromOrdered converts goccy's ordered decode output. Mappings arrive as
// yaml.MapSlice, which keeps document order.
func fromOrdered(data any) (*tree.Value, error) {
	switch v := data.(type) {
	case nil:
		return tree.Null(), nil
	case bool:
		return tree.Bool(v), nil
	case string:
		return tree.String(v), nil
	case []any:
		elems := make([]*tree.Value, 0, len(v))
		for _, item := range v {
			converted, err := fromOrdered(item)
			if err != nil {
				return nil, err
			}
			elems = append(elems, converted)
		}
		return tree.Array(elems...), nil
	case yaml.MapSlice:
		fields := tree.NewObject()
		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: object key %v is not a string", ErrDecode, item.Key)
			}
			converted, err := fromOrdered(item.Value)
			if err != nil {
				return nil, err
			}
			fields.Set(key, converted)
		}
		return tree.ObjectValue(fields), nil
	default:
		if f, ok := number.ToFloat64(v); ok {
			return tree.Number(f), nil
		}
		return nil, fmt.Errorf("%w: unsupported value type %T", ErrDecode, data)
	}
}
