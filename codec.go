package spaces

import (
	"bytes"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tessera-ai/spaces/errors"
)

// Serialization carries only constructor parameters, never derived state.
// The helpers here decode the two record shapes the wire contract allows:
// a named map ({"size": 5}) and a positional sequence ([5]). Anything else
// in the record — a missing field, a repeated field, a field the type does
// not define — is a structured error wrapping the matching sentinel from
// the errors package.

// decodeSizeRecord decodes a single-field {size} record from JSON, in
// either named or positional form.
func decodeSizeRecord(data []byte, typeName string) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return 0, errors.Wrapf(err, "%s: decode record", typeName)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return 0, errors.Newf("%s: expected a map or sequence record, got %v", typeName, tok)
	}

	switch delim {
	case '{':
		return decodeSizeMap(dec, typeName)
	case '[':
		return decodeSizeSeq(dec, typeName)
	default:
		return 0, errors.Newf("%s: expected a map or sequence record, got %q", typeName, delim.String())
	}
}

func decodeSizeMap(dec *json.Decoder, typeName string) (int, error) {
	size := 0
	seen := false

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return 0, errors.Wrapf(err, "%s: decode field name", typeName)
		}
		key := keyTok.(string)

		if key != "size" {
			return 0, errors.Wrapf(errors.ErrUnknownField, "%s: field %q", typeName, key)
		}
		if seen {
			return 0, errors.Wrapf(errors.ErrDuplicateField, "%s: field %q", typeName, "size")
		}
		seen = true

		size, err = decodeCount(dec, typeName)
		if err != nil {
			return 0, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return 0, errors.Wrapf(err, "%s: decode record end", typeName)
	}
	if !seen {
		return 0, errors.Wrapf(errors.ErrMissingField, "%s: field %q", typeName, "size")
	}
	return size, nil
}

func decodeSizeSeq(dec *json.Decoder, typeName string) (int, error) {
	if !dec.More() {
		return 0, errors.Wrapf(errors.ErrMissingField, "%s: field %q", typeName, "size")
	}
	size, err := decodeCount(dec, typeName)
	if err != nil {
		return 0, err
	}
	if dec.More() {
		return 0, errors.Wrapf(errors.ErrUnknownField, "%s: trailing sequence element", typeName)
	}
	if _, err := dec.Token(); err != nil {
		return 0, errors.Wrapf(err, "%s: decode record end", typeName)
	}
	return size, nil
}

// decodeCount reads one non-negative integer token.
func decodeCount(dec *json.Decoder, typeName string) (int, error) {
	tok, err := dec.Token()
	if err != nil {
		return 0, errors.Wrapf(err, "%s: decode size", typeName)
	}
	num, ok := tok.(json.Number)
	if !ok {
		return 0, errors.Newf("%s: size must be a non-negative integer, got %v", typeName, tok)
	}
	n, err := num.Int64()
	if err != nil || n < 0 {
		return 0, errors.Newf("%s: size must be a non-negative integer, got %s", typeName, num.String())
	}
	return int(n), nil
}

// decodeUnitRecord decodes a zero-field record ({} or []). Any content is
// an unknown field by definition.
func decodeUnitRecord(data []byte, typeName string) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrapf(err, "%s: decode record", typeName)
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return errors.Newf("%s: expected an empty record, got %v", typeName, tok)
	}
	if dec.More() {
		if delim == '{' {
			keyTok, err := dec.Token()
			if err == nil {
				return errors.Wrapf(errors.ErrUnknownField, "%s: field %q", typeName, keyTok)
			}
		}
		return errors.Wrapf(errors.ErrUnknownField, "%s: unit record carries data", typeName)
	}
	if _, err := dec.Token(); err != nil && err != io.EOF {
		return errors.Wrapf(err, "%s: decode record end", typeName)
	}
	return nil
}

// decodeSizeNode is the YAML counterpart of decodeSizeRecord, walking the
// node tree so duplicate and unknown keys are caught before any value
// decoding happens.
func decodeSizeNode(node *yaml.Node, typeName string) (int, error) {
	switch node.Kind {
	case yaml.MappingNode:
		size := 0
		seen := false
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if key != "size" {
				return 0, errors.Wrapf(errors.ErrUnknownField, "%s: field %q", typeName, key)
			}
			if seen {
				return 0, errors.Wrapf(errors.ErrDuplicateField, "%s: field %q", typeName, "size")
			}
			seen = true
			if err := node.Content[i+1].Decode(&size); err != nil {
				return 0, errors.Wrapf(err, "%s: decode size", typeName)
			}
		}
		if !seen {
			return 0, errors.Wrapf(errors.ErrMissingField, "%s: field %q", typeName, "size")
		}
		if size < 0 {
			return 0, errors.Newf("%s: size must be a non-negative integer, got %d", typeName, size)
		}
		return size, nil

	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return 0, errors.Wrapf(errors.ErrMissingField, "%s: field %q", typeName, "size")
		}
		if len(node.Content) > 1 {
			return 0, errors.Wrapf(errors.ErrUnknownField, "%s: trailing sequence element", typeName)
		}
		size := 0
		if err := node.Content[0].Decode(&size); err != nil {
			return 0, errors.Wrapf(err, "%s: decode size", typeName)
		}
		if size < 0 {
			return 0, errors.Newf("%s: size must be a non-negative integer, got %d", typeName, size)
		}
		return size, nil

	default:
		return 0, errors.Newf("%s: expected a map or sequence record", typeName)
	}
}
