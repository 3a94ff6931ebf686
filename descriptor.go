package spaces

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tessera-ai/spaces/errors"
)

// Kind names a concrete space type in a serialized descriptor.
type Kind string

const (
	KindBinary   Kind = "binary"
	KindDiscrete Kind = "discrete"
	KindNaturals Kind = "naturals"
)

// Descriptor is the wire form of a space configuration: a type tag plus
// the constructor parameters of that type. It exists so a space can be
// embedded in a larger configuration document and reconstructed exactly.
//
// The contract per kind:
//
//	binary   — {"type": "binary"}
//	discrete — {"type": "discrete", "size": N}
//	naturals — {"type": "naturals"}
//
// Decoding is strict: missing, duplicate, and unknown fields are
// structured errors, and a discrete size always passes through
// NewDiscrete.
type Descriptor struct {
	Kind Kind
	Size int
}

// BinaryDescriptor returns the descriptor for a Binary space.
func BinaryDescriptor() Descriptor {
	return Descriptor{Kind: KindBinary}
}

// DiscreteDescriptor returns the descriptor for a Discrete space of the
// given size.
func DiscreteDescriptor(size int) Descriptor {
	return Descriptor{Kind: KindDiscrete, Size: NewDiscrete(size).Size()}
}

// NaturalsDescriptor returns the descriptor for the Naturals space.
func NaturalsDescriptor() Descriptor {
	return Descriptor{Kind: KindNaturals}
}

// Validate checks the type tag and its parameters.
func (d Descriptor) Validate() error {
	switch d.Kind {
	case KindBinary, KindNaturals:
		if d.Size != 0 {
			return errors.Wrapf(errors.ErrUnknownField, "%s: field %q", d.Kind, "size")
		}
		return nil
	case KindDiscrete:
		if d.Size < 0 {
			return errors.Newf("discrete: size must be a non-negative integer, got %d", d.Size)
		}
		return nil
	default:
		return errors.Wrapf(errors.ErrUnknownKind, "%q", string(d.Kind))
	}
}

// Binary returns the described Binary space. Callers check Kind first.
func (d Descriptor) Binary() Binary {
	return Binary{}
}

// Discrete reconstructs the described Discrete space through its
// constructor.
func (d Descriptor) Discrete() Discrete {
	return NewDiscrete(d.Size)
}

// Naturals returns the described Naturals space.
func (d Descriptor) Naturals() Naturals {
	return Naturals{}
}

// Summary is a type-erased view of a described space for tooling: bounds
// are rendered as strings, with "" marking an absent bound.
type Summary struct {
	Kind Kind
	Dim  Dim
	Card Card
	Inf  string
	Sup  string
}

// Summary projects the described space onto its structural queries.
func (d Descriptor) Summary() (Summary, error) {
	if err := d.Validate(); err != nil {
		return Summary{}, err
	}
	switch d.Kind {
	case KindBinary:
		return summarize[bool](d.Kind, d.Binary()), nil
	case KindDiscrete:
		return summarize[int](d.Kind, d.Discrete()), nil
	default:
		return summarize[uint64](d.Kind, d.Naturals()), nil
	}
}

func summarize[V any](kind Kind, s BoundedSpace[V]) Summary {
	sum := Summary{Kind: kind, Dim: s.Dim(), Card: s.Card()}
	if v, ok := s.Inf(); ok {
		sum.Inf = fmt.Sprint(v)
	}
	if v, ok := s.Sup(); ok {
		sum.Sup = fmt.Sprint(v)
	}
	return sum
}

// MarshalJSON writes the tagged record for the descriptor's kind.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Kind == KindDiscrete {
		return fmt.Appendf(nil, `{"type":%q,"size":%d}`, d.Kind, d.Size), nil
	}
	return fmt.Appendf(nil, `{"type":%q}`, d.Kind), nil
}

// UnmarshalJSON decodes a tagged record, enforcing the per-kind field
// contract.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "descriptor: decode record")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Newf("descriptor: expected a map record, got %v", tok)
	}

	var (
		kind               Kind
		size               int
		seenKind, seenSize bool
	)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "descriptor: decode field name")
		}
		switch key := keyTok.(string); key {
		case "type":
			if seenKind {
				return errors.Wrapf(errors.ErrDuplicateField, "descriptor: field %q", "type")
			}
			seenKind = true
			valTok, err := dec.Token()
			if err != nil {
				return errors.Wrap(err, "descriptor: decode type")
			}
			name, ok := valTok.(string)
			if !ok {
				return errors.Newf("descriptor: type must be a string, got %v", valTok)
			}
			kind = Kind(name)
		case "size":
			if seenSize {
				return errors.Wrapf(errors.ErrDuplicateField, "descriptor: field %q", "size")
			}
			seenSize = true
			size, err = decodeCount(dec, "descriptor")
			if err != nil {
				return err
			}
		default:
			return errors.Wrapf(errors.ErrUnknownField, "descriptor: field %q", key)
		}
	}
	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "descriptor: decode record end")
	}

	if !seenKind {
		return errors.Wrapf(errors.ErrMissingField, "descriptor: field %q", "type")
	}
	switch kind {
	case KindDiscrete:
		if !seenSize {
			return errors.Wrapf(errors.ErrMissingField, "descriptor: field %q", "size")
		}
	case KindBinary, KindNaturals:
		if seenSize {
			return errors.Wrapf(errors.ErrUnknownField, "%s: field %q", kind, "size")
		}
	default:
		return errors.Wrapf(errors.ErrUnknownKind, "%q", string(kind))
	}

	*d = Descriptor{Kind: kind, Size: size}
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML documents.
func (d Descriptor) MarshalYAML() (interface{}, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Kind == KindDiscrete {
		return map[string]interface{}{"type": string(d.Kind), "size": d.Size}, nil
	}
	return map[string]interface{}{"type": string(d.Kind)}, nil
}

// UnmarshalYAML applies the same strict tagged-record contract as
// UnmarshalJSON.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.New("descriptor: expected a map record")
	}

	var (
		kind               Kind
		size               int
		seenKind, seenSize bool
	)
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch key := node.Content[i].Value; key {
		case "type":
			if seenKind {
				return errors.Wrapf(errors.ErrDuplicateField, "descriptor: field %q", "type")
			}
			seenKind = true
			var name string
			if err := node.Content[i+1].Decode(&name); err != nil {
				return errors.Wrap(err, "descriptor: decode type")
			}
			kind = Kind(name)
		case "size":
			if seenSize {
				return errors.Wrapf(errors.ErrDuplicateField, "descriptor: field %q", "size")
			}
			seenSize = true
			if err := node.Content[i+1].Decode(&size); err != nil {
				return errors.Wrap(err, "descriptor: decode size")
			}
			if size < 0 {
				return errors.Newf("descriptor: size must be a non-negative integer, got %d", size)
			}
		default:
			return errors.Wrapf(errors.ErrUnknownField, "descriptor: field %q", key)
		}
	}

	if !seenKind {
		return errors.Wrapf(errors.ErrMissingField, "descriptor: field %q", "type")
	}
	switch kind {
	case KindDiscrete:
		if !seenSize {
			return errors.Wrapf(errors.ErrMissingField, "descriptor: field %q", "size")
		}
	case KindBinary, KindNaturals:
		if seenSize {
			return errors.Wrapf(errors.ErrUnknownField, "%s: field %q", kind, "size")
		}
	default:
		return errors.Wrapf(errors.ErrUnknownKind, "%q", string(kind))
	}

	*d = Descriptor{Kind: kind, Size: size}
	return nil
}
