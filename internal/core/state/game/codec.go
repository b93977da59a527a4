package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownEvent  = errors.New("unknown event kind")
	ErrSportMismatch = errors.New("snapshot belongs to another sport")
)

// Kinded is satisfied by every event variant.
type Kinded interface {
	Kind() string
}

// VariantDecoder decodes the payload of one event kind.
type VariantDecoder[E Kinded] struct {
	kind   string
	decode func(json.RawMessage) (E, error)
}

// Variant builds the decoder for variant V of the event union E.
// It panics if V does not implement E, which only happens on a
// miswired codec table at init.
func Variant[E Kinded, V Kinded]() VariantDecoder[E] {
	var zero V
	if _, ok := any(zero).(E); !ok {
		panic(fmt.Sprintf("game: %T is not a variant of the event union", zero))
	}
	return VariantDecoder[E]{
		kind: zero.Kind(),
		decode: func(raw json.RawMessage) (E, error) {
			var v V
			if len(raw) > 0 && string(raw) != "null" {
				if err := json.Unmarshal(raw, &v); err != nil {
					var none E
					return none, fmt.Errorf("decode %s: %w", zero.Kind(), err)
				}
			}
			return any(v).(E), nil
		},
	}
}

// Codec maps event kinds to their decoders for one sport.
type Codec[E Kinded] struct {
	decoders map[string]func(json.RawMessage) (E, error)
}

func NewCodec[E Kinded](variants ...VariantDecoder[E]) Codec[E] {
	c := Codec[E]{decoders: make(map[string]func(json.RawMessage) (E, error), len(variants))}
	for _, v := range variants {
		c.decoders[v.kind] = v.decode
	}
	return c
}

func (c Codec[E]) Decode(kind string, payload json.RawMessage) (E, error) {
	dec, ok := c.decoders[kind]
	if !ok {
		var none E
		return none, fmt.Errorf("%q: %w", kind, ErrUnknownEvent)
	}
	return dec(payload)
}

// Kinds lists the registered event kinds in sorted order.
func (c Codec[E]) Kinds() []string {
	out := make([]string, 0, len(c.decoders))
	for k := range c.decoders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Envelope is the wire form of one event.
type Envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func Encode[E Kinded](e E) (Envelope, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s: %w", e.Kind(), err)
	}
	return Envelope{Kind: e.Kind(), Payload: raw}, nil
}
