package types

import "encoding/json"

// Optional tracks JSON field presence for patch requests: an omitted
// key leaves Present false, while an explicit value (including null or
// an empty list) sets it. This is what lets a patch distinguish "leave
// the placements alone" from "clear them".
type Optional[T any] struct {
	Present bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}
