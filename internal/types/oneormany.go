package types

import "encoding/json"

// OneOrMany is a field that may be serialized as either a single string or
// an array of strings. Talent categories and engagement preferences arrive
// in both shapes; decoding normalizes them to a slice so consumers branch
// on the shape exactly once, at the data-model boundary.
type OneOrMany []string

// UnmarshalJSON accepts "value", ["a","b"], or null.
func (m *OneOrMany) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*m = nil
		} else {
			*m = OneOrMany{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*m = OneOrMany(many)
	return nil
}

// MarshalJSON preserves the compact form: a lone value is written as a
// plain string, everything else as an array.
func (m OneOrMany) MarshalJSON() ([]byte, error) {
	if len(m) == 1 {
		return json.Marshal(m[0])
	}
	return json.Marshal([]string(m))
}

// Contains reports whether v is a member of the set.
func (m OneOrMany) Contains(v string) bool {
	for _, item := range m {
		if item == v {
			return true
		}
	}
	return false
}
