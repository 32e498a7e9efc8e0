package selftrack

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalState encodes the aggregate in its persisted JSON form.
func MarshalState(s AppState) ([]byte, error) {
	return json.Marshal(s.Clone())
}

// UnmarshalState decodes a persisted aggregate. Any decoding or validation
// failure is reported as ErrCorrupt.
func UnmarshalState(data []byte) (AppState, error) {
	if err := ValidateJSON(data); err != nil {
		return AppState{}, err
	}
	var s AppState
	if err := json.Unmarshal(data, &s); err != nil {
		return AppState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return s.Clone(), nil
}

// EncodeState writes the aggregate as indented JSON into w.
func EncodeState(w io.Writer, s AppState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(s.Clone())
}

// DecodeState reads an aggregate in JSON from r.
func DecodeState(r io.Reader) (AppState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return AppState{}, err
	}
	return UnmarshalState(data)
}

// EncodeYAML writes the aggregate as YAML into w.
func EncodeYAML(w io.Writer, s AppState) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Clone()); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeYAML reads an aggregate in YAML from r. It is checked exactly like
// the JSON form, see UnmarshalState.
func DecodeYAML(r io.Reader) (AppState, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return AppState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return AppState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return UnmarshalState(data)
}
