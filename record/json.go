package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON emits the record as a JSON object with fields in record
// order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var marshalErr error
	r.ForEach(func(v any, field string) {
		if marshalErr != nil {
			return
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fieldJSON, err := json.Marshal(field)
		if err != nil {
			marshalErr = err
			return
		}
		valueJSON, err := json.Marshal(v)
		if err != nil {
			marshalErr = err
			return
		}
		buf.Write(fieldJSON)
		buf.WriteByte(':')
		buf.Write(valueJSON)
	})
	if marshalErr != nil {
		return nil, marshalErr
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the record from a JSON object, preserving the
// document's field order. Nested objects decode as *Record, arrays as
// []any.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	rec, err := decodeObject(dec)
	if err != nil {
		return err
	}
	*r = *rec
	return nil
}

func decodeObject(dec *json.Decoder) (*Record, error) {
	r := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		field := tok.(string)
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		r.Set(field, v)
	}
	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		arr := make([]any, 0)
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}
