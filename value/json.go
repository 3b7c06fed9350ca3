/*
File    : jqmix/value/json.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads exactly one JSON value from dec. Objects are built through
// Object.Set so their key order matches the order keys appeared in the
// source text — encoding/json's own map-based decoding loses that order,
// which is why this walks the token stream directly instead.
func Decode(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("value: bad number %q: %w", t.String(), err)
		}
		return Number(f), nil
	case string:
		return Str(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return nil, fmt.Errorf("value: unexpected JSON token %v", tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	elems := Array{}
	for dec.More() {
		v, err := Decode(dec)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return elems, nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("value: object key is not a string: %v", keyTok)
		}
		v, err := Decode(dec)
		if err != nil {
			return nil, err
		}
		obj = obj.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return obj, nil
}

// DecodeAll reads every whitespace-separated JSON value from r, in order.
// This is the shape the convenience Run function and the CLI driver read
// input in: one JSON document per logical value, jq-style.
func DecodeAll(r io.Reader) ([]Value, error) {
	dec := json.NewDecoder(r)
	var values []Value
	for {
		v, err := Decode(dec)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
