package jsonvalue

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bnema/jsonpeek/internal/domain/entity"
)

var errTrailingData = errors.New("unexpected non-whitespace character after JSON data")

// Parse decodes text into a Value. Errors are *entity.ParseError.
func Parse(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, newParseError(dec, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return Value{}, newParseError(dec, err)
	}

	return v, nil
}

// Valid reports whether text parses. It returns the same error Parse would.
func Valid(text string) error {
	_, err := Parse(text)
	return err
}

func newParseError(dec *json.Decoder, err error) *entity.ParseError {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	offset := dec.InputOffset()
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		offset = syntaxErr.Offset
	}
	return &entity.ParseError{Offset: offset, Err: err}
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return parseArray(dec)
		case '{':
			return parseObject(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
		}
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(string(t)), nil
	case string:
		return String(t), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseArray(dec *json.Decoder) (Value, error) {
	items := make([]Value, 0)
	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Array(items...), nil
}

func parseObject(dec *json.Decoder) (Value, error) {
	members := orderedmap.New[string, Value]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", tok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		members.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindObject, members: members}, nil
}
