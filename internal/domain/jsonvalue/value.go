// Package jsonvalue holds an order-preserving JSON tree.
//
// Values are decoded with the standard library's token stream so that object
// members keep the order they appeared in the source text. Number literals are
// kept verbatim.
package jsonvalue

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind is the runtime type of a JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	b       bool
	s       string
	items   []Value
	members *orderedmap.OrderedMap[string, Value]
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a number value holding the given literal.
func Number(literal string) Value { return Value{kind: KindNumber, s: literal} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array of the given items.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

// Object returns an object with the given members in order.
// A repeated key keeps its first position and takes the last value.
func Object(members ...Member) Value {
	m := orderedmap.New[string, Value]()
	for _, member := range members {
		m.Set(member.Key, member.Value)
	}
	return Value{kind: KindObject, members: m}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsContainer reports whether v is an array or object.
func (v Value) IsContainer() bool {
	return v.kind == KindArray || v.kind == KindObject
}

// Bool returns the boolean payload. It is false for other kinds.
func (v Value) Bool() bool { return v.b }

// Text returns the string payload or the number literal.
func (v Value) Text() string { return v.s }

// Len returns the number of items or members. Scalars have length 0.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		if v.members == nil {
			return 0
		}
		return v.members.Len()
	default:
		return 0
	}
}

// Items returns the elements of an array.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Members returns the members of an object in insertion order.
func (v Value) Members() []Member {
	if v.kind != KindObject || v.members == nil {
		return nil
	}
	out := make([]Member, 0, v.members.Len())
	for pair := v.members.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Member{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Get looks up an object member by key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject || v.members == nil {
		return Value{}, false
	}
	return v.members.Get(key)
}
