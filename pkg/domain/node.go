package domain

import "reflect"

// Tagged is anything carrying a discriminant: a Node, or a bare Kind.
type Tagged interface {
	Tag() Kind
}

// Visitor is invoked by Node.Walk with the node itself.
type Visitor func(Node) any

// Node represents one member of the tagged union.
// The set of implementations is closed to types embedding Header.
type Node interface {
	Tagged
	// N1 is an identifying value, constant per concrete type.
	N1() int
	// N2 is variant-specific; ok is false when the variant leaves it absent.
	N2() (int, bool)
	// Walk calls v exactly once with the node and returns its result.
	Walk(v Visitor) any

	sealed()
}

// Header holds the discriminant shared by every variant.
// Variants defined outside this package embed it to satisfy Node.
// The tag has no setter; reassigning a node's whole Header breaks the tag contract.
type Header struct {
	k Kind
}

// NewHeader fixes the tag of a node under construction.
func NewHeader(k Kind) Header {
	return Header{k: k}
}

// Tag returns the discriminant fixed by NewHeader.
func (h Header) Tag() Kind { return h.k }

func (Header) sealed() {}

// Absent reports whether t is nil or a typed nil pointer.
func Absent(t Tagged) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// TagOf returns the tag of t, or KindUnknown when t is absent.
func TagOf(t Tagged) Kind {
	if Absent(t) {
		return KindUnknown
	}
	return t.Tag()
}

// Truthy decides whether a walk result stops a find-first traversal.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x != ""
	case Kind:
		return x != KindUnknown
	case Tagged:
		return !Absent(x)
	case interface{ Len() int }:
		return x.Len() > 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return false
		}
		if rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice {
			return rv.Len() > 0
		}
		return true
	}
	return !rv.IsZero()
}
