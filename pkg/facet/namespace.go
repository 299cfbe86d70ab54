package facet

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Method is a behavior stored in a namespace. recv is the namespace the call goes through.
type Method func(recv *Namespace, args ...any) any

type member struct {
	value  any
	direct bool
}

// Namespace is a named, ordered set of members.
type Namespace struct {
	path    string
	members *orderedmap.OrderedMap[string, member]
}

// NewNamespace returns an empty namespace addressed by path (e.g. "is", "node.get").
func NewNamespace(path string) *Namespace {
	return &Namespace{
		path:    path,
		members: orderedmap.New[string, member](),
	}
}

// Path returns the address of the namespace within a frame.
func (ns *Namespace) Path() string {
	if ns == nil {
		return ""
	}
	return ns.path
}

// Define sets a member directly on ns. Direct members win over anything Merge brings in.
func (ns *Namespace) Define(name string, value any) *Namespace {
	ns.members.Set(name, member{value: value, direct: true})
	return ns
}

// Set is Define for data fields.
func (ns *Namespace) Set(name string, value any) *Namespace {
	return ns.Define(name, value)
}

// Lookup returns the member stored under name.
func (ns *Namespace) Lookup(name string) (any, bool) {
	if ns == nil {
		return nil, false
	}
	m, ok := ns.members.Get(name)
	return m.value, ok
}

// Method returns the member under name when it is callable.
func (ns *Namespace) Method(name string) (Method, bool) {
	v, ok := ns.Lookup(name)
	if !ok {
		return nil, false
	}
	fn, ok := v.(Method)
	return fn, ok
}

// Field returns the member under name when it is a data field.
func (ns *Namespace) Field(name string) (any, bool) {
	v, ok := ns.Lookup(name)
	if !ok {
		return nil, false
	}
	if _, isMethod := v.(Method); isMethod {
		return nil, false
	}
	return v, true
}

// Has reports whether name is defined, directly or through Merge.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.Lookup(name)
	return ok
}

// Direct reports whether name was defined directly on ns.
func (ns *Namespace) Direct(name string) bool {
	return ns.owns(name)
}

// Call invokes the method under name with ns as receiver.
// ok is false when name is missing or is not a method.
func (ns *Namespace) Call(name string, args ...any) (any, bool) {
	fn, ok := ns.Method(name)
	if !ok {
		return nil, false
	}
	return fn(ns, args...), true
}

// Names lists member names in definition order.
func (ns *Namespace) Names() []string {
	var names []string
	for name := range ns.Members() {
		names = append(names, name)
	}
	return names
}

// Len is the number of members.
func (ns *Namespace) Len() int {
	if ns == nil {
		return 0
	}
	return ns.members.Len()
}

// Members iterates name/member pairs in definition order.
func (ns *Namespace) Members() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if ns == nil {
			return
		}
		for pair := ns.members.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value.value) {
				return
			}
		}
	}
}

func (ns *Namespace) owns(name string) bool {
	if ns == nil {
		return false
	}
	m, ok := ns.members.Get(name)
	return ok && m.direct
}

func (ns *Namespace) inherit(name string, value any) {
	ns.members.Set(name, member{value: value})
}
