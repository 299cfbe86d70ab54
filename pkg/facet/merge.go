package facet

import (
	"iter"
	"maps"
	"slices"
)

// Source is any flat name -> member mapping Merge can copy from.
type Source interface {
	Members() iter.Seq2[string, any]
}

// Target is a member set Merge can copy onto. Only *Namespace and *Prototype implement it.
type Target interface {
	Source
	owns(name string) bool
	inherit(name string, value any)
}

// Merge copies every member of every source onto target, in source order.
// A later source wins over an earlier one; a name defined directly on target is never
// overwritten. Nil sources are skipped. It returns target for chaining.
func Merge(target Target, sources ...Source) Target {
	for _, src := range sources {
		if src == nil {
			continue
		}
		for name, value := range src.Members() {
			if target.owns(name) {
				continue
			}
			target.inherit(name, value)
		}
	}
	return target
}

// Methods is a constructor-level method set.
type Methods map[string]Method

// Members iterates methods sorted by name.
func (m Methods) Members() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range slices.Sorted(maps.Keys(m)) {
			if !yield(name, m[name]) {
				return
			}
		}
	}
}

// Prototype is a named method set mixed into every namespace it instantiates.
// Merging onto a Prototype affects instances created afterwards only.
type Prototype struct {
	methods *Namespace
}

// NewPrototype returns a prototype whose methods are defined directly.
func NewPrototype(path string, methods Methods) *Prototype {
	p := &Prototype{methods: NewNamespace(path)}
	for name, fn := range methods.Members() {
		p.methods.Define(name, fn)
	}
	return p
}

// Define adds a method directly on the prototype.
func (p *Prototype) Define(name string, fn Method) *Prototype {
	p.methods.Define(name, fn)
	return p
}

// Path is the path given to instances.
func (p *Prototype) Path() string {
	if p == nil {
		return ""
	}
	return p.methods.Path()
}

// Instantiate builds a namespace carrying the prototype's methods plus fields.
// Fields are direct members of the instance; methods are inherited and may be shadowed.
func (p *Prototype) Instantiate(fields map[string]any) *Namespace {
	ns := NewNamespace(p.Path())
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		ns.Define(name, fields[name])
	}
	Merge(ns, p)
	return ns
}

func (p *Prototype) Members() iter.Seq2[string, any] {
	if p == nil {
		return func(func(string, any) bool) {}
	}
	return p.methods.Members()
}

func (p *Prototype) owns(name string) bool {
	return p.methods.owns(name)
}

func (p *Prototype) inherit(name string, value any) {
	p.methods.inherit(name, value)
}
