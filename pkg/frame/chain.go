package frame

import (
	"io"
	"log/slog"
)

// Step names reported to hooks and logs.
const (
	StepIs   = "is"
	StepGet  = "get"
	StepMake = "make"
	StepNode = "node"
)

// Hooks are notified as a chain is built.
type Hooks struct {
	// OnStep is called after each step with the frame it produced.
	OnStep func(step string, f *Frame)
}

// Settings carries the ambient configuration of a chain build.
type Settings struct {
	Logger *slog.Logger
	Hooks  []Hooks
	Flip   *bool
}

// Option defines a functional option for building a chain.
type Option func(*Settings)

// WithLogger sets the structured logger used to trace chain steps.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Settings) {
		s.Logger = logger
	}
}

// WithHooks registers step hooks. It can be given more than once.
func WithHooks(h Hooks) Option {
	return func(s *Settings) {
		s.Hooks = append(s.Hooks, h)
	}
}

// WithFlip presets the session flag of the base frame.
func WithFlip(v bool) Option {
	return func(s *Settings) {
		s.Flip = &v
	}
}

// NewSettings applies opts over the defaults (discarding logger, no hooks).
func NewSettings(opts ...Option) *Settings {
	s := &Settings{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Base returns the base frame with the session prepared from the settings.
func (s *Settings) Base() *Frame {
	f := New()
	if s.Flip != nil {
		f.Session().SetFlip(*s.Flip)
	}
	return f
}

// Observe reports a completed step to the logger and hooks.
func (s *Settings) Observe(step string, f *Frame) {
	s.Logger.Debug("chain step applied", "step", step, "namespaces", f.Paths())
	for _, h := range s.Hooks {
		if h.OnStep != nil {
			h.OnStep(step, f)
		}
	}
}

// Chain runs every step of this package in order and returns the last stage.
func Chain(opts ...Option) *NodeFrame {
	s := NewSettings(opts...)
	return ChainWith(s)
}

// ChainWith is Chain with prepared settings.
func ChainWith(s *Settings) *NodeFrame {
	is := NewIs(s.Base())
	s.Observe(StepIs, is.Frame)

	get := NewGet(is)
	s.Observe(StepGet, get.Frame)

	mk := NewMake(get)
	s.Observe(StepMake, mk.Frame)

	node := NewNode(mk)
	s.Observe(StepNode, node.Frame)

	return node
}
