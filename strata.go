package strata

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/aretw0/strata/pkg/composite"
	"github.com/aretw0/strata/pkg/frame"
)

// Version is the library version reported by the CLI.
const Version = "0.1.0"

// ErrUnknownStep is returned when a stage name is not part of the chain.
var ErrUnknownStep = errors.New("unknown chain step")

// Stages lists the chain steps in the order they are applied.
var Stages = []string{
	frame.StepIs,
	frame.StepGet,
	frame.StepMake,
	frame.StepNode,
	composite.Step,
}

// Option defines a functional option for building a chain.
type Option = frame.Option

// WithLogger sets the structured logger used to trace chain steps.
func WithLogger(logger *slog.Logger) Option {
	return frame.WithLogger(logger)
}

// WithHooks registers observability hooks called after each step.
func WithHooks(h frame.Hooks) Option {
	return frame.WithHooks(h)
}

// WithFlip presets the session flag.
func WithFlip(v bool) Option {
	return frame.WithFlip(v)
}

// New builds the full chain, composite kinds included.
func New(opts ...Option) *composite.Frame {
	s := frame.NewSettings(opts...)
	f := composite.NewFrame(frame.ChainWith(s))
	s.Observe(composite.Step, f.Frame)
	return f
}

// Build runs the chain up to and including stage and returns that stage.
// Every stage satisfies frame.IsCapable; callers type-assert for wider capabilities.
func Build(stage string, opts ...Option) (frame.IsCapable, error) {
	if !slices.Contains(Stages, stage) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, stage)
	}
	s := frame.NewSettings(opts...)

	is := frame.NewIs(s.Base())
	s.Observe(frame.StepIs, is.Frame)
	if stage == frame.StepIs {
		return is, nil
	}

	get := frame.NewGet(is)
	s.Observe(frame.StepGet, get.Frame)
	if stage == frame.StepGet {
		return get, nil
	}

	mk := frame.NewMake(get)
	s.Observe(frame.StepMake, mk.Frame)
	if stage == frame.StepMake {
		return mk, nil
	}

	node := frame.NewNode(mk)
	s.Observe(frame.StepNode, node.Frame)
	if stage == frame.StepNode {
		return node, nil
	}

	full := composite.NewFrame(node)
	s.Observe(composite.Step, full.Frame)
	return full, nil
}
