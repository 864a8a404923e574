// Package reactive implements the callback wiring between input widgets and
// output slots. Each output owns a pure update function and an ordered list
// of the inputs it depends on; the host invokes the function with the
// inputs' current values whenever any of them changes.
package reactive

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"
)

// Registration errors.
var (
	ErrDuplicateOutput = errors.New("output already registered")
	ErrNoInputs        = errors.New("callback must depend on at least one input")
	ErrUnknownOutput   = errors.New("unknown output")
)

// State holds the current value of each input widget keyed by widget ID.
type State map[string]any

// UpdateFunc computes an output value from input values, passed in the
// order the inputs were declared.
type UpdateFunc func(values ...any) (any, error)

// Update is the new value of an output slot.
type Update struct {
	Output string
	Value  any
}

type callback struct {
	output string
	inputs []string
	fn     UpdateFunc
}

// Host dispatches input changes to registered callbacks.
type Host struct {
	mu        sync.Mutex
	callbacks []callback
	outputs   map[string]int
	observers []Observer
}

// Observer is notified after each callback invocation.
type Observer func(output string, err error)

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{outputs: make(map[string]int)}
}

// Register declares fn as the update function of output, depending on the
// given inputs.
func (h *Host) Register(output string, inputs []string, fn UpdateFunc) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(inputs) == 0 {
		return fmt.Errorf("%s: %w", output, ErrNoInputs)
	}
	if _, ok := h.outputs[output]; ok {
		return fmt.Errorf("%s: %w", output, ErrDuplicateOutput)
	}

	h.outputs[output] = len(h.callbacks)
	h.callbacks = append(h.callbacks, callback{
		output: output,
		inputs: slices.Clone(inputs),
		fn:     fn,
	})
	return nil
}

// Observe adds an observer of callback invocations.
func (h *Host) Observe(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, o)
}

// Outputs returns the registered output IDs in registration order.
func (h *Host) Outputs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.callbacks))
	for i, cb := range h.callbacks {
		out[i] = cb.output
	}
	return out
}

// Inputs returns the declared inputs of output.
func (h *Host) Inputs(output string) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i, ok := h.outputs[output]
	if !ok {
		return nil, fmt.Errorf("%s: %w", output, ErrUnknownOutput)
	}
	return slices.Clone(h.callbacks[i].inputs), nil
}

// affected returns the callbacks depending on any of the changed inputs, in
// registration order. With no changed inputs every callback is affected.
func (h *Host) affected(changed []string) []callback {
	if len(changed) == 0 {
		return slices.Clone(h.callbacks)
	}
	var out []callback
	for _, cb := range h.callbacks {
		for _, in := range cb.inputs {
			if slices.Contains(changed, in) {
				out = append(out, cb)
				break
			}
		}
	}
	return out
}

// Dispatch invokes every callback affected by the changed inputs with the
// values from state and returns their results in registration order. Inputs
// missing from state are passed as nil. Dispatches are serialized.
func (h *Host) Dispatch(state State, changed ...string) ([]Update, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var updates []Update
	for _, cb := range h.affected(changed) {
		values := make([]any, len(cb.inputs))
		for i, in := range cb.inputs {
			values[i] = state[in]
		}

		v, err := cb.fn(values...)
		for _, o := range h.observers {
			o(cb.output, err)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cb.output, err)
		}
		updates = append(updates, Update{Output: cb.output, Value: v})
	}
	return updates, nil
}

// Diff returns the sorted IDs of inputs whose values differ between prev
// and next.
func Diff(prev, next State) []string {
	keys := make(map[string]struct{})
	for k := range prev {
		keys[k] = struct{}{}
	}
	for k := range next {
		keys[k] = struct{}{}
	}

	var changed []string
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		a, okA := prev[k]
		b, okB := next[k]
		if okA != okB || !reflect.DeepEqual(a, b) {
			changed = append(changed, k)
		}
	}
	return changed
}
