package reactive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(values ...any) (any, error) {
	return values, nil
}

func newTestHost(t *testing.T) *Host {
	t.Helper()

	h := NewHost()
	require.NoError(t, h.Register("pie", []string{"site"}, echo))
	require.NoError(t, h.Register("scatter", []string{"site", "payload"}, echo))
	return h
}

func TestRegister_Errors(t *testing.T) {
	h := newTestHost(t)

	err := h.Register("pie", []string{"site"}, echo)
	assert.ErrorIs(t, err, ErrDuplicateOutput)

	err = h.Register("empty", nil, echo)
	assert.ErrorIs(t, err, ErrNoInputs)

	assert.Equal(t, []string{"pie", "scatter"}, h.Outputs())
}

func TestInputs(t *testing.T) {
	h := newTestHost(t)

	inputs, err := h.Inputs("scatter")
	require.NoError(t, err)
	assert.Equal(t, []string{"site", "payload"}, inputs)

	_, err = h.Inputs("missing")
	assert.ErrorIs(t, err, ErrUnknownOutput)
}

func TestDispatch_AffectedOutputs(t *testing.T) {
	h := newTestHost(t)

	tests := []struct {
		name    string
		changed []string
		want    []string
	}{
		{"initial render", nil, []string{"pie", "scatter"}},
		{"site changed", []string{"site"}, []string{"pie", "scatter"}},
		{"payload changed", []string{"payload"}, []string{"scatter"}},
		{"unrelated input", []string{"theme"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updates, err := h.Dispatch(State{"site": "A"}, tt.changed...)
			require.NoError(t, err)

			var got []string
			for _, u := range updates {
				got = append(got, u.Output)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatch_PassesValuesPositionally(t *testing.T) {
	h := newTestHost(t)

	updates, err := h.Dispatch(State{"site": "A", "payload": [2]float64{0, 1000}}, "payload")
	require.NoError(t, err)
	require.Len(t, updates, 1)

	assert.Equal(t, "scatter", updates[0].Output)
	assert.Equal(t, []any{"A", [2]float64{0, 1000}}, updates[0].Value)
}

func TestDispatch_MissingInputIsNil(t *testing.T) {
	h := newTestHost(t)

	updates, err := h.Dispatch(State{})
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, []any{nil}, updates[0].Value)
	assert.Equal(t, []any{nil, nil}, updates[1].Value)
}

func TestDispatch_CallbackError(t *testing.T) {
	boom := errors.New("boom")
	h := NewHost()
	require.NoError(t, h.Register("broken", []string{"site"}, func(...any) (any, error) {
		return nil, boom
	}))

	var observed []string
	h.Observe(func(output string, err error) {
		if err != nil {
			observed = append(observed, output)
		}
	})

	_, err := h.Dispatch(State{"site": "A"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"broken"}, observed)
}

func TestDiff(t *testing.T) {
	prev := State{"site": "All", "payload": [2]float64{0, 9600}}

	assert.Empty(t, Diff(prev, State{"site": "All", "payload": [2]float64{0, 9600}}))
	assert.Equal(t, []string{"site"}, Diff(prev, State{"site": "KSC", "payload": [2]float64{0, 9600}}))
	assert.Equal(t, []string{"payload", "site"}, Diff(prev, State{"site": "KSC"}))
}
