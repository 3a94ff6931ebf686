package spaces

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tessera-ai/spaces/errors"
)

func TestDescriptorJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		desc Descriptor
		json string
	}{
		{"binary", BinaryDescriptor(), `{"type":"binary"}`},
		{"discrete", DiscreteDescriptor(5), `{"type":"discrete","size":5}`},
		{"empty discrete", DiscreteDescriptor(0), `{"type":"discrete","size":0}`},
		{"naturals", NaturalsDescriptor(), `{"type":"naturals"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.desc)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			var back Descriptor
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.desc, back)
		})
	}
}

func TestDescriptorJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"missing type", `{"size":5}`, errors.ErrMissingField},
		{"duplicate type", `{"type":"binary","type":"binary"}`, errors.ErrDuplicateField},
		{"duplicate size", `{"type":"discrete","size":5,"size":6}`, errors.ErrDuplicateField},
		{"unknown field", `{"type":"discrete","size":5,"shape":1}`, errors.ErrUnknownField},
		{"unknown kind", `{"type":"interval"}`, errors.ErrUnknownKind},
		{"discrete without size", `{"type":"discrete"}`, errors.ErrMissingField},
		{"binary with size", `{"type":"binary","size":2}`, errors.ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Descriptor
			err := json.Unmarshal([]byte(tt.data), &d)
			assert.True(t, errors.Is(err, tt.want), "err = %v, want %v", err, tt.want)
		})
	}
}

func TestDescriptorYAML(t *testing.T) {
	desc := DiscreteDescriptor(9)

	data, err := yaml.Marshal(desc)
	require.NoError(t, err)

	var back Descriptor
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, desc, back)

	var bad Descriptor
	err = yaml.Unmarshal([]byte("type: discrete\nshape: 1\n"), &bad)
	assert.True(t, errors.Is(err, errors.ErrUnknownField), "err = %v", err)

	err = yaml.Unmarshal([]byte("type: interval\n"), &bad)
	assert.True(t, errors.Is(err, errors.ErrUnknownKind), "err = %v", err)
}

func TestDescriptorSummary(t *testing.T) {
	sum, err := DiscreteDescriptor(4).Summary()
	require.NoError(t, err)
	assert.Equal(t, Summary{Kind: KindDiscrete, Dim: One, Card: Finite(4), Inf: "0", Sup: "3"}, sum)

	sum, err = BinaryDescriptor().Summary()
	require.NoError(t, err)
	assert.Equal(t, Summary{Kind: KindBinary, Dim: One, Card: Finite(2), Inf: "false", Sup: "true"}, sum)

	sum, err = NaturalsDescriptor().Summary()
	require.NoError(t, err)
	assert.Equal(t, Summary{Kind: KindNaturals, Dim: One, Card: Infinite, Inf: "0", Sup: ""}, sum)

	// Empty discrete: both bounds absent.
	sum, err = DiscreteDescriptor(0).Summary()
	require.NoError(t, err)
	assert.Empty(t, sum.Inf)
	assert.Empty(t, sum.Sup)

	_, err = Descriptor{Kind: "interval"}.Summary()
	assert.True(t, errors.Is(err, errors.ErrUnknownKind), "err = %v", err)
}

func TestDescriptorReconstruction(t *testing.T) {
	d := DiscreteDescriptor(6).Discrete()
	assert.True(t, d.Equal(NewDiscrete(6)))
}
