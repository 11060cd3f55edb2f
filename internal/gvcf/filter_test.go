package gvcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomelab/vcf2gvcf/internal/vcf"
)

func TestEvaluator_Callable(t *testing.T) {
	e := Evaluator{MinGQ: 30, MinDP: 10}

	tests := []struct {
		name string
		rec  *vcf.Record
		want bool
	}{
		{"passing ref call", refCallQual("1", 100, 24, 69), true},
		{"gq below minimum", refCallQual("1", 100, 24, 10), false},
		{"gq at minimum", refCallQual("1", 100, 24, 30), true},
		{"dp below minimum", refCallQual("1", 100, 5, 69), false},
		{"dp at minimum", refCallQual("1", 100, 10, 69), true},
		{"variant candidate passes regardless", variantCall("1", 100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Callable(tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluator_NReference(t *testing.T) {
	e := Evaluator{}

	r := refCall("1", 100)
	r.Ref = "N"

	callable, err := e.Callable(r)
	require.NoError(t, err)
	assert.False(t, callable, "an N reference site is never callable")
}

func TestEvaluator_MissingValuesEnforceNothing(t *testing.T) {
	e := Evaluator{MinGQ: 30, MinDP: 10}

	tests := []struct {
		name   string
		format string
		sample string
	}{
		{"no gq or dp keys", "GT", "0/0"},
		{"dot gq", "GT:GQ", "0/0:."},
		{"unparseable gq", "GT:GQ", "0/0:high"},
		{"unparseable dp", "GT:DP", "0/0:n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := refCall("1", 100)
			r.Format = tt.format
			r.Sample = tt.sample

			callable, err := e.Callable(r)
			require.NoError(t, err)
			assert.True(t, callable)
		})
	}
}

func TestEvaluator_ZeroThresholdsPermissive(t *testing.T) {
	e := Evaluator{}

	callable, err := e.Callable(refCallQual("1", 100, 0, 0))
	require.NoError(t, err)
	assert.True(t, callable)
}

func TestEvaluator_ArityErrorPropagates(t *testing.T) {
	e := Evaluator{}

	r := refCall("1", 100)
	r.Format = "GT:DP:GQ"
	r.Sample = "0/0:24"
	r.Line = 17

	_, err := e.Callable(r)
	var arity *vcf.CallArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, 17, arity.Line)
}

func TestEvaluator_Idempotent(t *testing.T) {
	e := Evaluator{MinGQ: 30}
	r := refCallQual("1", 100, 24, 10)
	before := r.String()

	first, err := e.Callable(r)
	require.NoError(t, err)
	second, err := e.Callable(r)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, r.String(), "evaluation must not modify the record")
}
