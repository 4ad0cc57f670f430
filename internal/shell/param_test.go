package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntParam_Parse(t *testing.T) {
	tests := []struct {
		name     string
		param    *IntParam
		input    string
		expected int
		wantErr  error
		errMsg   string
	}{
		{
			name:     "within bounds",
			param:    NewIntParam("n", WithMin(1), WithMax(10)),
			input:    "5",
			expected: 5,
		},
		{
			name:     "equal to minimum",
			param:    NewIntParam("n", WithMin(1), WithMax(10)),
			input:    "1",
			expected: 1,
		},
		{
			name:     "equal to maximum",
			param:    NewIntParam("n", WithMin(1), WithMax(10)),
			input:    "10",
			expected: 10,
		},
		{
			name:     "unbounded negative",
			param:    NewIntParam("n"),
			input:    "-42",
			expected: -42,
		},
		{
			name:    "below minimum",
			param:   NewIntParam("n", WithMin(1)),
			input:   "0",
			wantErr: ErrBelowMinimum,
			errMsg:  "expected number to be at least 1",
		},
		{
			name:    "above maximum",
			param:   NewIntParam("n", WithMax(10)),
			input:   "11",
			wantErr: ErrAboveMaximum,
			errMsg:  "expected number to be at most 10",
		},
		{
			name:    "not a number",
			param:   NewIntParam("n", WithMin(1), WithMax(10)),
			input:   "abc",
			wantErr: ErrInvalidFormat,
			errMsg:  "expected integer",
		},
		{
			name:    "float is not an integer",
			param:   NewIntParam("n"),
			input:   "1.5",
			wantErr: ErrInvalidFormat,
			errMsg:  "expected integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.param.Parse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Equal(t, tt.errMsg, err.Error())
				var parseErr *ParseError
				assert.True(t, errors.As(err, &parseErr))
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestIntParam_Constraints(t *testing.T) {
	assert.Equal(t, "int", NewIntParam("n").Constraints())
	assert.Equal(t, "int from 1", NewIntParam("n", WithMin(1)).Constraints())
	assert.Equal(t, "int to 50", NewIntParam("n", WithMax(50)).Constraints())
	assert.Equal(t, "int from 1 to 50", NewIntParam("n", WithMin(1), WithMax(50)).Constraints())
}

func TestStringParam(t *testing.T) {
	p := NewStringParam("table_name")

	assert.Equal(t, "table_name", p.Name())
	assert.False(t, p.Optional())
	assert.Equal(t, "string", p.Constraints())

	v, err := p.Parse("anything at all")
	require.NoError(t, err)
	assert.Equal(t, "anything at all", v)

	assert.True(t, NewStringParam("filter", AsOptional()).Optional())
}

func TestParameterOptionsAreIndependent(t *testing.T) {
	bound := WithMin(3)
	a := NewIntParam("a", bound)
	b := NewIntParam("b", bound, WithMax(4))

	assert.Equal(t, "int from 3", a.Constraints())
	assert.Equal(t, "int from 3 to 4", b.Constraints())
}
