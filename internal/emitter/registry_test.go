package emitter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KnownNames(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"generic", "Generic sound\n"},
		{"dog", "Woof\n"},
		{"cat", "Meow\n"},
		{"  DOG ", "Woof\n"},
		{"Cat", "Meow\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.name)
			require.NoError(t, err)
			var buf bytes.Buffer
			require.NoError(t, e.MakeSound(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNew_ConcreteTypes(t *testing.T) {
	e, err := New("dog")
	require.NoError(t, err)
	assert.IsType(t, Dog{}, e)

	e, err = New("generic")
	require.NoError(t, err)
	assert.IsType(t, Generic{}, e)
}

func TestNew_Unknown(t *testing.T) {
	e, err := New("cow")
	require.Error(t, err)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Contains(t, err.Error(), `"cow"`)
	assert.Contains(t, err.Error(), "cat, dog, generic")
}

func TestNew_Empty(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"cat", "dog", "generic"}, Names())
}
