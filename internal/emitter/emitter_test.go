package emitter

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestDogThroughInterface(t *testing.T) {
	var e SoundEmitter = Dog{}
	var buf bytes.Buffer
	require.NoError(t, e.MakeSound(&buf))
	assert.Equal(t, "Woof\n", buf.String())
	assert.NotContains(t, buf.String(), GenericSound)
}

func TestGenericThroughInterface(t *testing.T) {
	var e SoundEmitter = Generic{}
	var buf bytes.Buffer
	require.NoError(t, e.MakeSound(&buf))
	assert.Equal(t, "Generic sound\n", buf.String())
}

func TestEmbeddedGenericStillReachable(t *testing.T) {
	// The promoted method is shadowed, not removed.
	d := Dog{}
	var buf bytes.Buffer
	require.NoError(t, d.Generic.MakeSound(&buf))
	assert.Equal(t, "Generic sound\n", buf.String())
}

func TestGenericThenDog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitAll(&buf, Generic{}, Dog{}))
	assert.Equal(t, "Generic sound\nWoof\n", buf.String())
}

func TestCatDoesNotChangeOtherVariants(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitAll(&buf, Cat{}, Generic{}, Dog{}, Cat{}))
	assert.Equal(t, "Meow\nGeneric sound\nWoof\nMeow\n", buf.String())
}

func TestRepeatedCallsSameInstance(t *testing.T) {
	var e SoundEmitter = Dog{}
	var buf bytes.Buffer
	for i := 0; i < 5; i++ {
		require.NoError(t, e.MakeSound(&buf))
	}
	assert.Equal(t, strings.Repeat("Woof\n", 5), buf.String())
}

func TestMakeSound_WriteError(t *testing.T) {
	boom := errors.New("broken pipe")
	err := Dog{}.MakeSound(failingWriter{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"Woof"`)
}

func TestEmitAll_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("closed")
	err := EmitAll(failingWriter{err: boom}, Generic{}, Dog{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "emitter 0 (emitter.Generic)")
}

func TestEmitAll_NoEmitters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitAll(&buf))
	assert.Empty(t, buf.String())
}

func TestConcurrentEmitters(t *testing.T) {
	emitters := []SoundEmitter{Generic{}, Dog{}, Cat{}}
	want := []string{"Generic sound\n", "Woof\n", "Meow\n"}

	var wg sync.WaitGroup
	bufs := make([]bytes.Buffer, 30)
	for i := range bufs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, emitters[i%3].MakeSound(&bufs[i]))
		}(i)
	}
	wg.Wait()

	for i := range bufs {
		assert.Equal(t, want[i%3], bufs[i].String(), "buffer %d", i)
	}
}
