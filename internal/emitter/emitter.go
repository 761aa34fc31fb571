package emitter

import (
	"fmt"
	"io"
)

// Fixed output text of each variant.
const (
	GenericSound = "Generic sound"
	DogSound     = "Woof"
	CatSound     = "Meow"
)

// SoundEmitter is the capability every variant implements.
// MakeSound writes exactly one line to w.
type SoundEmitter interface {
	MakeSound(w io.Writer) error
}

// Generic is the default variant.
type Generic struct{}

func (Generic) MakeSound(w io.Writer) error {
	return writeLine(w, GenericSound)
}

// Dog embeds Generic and shadows its MakeSound.
type Dog struct {
	Generic
}

func (Dog) MakeSound(w io.Writer) error {
	return writeLine(w, DogSound)
}

// Cat embeds Generic and shadows its MakeSound.
type Cat struct {
	Generic
}

func (Cat) MakeSound(w io.Writer) error {
	return writeLine(w, CatSound)
}

// Compile-time checks.
var (
	_ SoundEmitter = Generic{}
	_ SoundEmitter = Dog{}
	_ SoundEmitter = Cat{}
)

// EmitAll calls MakeSound on each emitter in order, stopping at the first failure.
func EmitAll(w io.Writer, emitters ...SoundEmitter) error {
	for i, e := range emitters {
		if err := e.MakeSound(w); err != nil {
			return fmt.Errorf("emitter %d (%T): %w", i, e, err)
		}
	}
	return nil
}

func writeLine(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fmt.Errorf("writing %q: %w", text, err)
	}
	return nil
}
