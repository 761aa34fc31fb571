package emitters

import (
	"fmt"
	"io"
)

type SoundEmitter interface {
	MakeSound(w io.Writer) error
}

type Generic struct{}

func (Generic) MakeSound(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Generic sound")
	return err
}

type Dog struct{ Generic }

func (Dog) MakeSound(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Woof")
	return err
}

// Puppy only gets MakeSound by promotion from Generic.
type Puppy struct{ Generic }

type Robot struct{ model string }

func (r *Robot) MakeSound(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Beep", r.model)
	return err
}

type kitten struct{}

func (kitten) MakeSound(w io.Writer) error {
	_, err := fmt.Fprintln(w, "mew")
	return err
}

type Fish struct{} // no MakeSound

// Parrot has a MakeSound method with the wrong signature.
type Parrot struct{}

func (Parrot) MakeSound() string { return "Hello" }
