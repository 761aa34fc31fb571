package animals

import "io"

type Cat struct{}

func (Cat) MakeSound(w io.Writer) error {
	_, err := io.WriteString(w, "Meow\n")
	return err
}
