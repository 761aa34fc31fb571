package sound

import "io"

type SoundEmitter interface {
	MakeSound(w io.Writer) error
}
