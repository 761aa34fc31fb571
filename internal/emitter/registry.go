package emitter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownVariant is returned by New for names that are not registered.
var ErrUnknownVariant = errors.New("unknown variant")

var constructors = map[string]func() SoundEmitter{
	"generic": func() SoundEmitter { return Generic{} },
	"dog":     func() SoundEmitter { return Dog{} },
	"cat":     func() SoundEmitter { return Cat{} },
}

// New returns the variant registered under name. Matching ignores case and
// surrounding whitespace.
func New(name string) (SoundEmitter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	ctor, ok := constructors[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownVariant, name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names returns the registered variant names, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
