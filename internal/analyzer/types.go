package analyzer

// Variant is a named type that satisfies the inspected interface.
type Variant struct {
	Name       string
	PkgPath    string
	PkgName    string
	Interface  string // package-qualified interface name, e.g. "emitter.SoundEmitter"
	ViaPointer bool   // true if only *T (not T) satisfies the interface
	Inherited  bool   // true if an interface method is promoted from an embedded field
	SourceFile string
}

// Interface is an interface whose name matched Options.Interface.
type Interface struct {
	Name       string // package-qualified, e.g. "emitter.SoundEmitter"
	PkgPath    string
	Methods    []string // method signatures, e.g. "MakeSound(io.Writer) error"
	SourceFile string
}

// Result holds the matched interfaces and the discovered variants.
type Result struct {
	Interfaces []Interface
	Variants   []Variant
}

// Options controls variant discovery.
type Options struct {
	Interface         string // interface name to match; defaults to DefaultInterface
	IncludeUnexported bool
}

// DefaultInterface is the capability name looked up when Options.Interface is empty.
const DefaultInterface = "SoundEmitter"
