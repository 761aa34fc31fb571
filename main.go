package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olehluchkiv/woof/internal/analyzer"
	"github.com/olehluchkiv/woof/internal/diagram"
	"github.com/olehluchkiv/woof/internal/emitter"
	"github.com/olehluchkiv/woof/internal/logging"
)

func main() {
	// With no arguments this binds a Dog to a SoundEmitter handle and prints "Woof".
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, emits the selected variants to stdout and returns the
// process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// Go's default flag.Parse stops at the first non-flag argument, which
	// breaks "woof dog -count 3". We reorder args so flags come first.
	flags, positional := reorderArgs(args)

	fs := flag.NewFlagSet("woof", flag.ContinueOnError)
	fs.SetOutput(stderr)
	count := fs.Int("count", 1, "number of times each variant makes its sound")
	list := fs.Bool("list", false, "list registered variant names and exit")
	inspect := fs.String("inspect", "", "list Go types under this directory that implement the emitter interface")
	iface := fs.String("interface", analyzer.DefaultInterface, "interface name matched by -inspect")
	includeUnexported := fs.Bool("include-unexported", false, "include unexported types in -inspect output")
	format := fs.String("format", formatText, "-inspect output format (text, mermaid)")
	logFile := fs.String("log-file", "", "also write logs to this file")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		return 1
	}
	positional = append(positional, fs.Args()...)

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if err := checkModes(set, *list, *inspect, positional, *format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid log level %q: %v\n", *logLevel, err)
		return 1
	}

	logger, logCleanup, err := logging.Setup(stderr, *logFile, level)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to setup logging: %v\n", err)
		return 1
	}
	defer logCleanup()

	if *count < 0 {
		fmt.Fprintf(stderr, "Invalid -count %d: must not be negative\n", *count)
		return 1
	}

	switch {
	case *list:
		for _, name := range emitter.Names() {
			if _, err := fmt.Fprintln(stdout, name); err != nil {
				logger.Error("failed to write output", "error", err)
				return 1
			}
		}
		return 0
	case *inspect != "":
		opts := analyzer.Options{Interface: *iface, IncludeUnexported: *includeUnexported}
		return runInspect(*inspect, opts, *format, stdout, stderr, logger)
	}

	emitters, err := selectEmitters(positional)
	if err != nil {
		logger.Error("failed to select variants", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Stream one pass at a time; a large -count must not be materialized.
	for i := 0; i < *count; i++ {
		if err := emitter.EmitAll(stdout, emitters...); err != nil {
			logger.Error("failed to emit sound", "pass", i+1, "error", err)
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	logger.Debug("emitted", "variants", len(emitters), "count", *count)
	return 0
}

const (
	formatText    = "text"
	formatMermaid = "mermaid"
)

// checkModes rejects flag and argument combinations that would otherwise be
// silently ignored. set holds the names of flags given on the command line.
func checkModes(set map[string]bool, list bool, inspect string, positional []string, format string) error {
	if format != formatText && format != formatMermaid {
		return fmt.Errorf("unknown -format %q (valid: %s, %s)", format, formatText, formatMermaid)
	}

	var mode string
	switch {
	case list && inspect != "":
		return fmt.Errorf("-list and -inspect cannot be combined")
	case list:
		mode = "-list"
	case inspect != "":
		mode = "-inspect"
	}

	if mode != "-inspect" {
		for _, name := range []string{"interface", "include-unexported", "format"} {
			if set[name] {
				return fmt.Errorf("-%s requires -inspect", name)
			}
		}
	}
	if mode == "" {
		return nil
	}
	if len(positional) > 0 {
		return fmt.Errorf("%s does not take variant names (got %s)", mode, strings.Join(positional, " "))
	}
	if set["count"] {
		return fmt.Errorf("-count cannot be combined with %s", mode)
	}
	return nil
}

// selectEmitters validates names and returns one emitter per name, in order.
// No names means a single Dog.
func selectEmitters(names []string) ([]emitter.SoundEmitter, error) {
	if len(names) == 0 {
		var animal emitter.SoundEmitter = emitter.Dog{}
		return []emitter.SoundEmitter{animal}, nil
	}

	out := make([]emitter.SoundEmitter, 0, len(names))
	for _, name := range names {
		e, err := emitter.New(name)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func runInspect(dir string, opts analyzer.Options, format string, stdout, stderr io.Writer, logger *slog.Logger) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, err := analyzer.Variants(ctx, dir, opts, logger)
	if err != nil {
		logger.Error("inspect failed", "dir", dir, "error", err)
		fmt.Fprintf(stderr, "Error inspecting %s: %v\n", dir, err)
		return 1
	}

	if format == formatMermaid {
		if _, err := fmt.Fprintln(stdout, diagram.GenerateMermaid(result, diagram.Options{})); err != nil {
			logger.Error("failed to write output", "error", err)
			return 1
		}
		return 0
	}

	for _, v := range result.Variants {
		name := v.PkgPath + "." + v.Name
		if v.ViaPointer {
			name = "*" + name
		}
		if _, err := fmt.Fprintf(stdout, "%s\t%s\t%s\n", name, v.Interface, v.SourceFile); err != nil {
			logger.Error("failed to write output", "error", err)
			return 1
		}
	}
	return 0
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after the variant names).
// Flags that take a value (e.g., -count 3) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	// Set of flags that take a value argument
	valueFlagSet := map[string]bool{
		"-count": true, "-inspect": true, "-interface": true, "-format": true,
		"-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			name := "-" + strings.TrimLeft(arg, "-")
			if !strings.Contains(arg, "=") && valueFlagSet[name] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}
