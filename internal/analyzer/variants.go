package analyzer

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

type ifaceDef struct {
	Interface
	typ *types.Interface
}

// Variants loads Go packages from dir and returns every named type that
// implements an interface called opts.Interface.
func Variants(ctx context.Context, dir string, opts Options, logger *slog.Logger) (*Result, error) {
	name := opts.Interface
	if name == "" {
		name = DefaultInterface
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedImports,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	logger.Info("packages loaded", "dir", dir, "packages_count", len(pkgs))

	// Log packages with errors but continue
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	var ifaces []ifaceDef
	var candidates []*types.TypeName
	fsets := make(map[*types.TypeName]*token.FileSet)

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, n := range scope.Names() {
			tn, ok := scope.Lookup(n).(*types.TypeName)
			if !ok {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}
			if iface, ok := named.Underlying().(*types.Interface); ok {
				if tn.Name() == name && iface.NumMethods() > 0 {
					ifaces = append(ifaces, ifaceDef{
						Interface: Interface{
							Name:       pkg.Name + "." + tn.Name(),
							PkgPath:    pkg.PkgPath,
							Methods:    methodSignatures(iface),
							SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), dir),
						},
						typ: iface,
					})
					logger.Debug("found interface", "name", tn.Name(), "package", pkg.PkgPath, "methods", iface.NumMethods())
				}
				continue
			}
			candidates = append(candidates, tn)
			fsets[tn] = pkg.Fset
		}
	}

	if len(ifaces) == 0 {
		return nil, fmt.Errorf("no non-empty interface named %s found in %s", name, dir)
	}

	var methodSetCache typeutil.MethodSetCache
	result := &Result{}
	for _, iface := range ifaces {
		result.Interfaces = append(result.Interfaces, iface.Interface)
	}

	for _, tn := range candidates {
		if !opts.IncludeUnexported && !tn.Exported() {
			continue
		}
		valType := tn.Type()
		for _, iface := range ifaces {
			v := Variant{
				Name:       tn.Name(),
				PkgPath:    tn.Pkg().Path(),
				PkgName:    tn.Pkg().Name(),
				Interface:  iface.Name,
				SourceFile: resolveSourceFile(fsets[tn], tn.Pos(), dir),
			}
			recv := valType
			switch {
			case types.Implements(valType, iface.typ):
			case types.Implements(types.NewPointer(valType), iface.typ):
				recv = types.NewPointer(valType)
				v.ViaPointer = true
			default:
				continue
			}
			v.Inherited = promotedFromEmbedded(methodSetCache.MethodSet(recv), iface.typ)
			result.Variants = append(result.Variants, v)
			logger.Debug("variant found", "type", v.Name, "interface", v.Interface, "via_pointer", v.ViaPointer, "inherited", v.Inherited)
		}
	}

	sortVariants(result.Variants)
	logger.Info("variant discovery complete", "interface", name, "variants", len(result.Variants))
	return result, nil
}

// promotedFromEmbedded reports whether any method of iface is reached in mset
// through an embedded field rather than declared on the type itself.
func promotedFromEmbedded(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		sel := mset.Lookup(m.Pkg(), m.Name())
		if sel != nil && len(sel.Index()) > 1 {
			return true
		}
	}
	return false
}

func methodSignatures(iface *types.Interface) []string {
	sigs := make([]string, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		sigs[i] = formatSignature(iface.Method(i))
	}
	return sigs
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(shortType(results.At(0).Type()))
	default:
		b.WriteString(" (")
		for i := 0; i < results.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(shortType(results.At(i).Type()))
		}
		b.WriteString(")")
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

// resolveSourceFile resolves a token position to a file path relative to root.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, root string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return position.Filename
	}
	rel, err := filepath.Rel(absRoot, position.Filename)
	if err != nil {
		return position.Filename
	}
	return filepath.ToSlash(rel)
}
