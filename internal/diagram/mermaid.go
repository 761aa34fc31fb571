package diagram

import (
	"fmt"
	"strings"

	"github.com/olehluchkiv/woof/internal/analyzer"
)

// Options controls Mermaid diagram generation.
type Options struct {
	IncludeInit bool // include %%{init:}%% directive (for standalone .mmd files)
}

// GenerateMermaid produces a Mermaid classDiagram of the matched interfaces
// and their variants. Variants that declare their own method are drawn with a
// solid realization arrow; variants that only inherit it through an embedded
// field use a dashed one. Pointer-receiver variants are labelled "*T".
// Input order is kept; analyzer.Variants already sorts its output.
func GenerateMermaid(result *analyzer.Result, opts Options) string {
	var b strings.Builder

	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(result.Interfaces) == 0 && len(result.Variants) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString("    direction LR\n")
	b.WriteString("    classDef interfaceStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
	b.WriteString("    classDef implStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")

	for _, iface := range result.Interfaces {
		b.WriteString("\n")
		writeInterfaceBlock(&b, iface)
	}

	// Several interfaces can share one variant type; emit each type once.
	seen := make(map[string]bool)
	var typeIDs []string
	for _, v := range result.Variants {
		id := NodeID(v.PkgName, v.Name)
		if seen[id] {
			continue
		}
		seen[id] = true
		typeIDs = append(typeIDs, id)
		b.WriteString("\n")
		writeTypeBlock(&b, id, v.SourceFile)
	}

	if len(result.Variants) > 0 {
		b.WriteString("\n")
	}
	for _, v := range result.Variants {
		b.WriteString("\n")
		writeRelation(&b, v)
	}

	b.WriteString("\n")
	for _, iface := range result.Interfaces {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" interfaceStyle", sanitizeID(iface.Name))
	}
	for _, id := range typeIDs {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" implStyle", id)
	}

	return b.String()
}

// SanitizeSignature removes characters in method signatures that break Mermaid syntax.
// Mermaid treats {}, <>, and ~ as special in class diagram labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// "interface" is reserved in browser Mermaid.js, so rewrite before stripping braces.
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// sanitizeID replaces /, ., - with _ in node identifiers.
func sanitizeID(s string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(s)
}

// NodeID builds a sanitized node ID from pkgName and type/interface name.
func NodeID(pkgName, name string) string {
	return sanitizeID(pkgName + "_" + name)
}

func writeInterfaceBlock(b *strings.Builder, iface analyzer.Interface) {
	fmt.Fprintf(b, "    class %s {\n", sanitizeID(iface.Name))
	b.WriteString("        <<interface>>\n")
	if iface.SourceFile != "" {
		b.WriteString("        %% file: " + iface.SourceFile + "\n")
	}
	for _, m := range iface.Methods {
		fmt.Fprintf(b, "        +%s\n", SanitizeSignature(m))
	}
	b.WriteString("    }")
}

// writeTypeBlock writes a class block for a variant. Methods are omitted
// because they're already listed in the interface block.
func writeTypeBlock(b *strings.Builder, id, sourceFile string) {
	fmt.Fprintf(b, "    class %s {\n", id)
	if sourceFile != "" {
		b.WriteString("        %% file: " + sourceFile + "\n")
	}
	b.WriteString("    }")
}

func writeRelation(b *strings.Builder, v analyzer.Variant) {
	arrow := "--|>"
	if v.Inherited {
		arrow = "..|>"
	}
	fmt.Fprintf(b, "    %s %s %s", NodeID(v.PkgName, v.Name), arrow, sanitizeID(v.Interface))
	if v.ViaPointer {
		fmt.Fprintf(b, " : *%s", v.Name)
	}
}
