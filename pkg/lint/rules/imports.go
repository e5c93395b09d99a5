package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/javacst"
	"github.com/yaklabco/javalint/pkg/lint"
)

// RedundantImportViolation reports an import that adds nothing.
type RedundantImportViolation struct {
	Name   string
	Reason string
}

func (v RedundantImportViolation) Message() string {
	switch v.Reason {
	case "duplicate":
		return fmt.Sprintf("Duplicate import to line %s.", v.Name)
	case "samepackage":
		return fmt.Sprintf("Redundant import from the same package - %s.", v.Name)
	default:
		return fmt.Sprintf("Redundant import from the java.lang package - %s.", v.Name)
	}
}

func (v RedundantImportViolation) Availability() lint.FixAvailability {
	return lint.FixAlways
}

func (v RedundantImportViolation) FixTitle() string {
	return "Remove redundant import"
}

// RedundantImport checks for duplicate imports, imports from the file's
// own package, and imports from java.lang.
type RedundantImport struct{}

// NewRedundantImport constructs the rule.
func NewRedundantImport(config.Properties) (lint.Rule, error) {
	return &RedundantImport{}, nil
}

func (r *RedundantImport) Name() string { return "RedundantImport" }

func (r *RedundantImport) RelevantKinds() []string { return []string{"program"} }

func (r *RedundantImport) Check(ctx *lint.Context, node javacst.Node) []lint.Diagnostic {
	if _, ok := node.Parent(); ok {
		return nil
	}

	pkg := packageName(node)
	seen := make(map[string]int)

	var diags []lint.Diagnostic
	report := func(imp javacst.Node, v RedundantImportViolation) {
		d := lint.NewDiagnostic(v, imp.Range())
		d = d.WithFix(deleteLineFix(ctx, imp))
		diags = append(diags, d)
	}

	for i := 0; i < node.NamedChildCount(); i++ {
		c, ok := node.NamedChild(i)
		if !ok || c.Kind() != "import_declaration" {
			continue
		}
		path, wildcard := importPath(c)
		if path == "" {
			continue
		}
		line := ctx.Lines.LineOf(c.StartByte())

		if first, dup := seen[path]; dup {
			report(c, RedundantImportViolation{Name: fmt.Sprintf("%d", first), Reason: "duplicate"})
			continue
		}
		seen[path] = line

		base := importPackage(path, wildcard)
		switch {
		case pkg != "" && base == pkg:
			report(c, RedundantImportViolation{Name: path, Reason: "samepackage"})
		case base == "java.lang":
			report(c, RedundantImportViolation{Name: path, Reason: "javalang"})
		}
	}
	return diags
}

// packageName returns the declared package of a compilation unit, or "".
func packageName(root javacst.Node) string {
	for i := 0; i < root.NamedChildCount(); i++ {
		c, ok := root.NamedChild(i)
		if ok && c.Kind() == "package_declaration" {
			for j := 0; j < c.NamedChildCount(); j++ {
				n, ok := c.NamedChild(j)
				if ok && (n.Kind() == "scoped_identifier" || n.Kind() == "identifier") {
					return n.Text()
				}
			}
		}
	}
	return ""
}

// importPath returns the dotted path of an import declaration and whether
// it is an on-demand (wildcard) import. Static imports are skipped.
func importPath(imp javacst.Node) (string, bool) {
	text := strings.TrimSpace(imp.Text())
	text = strings.TrimSuffix(text, ";")
	text = strings.TrimSpace(strings.TrimPrefix(text, "import"))
	if strings.HasPrefix(text, "static") {
		return "", false
	}
	if strings.HasSuffix(text, ".*") {
		return strings.TrimSuffix(text, ".*"), true
	}
	return text, false
}

// importPackage returns the package an import draws from. For a wildcard
// import the path itself is the package.
func importPackage(path string, wildcard bool) string {
	if wildcard {
		return path
	}
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i]
	}
	return path
}

// deleteLineFix removes the source line holding an import declaration.
func deleteLineFix(ctx *lint.Context, imp javacst.Node) *fix.Fix {
	rng := ctx.Lines.LineRange(ctx.Lines.LineOf(imp.StartByte()))
	return fix.SafeEdit(fix.Deletion(rng.StartOffset, rng.EndOffset))
}

// UnusedImportsViolation reports an import whose simple name never
// appears in the file.
type UnusedImportsViolation struct {
	Name string
}

func (v UnusedImportsViolation) Message() string {
	return fmt.Sprintf("Unused import - %s.", v.Name)
}

func (v UnusedImportsViolation) Availability() lint.FixAvailability {
	return lint.FixAlways
}

func (v UnusedImportsViolation) FixTitle() string {
	return "Remove unused import"
}

// UnusedImports checks for single-type imports that are never referenced.
// Wildcard and static imports are left alone since their uses cannot be
// resolved without type information.
type UnusedImports struct{}

// NewUnusedImports constructs the rule.
func NewUnusedImports(config.Properties) (lint.Rule, error) {
	return &UnusedImports{}, nil
}

func (r *UnusedImports) Name() string { return "UnusedImports" }

func (r *UnusedImports) RelevantKinds() []string { return []string{"program"} }

func (r *UnusedImports) Check(ctx *lint.Context, node javacst.Node) []lint.Diagnostic {
	if _, ok := node.Parent(); ok {
		return nil
	}

	type pending struct {
		node javacst.Node
		path string
		name string
	}
	var imports []pending
	for i := 0; i < node.NamedChildCount(); i++ {
		c, ok := node.NamedChild(i)
		if !ok || c.Kind() != "import_declaration" {
			continue
		}
		path, wildcard := importPath(c)
		if path == "" || wildcard {
			continue
		}
		name := path
		if j := strings.LastIndexByte(path, '.'); j >= 0 {
			name = path[j+1:]
		}
		imports = append(imports, pending{node: c, path: path, name: name})
	}
	if len(imports) == 0 {
		return nil
	}

	used := referencedNames(node)

	var diags []lint.Diagnostic
	for _, imp := range imports {
		if used[imp.name] {
			continue
		}
		d := lint.NewDiagnostic(UnusedImportsViolation{Name: imp.path}, imp.node.Range())
		d = d.WithFix(deleteLineFix(ctx, imp.node))
		diags = append(diags, d)
	}
	return diags
}

// referencedNames collects every identifier and type name used outside
// the import declarations themselves.
func referencedNames(root javacst.Node) map[string]bool {
	used := make(map[string]bool)
	javacst.Walk(root, func(n javacst.Node) bool {
		switch n.Kind() {
		case "import_declaration", "package_declaration":
			return false
		case "identifier", "type_identifier":
			used[n.Text()] = true
		}
		return true
	})
	return used
}
