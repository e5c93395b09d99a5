package lint

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/javacst"
)

// Default comment markers for SuppressionCommentFilter. An optional
// trailing ":<pattern>" names the checks to suppress; without it the
// marker suppresses everything.
const (
	defaultOffFormat = `CHECKSTYLE:OFF(?::(\S+))?`
	defaultOnFormat  = `CHECKSTYLE:ON(?::(\S+))?`
)

// region is one suppression: a check pattern active over a line span.
type region struct {
	pattern glob.Glob
	raw     string
	span    config.LineSpan
}

// Suppressor filters diagnostics through the suppression regions collected
// for one file.
type Suppressor struct {
	regions []region
}

// Suppressed reports whether a diagnostic with the given code and rule
// name, starting on the given 1-based line, is suppressed.
func (s *Suppressor) Suppressed(code, rule string, line int) bool {
	for _, r := range s.regions {
		if !r.span.Contains(line) {
			continue
		}
		if r.pattern.Match(code) || (rule != "" && r.pattern.Match(rule)) {
			return true
		}
	}
	return false
}

// Apply filters a diagnostic slice, preserving order. It returns the kept
// diagnostics and the number dropped. Applying the filter twice drops
// nothing new.
func (s *Suppressor) Apply(diags []Diagnostic) ([]Diagnostic, int) {
	if s == nil || len(s.regions) == 0 || len(diags) == 0 {
		return diags, 0
	}

	kept := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		if s.Suppressed(d.Code, d.Rule, d.StartLine) {
			continue
		}
		kept = append(kept, d)
	}
	return kept, len(diags) - len(kept)
}

// suppressorSpec holds the per-run suppression configuration compiled once
// at engine construction.
type suppressorSpec struct {
	commentScanners []commentScanner
	annotationScan  bool
	external        []externalRecord
}

type commentScanner struct {
	off *regexp.Regexp
	on  *regexp.Regexp
}

type externalRecord struct {
	files  glob.Glob
	checks glob.Glob
	lines  []config.LineSpan
}

// newSuppressorSpec compiles the suppression configuration.
// Bad marker or suppression patterns are configuration errors.
func newSuppressorSpec(cfg *config.Config) (*suppressorSpec, error) {
	spec := &suppressorSpec{annotationScan: cfg.SuppressWarnings}

	for _, mod := range cfg.CommentFilters {
		if mod.Name != config.ModuleSuppressionCommentFilter {
			continue
		}
		off, err := regexp.Compile(mod.Properties.GetString("offCommentFormat", defaultOffFormat))
		if err != nil {
			return nil, &ConfigError{Module: mod.Name, Property: "offCommentFormat", Reason: "invalid pattern", Err: err}
		}
		on, err := regexp.Compile(mod.Properties.GetString("onCommentFormat", defaultOnFormat))
		if err != nil {
			return nil, &ConfigError{Module: mod.Name, Property: "onCommentFormat", Reason: "invalid pattern", Err: err}
		}
		spec.commentScanners = append(spec.commentScanners, commentScanner{off: off, on: on})
	}

	for _, rec := range cfg.Suppressions {
		ext := externalRecord{lines: rec.Lines}
		var err error
		ext.files, err = compileGlob(rec.Files)
		if err != nil {
			return nil, &ConfigError{Module: "SuppressionFilter", Property: "files", Reason: "invalid pattern", Err: err}
		}
		ext.checks, err = compileGlob(rec.Checks)
		if err != nil {
			return nil, &ConfigError{Module: "SuppressionFilter", Property: "checks", Reason: "invalid pattern", Err: err}
		}
		spec.external = append(spec.external, ext)
	}

	return spec, nil
}

// collect builds the Suppressor for one file from comment markers, the
// @SuppressWarnings annotation scan, and external records.
func (s *suppressorSpec) collect(ctx *Context, root javacst.Node) *Suppressor {
	sup := &Suppressor{}
	if s == nil {
		return sup
	}

	for _, sc := range s.commentScanners {
		sup.regions = append(sup.regions, scanCommentRegions(ctx, sc)...)
	}
	if s.annotationScan {
		sup.regions = append(sup.regions, scanAnnotations(root, ctx)...)
	}
	sup.regions = append(sup.regions, s.externalRegions(ctx.Path)...)

	return sup
}

// scanCommentRegions scans raw source lines for off/on markers. An OFF
// opens a region; a matching ON closes it; an unclosed OFF runs to EOF.
// A marker's capture group, when present and non-empty, narrows the region
// to checks matching that pattern; "*" and an absent group mean all.
func scanCommentRegions(ctx *Context, sc commentScanner) []region {
	lineCount := ctx.Lines.LineCount()

	type openRegion struct {
		raw   string
		start int
	}
	var open []openRegion
	var closed []region

	appendClosed := func(o openRegion, endLine int) {
		g, err := compileGlob(o.raw)
		if err != nil {
			return
		}
		closed = append(closed, region{
			pattern: g,
			raw:     o.raw,
			span:    config.LineSpan{First: o.start, Last: endLine},
		})
	}

	for line := 1; line <= lineCount; line++ {
		text := ctx.LineText(line)

		if m := sc.off.FindStringSubmatch(text); m != nil {
			open = append(open, openRegion{raw: markerPattern(m), start: line})
			continue
		}

		m := sc.on.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		onPattern := markerPattern(m)

		// ON closes open regions with the same pattern; a bare ON (or
		// "*") closes everything.
		remaining := open[:0]
		for _, o := range open {
			if onPattern == "*" || o.raw == onPattern {
				appendClosed(o, line)
			} else {
				remaining = append(remaining, o)
			}
		}
		open = remaining
	}

	for _, o := range open {
		appendClosed(o, lineCount)
	}

	return closed
}

// markerPattern extracts the check pattern from a marker match. The first
// capture group names the checks; absent or empty means everything.
func markerPattern(match []string) string {
	if len(match) > 1 && match[1] != "" {
		return match[1]
	}
	return "*"
}

// scanAnnotations collects @SuppressWarnings("checkstyle:X") regions. The
// region spans the annotated declaration's lines.
func scanAnnotations(root javacst.Node, ctx *Context) []region {
	var regions []region

	javacst.Walk(root, func(n javacst.Node) bool {
		kind := n.Kind()
		if kind != "annotation" && kind != "marker_annotation" {
			return true
		}

		name, ok := n.ChildByField("name")
		if !ok || name.Text() != "SuppressWarnings" {
			return false
		}

		patterns := suppressWarningsPatterns(n)
		if len(patterns) == 0 {
			return false
		}

		span := annotatedSpan(n, ctx)
		for _, p := range patterns {
			g, err := compileGlob(p)
			if err != nil {
				continue
			}
			regions = append(regions, region{pattern: g, raw: p, span: span})
		}
		return false
	})

	return regions
}

// suppressWarningsPatterns extracts checkstyle patterns from an annotation's
// string arguments. Only values with the "checkstyle:" prefix participate;
// plain compiler suppressions like "unchecked" are ignored.
func suppressWarningsPatterns(annotation javacst.Node) []string {
	args, ok := annotation.ChildByField("arguments")
	if !ok {
		return nil
	}

	var patterns []string
	for _, lit := range javacst.FindByKind(args, "string_literal") {
		value := strings.Trim(lit.Text(), `"`)
		if rest, ok := strings.CutPrefix(value, "checkstyle:"); ok && rest != "" {
			patterns = append(patterns, rest)
		}
	}
	return patterns
}

// annotatedSpan returns the line span of the declaration an annotation is
// attached to. Annotations hang off a modifiers node whose parent is the
// declaration; without that shape the span falls back to the annotation's
// own lines.
func annotatedSpan(annotation javacst.Node, ctx *Context) config.LineSpan {
	target := annotation
	if mods, ok := annotation.Parent(); ok && mods.Kind() == "modifiers" {
		if decl, ok := mods.Parent(); ok {
			target = decl
		}
	}
	return config.LineSpan{
		First: ctx.Lines.LineOf(target.StartByte()),
		Last:  ctx.Lines.LineOf(target.EndByte()),
	}
}

// externalRegions converts matching suppressions.xml records into regions
// for the given file path.
func (s *suppressorSpec) externalRegions(path string) []region {
	var regions []region
	slashPath := filepath.ToSlash(path)

	for _, rec := range s.external {
		if !rec.files.Match(slashPath) && !rec.files.Match(filepath.Base(slashPath)) {
			continue
		}

		spans := rec.lines
		if len(spans) == 0 {
			spans = []config.LineSpan{{First: 1, Last: int(^uint(0) >> 1)}}
		}
		for _, span := range spans {
			regions = append(regions, region{pattern: rec.checks, span: span})
		}
	}
	return regions
}

// compileGlob compiles a check or file pattern. Empty patterns match
// everything.
func compileGlob(pattern string) (glob.Glob, error) {
	if pattern == "" {
		pattern = "*"
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return g, nil
}
