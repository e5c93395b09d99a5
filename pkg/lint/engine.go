package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/javacst"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Path is the file that was linted.
	Path string

	// Diagnostics contains all issues found, in traversal order, after
	// suppression filtering.
	Diagnostics []Diagnostic

	// Suppressed is the number of diagnostics dropped by suppression.
	Suppressed int

	// ParseErrors is true when the CST contains error nodes. Rules still
	// ran over the recoverable parts of the tree.
	ParseErrors bool
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics carrying fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for i := range fr.Diagnostics {
		if fr.Diagnostics[i].HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates parsing, rule dispatch, and suppression for linting.
type Engine struct {
	ruleSet *RuleSet
	cfg     *config.Config
	spec    *suppressorSpec
}

// NewEngine creates an Engine for a built rule set and resolved config.
// It fails with a *ConfigError when the suppression configuration carries
// invalid patterns.
func NewEngine(ruleSet *RuleSet, cfg *config.Config) (*Engine, error) {
	spec, err := newSuppressorSpec(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{ruleSet: ruleSet, cfg: cfg, spec: spec}, nil
}

// RuleSet returns the engine's rule set.
func (e *Engine) RuleSet() *RuleSet {
	return e.ruleSet
}

// LintFile parses and lints a single file's content.
//
// Dispatch is a single pre-order traversal: at each node the kind-indexed
// rules run first, then the wildcard rules, each in configured order.
// Diagnostics come back in visit order, already suppression-filtered, with
// positions and rule names filled in.
func (e *Engine) LintFile(ctx context.Context, path string, content []byte) (*FileResult, error) {
	tree, err := javacst.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("lint %s: %w", path, err)
	}
	defer tree.Close()

	lintCtx := NewContext(path, content)
	root := tree.Root()

	result := &FileResult{
		Path:        path,
		ParseErrors: tree.HasError(),
	}

	var diags []Diagnostic
	cancelled := false

	javacst.Walk(root, func(n javacst.Node) bool {
		select {
		case <-ctx.Done():
			cancelled = true
			return false
		default:
		}

		for _, cr := range e.ruleSet.For(n.KindID()) {
			diags = e.appendChecked(diags, cr, lintCtx, n)
		}
		for _, cr := range e.ruleSet.Wildcard() {
			diags = e.appendChecked(diags, cr, lintCtx, n)
		}
		return true
	})

	if cancelled {
		return result, fmt.Errorf("lint %s: %w", path, ctx.Err())
	}

	suppressor := e.spec.collect(lintCtx, root)
	result.Diagnostics, result.Suppressed = suppressor.Apply(diags)

	return result, nil
}

// appendChecked runs one rule on one node and finalizes its diagnostics.
func (e *Engine) appendChecked(diags []Diagnostic, cr ConfiguredRule, lintCtx *Context, n javacst.Node) []Diagnostic {
	for _, d := range cr.Check(lintCtx, n) {
		if d.Rule == "" {
			d.Rule = cr.Name()
		}
		d.FilePath = lintCtx.Path

		start := lintCtx.Position(d.Range.StartOffset)
		end := lintCtx.Position(d.Range.EndOffset)
		d.StartLine, d.StartColumn = start.Line, start.Column
		d.EndLine, d.EndColumn = end.Line, end.Column

		// A violation class that declares no fix availability must not
		// carry one.
		if d.Availability == FixNever {
			d.Fix = nil
		}

		diags = append(diags, d)
	}
	return diags
}
