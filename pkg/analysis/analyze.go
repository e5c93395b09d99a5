package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/javalint/pkg/lint"
	"github.com/yaklabco/javalint/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	ruleMap   map[string]*RuleAnalysis
	fileMap   map[string]*FileAnalysis
	ruleFiles map[string]map[string]bool
	fileRules map[string]map[string]bool
}

// newAnalysisContext creates a new analysis context.
func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:   make(map[string]*RuleAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		ruleFiles: make(map[string]map[string]bool),
		fileRules: make(map[string]map[string]bool),
	}
}

// getOrCreateFileAnalysis returns existing or creates new FileAnalysis.
func (ctx *analysisContext) getOrCreateFileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileRules[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

// getOrCreateRuleAnalysis returns existing or creates new RuleAnalysis.
func (ctx *analysisContext) getOrCreateRuleAnalysis(code, rule string) *RuleAnalysis {
	if _, ok := ctx.ruleMap[code]; !ok {
		ctx.ruleMap[code] = &RuleAnalysis{
			Code: code,
			Rule: rule,
		}
		ctx.ruleFiles[code] = make(map[string]bool)
	}
	return ctx.ruleMap[code]
}

// createDiagnosticEntry builds a DiagnosticEntry from a lint diagnostic.
func createDiagnosticEntry(path string, diag *lint.Diagnostic) DiagnosticEntry {
	entry := DiagnosticEntry{
		FilePath:    path,
		Code:        diag.Code,
		Rule:        diag.Rule,
		Message:     diag.Message,
		StartLine:   diag.StartLine,
		StartColumn: diag.StartColumn,
		EndLine:     diag.EndLine,
		EndColumn:   diag.EndColumn,
		Fixable:     diag.HasFix(),
		FixTitle:    diag.FixTitle,
	}
	if diag.Fix != nil {
		for _, edit := range diag.Fix.Edits {
			entry.Fixes = append(entry.Fixes, FixEntry{
				StartOffset: edit.StartOffset,
				EndOffset:   edit.EndOffset,
				NewText:     edit.NewText,
			})
		}
	}
	return entry
}

// buildByRule constructs the ByRule slice from accumulated data.
func (ctx *analysisContext) buildByRule(opts Options) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for code, ra := range ctx.ruleMap {
		for f := range ctx.ruleFiles[code] {
			ra.Files = append(ra.Files, f)
		}
		slices.Sort(ra.Files)
		result = append(result, *ra)
	}
	sortRuleAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// buildByFile constructs the ByFile slice from accumulated data.
func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Issues == 0 && fa.Suppressed == 0 {
			continue
		}
		for r := range ctx.fileRules[path] {
			fa.Rules = append(fa.Rules, r)
		}
		slices.Sort(fa.Rules)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through diagnostics to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}
		if len(file.Result.Diagnostics) > 0 {
			report.Totals.FilesWithIssues++
		}
		if file.Result.ParseErrors {
			report.Totals.ParseFailures++
		}
		if file.Result.Modified {
			report.Totals.FilesModified++
		}
		report.Totals.Suppressed += file.Result.Suppressed
		report.Totals.FixesApplied += file.Result.FixesApplied

		displayPath := makeRelativePath(file.Path, opts.WorkingDir)
		fa := ctx.getOrCreateFileAnalysis(displayPath)
		fa.Suppressed += file.Result.Suppressed

		for _, diag := range file.Result.Diagnostics {
			report.Totals.Issues++
			isFixable := diag.HasFix()
			if isFixable {
				report.Totals.Fixable++
				fa.Fixable++
			}

			fa.Issues++
			ctx.fileRules[displayPath][diag.Code] = true

			ra := ctx.getOrCreateRuleAnalysis(diag.Code, diag.Rule)
			ra.Issues++
			if isFixable {
				ra.Fixable = true
			}
			ctx.ruleFiles[diag.Code][displayPath] = true

			if opts.IncludeDiagnostics {
				report.Diagnostics = append(report.Diagnostics, createDiagnosticEntry(displayPath, &diag))
			}
		}
	}

	if opts.IncludeByRule {
		report.ByRule = ctx.buildByRule(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func sortRuleAnalysis(rules []RuleAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(rules, func(left, right RuleAnalysis) int {
		if sortBy == SortByAlpha {
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Code, right.Code)
		}
		result := cmp.Compare(left.Issues, right.Issues)
		if desc {
			result = -result
		}
		if result == 0 {
			result = cmp.Compare(left.Code, right.Code)
		}
		return result
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		if sortBy == SortByAlpha {
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Path, right.Path)
		}
		result := cmp.Compare(left.Issues, right.Issues)
		if desc {
			result = -result
		}
		if result == 0 {
			result = cmp.Compare(left.Path, right.Path)
		}
		return result
	})
}
