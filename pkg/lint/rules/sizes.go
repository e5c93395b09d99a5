package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/javacst"
	"github.com/yaklabco/javalint/pkg/lint"
)

const (
	defaultMaxLineLength   = 80
	defaultMaxMethodLength = 150
)

// LineLengthViolation reports a line exceeding the configured limit.
type LineLengthViolation struct {
	Max    int
	Actual int
}

func (v LineLengthViolation) Message() string {
	return fmt.Sprintf("Line is longer than %d characters (found %d).", v.Max, v.Actual)
}

func (v LineLengthViolation) Availability() lint.FixAvailability {
	return lint.FixNever
}

// LineLength checks the length of each source line. Length is measured
// in characters, not bytes. Lines matching ignorePattern are exempt.
type LineLength struct {
	max    int
	ignore *regexp.Regexp
}

// NewLineLength constructs the rule from its properties.
func NewLineLength(props config.Properties) (lint.Rule, error) {
	max, err := props.GetInt("max", defaultMaxLineLength)
	if err != nil {
		return nil, err
	}
	ignore, err := props.GetRegexp("ignorePattern", regexp.MustCompile("^$"))
	if err != nil {
		return nil, err
	}
	return &LineLength{max: max, ignore: ignore}, nil
}

func (r *LineLength) Name() string { return "LineLength" }

func (r *LineLength) RelevantKinds() []string { return []string{"program"} }

func (r *LineLength) Check(ctx *lint.Context, node javacst.Node) []lint.Diagnostic {
	if _, ok := node.Parent(); ok {
		return nil
	}

	var diags []lint.Diagnostic
	for line := 1; line <= ctx.Lines.LineCount(); line++ {
		text := ctx.LineText(line)
		if r.ignore.MatchString(text) {
			continue
		}
		length := utf8.RuneCountInString(text)
		if length <= r.max {
			continue
		}
		start := ctx.Lines.LineStart(line)
		v := LineLengthViolation{Max: r.max, Actual: length}
		diags = append(diags, lint.NewDiagnostic(v, javacst.Range{
			StartOffset: start,
			EndOffset:   ctx.Lines.LineEnd(line),
		}))
	}
	return diags
}

// MethodLengthViolation reports an overlong method body.
type MethodLengthViolation struct {
	Name   string
	Max    int
	Actual int
}

func (v MethodLengthViolation) Message() string {
	return fmt.Sprintf("Method %s length is %d lines (max allowed is %d).", v.Name, v.Actual, v.Max)
}

func (v MethodLengthViolation) Availability() lint.FixAvailability {
	return lint.FixNever
}

// MethodLength checks the line count of methods and constructors.
// By default empty lines count; set countEmpty to false to skip them.
type MethodLength struct {
	max        int
	countEmpty bool
}

// NewMethodLength constructs the rule from its properties.
func NewMethodLength(props config.Properties) (lint.Rule, error) {
	max, err := props.GetInt("max", defaultMaxMethodLength)
	if err != nil {
		return nil, err
	}
	countEmpty, err := props.GetBool("countEmpty", true)
	if err != nil {
		return nil, err
	}
	return &MethodLength{max: max, countEmpty: countEmpty}, nil
}

func (r *MethodLength) Name() string { return "MethodLength" }

func (r *MethodLength) RelevantKinds() []string {
	return []string{"method_declaration", "constructor_declaration"}
}

func (r *MethodLength) Check(ctx *lint.Context, node javacst.Node) []lint.Diagnostic {
	first := ctx.Lines.LineOf(node.StartByte())
	last := ctx.Lines.LineOf(node.EndByte() - 1)

	length := 0
	for line := first; line <= last; line++ {
		if !r.countEmpty && strings.TrimSpace(ctx.LineText(line)) == "" {
			continue
		}
		length++
	}
	if length <= r.max {
		return nil
	}

	name := "<anonymous>"
	if n, ok := node.ChildByField("name"); ok {
		name = n.Text()
	}
	v := MethodLengthViolation{Name: name, Max: r.max, Actual: length}
	rng := node.Range()
	if n, ok := node.ChildByField("name"); ok {
		rng = n.Range()
	}
	return []lint.Diagnostic{lint.NewDiagnostic(v, rng)}
}
