package config

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Module is one configured module from checkstyle.xml: a rule, a filter,
// or the TreeWalker/Checker containers before flattening.
type Module struct {
	// Name is the module name ("WhitespaceAfter", "SuppressionFilter", ...).
	Name string

	// Properties holds the module's property bag.
	Properties Properties
}

// Checkstyle is a parsed checkstyle.xml configuration, flattened: rule
// modules are collected from both the Checker and TreeWalker levels, and
// filter modules are kept separately.
type Checkstyle struct {
	// CheckerProperties are properties set directly on the Checker module
	// (charset, severity, fileExtensions).
	CheckerProperties Properties

	// Rules are the configured rule modules in document order.
	Rules []Module

	// Filters are suppression-related modules (SuppressionFilter,
	// SuppressWarningsFilter, SuppressionCommentFilter).
	Filters []Module
}

// Filter module names recognized at either level.
const (
	ModuleSuppressionFilter        = "SuppressionFilter"
	ModuleSuppressWarningsFilter   = "SuppressWarningsFilter"
	ModuleSuppressionCommentFilter = "SuppressionCommentFilter"
	ModuleSuppressWarningsHolder   = "SuppressWarningsHolder"
)

// xmlModule mirrors the nested <module> structure of checkstyle.xml.
type xmlModule struct {
	Name       string        `xml:"name,attr"`
	Properties []xmlProperty `xml:"property"`
	Modules    []xmlModule   `xml:"module"`
}

type xmlProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ParseCheckstyle parses checkstyle.xml content.
//
// The document root must be a <module name="Checker">. TreeWalker children
// and Checker-level file checks are flattened into a single rule list in
// document order; the distinction does not matter to the engine because
// every rule declares the CST kinds it wants.
func ParseCheckstyle(data []byte) (*Checkstyle, error) {
	var root xmlModule
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse checkstyle config: %w", err)
	}

	if !strings.EqualFold(moduleBase(root.Name), "Checker") {
		return nil, fmt.Errorf("parse checkstyle config: root module is %q, want Checker", root.Name)
	}

	cfg := &Checkstyle{
		CheckerProperties: propertiesOf(root.Properties),
	}

	for _, child := range root.Modules {
		name := moduleBase(child.Name)
		switch {
		case strings.EqualFold(name, "TreeWalker"):
			for _, grandchild := range child.Modules {
				cfg.addModule(grandchild)
			}
		default:
			cfg.addModule(child)
		}
	}

	return cfg, nil
}

func (c *Checkstyle) addModule(m xmlModule) {
	mod := Module{
		Name:       moduleBase(m.Name),
		Properties: propertiesOf(m.Properties),
	}
	switch mod.Name {
	case ModuleSuppressionFilter, ModuleSuppressWarningsFilter,
		ModuleSuppressionCommentFilter, ModuleSuppressWarningsHolder:
		c.Filters = append(c.Filters, mod)
	default:
		c.Rules = append(c.Rules, mod)
	}
}

// moduleBase strips a fully qualified checkstyle class name down to its
// simple name: "com.puppycrawl.tools.checkstyle.checks.UpperEllCheck"
// becomes "UpperEll".
func moduleBase(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "Check")
	return name
}

func propertiesOf(props []xmlProperty) Properties {
	if len(props) == 0 {
		return Properties{}
	}
	out := make(Properties, len(props))
	for _, p := range props {
		out[p.Name] = p.Value
	}
	return out
}
