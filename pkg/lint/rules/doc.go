// Package rules contains the built-in javalint rule implementations.
//
// Rules are grouped by checkstyle category: whitespace, blocks, imports,
// coding, naming, sizes, and style. Each rule registers itself under its
// checkstyle module name via RegisterAll, which init wires to the default
// registry.
package rules
