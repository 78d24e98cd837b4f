// Package gen expands specialization templates into Go sources.
//
// The driver walks an input tree for "<K>.<name>.template" files, enumerates
// every ordered K-tuple of scalar kinds, fills the template once per tuple and
// writes the results under an output tree with the same relative layout.
//
// Generation is deterministic: walk order is lexical, tuples come in the
// order of the kind table, and Go output is passed through go/format.
// Rerunning over the same inputs rewrites byte-identical files.
package gen
