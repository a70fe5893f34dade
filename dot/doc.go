// Package dot is the graph I/O collaborator (spec.md §6): a reader and
// writer for a small subset of the DOT language.
//
// Supported: undirected `graph NAME? { ... }` blocks, statements
// terminated by semicolons, edge chains `a--b--c` expanding to pairwise
// edges, and identifiers as the default participle lexer's Ident tokens
// (Go-style identifiers: a letter or underscore, then letters, digits or
// underscores). Other tokens, such as bare numbers or quoted strings, are
// not accepted as vertex names and make Read return a parse error. Comments,
// attributes, subgraphs, and node-only statements are all recognized
// syntactically but contribute nothing to the resulting vertex/edge set
// — per spec.md §6, "the core never parses DOT itself", so this package
// is a thin, deliberately incomplete collaborator, not a general DOT
// implementation.
//
// Grammar structure is parsed with participle (ground:
// lnz-BalancedGo/lib/parser.go, which builds a comparable small grammar
// with participle.MustBuild + ParseString over a different toy graph
// format). Comments and subgraph blocks sit outside what a participle
// v0.3 grammar conveniently expresses with one token of lookahead, so
// they're stripped by a small balanced-brace/line preprocessing pass
// before the participle grammar ever sees the source; participle still
// owns all of the actual graph-statement structure.
package dot
