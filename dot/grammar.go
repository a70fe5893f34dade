// File: grammar.go
package dot

import "github.com/alecthomas/participle"

// dotAttrs matches a bracketed attribute list, e.g. [label="x", color=red].
// Its contents are never inspected (spec.md §6: attributes are ignored).
type dotAttrs struct {
	Pairs []dotAttrPair `"[" ( @@ ","? )* "]"`
}

type dotAttrPair struct {
	Key   string `@Ident "="`
	Value string `(@Ident | @String | @Int)`
}

// dotStmt matches one statement: a bare identifier (a node-only
// statement, ignored) or an identifier chain joined by "--" (an edge
// chain, expanded pairwise). An optional trailing attribute list is
// parsed and discarded either way.
type dotStmt struct {
	First string    `@Ident`
	Rest  []string  `( "-" "-" @Ident )*`
	Attrs *dotAttrs `@@?`
}

// dotGraph matches `graph NAME? { stmt* }`. Each statement may be
// followed by a semicolon; the semicolon is optional after every
// statement, not only the last.
type dotGraph struct {
	Name  string     `"graph" @Ident?`
	Stmts []*dotStmt `"{" ( @@ ";"? )* "}"`
}

var parser = participle.MustBuild(&dotGraph{}, participle.UseLookahead(1))
