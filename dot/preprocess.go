// File: preprocess.go
package dot

import "strings"

// stripComments removes // line comments and /* */ block comments.
// Run before subgraph stripping and before the participle grammar ever
// sees the source, since neither is part of the supported grammar.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); i++ {
		if i+1 < len(src) && src[i] == '/' && src[i+1] == '/' {
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				b.WriteByte('\n')
			}
			continue
		}
		if i+1 < len(src) && src[i] == '/' && src[i+1] == '*' {
			i += 2
			for i+1 < len(src) && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i++ // lands on the '/' of "*/"; loop's i++ advances past it
			continue
		}
		b.WriteByte(src[i])
	}

	return b.String()
}

// stripSubgraphs removes every `subgraph NAME? { ... }` block, including
// nested braces, by a balanced-brace scan. Spec.md §6 ignores subgraphs
// entirely, and nested braces put them out of reach of a one-token
// lookahead grammar rule.
func stripSubgraphs(src string) string {
	for {
		idx := strings.Index(src, "subgraph")
		if idx < 0 {
			return src
		}
		open := strings.IndexByte(src[idx:], '{')
		if open < 0 {
			return src
		}
		open += idx

		depth := 1
		end := open + 1
		for ; end < len(src) && depth > 0; end++ {
			switch src[end] {
			case '{':
				depth++
			case '}':
				depth--
			}
		}

		src = src[:idx] + src[end:]
	}
}

func preprocess(src string) string {
	return stripSubgraphs(stripComments(src))
}
