package eval

import (
	"strings"

	"nickandperla.net/moji/internal/scanner"
	"nickandperla.net/moji/internal/token"
)

// Node is the transient per-line parse result. It is produced by ParseLine,
// consumed immediately by the interpreter loop, and never retained.
type Node struct {
	Sym   token.Symbol
	Token string   // the matched grapheme cluster
	Args  []string // ASSIGN: [name, value]; otherwise clusters after the symbol
}

// ParseLine scans a line's grapheme clusters left to right for the first
// known operator symbol. For ASSIGN the args are the trimmed name/value
// pair; for every other symbol the args are the raw clusters after it, left
// for the consuming statement to re-join. Returns nil when no symbol occurs
// anywhere in the line, which marks the line as a function call.
func ParseLine(line string) *Node {
	clusters := scanner.Graphemes(line)
	i, sym := scanner.FindSymbol(clusters)
	if i < 0 {
		return nil
	}

	if sym == token.ASSIGN {
		name := strings.TrimSpace(scanner.Join(clusters[:i]))
		val := strings.TrimSpace(scanner.Join(clusters[i+1:]))
		return &Node{Sym: sym, Token: clusters[i], Args: []string{name, val}}
	}

	args := make([]string, len(clusters)-i-1)
	copy(args, clusters[i+1:])
	return &Node{Sym: sym, Token: clusters[i], Args: args}
}
