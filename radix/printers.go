package radix

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-bitstring-trees/bitstring"
)

// debug utilities

// treeString renders the node structure one node per line, children
// indented beneath their parent. Nodes holding a stored entry are marked
// with '*'. Keys are rendered with %v.
func treeString[K bitstring.Key[K], V any](root *node[K, V]) string {
	var b strings.Builder
	var walk func(n *node[K, V], depth int)
	walk = func(n *node[K, V], depth int) {
		if n == nil {
			return
		}
		marker := "."
		if n.hasValue {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s%s %v\n", strings.Repeat("  ", depth), marker, n.key)
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(root, 0)
	return b.String()
}
