// Package refine implements the mark/split/promote refinement engine: given
// a raw forest F_L • {p} • F_R and the graph G, it restores the module
// property (I2) at every surviving internal node by splitting apart nodes
// whose children are only partly adjacent to some external vertex.
//
// Two distinct mechanisms share the word "promote" in the source material,
// and this package keeps them separate:
//
//   - Inline continuation: while climbing a touched vertex's ancestor path,
//     a node that becomes fully marked is reset and folded into the climb at
//     its own parent's level — no structural change, just bookkeeping.
//   - The post-pass promotion sweep: after every active edge has been
//     scanned, nodes whose split tag ended up MIXED (touched from both the
//     left and the right in this same pass) are spliced out; their children
//     become siblings in their place. Left-only or right-only tagged nodes
//     are the real new module boundaries refinement discovered, and are
//     left standing for assembly to consume.
//
// Splitting itself is deferred to the end of the scan rather than performed
// per individual active edge: deciding "fully marked vs. partially marked"
// requires having seen every edge that can touch a node's children, and
// batching keeps the amortized O(1)-per-edge bound the source claims.
package refine
