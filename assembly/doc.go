// Package assembly implements spec §4.3: given refined F_L, a pivot leaf,
// and refined F_R, it builds the MD-tree for this recursion level by
// wrapping the pivot with the surviving roots of each side.
//
// The two root lists only ever carry more than one entry, or a residual
// LEFT/RIGHT/MIXED split tag, when refine actually found an active edge
// crossing between the sides (spec §4.2). That split is precisely the
// signal distinguishing the two cases Assemble handles: an untagged root
// is already an independent maximal module and can be wrapped with the
// pivot one at a time via a genuine outward sweep (assembleSweep); a
// tagged root is only a module boundary because of that crossing edge,
// so it and the pivot are concatenated flat (assembleFlat) and left for
// labeling's single sampling pass over all of this node's children to
// classify together, rather than sampled pairwise against a partial wrap
// that is not itself a module.
package assembly
