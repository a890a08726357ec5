// Package hierarchy assigns breadth-first ordinals to the nodes of a host
// subtree. Two subtrees with the same shape give corresponding nodes the
// same ordinal, which is how references are carried from a subtree to its
// duplicate.
//
// An Index notices structural changes lazily: first by comparing the
// descendant count, then by a rolling checksum over identities and child
// counts, and rebuilds only when one of them differs.
package hierarchy
