package hierarchy

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"serialization-bridge/host"
)

const checksumPrime = 397

type entry struct {
	ordinal int
	version int
}

// Index maps the nodes of the subtree under root to their BFS ordinals.
// It is safe for concurrent use.
type Index struct {
	mu       sync.Mutex
	root     host.Node
	order    map[string]entry
	nodes    []host.Node
	version  int
	count    int
	checksum uint64
}

// New builds the index of the subtree under root.
func New(root host.Node) *Index {
	x := &Index{root: root}
	x.rebuild()

	return x
}

// Root is the node the index was built for.
func (x *Index) Root() host.Node {
	return x.root
}

// Order returns the ordinal of n, or -1 when n is not in the subtree.
func (x *Index) Order(n host.Node) int {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.refresh()

	e, ok := x.order[n.Identity()]
	if !ok || e.version != x.version {
		return -1
	}

	return e.ordinal
}

// NodeAt returns the node with the given ordinal.
func (x *Index) NodeAt(ordinal int) (host.Node, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.refresh()

	if ordinal < 0 || ordinal >= len(x.nodes) {
		return nil, false
	}

	return x.nodes[ordinal], true
}

// OrderedNodes returns the nodes indexed by ordinal.
func (x *Index) OrderedNodes() []host.Node {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.refresh()

	return append([]host.Node(nil), x.nodes...)
}

// Len is the number of nodes in the subtree, root included.
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.refresh()

	return len(x.nodes)
}

// Version increases every time the index is rebuilt.
func (x *Index) Version() int {
	x.mu.Lock()
	defer x.mu.Unlock()

	return x.version
}

// Snapshot refreshes the index once and returns its current state. The
// snapshot does not follow later changes of the subtree and answers
// lookups without walking it.
func (x *Index) Snapshot() *Snapshot {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.refresh()

	return &Snapshot{version: x.version, order: x.order, nodes: x.nodes}
}

func (x *Index) refresh() {
	if x.stale() {
		x.rebuild()
	}
}

// stale compares the cheap descendant count first and falls back to the
// checksum, which also catches reordering and reparenting.
func (x *Index) stale() bool {
	if Count(x.root) != x.count {
		return true
	}

	return Checksum(x.root) != x.checksum
}

// rebuild never reuses the previous map or slice: snapshots keep them.
func (x *Index) rebuild() {
	x.version++
	x.order = make(map[string]entry, x.count)
	x.nodes = make([]host.Node, 0, x.count)

	host.Walk(x.root, func(n host.Node) bool {
		x.order[n.Identity()] = entry{ordinal: len(x.nodes), version: x.version}
		x.nodes = append(x.nodes, n)

		return true
	})

	x.count = len(x.nodes)
	x.checksum = Checksum(x.root)
}

// Snapshot is a read-only view of an Index at one version.
type Snapshot struct {
	version int
	order   map[string]entry
	nodes   []host.Node
}

// Order returns the ordinal of n at the snapshot version, or -1.
func (s *Snapshot) Order(n host.Node) int {
	e, ok := s.order[n.Identity()]
	if !ok {
		return -1
	}

	return e.ordinal
}

func (s *Snapshot) NodeAt(ordinal int) (host.Node, bool) {
	if ordinal < 0 || ordinal >= len(s.nodes) {
		return nil, false
	}

	return s.nodes[ordinal], true
}

// Nodes returns the nodes indexed by ordinal.
func (s *Snapshot) Nodes() []host.Node {
	return append([]host.Node(nil), s.nodes...)
}

func (s *Snapshot) Len() int { return len(s.nodes) }

func (s *Snapshot) Version() int { return s.version }

// Count returns the number of nodes under root, root included.
func Count(root host.Node) int {
	total := 1
	for i := range root.ChildCount() {
		total += Count(root.Child(i))
	}

	return total
}

// Checksum folds, breadth-first, the hash of every identity and every
// direct child count of the subtree under root.
func Checksum(root host.Node) uint64 {
	var sum uint64

	host.Walk(root, func(n host.Node) bool {
		sum = sum*checksumPrime ^ xxhash.Sum64String(n.Identity())
		sum = sum*checksumPrime ^ uint64(n.ChildCount())

		return true
	})

	return sum
}
