package cache

// Sizes holds the capacities of the reflection caches.
type Sizes struct {
	Types   int // per-type tables: field lists, accessor pairs, bridge targets
	Members int // per-member lookups: field by name
}

// NewSizes derives the type cache capacity from the configured one. Type
// tables are far fewer than member lookups, so large configurations keep a
// fifth of the requested size and small ones half of it.
func NewSizes(types, members int) Sizes {
	return Sizes{
		Types:   controlled(types),
		Members: max(members, 1),
	}
}

func controlled(size int) int {
	if size > 450 {
		return size / 5
	}

	return max(size/2, 1)
}
