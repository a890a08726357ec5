package registry

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"serialization-bridge/internal/analyze"
	"serialization-bridge/internal/cache"
)

// DefaultMaxDepth bounds discovery paths. Deeper paths only come from a
// type that reaches itself through plain fields.
const DefaultMaxDepth = 150

// ErrStructuralCycle is returned when discovery exceeds the depth bound.
var ErrStructuralCycle = errors.New("structural cycle detected")

// Registry caches the bridge targets of every root type it has seen.
type Registry struct {
	caps      *analyze.Capabilities
	inspector *analyze.Inspector
	targets   *cache.LRU[reflect.Type, []BridgeTarget]
	maxDepth  int
	logger    *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(r *Registry) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// WithLogger sets the logger used to trace discovered targets.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a registry holding the targets of at most size root types.
func New(caps *analyze.Capabilities, inspector *analyze.Inspector, size int, opts ...Option) *Registry {
	r := &Registry{
		caps:      caps,
		inspector: inspector,
		targets:   cache.MustNew[reflect.Type, []BridgeTarget](max(size, 1)),
		maxDepth:  DefaultMaxDepth,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Discover returns the bridge targets of root, scanning it on first
// encounter. Targets come in discovery order: a field precedes the targets
// nested inside it.
func (r *Registry) Discover(root reflect.Type) ([]BridgeTarget, error) {
	if root == nil {
		return nil, errors.New("nil root type")
	}

	return r.targets.GetOrAdd(root, func() ([]BridgeTarget, error) {
		var found []BridgeTarget

		if err := r.scan(root, root, nil, &found); err != nil {
			r.logger.Warn("discovery aborted",
				zap.String("root", analyze.IDOf(root).String()),
				zap.Error(err))

			return nil, err
		}

		for _, t := range found {
			r.logger.Debug("registered bridge target",
				zap.String("root", t.RootName()),
				zap.String("path", t.Path.String()),
				zap.Bool("collection", t.IsCollection))
		}

		return found, nil
	})
}

// Len is the number of root types currently cached.
func (r *Registry) Len() int {
	return r.targets.Len()
}

func (r *Registry) scan(root, owner reflect.Type, path FieldPath, found *[]BridgeTarget) error {
	for _, f := range r.inspector.Fields(owner) {
		elem, isCollection := f.Type, false

		switch f.Type.Kind() {
		case reflect.Slice:
			elem, isCollection = f.Type.Elem(), true
		case reflect.Array:
			_, elem = analyze.ArrayShape(f.Type)
			isCollection = true
		case reflect.Map, reflect.Chan, reflect.Func:
			continue
		}

		if !r.caps.IsAutoSerializable(elem) {
			continue
		}

		current := path.with(f)
		if len(current) > r.maxDepth {
			return fmt.Errorf("%w: %s exceeds %d fields at %s",
				ErrStructuralCycle, analyze.IDOf(root), r.maxDepth, current.String())
		}

		*found = append(*found, BridgeTarget{Root: root, Path: current, IsCollection: isCollection})

		if !isCollection && r.caps.IsTraversable(elem) {
			if err := r.scan(root, elem, current, found); err != nil {
				return err
			}
		}
	}

	return nil
}
