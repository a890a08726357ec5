package bridge

import (
	"errors"
	"reflect"

	"go.uber.org/zap"

	"serialization-bridge/host"
	"serialization-bridge/internal/analyze"
	"serialization-bridge/internal/cache"
	"serialization-bridge/internal/codec"
	"serialization-bridge/internal/convert"
	"serialization-bridge/internal/hierarchy"
	"serialization-bridge/internal/registry"
)

var (
	ErrNilHost         = errors.New("nil host")
	ErrNilNode         = errors.New("nil node")
	ErrSaveFailed      = errors.New("save failed")
	ErrRestoreFailed   = errors.New("restore failed")
	ErrDuplicateFailed = errors.New("duplication failed")
)

// Bridge owns the caches shared by every save, restore and duplication.
// It is safe for concurrent use on unrelated nodes.
type Bridge struct {
	host      host.Host
	caps      *analyze.Capabilities
	inspector *analyze.Inspector
	registry  *registry.Registry
	kernel    *convert.Kernel
	indexes   *hierarchy.Cache
	codec     codec.Codec
	logger    *zap.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithCodec replaces the default JSON record codec.
func WithCodec(c codec.Codec) Option {
	return func(b *Bridge) {
		b.codec = c
	}
}

// WithCapabilities shares a capability set, typically one with types
// marked by hand.
func WithCapabilities(caps *analyze.Capabilities) Option {
	return func(b *Bridge) {
		if caps != nil {
			b.caps = caps
		}
	}
}

// New creates a bridge over h.
func New(h host.Host, cfg Config, opts ...Option) (*Bridge, error) {
	if h == nil {
		return nil, ErrNilHost
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Bridge{
		host:   h,
		caps:   analyze.NewCapabilities(cfg.Host.Namespaces...),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	sizes := cache.NewSizes(cfg.Cache.Types, cfg.Cache.Members)

	b.inspector = analyze.NewInspector(sizes)
	b.registry = registry.New(b.caps, b.inspector, sizes.Types,
		registry.WithMaxDepth(cfg.Registry.MaxDepth),
		registry.WithLogger(b.logger))
	b.kernel = convert.NewKernel(b.caps, b.inspector, b.logger)
	b.indexes = hierarchy.NewCache(cfg.Cache.Indexes)

	if d, ok := h.(host.Destroyer); ok {
		d.OnDestroy(b.indexes.Forget)
	}

	if b.codec == nil {
		b.codec = codec.NewJSON(h, b.caps, b.inspector)
	}

	return b, nil
}

// Capabilities returns the capability set used for discovery.
func (b *Bridge) Capabilities() *analyze.Capabilities {
	return b.caps
}

// Discover returns the bridge targets of a component type.
func (b *Bridge) Discover(root reflect.Type) ([]registry.BridgeTarget, error) {
	return b.registry.Discover(root)
}

// Order returns the breadth-first ordinal of n below root, or -1.
func (b *Bridge) Order(root, n host.Node) int {
	return b.indexes.Get(root).Order(n)
}
