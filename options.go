package wld

// openConfig holds the resolved state of every OpenOption.
type openConfig struct {
	log     *Logger
	allowed map[uint32]bool
}

func defaultOpenConfig() *openConfig {
	cfg := &openConfig{
		log:     NewLogger(nil),
		allowed: make(map[uint32]bool, len(supportedVersions)),
	}
	for _, v := range supportedVersions {
		cfg.allowed[v] = true
	}
	return cfg
}

// OpenOption customizes Open, following the teacher's functional-option
// shape (options.go's Option func(*Superblock) error).
type OpenOption func(*openConfig)

// WithLogger routes every warning/error raised while parsing to log instead
// of the default no-op sink.
func WithLogger(log *Logger) OpenOption {
	return func(cfg *openConfig) {
		cfg.log = log
	}
}

// WithAllowedVersions extends (does not replace) the set of world versions
// Open will accept, without touching library source.
func WithAllowedVersions(versions ...uint32) OpenOption {
	return func(cfg *openConfig) {
		for _, v := range versions {
			cfg.allowed[v] = true
		}
	}
}

// newConfig holds the resolved state of every NewOption.
type newConfig struct {
	log       *Logger
	generator Generator
}

func defaultNewConfig() *newConfig {
	return &newConfig{
		log:       NewLogger(nil),
		generator: nil,
	}
}

// NewOption customizes New.
type NewOption func(*newConfig)

// WithNewLogger routes New's diagnostics to log.
func WithNewLogger(log *Logger) NewOption {
	return func(cfg *newConfig) {
		cfg.log = log
	}
}

// WithGenerator installs a WorldGen hook to populate the tile matrix and
// derive header fields from the seed. Without one, New produces an empty
// grid and sets no seed-mode header flags (see worldgen.go).
func WithGenerator(g Generator) NewOption {
	return func(cfg *newConfig) {
		cfg.generator = g
	}
}
