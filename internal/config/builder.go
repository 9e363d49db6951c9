package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMode sets the mode.
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Mode = mode
	return b
}

// WithPosition sets the starting position and the moves played from it.
func (b *ConfigBuilder) WithPosition(fen string, moves ...string) *ConfigBuilder {
	b.cfg.FEN = fen
	b.cfg.Moves = moves
	return b
}

// WithPushLimit sets how far an unmoved pawn may advance.
func (b *ConfigBuilder) WithPushLimit(limit int) *ConfigBuilder {
	b.cfg.Engine.PushLimit = limit
	return b
}

// WithChess960 enables Chess960 castling destinations.
func (b *ConfigBuilder) WithChess960(enabled bool) *ConfigBuilder {
	b.cfg.Engine.Castle960 = enabled
	return b
}

// WithDepth sets the perft and search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithCacheDir enables the perft cache in dir.
func (b *ConfigBuilder) WithCacheDir(dir string) *ConfigBuilder {
	b.cfg.Perft.CacheDir = dir
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
