// Package config holds the settings shared by the dynaalign binaries.
//
// Values are resolved in order: built-in defaults, DYNAALIGN_* environment
// variables, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aria-lang/dynaalign-go/internal/alignment"
	"github.com/aria-lang/dynaalign-go/internal/logging"
	"github.com/aria-lang/dynaalign-go/internal/minhash"
	"github.com/aria-lang/dynaalign-go/internal/substitution"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "DYNAALIGN_"

var errOutOfRange = errors.New("value out of range")

// Config holds server and computation settings.
type Config struct {
	Host           string
	Port           int
	LogLevel       string
	LogFormat      string
	Workers        int
	Matrix         string
	GapOpen        int
	GapExtend      int
	K              int
	NumHash        int
	Seed           uint64
	CacheSize      int
	MaxBodyBytes   int64
	RequestTimeout time.Duration

	// RateLimit is the sustained requests per second admitted by the
	// server, with bursts up to RateBurst. 0 disables limiting.
	RateLimit float64
	RateBurst int

	// MaxConcurrent bounds matrix builds running at once. 0 is unbounded.
	MaxConcurrent int
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Host:           "localhost",
		Port:           8080,
		LogLevel:       "info",
		LogFormat:      "text",
		Workers:        0,
		Matrix:         substitution.DefaultMatrix,
		GapOpen:        alignment.DefaultGapOpen,
		GapExtend:      alignment.DefaultGapExtend,
		K:              minhash.DefaultK,
		NumHash:        minhash.DefaultNumHash,
		Seed:           minhash.DefaultSeed,
		CacheSize:      256,
		MaxBodyBytes:   4 << 20,
		RequestTimeout: 60 * time.Second,
		RateBurst:      20,
	}
}

// RegisterFlags binds every field to a flag on fs, using the current
// values as flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Host, "host", c.Host, "Host to bind to")
	fs.IntVar(&c.Port, "port", c.Port, "Port to listen on")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format (text, json)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "Parallel workers per matrix build (0 = GOMAXPROCS)")
	fs.StringVar(&c.Matrix, "matrix", c.Matrix, "Default substitution matrix")
	fs.IntVar(&c.GapOpen, "gap-open", c.GapOpen, "Default gap open cost")
	fs.IntVar(&c.GapExtend, "gap-extend", c.GapExtend, "Default gap extend cost")
	fs.IntVar(&c.K, "k", c.K, "Default MinHash shingle length")
	fs.IntVar(&c.NumHash, "num-hash", c.NumHash, "Default MinHash signature length")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Default MinHash seed")
	fs.IntVar(&c.CacheSize, "cache-size", c.CacheSize, "Response cache entries (0 disables)")
	fs.Int64Var(&c.MaxBodyBytes, "max-body-bytes", c.MaxBodyBytes, "Maximum request body size")
	fs.DurationVar(&c.RequestTimeout, "timeout", c.RequestTimeout, "Per-request timeout")
	fs.Float64Var(&c.RateLimit, "rate-limit", c.RateLimit, "Requests per second (0 disables)")
	fs.IntVar(&c.RateBurst, "rate-burst", c.RateBurst, "Request burst size when rate limiting")
	fs.IntVar(&c.MaxConcurrent, "max-concurrent", c.MaxConcurrent, "Concurrent matrix builds (0 = unbounded)")
}

// LoadEnv overrides fields from DYNAALIGN_* variables found by lookup,
// typically os.LookupEnv.
func (c *Config) LoadEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("HOST"); ok {
		c.Host = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := get("MATRIX"); ok {
		c.Matrix = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"PORT", &c.Port},
		{"WORKERS", &c.Workers},
		{"GAP_OPEN", &c.GapOpen},
		{"GAP_EXTEND", &c.GapExtend},
		{"K", &c.K},
		{"NUM_HASH", &c.NumHash},
		{"CACHE_SIZE", &c.CacheSize},
		{"RATE_BURST", &c.RateBurst},
		{"MAX_CONCURRENT", &c.MaxConcurrent},
	}
	for _, f := range ints {
		v, ok := get(f.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, f.name, err)
		}
		*f.dst = n
	}

	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := get("MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sMAX_BODY_BYTES: %w", EnvPrefix, err)
		}
		c.MaxBodyBytes = n
	}
	if v, ok := get("TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err)
		}
		c.RequestTimeout = d
	}
	if v, ok := get("RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sRATE_LIMIT: %w", EnvPrefix, err)
		}
		c.RateLimit = f
	}

	return nil
}

// Load resolves defaults, environment and args, then validates.
func Load(fs *flag.FlagSet, args []string, lookup func(string) (string, bool)) (*Config, error) {
	c := Default()
	if err := c.LoadEnv(lookup); err != nil {
		return nil, err
	}
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings no component could run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return substitution.NewConfigurationError("port", c.Port, errOutOfRange)
	}
	if c.Workers < 0 {
		return substitution.NewConfigurationError("workers", c.Workers, errOutOfRange)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return substitution.NewConfigurationError("log_level", c.LogLevel, err)
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		return substitution.NewConfigurationError("log_format", c.LogFormat, errOutOfRange)
	}
	if _, err := substitution.Lookup(c.Matrix); err != nil {
		return err
	}
	if err := substitution.ValidateGaps(c.GapOpen, c.GapExtend); err != nil {
		return err
	}
	if c.K < 1 {
		return substitution.NewConfigurationError("k", c.K, errOutOfRange)
	}
	if c.NumHash < 1 {
		return substitution.NewConfigurationError("num_hash", c.NumHash, minhash.ErrInvalidNumHash)
	}
	if c.CacheSize < 0 {
		return substitution.NewConfigurationError("cache_size", c.CacheSize, errOutOfRange)
	}
	if c.MaxBodyBytes <= 0 {
		return substitution.NewConfigurationError("max_body_bytes", c.MaxBodyBytes, errOutOfRange)
	}
	if c.RequestTimeout <= 0 {
		return substitution.NewConfigurationError("timeout", c.RequestTimeout, errOutOfRange)
	}
	if c.RateLimit < 0 {
		return substitution.NewConfigurationError("rate_limit", c.RateLimit, errOutOfRange)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return substitution.NewConfigurationError("rate_burst", c.RateBurst, errOutOfRange)
	}
	if c.MaxConcurrent < 0 {
		return substitution.NewConfigurationError("max_concurrent", c.MaxConcurrent, errOutOfRange)
	}
	return nil
}

// Addr returns host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
