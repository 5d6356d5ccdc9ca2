package storage

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardgraph/pkg/errors"
)

// Backend names accepted by [Open].
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend string // one of the Backend* constants; empty means file

	Dir      string // file and badger directory
	InMemory bool   // badger only

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	Logger *log.Logger
}

// Open creates the backend named by cfg.Backend, instrumented with the
// registered storage hooks.
func Open(ctx context.Context, cfg Config) (Storage, error) {
	s, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Instrument(s, orDefault(cfg.Backend, BackendFile)), nil
}

func open(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "file storage needs a directory")
		}
		return NewFile(cfg.Dir)
	case BackendBadger:
		return OpenBadger(BadgerConfig{
			Path:       cfg.Dir,
			InMemory:   cfg.InMemory,
			SyncWrites: true,
			Logger:     cfg.Logger,
		})
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "redis storage needs an address")
		}
		return OpenRedis(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case BackendMongo:
		if cfg.MongoURI == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "mongo storage needs a URI")
		}
		return OpenMongo(ctx, MongoConfig{
			URI:        cfg.MongoURI,
			Database:   orDefault(cfg.MongoDatabase, "cardgraph"),
			Collection: orDefault(cfg.MongoCollection, "configurations"),
		})
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown storage backend %q", cfg.Backend)
	}
}

// Describe returns a short human-readable location for cfg.
func Describe(cfg Config) string {
	switch cfg.Backend {
	case BackendMemory:
		return "memory"
	case BackendBadger:
		if cfg.InMemory {
			return "badger (in memory)"
		}
		return fmt.Sprintf("badger %s", cfg.Dir)
	case BackendRedis:
		return fmt.Sprintf("redis %s", cfg.RedisAddr)
	case BackendMongo:
		return fmt.Sprintf("mongo %s/%s", orDefault(cfg.MongoDatabase, "cardgraph"), orDefault(cfg.MongoCollection, "configurations"))
	default:
		return fmt.Sprintf("file %s", cfg.Dir)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
