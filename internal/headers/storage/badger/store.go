// Package badger stores oracle state in a BadgerDB key-value store.
package badger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/dgraph-io/badger/v4"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/internal/headers/oracle"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const defaultCacheSize = 4096

// Config holds configuration for the store.
type Config struct {
	// DataDir is required unless InMemory is set.
	DataDir   string
	InMemory  bool
	CacheSize int
}

// Store is a Database backed by BadgerDB. Each ApplyUpdate is one badger transaction.
//
// Decoded header rows are cached. mu keeps a reader from caching a row that a concurrent
// update has just replaced.
type Store struct {
	db      *badger.DB
	cache   *lru.Cache[chainhash.Hash, model.ChainState]
	metrics Metrics
	logger  *zap.Logger

	mu sync.RWMutex
}

var _ oracle.Database = (*Store)(nil)

// Open opens or creates the store described by cfg.
func Open(cfg Config, metrics Metrics, logger *zap.Logger) (*Store, error) {
	if cfg.DataDir == "" && !cfg.InMemory {
		return nil, errors.New("badger data dir is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}

	opts := badger.DefaultOptions(cfg.DataDir).WithLogger(newBadgerLogger(logger.Named("badger")))
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	cache, err := lru.New[chainhash.Hash, model.ChainState](cfg.CacheSize)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create header cache: %w", err)
	}

	return &Store{db: db, cache: cache, metrics: metrics, logger: logger}, nil
}

// Close releases all BadgerDB resources.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RunGC reclaims value log space. badger.ErrNoRewrite is not an error.
func (s *Store) RunGC(discardRatio float64) error {
	err := s.db.RunValueLogGC(discardRatio)
	if errors.Is(err, badger.ErrNoRewrite) {
		return nil
	}
	return err
}
