// Package main runs a header oracle fed by a bitcoind-compatible node.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/headeroracle/internal/headers/bitcoin"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/internal/headers/oracle"
	"github.com/goodnatureofminers/headeroracle/internal/headers/repository/clickhouse"
	"github.com/goodnatureofminers/headeroracle/internal/headers/service/archive"
	"github.com/goodnatureofminers/headeroracle/internal/headers/service/follower"
	"github.com/goodnatureofminers/headeroracle/internal/headers/storage/badger"
	"github.com/goodnatureofminers/headeroracle/internal/headers/storage/memory"
	"github.com/goodnatureofminers/headeroracle/internal/metrics"
	observed "github.com/goodnatureofminers/headeroracle/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/headeroracle/internal/transport"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

const (
	storeBadger = "badger"
	storeMemory = "memory"
)

type config struct {
	Coin    model.Coin    `long:"coin" env:"HEADER_ORACLE_COIN" description:"coin name (BTC, BCH, LTC)" required:"true"`
	Network model.Network `long:"network" env:"HEADER_ORACLE_NETWORK" description:"network name" required:"true"`

	Store      string        `long:"store" env:"HEADER_ORACLE_STORE" description:"header store" choice:"badger" choice:"memory" default:"badger"`
	DataDir    string        `long:"data-dir" env:"HEADER_ORACLE_DATA_DIR" description:"badger data directory" default:"data/headers"`
	CacheSize  int           `long:"cache-size" env:"HEADER_ORACLE_CACHE_SIZE" description:"decoded header cache entries" default:"4096"`
	GCInterval time.Duration `long:"gc-interval" env:"HEADER_ORACLE_GC_INTERVAL" description:"badger value log GC interval" default:"10m"`

	Checkpoint      string `long:"checkpoint" env:"HEADER_ORACLE_CHECKPOINT" description:"checkpoint to install on start (height:hash)"`
	CheckpointReorg bool   `long:"checkpoint-reorg" env:"HEADER_ORACLE_CHECKPOINT_REORG" description:"let a checkpoint reorganize the best chain"`

	RPCURL      string `long:"rpc-url" env:"HEADER_ORACLE_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string `long:"rpc-user" env:"HEADER_ORACLE_RPC_USER" description:"node RPC username"`
	RPCPassword string `long:"rpc-password" env:"HEADER_ORACLE_RPC_PASSWORD" description:"node RPC password"`
	RPCWorkers  int    `long:"rpc-workers" env:"HEADER_ORACLE_RPC_WORKERS" description:"concurrent header fetches" default:"8"`
	ZMQAddr     string `long:"zmq-addr" env:"HEADER_ORACLE_ZMQ_ADDR" description:"node zmq hashblock endpoint"`

	BatchSize    int64         `long:"batch-size" env:"HEADER_ORACLE_BATCH_SIZE" description:"headers fetched per round" default:"2000"`
	MinLookback  int64         `long:"min-lookback" env:"HEADER_ORACLE_MIN_LOOKBACK" description:"heights refetched below the tip" default:"6"`
	MaxLookback  int64         `long:"max-lookback" env:"HEADER_ORACLE_MAX_LOOKBACK" description:"upper bound for the lookback" default:"2016"`
	PollInterval time.Duration `long:"poll-interval" env:"HEADER_ORACLE_POLL_INTERVAL" description:"wait between rounds once caught up" default:"5s"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"HEADER_ORACLE_CLICKHOUSE_DSN" description:"ClickHouse DSN for the chain event archive"`

	MetricsAddr string `long:"metrics-addr" env:"HEADER_ORACLE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	GRPCAddr    string `long:"grpc-addr" env:"HEADER_ORACLE_GRPC_ADDR" description:"address for the gRPC health server" default:":8000"`
	HTTPAddr    string `long:"http-addr" env:"HEADER_ORACLE_HTTP_ADDR" description:"address for the HTTP status server" default:":8001"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("header oracle failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	chainType := model.NewChainType(cfg.Coin, cfg.Network)
	logger = logger.With(zap.String("coin", string(cfg.Coin)), zap.String("network", string(cfg.Network)))

	var checkpoint *model.Checkpoint
	if cfg.Checkpoint != "" {
		cp, err := parseCheckpoint(cfg.Checkpoint)
		if err != nil {
			return err
		}
		checkpoint = &cp
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	db, closeDB, err := openStore(ctx, cfg, chainType, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	opts := []oracle.Option{
		oracle.WithMetrics(metrics.NewHeaderOracle(cfg.Coin, cfg.Network)),
		oracle.WithCheckpointReorg(cfg.CheckpointReorg),
		oracle.WithNotifier(oracle.NotifierFunc(func(_ context.Context, event model.Reorg) {
			if event.IsReorg() {
				logger.Info("best chain reorganized",
					zap.Stringer("old_tip", event.OldTip()),
					zap.Stringer("new_tip", event.Tip()),
					zap.Int("depth", event.Depth()),
				)
			}
		})),
	}

	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer repo.Close()

		notifier, err := archive.NewNotifier(repo, metrics.NewArchive(cfg.Coin, cfg.Network), archive.Config{}, logger)
		if err != nil {
			return fmt.Errorf("init archive: %w", err)
		}
		notifier.Start(ctx)
		defer notifier.Stop()
		opts = append(opts, oracle.WithNotifier(notifier))
	}

	headerOracle, err := oracle.New(ctx, db, chainType, logger, opts...)
	if err != nil {
		return fmt.Errorf("init header oracle: %w", err)
	}
	if checkpoint != nil {
		if err := headerOracle.AddCheckpoint(ctx, checkpoint.Height, checkpoint.Hash); err != nil {
			return fmt.Errorf("install checkpoint %s: %w", checkpoint, err)
		}
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc, err := observed.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))
	if err != nil {
		return err
	}
	source, err := bitcoin.NewHeaderSource(rpc, chainType, cfg.RPCWorkers, logger)
	if err != nil {
		return fmt.Errorf("init header source: %w", err)
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return err
	}

	svc, err := follower.NewService(
		source,
		headerOracle,
		metrics.NewFollower(cfg.Coin, cfg.Network),
		follower.Config{
			BatchSize:    cfg.BatchSize,
			MinLookback:  cfg.MinLookback,
			MaxLookback:  cfg.MaxLookback,
			PollInterval: cfg.PollInterval,
		},
		chainType,
		logger,
		blockSignal,
	)
	if err != nil {
		return err
	}

	handler, err := transport.NewStatusHandler(headerOracle, logger)
	if err != nil {
		return err
	}
	if err := startGRPCServer(ctx, cfg.GRPCAddr, logger); err != nil {
		return err
	}
	startHTTPServer(ctx, cfg.HTTPAddr, handler, logger)

	return svc.Run(ctx)
}

func openStore(ctx context.Context, cfg config, chainType model.ChainType, logger *zap.Logger) (oracle.Database, func(), error) {
	switch cfg.Store {
	case storeMemory:
		return memory.New(), func() {}, nil
	case storeBadger:
		store, err := badger.Open(badger.Config{
			DataDir:   cfg.DataDir,
			CacheSize: cfg.CacheSize,
		}, metrics.NewHeaderStore(chainType.Coin, chainType.Network), logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open badger store: %w", err)
		}
		go runValueLogGC(ctx, store, cfg.GCInterval, logger)
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("close badger store", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
