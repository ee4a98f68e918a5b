package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-gateway-client/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/internal/telemetry"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/blockchain"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const serviceName = "blockinsight7000-gateway-cli"

type config struct {
	RestURL          string        `long:"rest-url" env:"GATEWAY_REST_URL" description:"gateway REST root, e.g. https://rest.example.com/v2/" required:"true"`
	Network          string        `long:"network" env:"GATEWAY_NETWORK" description:"network label for metrics" default:"mainnet"`
	Timeout          time.Duration `long:"timeout" env:"GATEWAY_TIMEOUT" description:"timeout of a single gateway request" default:"30s"`
	RPS              int           `long:"rps" env:"GATEWAY_RPS" description:"max gateway requests per second, 0 for unlimited"`
	MaxConns         int           `long:"max-conns" env:"GATEWAY_MAX_CONNS" description:"max concurrent connections to the gateway, 0 for unlimited"`
	TraceEndpoint    string        `long:"trace-endpoint" env:"GATEWAY_TRACE_ENDPOINT" description:"OTLP/HTTP traces endpoint"`
	LegacyTxOutIndex bool          `long:"legacy-txout-index" env:"GATEWAY_LEGACY_TXOUT_INDEX" description:"request the literal n path segment in getTxOut"`
	Debug            bool          `long:"debug" env:"GATEWAY_DEBUG" description:"log every gateway exchange"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	commands, err := registerCommands(parser)
	if err != nil {
		panic("can't register commands: " + err.Error())
	}
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	name := parser.Active.Name
	if err := run(ctx, cfg, commands[name], logger); err != nil {
		var gwErr *blockchain.GatewayError
		if errors.As(err, &gwErr) {
			fmt.Fprintln(os.Stderr, string(gwErr.Payload))
		}
		logger.Fatal("gateway-cli failed", zap.String("command", name), zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(ctx context.Context, cfg config, cmd command, logger *zap.Logger) error {
	shutdown, err := telemetry.InitTracer(ctx, serviceName, cfg.TraceEndpoint)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	client, err := newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("init gateway client: %w", err)
	}
	return cmd.run(ctx, &env{
		client:  client,
		network: cfg.Network,
		logger:  logger,
		out:     os.Stdout,
	})
}

func newClient(cfg config, logger *zap.Logger) (*blockchain.Client, error) {
	tr := transport.NewHTTP(transport.Options{
		Timeout:           cfg.Timeout,
		MaxConnsPerHost:   cfg.MaxConns,
		RequestsPerSecond: cfg.RPS,
	}, logger.Named("transport"))

	opts := []blockchain.ClientOption{
		blockchain.WithMetrics(metrics.NewGatewayClient(cfg.Network)),
	}
	if cfg.LegacyTxOutIndex {
		opts = append(opts, blockchain.WithLiteralTxOutIndex())
	}
	return blockchain.New(cfg.RestURL, tr, opts...)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", zap.Error(err))
		}
	}()
}
