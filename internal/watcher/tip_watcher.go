// Package watcher follows the best chain tip reported by the gateway.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-gateway-client/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/blockchain"
	"go.uber.org/zap"
)

const (
	defaultInterval = 10 * time.Second
	retryBaseDelay  = time.Second
)

// Tip is a best block observed by the watcher.
type Tip struct {
	Header    blockchain.BlockHeader
	ChainTips []blockchain.ChainTip
}

// TipWatcher polls the best block hash and reports each change.
type TipWatcher struct {
	client   GatewayClient
	metrics  TipWatcherMetrics
	logger   *zap.Logger
	interval time.Duration
	onTip    func(Tip)

	lastHash string
}

// NewTipWatcher builds a TipWatcher. onTip may be nil.
func NewTipWatcher(
	client GatewayClient,
	metrics TipWatcherMetrics,
	interval time.Duration,
	logger *zap.Logger,
	onTip func(Tip),
) (*TipWatcher, error) {
	if client == nil {
		return nil, errors.New("gateway client is required")
	}
	if metrics == nil {
		return nil, errors.New("tip watcher metrics is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TipWatcher{
		client:   client,
		metrics:  metrics,
		logger:   logger,
		interval: interval,
		onTip:    onTip,
	}, nil
}

// Run polls until the context is canceled. Failed polls are logged and retried with a growing
// delay capped at the poll interval.
func (w *TipWatcher) Run(ctx context.Context) error {
	backoff := clock.Backoff{Base: retryBaseDelay, Max: w.interval}
	failures := 0

	for {
		delay := w.interval
		if _, err := w.Poll(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			delay = backoff.Delay(failures)
			w.logger.Warn("poll failed", zap.Error(err), zap.Int("failures", failures), zap.Duration("retry_in", delay))
		} else {
			failures = 0
		}

		if err := clock.Wait(ctx, delay); err != nil {
			return err
		}
	}
}

// Poll checks the best block once. It reports whether the tip changed since the previous
// successful poll.
func (w *TipWatcher) Poll(ctx context.Context) (changed bool, err error) {
	started := time.Now()
	defer func() {
		w.metrics.ObservePoll(err, started)
	}()

	hash, err := w.client.GetBestBlockHash(ctx)
	if err != nil {
		return false, fmt.Errorf("get best block hash: %w", err)
	}
	if hash == w.lastHash {
		return false, nil
	}

	headers, err := w.client.GetBlockHeader(ctx, blockchain.ID(hash))
	if err != nil {
		return false, fmt.Errorf("get block header %s: %w", hash, err)
	}
	if len(headers) != 1 {
		return false, fmt.Errorf("get block header %s: expected 1 header, got %d", hash, len(headers))
	}
	tips, err := w.client.GetChainTips(ctx)
	if err != nil {
		return false, fmt.Errorf("get chain tips: %w", err)
	}

	header := headers[0]
	byStatus := make(map[string]int)
	for _, tip := range tips {
		byStatus[string(tip.Status)]++
	}

	w.metrics.ObserveTip(header.Height)
	w.metrics.ObserveChainTips(byStatus)
	w.logger.Info("new best block",
		zap.String("hash", hash),
		zap.Int64("height", header.Height),
		zap.String("previous", header.PreviousBlockHash),
		zap.Int("chain_tips", len(tips)),
	)

	w.lastHash = hash
	if w.onTip != nil {
		w.onTip(Tip{Header: header, ChainTips: tips})
	}
	return true, nil
}
