// Package headers fetches contiguous ranges of block headers from the gateway.
package headers

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/blockchain"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultWorkerCount = 8
	maxRangeSize       = 10_000
)

// RangeFetcher resolves a height range to hashes with concurrent lookups and fetches the headers
// with a single batch request.
type RangeFetcher struct {
	client      GatewayClient
	workerCount int
	logger      *zap.Logger
}

// NewRangeFetcher builds a RangeFetcher. A non-positive workerCount uses the default.
func NewRangeFetcher(client GatewayClient, workerCount int, logger *zap.Logger) (*RangeFetcher, error) {
	if client == nil {
		return nil, errors.New("gateway client is required")
	}
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RangeFetcher{
		client:      client,
		workerCount: workerCount,
		logger:      logger,
	}, nil
}

// Fetch returns the headers for heights from..to inclusive, in height order.
func (f *RangeFetcher) Fetch(ctx context.Context, from, to uint64) ([]blockchain.BlockHeader, error) {
	if to < from {
		return nil, fmt.Errorf("invalid range: from %d is above to %d", from, to)
	}
	if to-from >= maxRangeSize {
		return nil, fmt.Errorf("range of %d heights exceeds limit %d", to-from+1, maxRangeSize)
	}

	heights := make([]int64, 0, to-from+1)
	for h := from; h <= to; h++ {
		height, err := safe.Int64(h)
		if err != nil {
			return nil, err
		}
		heights = append(heights, height)
	}

	hashes, err := workerpool.Map(ctx, f.workerCount, heights, func(ctx context.Context, height int64) (string, error) {
		hash, err := f.client.GetBlockHash(ctx, blockchain.Height(height))
		if err != nil {
			return "", fmt.Errorf("get block hash at height %d: %w", height, err)
		}
		return hash, nil
	})
	if err != nil {
		return nil, err
	}
	f.logger.Debug("resolved block hashes", zap.Uint64("from", from), zap.Uint64("to", to), zap.Int("count", len(hashes)))

	headers, err := f.client.GetBlockHeader(ctx, blockchain.IDs(hashes...))
	if err != nil {
		return nil, fmt.Errorf("get block headers: %w", err)
	}
	return headers, nil
}
