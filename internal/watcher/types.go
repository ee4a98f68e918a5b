package watcher

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/blockchain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	GatewayClient interface {
		GetBestBlockHash(ctx context.Context) (string, error)
		GetBlockHeader(ctx context.Context, hashes blockchain.Arg, opts ...blockchain.Option) ([]blockchain.BlockHeader, error)
		GetChainTips(ctx context.Context) ([]blockchain.ChainTip, error)
	}
	TipWatcherMetrics interface {
		ObservePoll(err error, started time.Time)
		ObserveTip(height int64)
		ObserveChainTips(byStatus map[string]int)
	}
)
