package headers

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/blockchain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	GatewayClient interface {
		GetBlockHash(ctx context.Context, height blockchain.Arg) (string, error)
		GetBlockHeader(ctx context.Context, hashes blockchain.Arg, opts ...blockchain.Option) ([]blockchain.BlockHeader, error)
	}
)
