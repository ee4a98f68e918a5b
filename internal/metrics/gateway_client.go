package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-gateway-client/pkg/blockchain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "gateway_client",
		Name:      "operations_total",
		Help:      "Count of gateway client operations.",
	}, []string{"operation", "network", "status"})
	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "gateway_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of gateway client operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// GatewayClient tracks metrics for operations issued to the blockchain gateway.
type GatewayClient struct {
	network string
}

// NewGatewayClient constructs a metrics collector for gateway operations.
func NewGatewayClient(network string) *GatewayClient {
	if network == "" {
		network = "unknown"
	}
	return &GatewayClient{network: network}
}

// Observe records a single operation outcome and duration.
func (m GatewayClient) Observe(operation string, err error, started time.Time) {
	status := operationStatus(err)
	gatewayRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	gatewayRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

func operationStatus(err error) string {
	var gwErr *blockchain.GatewayError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, blockchain.ErrInvalidArgument):
		return "invalid_argument"
	case errors.As(err, &gwErr):
		return "gateway_error"
	default:
		return "transport_error"
	}
}
