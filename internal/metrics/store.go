package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cnresume",
			Subsystem: "guest",
			Name:      "store_operations_total",
			Help:      "游客存储操作总数。",
		},
		[]string{"operation", "result"},
	)

	decodeFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cnresume",
			Subsystem: "guest",
			Name:      "storage_decode_failures_total",
			Help:      "本地存储记录解码失败总数（损坏记录按缺失处理）。",
		},
	)

	expiryWipesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cnresume",
			Subsystem: "guest",
			Name:      "sync_expiry_wipes_total",
			Help:      "同步保留期到期后清理游客数据的次数。",
		},
	)
)

// ObserveStoreOp 记录一次存储操作及其结果（"ok" / "miss" / "error"）。
func ObserveStoreOp(operation, result string) {
	storeOpsTotal.WithLabelValues(operation, result).Inc()
}

// ObserveDecodeFailure 记录一次持久化记录解码失败。
func ObserveDecodeFailure() {
	decodeFailuresTotal.Inc()
}

// ObserveExpiryWipe 记录一次到期清理。
func ObserveExpiryWipe() {
	expiryWipesTotal.Inc()
}
