package keyservice

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opGenerate = "generate"
	opMnemonic = "mnemonic"
	opDerive   = "derive"
	opSign     = "sign"
	opVerify   = "verify"
	opStore    = "store"
	opLoad     = "load"
	opDelete   = "delete"
)

type metrics struct {
	ops            *prometheus.CounterVec
	verifications  *prometheus.CounterVec
	decodeFailures *prometheus.CounterVec
}

func newMetrics() *metrics {
	return &metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "anykeys",
			Subsystem: "keyservice",
			Name:      "operations_total",
			Help:      "Number of completed key operations",
		}, []string{"op"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "anykeys",
			Subsystem: "keyservice",
			Name:      "verifications_total",
			Help:      "Signature verifications by result",
		}, []string{"result"}),
		decodeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "anykeys",
			Subsystem: "keyservice",
			Name:      "decode_failures_total",
			Help:      "Inputs rejected by the decoders",
		}, []string{"kind"}),
	}
}

func (m *metrics) register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.ops, m.verifications, m.decodeFailures} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *metrics) op(name string) {
	m.ops.WithLabelValues(name).Inc()
}

func (m *metrics) verification(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.verifications.WithLabelValues(result).Inc()
}

func (m *metrics) decodeFailure(kind Kind) {
	m.decodeFailures.WithLabelValues(kind.String()).Inc()
}
