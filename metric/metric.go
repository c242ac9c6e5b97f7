package metric

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/anyproto/any-keys/app"
	"github.com/anyproto/any-keys/app/logger"
)

const CName = "common.metric"

var log = logger.NewNamed(CName)

func New() Metric {
	return new(metric)
}

type Metric interface {
	Registry() *prometheus.Registry
	// Addr returns the address the /metrics listener is bound to, empty when it is disabled
	Addr() string
	app.ComponentRunnable
}

type Config struct {
	Addr string `yaml:"addr"`
}

type configSource interface {
	GetMetric() Config
}

type metric struct {
	registry *prometheus.Registry
	config   Config
	a        *app.App
	server   *http.Server
	listener net.Listener
}

func (m *metric) Init(a *app.App) (err error) {
	m.a = a
	m.registry = prometheus.NewRegistry()
	m.config = a.MustComponent("config").(configSource).GetMetric()
	return nil
}

func (m *metric) Name() string {
	return CName
}

func (m *metric) Run(ctx context.Context) (err error) {
	if err = m.registry.Register(collectors.NewBuildInfoCollector()); err != nil {
		return err
	}
	if err = m.registry.Register(collectors.NewGoCollector()); err != nil {
		return err
	}
	if err = m.registry.Register(newVersionsCollector(m.a)); err != nil {
		return err
	}
	if m.config.Addr == "" {
		return
	}
	if m.listener, err = net.Listen("tcp", m.config.Addr); err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.server = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if serr := m.server.Serve(m.listener); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			log.Warn("metric server stopped", zap.Error(serr))
		}
	}()
	log.Info("metric server started", zap.String("addr", m.Addr()))
	return
}

func (m *metric) Registry() *prometheus.Registry {
	return m.registry
}

func (m *metric) Addr() string {
	if m.listener == nil {
		return ""
	}
	return m.listener.Addr().String()
}

func (m *metric) Close(ctx context.Context) (err error) {
	if m.server != nil {
		return m.server.Shutdown(ctx)
	}
	return
}
