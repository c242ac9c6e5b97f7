package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/anyproto/any-keys/app"
)

func newVersionsCollector(a *app.App) prometheus.Collector {
	return &versionCollector{prometheus.MustNewConstMetric(prometheus.NewDesc(
		"anykeys_versions",
		"Build information about the application.",
		nil, prometheus.Labels{
			"app_name":    a.AppName(),
			"app_version": a.Version(),
		},
	), prometheus.GaugeValue, 1)}
}

type versionCollector struct {
	ver prometheus.Metric
}

func (v *versionCollector) Describe(descs chan<- *prometheus.Desc) {
	descs <- v.ver.Desc()
}

func (v *versionCollector) Collect(metrics chan<- prometheus.Metric) {
	metrics <- v.ver
}
