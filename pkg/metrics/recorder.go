// Package metrics exports scan results as Prometheus series and provides queries and
// alerting rules over them.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

const namespace = "hotplug_scan"

// Recorder holds the gauges of one scan on a private registry, so nothing leaks into
// the default registry of an embedding program.
type Recorder struct {
	registry     *prometheus.Registry
	findings     *prometheus.GaugeVec
	volumes      *prometheus.GaugeVec
	nodeFindings *prometheus.GaugeVec
	lastRun      prometheus.Gauge
}

// NewRecorder creates a recorder whose series carry the downstream cluster as a constant label
func NewRecorder(cluster string) *Recorder {
	constLabels := prometheus.Labels{"cluster": cluster}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		findings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "findings",
			Help:        "Number of findings of the last scan by severity.",
			ConstLabels: constLabels,
		}, []string{"severity"}),
		volumes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "volumes",
			Help:        "Number of volumes of the last scan by state.",
			ConstLabels: constLabels,
		}, []string{"state"}),
		nodeFindings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "node_findings",
			Help:        "Number of CRITICAL and WARNING findings attributed to a node.",
			ConstLabels: constLabels,
		}, []string{"node", "severity"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "last_run_timestamp_seconds",
			Help:        "Unix time the last scan report was generated.",
			ConstLabels: constLabels,
		}),
	}

	r.registry.MustRegister(r.findings, r.volumes, r.nodeFindings, r.lastRun)
	return r
}

// Record sets every gauge from a report, replacing earlier values
func (r *Recorder) Record(report *types.Report) {
	s := report.Summary

	r.findings.Reset()
	r.findings.WithLabelValues(string(types.SeverityCritical)).Set(float64(s.Critical))
	r.findings.WithLabelValues(string(types.SeverityWarning)).Set(float64(s.Warning))
	r.findings.WithLabelValues(string(types.SeverityInfo)).Set(float64(s.Info))

	r.volumes.Reset()
	r.volumes.WithLabelValues("analyzed").Set(float64(s.VolumesAnalyzed))
	r.volumes.WithLabelValues("with_issues").Set(float64(s.VolumesWithIssues))
	r.volumes.WithLabelValues("ok").Set(float64(s.VolumesOK))
	r.volumes.WithLabelValues("unbound").Set(float64(s.UnboundVolumes))
	r.volumes.WithLabelValues("orphaned_attachments").Set(float64(s.OrphanedAttachments))

	r.nodeFindings.Reset()
	for _, n := range report.NodeImpact {
		r.nodeFindings.WithLabelValues(n.Node, string(types.SeverityCritical)).Set(float64(n.Critical))
		r.nodeFindings.WithLabelValues(n.Node, string(types.SeverityWarning)).Set(float64(n.Warning))
	}

	r.lastRun.Set(float64(report.GeneratedAt.Unix()))
}

// Registry returns the private registry holding the scan series
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the series in text exposition format for the node exporter
// textfile collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
