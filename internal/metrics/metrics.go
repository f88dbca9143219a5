// Package metrics records generation runs as Prometheus gauges and writes them
// to a textfile for the node exporter textfile collector.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"resumemcp/internal/domain"
	"resumemcp/internal/ports"
)

// Metrics holds the collectors describing the last run.
type Metrics struct {
	registry *prometheus.Registry
	textfile string

	Entities         *prometheus.GaugeVec
	Artifacts        *prometheus.GaugeVec
	ArtifactsWritten prometheus.Gauge
	Clusters         prometheus.Gauge
	DuplicateIDs     prometheus.Gauge
	RunDuration      prometheus.Gauge
	LastSuccess      prometheus.Gauge
}

// Ensure Metrics implements RunRecorder
var _ ports.RunRecorder = (*Metrics)(nil)

// New creates the collectors on a private registry. When textfile is non-empty
// every recorded run is flushed there.
func New(textfile string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		textfile: textfile,
		Entities: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "resumemcp_entities",
				Help: "Entities in the input document by kind.",
			},
			[]string{"kind"},
		),
		Artifacts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "resumemcp_artifacts",
				Help: "Artifacts in the output tree by kind.",
			},
			[]string{"kind"},
		),
		ArtifactsWritten: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "resumemcp_artifacts_written",
				Help: "Artifacts whose content changed in the last run.",
			},
		),
		Clusters: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "resumemcp_skill_clusters",
				Help: "Skill clusters shared by more than one project.",
			},
		),
		DuplicateIDs: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "resumemcp_duplicate_ids",
				Help: "Ids repeated within a collection of the input document.",
			},
		),
		RunDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "resumemcp_run_duration_seconds",
				Help: "Wall time of the last generation run.",
			},
		),
		LastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "resumemcp_last_success_timestamp_seconds",
				Help: "Unix time the last successful run finished.",
			},
		),
	}

	m.registry.MustRegister(
		m.Entities,
		m.Artifacts,
		m.ArtifactsWritten,
		m.Clusters,
		m.DuplicateIDs,
		m.RunDuration,
		m.LastSuccess,
	)

	return m
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRun sets every gauge from stats and flushes the textfile.
func (m *Metrics) RecordRun(stats domain.RunStats) error {
	m.Entities.WithLabelValues(string(domain.KindExperience)).Set(float64(stats.Experiences))
	m.Entities.WithLabelValues(string(domain.KindProject)).Set(float64(stats.Projects))
	m.Entities.WithLabelValues(string(domain.KindSkill)).Set(float64(stats.Skills))

	for _, kind := range []domain.ArtifactKind{
		domain.ArtifactManifest,
		domain.ArtifactResource,
		domain.ArtifactTool,
		domain.ArtifactIndex,
	} {
		m.Artifacts.WithLabelValues(string(kind)).Set(float64(stats.Artifacts.ByKind[kind]))
	}
	m.ArtifactsWritten.Set(float64(stats.Artifacts.Written))
	m.Clusters.Set(float64(stats.Clusters))
	m.DuplicateIDs.Set(float64(stats.Duplicates))
	m.RunDuration.Set(stats.Duration.Seconds())
	m.LastSuccess.Set(float64(stats.FinishedAt.Unix()))

	if m.textfile == "" {
		return nil
	}
	return m.WriteTextfile(m.textfile)
}

// WriteTextfile writes the registry in text exposition format. The file is
// replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
