package detect

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	corev1 "k8s.io/api/core/v1"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/gateway"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/identity"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/worker"
)

// ClusterGateway is the read-only view of both clusters a scan needs
type ClusterGateway interface {
	Verify(ctx context.Context) error
	Fetch(ctx context.Context) (*gateway.Snapshot, error)
	identity.Source
	Prober
}

// Detector coordinates a scan: fetch, index, per-volume analysis and aggregation
type Detector struct {
	gateway ClusterGateway
	options types.ScanOptions
	now     func() time.Time
}

// NewDetector creates a new scan coordinator
func NewDetector(gw ClusterGateway, options types.ScanOptions) *Detector {
	if options.Concurrency < 1 {
		options.Concurrency = 1
	}
	return &Detector{
		gateway: gw,
		options: options,
		now:     time.Now,
	}
}

// DetectAll verifies cluster access, fetches a snapshot and analyzes it. Errors are returned
// only for unusable clusters; a cancelled scan returns a partial report marked interrupted.
func (d *Detector) DetectAll(ctx context.Context) (*types.Report, error) {
	if err := d.gateway.Verify(ctx); err != nil {
		return nil, err
	}

	snapshot, err := d.gateway.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return d.Analyze(ctx, snapshot)
}

// Analyze runs per-volume analysis over a fetched snapshot on a bounded worker pool and
// aggregates the results. Volume reports keep the sorted volume order regardless of which
// worker finished first.
func (d *Detector) Analyze(ctx context.Context, snapshot *gateway.Snapshot) (*types.Report, error) {
	index := identity.NewIndex(snapshot, d.options.Driver)
	resolver := identity.NewResolver(d.gateway, d.options.ManagementNamespace)

	var events *EventIndex
	if d.options.IncludeEvents {
		events = NewEventIndex(snapshot.Events, snapshot.FetchedAt, d.options.EventLookback)
	}
	analyzer := NewAnalyzer(index, resolver, d.gateway, events, d.options)

	pool, err := worker.NewPool("volume-analysis", d.options.Concurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	volumes := index.BoundVolumes()
	results := make([]types.VolumeReport, len(volumes))
	done := make([]bool, len(volumes))

	log.Info().
		Int("volumes", len(volumes)).
		Int("concurrency", d.options.Concurrency).
		Msg("analyzing bound volumes")

	for i, pv := range volumes {
		err := pool.Submit(ctx, func(ctx context.Context) {
			defer func() {
				if p := recover(); p != nil {
					log.Error().Str("volume", pv.Name).Interface("panic", p).Msg("volume analysis failed")
					results[i] = failedAnalysis(pv, p)
					done[i] = true
				}
			}()
			report, err := analyzer.Analyze(ctx, pv)
			if err != nil {
				log.Debug().Str("volume", pv.Name).Err(err).Msg("analysis abandoned")
				return
			}
			results[i] = report
			done[i] = true
		})
		if err != nil {
			log.Warn().Err(err).Msg("stopped submitting volumes")
			break
		}
	}
	pool.Wait()

	interrupted := ctx.Err() != nil
	analyzed := make([]types.VolumeReport, 0, len(volumes))
	for i := range results {
		if !done[i] {
			interrupted = true
			continue
		}
		analyzed = append(analyzed, results[i])
	}

	report := Aggregate(index, snapshot, analyzed, d.options)
	report.DownstreamContext = d.options.DownstreamContext
	report.ManagementContext = d.options.ManagementContext
	report.ManagementNamespace = d.options.ManagementNamespace
	report.Summary.Interrupted = interrupted
	report.GeneratedAt = d.now()

	if interrupted {
		log.Warn().
			Int("analyzed", len(analyzed)).
			Int("total", len(volumes)).
			Msg("scan interrupted, report is partial")
	}
	return report, nil
}

// failedAnalysis is the report of a volume whose analysis panicked
func failedAnalysis(pv corev1.PersistentVolume, cause interface{}) types.VolumeReport {
	report := types.VolumeReport{Volume: pv.Name}
	if pv.Spec.ClaimRef != nil {
		report.ClaimNamespace = pv.Spec.ClaimRef.Namespace
		report.ClaimName = pv.Spec.ClaimRef.Name
	}
	set := &findingSet{subject: pv.Name}
	set.add(types.SeverityCritical, types.AnalysisFailed, types.CheckAnalysis, "",
		"analysis failed: %v", cause)
	return finish(report, set)
}
