package detect

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	corev1 "k8s.io/api/core/v1"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/identity"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// Prober performs liveness point lookups on the management cluster
type Prober interface {
	PodExists(ctx context.Context, namespace, name string) bool
}

// Analyzer correlates one bound volume across both clusters and classifies every
// disagreement it finds. It only reads the shared index, so one Analyzer can serve
// many workers.
type Analyzer struct {
	index    *identity.Index
	resolver *identity.Resolver
	prober   Prober
	events   *EventIndex
	options  types.ScanOptions
}

// NewAnalyzer creates a per-volume analyzer. events may be nil when event enrichment is off.
func NewAnalyzer(index *identity.Index, resolver *identity.Resolver, prober Prober, events *EventIndex, options types.ScanOptions) *Analyzer {
	if options.ProbeConcurrency < 1 {
		options.ProbeConcurrency = 1
	}
	return &Analyzer{
		index:    index,
		resolver: resolver,
		prober:   prober,
		events:   events,
		options:  options,
	}
}

// findingSet accumulates the ordered findings of one volume
type findingSet struct {
	subject string
	items   []types.Finding
}

func (s *findingSet) add(severity types.Severity, issueType types.IssueType, check types.Check, node, format string, args ...interface{}) {
	s.items = append(s.items, types.Finding{
		Subject:  s.subject,
		Severity: severity,
		Type:     issueType,
		Check:    check,
		Message:  fmt.Sprintf(format, args...),
		Node:     node,
	})
}

// Analyze runs the ordered checks for one bound volume. It returns an error only when ctx
// is cancelled mid-analysis, in which case the partial result must be discarded because
// cancelled probes are indistinguishable from ghosts.
func (a *Analyzer) Analyze(ctx context.Context, pv corev1.PersistentVolume) (types.VolumeReport, error) {
	report := types.VolumeReport{Volume: pv.Name}
	set := &findingSet{subject: pv.Name}

	// Claim resolution. Without a claim nothing else can be joined.
	if pv.Spec.ClaimRef == nil || pv.Spec.ClaimRef.Name == "" {
		set.add(types.SeverityCritical, types.MissingClaimRef, types.CheckClaim, "",
			"bound volume has no claim reference")
		return finish(report, set), nil
	}
	report.ClaimNamespace = pv.Spec.ClaimRef.Namespace
	report.ClaimName = pv.Spec.ClaimRef.Name
	mode := primaryAccessMode(pv)
	report.AccessMode = string(mode)
	report.SingleWriter = isSingleWriter(mode)

	resolution := a.resolver.Resolve(ctx, pv.Name)
	if err := ctx.Err(); err != nil {
		return types.VolumeReport{}, err
	}
	report.ManagementPVC = resolution.ManagementPVC
	report.BlockVolume = resolution.BlockVolumeName
	switch {
	case !resolution.Mapped():
		set.add(types.SeverityWarning, types.MissingManagementPVC, types.CheckResolution, "", "%s", resolution.Reason)
	case !resolution.Resolved():
		set.add(types.SeverityWarning, types.MissingBlockVolume, types.CheckResolution, "", "%s", resolution.Reason)
	}

	a.correlatePods(&report, set)
	a.correlateAttachments(&report, set)
	a.correlateMachineSpecs(&report, set)

	if resolution.Resolved() {
		a.correlateBlockStorage(ctx, &report, set, resolution.BlockVolume)
		if err := ctx.Err(); err != nil {
			return types.VolumeReport{}, err
		}
	}

	a.correlateVolumeRequests(&report, set)
	a.correlateEvents(&report, set)

	report = finish(report, set)
	log.Debug().
		Str("volume", report.Volume).
		Int("findings", len(report.Findings)).
		Bool("has_issues", report.HasIssues).
		Msg("volume analyzed")
	return report, nil
}

func finish(report types.VolumeReport, set *findingSet) types.VolumeReport {
	report.Findings = set.items
	if report.Findings == nil {
		report.Findings = []types.Finding{}
	}
	for _, f := range report.Findings {
		if f.Severity.IsIssue() {
			report.HasIssues = true
			break
		}
	}
	return report
}

// primaryAccessMode returns the first declared access mode, defaulting to ReadWriteOnce
func primaryAccessMode(pv corev1.PersistentVolume) corev1.PersistentVolumeAccessMode {
	if len(pv.Spec.AccessModes) == 0 {
		return corev1.ReadWriteOnce
	}
	return pv.Spec.AccessModes[0]
}

func isSingleWriter(mode corev1.PersistentVolumeAccessMode) bool {
	return mode == corev1.ReadWriteOnce || mode == corev1.ReadWriteOncePod
}
