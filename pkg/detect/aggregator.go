package detect

import (
	"fmt"
	"sort"

	corev1 "k8s.io/api/core/v1"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/gateway"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/identity"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// Aggregate merges per-volume reports with cluster-wide checks into a report. Volumes must
// already be in analysis order; contexts and timestamps are left for the caller to set.
func Aggregate(index *identity.Index, snapshot *gateway.Snapshot, volumes []types.VolumeReport, options types.ScanOptions) *types.Report {
	if volumes == nil {
		volumes = []types.VolumeReport{}
	}
	report := &types.Report{
		Volumes:             volumes,
		UnboundVolumes:      unboundFindings(index.UnboundVolumes()),
		OrphanedAttachments: orphanFindings(index.OrphanedAttachments()),
	}

	all := report.AllFindings()
	report.NodeImpact = NodeImpact(all)
	if len(report.NodeImpact) > 0 && report.NodeImpact[0].Critical > 0 {
		report.CordonCandidate = report.NodeImpact[0].Node
	}

	total, attached := index.AttachmentCounts()
	summary := types.Summary{
		PersistentVolumes:       index.TotalVolumes(),
		VolumesAnalyzed:         len(volumes),
		UnboundVolumes:          len(report.UnboundVolumes),
		OrphanedAttachments:     len(report.OrphanedAttachments),
		VolumeAttachments:       total,
		AttachedVolumes:         attached,
		VirtualMachines:         len(snapshot.VirtualMachines),
		VirtualMachineInstances: len(snapshot.VirtualMachineInstances),
	}
	for _, v := range volumes {
		if v.HasIssues {
			summary.VolumesWithIssues++
		} else {
			summary.VolumesOK++
		}
	}
	for _, f := range all {
		switch f.Severity {
		case types.SeverityCritical:
			summary.Critical++
		case types.SeverityWarning:
			summary.Warning++
		case types.SeverityInfo:
			summary.Info++
		}
	}
	report.Summary = summary
	report.Recommendations = generateRecommendations(report, options)

	return report
}

// unboundFindings reports volumes that are not Bound. Released and Failed volumes usually need
// cleanup; Available and Pending ones are informational.
func unboundFindings(pvs []corev1.PersistentVolume) []types.Finding {
	var findings []types.Finding
	for _, pv := range pvs {
		severity := types.SeverityInfo
		if pv.Status.Phase == corev1.VolumeReleased || pv.Status.Phase == corev1.VolumeFailed {
			severity = types.SeverityWarning
		}
		claim := "none"
		if pv.Spec.ClaimRef != nil {
			claim = pv.Spec.ClaimRef.Namespace + "/" + pv.Spec.ClaimRef.Name
		}
		findings = append(findings, types.Finding{
			Subject:  pv.Name,
			Severity: severity,
			Type:     types.UnboundVolume,
			Check:    types.CheckCluster,
			Message:  fmt.Sprintf("volume is in phase %s (claim %s)", pv.Status.Phase, claim),
		})
	}
	return findings
}

func orphanFindings(orphans []types.AttachmentRef) []types.Finding {
	var findings []types.Finding
	for _, att := range orphans {
		findings = append(findings, types.Finding{
			Subject:  "volumeattachment/" + att.Name,
			Severity: types.SeverityWarning,
			Type:     types.OrphanedAttachment,
			Check:    types.CheckCluster,
			Message:  fmt.Sprintf("VolumeAttachment %s on node %s references missing volume %s", att.Name, att.Node, att.Volume),
			Node:     att.Node,
		})
	}
	return findings
}

// NodeImpact tallies CRITICAL and WARNING findings per attributed node, ordered by critical
// count descending, then warning count descending, then node name.
func NodeImpact(findings []types.Finding) []types.NodeImpact {
	byNode := make(map[string]*types.NodeImpact)
	for _, f := range findings {
		if f.Node == "" || !f.Severity.IsIssue() {
			continue
		}
		impact, ok := byNode[f.Node]
		if !ok {
			impact = &types.NodeImpact{Node: f.Node}
			byNode[f.Node] = impact
		}
		if f.Severity == types.SeverityCritical {
			impact.Critical++
		} else {
			impact.Warning++
		}
	}

	tally := make([]types.NodeImpact, 0, len(byNode))
	for _, impact := range byNode {
		tally = append(tally, *impact)
	}
	sort.Slice(tally, func(i, j int) bool {
		if tally[i].Critical != tally[j].Critical {
			return tally[i].Critical > tally[j].Critical
		}
		if tally[i].Warning != tally[j].Warning {
			return tally[i].Warning > tally[j].Warning
		}
		return tally[i].Node < tally[j].Node
	})
	return tally
}

// generateRecommendations creates read-only investigation and remediation guidance
func generateRecommendations(report *types.Report, options types.ScanOptions) []string {
	seen := make(map[types.IssueType]bool)
	for _, f := range report.AllFindings() {
		if f.Severity.IsIssue() {
			seen[f.Type] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	var recommendations []string

	if report.CordonCandidate != "" {
		top := report.NodeImpact[0]
		recommendations = append(recommendations,
			fmt.Sprintf("Node %s carries the most findings (%d critical, %d warning); consider cordoning and draining it:",
				top.Node, top.Critical, top.Warning),
			fmt.Sprintf("   kubectl --context %s cordon %s", options.DownstreamContext, top.Node),
			fmt.Sprintf("   kubectl --context %s drain %s --ignore-daemonsets --delete-emptydir-data", options.DownstreamContext, top.Node),
		)
	}

	if seen[types.StaleAttachment] || seen[types.AttachmentNodeMismatch] || seen[types.MultipleAttachments] ||
		seen[types.AttachmentNotAttached] || seen[types.AttachmentError] || seen[types.OrphanedAttachment] {
		recommendations = append(recommendations,
			"Check VolumeAttachment objects on the downstream cluster:",
			fmt.Sprintf("   kubectl --context %s get volumeattachments -o wide", options.DownstreamContext),
		)
	}

	if seen[types.MultipleActivePods] || seen[types.MissingAttachment] {
		recommendations = append(recommendations,
			"Check which pods mount the affected claims:",
			fmt.Sprintf("   kubectl --context %s get pods -A -o wide --field-selector status.phase=Running", options.DownstreamContext),
		)
	}

	if seen[types.MultipleMachines] || seen[types.MultipleInstances] || seen[types.SpecCountMismatch] ||
		seen[types.SpecMachineMismatch] || seen[types.StaleMachineSpec] || seen[types.StaleInstanceSpec] ||
		seen[types.PendingVolumeRequest] || seen[types.BlockSpecMismatch] {
		recommendations = append(recommendations,
			"Inspect hotplug volume state of the guest cluster machines:",
			fmt.Sprintf("   kubectl --context %s -n %s get vm,vmi -o wide", options.ManagementContext, options.ManagementNamespace),
			fmt.Sprintf("   kubectl --context %s -n %s get vm <name> -o jsonpath='{.status.volumeRequests}'", options.ManagementContext, options.ManagementNamespace),
		)
	}

	if seen[types.StaleWorkloadStatus] || seen[types.MultiMachineBlockStatus] || seen[types.MissingBlockVolume] {
		recommendations = append(recommendations,
			"Inspect block-storage volume workload status:",
			fmt.Sprintf("   kubectl --context %s -n %s get volumes.longhorn.io <name> -o jsonpath='{.status.kubernetesStatus}'",
				options.ManagementContext, options.BlockVolumeNamespace),
		)
	}

	if seen[types.MissingManagementPVC] {
		recommendations = append(recommendations,
			"Verify the management namespace holds the guest cluster's volume claims:",
			fmt.Sprintf("   kubectl --context %s -n %s get pvc", options.ManagementContext, options.ManagementNamespace),
		)
	}

	if seen[types.UnboundVolume] {
		recommendations = append(recommendations,
			"Review Released and Failed volumes for reclaim:",
			fmt.Sprintf("   kubectl --context %s get pv --sort-by=.status.phase", options.DownstreamContext),
		)
	}

	recommendations = append(recommendations,
		"Always verify no pod is using a volume before detaching it or editing machine specs.",
	)
	return recommendations
}
