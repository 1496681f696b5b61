package detect

import (
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// correlateAttachments compares the downstream VolumeAttachments of a volume with the
// nodes its active pods run on.
func (a *Analyzer) correlateAttachments(report *types.VolumeReport, set *findingSet) {
	attachments := a.index.AttachmentsFor(report.Volume)
	report.Attachments = attachments
	active := report.ActivePods

	if len(attachments) == 0 {
		if len(active) > 0 {
			first := active[0]
			set.add(types.SeverityWarning, types.MissingAttachment, types.CheckAttachments, first.Node,
				"active pod %s on node %s but no VolumeAttachment found", first.Name, first.Node)
		}
		return
	}

	activeNodes := make(map[string]bool, len(active))
	for _, pod := range active {
		activeNodes[pod.Node] = true
	}

	for _, att := range attachments {
		switch {
		case len(active) == 0:
			set.add(types.SeverityCritical, types.StaleAttachment, types.CheckAttachments, att.Node,
				"stale VolumeAttachment %s on node %s: no active pod uses the volume", att.Name, att.Node)
		case !attachmentOnPodNode(att, active, activeNodes, report.SingleWriter):
			set.add(types.SeverityCritical, types.AttachmentNodeMismatch, types.CheckAttachments, att.Node,
				"VolumeAttachment %s is on node %s but active pod %s runs on node %s",
				att.Name, att.Node, active[0].Name, active[0].Node)
		case !att.Attached:
			set.add(types.SeverityWarning, types.AttachmentNotAttached, types.CheckAttachments, att.Node,
				"VolumeAttachment %s on node %s is not attached although pod %s is active",
				att.Name, att.Node, active[0].Name)
		}

		if att.Error != "" {
			set.add(types.SeverityWarning, types.AttachmentError, types.CheckAttachments, att.Node,
				"VolumeAttachment %s on node %s reports error: %s", att.Name, att.Node, att.Error)
		}
	}

	if len(attachments) > 1 && report.SingleWriter {
		seen := make(map[string]bool, len(attachments))
		for _, att := range attachments {
			if seen[att.Node] {
				continue
			}
			seen[att.Node] = true
			set.add(types.SeverityCritical, types.MultipleAttachments, types.CheckAttachments, att.Node,
				"single-writer volume has %d VolumeAttachments; %s is on node %s",
				len(attachments), att.Name, att.Node)
		}
	}
}

// attachmentOnPodNode reports whether an attachment sits where the volume is used. Single-writer
// volumes are expected on the first active pod's node. Multi-writer volumes are checked against
// every active pod's node rather than only the first one, so an RWX volume legitimately attached
// to two pod nodes is not reported as a mismatch.
func attachmentOnPodNode(att types.AttachmentRef, active []types.PodRef, activeNodes map[string]bool, singleWriter bool) bool {
	if singleWriter {
		return att.Node == active[0].Node
	}
	return activeNodes[att.Node]
}
