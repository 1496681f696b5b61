package detect

import (
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// correlatePods partitions the pods mounting the volume's claim into active and completed.
// Pods arrive sorted by name, so the first active pod is the lowest-named one.
func (a *Analyzer) correlatePods(report *types.VolumeReport, set *findingSet) {
	var pending []types.PodRef

	for _, pod := range a.index.PodsForClaim(report.ClaimNamespace, report.ClaimName) {
		ref := types.PodRef{
			Name:      pod.Name,
			Namespace: pod.Namespace,
			Node:      pod.Spec.NodeName,
			Phase:     string(pod.Status.Phase),
		}
		if isCompleted(pod) {
			report.CompletedPods = append(report.CompletedPods, ref)
			continue
		}
		report.ActivePods = append(report.ActivePods, ref)
		if pod.Status.Phase == corev1.PodPending {
			pending = append(pending, ref)
		}
	}

	if len(report.ActivePods) > 1 && report.SingleWriter {
		first := report.ActivePods[0]
		set.add(types.SeverityCritical, types.MultipleActivePods, types.CheckPods, first.Node,
			"%d active pods on single-writer volume: %s", len(report.ActivePods), podNames(report.ActivePods))
	}

	for _, ref := range pending {
		set.add(types.SeverityInfo, types.PodPending, types.CheckPods, ref.Node,
			"pod %s/%s is Pending", ref.Namespace, ref.Name)
	}
}

func isCompleted(pod corev1.Pod) bool {
	return pod.Status.Phase == corev1.PodSucceeded || pod.Status.Phase == corev1.PodFailed
}

func podNames(pods []types.PodRef) string {
	names := make([]string, 0, len(pods))
	for _, p := range pods {
		node := p.Node
		if node == "" {
			node = "unscheduled"
		}
		names = append(names, p.Name+"("+node+")")
	}
	return strings.Join(names, ", ")
}
