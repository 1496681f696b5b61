package detect

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

const (
	// HotplugPodPrefix names the management-cluster pods that attach hotplugged volumes
	HotplugPodPrefix = "hp-volume-"
	// LauncherPodPrefix names the management-cluster pods that run virtual machines
	LauncherPodPrefix = "virt-launcher-"

	workloadTypeInstance = "VirtualMachineInstance"
)

type probe struct {
	kind   string
	name   string
	exists bool
}

// correlateBlockStorage inspects the block-storage volume's workload status for stale
// entries and for attachment to more than one machine.
func (a *Analyzer) correlateBlockStorage(ctx context.Context, report *types.VolumeReport, set *findingSet, bv *types.BlockVolume) {
	ghosts := a.probeGhosts(ctx, bv)
	if ctx.Err() != nil {
		return
	}
	report.GhostReferences = ghosts

	noActive := len(report.ActivePods) == 0
	if len(ghosts) > 0 || (noActive && len(bv.WorkloadsStatus) > 0) {
		detail := fmt.Sprintf("%d workload status entries while no active pod uses the volume", len(bv.WorkloadsStatus))
		if len(ghosts) > 0 {
			detail = "references pods that no longer exist: " + strings.Join(ghosts, ", ")
		}
		if bv.LastPodRefAt != "" {
			set.add(types.SeverityInfo, types.StaleWorkloadStatus, types.CheckBlockStorage, "",
				"stale workload status on %s (cosmetic, lastPodRefAt=%s): %s", bv.Name, bv.LastPodRefAt, detail)
		} else {
			set.add(types.SeverityWarning, types.StaleWorkloadStatus, types.CheckBlockStorage, "",
				"stale workload status on %s without lastPodRefAt, investigate manually: %s", bv.Name, detail)
		}
	}

	machines := workloadMachines(bv.WorkloadsStatus)
	switch {
	case len(machines) > 1:
		set.add(types.SeverityCritical, types.MultiMachineBlockStatus, types.CheckBlockStorage, "",
			"block-storage volume %s is attached to %d machines: %s", bv.Name, len(machines), strings.Join(machines, ", "))
	case len(machines) == 1 && len(report.Machines) == 1 && machines[0] != report.Machines[0]:
		set.add(types.SeverityCritical, types.BlockSpecMismatch, types.CheckBlockStorage, "",
			"block-storage volume %s reports machine %s but virtual machine spec references %s",
			bv.Name, machines[0], report.Machines[0])
	}
}

// probeGhosts checks that every hotplug pod and launcher workload named in the workload
// status still exists. Probes run concurrently, bounded by ProbeConcurrency, and the
// missing ones are returned sorted.
func (a *Analyzer) probeGhosts(ctx context.Context, bv *types.BlockVolume) []string {
	seen := make(map[string]bool)
	var probes []probe
	for _, entry := range bv.WorkloadsStatus {
		if strings.HasPrefix(entry.PodName, HotplugPodPrefix) && !seen[entry.PodName] {
			seen[entry.PodName] = true
			probes = append(probes, probe{kind: "pod", name: entry.PodName})
		}
		if strings.HasPrefix(entry.WorkloadName, LauncherPodPrefix) && !seen[entry.WorkloadName] {
			seen[entry.WorkloadName] = true
			probes = append(probes, probe{kind: "workload", name: entry.WorkloadName})
		}
	}
	if len(probes) == 0 {
		return nil
	}

	var g errgroup.Group
	g.SetLimit(a.options.ProbeConcurrency)
	for i := range probes {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			probes[i].exists = a.prober.PodExists(ctx, bv.StatusNamespace, probes[i].name)
			return nil
		})
	}
	_ = g.Wait()

	var ghosts []string
	for _, p := range probes {
		if !p.exists {
			ghosts = append(ghosts, p.kind+" "+p.name)
		}
	}
	sort.Strings(ghosts)
	return ghosts
}

// workloadMachines returns the distinct machine names derived from workload status entries, sorted
func workloadMachines(entries []types.WorkloadStatus) []string {
	set := make(map[string]bool)
	for _, entry := range entries {
		if name := MachineName(entry); name != "" {
			set[name] = true
		}
	}
	machines := make([]string, 0, len(set))
	for name := range set {
		machines = append(machines, name)
	}
	sort.Strings(machines)
	return machines
}

// MachineName derives the virtual machine a workload status entry belongs to. Instance
// workloads carry the machine name directly; launcher pods are named
// virt-launcher-<machine>-<suffix>.
func MachineName(entry types.WorkloadStatus) string {
	if entry.WorkloadType == workloadTypeInstance && entry.WorkloadName != "" {
		return entry.WorkloadName
	}
	for _, name := range []string{entry.WorkloadName, entry.PodName} {
		if !strings.HasPrefix(name, LauncherPodPrefix) {
			continue
		}
		trimmed := strings.TrimPrefix(name, LauncherPodPrefix)
		if i := strings.LastIndex(trimmed, "-"); i > 0 {
			return trimmed[:i]
		}
		return trimmed
	}
	return ""
}
