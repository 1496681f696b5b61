package detect

import (
	"strings"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// correlateMachineSpecs compares the declared (VirtualMachine) and live (VirtualMachineInstance)
// specs that reference the volume.
func (a *Analyzer) correlateMachineSpecs(report *types.VolumeReport, set *findingSet) {
	machines := a.index.MachinesFor(report.Volume)
	instances := a.index.InstancesFor(report.Volume)
	report.Machines = machines
	report.Instances = instances

	if len(machines) > 1 {
		set.add(types.SeverityCritical, types.MultipleMachines, types.CheckMachineSpecs, "",
			"volume is declared by %d virtual machines: %s", len(machines), strings.Join(machines, ", "))
	}
	if len(instances) > 1 {
		set.add(types.SeverityCritical, types.MultipleInstances, types.CheckMachineSpecs, "",
			"volume is referenced by %d running instances: %s", len(instances), strings.Join(instances, ", "))
	}

	switch {
	case len(machines) != len(instances):
		set.add(types.SeverityCritical, types.SpecCountMismatch, types.CheckMachineSpecs, "",
			"declared spec references the volume on %d machine(s) but live spec on %d instance(s)",
			len(machines), len(instances))
	case len(machines) == 1 && machines[0] != instances[0]:
		set.add(types.SeverityCritical, types.SpecMachineMismatch, types.CheckMachineSpecs, "",
			"declared spec references the volume on machine %s but live spec on instance %s",
			machines[0], instances[0])
	}

	if len(report.ActivePods) > 0 {
		return
	}
	if len(machines) > 0 {
		set.add(types.SeverityCritical, types.StaleMachineSpec, types.CheckMachineSpecs, "",
			"no active pod uses the volume but virtual machine spec still references it: %s",
			strings.Join(machines, ", "))
	}
	if len(instances) > 0 {
		set.add(types.SeverityCritical, types.StaleInstanceSpec, types.CheckMachineSpecs, "",
			"no active pod uses the volume but instance spec still references it: %s",
			strings.Join(instances, ", "))
	}
}

// correlateVolumeRequests flags hotplug add/remove requests still queued on a virtual machine
func (a *Analyzer) correlateVolumeRequests(report *types.VolumeReport, set *findingSet) {
	for _, request := range a.index.RequestsFor(report.Volume) {
		set.add(types.SeverityCritical, types.PendingVolumeRequest, types.CheckRequests, "",
			"pending %s volume request on virtual machine %s has not completed", request.Action, request.Machine)
	}
}
