package identity

import (
	"fmt"
	"sort"

	corev1 "k8s.io/api/core/v1"
	kubevirtv1 "kubevirt.io/api/core/v1"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/gateway"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// Index joins the snapshot collections by volume identity. It is built once per scan
// and only read afterwards, so it is safe for concurrent use by analyzer workers.
type Index struct {
	allVolumes          map[string]bool
	bound               []corev1.PersistentVolume
	unbound             []corev1.PersistentVolume
	podsByClaim         map[string][]corev1.Pod
	attachmentsByVolume map[string][]types.AttachmentRef
	orphans             []types.AttachmentRef
	machinesByVolume    map[string][]string
	instancesByVolume   map[string][]string
	requestsByVolume    map[string][]types.VolumeRequestRef
	attachedCount       int
	attachmentCount     int
}

// NewIndex builds lookup indices from a snapshot. When driver is set, only bound PersistentVolumes
// provisioned by that CSI driver and VolumeAttachments handled by it are analyzed. Unbound
// volumes are listed for every driver.
func NewIndex(snapshot *gateway.Snapshot, driver string) *Index {
	idx := &Index{
		allVolumes:          make(map[string]bool),
		podsByClaim:         make(map[string][]corev1.Pod),
		attachmentsByVolume: make(map[string][]types.AttachmentRef),
		machinesByVolume:    make(map[string][]string),
		instancesByVolume:   make(map[string][]string),
		requestsByVolume:    make(map[string][]types.VolumeRequestRef),
	}

	for _, pv := range snapshot.PersistentVolumes {
		idx.allVolumes[pv.Name] = true
		switch {
		case pv.Status.Phase != corev1.VolumeBound:
			idx.unbound = append(idx.unbound, pv)
		case matchesDriver(pv, driver):
			idx.bound = append(idx.bound, pv)
		}
	}
	sortVolumes(idx.bound)
	sortVolumes(idx.unbound)

	for _, pod := range snapshot.Pods {
		for _, volume := range pod.Spec.Volumes {
			if volume.PersistentVolumeClaim == nil {
				continue
			}
			key := ClaimKey(pod.Namespace, volume.PersistentVolumeClaim.ClaimName)
			idx.podsByClaim[key] = append(idx.podsByClaim[key], pod)
		}
	}
	for key := range idx.podsByClaim {
		pods := idx.podsByClaim[key]
		sort.Slice(pods, func(i, j int) bool { return pods[i].Name < pods[j].Name })
	}

	for _, va := range snapshot.VolumeAttachments {
		if driver != "" && va.Spec.Attacher != driver {
			continue
		}
		if va.Spec.Source.PersistentVolumeName == nil {
			continue
		}
		ref := types.AttachmentRef{
			Name:     va.Name,
			Node:     va.Spec.NodeName,
			Volume:   *va.Spec.Source.PersistentVolumeName,
			Attached: va.Status.Attached,
		}
		switch {
		case va.Status.AttachError != nil:
			ref.Error = "attach: " + va.Status.AttachError.Message
		case va.Status.DetachError != nil:
			ref.Error = "detach: " + va.Status.DetachError.Message
		}
		idx.attachmentCount++
		if ref.Attached {
			idx.attachedCount++
		}
		if !idx.allVolumes[ref.Volume] {
			idx.orphans = append(idx.orphans, ref)
			continue
		}
		idx.attachmentsByVolume[ref.Volume] = append(idx.attachmentsByVolume[ref.Volume], ref)
	}
	for key := range idx.attachmentsByVolume {
		sortAttachments(idx.attachmentsByVolume[key])
	}
	sortAttachments(idx.orphans)

	for _, vm := range snapshot.VirtualMachines {
		if vm.Spec.Template != nil {
			for key := range referencedVolumes(vm.Spec.Template.Spec.Volumes) {
				idx.machinesByVolume[key] = append(idx.machinesByVolume[key], vm.Name)
			}
		}
		for _, request := range vm.Status.VolumeRequests {
			if request.AddVolumeOptions != nil {
				idx.addRequest(vm.Name, request.AddVolumeOptions.Name, "add")
			}
			if request.RemoveVolumeOptions != nil {
				idx.addRequest(vm.Name, request.RemoveVolumeOptions.Name, "remove")
			}
		}
	}
	for _, vmi := range snapshot.VirtualMachineInstances {
		for key := range referencedVolumes(vmi.Spec.Volumes) {
			idx.instancesByVolume[key] = append(idx.instancesByVolume[key], vmi.Name)
		}
	}
	for key := range idx.machinesByVolume {
		sort.Strings(idx.machinesByVolume[key])
	}
	for key := range idx.instancesByVolume {
		sort.Strings(idx.instancesByVolume[key])
	}
	for key := range idx.requestsByVolume {
		requests := idx.requestsByVolume[key]
		sort.SliceStable(requests, func(i, j int) bool {
			if requests[i].Machine != requests[j].Machine {
				return requests[i].Machine < requests[j].Machine
			}
			return requests[i].Action < requests[j].Action
		})
	}

	return idx
}

func (idx *Index) addRequest(machine, volume, action string) {
	idx.requestsByVolume[volume] = append(idx.requestsByVolume[volume], types.VolumeRequestRef{
		Machine: machine,
		Volume:  volume,
		Action:  action,
	})
}

// ClaimKey returns the namespace/name key used to join pods with claims
func ClaimKey(namespace, name string) string {
	return fmt.Sprintf("%s/%s", namespace, name)
}

// BoundVolumes returns the bound volumes to analyze, sorted by name
func (idx *Index) BoundVolumes() []corev1.PersistentVolume {
	return idx.bound
}

// UnboundVolumes returns volumes not in the Bound phase, sorted by name
func (idx *Index) UnboundVolumes() []corev1.PersistentVolume {
	return idx.unbound
}

// HasVolume reports whether a PersistentVolume with this name exists at all
func (idx *Index) HasVolume(name string) bool {
	return idx.allVolumes[name]
}

// TotalVolumes returns the number of PersistentVolumes in the snapshot, unfiltered
func (idx *Index) TotalVolumes() int {
	return len(idx.allVolumes)
}

// PodsForClaim returns the pods mounting a claim, sorted by name
func (idx *Index) PodsForClaim(namespace, name string) []corev1.Pod {
	return idx.podsByClaim[ClaimKey(namespace, name)]
}

// AttachmentsFor returns the attachment records naming a volume, sorted by name
func (idx *Index) AttachmentsFor(volume string) []types.AttachmentRef {
	return idx.attachmentsByVolume[volume]
}

// OrphanedAttachments returns attachment records whose volume is not in the PersistentVolume list
func (idx *Index) OrphanedAttachments() []types.AttachmentRef {
	return idx.orphans
}

// AttachmentCounts returns the number of considered attachment records and how many report attached
func (idx *Index) AttachmentCounts() (total, attached int) {
	return idx.attachmentCount, idx.attachedCount
}

// MachinesFor returns the virtual machines whose declared spec references a volume
func (idx *Index) MachinesFor(volume string) []string {
	return idx.machinesByVolume[volume]
}

// InstancesFor returns the virtual machine instances whose live spec references a volume
func (idx *Index) InstancesFor(volume string) []string {
	return idx.instancesByVolume[volume]
}

// RequestsFor returns queued hotplug requests naming a volume
func (idx *Index) RequestsFor(volume string) []types.VolumeRequestRef {
	return idx.requestsByVolume[volume]
}

// referencedVolumes returns the volume keys a KubeVirt volume list refers to, by volume
// name and by claim name
func referencedVolumes(volumes []kubevirtv1.Volume) map[string]bool {
	keys := make(map[string]bool)
	for _, volume := range volumes {
		if volume.Name != "" {
			keys[volume.Name] = true
		}
		if volume.PersistentVolumeClaim != nil && volume.PersistentVolumeClaim.ClaimName != "" {
			keys[volume.PersistentVolumeClaim.ClaimName] = true
		}
	}
	return keys
}

func matchesDriver(pv corev1.PersistentVolume, driver string) bool {
	if driver == "" {
		return true
	}
	return pv.Spec.CSI != nil && pv.Spec.CSI.Driver == driver
}

func sortVolumes(pvs []corev1.PersistentVolume) {
	sort.Slice(pvs, func(i, j int) bool { return pvs[i].Name < pvs[j].Name })
}

func sortAttachments(refs []types.AttachmentRef) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
}
