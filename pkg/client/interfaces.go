package client

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	storagev1 "k8s.io/api/storage/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	kubevirtv1 "kubevirt.io/api/core/v1"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// KubernetesClient defines the read-only Kubernetes operations used against either cluster
type KubernetesClient interface {
	CoreV1() CoreV1Interface
	StorageV1() StorageV1Interface
}

// CoreV1Interface defines the interface for Core v1 API operations
type CoreV1Interface interface {
	Pods(namespace string) PodInterface
	PersistentVolumes() PersistentVolumeInterface
	PersistentVolumeClaims(namespace string) PersistentVolumeClaimInterface
	Namespaces() NamespaceInterface
	Events(namespace string) EventInterface
}

// StorageV1Interface defines the interface for Storage v1 API operations
type StorageV1Interface interface {
	VolumeAttachments() VolumeAttachmentInterface
}

// PodInterface defines the interface for Pod operations
type PodInterface interface {
	List(ctx context.Context, opts metav1.ListOptions) (*corev1.PodList, error)
	Get(ctx context.Context, name string, opts metav1.GetOptions) (*corev1.Pod, error)
}

// PersistentVolumeInterface defines the interface for PersistentVolume operations
type PersistentVolumeInterface interface {
	List(ctx context.Context, opts metav1.ListOptions) (*corev1.PersistentVolumeList, error)
}

// PersistentVolumeClaimInterface defines the interface for PersistentVolumeClaim operations
type PersistentVolumeClaimInterface interface {
	Get(ctx context.Context, name string, opts metav1.GetOptions) (*corev1.PersistentVolumeClaim, error)
}

// NamespaceInterface defines the interface for Namespace operations
type NamespaceInterface interface {
	Get(ctx context.Context, name string, opts metav1.GetOptions) (*corev1.Namespace, error)
}

// EventInterface defines the interface for Event operations
type EventInterface interface {
	List(ctx context.Context, opts metav1.ListOptions) (*corev1.EventList, error)
}

// VolumeAttachmentInterface defines the interface for VolumeAttachment operations
type VolumeAttachmentInterface interface {
	List(ctx context.Context, opts metav1.ListOptions) (*storagev1.VolumeAttachmentList, error)
}

// KubeVirtClient defines the KubeVirt operations used against the management cluster
type KubeVirtClient interface {
	VirtualMachines(namespace string) VirtualMachineInterface
	VirtualMachineInstances(namespace string) VirtualMachineInstanceInterface
}

// VirtualMachineInterface defines the interface for VirtualMachine operations
type VirtualMachineInterface interface {
	List(ctx context.Context, opts metav1.ListOptions) (*kubevirtv1.VirtualMachineList, error)
}

// VirtualMachineInstanceInterface defines the interface for VirtualMachineInstance operations
type VirtualMachineInstanceInterface interface {
	List(ctx context.Context, opts metav1.ListOptions) (*kubevirtv1.VirtualMachineInstanceList, error)
}

// BlockStorageClient defines access to the block-storage engine's volume resources
type BlockStorageClient interface {
	Volumes(namespace string) BlockVolumeInterface
}

// BlockVolumeInterface defines the interface for block-storage volume operations
type BlockVolumeInterface interface {
	Get(ctx context.Context, name string, opts metav1.GetOptions) (*types.BlockVolume, error)
}
