package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	corev1 "k8s.io/api/core/v1"
	storagev1 "k8s.io/api/storage/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	kubevirtv1 "kubevirt.io/api/core/v1"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/client"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

var (
	// ErrClusterUnreachable is returned when either cluster cannot be queried during setup
	ErrClusterUnreachable = errors.New("cluster unreachable")
	// ErrNamespaceNotFound is returned when the management namespace does not exist
	ErrNamespaceNotFound = errors.New("management namespace not found")
)

// Snapshot is the bulk state of both clusters taken once at the start of a scan
type Snapshot struct {
	PersistentVolumes       []corev1.PersistentVolume
	VolumeAttachments       []storagev1.VolumeAttachment
	Pods                    []corev1.Pod
	Events                  []corev1.Event
	VirtualMachines         []kubevirtv1.VirtualMachine
	VirtualMachineInstances []kubevirtv1.VirtualMachineInstance
	FetchedAt               time.Time
}

// Clients bundles the per-cluster clients used by the gateway
type Clients struct {
	Downstream   client.KubernetesClient
	Management   client.KubernetesClient
	KubeVirt     client.KubeVirtClient
	BlockStorage client.BlockStorageClient
}

// Gateway provides typed read access to the downstream and management clusters
type Gateway struct {
	clients Clients
	options types.ScanOptions
	now     func() time.Time
}

// NewGateway creates a new cluster data gateway
func NewGateway(clients Clients, options types.ScanOptions) *Gateway {
	return &Gateway{
		clients: clients,
		options: options,
		now:     time.Now,
	}
}

// Verify checks that both clusters answer and that the management namespace exists.
// Errors returned here are fatal for the run.
func (g *Gateway) Verify(ctx context.Context) error {
	if _, err := g.clients.Downstream.CoreV1().PersistentVolumes().List(ctx, metav1.ListOptions{Limit: 1}); err != nil {
		return fmt.Errorf("%w: downstream context %q: %w", ErrClusterUnreachable, g.options.DownstreamContext, err)
	}

	_, err := g.clients.Management.CoreV1().Namespaces().Get(ctx, g.options.ManagementNamespace, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return fmt.Errorf("%w: %q in context %q", ErrNamespaceNotFound, g.options.ManagementNamespace, g.options.ManagementContext)
	}
	if err != nil {
		return fmt.Errorf("%w: management context %q: %w", ErrClusterUnreachable, g.options.ManagementContext, err)
	}

	log.Debug().
		Str("downstream", g.options.DownstreamContext).
		Str("management", g.options.ManagementContext).
		Str("namespace", g.options.ManagementNamespace).
		Msg("cluster connectivity verified")
	return nil
}

// Fetch performs the bulk list operations for a scan. Any list failure aborts the run.
func (g *Gateway) Fetch(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{FetchedAt: g.now()}

	pvs, err := g.clients.Downstream.CoreV1().PersistentVolumes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list PersistentVolumes: %w", err)
	}
	snapshot.PersistentVolumes = pvs.Items

	vas, err := g.clients.Downstream.StorageV1().VolumeAttachments().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list VolumeAttachments: %w", err)
	}
	snapshot.VolumeAttachments = vas.Items

	pods, err := g.clients.Downstream.CoreV1().Pods("").List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}
	snapshot.Pods = pods.Items

	if g.options.IncludeEvents {
		events, err := g.clients.Downstream.CoreV1().Events("").List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		snapshot.Events = events.Items
	}

	selector := metav1.ListOptions{LabelSelector: g.options.VMLabelSelector}

	vms, err := g.clients.KubeVirt.VirtualMachines(g.options.ManagementNamespace).List(ctx, selector)
	if err != nil {
		return nil, fmt.Errorf("failed to list VirtualMachines: %w", err)
	}
	snapshot.VirtualMachines = vms.Items

	vmis, err := g.clients.KubeVirt.VirtualMachineInstances(g.options.ManagementNamespace).List(ctx, selector)
	if err != nil {
		return nil, fmt.Errorf("failed to list VirtualMachineInstances: %w", err)
	}
	snapshot.VirtualMachineInstances = vmis.Items

	log.Info().
		Int("persistent_volumes", len(snapshot.PersistentVolumes)).
		Int("volume_attachments", len(snapshot.VolumeAttachments)).
		Int("pods", len(snapshot.Pods)).
		Int("events", len(snapshot.Events)).
		Int("virtual_machines", len(snapshot.VirtualMachines)).
		Int("virtual_machine_instances", len(snapshot.VirtualMachineInstances)).
		Msg("cluster snapshot fetched")

	return snapshot, nil
}

// ManagementPVC looks up the management-cluster PVC named after a downstream volume
func (g *Gateway) ManagementPVC(ctx context.Context, name string) (*corev1.PersistentVolumeClaim, error) {
	return g.clients.Management.CoreV1().PersistentVolumeClaims(g.options.ManagementNamespace).Get(ctx, name, metav1.GetOptions{})
}

// BlockVolume looks up a block-storage volume by name
func (g *Gateway) BlockVolume(ctx context.Context, name string) (*types.BlockVolume, error) {
	return g.clients.BlockStorage.Volumes(g.options.BlockVolumeNamespace).Get(ctx, name, metav1.GetOptions{})
}

// PodExists probes the management cluster for a live pod. Any lookup error counts as absent:
// transient API errors and true absence are not distinguished.
func (g *Gateway) PodExists(ctx context.Context, namespace, name string) bool {
	if namespace == "" {
		namespace = g.options.ManagementNamespace
	}
	_, err := g.clients.Management.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			log.Debug().Err(err).Str("pod", name).Str("namespace", namespace).Msg("pod probe failed, treating as absent")
		}
		return false
	}
	return true
}
