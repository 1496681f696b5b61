package client

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// LonghornVolumeGVR is the block-storage engine volume resource backing hotplug PVs
var LonghornVolumeGVR = schema.GroupVersionResource{
	Group:    "longhorn.io",
	Version:  "v1beta2",
	Resource: "volumes",
}

// LonghornClient reads block-storage volumes through the dynamic client
type LonghornClient struct {
	client dynamic.Interface
}

// NewLonghornClient creates a block-storage client from a dynamic client
func NewLonghornClient(client dynamic.Interface) *LonghornClient {
	return &LonghornClient{client: client}
}

// NewLonghornClientFromConfig creates a block-storage client from a REST config
func NewLonghornClientFromConfig(config *rest.Config) (*LonghornClient, error) {
	dynamicClient, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("build dynamic client: %w", err)
	}
	return NewLonghornClient(dynamicClient), nil
}

// Volumes returns the block volume interface for a namespace
func (c *LonghornClient) Volumes(namespace string) BlockVolumeInterface {
	return &longhornVolumeClient{
		client:    c.client.Resource(LonghornVolumeGVR).Namespace(namespace),
		namespace: namespace,
	}
}

// longhornVolumeClient implements BlockVolumeInterface
type longhornVolumeClient struct {
	client    dynamic.ResourceInterface
	namespace string
}

func (c *longhornVolumeClient) Get(ctx context.Context, name string, opts metav1.GetOptions) (*types.BlockVolume, error) {
	obj, err := c.client.Get(ctx, name, opts)
	if err != nil {
		return nil, err
	}
	return BlockVolumeFromUnstructured(obj)
}

// BlockVolumeFromUnstructured decodes the fields of a Longhorn volume used by the analyzer.
// Missing status fields decode to their zero value.
func BlockVolumeFromUnstructured(obj *unstructured.Unstructured) (*types.BlockVolume, error) {
	volume := &types.BlockVolume{
		Name:      obj.GetName(),
		Namespace: obj.GetNamespace(),
	}

	volume.State, _, _ = unstructured.NestedString(obj.Object, "status", "state")

	status, found, err := unstructured.NestedMap(obj.Object, "status", "kubernetesStatus")
	if err != nil {
		return nil, fmt.Errorf("volume %s: malformed kubernetesStatus: %w", volume.Name, err)
	}
	if !found {
		return volume, nil
	}

	volume.StatusNamespace, _, _ = unstructured.NestedString(status, "namespace")
	volume.PVName, _, _ = unstructured.NestedString(status, "pvName")
	volume.PVStatus, _, _ = unstructured.NestedString(status, "pvStatus")
	volume.PVCName, _, _ = unstructured.NestedString(status, "pvcName")
	volume.LastPVCRefAt, _, _ = unstructured.NestedString(status, "lastPVCRefAt")
	volume.LastPodRefAt, _, _ = unstructured.NestedString(status, "lastPodRefAt")

	workloads, _, err := unstructured.NestedSlice(status, "workloadsStatus")
	if err != nil {
		return nil, fmt.Errorf("volume %s: malformed workloadsStatus: %w", volume.Name, err)
	}
	for _, w := range workloads {
		entry, ok := w.(map[string]interface{})
		if !ok {
			continue
		}
		ws := types.WorkloadStatus{}
		ws.PodName, _, _ = unstructured.NestedString(entry, "podName")
		ws.PodStatus, _, _ = unstructured.NestedString(entry, "podStatus")
		ws.WorkloadName, _, _ = unstructured.NestedString(entry, "workloadName")
		ws.WorkloadType, _, _ = unstructured.NestedString(entry, "workloadType")
		volume.WorkloadsStatus = append(volume.WorkloadsStatus, ws)
	}

	return volume, nil
}
