package client

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	storagev1 "k8s.io/api/storage/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	corev1client "k8s.io/client-go/kubernetes/typed/core/v1"
	storagev1client "k8s.io/client-go/kubernetes/typed/storage/v1"
	"k8s.io/client-go/rest"
	kubevirtv1 "kubevirt.io/api/core/v1"
	"kubevirt.io/client-go/kubecli"
)

// Client wraps the real Kubernetes client with our interface
type Client struct {
	clientset kubernetes.Interface
}

// NewClient creates a new client wrapper from a Kubernetes clientset
func NewClient(clientset kubernetes.Interface) *Client {
	return &Client{
		clientset: clientset,
	}
}

// NewClientFromConfig creates a new client wrapper from a REST config
func NewClientFromConfig(config *rest.Config) (*Client, error) {
	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, err
	}
	return NewClient(clientset), nil
}

// CoreV1 returns the CoreV1 interface
func (c *Client) CoreV1() CoreV1Interface {
	return &coreV1Client{client: c.clientset.CoreV1()}
}

// StorageV1 returns the StorageV1 interface
func (c *Client) StorageV1() StorageV1Interface {
	return &storageV1Client{client: c.clientset.StorageV1()}
}

// coreV1Client implements CoreV1Interface
type coreV1Client struct {
	client corev1client.CoreV1Interface
}

func (c *coreV1Client) Pods(namespace string) PodInterface {
	return &podClient{client: c.client.Pods(namespace)}
}

func (c *coreV1Client) PersistentVolumes() PersistentVolumeInterface {
	return &persistentVolumeClient{client: c.client.PersistentVolumes()}
}

func (c *coreV1Client) PersistentVolumeClaims(namespace string) PersistentVolumeClaimInterface {
	return &persistentVolumeClaimClient{client: c.client.PersistentVolumeClaims(namespace)}
}

func (c *coreV1Client) Namespaces() NamespaceInterface {
	return &namespaceClient{client: c.client.Namespaces()}
}

func (c *coreV1Client) Events(namespace string) EventInterface {
	return &eventClient{client: c.client.Events(namespace)}
}

// storageV1Client implements StorageV1Interface
type storageV1Client struct {
	client storagev1client.StorageV1Interface
}

func (c *storageV1Client) VolumeAttachments() VolumeAttachmentInterface {
	return &volumeAttachmentClient{client: c.client.VolumeAttachments()}
}

// podClient implements PodInterface
type podClient struct {
	client corev1client.PodInterface
}

func (c *podClient) List(ctx context.Context, opts metav1.ListOptions) (*corev1.PodList, error) {
	return c.client.List(ctx, opts)
}

func (c *podClient) Get(ctx context.Context, name string, opts metav1.GetOptions) (*corev1.Pod, error) {
	return c.client.Get(ctx, name, opts)
}

// persistentVolumeClient implements PersistentVolumeInterface
type persistentVolumeClient struct {
	client corev1client.PersistentVolumeInterface
}

func (c *persistentVolumeClient) List(ctx context.Context, opts metav1.ListOptions) (*corev1.PersistentVolumeList, error) {
	return c.client.List(ctx, opts)
}

// persistentVolumeClaimClient implements PersistentVolumeClaimInterface
type persistentVolumeClaimClient struct {
	client corev1client.PersistentVolumeClaimInterface
}

func (c *persistentVolumeClaimClient) Get(ctx context.Context, name string, opts metav1.GetOptions) (*corev1.PersistentVolumeClaim, error) {
	return c.client.Get(ctx, name, opts)
}

// namespaceClient implements NamespaceInterface
type namespaceClient struct {
	client corev1client.NamespaceInterface
}

func (c *namespaceClient) Get(ctx context.Context, name string, opts metav1.GetOptions) (*corev1.Namespace, error) {
	return c.client.Get(ctx, name, opts)
}

// eventClient implements EventInterface
type eventClient struct {
	client corev1client.EventInterface
}

func (c *eventClient) List(ctx context.Context, opts metav1.ListOptions) (*corev1.EventList, error) {
	return c.client.List(ctx, opts)
}

// volumeAttachmentClient implements VolumeAttachmentInterface
type volumeAttachmentClient struct {
	client storagev1client.VolumeAttachmentInterface
}

func (c *volumeAttachmentClient) List(ctx context.Context, opts metav1.ListOptions) (*storagev1.VolumeAttachmentList, error) {
	return c.client.List(ctx, opts)
}

// VirtClient wraps the KubeVirt kubecli client with our interface
type VirtClient struct {
	client kubecli.KubevirtClient
}

// NewVirtClient creates a KubeVirt client wrapper
func NewVirtClient(client kubecli.KubevirtClient) *VirtClient {
	return &VirtClient{client: client}
}

// NewVirtClientFromConfig creates a KubeVirt client wrapper from a REST config
func NewVirtClientFromConfig(config *rest.Config) (*VirtClient, error) {
	virtClient, err := kubecli.GetKubevirtClientFromRESTConfig(config)
	if err != nil {
		return nil, fmt.Errorf("build kubevirt client: %w", err)
	}
	return NewVirtClient(virtClient), nil
}

// VirtualMachines returns the VirtualMachine interface for a namespace
func (c *VirtClient) VirtualMachines(namespace string) VirtualMachineInterface {
	return &virtualMachineClient{client: c.client, namespace: namespace}
}

// VirtualMachineInstances returns the VirtualMachineInstance interface for a namespace
func (c *VirtClient) VirtualMachineInstances(namespace string) VirtualMachineInstanceInterface {
	return &virtualMachineInstanceClient{client: c.client, namespace: namespace}
}

// virtualMachineClient implements VirtualMachineInterface
type virtualMachineClient struct {
	client    kubecli.KubevirtClient
	namespace string
}

func (c *virtualMachineClient) List(ctx context.Context, opts metav1.ListOptions) (*kubevirtv1.VirtualMachineList, error) {
	return c.client.VirtualMachine(c.namespace).List(ctx, opts)
}

// virtualMachineInstanceClient implements VirtualMachineInstanceInterface
type virtualMachineInstanceClient struct {
	client    kubecli.KubevirtClient
	namespace string
}

func (c *virtualMachineInstanceClient) List(ctx context.Context, opts metav1.ListOptions) (*kubevirtv1.VirtualMachineInstanceList, error) {
	return c.client.VirtualMachineInstance(c.namespace).List(ctx, opts)
}
