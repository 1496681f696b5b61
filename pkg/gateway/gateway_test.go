package gateway_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	corev1 "k8s.io/api/core/v1"
	storagev1 "k8s.io/api/storage/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	kubevirtv1 "kubevirt.io/api/core/v1"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/client/mocks"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/gateway"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

var _ = Describe("Gateway", func() {
	var (
		ctrl *gomock.Controller
		ctx  context.Context

		downstream     *mocks.MockKubernetesClient
		downstreamCore *mocks.MockCoreV1Interface
		downstreamSto  *mocks.MockStorageV1Interface
		management     *mocks.MockKubernetesClient
		managementCore *mocks.MockCoreV1Interface
		kubevirt       *mocks.MockKubeVirtClient
		blockStorage   *mocks.MockBlockStorageClient

		options types.ScanOptions
		gw      *gateway.Gateway
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		ctx = context.Background()

		downstream = mocks.NewMockKubernetesClient(ctrl)
		downstreamCore = mocks.NewMockCoreV1Interface(ctrl)
		downstreamSto = mocks.NewMockStorageV1Interface(ctrl)
		management = mocks.NewMockKubernetesClient(ctrl)
		managementCore = mocks.NewMockCoreV1Interface(ctrl)
		kubevirt = mocks.NewMockKubeVirtClient(ctrl)
		blockStorage = mocks.NewMockBlockStorageClient(ctrl)

		downstream.EXPECT().CoreV1().Return(downstreamCore).AnyTimes()
		downstream.EXPECT().StorageV1().Return(downstreamSto).AnyTimes()
		management.EXPECT().CoreV1().Return(managementCore).AnyTimes()

		options = types.ScanOptions{
			DownstreamContext:    "guest",
			ManagementContext:    "harvester",
			ManagementNamespace:  "tenant-a",
			BlockVolumeNamespace: "longhorn-system",
			VMLabelSelector:      "guestcluster=prod",
		}
	})

	JustBeforeEach(func() {
		gw = gateway.NewGateway(gateway.Clients{
			Downstream:   downstream,
			Management:   management,
			KubeVirt:     kubevirt,
			BlockStorage: blockStorage,
		}, options)
	})

	Describe("Verify", func() {
		var (
			pvs        *mocks.MockPersistentVolumeInterface
			namespaces *mocks.MockNamespaceInterface
		)

		BeforeEach(func() {
			pvs = mocks.NewMockPersistentVolumeInterface(ctrl)
			namespaces = mocks.NewMockNamespaceInterface(ctrl)
			downstreamCore.EXPECT().PersistentVolumes().Return(pvs).AnyTimes()
			managementCore.EXPECT().Namespaces().Return(namespaces).AnyTimes()
		})

		It("should succeed when both clusters answer", func() {
			pvs.EXPECT().List(ctx, metav1.ListOptions{Limit: 1}).Return(&corev1.PersistentVolumeList{}, nil)
			namespaces.EXPECT().Get(ctx, "tenant-a", gomock.Any()).Return(&corev1.Namespace{}, nil)

			Expect(gw.Verify(ctx)).To(Succeed())
		})

		It("should report an unreachable downstream cluster", func() {
			pvs.EXPECT().List(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

			err := gw.Verify(ctx)
			Expect(errors.Is(err, gateway.ErrClusterUnreachable)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("guest"))
			Expect(err.Error()).To(ContainSubstring("connection refused"))
		})

		It("should report a missing management namespace", func() {
			pvs.EXPECT().List(ctx, gomock.Any()).Return(&corev1.PersistentVolumeList{}, nil)
			namespaces.EXPECT().Get(ctx, "tenant-a", gomock.Any()).
				Return(nil, apierrors.NewNotFound(schema.GroupResource{Resource: "namespaces"}, "tenant-a"))

			err := gw.Verify(ctx)
			Expect(errors.Is(err, gateway.ErrNamespaceNotFound)).To(BeTrue())
			Expect(errors.Is(err, gateway.ErrClusterUnreachable)).To(BeFalse())
		})

		It("should report an unreachable management cluster", func() {
			pvs.EXPECT().List(ctx, gomock.Any()).Return(&corev1.PersistentVolumeList{}, nil)
			namespaces.EXPECT().Get(ctx, "tenant-a", gomock.Any()).Return(nil, errors.New("i/o timeout"))

			err := gw.Verify(ctx)
			Expect(errors.Is(err, gateway.ErrClusterUnreachable)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("harvester"))
		})
	})

	Describe("Fetch", func() {
		var (
			pvs    *mocks.MockPersistentVolumeInterface
			vas    *mocks.MockVolumeAttachmentInterface
			pods   *mocks.MockPodInterface
			events *mocks.MockEventInterface
			vms    *mocks.MockVirtualMachineInterface
			vmis   *mocks.MockVirtualMachineInstanceInterface
		)

		BeforeEach(func() {
			pvs = mocks.NewMockPersistentVolumeInterface(ctrl)
			vas = mocks.NewMockVolumeAttachmentInterface(ctrl)
			pods = mocks.NewMockPodInterface(ctrl)
			events = mocks.NewMockEventInterface(ctrl)
			vms = mocks.NewMockVirtualMachineInterface(ctrl)
			vmis = mocks.NewMockVirtualMachineInstanceInterface(ctrl)

			downstreamCore.EXPECT().PersistentVolumes().Return(pvs).AnyTimes()
			downstreamSto.EXPECT().VolumeAttachments().Return(vas).AnyTimes()
			downstreamCore.EXPECT().Pods("").Return(pods).AnyTimes()
			downstreamCore.EXPECT().Events("").Return(events).AnyTimes()
			kubevirt.EXPECT().VirtualMachines("tenant-a").Return(vms).AnyTimes()
			kubevirt.EXPECT().VirtualMachineInstances("tenant-a").Return(vmis).AnyTimes()
		})

		expectBulkLists := func() {
			pvs.EXPECT().List(ctx, gomock.Any()).Return(&corev1.PersistentVolumeList{
				Items: []corev1.PersistentVolume{{ObjectMeta: metav1.ObjectMeta{Name: "pvc-1"}}},
			}, nil)
			vas.EXPECT().List(ctx, gomock.Any()).Return(&storagev1.VolumeAttachmentList{
				Items: []storagev1.VolumeAttachment{{ObjectMeta: metav1.ObjectMeta{Name: "csi-1"}}},
			}, nil)
			pods.EXPECT().List(ctx, gomock.Any()).Return(&corev1.PodList{
				Items: []corev1.Pod{{ObjectMeta: metav1.ObjectMeta{Name: "app-0"}}},
			}, nil)
			selector := metav1.ListOptions{LabelSelector: "guestcluster=prod"}
			vms.EXPECT().List(ctx, selector).Return(&kubevirtv1.VirtualMachineList{
				Items: []kubevirtv1.VirtualMachine{{ObjectMeta: metav1.ObjectMeta{Name: "worker-0"}}},
			}, nil)
			vmis.EXPECT().List(ctx, selector).Return(&kubevirtv1.VirtualMachineInstanceList{
				Items: []kubevirtv1.VirtualMachineInstance{{ObjectMeta: metav1.ObjectMeta{Name: "worker-0"}}},
			}, nil)
		}

		It("should collect every bulk list once", func() {
			expectBulkLists()

			snapshot, err := gw.Fetch(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.PersistentVolumes).To(HaveLen(1))
			Expect(snapshot.VolumeAttachments).To(HaveLen(1))
			Expect(snapshot.Pods).To(HaveLen(1))
			Expect(snapshot.VirtualMachines).To(HaveLen(1))
			Expect(snapshot.VirtualMachineInstances).To(HaveLen(1))
			Expect(snapshot.Events).To(BeEmpty())
			Expect(snapshot.FetchedAt.IsZero()).To(BeFalse())
		})

		Context("with events enabled", func() {
			BeforeEach(func() {
				options.IncludeEvents = true
			})

			It("should also list events", func() {
				expectBulkLists()
				events.EXPECT().List(ctx, gomock.Any()).Return(&corev1.EventList{
					Items: []corev1.Event{{ObjectMeta: metav1.ObjectMeta{Name: "ev-1"}}},
				}, nil)

				snapshot, err := gw.Fetch(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(snapshot.Events).To(HaveLen(1))
			})
		})

		It("should fail when a bulk list fails", func() {
			pvs.EXPECT().List(ctx, gomock.Any()).Return(&corev1.PersistentVolumeList{}, nil)
			vas.EXPECT().List(ctx, gomock.Any()).Return(nil, errors.New("forbidden"))

			_, err := gw.Fetch(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("VolumeAttachments"))
		})
	})

	Describe("point lookups", func() {
		It("should look up management PVCs in the management namespace", func() {
			pvcs := mocks.NewMockPersistentVolumeClaimInterface(ctrl)
			managementCore.EXPECT().PersistentVolumeClaims("tenant-a").Return(pvcs)
			pvcs.EXPECT().Get(ctx, "pvc-1", gomock.Any()).Return(&corev1.PersistentVolumeClaim{
				ObjectMeta: metav1.ObjectMeta{Name: "pvc-1"},
			}, nil)

			pvc, err := gw.ManagementPVC(ctx, "pvc-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(pvc.Name).To(Equal("pvc-1"))
		})

		It("should look up block volumes in the block-storage namespace", func() {
			volumes := mocks.NewMockBlockVolumeInterface(ctrl)
			blockStorage.EXPECT().Volumes("longhorn-system").Return(volumes)
			volumes.EXPECT().Get(ctx, "pvc-lh-1", gomock.Any()).Return(&types.BlockVolume{Name: "pvc-lh-1"}, nil)

			volume, err := gw.BlockVolume(ctx, "pvc-lh-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(volume.Name).To(Equal("pvc-lh-1"))
		})

		Describe("PodExists", func() {
			var pods *mocks.MockPodInterface

			BeforeEach(func() {
				pods = mocks.NewMockPodInterface(ctrl)
			})

			It("should report live pods", func() {
				managementCore.EXPECT().Pods("tenant-b").Return(pods)
				pods.EXPECT().Get(ctx, "hp-volume-abcde", gomock.Any()).Return(&corev1.Pod{}, nil)

				Expect(gw.PodExists(ctx, "tenant-b", "hp-volume-abcde")).To(BeTrue())
			})

			It("should default to the management namespace", func() {
				managementCore.EXPECT().Pods("tenant-a").Return(pods)
				pods.EXPECT().Get(ctx, "hp-volume-abcde", gomock.Any()).
					Return(nil, apierrors.NewNotFound(schema.GroupResource{Resource: "pods"}, "hp-volume-abcde"))

				Expect(gw.PodExists(ctx, "", "hp-volume-abcde")).To(BeFalse())
			})

			It("should treat lookup errors as absent", func() {
				managementCore.EXPECT().Pods("tenant-a").Return(pods)
				pods.EXPECT().Get(ctx, "hp-volume-abcde", gomock.Any()).Return(nil, errors.New("etcdserver: request timed out"))

				Expect(gw.PodExists(ctx, "tenant-a", "hp-volume-abcde")).To(BeFalse())
			})
		})
	})
})
