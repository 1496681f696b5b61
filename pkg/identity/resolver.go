package identity

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// Source provides the point lookups needed to resolve management-cluster identities
type Source interface {
	ManagementPVC(ctx context.Context, name string) (*corev1.PersistentVolumeClaim, error)
	BlockVolume(ctx context.Context, name string) (*types.BlockVolume, error)
}

// Resolution maps a downstream volume to its management-cluster PVC and block-storage volume.
// A failed lookup leaves the corresponding fields empty and sets Reason.
type Resolution struct {
	Volume          string
	ManagementPVC   string
	BlockVolumeName string
	BlockVolume     *types.BlockVolume
	Reason          string
}

// Mapped reports whether a management-cluster PVC bound to a volume was found
func (r Resolution) Mapped() bool {
	return r.ManagementPVC != "" && r.BlockVolumeName != ""
}

// Resolved reports whether the block-storage volume was found
func (r Resolution) Resolved() bool {
	return r.BlockVolume != nil
}

// Resolver resolves downstream volume keys against the management cluster
type Resolver struct {
	source    Source
	namespace string
}

// NewResolver creates a resolver for PVCs in the given management namespace
func NewResolver(source Source, namespace string) *Resolver {
	return &Resolver{
		source:    source,
		namespace: namespace,
	}
}

// Resolve looks up the management PVC named after the volume key, then its bound
// block-storage volume. It never fails; misses are described in the returned Resolution.
func (r *Resolver) Resolve(ctx context.Context, volume string) Resolution {
	res := Resolution{Volume: volume}

	pvc, err := r.source.ManagementPVC(ctx, volume)
	if err != nil {
		if apierrors.IsNotFound(err) {
			res.Reason = fmt.Sprintf("no management-cluster mapping: PVC %s/%s not found", r.namespace, volume)
		} else {
			res.Reason = fmt.Sprintf("no management-cluster mapping: PVC %s/%s lookup failed: %v", r.namespace, volume, err)
		}
		return res
	}
	res.ManagementPVC = pvc.Name

	if pvc.Spec.VolumeName == "" {
		res.Reason = fmt.Sprintf("no management-cluster mapping: PVC %s/%s is not bound to a volume", r.namespace, pvc.Name)
		return res
	}
	res.BlockVolumeName = pvc.Spec.VolumeName

	blockVolume, err := r.source.BlockVolume(ctx, pvc.Spec.VolumeName)
	if err != nil {
		if apierrors.IsNotFound(err) {
			res.Reason = fmt.Sprintf("block-storage volume %s not found", pvc.Spec.VolumeName)
		} else {
			res.Reason = fmt.Sprintf("block-storage volume %s lookup failed: %v", pvc.Spec.VolumeName, err)
		}
		return res
	}
	res.BlockVolume = blockVolume

	return res
}
