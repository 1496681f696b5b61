package types

import (
	"time"
)

// Severity indicates the impact level of a finding
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

// Rank orders severities so that higher is worse. Unknown severities rank below INFO.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}
	return 0
}

// IsIssue reports whether a finding of this severity marks its subject as having issues
func (s Severity) IsIssue() bool {
	return s == SeverityCritical || s == SeverityWarning
}

// Check identifies which analysis stage produced a finding
type Check string

const (
	CheckClaim        Check = "claim"
	CheckResolution   Check = "resolution"
	CheckPods         Check = "pods"
	CheckAttachments  Check = "attachments"
	CheckMachineSpecs Check = "machine-specs"
	CheckBlockStorage Check = "block-storage"
	CheckRequests     Check = "volume-requests"
	CheckEvents       Check = "events"
	CheckCluster      Check = "cluster"
	CheckAnalysis     Check = "analysis"
)

// IssueType categorizes a finding
type IssueType string

const (
	MissingClaimRef         IssueType = "missing-claim-ref"
	MissingManagementPVC    IssueType = "missing-management-mapping"
	MissingBlockVolume      IssueType = "missing-block-volume"
	MultipleActivePods      IssueType = "multiple-active-pods"
	PodPending              IssueType = "pod-pending"
	StaleAttachment         IssueType = "stale-attachment"
	AttachmentNodeMismatch  IssueType = "attachment-node-mismatch"
	AttachmentNotAttached   IssueType = "attachment-not-attached"
	AttachmentError         IssueType = "attachment-error"
	MissingAttachment       IssueType = "missing-attachment"
	MultipleAttachments     IssueType = "multiple-attachments"
	MultipleMachines        IssueType = "multiple-machines"
	MultipleInstances       IssueType = "multiple-instances"
	SpecCountMismatch       IssueType = "spec-count-mismatch"
	SpecMachineMismatch     IssueType = "spec-machine-mismatch"
	StaleMachineSpec        IssueType = "stale-machine-spec"
	StaleInstanceSpec       IssueType = "stale-instance-spec"
	StaleWorkloadStatus     IssueType = "stale-workload-status"
	MultiMachineBlockStatus IssueType = "multi-machine-block-attachment"
	BlockSpecMismatch       IssueType = "block-spec-mismatch"
	PendingVolumeRequest    IssueType = "pending-volume-request"
	VolumeEvent             IssueType = "volume-event"
	UnboundVolume           IssueType = "unbound-volume"
	OrphanedAttachment      IssueType = "orphaned-attachment"
	AnalysisFailed          IssueType = "analysis-failed"
)

// Finding is a single typed observation produced by a scan. Findings are never mutated once emitted.
type Finding struct {
	Subject  string    `json:"subject"`
	Severity Severity  `json:"severity"`
	Type     IssueType `json:"type"`
	Check    Check     `json:"check"`
	Message  string    `json:"message"`
	Node     string    `json:"node,omitempty"`
}

// PodRef is a downstream pod claiming a volume
type PodRef struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
	Node      string `json:"node,omitempty"`
	Phase     string `json:"phase"`
}

// AttachmentRef is a downstream VolumeAttachment naming a volume
type AttachmentRef struct {
	Name     string `json:"name"`
	Node     string `json:"node"`
	Volume   string `json:"volume"`
	Attached bool   `json:"attached"`
	Error    string `json:"error,omitempty"`
}

// VolumeRequestRef is a queued hotplug add/remove request on a virtual machine
type VolumeRequestRef struct {
	Machine string `json:"machine"`
	Volume  string `json:"volume"`
	Action  string `json:"action"` // add or remove
}

// WorkloadStatus is one entry of the block-storage volume's workload status list
type WorkloadStatus struct {
	PodName      string `json:"podName"`
	PodStatus    string `json:"podStatus"`
	WorkloadName string `json:"workloadName"`
	WorkloadType string `json:"workloadType"`
}

// BlockVolume is the subset of the block-storage engine volume consulted during analysis
type BlockVolume struct {
	Name            string           `json:"name"`
	Namespace       string           `json:"namespace"`
	State           string           `json:"state,omitempty"`
	StatusNamespace string           `json:"statusNamespace,omitempty"`
	PVName          string           `json:"pvName,omitempty"`
	PVStatus        string           `json:"pvStatus,omitempty"`
	PVCName         string           `json:"pvcName,omitempty"`
	LastPVCRefAt    string           `json:"lastPVCRefAt,omitempty"`
	LastPodRefAt    string           `json:"lastPodRefAt,omitempty"`
	WorkloadsStatus []WorkloadStatus `json:"workloadsStatus,omitempty"`
}

// VolumeReport holds the correlation context and findings of one analyzed volume
type VolumeReport struct {
	Volume          string          `json:"volume"`
	ClaimNamespace  string          `json:"claimNamespace,omitempty"`
	ClaimName       string          `json:"claimName,omitempty"`
	AccessMode      string          `json:"accessMode,omitempty"`
	SingleWriter    bool            `json:"singleWriter"`
	ActivePods      []PodRef        `json:"activePods,omitempty"`
	CompletedPods   []PodRef        `json:"completedPods,omitempty"`
	Attachments     []AttachmentRef `json:"attachments,omitempty"`
	Machines        []string        `json:"machines,omitempty"`
	Instances       []string        `json:"instances,omitempty"`
	ManagementPVC   string          `json:"managementPVC,omitempty"`
	BlockVolume     string          `json:"blockVolume,omitempty"`
	GhostReferences []string        `json:"ghostReferences,omitempty"`
	Findings        []Finding       `json:"findings"`
	HasIssues       bool            `json:"hasIssues"`
}

// CountBySeverity returns how many findings of the given severity the volume carries
func (r VolumeReport) CountBySeverity(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// NodeImpact tallies CRITICAL and WARNING findings attributed to a downstream node
type NodeImpact struct {
	Node     string `json:"node"`
	Critical int    `json:"critical"`
	Warning  int    `json:"warning"`
}

// Summary provides high-level statistics for a scan
type Summary struct {
	PersistentVolumes       int  `json:"persistentVolumes"`
	VolumesAnalyzed         int  `json:"volumesAnalyzed"`
	VolumesWithIssues       int  `json:"volumesWithIssues"`
	VolumesOK               int  `json:"volumesOK"`
	UnboundVolumes          int  `json:"unboundVolumes"`
	OrphanedAttachments     int  `json:"orphanedAttachments"`
	VolumeAttachments       int  `json:"volumeAttachments"`
	AttachedVolumes         int  `json:"attachedVolumes"`
	VirtualMachines         int  `json:"virtualMachines"`
	VirtualMachineInstances int  `json:"virtualMachineInstances"`
	Critical                int  `json:"critical"`
	Warning                 int  `json:"warning"`
	Info                    int  `json:"info"`
	Interrupted             bool `json:"interrupted,omitempty"`
}

// Report contains everything produced by one scan
type Report struct {
	DownstreamContext   string         `json:"downstreamContext"`
	ManagementContext   string         `json:"managementContext"`
	ManagementNamespace string         `json:"managementNamespace"`
	Summary             Summary        `json:"summary"`
	NodeImpact          []NodeImpact   `json:"nodeImpact,omitempty"`
	CordonCandidate     string         `json:"cordonCandidate,omitempty"`
	Recommendations     []string       `json:"recommendations,omitempty"`
	UnboundVolumes      []Finding      `json:"unboundVolumes,omitempty"`
	OrphanedAttachments []Finding      `json:"orphanedAttachments,omitempty"`
	Volumes             []VolumeReport `json:"volumes"`
	GeneratedAt         time.Time      `json:"generatedAt"`
}

// AllFindings returns per-volume findings followed by cluster-wide ones, in report order
func (r *Report) AllFindings() []Finding {
	var all []Finding
	for _, v := range r.Volumes {
		all = append(all, v.Findings...)
	}
	all = append(all, r.UnboundVolumes...)
	all = append(all, r.OrphanedAttachments...)
	return all
}

// ScanOptions configures a scan
type ScanOptions struct {
	DownstreamContext    string        `json:"downstreamContext"`
	ManagementContext    string        `json:"managementContext"`
	ManagementNamespace  string        `json:"managementNamespace"`
	BlockVolumeNamespace string        `json:"blockVolumeNamespace"`
	Driver               string        `json:"driver,omitempty"`
	VMLabelSelector      string        `json:"vmLabelSelector,omitempty"`
	Concurrency          int           `json:"concurrency"`
	ProbeConcurrency     int           `json:"probeConcurrency"`
	IncludeEvents        bool          `json:"includeEvents"`
	EventLookback        time.Duration `json:"eventLookback"`
	Timeout              time.Duration `json:"timeout"`
	Verbose              bool          `json:"verbose"`
	LogFile              string        `json:"logFile,omitempty"`
	OutputFormat         string        `json:"outputFormat"` // text, json, yaml
	MinSeverity          Severity      `json:"minSeverity,omitempty"`
	MetricsFile          string        `json:"metricsFile,omitempty"`
}
