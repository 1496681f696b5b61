package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"sigs.k8s.io/yaml"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/report"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

func sampleReport() *types.Report {
	stale := types.Finding{
		Subject:  "pvc-b",
		Severity: types.SeverityCritical,
		Type:     types.StaleAttachment,
		Check:    types.CheckAttachments,
		Message:  "stale VolumeAttachment csi-b on node node-1: no active pod uses the volume",
		Node:     "node-1",
	}
	cosmetic := types.Finding{
		Subject:  "pvc-d",
		Severity: types.SeverityInfo,
		Type:     types.StaleWorkloadStatus,
		Check:    types.CheckBlockStorage,
		Message:  "stale workload status on lh-pvc-d (cosmetic, lastPodRefAt=2024-05-01T10:00:00Z): references pods that no longer exist: pod hp-volume-ghost",
	}
	orphan := types.Finding{
		Subject:  "volumeattachment/csi-orphan",
		Severity: types.SeverityWarning,
		Type:     types.OrphanedAttachment,
		Check:    types.CheckCluster,
		Message:  "VolumeAttachment csi-orphan on node node-4 references missing volume nonexistent-pv",
		Node:     "node-4",
	}

	return &types.Report{
		DownstreamContext:   "guest",
		ManagementContext:   "harvester",
		ManagementNamespace: "tenant-a",
		GeneratedAt:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Summary: types.Summary{
			PersistentVolumes: 3,
			VolumesAnalyzed:   3,
			VolumesWithIssues: 1,
			VolumesOK:         2,
			Critical:          1,
			Warning:           1,
			Info:              1,
		},
		NodeImpact: []types.NodeImpact{
			{Node: "node-1", Critical: 1},
			{Node: "node-4", Warning: 1},
		},
		CordonCandidate:     "node-1",
		Recommendations:     []string{"Check VolumeAttachment objects on the downstream cluster:"},
		OrphanedAttachments: []types.Finding{orphan},
		Volumes: []types.VolumeReport{
			{Volume: "pvc-a", ClaimNamespace: "apps", ClaimName: "data-a", AccessMode: "ReadWriteOnce", Findings: []types.Finding{}},
			{
				Volume:         "pvc-b",
				ClaimNamespace: "apps",
				ClaimName:      "data-b",
				AccessMode:     "ReadWriteOnce",
				Attachments:    []types.AttachmentRef{{Name: "csi-b", Node: "node-1", Volume: "pvc-b", Attached: true}},
				Findings:       []types.Finding{stale},
				HasIssues:      true,
			},
			{
				Volume:          "pvc-d",
				ClaimNamespace:  "apps",
				ClaimName:       "data-d",
				BlockVolume:     "lh-pvc-d",
				GhostReferences: []string{"pod hp-volume-ghost"},
				Findings:        []types.Finding{cosmetic},
			},
		},
	}
}

var _ = Describe("Render", func() {
	var (
		r   *types.Report
		buf *bytes.Buffer
	)

	BeforeEach(func() {
		r = sampleReport()
		buf = &bytes.Buffer{}
	})

	Describe("summary", func() {
		It("should show counts, node impact and affected volumes", func() {
			out := report.RenderSummary(r)

			Expect(out).To(ContainSubstring("HOTPLUG VOLUME SCAN"))
			Expect(out).To(ContainSubstring("Generated:  2024-05-01T12:00:00Z"))
			Expect(out).To(ContainSubstring("Management: harvester (namespace tenant-a)"))
			Expect(out).To(ContainSubstring("CRITICAL=1 WARNING=1 INFO=1"))
			Expect(out).To(ContainSubstring("NODE IMPACT:"))
			Expect(out).To(ContainSubstring("ORPHANED ATTACHMENTS:"))
			Expect(out).To(ContainSubstring("volumeattachment/csi-orphan"))
			Expect(out).To(ContainSubstring("VOLUMES WITH FINDINGS:"))
			Expect(out).To(ContainSubstring("RECOMMENDATIONS:"))
			Expect(out).NotTo(ContainSubstring("UNBOUND VOLUMES:"))
			Expect(out).NotTo(ContainSubstring("VOLUME DETAILS:"))
		})

		It("should list the worst node first", func() {
			out := report.RenderSummary(r)
			Expect(strings.Index(out, "node-1")).To(BeNumerically("<", strings.Index(out, "node-4")))
		})

		It("should list only volumes with findings", func() {
			out := report.RenderSummary(r)
			Expect(out).To(ContainSubstring("pvc-b"))
			Expect(out).To(ContainSubstring("pvc-d"))
			Expect(out).NotTo(ContainSubstring("pvc-a "))
		})

		It("should note a clean scan", func() {
			r.Volumes = r.Volumes[:1]
			out := report.RenderSummary(r)
			Expect(out).To(ContainSubstring("No findings on 1 analyzed volumes"))
		})

		It("should warn about interrupted scans", func() {
			r.Summary.Interrupted = true
			out := report.RenderSummary(r)
			Expect(out).To(ContainSubstring("scan was interrupted"))
		})
	})

	Describe("detailed", func() {
		It("should show every volume with its context and findings", func() {
			out := report.RenderDetailed(r, "")

			Expect(out).To(ContainSubstring("=== pvc-a [OK]"))
			Expect(out).To(ContainSubstring("=== pvc-b [ISSUES]"))
			Expect(out).To(ContainSubstring("=== pvc-d [INFO]"))
			Expect(out).To(ContainSubstring("csi-b on node-1 (attached=true)"))
			Expect(out).To(ContainSubstring("[CRITICAL] stale-attachment (attachments, node node-1)"))
			Expect(out).To(ContainSubstring("[INFO] stale-workload-status (block-storage)"))
			Expect(out).To(MatchRegexp(`Ghosts:\s+pod hp-volume-ghost`))
		})

		It("should hide findings below the minimum severity", func() {
			out := report.RenderDetailed(r, types.SeverityWarning)

			Expect(out).To(ContainSubstring("=== pvc-b [ISSUES]"))
			Expect(out).NotTo(ContainSubstring("pvc-a"))
			Expect(out).NotTo(ContainSubstring("pvc-d"))
		})

		It("should say when nothing passes the filter", func() {
			r.Volumes = r.Volumes[:1]
			out := report.RenderDetailed(r, types.SeverityInfo)
			Expect(out).To(ContainSubstring("No volumes to show"))
		})
	})

	It("should render text with the detailed view on request", func() {
		Expect(report.Render(buf, r, report.Options{Format: report.FormatText, Detailed: true})).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("SUMMARY:"))
		Expect(buf.String()).To(ContainSubstring("VOLUME DETAILS:"))
	})

	It("should render the summary only by default", func() {
		Expect(report.Render(buf, r, report.Options{})).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("SUMMARY:"))
		Expect(buf.String()).NotTo(ContainSubstring("VOLUME DETAILS:"))
	})

	It("should render the complete report as JSON", func() {
		Expect(report.Render(buf, r, report.Options{Format: report.FormatJSON, MinSeverity: types.SeverityCritical})).To(Succeed())

		var decoded types.Report
		Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded.Volumes).To(HaveLen(3))
		Expect(decoded.AllFindings()).To(HaveLen(3))
		Expect(decoded.CordonCandidate).To(Equal("node-1"))
	})

	It("should render the complete report as YAML", func() {
		Expect(report.Render(buf, r, report.Options{Format: report.FormatYAML})).To(Succeed())

		var decoded types.Report
		Expect(yaml.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
		Expect(decoded.Summary.Critical).To(Equal(1))
		Expect(decoded.OrphanedAttachments).To(HaveLen(1))
	})

	It("should reject unknown formats", func() {
		err := report.Render(buf, r, report.Options{Format: "xml"})
		Expect(err).To(MatchError(ContainSubstring("unknown output format: xml")))
	})
})

var _ = Describe("WriteLog", func() {
	It("should write both levels without filtering", func() {
		var buf bytes.Buffer
		Expect(report.WriteLog(&buf, sampleReport())).To(Succeed())

		out := buf.String()
		Expect(out).To(ContainSubstring("========== SUMMARY =========="))
		Expect(out).To(ContainSubstring("========== DETAILED =========="))
		Expect(strings.Index(out, "SUMMARY:")).To(BeNumerically("<", strings.Index(out, "VOLUME DETAILS:")))
		Expect(out).To(ContainSubstring("=== pvc-a [OK]"))
		Expect(out).To(ContainSubstring("[INFO] stale-workload-status"))
		Expect(out).To(ContainSubstring("[CRITICAL] stale-attachment"))
	})
})
