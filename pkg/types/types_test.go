package types_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

var _ = Describe("Severity", func() {
	It("should rank CRITICAL above WARNING above INFO", func() {
		Expect(types.SeverityCritical.Rank()).To(BeNumerically(">", types.SeverityWarning.Rank()))
		Expect(types.SeverityWarning.Rank()).To(BeNumerically(">", types.SeverityInfo.Rank()))
		Expect(types.Severity("DEBUG").Rank()).To(BeZero())
	})

	It("should count only CRITICAL and WARNING as issues", func() {
		Expect(types.SeverityCritical.IsIssue()).To(BeTrue())
		Expect(types.SeverityWarning.IsIssue()).To(BeTrue())
		Expect(types.SeverityInfo.IsIssue()).To(BeFalse())
	})
})

var _ = Describe("Report", func() {
	It("should list volume findings before cluster-wide findings", func() {
		report := &types.Report{
			Volumes: []types.VolumeReport{
				{Volume: "pvc-a", Findings: []types.Finding{{Subject: "pvc-a", Severity: types.SeverityCritical}}},
				{Volume: "pvc-b", Findings: []types.Finding{}},
			},
			UnboundVolumes:      []types.Finding{{Subject: "pvc-old", Severity: types.SeverityWarning}},
			OrphanedAttachments: []types.Finding{{Subject: "volumeattachment/csi-x", Severity: types.SeverityWarning}},
		}

		var subjects []string
		for _, f := range report.AllFindings() {
			subjects = append(subjects, f.Subject)
		}
		Expect(subjects).To(Equal([]string{"pvc-a", "pvc-old", "volumeattachment/csi-x"}))
	})

	It("should count volume findings by severity", func() {
		v := types.VolumeReport{Findings: []types.Finding{
			{Severity: types.SeverityCritical},
			{Severity: types.SeverityCritical},
			{Severity: types.SeverityInfo},
		}}
		Expect(v.CountBySeverity(types.SeverityCritical)).To(Equal(2))
		Expect(v.CountBySeverity(types.SeverityWarning)).To(Equal(0))
		Expect(v.CountBySeverity(types.SeverityInfo)).To(Equal(1))
	})
})
