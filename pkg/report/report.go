// Package report renders scan reports for the terminal, for machines, and for the log artifact.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Options selects how a report is shown on the interactive surface
type Options struct {
	Format   string
	Detailed bool
	// MinSeverity hides lower-severity findings from the detailed text view only
	MinSeverity types.Severity
}

// Render writes the report to w. JSON and YAML always carry the complete report.
func Render(w io.Writer, report *types.Report, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(data)
		return err

	case FormatText, "":
		var b strings.Builder
		writeSummary(&b, report)
		if opts.Detailed {
			b.WriteString("\n")
			writeDetailed(&b, report, opts.MinSeverity)
		}
		_, err := io.WriteString(w, b.String())
		return err

	default:
		return fmt.Errorf("unknown output format: %s", opts.Format)
	}
}

// RenderSummary returns the summary view: counts, node impact, cluster-wide findings,
// affected volumes and recommendations.
func RenderSummary(report *types.Report) string {
	var b strings.Builder
	writeSummary(&b, report)
	return b.String()
}

// RenderDetailed returns the per-volume view, hiding findings below minSeverity.
// An empty minSeverity shows everything.
func RenderDetailed(report *types.Report, minSeverity types.Severity) string {
	var b strings.Builder
	writeDetailed(&b, report, minSeverity)
	return b.String()
}

// WriteLog writes the full plain-text transcript at both levels. Nothing is filtered.
func WriteLog(w io.Writer, report *types.Report) error {
	var b strings.Builder
	b.WriteString("\n========== SUMMARY ==========\n\n")
	writeSummary(&b, report)
	b.WriteString("\n========== DETAILED ==========\n\n")
	writeDetailed(&b, report, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSummary(b *strings.Builder, report *types.Report) {
	s := report.Summary

	fmt.Fprintf(b, "HOTPLUG VOLUME SCAN\n")
	fmt.Fprintf(b, "Generated:  %s\n", report.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(b, "Downstream: %s\n", report.DownstreamContext)
	fmt.Fprintf(b, "Management: %s (namespace %s)\n", report.ManagementContext, report.ManagementNamespace)
	if s.Interrupted {
		fmt.Fprintf(b, "\nWARNING: scan was interrupted, the report covers %d volumes only\n", s.VolumesAnalyzed)
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "SUMMARY:\n")
	fmt.Fprintf(b, "  %-28s %d\n", "Persistent volumes:", s.PersistentVolumes)
	fmt.Fprintf(b, "  %-28s %d\n", "Bound volumes analyzed:", s.VolumesAnalyzed)
	fmt.Fprintf(b, "  %-28s %d\n", "Volumes with issues:", s.VolumesWithIssues)
	fmt.Fprintf(b, "  %-28s %d\n", "Volumes OK:", s.VolumesOK)
	fmt.Fprintf(b, "  %-28s %d\n", "Unbound volumes:", s.UnboundVolumes)
	fmt.Fprintf(b, "  %-28s %d\n", "Orphaned attachments:", s.OrphanedAttachments)
	fmt.Fprintf(b, "  %-28s %d (%d attached)\n", "VolumeAttachments:", s.VolumeAttachments, s.AttachedVolumes)
	fmt.Fprintf(b, "  %-28s %d\n", "VirtualMachines:", s.VirtualMachines)
	fmt.Fprintf(b, "  %-28s %d\n", "VirtualMachineInstances:", s.VirtualMachineInstances)
	fmt.Fprintf(b, "  %-28s CRITICAL=%d WARNING=%d INFO=%d\n", "Findings:", s.Critical, s.Warning, s.Info)
	b.WriteString("\n")

	if len(report.NodeImpact) > 0 {
		fmt.Fprintf(b, "NODE IMPACT:\n")
		fmt.Fprintf(b, "%-40s %-9s %s\n", "NODE", "CRITICAL", "WARNING")
		fmt.Fprintf(b, "%-40s %-9s %s\n", "----", "--------", "-------")
		for _, n := range report.NodeImpact {
			fmt.Fprintf(b, "%-40s %-9d %d\n", n.Node, n.Critical, n.Warning)
		}
		b.WriteString("\n")
	}

	writeFindingTable(b, "UNBOUND VOLUMES:", "VOLUME", report.UnboundVolumes)
	writeFindingTable(b, "ORPHANED ATTACHMENTS:", "ATTACHMENT", report.OrphanedAttachments)

	var affected []types.VolumeReport
	for _, v := range report.Volumes {
		if len(v.Findings) > 0 {
			affected = append(affected, v)
		}
	}
	if len(affected) > 0 {
		fmt.Fprintf(b, "VOLUMES WITH FINDINGS:\n")
		fmt.Fprintf(b, "%-45s %-9s %-8s %-5s %s\n", "VOLUME", "CRITICAL", "WARNING", "INFO", "CLAIM")
		fmt.Fprintf(b, "%-45s %-9s %-8s %-5s %s\n", "------", "--------", "-------", "----", "-----")
		for _, v := range affected {
			fmt.Fprintf(b, "%-45s %-9d %-8d %-5d %s\n", v.Volume,
				v.CountBySeverity(types.SeverityCritical),
				v.CountBySeverity(types.SeverityWarning),
				v.CountBySeverity(types.SeverityInfo),
				claimName(v))
		}
		b.WriteString("\n")
	} else if len(report.Volumes) > 0 {
		fmt.Fprintf(b, "No findings on %d analyzed volumes\n\n", len(report.Volumes))
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintf(b, "RECOMMENDATIONS:\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(b, "%s\n", rec)
		}
		b.WriteString("\n")
	}
}

func writeFindingTable(b *strings.Builder, title, subject string, findings []types.Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(b, "%s\n", title)
	fmt.Fprintf(b, "%-9s %-50s %-30s %s\n", "SEVERITY", subject, "NODE", "MESSAGE")
	fmt.Fprintf(b, "%-9s %-50s %-30s %s\n", "--------", strings.Repeat("-", len(subject)), "----", "-------")
	for _, f := range findings {
		fmt.Fprintf(b, "%-9s %-50s %-30s %s\n", f.Severity, f.Subject, dash(f.Node), f.Message)
	}
	b.WriteString("\n")
}

func writeDetailed(b *strings.Builder, report *types.Report, minSeverity types.Severity) {
	fmt.Fprintf(b, "VOLUME DETAILS:\n\n")
	shown := 0
	for _, v := range report.Volumes {
		findings := filterFindings(v.Findings, minSeverity)
		if minSeverity != "" && len(findings) == 0 {
			continue
		}
		shown++

		status := "OK"
		if v.HasIssues {
			status = "ISSUES"
		} else if len(v.Findings) > 0 {
			status = "INFO"
		}
		fmt.Fprintf(b, "=== %s [%s]\n", v.Volume, status)
		fmt.Fprintf(b, "  Claim:          %s\n", claimName(v))
		fmt.Fprintf(b, "  Access mode:    %s\n", dash(v.AccessMode))
		fmt.Fprintf(b, "  Active pods:    %s\n", podList(v.ActivePods))
		if len(v.CompletedPods) > 0 {
			fmt.Fprintf(b, "  Completed pods: %s\n", podList(v.CompletedPods))
		}
		fmt.Fprintf(b, "  Attachments:    %s\n", attachmentList(v.Attachments))
		fmt.Fprintf(b, "  Machines:       %s\n", list(v.Machines))
		fmt.Fprintf(b, "  Instances:      %s\n", list(v.Instances))
		fmt.Fprintf(b, "  Management PVC: %s\n", dash(v.ManagementPVC))
		fmt.Fprintf(b, "  Block volume:   %s\n", dash(v.BlockVolume))
		if len(v.GhostReferences) > 0 {
			fmt.Fprintf(b, "  Ghosts:         %s\n", strings.Join(v.GhostReferences, ", "))
		}
		if len(findings) == 0 {
			fmt.Fprintf(b, "  No findings\n\n")
			continue
		}
		fmt.Fprintf(b, "  Findings:\n")
		for _, f := range findings {
			if f.Node != "" {
				fmt.Fprintf(b, "    [%s] %s (%s, node %s): %s\n", f.Severity, f.Type, f.Check, f.Node, f.Message)
			} else {
				fmt.Fprintf(b, "    [%s] %s (%s): %s\n", f.Severity, f.Type, f.Check, f.Message)
			}
		}
		b.WriteString("\n")
	}
	if shown == 0 {
		fmt.Fprintf(b, "No volumes to show\n")
	}
}

func filterFindings(findings []types.Finding, minSeverity types.Severity) []types.Finding {
	if minSeverity == "" {
		return findings
	}
	var filtered []types.Finding
	for _, f := range findings {
		if f.Severity.Rank() >= minSeverity.Rank() {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func claimName(v types.VolumeReport) string {
	if v.ClaimName == "" {
		return "-"
	}
	return v.ClaimNamespace + "/" + v.ClaimName
}

func podList(pods []types.PodRef) string {
	if len(pods) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(pods))
	for _, p := range pods {
		parts = append(parts, fmt.Sprintf("%s/%s on %s (%s)", p.Namespace, p.Name, dash(p.Node), p.Phase))
	}
	return strings.Join(parts, ", ")
}

func attachmentList(atts []types.AttachmentRef) string {
	if len(atts) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(atts))
	for _, a := range atts {
		parts = append(parts, fmt.Sprintf("%s on %s (attached=%t)", a.Name, a.Node, a.Attached))
	}
	return strings.Join(parts, ", ")
}

func list(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
