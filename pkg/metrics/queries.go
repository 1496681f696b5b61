package metrics

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Query is a PromQL expression with a human-readable description
type Query struct {
	Name        string `json:"name"`
	Query       string `json:"query"`
	Description string `json:"description"`
}

// Rule is a Prometheus alerting rule
type Rule struct {
	Alert       string            `json:"alert"`
	Expr        string            `json:"expr"`
	For         string            `json:"for,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

// RuleGroup is a named group of alerting rules
type RuleGroup struct {
	Name  string `json:"name"`
	Rules []Rule `json:"rules"`
}

// RuleFile is the top level of a Prometheus rule file
type RuleFile struct {
	Groups []RuleGroup `json:"groups"`
}

// Queries returns PromQL queries over the scan series and the upstream storage metrics
// that usually move with them
func Queries() []Query {
	return []Query{
		{
			Name:        "Critical findings",
			Query:       fmt.Sprintf(`%s_findings{severity="CRITICAL"}`, namespace),
			Description: "CRITICAL findings of the last scan per cluster",
		},
		{
			Name:        "Volumes with issues",
			Query:       fmt.Sprintf(`%s_volumes{state="with_issues"}`, namespace),
			Description: "Bound volumes that carry at least one CRITICAL or WARNING finding",
		},
		{
			Name:        "Most affected nodes",
			Query:       fmt.Sprintf(`topk(5, %s_node_findings{severity="CRITICAL"})`, namespace),
			Description: "Nodes with the most CRITICAL findings, candidates for cordon and drain",
		},
		{
			Name:        "Orphaned attachments",
			Query:       fmt.Sprintf(`%s_volumes{state="orphaned_attachments"}`, namespace),
			Description: "VolumeAttachments naming volumes that no longer exist",
		},
		{
			Name:        "Scan freshness",
			Query:       fmt.Sprintf(`time() - %s_last_run_timestamp_seconds`, namespace),
			Description: "Seconds since the last scan report was written",
		},
		{
			Name:        "Failed Attach Events",
			Query:       `kube_event_total{reason="FailedAttachVolume",type="Warning"}`,
			Description: "Kubernetes events for failed volume attachment",
		},
		{
			Name:        "Degraded Longhorn Volumes",
			Query:       `longhorn_volume_robustness > 1`,
			Description: "Block-storage volumes that are degraded or faulted",
		},
	}
}

// Alerts returns the recommended alerting rules over the scan series
func Alerts() RuleFile {
	return RuleFile{Groups: []RuleGroup{{
		Name: "hotplug-scan",
		Rules: []Rule{
			{
				Alert: "HotplugScanCriticalFindings",
				Expr:  fmt.Sprintf(`%s_findings{severity="CRITICAL"} > 0`, namespace),
				For:   "15m",
				Labels: map[string]string{
					"severity":  "critical",
					"component": "storage",
				},
				Annotations: map[string]string{
					"summary":     "Hotplug volume inconsistencies detected",
					"description": "Cluster {{ $labels.cluster }} has {{ $value }} CRITICAL hotplug volume findings",
				},
			},
			{
				Alert: "HotplugScanNodeImpact",
				Expr:  fmt.Sprintf(`%s_node_findings{severity="CRITICAL"} >= 3`, namespace),
				For:   "15m",
				Labels: map[string]string{
					"severity":  "warning",
					"component": "storage",
				},
				Annotations: map[string]string{
					"summary":     "Node carries repeated volume attachment findings",
					"description": "Node {{ $labels.node }} has {{ $value }} CRITICAL findings, consider cordoning it",
				},
			},
			{
				Alert: "HotplugScanOrphanedAttachments",
				Expr:  fmt.Sprintf(`%s_volumes{state="orphaned_attachments"} > 0`, namespace),
				For:   "1h",
				Labels: map[string]string{
					"severity":  "warning",
					"component": "storage",
				},
				Annotations: map[string]string{
					"summary":     "Orphaned VolumeAttachments",
					"description": "{{ $value }} VolumeAttachments reference volumes that no longer exist",
				},
			},
			{
				Alert: "HotplugScanStale",
				Expr:  fmt.Sprintf(`time() - %s_last_run_timestamp_seconds > 7200`, namespace),
				For:   "10m",
				Labels: map[string]string{
					"severity":  "info",
					"component": "storage",
				},
				Annotations: map[string]string{
					"summary":     "Hotplug scan has not run recently",
					"description": "No scan report for cluster {{ $labels.cluster }} in the last two hours",
				},
			},
		},
	}}}
}

// AlertRulesYAML renders Alerts as a Prometheus rule file
func AlertRulesYAML() (string, error) {
	data, err := yaml.Marshal(Alerts())
	if err != nil {
		return "", fmt.Errorf("failed to marshal alert rules: %w", err)
	}
	return string(data), nil
}
