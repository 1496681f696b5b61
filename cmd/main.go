package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"k8s.io/client-go/rest"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/client"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/config"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/detect"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/gateway"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/metrics"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/report"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Configure structured logging
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Pretty console output for development
	if os.Getenv("LOG_FORMAT") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// CLI error messages to stderr are appropriate
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "kubectl-hotplug_scan",
		Short: "Find inconsistent hotplug volume state between a guest cluster and its KubeVirt host cluster",
		Long: `A read-only kubectl plugin that cross-checks every bound volume of a downstream
(guest) cluster against the management cluster that hosts its virtual machines:
- downstream pods and VolumeAttachments
- VirtualMachine and VirtualMachineInstance specs and pending volume requests
- block-storage (Longhorn) workload status, including ghost pod references

Findings are classified CRITICAL, WARNING or INFO and rolled up per node, so the
node with the most inconsistent attachments can be cordoned and drained first.
The full report is always written to a log file. The tool never changes cluster state
and exits 0 regardless of findings.

Examples:
  # Scan a guest cluster hosted in namespace tenant-a
  kubectl hotplug-scan --downstream-context guest --management-context harvester \
    --management-namespace tenant-a

  # Show per-volume details, hiding INFO findings
  kubectl hotplug-scan ... --verbose --min-severity=warning

  # Machine-readable output plus a node exporter textfile
  kubectl hotplug-scan ... --output=json --metrics-file=/var/lib/node_exporter/hotplug.prom`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, configFile)
		},
	}

	flags := cmd.Flags()
	flags.String("kubeconfig", "", "Path to the kubeconfig file holding both contexts")
	flags.String("downstream-context", "", "Kubeconfig context of the downstream (guest) cluster")
	flags.String("management-context", "", "Kubeconfig context of the management (KubeVirt) cluster")
	flags.String("management-namespace", "", "Management-cluster namespace holding the guest cluster's machines and volumes")
	flags.String("block-namespace", config.DefaultBlockNamespace, "Namespace of the block-storage volume objects")
	flags.String("driver", config.DefaultDriver, "CSI driver to analyze (empty analyzes every driver)")
	flags.String("vm-selector", "", "Label selector restricting management-cluster machines")
	flags.Int("concurrency", config.DefaultConcurrency, "Volumes analyzed in parallel")
	flags.Int("probe-concurrency", config.DefaultProbeConcurrency, "Ghost-reference probes in parallel per volume")
	flags.Bool("events", false, "Attach recent attach and mount failure events to volumes")
	flags.Duration("event-lookback", config.DefaultEventLookback, "How far back events are considered")
	flags.Duration("timeout", config.DefaultTimeout, "Overall scan timeout (0 disables)")
	flags.BoolP("verbose", "v", false, "Show the per-volume detailed view and debug logs")
	flags.String("log-file", "", "Log artifact path (default hotplug-scan-<downstream-context>-<timestamp>.log)")
	flags.String("output", report.FormatText, "Output format (text,json,yaml)")
	flags.String("min-severity", "", "Minimum severity shown in the detailed view (info,warning,critical)")
	flags.String("metrics-file", "", "Write Prometheus textfile metrics to this path")
	cmd.Flags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml); HOTPLUG_SCAN_* environment variables also apply")

	cmd.AddCommand(newMetricsCmd())

	return cmd
}

func newMetricsCmd() *cobra.Command {
	var (
		generateAlerts bool
		outputFile     string
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print Prometheus queries and alerting rules for scan metrics",
		Long: `Print PromQL queries and alerting rules over the series written with --metrics-file.

This helps set up proactive monitoring of hotplug volume state between scans.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetrics(cmd.OutOrStdout(), generateAlerts, outputFile)
		},
	}

	cmd.Flags().BoolVar(&generateAlerts, "generate-alerts", false,
		"Generate Prometheus alerting rules")
	cmd.Flags().StringVar(&outputFile, "output-file", "",
		"Write output to file instead of stdout")

	return cmd
}

func runScan(cmd *cobra.Command, configFile string) error {
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return err
	}
	options, err := cfg.ScanOptions()
	if err != nil {
		return err
	}

	logPath := options.LogFile
	if logPath == "" {
		logPath = defaultLogPath(options.DownstreamContext, time.Now())
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	defer logFile.Close()
	setupLogging(options.Verbose, logFile)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	gw, err := buildGateway(cfg.Kubeconfig, options)
	if err != nil {
		return newClientError(err)
	}

	log.Info().
		Str("downstream", options.DownstreamContext).
		Str("management", options.ManagementContext).
		Str("namespace", options.ManagementNamespace).
		Str("log_file", logPath).
		Msg("starting hotplug volume scan")

	result, err := detect.NewDetector(gw, options).DetectAll(ctx)
	if err != nil {
		if errors.Is(err, gateway.ErrNamespaceNotFound) {
			return newNamespaceError(options.ManagementNamespace, err)
		}
		return newScanError(err)
	}

	if err := report.WriteLog(logFile, result); err != nil {
		log.Error().Err(err).Str("log_file", logPath).Msg("failed to write report to log file")
	}

	if err := report.Render(cmd.OutOrStdout(), result, report.Options{
		Format:      options.OutputFormat,
		Detailed:    options.Verbose,
		MinSeverity: options.MinSeverity,
	}); err != nil {
		return err
	}

	if options.MetricsFile != "" {
		recorder := metrics.NewRecorder(options.DownstreamContext)
		recorder.Record(result)
		if err := recorder.WriteTextfile(options.MetricsFile); err != nil {
			log.Error().Err(err).Msg("failed to write metrics")
		}
	}

	logCompletion(result, logPath)
	return nil
}

// setupLogging tees log events to the console and, without color, to the log artifact
func setupLogging(verbose bool, logFile io.Writer) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var console io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if os.Getenv("LOG_FORMAT") == "json" {
		console = os.Stderr
	}
	file := zerolog.ConsoleWriter{Out: logFile, NoColor: true, TimeFormat: time.RFC3339}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, file)).With().Timestamp().Logger()
}

func logCompletion(result *types.Report, logPath string) {
	s := result.Summary
	event := log.Info()
	if s.Interrupted {
		event = log.Warn()
	}
	event.
		Int("volumes", s.VolumesAnalyzed).
		Int("with_issues", s.VolumesWithIssues).
		Int("critical", s.Critical).
		Int("warning", s.Warning).
		Int("info", s.Info).
		Bool("interrupted", s.Interrupted).
		Str("log_file", logPath).
		Msg("scan complete")
}

var unsafePathChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// defaultLogPath derives the log artifact name from the downstream context and run time
func defaultLogPath(downstreamContext string, now time.Time) string {
	name := unsafePathChars.ReplaceAllString(downstreamContext, "_")
	return fmt.Sprintf("hotplug-scan-%s-%s.log", name, now.Format("20060102-150405"))
}

// restConfigFor resolves one kubeconfig context the same way kubectl does
func restConfigFor(kubeconfig, kubeContext string) (*rest.Config, error) {
	flags := genericclioptions.NewConfigFlags(true)
	if kubeconfig != "" {
		flags.KubeConfig = &kubeconfig
	}
	flags.Context = &kubeContext
	return flags.ToRESTConfig()
}

func buildGateway(kubeconfig string, options types.ScanOptions) (*gateway.Gateway, error) {
	downstreamConfig, err := restConfigFor(kubeconfig, options.DownstreamContext)
	if err != nil {
		return nil, fmt.Errorf("context %s: %w", options.DownstreamContext, err)
	}
	managementConfig, err := restConfigFor(kubeconfig, options.ManagementContext)
	if err != nil {
		return nil, fmt.Errorf("context %s: %w", options.ManagementContext, err)
	}

	downstream, err := client.NewClientFromConfig(downstreamConfig)
	if err != nil {
		return nil, err
	}
	management, err := client.NewClientFromConfig(managementConfig)
	if err != nil {
		return nil, err
	}
	virt, err := client.NewVirtClientFromConfig(managementConfig)
	if err != nil {
		return nil, err
	}
	longhorn, err := client.NewLonghornClientFromConfig(managementConfig)
	if err != nil {
		return nil, err
	}

	return gateway.NewGateway(gateway.Clients{
		Downstream:   downstream,
		Management:   management,
		KubeVirt:     virt,
		BlockStorage: longhorn,
	}, options), nil
}

func runMetrics(out io.Writer, generateAlerts bool, outputFile string) error {
	var output strings.Builder

	if generateAlerts {
		output.WriteString("# Prometheus Alerting Rules for hotplug volume scans\n")
		rules, err := metrics.AlertRulesYAML()
		if err != nil {
			return err
		}
		output.WriteString(rules)
	} else {
		// Default: show metric queries
		output.WriteString("# Prometheus Queries for hotplug volume scans\n\n")
		for _, query := range metrics.Queries() {
			output.WriteString(fmt.Sprintf("## %s\n", query.Name))
			output.WriteString(fmt.Sprintf("# %s\n", query.Description))
			output.WriteString(fmt.Sprintf("%s\n\n", query.Query))
		}
	}

	result := output.String()

	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(result), 0644)
	}

	_, err := io.WriteString(out, result)
	return err
}

// newClientError creates a user-friendly error for Kubernetes client issues
func newClientError(err error) error {
	return fmt.Errorf("failed to initialize Kubernetes clients - check your kubeconfig and contexts: %w", err)
}

// newNamespaceError creates a user-friendly error for a missing management namespace
func newNamespaceError(namespace string, err error) error {
	return fmt.Errorf("management namespace '%s' does not exist - check --management-namespace: %w", namespace, err)
}

// newScanError creates a user-friendly error for scans that could not start
func newScanError(err error) error {
	return fmt.Errorf("scan failed - check cluster permissions and connectivity: %w", err)
}
