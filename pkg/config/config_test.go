package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/config"
	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

func scanFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("scan", pflag.ContinueOnError)
	flags.String("kubeconfig", "", "")
	flags.String("downstream-context", "", "")
	flags.String("management-context", "", "")
	flags.String("management-namespace", "", "")
	flags.String("block-namespace", config.DefaultBlockNamespace, "")
	flags.String("driver", config.DefaultDriver, "")
	flags.Int("concurrency", config.DefaultConcurrency, "")
	flags.Int("probe-concurrency", config.DefaultProbeConcurrency, "")
	flags.Bool("events", false, "")
	flags.Duration("event-lookback", config.DefaultEventLookback, "")
	flags.Duration("timeout", config.DefaultTimeout, "")
	flags.String("output", "text", "")
	flags.String("min-severity", "", "")
	return flags
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

func validConfig() *config.Config {
	return &config.Config{
		DownstreamContext:   "guest",
		ManagementContext:   "harvester",
		ManagementNamespace: "tenant-a",
		BlockNamespace:      config.DefaultBlockNamespace,
		Driver:              config.DefaultDriver,
		Concurrency:         4,
		ProbeConcurrency:    2,
		EventLookback:       time.Hour,
		Timeout:             time.Minute,
		Output:              "text",
	}
}

var _ = Describe("Load", func() {
	It("should apply defaults without flags", func() {
		cfg, err := config.Load(nil, "")
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.BlockNamespace).To(Equal("longhorn-system"))
		Expect(cfg.Driver).To(Equal("driver.harvesterhci.io"))
		Expect(cfg.Concurrency).To(Equal(8))
		Expect(cfg.ProbeConcurrency).To(Equal(4))
		Expect(cfg.EventLookback).To(Equal(time.Hour))
		Expect(cfg.Timeout).To(Equal(5 * time.Minute))
		Expect(cfg.Output).To(Equal("text"))
	})

	It("should read explicitly set flags", func() {
		flags := scanFlags()
		Expect(flags.Parse([]string{
			"--downstream-context", "guest",
			"--management-context", "harvester",
			"--management-namespace", "tenant-a",
			"--concurrency", "16",
			"--events",
		})).To(Succeed())

		cfg, err := config.Load(flags, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.DownstreamContext).To(Equal("guest"))
		Expect(cfg.ManagementNamespace).To(Equal("tenant-a"))
		Expect(cfg.Concurrency).To(Equal(16))
		Expect(cfg.Events).To(BeTrue())
		Expect(cfg.Timeout).To(Equal(5 * time.Minute))
	})

	It("should read HOTPLUG_SCAN_ environment variables", func() {
		setEnv("HOTPLUG_SCAN_MANAGEMENT_NAMESPACE", "tenant-env")
		setEnv("HOTPLUG_SCAN_PROBE_CONCURRENCY", "3")
		setEnv("HOTPLUG_SCAN_TIMEOUT", "90s")

		cfg, err := config.Load(scanFlags(), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.ManagementNamespace).To(Equal("tenant-env"))
		Expect(cfg.ProbeConcurrency).To(Equal(3))
		Expect(cfg.Timeout).To(Equal(90 * time.Second))
	})

	It("should let explicit flags override the environment", func() {
		setEnv("HOTPLUG_SCAN_MANAGEMENT_NAMESPACE", "tenant-env")
		flags := scanFlags()
		Expect(flags.Parse([]string{"--management-namespace", "tenant-flag"})).To(Succeed())

		cfg, err := config.Load(flags, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.ManagementNamespace).To(Equal("tenant-flag"))
	})

	Describe("config file", func() {
		var path string

		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "hotplug-scan.yaml")
			content := []byte(`downstream-context: guest
management-context: harvester
management-namespace: tenant-file
concurrency: 2
event-lookback: 30m
`)
			Expect(os.WriteFile(path, content, 0o600)).To(Succeed())
		})

		It("should read settings from the file", func() {
			cfg, err := config.Load(scanFlags(), path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.ManagementContext).To(Equal("harvester"))
			Expect(cfg.ManagementNamespace).To(Equal("tenant-file"))
			Expect(cfg.Concurrency).To(Equal(2))
			Expect(cfg.EventLookback).To(Equal(30 * time.Minute))
		})

		It("should let the environment override the file", func() {
			setEnv("HOTPLUG_SCAN_MANAGEMENT_NAMESPACE", "tenant-env")

			cfg, err := config.Load(scanFlags(), path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.ManagementNamespace).To(Equal("tenant-env"))
		})

		It("should fail on a missing file", func() {
			_, err := config.Load(scanFlags(), filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(MatchError(ContainSubstring("read config")))
		})
	})
})

var _ = Describe("Validate", func() {
	It("should accept a complete configuration", func() {
		Expect(validConfig().Validate()).To(Succeed())
	})

	DescribeTable("rejects unusable settings",
		func(mutate func(*config.Config), message string) {
			cfg := validConfig()
			mutate(cfg)

			err := cfg.Validate()
			Expect(err).To(MatchError(config.ErrInvalidConfig))
			Expect(err).To(MatchError(ContainSubstring(message)))
		},
		Entry("missing downstream context", func(c *config.Config) { c.DownstreamContext = "" }, "downstream-context is required"),
		Entry("missing management context", func(c *config.Config) { c.ManagementContext = " " }, "management-context is required"),
		Entry("missing management namespace", func(c *config.Config) { c.ManagementNamespace = "" }, "management-namespace is required"),
		Entry("unknown output", func(c *config.Config) { c.Output = "xml" }, "invalid output format 'xml' - must be one of: text, json, yaml"),
		Entry("unknown severity", func(c *config.Config) { c.MinSeverity = "fatal" }, "invalid severity level 'fatal'"),
		Entry("zero concurrency", func(c *config.Config) { c.Concurrency = 0 }, "concurrency must be at least 1"),
		Entry("zero probe concurrency", func(c *config.Config) { c.ProbeConcurrency = 0 }, "probe-concurrency must be at least 1"),
		Entry("negative timeout", func(c *config.Config) { c.Timeout = -time.Second }, "must not be negative"),
	)
})

var _ = Describe("ScanOptions", func() {
	It("should convert a valid configuration", func() {
		cfg := validConfig()
		cfg.MinSeverity = "warning"
		cfg.Events = true
		cfg.VMSelector = "guestcluster=prod"

		options, err := cfg.ScanOptions()
		Expect(err).NotTo(HaveOccurred())
		Expect(options.DownstreamContext).To(Equal("guest"))
		Expect(options.BlockVolumeNamespace).To(Equal("longhorn-system"))
		Expect(options.MinSeverity).To(Equal(types.SeverityWarning))
		Expect(options.IncludeEvents).To(BeTrue())
		Expect(options.VMLabelSelector).To(Equal("guestcluster=prod"))
		Expect(options.OutputFormat).To(Equal("text"))
	})

	It("should refuse an invalid configuration", func() {
		cfg := validConfig()
		cfg.ManagementNamespace = ""

		_, err := cfg.ScanOptions()
		Expect(err).To(MatchError(config.ErrInvalidConfig))
	})
})

var _ = Describe("ParseSeverity", func() {
	DescribeTable("parses severity names case-insensitively",
		func(input string, expected types.Severity) {
			severity, err := config.ParseSeverity(input)
			Expect(err).NotTo(HaveOccurred())
			Expect(severity).To(Equal(expected))
		},
		Entry("lower case", "critical", types.SeverityCritical),
		Entry("mixed case", "Warning", types.SeverityWarning),
		Entry("padded", " info ", types.SeverityInfo),
	)

	It("should reject unknown names", func() {
		_, err := config.ParseSeverity("debug")
		Expect(err).To(MatchError(config.ErrInvalidConfig))
	})
})
