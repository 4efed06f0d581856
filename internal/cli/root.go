package cli

import (
	"context"
	"os"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"

	"pqbench/internal/bench"
	"pqbench/internal/config"
	"pqbench/internal/logger"
	"pqbench/internal/metrics"
	"pqbench/internal/report"
)

// RootCommandeer owns the pqbench root command and its flag values.
type RootCommandeer struct {
	cmd *cobra.Command

	configPath  string
	output      string
	counts      []int
	queues      []string
	metricsFile string
	collectGC   bool
	verbose     bool
}

// NewRootCommandeer builds the root command. Running it performs the
// benchmark and writes the report to the command's output stream.
func NewRootCommandeer() *RootCommandeer {
	commandeer := &RootCommandeer{}

	cmd := &cobra.Command{
		Use:   "pqbench",
		Short: "Compare heap and sorted array priority queues",
		Long: `Measure insert and extract-max throughput of a binary heap priority queue
and a sorted array priority queue over a descending list of operation counts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commandeer.run(cmd.Context(), cmd)
		},
	}

	defaultOutput := os.Getenv("PQBENCH_OUTPUT")
	if defaultOutput == "" {
		defaultOutput = string(report.FormatTable)
	}

	cmd.Flags().StringVarP(&commandeer.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVarP(&commandeer.output, "output", "o", defaultOutput, "Output format - \"table\", \"csv\", \"json\" or \"yaml\"")
	cmd.Flags().IntSliceVar(&commandeer.counts, "counts", nil, "Operation counts to measure, in order (default 50000,40000,30000,20000,10000)")
	cmd.Flags().StringSliceVar(&commandeer.queues, "queues", nil, "Queue implementations to measure (default heap,sorted_array)")
	cmd.Flags().StringVar(&commandeer.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the run")
	cmd.Flags().BoolVar(&commandeer.collectGC, "gc", true, "Run a garbage collection before each timed phase")
	cmd.Flags().BoolVarP(&commandeer.verbose, "verbose", "v", false, "Verbose logging")

	commandeer.cmd = cmd
	return commandeer
}

// Execute runs the command with os.Args.
func (rc *RootCommandeer) Execute(ctx context.Context) error {
	return rc.cmd.ExecuteContext(ctx)
}

// GetCmd returns the underlying cobra command
func (rc *RootCommandeer) GetCmd() *cobra.Command {
	return rc.cmd
}

func (rc *RootCommandeer) run(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := rc.resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.NewLoggerWithComponent(cfg.Log, "pqbench")
	if err != nil {
		return errors.Wrap(err, "Failed to create logger")
	}
	defer func() { _ = log.Sync() }()
	ctx = logger.WithLogger(ctx, log)

	types, err := cfg.QueueTypes()
	if err != nil {
		return errors.Wrap(err, "Failed to resolve queue types")
	}
	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return errors.Wrap(err, "Failed to resolve output format")
	}

	var recorder *metrics.Recorder
	runnerConfig := bench.RunnerConfig{
		Counts:  cfg.Counts,
		Types:   types,
		Options: bench.Options{CollectGarbage: cfg.CollectGarbage},
	}
	if cfg.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		runnerConfig.Observer = recorder
	}

	runner, err := bench.NewRunner(runnerConfig)
	if err != nil {
		return errors.Wrap(err, "Failed to create benchmark runner")
	}

	rows, err := runner.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "Benchmark failed")
	}

	if err := report.NewRenderer(cmd.OutOrStdout(), runner.Types()).Render(format, rows); err != nil {
		return errors.Wrap(err, "Failed to render report")
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			return errors.Wrap(err, "Failed to export metrics")
		}
		log.Info("Wrote metrics textfile", logger.F("path", cfg.MetricsFile))
	}

	return nil
}

// resolveConfig reads the config file, layers explicitly set flags on top
// of it and validates the result once.
func (rc *RootCommandeer) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Read(rc.configPath)
	if err != nil {
		return config.Config{}, errors.Wrap(err, "Failed to read configuration")
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = rc.output
	}
	if flags.Changed("counts") {
		cfg.Counts = rc.counts
	}
	if flags.Changed("queues") {
		cfg.Queues = rc.queues
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = rc.metricsFile
	}
	if flags.Changed("gc") {
		cfg.CollectGarbage = rc.collectGC
	}
	if rc.verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "Invalid configuration")
	}
	return cfg, nil
}
