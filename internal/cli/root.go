// Package cli implements the textractctl command tree.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"textractkit/internal/config"
	"textractkit/internal/jobs"
	"textractkit/internal/observability"
	"textractkit/internal/staging"
	"textractkit/internal/wire"
	"textractkit/pkg/client"
	"textractkit/pkg/textract"
)

var version = "dev"

// Textract is the client surface the commands use.
type Textract interface {
	jobs.Client
	AnalyzeDocument(context.Context, *textract.AnalyzeDocumentRequest) (*textract.AnalyzeDocumentResult, error)
	DetectDocumentText(context.Context, *textract.DetectDocumentTextRequest) (*textract.DetectDocumentTextResult, error)
	AnalyzeExpense(context.Context, *textract.AnalyzeExpenseRequest) (*textract.AnalyzeExpenseResult, error)
	AnalyzeID(context.Context, *textract.AnalyzeIDRequest) (*textract.AnalyzeIDResult, error)
	WaitForDocumentAnalysis(ctx context.Context, jobID string) (*textract.GetDocumentAnalysisResult, error)
	WaitForDocumentTextDetection(ctx context.Context, jobID string) (*textract.GetDocumentTextDetectionResult, error)
	WaitForExpenseAnalysis(ctx context.Context, jobID string) (*textract.GetExpenseAnalysisResult, error)
}

var _ Textract = (*client.Client)(nil)

// app carries flags, resolved configuration, and lazily opened backends for
// one invocation.
type app struct {
	configPath string
	verbose    bool
	trace      bool

	lookupEnv func(string) (string, bool)
	now       func() time.Time
	cfg       config.Config
	logger    *slog.Logger

	newClient  func(ctx context.Context, cfg config.Config, opts ...client.Option) (Textract, error)
	openJobs   func(ctx context.Context, cfg jobs.Config) (jobs.Store, error)
	openStager func(ctx context.Context, cfg staging.Config) (staging.Stager, error)

	api      Textract
	store    jobs.Store
	stager   staging.Stager
	expvar   *observability.ExpvarRecorder
	registry *prometheus.Registry
}

func newApp() *app {
	return &app{
		lookupEnv: os.LookupEnv,
		now:       time.Now,
		newClient: func(ctx context.Context, cfg config.Config, opts ...client.Option) (Textract, error) {
			return client.New(ctx, cfg.ClientConfig(), opts...)
		},
		openJobs:   jobs.Open,
		openStager: staging.Open,
	}
}

// Execute runs textractctl with args and releases any backend it opened.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return newApp().execute(ctx, args, stdout, stderr)
}

func (a *app) execute(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	defer func() {
		if cerr := a.teardown(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return root.ExecuteContext(ctx)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "textractctl",
		Short:        "Amazon Textract from the command line",
		Long:         `Run synchronous Textract analyses, start and track asynchronous jobs, and stage documents in S3.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.textractkit/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.trace, "trace", false, "write a JSON span per Textract call to stderr")

	root.AddCommand(
		a.detectCommand(),
		a.analyzeCommand(),
		a.expenseCommand(),
		a.identityCommand(),
		a.startCommand(),
		a.statusCommand(),
		a.waitCommand(),
		a.jobsCommand(),
		a.stageCommand(),
		enumsCommand(),
		versionCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	cfg, err := config.Load(a.configPath, a.lookupEnv)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) teardown() error {
	a.logMetrics()
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func (a *app) textract(ctx context.Context, cmd *cobra.Command) (Textract, error) {
	if a.api != nil {
		return a.api, nil
	}
	opts := []client.Option{
		client.WithLogger(a.logger),
		client.WithPollInterval(a.cfg.PollInterval),
	}
	switch a.cfg.Metrics {
	case config.MetricsExpvar:
		a.expvar = observability.NewExpvarRecorder("")
		opts = append(opts, client.WithMetrics(a.expvar))
	case config.MetricsPrometheus:
		a.registry = prometheus.NewRegistry()
		rec, err := observability.NewPrometheusRecorder(a.registry)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithMetrics(rec))
	}
	if a.trace {
		opts = append(opts, client.WithTracer(observability.NewJSONTracer(cmd.ErrOrStderr())))
	}
	api, err := a.newClient(ctx, a.cfg, opts...)
	if err != nil {
		return nil, err
	}
	a.api = api
	return api, nil
}

func (a *app) jobStore(ctx context.Context) (jobs.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := a.openJobs(ctx, a.cfg.JobsConfig())
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

func (a *app) documentStager(ctx context.Context) (staging.Stager, error) {
	if a.stager != nil {
		return a.stager, nil
	}
	st, err := a.openStager(ctx, a.cfg.StagingConfig())
	if err != nil {
		return nil, err
	}
	a.stager = st
	return st, nil
}

func (a *app) tracker(ctx context.Context, cmd *cobra.Command) (*jobs.Tracker, error) {
	api, err := a.textract(ctx, cmd)
	if err != nil {
		return nil, err
	}
	store, err := a.jobStore(ctx)
	if err != nil {
		return nil, err
	}
	return jobs.NewTracker(api, store, a.now), nil
}

// logMetrics reports what the configured recorder collected at debug level.
func (a *app) logMetrics() {
	if a.logger == nil {
		return
	}
	if a.expvar != nil {
		snap := a.expvar.Snapshot()
		a.logger.Debug("textract metrics", "durations_ms", snap.DurationsMS, "results", snap.Results)
	}
	if a.registry != nil {
		families, err := a.registry.Gather()
		if err != nil {
			a.logger.Warn("gather metrics", "error", err)
			return
		}
		for _, mf := range families {
			a.logger.Debug("textract metrics", "name", mf.GetName(), "series", len(mf.GetMetric()))
		}
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	return wire.Write(cmd.OutOrStdout(), v)
}
