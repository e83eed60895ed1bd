package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mindflow/internal/auth"
	"github.com/abhisek/mindflow/internal/config"
	"github.com/abhisek/mindflow/internal/llm"
	"github.com/abhisek/mindflow/internal/logger"
	"github.com/abhisek/mindflow/internal/plangen"
	"github.com/abhisek/mindflow/internal/planner"
	"github.com/abhisek/mindflow/internal/server"
	"github.com/abhisek/mindflow/internal/store"
	"github.com/abhisek/mindflow/internal/study"
	"github.com/abhisek/mindflow/internal/subjects"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

// runServer opens the store, builds dependencies, and serves HTTP.
func runServer(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.DB.DSN = dsn
	}

	log, err := logger.New(cfg.Development)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	st, err := store.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	estimator := subjects.NewEstimator()
	builder := planner.NewBuilder(estimator, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	algorithmic := plangen.NewAlgorithmic(builder)

	var (
		generator plangen.Generator = algorithmic
		adapter                     = plangen.NewAdapter(nil)
	)
	if cfg.HasLLM() {
		provider, err := llm.NewProvider(ctx, cfg.LLM, st)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Plans will use the built-in generator.")
		} else {
			generator = plangen.NewWithFallback(plangen.NewLLM(provider), algorithmic, log)
			adapter = plangen.NewAdapter(provider)
			log.Info("llm provider ready", zap.String("model", provider.ModelID()))
		}
	}

	authSvc := auth.NewService(st, nil)
	studySvc := study.NewService(st, generator, adapter, estimator, log, nil)

	srv := server.New(server.Config{
		Addr:          cfg.Addr,
		SecureCookies: cfg.SecureCookies,
	}, authSvc, studySvc, log)

	return srv.Run()
}
