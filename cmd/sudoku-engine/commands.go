package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-engine/internal/adapters/http"
	"svw.info/sudoku-engine/internal/codec"
	"svw.info/sudoku-engine/internal/config"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/engine"
	"svw.info/sudoku-engine/internal/infrastructure/storage"
	"svw.info/sudoku-engine/internal/metrics"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

var (
	flagConfig     string
	flagLogLevel   string
	flagNodeBudget int
	flagWorkers    int
	flagNoPointing bool
	flagFile       string
	flagLine       bool
	flagAddr       string
	flagStorage    string
	flagPersist    string

	rootCmd = &cobra.Command{
		Use:           "sudoku-engine",
		Short:         "Solve, check, and serve classic 9×9 Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle and print its completion",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}

	checkCmd = &cobra.Command{
		Use:   "check [puzzle]",
		Short: "Classify a puzzle without printing the solution",
		Long: "Check reports whether the puzzle is uniquely solvable, unsolvable,\n" +
			"ill-posed (multiple solutions), or malformed.",
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to YAML config file")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error")
	pf.IntVar(&flagNodeBudget, "node-budget", -1, "max search nodes per solve, 0 = unbounded")
	pf.IntVar(&flagWorkers, "workers", -1, "parallel workers for the top branching level")
	pf.BoolVar(&flagNoPointing, "no-pointing", false, "disable locked-candidates elimination")

	for _, c := range []*cobra.Command{solveCmd, checkCmd} {
		c.Flags().StringVar(&flagFile, "file", "", "read the puzzle from a file instead of the argument")
	}
	solveCmd.Flags().BoolVar(&flagLine, "line", false, "print the solution as an 81-character line")

	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address")
	serveCmd.Flags().StringVar(&flagStorage, "storage", "", "storage backend: fs|badger")
	serveCmd.Flags().StringVar(&flagPersist, "persist-path", "", "storage directory")

	rootCmd.AddCommand(solveCmd, checkCmd, serveCmd)
}

// loadConfig merges the config file with flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagNodeBudget >= 0 {
		cfg.Engine.NodeBudget = flagNodeBudget
	}
	if flagWorkers >= 0 {
		cfg.Engine.Workers = flagWorkers
	}
	if flagNoPointing {
		cfg.Engine.Pointing = false
	}
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	if flagStorage != "" {
		cfg.Storage.Backend = flagStorage
	}
	if flagPersist != "" {
		cfg.Storage.Path = flagPersist
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func newEngine(cfg config.Config) *engine.Engine {
	return engine.New(engine.Options{
		NodeBudget: cfg.Engine.NodeBudget,
		Workers:    cfg.Engine.Workers,
		Pointing:   cfg.Engine.Pointing,
	})
}

// readPuzzle takes the puzzle from the argument, --file, or stdin.
func readPuzzle(args []string) (*domain.Board, error) {
	var text string
	switch {
	case flagFile != "":
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return nil, err
		}
		text = string(data)
	case len(args) == 1:
		text = args[0]
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		text = string(data)
	}
	return codec.Parse(text)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	b, err := readPuzzle(args)
	if err != nil {
		return err
	}
	out, st, err := newEngine(cfg).Solve(cmd.Context(), b)
	if err != nil {
		return err
	}
	printVerdict(cmd, out, st)
	if out.Solution != nil {
		printBoard(cmd, out.Solution)
	}
	if out.Second != nil {
		cmd.Println("second completion:")
		printBoard(cmd, out.Second)
	}
	if out.Verdict != domain.VerdictSolved {
		return fmt.Errorf("puzzle is %s", out.Verdict)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	b, err := readPuzzle(args)
	if err != nil {
		return err
	}
	out, st, err := newEngine(cfg).Solve(cmd.Context(), b)
	if err != nil {
		return err
	}
	printVerdict(cmd, out, st)
	for _, cell := range out.Conflicts {
		cmd.Printf("conflict at row %d, col %d\n", cell.Row+1, cell.Col+1)
	}
	if out.Verdict != domain.VerdictSolved {
		return fmt.Errorf("puzzle is %s", out.Verdict)
	}
	return nil
}

func printVerdict(cmd *cobra.Command, out *domain.Outcome, st ports.Stats) {
	cmd.Printf("verdict: %s (nodes=%d dur=%v)\n", out.Verdict, st.Nodes, st.Duration.Round(time.Microsecond))
	if out.Reason != "" {
		cmd.Printf("reason: %s\n", out.Reason)
	}
}

func printBoard(cmd *cobra.Command, b *domain.Board) {
	if flagLine {
		cmd.Println(codec.FormatLine(b))
	} else {
		cmd.Print(codec.FormatGrid(b))
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)

	var store ports.Storage
	switch cfg.Storage.Backend {
	case "badger":
		db, err := storage.OpenBadger(cfg.Storage.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		store = db
	default:
		store = storage.NewFS(cfg.Storage.Path)
	}

	m := metrics.New()
	uc := usecase.NewService(newEngine(cfg), validator.New(), store, m)
	router := httpadapter.New(uc, m).Router(logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		"addr", cfg.Addr,
		"storage", cfg.Storage.Backend,
		"workers", cfg.Engine.Workers,
		"nodeBudget", cfg.Engine.NodeBudget,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
