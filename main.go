package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    Config
	logger *zap.Logger

	addr    string
	outPath string
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "clonkbot.eth portfolio page",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page and stream its animations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServer(ctx)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the fully revealed page as a standalone HTML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		var w io.Writer = cmd.OutOrStdout()
		if outPath != "" && outPath != "-" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			w = f
		}
		return renderStatic(w)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the page data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := defaultPage().Validate(); err != nil {
			return fmt.Errorf("invalid page data:\n%w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "page data ok")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default :$PORT)")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(serveCmd, renderCmd, validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func renderStatic(w io.Writer) error {
	page := defaultPage()
	if err := page.Validate(); err != nil {
		return fmt.Errorf("invalid page data: %w", err)
	}
	split, err := splitterFor(cfg.RevealSplit)
	if err != nil {
		return err
	}
	return renderPage(page, finalState(page, split), renderOptions{InlineCSS: true}).Render(w)
}

func runServer(ctx context.Context) error {
	page := defaultPage()
	if err := page.Validate(); err != nil {
		return fmt.Errorf("invalid page data: %w", err)
	}
	split, err := splitterFor(cfg.RevealSplit)
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	s := &server{cfg: cfg, page: page, split: split, clock: clock, logger: logger}
	if cfg.DatabasePath != "" {
		s.store, err = OpenStore(cfg.DatabasePath, clock)
		if err != nil {
			return err
		}
		defer s.store.Close()
		logger.Info("privacy: visitor tracking enabled with hashed IP addresses", zap.String("db", cfg.DatabasePath))

		removed, err := s.store.CleanupVisitors(ctx, cfg.RetentionMonths)
		if err != nil {
			logger.Warn("visitor cleanup failed", zap.Error(err))
		} else if removed > 0 {
			logger.Info("privacy cleanup", zap.Int64("removed", removed))
		}
	}
	if err := s.initAdminToken(); err != nil {
		return err
	}

	if addr == "" {
		addr = ":" + cfg.Port
	}
	// Request contexts end with ctx, which closes open timeline streams.
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.routes(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.tracking.Wait()
	return nil
}
