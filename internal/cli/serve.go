package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yildizm/swdex/internal/config"
	"github.com/yildizm/swdex/internal/emoji"
	"github.com/yildizm/swdex/internal/logger"
	"github.com/yildizm/swdex/internal/navigation"
	"github.com/yildizm/swdex/internal/web"
)

const defaultShutdownTimeout = 10 * time.Second

var serveAddr string

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the list and detail views over HTTP",
		Long: `Start an HTTP server exposing /list and /detail/{name}. The people list
is fetched once at startup; /list answers 202 until it arrives.`,
		Example: `  # Listen on the configured address
  swdex serve

  # Listen on all interfaces
  swdex serve --addr :8080`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = serveAddr
	}

	closeLog, err := configureLogging(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Addr, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s Serving on http://%s\n", emoji.GetEmoji("server"), listener.Addr())
	return serve(ctx, cfg, listener)
}

// serve fetches once and answers requests on listener until ctx ends
func serve(ctx context.Context, cfg *config.Config, listener net.Listener) error {
	log := newLogger("serve")

	holder, err := newHolder(cfg)
	if err != nil {
		_ = listener.Close()
		return err
	}
	holder.Load(ctx)

	srv := web.New(holder, navigation.New(), newLogger("web"))
	httpServer := &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.InfoWithFields("listening", []logger.Field{
			logger.F("addr", listener.Addr().String()),
			logger.F("session", holder.ID()),
		})
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		timeout := cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		log.Info("shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
