package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepgraph/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP API",
	Long: `Starts the step-generation engine in server mode, exposing each
algorithm as POST /v1/run/{algorithm} plus /healthz and /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		levelText, _ := cmd.Flags().GetString("log-level")

		var level slog.Level
		if err := level.UnmarshalText([]byte(levelText)); err != nil {
			fmt.Printf("Invalid log level %q: %v\n", levelText, err)
			os.Exit(1)
		}
		log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: server.New(log).Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			log.Info("starting stepgraph server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			log.Error("server error", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			log.Info("starting shutdown", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("graceful shutdown failed", "error", err)
				_ = srv.Close()
			}
		}
	},
}

func init() {
	serveCmd.Flags().String("port", "8080", "Port to listen on")
	serveCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.AddCommand(serveCmd)
}
