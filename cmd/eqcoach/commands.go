package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/easeaico/eq-coach/internal/coach"
	"github.com/easeaico/eq-coach/internal/config"
	"github.com/easeaico/eq-coach/internal/emotion"
	"github.com/easeaico/eq-coach/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			logger, closer := setupLogger(cfg)
			defer closer.Close()

			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, err := newCoachService(ctx, cfg)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(
				server.WithFiber(server.NewFiber()),
				server.WithLogger(logger),
				server.WithConfig(cfg),
				server.WithSolver(svc),
			)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			srv.RegisterHandler()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Run()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				slog.Info("shutting down")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("failed to shut down: %w", err)
			}
			slog.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (overrides PORT)")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	var mode string
	var showTemplate bool

	cmd := &cobra.Command{
		Use:   "classify [text...]",
		Short: "Classify the tone of a message with the keyword scorer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if mode == "" {
				mode = cfg.KeywordMatch
			}
			matchMode, err := emotion.ParseMatchMode(mode)
			if err != nil {
				return err
			}

			classifier := emotion.NewClassifier(matchMode)
			text := strings.Join(args, " ")

			scores := make(map[string]int)
			for _, s := range classifier.Score(text) {
				scores[string(s.Category)] = s.Score
			}
			output := map[string]any{
				"category": classifier.Classify(text),
				"mode":     classifier.Mode(),
				"scores":   scores,
			}
			if showTemplate {
				output["output"] = classifier.Compose(text)
			}
			return printJSON(output)
		},
	}

	cmd.Flags().StringVar(&mode, "match", "", "Keyword match mode: substring or word (overrides KEYWORD_MATCH)")
	cmd.Flags().BoolVar(&showTemplate, "template", false, "Include the coaching template in the output")
	return cmd
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [text...]",
		Short: "Run the full coaching flow once and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			_, closer := setupLogger(cfg)
			defer closer.Close()

			if err := cfg.Validate(); err != nil {
				return err
			}

			svc, err := newCoachService(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			result := svc.Solve(cmd.Context(), strings.Join(args, " "))
			return printJSON(map[string]any{
				"output":   result.Output,
				"source":   result.Source,
				"category": result.Category,
			})
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate environment configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}

			var enabled, disabled []string
			for _, p := range cfg.Providers() {
				if p.Enabled() {
					enabled = append(enabled, p.Name)
				} else {
					disabled = append(disabled, fmt.Sprintf("%s (%s not set)", p.Name, p.KeyEnv))
				}
			}

			fmt.Println("Configuration OK")
			fmt.Printf("  port:             %s\n", cfg.Port)
			fmt.Printf("  keyword match:    %s\n", cfg.KeywordMatch)
			fmt.Printf("  provider timeout: %s\n", cfg.ProviderTimeout)
			fmt.Printf("  providers:        %s\n", joinOrNone(enabled))
			fmt.Printf("  skipped:          %s\n", joinOrNone(disabled))
			if len(enabled) == 0 {
				fmt.Println("\nNo provider credentials set; every answer will use local coaching.")
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(map[string]any{"version": version})
		},
	}
}

func newCoachService(ctx context.Context, cfg config.Config) (*coach.Service, error) {
	matchMode, err := emotion.ParseMatchMode(cfg.KeywordMatch)
	if err != nil {
		return nil, err
	}

	providers, err := coach.BuildProviders(ctx, cfg.Providers())
	if err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		slog.Warn("no provider credentials set, using local coaching only")
	}

	return coach.NewService(emotion.NewClassifier(matchMode), providers, cfg.ProviderTimeout, cfg.MaxTokens), nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func printJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
