package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PoluyanbIch/motivetype/internal/config"
	"github.com/PoluyanbIch/motivetype/internal/logging"
	"github.com/PoluyanbIch/motivetype/internal/render"
	"github.com/PoluyanbIch/motivetype/internal/service"
	"github.com/PoluyanbIch/motivetype/internal/telegram"
	"github.com/PoluyanbIch/motivetype/internal/tui"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "motivetype",
		Short:   "Find your art viewing motivation type",
		Long:    "motivetype asks three questions about how you look at art and tells you which of four motivation types fits you best.\n\nRun without arguments to start the interactive questionnaire.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context())
		},
	}
	root.AddCommand(newBotCmd(), newAnswerCmd(), newProfileCmd())
	return root
}

func newBotCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Serve the questionnaire as a Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			return runBot(cmd.Context(), config.Load(files...))
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", "", "Read settings from this file instead of ./.env")
	return cmd
}

func runBot(ctx context.Context, cfg *config.Config) error {
	if err := cfg.ValidateBot(); err != nil {
		return codeError(3, "%s", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return codeError(3, "%s", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.EnvFileLoaded {
		logger.Debug("No .env file found, using environment variables")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.BotDebug, service.NewSessionStore(), logger)
	if err != nil {
		return err
	}

	logger.Info("Bot is starting", zap.Duration("poll_timeout", cfg.PollTimeout))
	bot.Start(ctx, cfg.PollTimeout)
	logger.Info("Bot stopped")
	return nil
}

func newAnswerCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "answer <answer> <answer> <answer>",
		Short: "Answer the questionnaire non-interactively",
		Long: "Each answer is a 1-based option number for its question or a category key " +
			"(selfReflector, aestheticImmerser, creativeSeeker, culturalIdentity).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnswer(cmd.OutOrStdout(), args, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, md, json or yaml")
	return cmd
}

func runAnswer(w io.Writer, args []string, format string) error {
	r, err := render.NewRenderer(format)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	categories, err := service.ParseAnswers(args, service.DefaultQuestions())
	if err != nil {
		return codeError(2, "%s", err)
	}
	e, err := service.Play(categories)
	if err != nil {
		return codeError(2, "%s", err)
	}

	out, err := r.Render(render.NewReport(e.Outcome()))
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func newProfileCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "profile <category>",
		Short: "Print the description of a motivation type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd.OutOrStdout(), args[0], format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, md, json or yaml")
	return cmd
}

func runProfile(w io.Writer, key, format string) error {
	r, err := render.NewRenderer(format)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}
	c, err := service.ParseCategory(key)
	if err != nil {
		return codeError(2, "%s", err)
	}

	out, err := r.Render(render.NewReport(service.Outcome{
		Winner:  c,
		Profile: service.LookupProfile(c),
	}))
	if err != nil {
		return fmt.Errorf("rendering profile: %w", err)
	}
	_, err = w.Write(out)
	return err
}
