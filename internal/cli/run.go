package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/darccyy/reddit-video/internal/config"
	"github.com/darccyy/reddit-video/internal/pipeline"
	"github.com/darccyy/reddit-video/internal/ports/adapters/reddit"
	"github.com/darccyy/reddit-video/internal/ports/adapters/responsivevoice"
)

func run(cmd *cobra.Command) error {
	project, err := config.Load(config.Filename)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(zapcore.Lock(os.Stdout))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := pipeline.Config{
		Project: project,
		Logf:    logger.Sugar().Infof,

		FFmpegPath: getenvDefault("FFMPEG_PATH", "ffmpeg"),

		RedditUserAgent: getenvDefault("REDDIT_USER_AGENT", reddit.DefaultUserAgent),
		RedditBaseURL:   os.Getenv("REDDIT_BASE_URL"),

		VoiceKey:          getenvDefault("RESPONSIVEVOICE_KEY", responsivevoice.DefaultKey),
		VoiceBaseURL:      os.Getenv("RESPONSIVEVOICE_BASE_URL"),
		VoiceAllowedHosts: splitList(os.Getenv("RESPONSIVEVOICE_ALLOWED_HOSTS")),
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(ctx, cfg)
}

// newLogger writes plain progress lines to out. No ANSI colour, since out
// is often a pipe or a CI log.
func newLogger(out zapcore.WriteSyncer) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.CallerKey = zapcore.OmitKey
	ec.StacktraceKey = zapcore.OmitKey
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(ec), out, zapcore.DebugLevel))
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
