package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/darccyy/reddit-video/internal/config"
	"github.com/darccyy/reddit-video/internal/ports"
	"github.com/darccyy/reddit-video/internal/ports/adapters/ffmpeg"
	"github.com/darccyy/reddit-video/internal/ports/adapters/reddit"
	"github.com/darccyy/reddit-video/internal/ports/adapters/responsivevoice"
	"github.com/darccyy/reddit-video/internal/types"
	"github.com/darccyy/reddit-video/internal/usecase"
)

// ManifestFile is written to the scratch directory after a successful run.
const ManifestFile = "timeline.json"

type Config struct {
	// Project is the parsed config.toml.
	Project config.Config
	Logf    func(format string, args ...any)

	// ScratchDir is wiped at the start of every run.
	// If empty, defaults to $TMPDIR/reddit-video.
	ScratchDir string

	FFmpegPath string

	RedditUserAgent string
	RedditBaseURL   string

	VoiceKey          string
	VoiceBaseURL      string
	VoiceAllowedHosts []string
}

func (c Config) Validate() error {
	if err := c.Project.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(c.Project.Assets.Background); err != nil {
		return fmt.Errorf("stat background: %w", err)
	}
	if c.FFmpegPath == "" {
		return errors.New("ffmpeg path is empty")
	}
	return responsivevoice.ValidateBaseURL(c.VoiceBaseURL, c.VoiceAllowedHosts)
}

// DefaultScratchDir is shared by every run, so only one instance may run
// at a time.
func DefaultScratchDir() string {
	return filepath.Join(os.TempDir(), "reddit-video")
}

func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	// adapters
	source, err := reddit.New(cfg.RedditUserAgent, cfg.RedditBaseURL, logf)
	if err != nil {
		return err
	}
	voice := responsivevoice.New(cfg.VoiceKey, cfg.VoiceBaseURL)
	video := ffmpeg.New(cfg.FFmpegPath, logf)

	uc := usecase.New(usecase.Deps{
		Content: source,
		Voice:   voice,
		Video:   video,
	})

	scratch := cfg.ScratchDir
	if scratch == "" {
		scratch = DefaultScratchDir()
	}
	logf("preparing workspace")
	if err := prepareScratch(scratch); err != nil {
		return err
	}
	logf("scratch: %s", scratch)

	p := cfg.Project
	res, err := uc.Run(ctx, usecase.Input{
		Criteria:   p.Criteria(),
		Voice:      p.VoiceSettings(),
		Background: p.Assets.Background,
		Watermark:  p.WatermarkText(),
		OutPath:    p.Out.Name,
		Overwrite:  p.Out.Overwrite,
		ScratchDir: scratch,
		Logf:       logf,
	})
	if err != nil {
		return err
	}

	manifestPath, err := writeManifest(scratch, res.Manifest)
	if err != nil {
		return err
	}
	logf("manifest written (%d fragments): %s", len(res.Manifest.Fragments), manifestPath)
	logf("done: %s", p.Out.Name)
	return nil
}

// prepareScratch clears whatever a previous run left in dir and recreates
// it with an empty audio directory.
func prepareScratch(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: clear scratch: %w", types.ErrFilesystem, err)
	}
	if err := os.MkdirAll(filepath.Join(dir, usecase.AudioDir), 0o755); err != nil {
		return fmt.Errorf("%w: create scratch: %w", types.ErrFilesystem, err)
	}
	return nil
}

func writeManifest(dir string, m types.Manifest) (string, error) {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrFilesystem, err)
	}
	return path, nil
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.ContentSource = (*reddit.Adapter)(nil)
var _ ports.Synthesizer = (*responsivevoice.Adapter)(nil)
