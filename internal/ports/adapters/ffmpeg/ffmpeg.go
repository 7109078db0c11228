package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/darccyy/reddit-video/internal/types"
)

type Adapter struct {
	ffmpeg string
	logf   func(format string, args ...any)
}

func New(ffmpegPath string, logf func(format string, args ...any)) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Adapter{ffmpeg: ffmpegPath, logf: logf}
}

// ConcatAudio joins the clips listed in a concat demuxer file without
// re-encoding. Relative entries resolve against the list file's directory.
func (a *Adapter) ConcatAudio(ctx context.Context, listFile, outAudio string) error {
	return a.run(ctx, "concat audio", concatArgs(listFile, outAudio))
}

// MuxAudio swaps the background's audio track for the narration. Both
// streams are copied.
func (a *Adapter) MuxAudio(ctx context.Context, background, audio, outVideo string) error {
	return a.run(ctx, "mux audio", muxArgs(background, audio, outVideo))
}

// RenderOverlays burns the filter script into the video and cuts it at
// trimTo. Without overwrite an existing output fails the run.
func (a *Adapter) RenderOverlays(ctx context.Context, inVideo, filterScript, trimTo, outVideo string, overwrite bool) error {
	return a.run(ctx, "render overlays", renderArgs(inVideo, filterScript, trimTo, outVideo, overwrite))
}

func concatArgs(listFile, outAudio string) []string {
	return []string{
		"-y",
		"-f", "concat",
		"-i", listFile,
		"-c", "copy",
		outAudio,
	}
}

func muxArgs(background, audio, outVideo string) []string {
	return []string{
		"-y",
		"-i", background,
		"-i", audio,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c", "copy",
		outVideo,
	}
}

func renderArgs(inVideo, filterScript, trimTo, outVideo string, overwrite bool) []string {
	overwriteFlag := "-n"
	if overwrite {
		overwriteFlag = "-y"
	}
	return []string{
		overwriteFlag,
		"-i", inVideo,
		"-filter_complex_script", filterScript,
		"-ss", "0:00:00",
		"-to", trimTo,
		outVideo,
	}
}

func (a *Adapter) run(ctx context.Context, stage string, args []string) error {
	a.logf("%s %s", a.ffmpeg, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: ffmpeg %s: %w\n%s", types.ErrExternalTool, stage, err, string(b))
	}
	return nil
}
