package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/darccyy/reddit-video/internal/domain/captions"
	"github.com/darccyy/reddit-video/internal/ports"
	"github.com/darccyy/reddit-video/internal/types"
)

type Deps struct {
	Content ports.ContentSource
	Voice   ports.Synthesizer
	Video   ports.VideoTool
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Criteria types.Criteria
	Voice    types.VoiceSettings

	Background string
	Watermark  string
	OutPath    string
	Overwrite  bool

	// ScratchDir must exist and contain an empty audio/ directory.
	ScratchDir string
	Logf       func(format string, args ...any)
}

type Result struct {
	Manifest types.Manifest
}

// Scratch artifact names, relative to Input.ScratchDir.
const (
	AudioDir      = "audio"
	VoicesList    = "voices.txt"
	NarrationFile = "audio.mp3"
	MuxedVideo    = "video.mp4"
	FilterFile    = "filter.txt"
)

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	texts, err := u.collectFragments(ctx, in.Criteria, logf)
	if err != nil {
		return Result{}, err
	}
	if len(texts) == 0 {
		return Result{}, errors.New("no text to narrate")
	}
	logf("narrating %d fragments", len(texts))

	clips, err := CreateVoices(ctx, u.d.Voice, texts, in.Voice, logf)
	if err != nil {
		return Result{}, err
	}

	files, err := saveVoices(in.ScratchDir, clips)
	if err != nil {
		return Result{}, err
	}

	logf("concatenating audio...")
	narration := filepath.Join(in.ScratchDir, NarrationFile)
	if err := u.d.Video.ConcatAudio(ctx, filepath.Join(in.ScratchDir, VoicesList), narration); err != nil {
		return Result{}, err
	}

	logf("applying audio to background...")
	muxed := filepath.Join(in.ScratchDir, MuxedVideo)
	if err := u.d.Video.MuxAudio(ctx, in.Background, narration, muxed); err != nil {
		return Result{}, err
	}

	tl := captions.BuildTimeline(clips)
	script := captions.FilterScript(captions.Directives(tl, in.Watermark))
	filterPath := filepath.Join(in.ScratchDir, FilterFile)
	if err := writeFile(filterPath, []byte(script)); err != nil {
		return Result{}, err
	}

	trimTo := tl.TrimTimestamp()
	logf("rendering %s (%s)...", in.OutPath, trimTo)
	if err := u.d.Video.RenderOverlays(ctx, muxed, filterPath, trimTo, in.OutPath, in.Overwrite); err != nil {
		return Result{}, err
	}

	m := types.Manifest{
		Subreddit: in.Criteria.Subreddit,
		Listing:   in.Criteria.Describe(),
		Output:    in.OutPath,
		TotalSec:  tl.Total.Seconds(),
		TrimTo:    trimTo,
	}
	for i, e := range tl.Entries {
		m.Fragments = append(m.Fragments, types.ManifestEntry{
			ID:       strconv.Itoa(i),
			StartSec: e.Start.Seconds(),
			EndSec:   e.End.Seconds(),
			Text:     e.Clip.Text,
			File:     files[i],
		})
	}
	return Result{Manifest: m}, nil
}

// saveVoices writes audio/{i}.mp3 per clip and the concat list that plays
// them in order. It returns the list entries.
func saveVoices(dir string, clips []types.VoiceClip) ([]string, error) {
	files := make([]string, 0, len(clips))
	lines := make([]string, 0, len(clips))
	for i, c := range clips {
		rel := filepath.ToSlash(filepath.Join(AudioDir, strconv.Itoa(i)+".mp3"))
		if err := writeFile(filepath.Join(dir, rel), c.Audio); err != nil {
			return nil, err
		}
		files = append(files, rel)
		lines = append(lines, fmt.Sprintf("file '%s'", rel))
	}
	if err := writeFile(filepath.Join(dir, VoicesList), []byte(strings.Join(lines, "\n"))); err != nil {
		return nil, err
	}
	return files, nil
}

func writeFile(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: %w", types.ErrFilesystem, err)
	}
	return nil
}
