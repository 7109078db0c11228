package usecase

import (
	"context"
	"fmt"

	"github.com/forPelevin/gomoji"

	"github.com/darccyy/reddit-video/internal/ports"
	"github.com/darccyy/reddit-video/internal/types"
)

// MaxVoiceAttempts bounds synthesis of a single fragment. Attempts are not
// spaced out.
const MaxVoiceAttempts = 10

// CreateVoices synthesizes texts one at a time, in order. The first
// fragment that exhausts its attempts fails the whole batch.
func CreateVoices(ctx context.Context, s ports.Synthesizer, texts []string, v types.VoiceSettings, logf func(string, ...any)) ([]types.VoiceClip, error) {
	clips := make([]types.VoiceClip, 0, len(texts))
	for i, text := range texts {
		logf("creating voice %d/%d", i+1, len(texts))
		clip, err := CreateVoice(ctx, s, text, v, logf)
		if err != nil {
			return nil, fmt.Errorf("voice %d/%d: %w", i+1, len(texts), err)
		}
		clips = append(clips, clip)
	}
	return clips, nil
}

// CreateVoice strips emoji, which the TTS endpoint reads inconsistently,
// and retries synthesis up to MaxVoiceAttempts times. The returned clip
// keeps the original text for captioning.
func CreateVoice(ctx context.Context, s ports.Synthesizer, text string, v types.VoiceSettings, logf func(string, ...any)) (types.VoiceClip, error) {
	spoken := gomoji.RemoveEmojis(text)

	var lastErr error
	for attempt := 1; attempt <= MaxVoiceAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return types.VoiceClip{}, err
		}
		clip, err := s.Synthesize(ctx, spoken, v)
		if err == nil {
			clip.Text = text
			return clip, nil
		}
		lastErr = err
		logf("[warning] (attempt %d/%d): failed to create voice line - %v", attempt, MaxVoiceAttempts, err)
	}
	return types.VoiceClip{}, lastErr
}
