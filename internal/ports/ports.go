package ports

import (
	"context"

	"github.com/darccyy/reddit-video/internal/types"
)

type ContentSource interface {
	FetchPosts(ctx context.Context, c types.Criteria) ([]types.Post, error)
	FetchComments(ctx context.Context, c types.Criteria, parent types.Post) ([]types.Comment, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string, v types.VoiceSettings) (types.VoiceClip, error)
}

type VideoTool interface {
	ConcatAudio(ctx context.Context, listFile, outAudio string) error
	MuxAudio(ctx context.Context, background, audio, outVideo string) error
	RenderOverlays(ctx context.Context, inVideo, filterScript, trimTo, outVideo string, overwrite bool) error
}
