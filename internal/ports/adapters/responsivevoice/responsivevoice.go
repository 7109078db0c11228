package responsivevoice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/darccyy/reddit-video/internal/domain/audio"
	"github.com/darccyy/reddit-video/internal/types"
)

// DefaultKey is the public key the ResponsiveVoice web widget ships with.
const DefaultKey = "kvfbSITh"

const requestTimeout = 60 * time.Second

type Adapter struct {
	key     string
	baseURL string
	client  *http.Client
}

func New(key, baseURL string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{key: key, baseURL: normalizeBaseURL(baseURL), client: &http.Client{Timeout: 2 * time.Minute}}
}

// Synthesize fetches one MP3 clip for text and measures it. A body that is
// not MP3 is reported as a decode error so the caller may retry it.
func (a *Adapter) Synthesize(ctx context.Context, text string, v types.VoiceSettings) (types.VoiceClip, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, a.synthesizeURL(text, v), nil)
	if err != nil {
		return types.VoiceClip{}, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return types.VoiceClip{}, fmt.Errorf("%w: responsivevoice timeout after %s", types.ErrTransport, requestTimeout)
		}
		return types.VoiceClip{}, fmt.Errorf("%w: %s", types.ErrTransport, redactSecrets(err.Error(), a.key))
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.VoiceClip{}, fmt.Errorf("%w: read responsivevoice body: %w", types.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.VoiceClip{}, fmt.Errorf("%w: responsivevoice status %d: %s", types.ErrTransport, resp.StatusCode, truncate(redactSecrets(string(b), a.key), 400))
	}

	d, err := audio.Duration(b)
	if err != nil {
		return types.VoiceClip{}, fmt.Errorf("responsivevoice audio: %w", err)
	}
	return types.VoiceClip{Text: text, Audio: b, Duration: d}, nil
}

func (a *Adapter) synthesizeURL(text string, v types.VoiceSettings) string {
	q := url.Values{}
	q.Set("text", text)
	q.Set("lang", v.Language)
	q.Set("engine", "g1")
	q.Set("name", "")
	q.Set("pitch", strconv.FormatFloat(v.Pitch, 'f', -1, 64))
	q.Set("rate", strconv.FormatFloat(v.Rate, 'f', -1, 64))
	q.Set("volume", "1")
	q.Set("key", a.key)
	q.Set("gender", v.Gender)
	return a.baseURL + "/v1/text:synthesize?" + q.Encode()
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func redactSecrets(s, key string) string {
	if key == "" {
		return s
	}
	return strings.ReplaceAll(s, key, "[REDACTED]")
}
