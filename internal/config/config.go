package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/darccyy/reddit-video/internal/types"
)

// Filename is read from the working directory.
const Filename = "config.toml"

type Config struct {
	Assets  Assets  `toml:"assets"`
	Out     Out     `toml:"out"`
	Content Content `toml:"content"`
	Voice   Voice   `toml:"voice"`
}

type Assets struct {
	Background string  `toml:"background"`
	Watermark  *string `toml:"watermark"`
}

type Out struct {
	Name      string `toml:"name"`
	Overwrite bool   `toml:"overwrite"`
}

type Content struct {
	Subreddit string `toml:"subreddit"`
	Sort      string `toml:"sort"`
	Time      string `toml:"time"`
	Comments  bool   `toml:"comments"`
	Limit     int    `toml:"limit"`
	Post      int    `toml:"post"`
}

type Voice struct {
	Language string  `toml:"language"`
	Gender   string  `toml:"gender"`
	Pitch    float64 `toml:"pitch"`
	Rate     float64 `toml:"rate"`
}

// Default is the configuration an empty document parses to. Every
// recognized key has its default here.
func Default() Config {
	return Config{
		Assets: Assets{
			Background: "background.mp4",
		},
		Out: Out{
			Name: "video.mp4",
		},
		Content: Content{
			Subreddit: "askreddit",
			Sort:      "top",
			Time:      "month",
			Comments:  true,
			Limit:     5,
		},
		Voice: Voice{
			Language: "en-GB",
			Gender:   "male",
			Pitch:    0.5,
			Rate:     0.5,
		},
	}
}

var (
	sorts   = []string{"hot", "new", "top", "rising", "controversial"}
	times   = []string{"hour", "day", "week", "month", "year", "all"}
	genders = []string{"male", "female"}
)

// Parse decodes a TOML document over the defaults. Keys that are not
// recognized fail the parse rather than being ignored.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", types.ErrConfigParse, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys: %s", types.ErrConfigParse, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %w", types.ErrFilesystem, path, err)
	}
	return Parse(b)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Assets.Background) == "" {
		return errors.New("assets.background is empty")
	}
	if strings.TrimSpace(c.Out.Name) == "" {
		return errors.New("out.name is empty")
	}
	if strings.TrimSpace(c.Content.Subreddit) == "" {
		return errors.New("content.subreddit is empty")
	}
	if !oneOf(c.Content.Sort, sorts) {
		return fmt.Errorf("content.sort must be one of %s, got %q", strings.Join(sorts, ", "), c.Content.Sort)
	}
	if !oneOf(c.Content.Time, times) {
		return fmt.Errorf("content.time must be one of %s, got %q", strings.Join(times, ", "), c.Content.Time)
	}
	if c.Content.Limit <= 0 {
		return fmt.Errorf("content.limit must be > 0")
	}
	if c.Content.Post < 0 {
		return fmt.Errorf("content.post must be >= 0")
	}
	if !oneOf(c.Voice.Gender, genders) {
		return fmt.Errorf("voice.gender must be one of %s, got %q", strings.Join(genders, ", "), c.Voice.Gender)
	}
	if c.Voice.Pitch < 0 || c.Voice.Pitch > 1 {
		return fmt.Errorf("voice.pitch must be in [0,1], got %v", c.Voice.Pitch)
	}
	if c.Voice.Rate < 0 || c.Voice.Rate > 1 {
		return fmt.Errorf("voice.rate must be in [0,1], got %v", c.Voice.Rate)
	}
	return nil
}

func (c Config) Criteria() types.Criteria {
	return types.Criteria{
		Subreddit: c.Content.Subreddit,
		Sort:      c.Content.Sort,
		Time:      c.Content.Time,
		Comments:  c.Content.Comments,
		Limit:     c.Content.Limit,
		Post:      c.Content.Post,
	}
}

func (c Config) VoiceSettings() types.VoiceSettings {
	return types.VoiceSettings{
		Language: c.Voice.Language,
		Gender:   c.Voice.Gender,
		Pitch:    c.Voice.Pitch,
		Rate:     c.Voice.Rate,
	}
}

// WatermarkText is empty when no watermark is configured.
func (c Config) WatermarkText() string {
	if c.Assets.Watermark == nil {
		return ""
	}
	return *c.Assets.Watermark
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
