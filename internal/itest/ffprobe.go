//go:build integration

package itest

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

func ffprobe(path string, args ...string) (string, error) {
	cmd := exec.Command("ffprobe", append(append([]string{"-v", "error"}, args...), path)...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffprobe: %w\n%s", err, string(b))
	}
	return strings.TrimSpace(string(b)), nil
}

func probeDuration(path string) (time.Duration, error) {
	s, err := ffprobe(path, "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1")
	if err != nil {
		return 0, err
	}
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

// probeStreams lists codec types in stream order, comma separated.
func probeStreams(path string) (string, error) {
	s, err := ffprobe(path, "-show_entries", "stream=codec_type", "-of", "csv=p=0")
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(s), ","), nil
}
