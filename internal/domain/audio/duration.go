package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tcolgate/mp3"

	"github.com/darccyy/reddit-video/internal/types"
)

// ErrInvalidMP3 is returned when a buffer holds no decodable MP3 frames or
// ends in the middle of one.
var ErrInvalidMP3 = errors.New("invalid mp3")

const headerLen = 4

// Duration sums the playback time of every frame in b. Only frame headers
// are read; the audio itself is never decoded. Fewer than headerLen bytes
// left after the last frame are ignored.
func Duration(b []byte) (time.Duration, error) {
	d := mp3.NewDecoder(bytes.NewReader(b))

	var (
		f       mp3.Frame
		skipped int
		total   time.Duration
		frames  int
		offset  int // end of the last complete frame
	)
	for {
		err := d.Decode(&f, &skipped)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) && frames > 0 && len(b)-offset < headerLen {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w: frame %d: %w", types.ErrDecode, ErrInvalidMP3, frames, err)
		}
		total += f.Duration()
		offset += skipped + f.Size()
		frames++
	}
	if frames == 0 {
		return 0, fmt.Errorf("%w: %w: no frames in %d bytes", types.ErrDecode, ErrInvalidMP3, len(b))
	}
	return total, nil
}
