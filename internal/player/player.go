// Package player is the audio engine: it decodes one track at a time and
// plays it through the system speaker, media-element style.
//
// A loaded track starts paused at position 0. When a track reaches its end
// the engine reports itself paused; Play afterwards restarts from the top.
package player

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
)

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player plays a single track through the beep speaker.
// Methods must be called from one goroutine; the speaker goroutine only
// touches the ended flag.
type Player struct {
	state    State
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	volumeLevel float64
	ended       atomic.Bool
	generation  atomic.Uint64
}

// New creates a stopped player at full volume.
func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1,
	}
}

// Load opens and decodes the track at locator, replacing the current one.
// The new track is paused at position 0.
func (p *Player) Load(locator string) error {
	p.Stop()

	ext, err := extension(locator)
	if err != nil {
		return err
	}

	rc, err := open(locator)
	if err != nil {
		return err
	}

	streamer, format, err := decode(ext, rc)
	if err != nil {
		rc.Close()
		return fmt.Errorf("decode %s: %w", locator, err)
	}

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return err
		}
		speakerInitialized = true
	}

	p.streamer = streamer
	p.format = format

	// Resample if the track's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}

	p.state = Paused
	p.enqueue()
	return nil
}

// enqueue hands the current chain to the speaker, followed by an end marker.
func (p *Player) enqueue() {
	p.ended.Store(false)
	gen := p.generation.Add(1)
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		// Ignore markers of chains that were replaced in the meantime.
		if p.generation.Load() == gen {
			p.ended.Store(true)
		}
	})))
}

func decode(ext string, rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case extMP3:
		return mp3.Decode(rc)
	case extFLAC:
		if rs, ok := rc.(io.ReadSeeker); ok {
			if err := skipID3v2(rs); err != nil {
				return nil, beep.Format{}, err
			}
		}
		return flac.Decode(rc)
	case extWAV:
		return wav.Decode(rc)
	case extOGG:
		return vorbis.Decode(rc)
	}
	return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", ext)
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the stream.
// Some FLAC files have ID3v2 tags prepended, which the FLAC decoder doesn't handle.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n < len(header) {
		_, seekErr := r.Seek(0, io.SeekStart)
		return seekErr
	}

	if string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
