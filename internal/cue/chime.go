package cue

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Chime plays a short WAV clip on the default audio device. The clip is
// decoded and the speaker opened on the first Play.
type Chime struct {
	data []byte

	once   sync.Once
	buffer *beep.Buffer
	err    error

	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// NewChime returns a chime for the given WAV bytes.
func NewChime(data []byte) *Chime {
	return &Chime{
		data:        data,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// Play starts the clip and returns without waiting for it to finish.
func (chime *Chime) Play() error {
	if chime == nil || len(chime.data) == 0 {
		return ErrNoOutput
	}
	chime.once.Do(chime.load)
	if chime.err != nil {
		return chime.err
	}
	chime.play(chime.buffer.Streamer(0, chime.buffer.Len()))
	return nil
}

func (chime *Chime) load() {
	streamer, format, err := wav.Decode(bytes.NewReader(chime.data))
	if err != nil {
		chime.err = fmt.Errorf("decode chime: %w", err)
		return
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	if err := chime.initSpeaker(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		chime.err = fmt.Errorf("open speaker: %w", err)
		return
	}
	chime.buffer = buffer
}
