// Package sound plays short tones for game events. It listens to the game
// and stays silent until the speaker has been initialised.
package sound

import (
	"math"
	"time"

	"snake-rules/game/manager"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatDuration  = 60 * time.Millisecond
	eatBaseFreq  = 660.0
	eatFreqStep  = 40.0
	eatMaxSteps  = 12
	overDuration = 180 * time.Millisecond
	volume       = 0.4
)

// Cues implements game.Listener
type Cues struct {
	rate  beep.SampleRate
	ready bool
}

func New() *Cues {
	return &Cues{rate: sampleRate}
}

// Init opens the speaker. Without it the cues are no-ops.
func (c *Cues) Init() error {
	if err := speaker.Init(c.rate, c.rate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	c.ready = true
	return nil
}

func (c *Cues) Close() {
	if c.ready {
		speaker.Clear()
		c.ready = false
	}
}

// AppleEaten plays a short blip that climbs with the score
func (c *Cues) AppleEaten(score int) {
	c.play(c.eatCue(score))
}

// GameOver plays a falling two-note tone
func (c *Cues) GameOver(rec manager.GameRecord) {
	c.play(c.overCue())
}

func (c *Cues) play(s beep.Streamer) {
	if !c.ready || s == nil {
		return
	}
	speaker.Play(s)
}

func (c *Cues) eatCue(score int) beep.Streamer {
	steps := score
	if steps > eatMaxSteps {
		steps = eatMaxSteps
	}
	return c.tone(eatBaseFreq+float64(steps)*eatFreqStep, eatDuration)
}

func (c *Cues) overCue() beep.Streamer {
	high := c.tone(330, overDuration)
	low := c.tone(220, 2*overDuration)
	if high == nil || low == nil {
		return nil
	}
	return beep.Seq(high, low)
}

func (c *Cues) tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(c.rate, freq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(c.rate.N(d), sine),
		Base:     2,
		Volume:   math.Log2(volume),
	}
}
