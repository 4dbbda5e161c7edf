package envelope

import (
	"fmt"
	"math"
)

// Stage identifies the current ADSR segment.
type Stage int

const (
	// StageIdle is the state before the first trigger.
	StageIdle Stage = iota
	// StageAttack ramps the level toward 1.
	StageAttack
	// StageDecay ramps the level toward the sustain level.
	StageDecay
	// StageSustain holds the sustain level until NoteOff.
	StageSustain
	// StageRelease ramps the level toward 0.
	StageRelease
	// StageOff is the state after a completed release.
	StageOff
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageSustain:
		return "sustain"
	case StageRelease:
		return "release"
	case StageOff:
		return "off"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// ADSR is a linear-segment envelope generator timed in whole samples.
// Each segment moves the level monotonically toward its target (1 in
// attack, the sustain level in decay, 0 in release) over the configured
// duration. A zero duration is valid and transitions instantaneously.
type ADSR struct {
	sampleRate float64

	attackSamples  int
	decaySamples   int
	releaseSamples int
	sustainLevel   float64

	stage       Stage
	level       float64
	startLevel  float64
	samplesInto int
}

// New creates an ADSR envelope. Durations are in seconds, sustain is a
// level in [0, 1].
func New(sampleRate, attackSec, decaySec, sustainLevel, releaseSec float64) (*ADSR, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("envelope sample rate must be > 0: %f", sampleRate)
	}
	if attackSec < 0 || decaySec < 0 || releaseSec < 0 {
		return nil, fmt.Errorf("envelope durations must be >= 0: attack=%f decay=%f release=%f",
			attackSec, decaySec, releaseSec)
	}
	if sustainLevel < 0 || sustainLevel > 1 || math.IsNaN(sustainLevel) {
		return nil, fmt.Errorf("envelope sustain level must be in [0, 1]: %f", sustainLevel)
	}

	return &ADSR{
		sampleRate:     sampleRate,
		attackSamples:  durationSamples(attackSec, sampleRate),
		decaySamples:   durationSamples(decaySec, sampleRate),
		releaseSamples: durationSamples(releaseSec, sampleRate),
		sustainLevel:   sustainLevel,
		stage:          StageIdle,
	}, nil
}

func durationSamples(seconds, sampleRate float64) int {
	return int(math.Round(seconds * sampleRate))
}

// Stage returns the current stage.
func (e *ADSR) Stage() Stage { return e.stage }

// Level returns the most recently produced level.
func (e *ADSR) Level() float64 { return e.level }

// NoteOn (re)starts the attack segment. When triggered from Idle or Off
// the ramp starts at 0; a retrigger from any active stage ramps from the
// current level so the transition is click-free.
func (e *ADSR) NoteOn() {
	if e.stage == StageIdle || e.stage == StageOff {
		e.level = 0
	}
	e.enterStage(StageAttack)
}

// NoteOff starts the release segment from the current level. It has no
// effect before the first NoteOn or after the envelope has gone off.
func (e *ADSR) NoteOff() {
	if e.stage == StageIdle || e.stage == StageOff {
		return
	}
	e.enterStage(StageRelease)
}

// Reset returns the envelope to Idle at level 0.
func (e *ADSR) Reset() {
	e.stage = StageIdle
	e.level = 0
	e.startLevel = 0
	e.samplesInto = 0
}

func (e *ADSR) enterStage(s Stage) {
	e.stage = s
	e.startLevel = e.level
	e.samplesInto = 0
	e.skipZeroStages()
}

// skipZeroStages completes zero-length segments immediately so a zero
// duration behaves as an instantaneous transition.
func (e *ADSR) skipZeroStages() {
	for {
		switch e.stage {
		case StageAttack:
			if e.attackSamples > 0 {
				return
			}
		case StageDecay:
			if e.decaySamples > 0 {
				return
			}
		case StageRelease:
			if e.releaseSamples > 0 {
				return
			}
		default:
			return
		}

		e.completeStage()
	}
}

func (e *ADSR) completeStage() {
	switch e.stage {
	case StageAttack:
		e.level = 1
		e.stage = StageDecay
	case StageDecay:
		e.level = e.sustainLevel
		e.stage = StageSustain
	case StageRelease:
		e.level = 0
		e.stage = StageOff
	default:
		return
	}
	e.startLevel = e.level
	e.samplesInto = 0
}

// NextSample advances the envelope by one sample and returns the new level.
func (e *ADSR) NextSample() float64 {
	switch e.stage {
	case StageAttack:
		e.advance(1, e.attackSamples)
	case StageDecay:
		e.advance(e.sustainLevel, e.decaySamples)
	case StageSustain:
		e.level = e.sustainLevel
	case StageRelease:
		e.advance(0, e.releaseSamples)
	default:
		e.level = 0
	}

	return e.level
}

func (e *ADSR) advance(target float64, total int) {
	e.samplesInto++
	if e.samplesInto >= total {
		e.completeStage()
		e.skipZeroStages()
		return
	}

	frac := float64(e.samplesInto) / float64(total)
	e.level = e.startLevel + (target-e.startLevel)*frac
}

// ProcessBlock fills buf with consecutive envelope levels. Zero-alloc.
func (e *ADSR) ProcessBlock(buf []float64) {
	for i := range buf {
		buf[i] = e.NextSample()
	}
}
