// Package playback drives the timed word-flash and continuous-scroll
// reading exercises. The engine is an explicit state machine advanced by
// Tick(now) calls so the animation cadence can be simulated in tests: it is
// a frame-driven accumulator, not a fixed timer, and self-corrects for
// dropped frames.
package playback

import (
	"errors"
	"time"
)

// Mode selects how the engine advances through the exercise.
type Mode int

const (
	// ModeWords flashes one word (or word group) at a time.
	ModeWords Mode = iota
	// ModeScroll scrolls the full text continuously.
	ModeScroll
)

// State is the engine lifecycle state.
type State int

const (
	StateStopped State = iota
	StateRunning
	StatePaused
	StateCompleted
)

// Speed bounds per mode, in words per minute. Word-mode bounds can be
// overridden per category.
const (
	WordSpeedMin = 50
	WordSpeedMax = 920

	ScrollSpeedMin = 200
	ScrollSpeedMax = 1200
)

var ErrNoWords = errors.New("playback requires at least one word")

// Summary reports a completed run to the completion callback.
type Summary struct {
	Mode      Mode
	SpeedWPM  int
	WordCount int
	Elapsed   time.Duration
}

// Engine advances a word index or scroll offset at a rate derived from the
// configured speed. Exactly one completion callback fires per run.
type Engine struct {
	mode  Mode
	words []string

	speedWPM int
	minWPM   int
	maxWPM   int

	state       State
	index       int
	accumMs     float64
	position    float64
	total       float64
	startedAt   time.Time
	pausedFor   time.Duration
	pausedAt    time.Time
	lastTick    time.Time
	resultSaved bool

	onComplete func(Summary)
}

// NewWordEngine creates a word-flash engine with the default word-mode
// speed bounds.
func NewWordEngine(words []string, speedWPM int, onComplete func(Summary)) (*Engine, error) {
	return newEngine(ModeWords, words, speedWPM, WordSpeedMin, WordSpeedMax, 0, onComplete)
}

// NewWordEngineWithBounds creates a word-flash engine with category-specific
// speed bounds.
func NewWordEngineWithBounds(words []string, speedWPM, minWPM, maxWPM int, onComplete func(Summary)) (*Engine, error) {
	return newEngine(ModeWords, words, speedWPM, minWPM, maxWPM, 0, onComplete)
}

// NewScrollEngine creates a continuous-scroll engine over a text of
// wordCount words covering totalDistance display units.
func NewScrollEngine(wordCount int, totalDistance float64, speedWPM int, onComplete func(Summary)) (*Engine, error) {
	words := make([]string, wordCount)
	return newEngine(ModeScroll, words, speedWPM, ScrollSpeedMin, ScrollSpeedMax, totalDistance, onComplete)
}

func newEngine(mode Mode, words []string, speedWPM, minWPM, maxWPM int, total float64, onComplete func(Summary)) (*Engine, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	e := &Engine{
		mode:       mode,
		words:      words,
		minWPM:     minWPM,
		maxWPM:     maxWPM,
		total:      total,
		onComplete: onComplete,
	}
	e.speedWPM = e.clampSpeed(speedWPM)
	return e, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// SpeedWPM returns the current (clamped) speed.
func (e *Engine) SpeedWPM() int {
	return e.speedWPM
}

// WordIndex returns the currently displayed word index (word mode).
func (e *Engine) WordIndex() int {
	return e.index
}

// Position returns the current scroll offset (scroll mode).
func (e *Engine) Position() float64 {
	return e.position
}

// AdjustSpeed shifts the speed by delta words per minute. Values outside
// the mode's bounds are silently clamped, never rejected.
func (e *Engine) AdjustSpeed(delta int) {
	e.speedWPM = e.clampSpeed(e.speedWPM + delta)
}

// SetSpeed sets the speed directly, clamped to the mode's bounds.
func (e *Engine) SetSpeed(speedWPM int) {
	e.speedWPM = e.clampSpeed(speedWPM)
}

func (e *Engine) clampSpeed(speed int) int {
	if speed < e.minWPM {
		return e.minWPM
	}
	if speed > e.maxWPM {
		return e.maxWPM
	}
	return speed
}

// Play starts a run from the beginning. Restarting a completed engine
// re-arms the completion callback for the new run.
func (e *Engine) Play(now time.Time) {
	e.state = StateRunning
	e.index = 0
	e.accumMs = 0
	e.position = 0
	e.startedAt = now
	e.pausedFor = 0
	e.lastTick = now
	e.resultSaved = false
}

// Pause suspends the run. The pending frame is cancelled: ticks while
// paused are ignored and do not accumulate time.
func (e *Engine) Pause(now time.Time) {
	if e.state != StateRunning {
		return
	}
	e.state = StatePaused
	e.pausedAt = now
}

// Resume continues a paused run without counting the paused interval.
func (e *Engine) Resume(now time.Time) {
	if e.state != StatePaused {
		return
	}
	e.pausedFor += now.Sub(e.pausedAt)
	e.lastTick = now
	e.state = StateRunning
}

// Stop cancels the run without completing it. No callback fires.
func (e *Engine) Stop() {
	if e.state == StateRunning || e.state == StatePaused {
		e.state = StateStopped
	}
}

// Tick advances the engine one animation frame. It is a no-op unless the
// engine is running.
func (e *Engine) Tick(now time.Time) {
	if e.state != StateRunning {
		return
	}

	elapsedMs := float64(now.Sub(e.lastTick)) / float64(time.Millisecond)
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	e.lastTick = now

	switch e.mode {
	case ModeWords:
		e.tickWords(now, elapsedMs)
	case ModeScroll:
		e.tickScroll(now, elapsedMs)
	}
}

// tickWords advances the word index when the accumulated frame time reaches
// the per-word interval, then resets the accumulator.
func (e *Engine) tickWords(now time.Time, elapsedMs float64) {
	e.accumMs += elapsedMs
	intervalMs := 60000.0 / float64(e.speedWPM)

	for e.accumMs >= intervalMs {
		e.accumMs = 0
		if e.index >= len(e.words)-1 {
			e.complete(now)
			return
		}
		e.index++
	}
}

// tickScroll advances the scroll position proportionally to elapsed time
// over the total run duration.
func (e *Engine) tickScroll(now time.Time, elapsedMs float64) {
	durationMs := float64(len(e.words)) / float64(e.speedWPM) * 60000.0
	if durationMs <= 0 {
		e.complete(now)
		return
	}

	e.position += elapsedMs * e.total / durationMs
	if e.position >= e.total {
		e.position = e.total
		e.complete(now)
	}
}

// complete halts playback, captures wall-clock elapsed time and fires the
// completion callback. The resultSaved guard makes the callback fire
// exactly once per run even if completion is reached again.
func (e *Engine) complete(now time.Time) {
	e.state = StateCompleted
	if e.resultSaved {
		return
	}
	e.resultSaved = true

	if e.onComplete != nil {
		e.onComplete(Summary{
			Mode:      e.mode,
			SpeedWPM:  e.speedWPM,
			WordCount: len(e.words),
			Elapsed:   now.Sub(e.startedAt) - e.pausedFor,
		})
	}
}
