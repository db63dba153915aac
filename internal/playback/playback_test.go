package playback

import (
	"testing"
	"time"
)

// tick advances the engine by simulated frames of the given duration.
func tick(e *Engine, start time.Time, frames int, frame time.Duration) time.Time {
	now := start
	for i := 0; i < frames; i++ {
		now = now.Add(frame)
		e.Tick(now)
	}
	return now
}

func TestWordModeAdvancesAtSpeed(t *testing.T) {
	e, err := NewWordEngine([]string{"uno", "dos", "tres", "cuatro"}, 60, nil)
	if err != nil {
		t.Fatalf("NewWordEngine() error = %v", err)
	}

	start := time.Unix(0, 0)
	e.Play(start)

	// At 60 wpm one word per second. After 1.5s of 100ms frames the index
	// must have advanced exactly once.
	tick(e, start, 15, 100*time.Millisecond)
	if e.WordIndex() != 1 {
		t.Errorf("index after 1.5s at 60wpm = %d, want 1", e.WordIndex())
	}
}

func TestWordModeSelfCorrectsForDroppedFrames(t *testing.T) {
	e, err := NewWordEngine([]string{"uno", "dos", "tres", "cuatro", "cinco", "seis"}, 60, nil)
	if err != nil {
		t.Fatalf("NewWordEngine() error = %v", err)
	}

	start := time.Unix(0, 0)
	e.Play(start)

	// One giant 2.5s frame (dropped frames). The accumulator resets per
	// word boundary, so a single oversized frame still advances.
	e.Tick(start.Add(2500 * time.Millisecond))
	if e.WordIndex() < 1 {
		t.Errorf("index after a 2.5s frame = %d, want at least 1", e.WordIndex())
	}
}

func TestCompletionFiresExactlyOnce(t *testing.T) {
	completions := 0
	e, err := NewWordEngine([]string{"uno", "dos", "tres"}, 600, func(Summary) {
		completions++
	})
	if err != nil {
		t.Fatalf("NewWordEngine() error = %v", err)
	}

	start := time.Unix(0, 0)
	e.Play(start)

	// 600 wpm = 100ms per word, nominal completion after ~300ms. Simulate
	// 200 further frames past completion time.
	now := tick(e, start, 200, 50*time.Millisecond)
	if e.State() != StateCompleted {
		t.Fatalf("state = %v, want completed", e.State())
	}
	if completions != 1 {
		t.Fatalf("completion callback fired %d times, want exactly 1", completions)
	}

	// Extra ticks after completion must not re-fire.
	tick(e, now, 200, 50*time.Millisecond)
	if completions != 1 {
		t.Errorf("completion callback fired %d times after extra ticks, want 1", completions)
	}
}

func TestCompletionReportsElapsedWithoutPauses(t *testing.T) {
	var got Summary
	e, err := NewWordEngine([]string{"uno", "dos"}, 60, func(s Summary) {
		got = s
	})
	if err != nil {
		t.Fatalf("NewWordEngine() error = %v", err)
	}

	start := time.Unix(0, 0)
	e.Play(start)

	// Run 1s, pause 10s, resume, run to completion.
	now := tick(e, start, 10, 100*time.Millisecond)
	e.Pause(now)
	now = now.Add(10 * time.Second)
	e.Resume(now)
	tick(e, now, 30, 100*time.Millisecond)

	if e.State() != StateCompleted {
		t.Fatalf("state = %v, want completed", e.State())
	}
	if got.Elapsed >= 10*time.Second {
		t.Errorf("elapsed %v includes the paused interval", got.Elapsed)
	}
}

func TestPauseIgnoresTicks(t *testing.T) {
	e, err := NewWordEngine([]string{"uno", "dos", "tres"}, 600, nil)
	if err != nil {
		t.Fatalf("NewWordEngine() error = %v", err)
	}

	start := time.Unix(0, 0)
	e.Play(start)
	e.Pause(start)

	tick(e, start, 100, 100*time.Millisecond)
	if e.WordIndex() != 0 {
		t.Errorf("index advanced to %d while paused, want 0", e.WordIndex())
	}
	if e.State() != StatePaused {
		t.Errorf("state = %v, want paused", e.State())
	}
}

func TestStopCancelsWithoutCompleting(t *testing.T) {
	completions := 0
	e, err := NewWordEngine([]string{"uno", "dos"}, 600, func(Summary) {
		completions++
	})
	if err != nil {
		t.Fatalf("NewWordEngine() error = %v", err)
	}

	start := time.Unix(0, 0)
	e.Play(start)
	e.Stop()

	tick(e, start, 100, 100*time.Millisecond)
	if e.State() != StateStopped {
		t.Errorf("state = %v, want stopped", e.State())
	}
	if completions != 0 {
		t.Errorf("completion fired %d times after Stop, want 0", completions)
	}
}

func TestSpeedClamping(t *testing.T) {
	e, err := NewWordEngine([]string{"uno"}, 300, nil)
	if err != nil {
		t.Fatalf("NewWordEngine() error = %v", err)
	}

	// Repeated increments never exceed the max.
	for i := 0; i < 1000; i++ {
		e.AdjustSpeed(+25)
	}
	if e.SpeedWPM() != WordSpeedMax {
		t.Errorf("speed after repeated increments = %d, want %d", e.SpeedWPM(), WordSpeedMax)
	}

	// Repeated decrements never drop below the min.
	for i := 0; i < 1000; i++ {
		e.AdjustSpeed(-25)
	}
	if e.SpeedWPM() != WordSpeedMin {
		t.Errorf("speed after repeated decrements = %d, want %d", e.SpeedWPM(), WordSpeedMin)
	}

	// Out-of-range initial speeds clamp silently.
	e.SetSpeed(5000)
	if e.SpeedWPM() != WordSpeedMax {
		t.Errorf("SetSpeed(5000) = %d, want %d", e.SpeedWPM(), WordSpeedMax)
	}
	e.SetSpeed(1)
	if e.SpeedWPM() != WordSpeedMin {
		t.Errorf("SetSpeed(1) = %d, want %d", e.SpeedWPM(), WordSpeedMin)
	}
}

func TestCategorySpeedBounds(t *testing.T) {
	e, err := NewWordEngineWithBounds([]string{"uno"}, 500, 80, 400, nil)
	if err != nil {
		t.Fatalf("NewWordEngineWithBounds() error = %v", err)
	}
	if e.SpeedWPM() != 400 {
		t.Errorf("speed = %d, want clamped to category max 400", e.SpeedWPM())
	}
}

func TestScrollModeCompletes(t *testing.T) {
	completions := 0
	// 100 words at 600 wpm: 10s run over 1000 units.
	e, err := NewScrollEngine(100, 1000, 600, func(Summary) {
		completions++
	})
	if err != nil {
		t.Fatalf("NewScrollEngine() error = %v", err)
	}

	start := time.Unix(0, 0)
	e.Play(start)

	// Half way.
	now := tick(e, start, 50, 100*time.Millisecond)
	if e.Position() < 400 || e.Position() > 600 {
		t.Errorf("position after half the duration = %.1f, want ~500", e.Position())
	}

	// Run past the end.
	tick(e, now, 100, 100*time.Millisecond)
	if e.State() != StateCompleted {
		t.Fatalf("state = %v, want completed", e.State())
	}
	if e.Position() != 1000 {
		t.Errorf("position at completion = %.1f, want clamped to 1000", e.Position())
	}
	if completions != 1 {
		t.Errorf("completion fired %d times, want 1", completions)
	}
}

func TestScrollSpeedBounds(t *testing.T) {
	e, err := NewScrollEngine(100, 1000, 5000, nil)
	if err != nil {
		t.Fatalf("NewScrollEngine() error = %v", err)
	}
	if e.SpeedWPM() != ScrollSpeedMax {
		t.Errorf("speed = %d, want clamped to %d", e.SpeedWPM(), ScrollSpeedMax)
	}
	e.SetSpeed(10)
	if e.SpeedWPM() != ScrollSpeedMin {
		t.Errorf("speed = %d, want clamped to %d", e.SpeedWPM(), ScrollSpeedMin)
	}
}

func TestEmptyWordListRejected(t *testing.T) {
	if _, err := NewWordEngine(nil, 300, nil); err == nil {
		t.Error("NewWordEngine() accepted an empty word list")
	}
}
