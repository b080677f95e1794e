package player

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soniakeys/unit"

	"github.com/astrokit/stardrift/internal/animate"
	"github.com/astrokit/stardrift/internal/kinematics"
	"github.com/astrokit/stardrift/internal/render"
	"github.com/astrokit/stardrift/internal/star"
)

func playerSet() star.Set {
	mk := func(name string, raDeg, decDeg, dist float64) star.Star {
		return star.Star{
			Designation:    name,
			RA:             unit.AngleFromDeg(raDeg),
			Dec:            unit.AngleFromDeg(decDeg),
			Distance:       dist,
			PMRA:           unit.AngleFromSec(0.1),
			PMDec:          unit.AngleFromSec(-0.05),
			RadialVelocity: 25,
		}
	}
	return star.Set{
		Epoch: time.Date(2016, 1, 1, 12, 0, 0, 0, time.UTC),
		Stars: []star.Star{
			mk("a", 10, 5, 10),
			mk("b", 120, -30, 20),
			mk("c", 250, 60, 30),
		},
	}
}

func newTestModel(t *testing.T, steps int) Model {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	an := animate.New(kinematics.Linear{}, render.New(20, 8, render.Viridis), logger)
	seq, err := an.Animate(playerSet(), 1, steps, render.Options{})
	if err != nil {
		t.Fatalf("Animate: %v", err)
	}
	return NewModel(seq, render.Viridis, 3, "dark")
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, s string) Model {
	nm, _ := m.Update(key(s))
	return nm.(Model)
}

func tick(m Model) Model {
	nm, _ := m.Update(TickMsg(time.Now()))
	return nm.(Model)
}

func TestTickAdvancesAndWraps(t *testing.T) {
	m := newTestModel(t, 3)

	m = tick(m)
	if m.frame != 1 {
		t.Fatalf("frame = %d after one tick, want 1", m.frame)
	}
	m = tick(m)
	m = tick(m)
	if m.frame != 0 {
		t.Fatalf("frame = %d after wrap, want 0", m.frame)
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	m := newTestModel(t, 3)

	m = press(m, " ")
	if m.playing {
		t.Fatal("still playing after pause")
	}
	before := m.frame
	m = tick(m)
	if m.frame != before {
		t.Fatal("paused playback advanced")
	}
	m = press(m, " ")
	if !m.playing {
		t.Fatal("not playing after resume")
	}
}

func TestScrubStepsAndPauses(t *testing.T) {
	m := newTestModel(t, 3)

	m = press(m, "]")
	if m.frame != 1 || m.playing {
		t.Fatalf("frame = %d playing = %v after ], want 1 paused", m.frame, m.playing)
	}
	m = press(m, "[")
	m = press(m, "[")
	if m.frame != 0 {
		t.Fatalf("frame = %d after scrubbing past start, want 0", m.frame)
	}
	for i := 0; i < 5; i++ {
		m = press(m, "]")
	}
	if m.frame != 2 {
		t.Fatalf("frame = %d after scrubbing past end, want 2", m.frame)
	}
}

func TestRewind(t *testing.T) {
	m := newTestModel(t, 3)
	m = tick(m)
	m = tick(m)

	m = press(m, "r")
	if m.frame != 0 {
		t.Fatalf("frame = %d after rewind, want 0", m.frame)
	}
}

func TestThemeCycleRoundTrips(t *testing.T) {
	m := newTestModel(t, 2)
	if m.theme.Name != "dark" {
		t.Fatalf("initial theme = %q", m.theme.Name)
	}
	m = press(m, "t")
	if m.theme.Name != "retro" {
		t.Fatalf("theme = %q after one cycle, want retro", m.theme.Name)
	}
	for i := 0; i < len(Themes)-1; i++ {
		m = press(m, "t")
	}
	if m.theme.Name != "dark" {
		t.Fatalf("theme = %q after full cycle, want dark", m.theme.Name)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, 2)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("no command for q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("no command for ctrl+c")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c did not quit")
	}
}

func TestViewShowsPlaybackState(t *testing.T) {
	m := newTestModel(t, 3)

	view := m.View()
	for _, want := range []string{"STAR DRIFT", "PLAYING", "Frame", "1/3", "t+0 yr"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(m, " ")
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view missing PAUSED")
	}

	m = press(m, "?")
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay missing")
	}
}

func TestSaveKeysWriteFiles(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, 2)
	m.GIFPath = filepath.Join(dir, "out.gif")
	m.SVGPath = filepath.Join(dir, "frame.svg")

	m = press(m, "g")
	if _, err := os.Stat(m.GIFPath); err != nil {
		t.Fatalf("gif not written: %v", err)
	}
	m = press(m, "s")
	if _, err := os.Stat(m.SVGPath); err != nil {
		t.Fatalf("svg not written: %v", err)
	}
	if !strings.Contains(m.notice, "wrote") {
		t.Errorf("notice = %q", m.notice)
	}
}
