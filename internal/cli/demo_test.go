package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-sortable"
)

func TestCanvas_Box(t *testing.T) {
	type tc struct {
		x, y, w, h int
		dashed     bool
		label      string
		want       []string
	}

	tests := map[string]tc{
		"labelled box": {
			x: 0, y: 0, w: 6, h: 3, label: "ab",
			want: []string{
				"╭────╮",
				"│ ab │",
				"╰────╯",
			},
		},
		"dashed box": {
			x: 1, y: 0, w: 4, h: 3, dashed: true,
			want: []string{
				" ╭┄┄╮ ",
				" ┆  ┆ ",
				" ╰┄┄╯ ",
			},
		},
		"clipped at the edge": {
			x: 3, y: 1, w: 6, h: 3, label: "long label",
			want: []string{
				"      ",
				"   ╭──",
				"   │lo",
			},
		},
		"too small to draw": {
			x: 0, y: 0, w: 1, h: 1, label: "x",
			want: []string{
				"      ",
				"      ",
				"      ",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cv := newCanvas(6, 3)
			cv.box(tt.x, tt.y, tt.w, tt.h, styleItemCell, tt.dashed, tt.label)
			got := make([]string, cv.h)
			for y := range cv.h {
				got[y] = string(cv.runes[y])
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("canvas mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCanvas_Render(t *testing.T) {
	cv := newCanvas(4, 2)
	cv.set(0, 0, 'a', styleItemCell)
	cv.set(3, 1, 'b', styleActiveCell)
	cv.set(9, 9, 'x', styleItemCell)

	lines := strings.Split(cv.render(), "\n")
	if len(lines) != 2 {
		t.Fatalf("render() has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "a") || !strings.Contains(lines[1], "b") {
		t.Errorf("render() = %q", lines)
	}
}

func TestTerminalView_ScrollTo(t *testing.T) {
	type tc struct {
		offset float64
		want   float64
	}

	tests := map[string]tc{
		"within range": {offset: 4, want: 4},
		"negative":     {offset: -3, want: 0},
		"past max":     {offset: 20, want: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := &terminalView{height: 5, max: 10}
			v.ScrollTo(tt.offset)
			if v.Offset() != tt.want {
				t.Errorf("Offset() = %v, want %v", v.Offset(), tt.want)
			}
		})
	}
}

func newTestDemo(t *testing.T, n int) *demoModel {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := sortable.DefaultConfig()
	cfg.Layout.Grid.Columns = 2
	cfg.HapticsEnabled = true
	m, err := newDemoModel(ctx, cfg, n)
	if err != nil {
		t.Fatalf("newDemoModel: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	return m
}

func TestDemoModel_Layout(t *testing.T) {
	m := newTestDemo(t, 4)

	if got := m.c.ContainerSize(); got.Width != 40 || got.Height != 2*demoItemHeight {
		t.Errorf("ContainerSize() = %v, want 40x%d", got, 2*demoItemHeight)
	}
	if key, ok := m.hit(sortable.Vector{X: 25, Y: 6}); !ok || key != "item 04" {
		t.Errorf("hit(25, 6) = %q, %v, want item 04", key, ok)
	}
	if _, ok := m.hit(sortable.Vector{X: 5, Y: 15}); ok {
		t.Error("hit below the items reported an item")
	}

	view := m.View()
	for _, want := range []string{"item 01", "item 04", "4 items"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestDemoModel_Drag(t *testing.T) {
	m := newTestDemo(t, 4)

	m.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	t0 := time.Now()
	for _, dt := range []time.Duration{0, 300 * time.Millisecond, 600 * time.Millisecond} {
		m.Update(frameMsg(t0.Add(dt)))
	}
	if got := m.c.Phase(); got != sortable.PhaseDragging {
		t.Fatalf("Phase() = %v, want %v", got, sortable.PhaseDragging)
	}
	if key, ok := m.c.ActiveKey(); !ok || key != "item 01" {
		t.Errorf("ActiveKey() = %q, %v, want item 01", key, ok)
	}
	if m.haptics.medium != 1 {
		t.Errorf("medium haptics = %d, want 1", m.haptics.medium)
	}

	// Drop item 01 onto the second cell.
	m.Update(tea.MouseMsg{X: 25, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 25, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	for i := range 30 {
		m.Update(frameMsg(t0.Add(600*time.Millisecond + time.Duration(i+1)*demoFrame)))
	}

	want := []string{"item 02", "item 01", "item 03", "item 04"}
	if diff := cmp.Diff(want, m.c.Order()); diff != "" {
		t.Errorf("Order() mismatch (-want +got):\n%s", diff)
	}
	if got := m.c.Phase(); got != sortable.PhaseIdle {
		t.Errorf("Phase() = %v, want %v", got, sortable.PhaseIdle)
	}
}

func TestDemoModel_AddRemove(t *testing.T) {
	m := newTestDemo(t, 2)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if diff := cmp.Diff([]string{"item 01", "item 02", "item 03"}, m.c.Order()); diff != "" {
		t.Errorf("after add (-want +got):\n%s", diff)
	}
	if _, ok := m.c.ItemDimensions("item 03"); !ok {
		t.Error("added item was not measured")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if diff := cmp.Diff([]string{"item 01"}, m.c.Order()); diff != "" {
		t.Errorf("after remove (-want +got):\n%s", diff)
	}
	if m.status != "removed item 02" {
		t.Errorf("status = %q, want %q", m.status, "removed item 02")
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("q did not return a quit command")
	}
}
