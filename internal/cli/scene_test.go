package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-sortable"
)

func writeScene(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScene(t *testing.T) {
	scene, err := loadScene("testdata/drag.toml")
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}

	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f"}, scene.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	actions := make([]Action, len(scene.Steps))
	for i, st := range scene.Steps {
		actions[i] = st.Action
	}
	want := []Action{ActionDown, ActionWait, ActionMove, ActionUp, ActionWait}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
	if scene.Steps[1].For != 600*time.Millisecond {
		t.Errorf("wait = %v, want 600ms", scene.Steps[1].For)
	}
	if scene.Config.Layout.Grid.Columns != 3 {
		t.Errorf("columns = %d, want 3", scene.Config.Layout.Grid.Columns)
	}
	if !scene.Config.SortEnabled {
		t.Error("scene config lost the default sort_enabled")
	}
}

func TestLoadScene_Errors(t *testing.T) {
	type tc struct {
		src  string
		want string
	}

	tests := map[string]tc{
		"unknown key": {
			src:  "[container]\nwidth = 100\nwdith = 3",
			want: "unknown keys",
		},
		"missing container width": {
			src:  "[[items]]\nkey = \"a\"",
			want: "container width",
		},
		"invalid config": {
			src:  "[container]\nwidth = 100\n[config.layout.grid]\ncolumns = 0",
			want: "columns",
		},
		"unknown action": {
			src:  "[container]\nwidth = 100\n[[steps]]\naction = \"jump\"",
			want: "unknown action",
		},
		"down without key": {
			src:  "[container]\nwidth = 100\n[[steps]]\naction = \"down\"",
			want: "needs a key",
		},
		"move without destination": {
			src:  "[container]\nwidth = 100\n[[steps]]\naction = \"move\"\nx = 3",
			want: "target or x and y",
		},
		"wait without duration": {
			src:  "[container]\nwidth = 100\n[[steps]]\naction = \"wait\"",
			want: "positive duration",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadScene(writeScene(t, tt.src))
			if err == nil {
				t.Fatal("loadScene: want error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("loadScene error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestScene_Build(t *testing.T) {
	scene, err := loadScene("testdata/drag.toml")
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	c, err := scene.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := sortable.Positions{
		"a": {X: 0, Y: 0}, "b": {X: 100, Y: 0}, "c": {X: 200, Y: 0},
		"d": {X: 0, Y: 40}, "e": {X: 100, Y: 40}, "f": {X: 200, Y: 40},
	}
	if diff := cmp.Diff(want, c.Positions()); diff != "" {
		t.Errorf("Positions() mismatch (-want +got):\n%s", diff)
	}
	if got := c.ContainerSize(); !got.Equal(sortable.Dimensions{Width: 300, Height: 100}) {
		t.Errorf("ContainerSize() = %v, want 300x100", got)
	}
}

func TestScene_Point(t *testing.T) {
	scene := &Scene{
		Container: SceneFrame{X: 10, Y: 20, Width: 200},
		Item:      SceneSize{Width: 100, Height: 40},
		Items:     []SceneItem{{Key: "a"}, {Key: "b"}},
		Config:    sortable.DefaultConfig(),
	}
	scene.Config.Layout.Grid.Columns = 2
	c, err := scene.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	x, y := 1.0, 2.0
	type tc struct {
		step Step
		want sortable.Vector
	}

	tests := map[string]tc{
		"down at key center": {
			step: Step{Action: ActionDown, Key: "b"},
			want: sortable.Vector{X: 160, Y: 40},
		},
		"move to target center": {
			step: Step{Action: ActionMove, Target: "a"},
			want: sortable.Vector{X: 60, Y: 40},
		},
		"explicit point": {
			step: Step{Action: ActionMove, Target: "a", X: &x, Y: &y},
			want: sortable.Vector{X: 1, Y: 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := scene.point(c, tt.step)
			if err != nil {
				t.Fatalf("point: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("point mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := scene.point(c, Step{Action: ActionMove, Target: "missing"}); err == nil {
		t.Error("point of a missing target: want error, got nil")
	}
}
