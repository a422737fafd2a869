package cli

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/grindlemire/go-sortable"
)

// Scene is a container described in TOML: its frame, its items and an
// optional script of pointer steps.
//
//	[container]
//	width = 300
//
//	[item]
//	width = 100
//	height = 40
//
//	[[items]]
//	key = "a"
//
//	[[items]]
//	key = "b"
//	height = 80
//
//	[[steps]]
//	action = "down"
//	key = "a"
//
//	[config.layout.grid]
//	columns = 3
type Scene struct {
	Container SceneFrame  `toml:"container"`
	Item      SceneSize   `toml:"item"`
	Items     []SceneItem `toml:"items"`
	Steps     []Step      `toml:"steps"`

	Config sortable.Config `toml:"config"`
}

// SceneFrame is the container's page frame.
type SceneFrame struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// SceneSize is the default item size.
type SceneSize struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// SceneItem is one item. Zero sizes fall back to the scene's [item].
type SceneItem struct {
	Key    string  `toml:"key"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Action is a script step kind.
type Action string

const (
	ActionDown   Action = "down"
	ActionMove   Action = "move"
	ActionUp     Action = "up"
	ActionCancel Action = "cancel"
	ActionWait   Action = "wait"
)

// Step is one scripted pointer sample or pause.
//
// A down presses Key at the given point, or at its center when no point is
// given. A move goes to the point, or to the center of Target's current
// slot. A wait advances time by For.
type Step struct {
	Action Action        `toml:"action"`
	Key    string        `toml:"key"`
	Target string        `toml:"target"`
	X      *float64      `toml:"x"`
	Y      *float64      `toml:"y"`
	For    time.Duration `toml:"for"`
}

// loadScene reads a scene file on top of the default configuration.
func loadScene(path string) (*Scene, error) {
	s := &Scene{
		Item:   SceneSize{Width: 100, Height: 40},
		Config: sortable.DefaultConfig(),
	}
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load scene %s: unknown keys %v", path, undecoded)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return s, nil
}

func (s *Scene) validate() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	if s.Container.Width <= 0 {
		return fmt.Errorf("container width must be positive, got %v", s.Container.Width)
	}
	for i, st := range s.Steps {
		switch st.Action {
		case ActionDown:
			if st.Key == "" {
				return fmt.Errorf("step %d: down needs a key", i)
			}
		case ActionMove:
			if st.Target == "" && (st.X == nil || st.Y == nil) {
				return fmt.Errorf("step %d: move needs a target or x and y", i)
			}
		case ActionUp, ActionCancel:
		case ActionWait:
			if st.For <= 0 {
				return fmt.Errorf("step %d: wait needs a positive duration", i)
			}
		default:
			return fmt.Errorf("step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}

// Keys returns the item keys in scene order.
func (s *Scene) Keys() []string {
	keys := make([]string, len(s.Items))
	for i, it := range s.Items {
		keys[i] = it.Key
	}
	return keys
}

func (s *Scene) frame() sortable.Frame {
	c := s.Container
	return sortable.Frame{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// build creates a measured container for the scene.
func (s *Scene) build(opts ...sortable.Option) (*sortable.Container, error) {
	opts = append([]sortable.Option{sortable.WithItems(s.Keys()...)}, opts...)
	c, err := sortable.New(s.Config, opts...)
	if err != nil {
		return nil, err
	}
	c.MeasureContainer(s.frame())
	// Keys may have been normalized; measure by position.
	order := c.Order()
	for i, it := range s.Items {
		d := sortable.Dimensions{Width: it.Width, Height: it.Height}
		if d.Width <= 0 {
			d.Width = s.Item.Width
		}
		if d.Height <= 0 {
			d.Height = s.Item.Height
		}
		c.MeasureItem(order[i], d)
	}
	return c, nil
}

// point resolves the pointer position of a step in page coordinates.
func (s *Scene) point(c *sortable.Container, st Step) (sortable.Vector, error) {
	if st.X != nil && st.Y != nil {
		return sortable.Vector{X: *st.X, Y: *st.Y}, nil
	}
	key := st.Key
	if st.Action == ActionMove {
		key = st.Target
	}
	slot, ok := c.Positions()[key]
	if !ok {
		return sortable.Vector{}, fmt.Errorf("no slot for %q", key)
	}
	d, _ := c.ItemDimensions(key)
	origin := sortable.Vector{X: s.Container.X, Y: s.Container.Y}
	return origin.Add(slot).Add(d.Half()), nil
}
