package sortable

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/grindlemire/go-sortable/internal/layout"
)

// LayoutKind selects the layout engine.
type LayoutKind uint8

const (
	LayoutGrid LayoutKind = iota
	LayoutFlex
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutGrid:
		return "grid"
	case LayoutFlex:
		return "flex"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LayoutKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "grid":
		*k = LayoutGrid
	case "flex":
		*k = LayoutFlex
	default:
		return fmt.Errorf("unknown layout kind %q", string(text))
	}
	return nil
}

// GridConfig configures the grid layout.
type GridConfig struct {
	Columns   int     `toml:"columns"`
	ColumnGap float64 `toml:"column_gap"`
	RowGap    float64 `toml:"row_gap"`
}

// FlexConfig configures the flex layout.
type FlexConfig struct {
	Direction      FlexDirection `toml:"direction"`
	Wrap           FlexWrap      `toml:"wrap"`
	JustifyContent Justify       `toml:"justify_content"`
	AlignItems     Align         `toml:"align_items"`
	AlignContent   AlignContent  `toml:"align_content"`

	// Gap is the default for both ColumnGap and RowGap.
	Gap       float64  `toml:"gap"`
	ColumnGap *float64 `toml:"column_gap"`
	RowGap    *float64 `toml:"row_gap"`

	// Height fixes the container height. MinHeight and MaxHeight clamp it;
	// zero means no limit.
	Height    float64 `toml:"height"`
	MinHeight float64 `toml:"min_height"`
	MaxHeight float64 `toml:"max_height"`
}

// LayoutConfig selects and configures the layout engine.
type LayoutConfig struct {
	Kind LayoutKind `toml:"kind"`
	Grid GridConfig `toml:"grid"`
	Flex FlexConfig `toml:"flex"`
}

// ActivationConfig tunes the long press and the drop animation.
type ActivationConfig struct {
	// Delay is how long an item must be pressed before it activates.
	Delay time.Duration `toml:"delay"`
	// AnimationDuration is how long activation progress takes to reach 1.
	AnimationDuration time.Duration `toml:"animation_duration"`
	// DropAnimationDuration is how long progress takes to return to 0.
	DropAnimationDuration time.Duration `toml:"drop_animation_duration"`
	// FailOffset is how far the pointer may move before activation is
	// cancelled.
	FailOffset float64 `toml:"fail_offset"`
}

// AutoScrollConfig tunes scrolling of the hosting view.
type AutoScrollConfig struct {
	Enabled bool `toml:"enabled"`
	// Activation offsets resolve percentages against the viewport height.
	ActivationOffsetTop    Offset  `toml:"activation_offset_top"`
	ActivationOffsetBottom Offset  `toml:"activation_offset_bottom"`
	Speed                  float64 `toml:"speed"`
}

// DecorationConfig holds the pressed and inactive item styling targets.
type DecorationConfig struct {
	ActiveScale         float64 `toml:"active_scale"`
	ActiveOpacity       float64 `toml:"active_opacity"`
	ActiveShadowOpacity float64 `toml:"active_shadow_opacity"`
	InactiveOpacity     float64 `toml:"inactive_opacity"`
	InactiveScale       float64 `toml:"inactive_scale"`
}

// SnapConfig re-anchors the active item under the pointer when dragging
// starts. Percentages resolve against the item size.
type SnapConfig struct {
	Enabled bool   `toml:"enabled"`
	OffsetX Offset `toml:"offset_x"`
	OffsetY Offset `toml:"offset_y"`
}

// Config configures one sortable container.
type Config struct {
	Layout         LayoutConfig     `toml:"layout"`
	SortEnabled    bool             `toml:"sort_enabled"`
	HapticsEnabled bool             `toml:"haptics_enabled"`
	Strategy       Strategy         `toml:"reorder_strategy"`
	Activation     ActivationConfig `toml:"activation"`
	AutoScroll     AutoScrollConfig `toml:"autoscroll"`
	Decoration     DecorationConfig `toml:"decoration"`
	Snap           SnapConfig       `toml:"snap"`
}

// DefaultConfig returns the default configuration: a single column grid
// with insert reordering.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			Kind: LayoutGrid,
			Grid: GridConfig{Columns: 1},
			Flex: FlexConfig{Direction: Row, Wrap: Wrap},
		},
		SortEnabled: true,
		Strategy:    Insert,
		Activation: ActivationConfig{
			Delay:                 200 * time.Millisecond,
			AnimationDuration:     300 * time.Millisecond,
			DropAnimationDuration: 300 * time.Millisecond,
			FailOffset:            5,
		},
		AutoScroll: AutoScrollConfig{
			Enabled:                true,
			ActivationOffsetTop:    Fixed(75),
			ActivationOffsetBottom: Fixed(75),
			Speed:                  1,
		},
		Decoration: DecorationConfig{
			ActiveScale:         1.1,
			ActiveOpacity:       1,
			ActiveShadowOpacity: 0.2,
			InactiveOpacity:     0.5,
			InactiveScale:       1,
		},
		Snap: SnapConfig{
			OffsetX: Percent(50),
			OffsetY: Percent(50),
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return finishDecode(cfg, md)
}

// DecodeConfig reads TOML from r on top of DefaultConfig.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return finishDecode(cfg, md)
}

func finishDecode(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch c.Layout.Kind {
	case LayoutGrid:
		g := c.Layout.Grid
		if g.Columns < 1 {
			return invalid("grid columns must be at least 1, got %d", g.Columns)
		}
		if g.ColumnGap < 0 || g.RowGap < 0 {
			return invalid("grid gaps must not be negative")
		}
	case LayoutFlex:
		f := c.Layout.Flex
		columnGap, rowGap := f.gaps()
		if columnGap < 0 || rowGap < 0 {
			return invalid("flex gaps must not be negative")
		}
		if f.Height < 0 || f.MinHeight < 0 || f.MaxHeight < 0 {
			return invalid("flex height limits must not be negative")
		}
	default:
		return invalid("unknown layout kind %v", c.Layout.Kind)
	}

	if c.Strategy != Insert && c.Strategy != Swap {
		return invalid("unknown reorder strategy %v", c.Strategy)
	}

	a := c.Activation
	if a.Delay < 0 || a.AnimationDuration < 0 || a.DropAnimationDuration < 0 {
		return invalid("activation durations must not be negative")
	}
	if a.FailOffset < 0 {
		return invalid("activation fail offset must not be negative, got %v", a.FailOffset)
	}

	if c.AutoScroll.Enabled && c.AutoScroll.Speed <= 0 {
		return invalid("autoscroll speed must be positive, got %v", c.AutoScroll.Speed)
	}

	d := c.Decoration
	for name, v := range map[string]float64{
		"active_opacity":        d.ActiveOpacity,
		"active_shadow_opacity": d.ActiveShadowOpacity,
		"inactive_opacity":      d.InactiveOpacity,
	} {
		if v < 0 || v > 1 {
			return invalid("%s must be within [0, 1], got %v", name, v)
		}
	}
	if d.ActiveScale < 0 || d.InactiveScale < 0 {
		return invalid("decoration scales must not be negative")
	}
	return nil
}

func (f FlexConfig) gaps() (column, row float64) {
	column, row = f.Gap, f.Gap
	if f.ColumnGap != nil {
		column = *f.ColumnGap
	}
	if f.RowGap != nil {
		row = *f.RowGap
	}
	return column, row
}

// engine builds the layout engine described by c.
func (c Config) engine() layout.Engine {
	if c.Layout.Kind == LayoutFlex {
		f := c.Layout.Flex
		columnGap, rowGap := f.gaps()
		return layout.NewFlex(layout.FlexParams{
			Direction:      f.Direction,
			Wrap:           f.Wrap,
			JustifyContent: f.JustifyContent,
			AlignItems:     f.AlignItems,
			AlignContent:   f.AlignContent,
			ColumnGap:      columnGap,
			RowGap:         rowGap,
			Height:         f.Height,
			MinHeight:      f.MinHeight,
			MaxHeight:      f.MaxHeight,
		})
	}
	g := c.Layout.Grid
	return layout.NewGrid(layout.GridParams{
		Columns:   g.Columns,
		ColumnGap: g.ColumnGap,
		RowGap:    g.RowGap,
	})
}
