package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-sortable"
	"github.com/spf13/cobra"
)

const (
	demoItemHeight = 3
	demoHeaderRows = 2
	demoFooterRows = 2
	demoFrame      = 16 * time.Millisecond
)

type demoOptions struct {
	items   int
	columns int
	config  string
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{items: 24, columns: 4}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drag items around in the terminal",
		Long: `Drag items around in the terminal with the mouse.

Press and hold an item to pick it up, then drag it. Dragging near the top
or bottom edge scrolls. Press + to add an item, - to remove the last one
and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.items, "items", "n", opts.items, "number of items")
	cmd.Flags().IntVar(&opts.columns, "columns", opts.columns, "grid columns, ignored with --config")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "container config file (TOML)")
	return cmd
}

func runDemo(ctx context.Context, opts demoOptions) error {
	logger := loggerFromContext(ctx)

	cfg := sortable.DefaultConfig()
	cfg.Layout.Grid.Columns = opts.columns
	if opts.config != "" {
		loaded, err := sortable.LoadConfig(opts.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.HapticsEnabled = true

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m, err := newDemoModel(ctx, cfg, opts.items)
	if err != nil {
		return fmt.Errorf("build container: %w", err)
	}
	logger.Debug("starting demo", "items", opts.items, "layout", cfg.Layout.Kind)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}

// terminalView is the scrollable body of the terminal, between the header
// and the footer.
type terminalView struct {
	top, width, height float64
	offset, max        float64
}

func (v *terminalView) Frame() (sortable.Frame, bool) {
	return sortable.Frame{Y: v.top, Width: v.width, Height: v.height}, v.height > 0
}

func (v *terminalView) Offset() float64 { return v.offset }

func (v *terminalView) ScrollTo(offset float64) {
	v.offset = min(max(offset, 0), v.max)
}

// countingHaptics counts feedback pulses for the status line.
type countingHaptics struct {
	light, medium int
}

func (h *countingHaptics) Light()  { h.light++ }
func (h *countingHaptics) Medium() { h.medium++ }

type frameMsg time.Time

type eventMsg struct {
	text string
}

type demoModel struct {
	c       *sortable.Container
	view    *terminalView
	haptics *countingHaptics
	events  chan eventMsg

	width, height int
	next          int
	last          time.Time
	status        string
}

func newDemoModel(ctx context.Context, cfg sortable.Config, n int) (*demoModel, error) {
	m := &demoModel{
		view:    &terminalView{top: demoHeaderRows},
		haptics: &countingHaptics{},
		events:  make(chan eventMsg, 8),
		status:  "press and hold an item to drag it",
	}
	send := func(text string) {
		select {
		case m.events <- eventMsg{text: text}:
		case <-ctx.Done():
		}
	}

	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("item %02d", i+1)
	}
	m.next = n + 1

	c, err := sortable.New(cfg,
		sortable.WithItems(keys...),
		sortable.WithHaptics(m.haptics),
		sortable.WithScrollable(m.view),
		sortable.WithContainerMeasurer(m.containerFrame),
		sortable.WithOnDragStart(func(ev sortable.DragStartEvent) {
			send(fmt.Sprintf("picked up %s at %d", ev.Key, ev.FromIndex))
		}),
		sortable.WithOnOrderChange(func(ev sortable.OrderChangeEvent) {
			send(fmt.Sprintf("%s moved %d → %d", ev.Key, ev.FromIndex, ev.ToIndex))
		}),
		sortable.WithOnDragEnd(func(ev sortable.DragEndEvent) {
			if ev.ToIndex < 0 {
				send(fmt.Sprintf("%s was removed", ev.Key))
				return
			}
			send(fmt.Sprintf("dropped %s at %d (from %d)", ev.Key, ev.ToIndex, ev.FromIndex))
		}),
	)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		c.MeasureItem(k, m.itemSize(k))
	}
	c.Start(ctx)
	m.c = c
	return m, nil
}

// itemSize is the measured size of an item: its label plus the border.
func (m *demoModel) itemSize(key string) sortable.Dimensions {
	return sortable.Dimensions{Width: float64(len(key) + 6), Height: demoItemHeight}
}

// containerFrame is the container's page frame, shifted by the scroll offset.
func (m *demoModel) containerFrame() (sortable.Frame, bool) {
	size := m.c.ContainerSize()
	if !size.Measured() {
		return sortable.Frame{}, false
	}
	return sortable.Frame{
		Y:      m.view.top - m.view.offset,
		Width:  size.Width,
		Height: size.Height,
	}, true
}

func tick() tea.Cmd {
	return tea.Tick(demoFrame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *demoModel) waitForEvent() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

func (m *demoModel) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForEvent())
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+":
			m.addItem()
		case "-":
			m.removeItem()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.view.width = float64(msg.Width)
		m.view.height = float64(max(0, msg.Height-demoHeaderRows-demoFooterRows))
		m.c.MeasureContainer(sortable.Frame{Y: m.view.top - m.view.offset, Width: float64(msg.Width)})
		m.clampScroll()
	case tea.MouseMsg:
		m.mouse(msg)
	case frameMsg:
		now := time.Time(msg)
		dt := demoFrame
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		m.c.Advance(dt)
		m.clampScroll()
		return m, tick()
	case eventMsg:
		m.status = msg.text
		return m, m.waitForEvent()
	}
	return m, nil
}

func (m *demoModel) mouse(msg tea.MouseMsg) {
	p := sortable.Vector{X: float64(msg.X), Y: float64(msg.Y)}
	switch {
	case msg.Button == tea.MouseButtonWheelUp && m.c.Phase() == sortable.PhaseIdle:
		m.view.ScrollTo(m.view.offset - 1)
	case msg.Button == tea.MouseButtonWheelDown && m.c.Phase() == sortable.PhaseIdle:
		m.view.ScrollTo(m.view.offset + 1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if key, ok := m.hit(p); ok {
			m.c.Send(sortable.TouchEvent{Kind: sortable.TouchDown, Key: key, Point: p})
		}
	case msg.Action == tea.MouseActionMotion:
		m.c.Send(sortable.TouchEvent{Kind: sortable.TouchMove, Point: p})
	case msg.Action == tea.MouseActionRelease:
		m.c.Send(sortable.TouchEvent{Kind: sortable.TouchUp, Point: p})
	}
}

func (m *demoModel) addItem() {
	key := fmt.Sprintf("item %02d", m.next)
	m.next++
	if err := m.c.SetItems(append(m.c.Order(), key)); err != nil {
		m.status = err.Error()
		return
	}
	m.c.MeasureItem(key, m.itemSize(key))
	m.status = "added " + key
}

func (m *demoModel) removeItem() {
	order := m.c.Order()
	if len(order) == 0 {
		return
	}
	key := order[len(order)-1]
	if err := m.c.SetItems(order[:len(order)-1]); err != nil {
		m.status = err.Error()
		return
	}
	m.c.RemoveItem(key)
	m.status = "removed " + key
}

func (m *demoModel) clampScroll() {
	size := m.c.ContainerSize()
	if size.Measured() {
		m.view.max = max(0, size.Height-m.view.height)
	}
	m.view.ScrollTo(m.view.offset)
}

// toPage converts a container position to terminal coordinates.
func (m *demoModel) toPage(v sortable.Vector) sortable.Vector {
	return sortable.Vector{X: v.X, Y: v.Y + m.view.top - m.view.offset}
}

// hit returns the item under p, preferring the one drawn on top.
func (m *demoModel) hit(p sortable.Vector) (string, bool) {
	found, layer := "", sortable.LayerState(-1)
	for _, key := range m.c.Order() {
		pos, ok := m.c.ItemPosition(key)
		if !ok {
			continue
		}
		tl := m.toPage(pos)
		d, _ := m.c.ItemDimensions(key)
		if p.X < tl.X || p.Y < tl.Y || p.X >= tl.X+d.Width || p.Y >= tl.Y+d.Height {
			continue
		}
		if z := m.c.Decoration(key).ZIndex; z > layer {
			found, layer = key, z
		}
	}
	return found, found != ""
}

func (m *demoModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	title := styleTitle.Render("sortable") + styleDim.Render(fmt.Sprintf("  %s  %d items  offset %.0f", m.c.Phase(), m.c.Len(), m.view.offset))
	body := m.body()
	footer := []string{
		styleValue.Render(m.status),
		styleDim.Render(fmt.Sprintf("haptics light %d medium %d   + add  - remove  q quit", m.haptics.light, m.haptics.medium)),
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(body)
	for _, line := range footer {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// body draws the visible items, lowest layer first.
func (m *demoModel) body() string {
	rows := m.height - demoHeaderRows - demoFooterRows
	if rows <= 0 {
		return ""
	}
	cv := newCanvas(m.width, rows)
	origin := m.view.offset

	draw := func(pos sortable.Vector, d sortable.Dimensions, style cellStyle, dashed bool, label string) {
		x := int(math.Round(pos.X))
		y := int(math.Round(pos.Y - origin))
		cv.box(x, y, int(math.Round(d.Width)), int(math.Round(d.Height)), style, dashed, label)
	}

	if ind := m.c.DropIndicator(); ind.Visible && ind.Progress > 0 {
		draw(ind.Position, ind.Dimensions, styleIndicatorCell, true, "")
	}
	for _, layer := range []sortable.LayerState{sortable.LayerIdle, sortable.LayerIntermediate, sortable.LayerFocused} {
		for _, key := range m.c.Order() {
			dec := m.c.Decoration(key)
			if dec.ZIndex != layer {
				continue
			}
			pos, ok := m.c.ItemPosition(key)
			if !ok {
				continue
			}
			d, _ := m.c.ItemDimensions(key)
			style := styleItemCell
			switch {
			case dec.ZIndex == sortable.LayerFocused:
				style = styleActiveCell
			case dec.Opacity < 0.9:
				style = styleDimCell
			}
			if dec.Scale > 1.05 {
				pos.X--
				d.Width += 2
			}
			draw(pos, d, style, false, key)
		}
	}
	return cv.render()
}

type cellStyle uint8

const (
	styleBlankCell cellStyle = iota
	styleItemCell
	styleDimCell
	styleActiveCell
	styleIndicatorCell
)

var cellStyles = map[cellStyle]lipgloss.Style{
	styleBlankCell:     lipgloss.NewStyle(),
	styleItemCell:      lipgloss.NewStyle().Foreground(colorWhite),
	styleDimCell:       lipgloss.NewStyle().Foreground(colorDim),
	styleActiveCell:    lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	styleIndicatorCell: lipgloss.NewStyle().Foreground(colorGray),
}

// canvas is a grid of styled runes rendered one row at a time.
type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]cellStyle
}

func newCanvas(w, h int) *canvas {
	cv := &canvas{w: w, h: h, runes: make([][]rune, h), styles: make([][]cellStyle, h)}
	for y := range h {
		cv.runes[y] = []rune(strings.Repeat(" ", w))
		cv.styles[y] = make([]cellStyle, w)
	}
	return cv
}

func (cv *canvas) set(x, y int, r rune, s cellStyle) {
	if x < 0 || y < 0 || x >= cv.w || y >= cv.h {
		return
	}
	cv.runes[y][x] = r
	cv.styles[y][x] = s
}

func (cv *canvas) box(x, y, w, h int, s cellStyle, dashed bool, label string) {
	if w < 2 || h < 2 {
		return
	}
	horizontal, vertical := '─', '│'
	if dashed {
		horizontal, vertical = '┄', '┆'
	}
	for dy := range h {
		for dx := range w {
			r := ' '
			switch {
			case dy == 0 && dx == 0:
				r = '╭'
			case dy == 0 && dx == w-1:
				r = '╮'
			case dy == h-1 && dx == 0:
				r = '╰'
			case dy == h-1 && dx == w-1:
				r = '╯'
			case dy == 0 || dy == h-1:
				r = horizontal
			case dx == 0 || dx == w-1:
				r = vertical
			}
			cv.set(x+dx, y+dy, r, s)
		}
	}

	inner := []rune(label)
	if len(inner) > w-2 {
		inner = inner[:w-2]
	}
	start := x + (w-len(inner))/2
	for i, r := range inner {
		cv.set(start+i, y+h/2, r, s)
	}
}

func (cv *canvas) render() string {
	var b strings.Builder
	for y := range cv.h {
		if y > 0 {
			b.WriteByte('\n')
		}
		row, styles := cv.runes[y], cv.styles[y]
		for x := 0; x < cv.w; {
			end := x
			for end < cv.w && styles[end] == styles[x] {
				end++
			}
			b.WriteString(cellStyles[styles[x]].Render(string(row[x:end])))
			x = end
		}
	}
	return b.String()
}
