package layout

import "math"

// FlexParams configures the flex engine.
type FlexParams struct {
	Direction      FlexDirection
	Wrap           FlexWrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent
	ColumnGap      float64
	RowGap         float64

	// Height, MinHeight and MaxHeight limit the container height.
	// Zero means no limit.
	Height    float64
	MinHeight float64
	MaxHeight float64
}

// Flex lays items out along a main axis, wrapping them into groups.
type Flex struct {
	params FlexParams
}

// NewFlex creates a flex engine.
func NewFlex(params FlexParams) *Flex {
	return &Flex{params: params}
}

// Params returns the engine parameters.
func (f *Flex) Params() FlexParams {
	return f.params
}

// Overrides implements Engine. Flex items keep their measured size.
func (f *Flex) Overrides(Dimensions, []string) map[string]Dimensions {
	return nil
}

// heightLimits resolves the container height bounds.
func (f *Flex) heightLimits() (lo, hi float64) {
	p := f.params
	lo = max(p.MinHeight, p.Height)
	hi = max(p.MaxHeight, p.Height)
	if hi == 0 {
		hi = math.Inf(1)
	}
	if p.MaxHeight > 0 {
		lo = min(lo, hi)
	}
	return lo, hi
}

// gaps returns the gap between items of a group and between groups.
func (f *Flex) gaps() (mainGap, crossGap float64) {
	if f.params.Direction.MainAxis() == AxisX {
		return f.params.ColumnGap, f.params.RowGap
	}
	return f.params.RowGap, f.params.ColumnGap
}

type flexGroup struct {
	keys  []string
	main  float64 // used main-axis extent, gaps included
	cross float64 // tallest cross-axis item
}

// Compute implements Engine.
func (f *Flex) Compute(in Input) (Result, bool) {
	if in.Container.Width < 0 {
		return Result{}, false
	}
	p := f.params
	mainAxis := p.Direction.MainAxis()
	crossAxis := mainAxis.Cross()
	mainGap, crossGap := f.gaps()
	minHeight, maxHeight := f.heightLimits()

	available := in.Container.Width
	if mainAxis == AxisY {
		available = maxHeight
	}

	groups, ok := f.group(in, mainAxis, mainGap, available)
	if !ok {
		return Result{}, false
	}

	totalCross := 0.0
	longestMain := 0.0
	for i, g := range groups {
		if i > 0 {
			totalCross += crossGap
		}
		totalCross += g.cross
		longestMain = max(longestMain, g.main)
	}

	var size Dimensions
	var crossExtent, mainExtent float64
	if mainAxis == AxisX {
		size = Dimensions{Width: in.Container.Width, Height: clamp(totalCross, minHeight, maxHeight)}
		crossExtent = size.Height
		mainExtent = size.Width
	} else {
		size = Dimensions{Width: in.Container.Width, Height: clamp(longestMain, minHeight, maxHeight)}
		crossExtent = size.Width
		mainExtent = size.Height
	}

	crossSizes := make([]float64, len(groups))
	for i, g := range groups {
		crossSizes[i] = g.cross
	}
	start, between, stretch := distributeContent(p.AlignContent, crossExtent-totalCross, len(groups))
	crossOffsets := make([]float64, len(groups))
	cursor := start
	for i := range groups {
		crossSizes[i] += stretch
		crossOffsets[i] = cursor
		cursor += crossSizes[i] + crossGap + between
	}

	positions := make(Positions, len(in.Order))
	keyToGroup := make(map[string]int, len(in.Order))
	itemGroups := make([][]string, len(groups))
	for gi, g := range groups {
		itemGroups[gi] = g.keys
		mainStart, mainBetween := distributeJustify(p.JustifyContent, mainExtent-g.main, len(g.keys))
		mainCursor := mainStart
		for _, key := range g.keys {
			d := in.Dimensions[key]
			itemMain := d.Along(mainAxis)
			itemCross := d.Along(crossAxis)

			crossPos := crossOffsets[gi]
			switch p.AlignItems {
			case AlignCenter:
				crossPos += (crossSizes[gi] - itemCross) / 2
			case AlignEnd:
				crossPos += crossSizes[gi] - itemCross
			}

			var pos Vector
			pos = pos.With(mainAxis, mainCursor).With(crossAxis, crossPos)
			positions[key] = pos
			keyToGroup[key] = gi
			mainCursor += itemMain + mainGap + mainBetween
		}
	}

	return Result{
		Positions: positions,
		Size:      size,
		MirrorX:   p.Direction == RowReverse,
		MirrorY:   p.Direction == ColumnReverse,
		Flex: &FlexResult{
			Direction:    p.Direction,
			Groups:       itemGroups,
			KeyToGroup:   keyToGroup,
			CrossOffsets: crossOffsets,
			CrossSizes:   crossSizes,
		},
	}, true
}

// group walks the order along the main axis and closes a group whenever the
// next item would overflow the available extent.
func (f *Flex) group(in Input, mainAxis Axis, mainGap, available float64) ([]flexGroup, bool) {
	crossAxis := mainAxis.Cross()
	var groups []flexGroup
	var current flexGroup
	for _, key := range in.Order {
		d, ok := in.Dimensions[key]
		if !ok || !d.Measured() {
			return nil, false
		}
		itemMain := d.Along(mainAxis)
		if len(current.keys) > 0 {
			if f.params.Wrap == Wrap && current.main+mainGap+itemMain > available+Epsilon {
				groups = append(groups, current)
				current = flexGroup{}
			} else {
				current.main += mainGap
			}
		}
		current.keys = append(current.keys, key)
		current.main += itemMain
		current.cross = max(current.cross, d.Along(crossAxis))
	}
	if len(current.keys) > 0 {
		groups = append(groups, current)
	}
	return groups, true
}

// distributeJustify returns the leading offset and the extra space added
// between neighbours for n items sharing slack.
func distributeJustify(j Justify, slack float64, n int) (start, between float64) {
	if n == 0 || slack <= 0 || math.IsInf(slack, 0) {
		return 0, 0
	}
	switch j {
	case JustifyEnd:
		return slack, 0
	case JustifyCenter:
		return slack / 2, 0
	case JustifySpaceBetween:
		if n > 1 {
			return 0, slack / float64(n-1)
		}
		return 0, 0
	case JustifySpaceAround:
		each := slack / float64(n)
		return each / 2, each
	case JustifySpaceEvenly:
		each := slack / float64(n+1)
		return each, each
	default:
		return 0, 0
	}
}

// distributeContent is distributeJustify for groups, plus stretch.
func distributeContent(a AlignContent, slack float64, n int) (start, between, stretch float64) {
	if n == 0 || slack <= 0 || math.IsInf(slack, 0) {
		return 0, 0, 0
	}
	switch a {
	case ContentEnd:
		return slack, 0, 0
	case ContentCenter:
		return slack / 2, 0, 0
	case ContentSpaceBetween:
		if n > 1 {
			return 0, slack / float64(n-1), 0
		}
		return 0, 0, 0
	case ContentSpaceAround:
		each := slack / float64(n)
		return each / 2, each, 0
	case ContentSpaceEvenly:
		each := slack / float64(n+1)
		return each, each, 0
	case ContentStretch:
		return 0, 0, slack / float64(n)
	default:
		return 0, 0, 0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
