package common

// chartMargin is the horizontal space reserved around the plotted samples
const chartMargin = 4

// pixelsPerSample is the column pitch of chart samples
const pixelsPerSample = 2

// Layout holds the screen geometry derived from the panel size and the font metrics
type Layout struct {
	Width        int
	Height       int
	ScreenLeft   int
	ScreenTop    int
	ScreenRight  int
	ScreenBottom int
	TextHeight   int
	ChartTop     int
	ChartBottom  int
}

// NewLayout computes the layout for a panel of the given size and a font of the given line height
func NewLayout(width int, height int, textHeight int) Layout {
	return Layout{
		Width:        width,
		Height:       height,
		ScreenLeft:   0,
		ScreenTop:    0,
		ScreenRight:  width - 1,
		ScreenBottom: height - 1,
		TextHeight:   textHeight,
		ChartTop:     textHeight + 2,
		ChartBottom:  height - 1,
	}
}

// ChartCapacity returns how many samples fit horizontally in a chart for the provided display width
func ChartCapacity(width int) int {
	capacity := (width - chartMargin) / pixelsPerSample
	if capacity < 1 {
		return 1
	}

	return capacity
}
