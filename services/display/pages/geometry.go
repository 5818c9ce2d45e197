package pages

import (
	"math"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
)

const (
	layoutProbeText = "MMMM"
	paddingRatio    = 0.1
)

func layoutFor(surface Surface) common.Layout {
	_, textHeight := surface.MeasureText(layoutProbeText)

	return common.NewLayout(surface.Width(), surface.Height(), textHeight)
}

// valueRange returns the chart scale: the fixed bounds when set, otherwise the history extremes,
// padded by 10% of the range on each side. A degenerate range is widened by one unit on each side.
func valueRange(history []float64, low *float64, high *float64) (float64, float64, bool) {
	if (low == nil || high == nil) && len(history) == 0 {
		return 0, 0, false
	}

	valueMin, valueMax := 0.0, 0.0
	if low != nil {
		valueMin = *low
	} else {
		valueMin = minOf(history)
	}
	if high != nil {
		valueMax = *high
	} else {
		valueMax = maxOf(history)
	}

	padding := (valueMax - valueMin) * paddingRatio
	valueMax += padding
	valueMin -= padding

	if valueMax <= valueMin {
		valueMin, valueMax = valueMax-1, valueMin+1
	}

	return valueMin, valueMax, true
}

// mapToRow converts a value to a screen row, valueMax landing on top and valueMin on bottom
func mapToRow(value float64, valueMin float64, valueMax float64, top int, bottom int) float64 {
	return float64(bottom) - float64(bottom-top)*(value-valueMin)/(valueMax-valueMin)
}

// interpolate maps value from [low, high] onto [0, span]
func interpolate(value float64, low float64, high float64, span float64) float64 {
	return (value - low) / (high - low) * span
}

func minOf(values []float64) float64 {
	result := math.Inf(1)
	for _, v := range values {
		result = math.Min(result, v)
	}

	return result
}

func maxOf(values []float64) float64 {
	result := math.Inf(-1)
	for _, v := range values {
		result = math.Max(result, v)
	}

	return result
}

func round(value float64) int {
	return int(math.Round(value))
}
