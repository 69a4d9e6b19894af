package ui

import "strings"

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// Sparkline renders data as one block character per sample, scaled
// between the series minimum and maximum. The result is unstyled so it can
// sit inside width-measured table cells.
func Sparkline(data []float64) string {
	if len(data) == 0 {
		return ""
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	var sb strings.Builder
	for _, v := range data {
		level := numLevels / 2
		if valueRange > 0 {
			level = int((v - minVal) / valueRange * float64(numLevels-1))
			level = max(0, min(level, numLevels-1))
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}
	return sb.String()
}
