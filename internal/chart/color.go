package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Translucent converts an opaque color to its rgba form with FillAlpha,
// keeping the channels: "rgb(255, 99, 132)" becomes "rgba(255, 99, 132, 0.1)".
func Translucent(color string) (string, error) {
	c, err := ParseColor(color)
	if err != nil {
		return "", err
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b,
		strconv.FormatFloat(FillAlpha, 'f', -1, 64)), nil
}

// ParseColor accepts "rgb(r, g, b)" with 0-255 channels or a "#rrggbb" hex.
func ParseColor(color string) (colorful.Color, error) {
	s := strings.TrimSpace(color)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", color, err)
		}
		return c, nil
	}

	if !strings.HasPrefix(s, "rgb(") || !strings.HasSuffix(s, ")") {
		return colorful.Color{}, fmt.Errorf("unsupported color %q", color)
	}
	parts := strings.Split(s[len("rgb("):len(s)-1], ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("color %q needs three channels", color)
	}

	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return colorful.Color{}, fmt.Errorf("color %q has an invalid channel %q", color, strings.TrimSpace(p))
		}
		ch[i] = float64(v) / 255
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
