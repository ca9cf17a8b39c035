package score

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel color
type RGB struct {
	R, G, B uint8
}

// String renders the color as rgb(r, g, b)
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb or #rgb
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// DefaultMax is the top of the overall score scale
const DefaultMax = 10.0

var (
	DefaultLow     = RGB{R: 0xd7, G: 0x30, B: 0x27}
	DefaultHigh    = RGB{R: 0x1a, G: 0x98, B: 0x50}
	DefaultNeutral = RGB{R: 0xcc, G: 0xcc, B: 0xcc}
)

// Gradient interpolates linearly between two colors
type Gradient struct {
	Low     RGB
	High    RGB
	Neutral RGB // Used for entities without a score
}

// DefaultGradient returns the red-to-green gradient
func DefaultGradient() Gradient {
	return Gradient{Low: DefaultLow, High: DefaultHigh, Neutral: DefaultNeutral}
}

// NewGradient builds a gradient from hex strings
func NewGradient(low, high, neutral string) (Gradient, error) {
	var g Gradient
	var err error
	if g.Low, err = ParseHex(low); err != nil {
		return Gradient{}, err
	}
	if g.High, err = ParseHex(high); err != nil {
		return Gradient{}, err
	}
	if g.Neutral, err = ParseHex(neutral); err != nil {
		return Gradient{}, err
	}
	return g, nil
}

// Color maps score/max onto the gradient. The factor is clamped to 0-1;
// a non-positive max or NaN score yields the low endpoint.
func (g Gradient) Color(score, max float64) RGB {
	t := 0.0
	if max > 0 && !math.IsNaN(score) {
		t = clamp(score/max, 0, 1)
	}
	return RGB{
		R: lerp(g.Low.R, g.High.R, t),
		G: lerp(g.Low.G, g.High.G, t),
		B: lerp(g.Low.B, g.High.B, t),
	}
}

// ColorOrNeutral is Color for a present score and Neutral for nil
func (g Gradient) ColorOrNeutral(score *float64, max float64) RGB {
	if score == nil {
		return g.Neutral
	}
	return g.Color(*score, max)
}

// ScoreToColor maps a score on the default gradient
func ScoreToColor(score, max float64) RGB {
	return DefaultGradient().Color(score, max)
}

// ScoreToHex is ScoreToColor rendered as #rrggbb
func ScoreToHex(score, max float64) string {
	return ScoreToColor(score, max).Hex()
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
