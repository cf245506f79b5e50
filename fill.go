package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var errBadColor = errors.New("not a color")

// parseFill reads a fill color: #rgb, #rrggbb, #rrggbbaa, rgb(), rgba(),
// hsl(), hsla(), a CSS color name or "transparent". Every renderer goes
// through it so they agree on what a fill looks like.
func parseFill(s string) (color.NRGBA, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case str == "":
		return color.NRGBA{}, errBadColor
	case str[0] == '#':
		return parseHexFill(str)
	case str == "transparent":
		return color.NRGBA{}, nil
	}

	if name, args, ok := functionArgs(str); ok {
		switch name {
		case "rgb", "rgba":
			return parseRGBFill(args)
		case "hsl", "hsla":
			return parseHSLFill(args)
		}
		return color.NRGBA{}, fmt.Errorf("%w: unknown function %q", errBadColor, name)
	}

	if c, ok := colornames.Map[str]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
}

func parseHexFill(str string) (color.NRGBA, error) {
	digits := str[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return color.NRGBA{}, fmt.Errorf("%w: %q", errBadColor, str)
		}
	}
	alpha := uint8(255)
	switch len(digits) {
	case 3, 6:
	case 8:
		a, _ := strconv.ParseUint(digits[6:], 16, 8)
		alpha = uint8(a)
		str = str[:7]
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", errBadColor, str)
	}
	c, err := colorful.Hex(str)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %v", errBadColor, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// functionArgs splits "name(a, b, c)" into its name and arguments.
func functionArgs(str string) (string, []string, bool) {
	open := strings.IndexByte(str, '(')
	if open <= 0 || !strings.HasSuffix(str, ")") {
		return "", nil, false
	}
	args := strings.Split(str[open+1:len(str)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return strings.TrimSpace(str[:open]), args, true
}

func parseRGBFill(args []string) (color.NRGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: rgb wants 3 or 4 values", errBadColor)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := channel(args[i], 255)
		if err != nil {
			return color.NRGBA{}, err
		}
		rgb[i] = uint8(math.Round(v))
	}
	alpha, err := alphaArg(args)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}, nil
}

func parseHSLFill(args []string) (color.NRGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: hsl wants 3 or 4 values", errBadColor)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return color.NRGBA{}, fmt.Errorf("%w: hue %q", errBadColor, args[0])
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	var sl [2]float64
	for i, arg := range args[1:3] {
		if !strings.HasSuffix(arg, "%") {
			return color.NRGBA{}, fmt.Errorf("%w: %q is not a percentage", errBadColor, arg)
		}
		v, err := channel(arg, 1)
		if err != nil {
			return color.NRGBA{}, err
		}
		sl[i] = v
	}
	alpha, err := alphaArg(args)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := colorful.Hsl(h, sl[0], sl[1]).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// channel reads a number or percentage and scales it into [0, full].
func channel(arg string, full float64) (float64, error) {
	pct := strings.HasSuffix(arg, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: value %q", errBadColor, arg)
	}
	if pct {
		v = v / 100 * full
	}
	return clamp(v, 0, full), nil
}

func alphaArg(args []string) (uint8, error) {
	if len(args) < 4 {
		return 255, nil
	}
	arg := args[3]
	full := 1.0
	if strings.HasSuffix(arg, "%") {
		full = 100
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: alpha %q", errBadColor, arg)
	}
	return uint8(math.Round(clamp(v/full, 0, 1) * 255)), nil
}

// cssFill is the canonical CSS form of c.
func cssFill(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B,
		strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64))
}

// hexFill is the opaque #rrggbb form used by the terminal renderer.
func hexFill(fill string) string {
	c, err := parseFill(fill)
	if err != nil {
		return "#000000"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
