package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFill(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#2f80ed", color.NRGBA{R: 0x2f, G: 0x80, B: 0xed, A: 255}},
		{"#444", color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}},
		{"#FF000080", color.NRGBA{R: 255, A: 128}},
		{"rgb(255, 0, 0)", color.NRGBA{R: 255, A: 255}},
		{"RGB(100%, 0%, 50%)", color.NRGBA{R: 255, B: 128, A: 255}},
		{"rgba(0,0,255,0.5)", color.NRGBA{B: 255, A: 128}},
		{"rgb(300, -4, 12)", color.NRGBA{R: 255, B: 12, A: 255}},
		{"hsl(120, 100%, 50%)", color.NRGBA{G: 255, A: 255}},
		{"hsla(-120deg, 100%, 50%, 25%)", color.NRGBA{B: 255, A: 64}},
		{"red", color.NRGBA{R: 255, A: 255}},
		{" CornflowerBlue ", color.NRGBA{R: 100, G: 149, B: 237, A: 255}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFill(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFillRejects(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "#12345", "rgb(1,2)", "rgb(a,b,c)",
		"hsl(120, 100, 50)", "url(x.png)", "expression(alert(1))", "notacolor", "red; color: blue"} {
		_, err := parseFill(in)
		assert.ErrorIs(t, err, errBadColor, in)
	}
}

func TestCSSFill(t *testing.T) {
	assert.Equal(t, "#ff0000", cssFill(color.NRGBA{R: 255, A: 255}))
	assert.Equal(t, "rgba(0, 0, 255, 0.502)", cssFill(color.NRGBA{B: 255, A: 128}))
	assert.Equal(t, "#6495ed", hexFill("cornflowerblue"))
}
