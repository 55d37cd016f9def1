package utils

import (
	"image/color"
	"strconv"
	"strings"
)

// HexToRGBA converts a color expressed as a hexadecimal string
// to color.NRGBA. Malformed values fall back to opaque red.
func HexToRGBA(hex string) color.NRGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{
			hex[0], hex[0],
			hex[1], hex[1],
			hex[2], hex[2],
		})
	}
	if len(hex) != 6 {
		return color.NRGBA{R: 0xff, A: 0xff}
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{R: 0xff, A: 0xff}
	}
	return color.NRGBA{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
		A: 0xff,
	}
}
