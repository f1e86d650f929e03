package render

import (
	"fmt"
	"math"
	"strings"
)

// RGBPixel is one cell of the rasterized playfield.
type RGBPixel struct {
	R, G, B uint8
}

// trailPalette colors trails by their index, wrapping around when a room
// holds more players than colors.
var trailPalette = []RGBPixel{
	{R: 255, G: 80, B: 80},
	{R: 80, G: 255, B: 80},
	{R: 80, G: 160, B: 255},
	{R: 255, G: 220, B: 80},
	{R: 255, G: 80, B: 255},
	{R: 80, G: 255, B: 255},
}

// RasterizeTrails plots world-coordinate trails onto a pixel grid. Each
// trail is a polyline of [x, y] points in world units; the grid maps the
// whole playfield, so a point at (worldWidth, worldHeight) lands on the
// bottom-right cell.
func RasterizeTrails(trails [][][2]float64, worldWidth, worldHeight float64, cols, rows int) [][]RGBPixel {
	pixels := make([][]RGBPixel, rows)
	for y := range pixels {
		pixels[y] = make([]RGBPixel, cols)
	}

	scaleX := float64(cols-1) / worldWidth
	scaleY := float64(rows-1) / worldHeight

	for i, trail := range trails {
		color := trailPalette[i%len(trailPalette)]
		for _, point := range trail {
			x := int(math.Round(point[0] * scaleX))
			y := int(math.Round(point[1] * scaleY))
			if x < 0 || x >= cols || y < 0 || y >= rows {
				continue
			}
			pixels[y][x] = color
		}
	}

	return pixels
}

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Dividing factor to convert RGB color space to grayscale
const grayFactor = 255.0 / float64(len(asciiChars)-1)

// rgbToGray converts an RGB pixel to grayscale using the luminosity method
func rgbToGray(pixel RGBPixel) uint8 {
	gray := 0.3*float64(pixel.R) + 0.59*float64(pixel.G) + 0.11*float64(pixel.B)
	return uint8(gray)
}

// grayToAscii maps a grayscale value to an ASCII character
func grayToAscii(gray uint8) string {
	index := int(float64(gray) / grayFactor)
	return string(asciiChars[index])
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// RenderToASCII converts a pixel grid to a colored ASCII string. Cells are
// doubled horizontally so the playfield keeps its aspect ratio in a
// terminal's tall character cells.
func RenderToASCII(pixels [][]RGBPixel) string {
	var ascii strings.Builder
	for _, row := range pixels {
		for _, pixel := range row {
			char := grayToAscii(rgbToGray(pixel))
			cell := rgbToAnsi(pixel) + char + char + "\033[0m"
			ascii.WriteString(cell)
		}
		ascii.WriteString("\n")
	}
	return ascii.String()
}
