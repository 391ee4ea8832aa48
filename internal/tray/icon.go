package tray

import (
	"time"

	"github.com/cpuguy83/monthpop/internal/calendar"
)

const iconSize = 22

// Icon colors (ARGB)
const (
	transparent = uint32(0x00000000)
	headerColor = uint32(0xFF1E3264) // Gradient start of the popup
	bodyColor   = uint32(0xFFF5F5F5)
	borderColor = uint32(0xFF3D3D3D)
	ringColor   = uint32(0xFF4A4A4A)
	dotColor    = uint32(0xFF404040)
	todayColor  = uint32(0xFF5078AA)
)

// Grid dot placement: one pixel per day on a two pixel pitch.
const (
	dotLeft  = 4
	dotTop   = 8
	dotPitch = 2
)

// iconData represents a single icon in the pixmap array.
type iconData struct {
	Width  int32
	Height int32
	Data   []byte
}

// iconPixmap returns the current icon pixmap. Callers hold t.mu.
func (t *Tray) iconPixmap() []iconData {
	return []iconData{
		{Width: iconSize, Height: iconSize, Data: drawMonthIcon(t.today)},
	}
}

// drawMonthIcon draws a 22x22 calendar page with a dot per day of today's
// month, laid out like the popup grid, and today's dot in the accent color.
func drawMonthIcon(today time.Time) []byte {
	pixels := make([]byte, iconSize*iconSize*4)

	// ARGB format, network byte order
	setPixel := func(x, y int, argb uint32) {
		if x < 0 || x >= iconSize || y < 0 || y >= iconSize {
			return
		}
		i := (y*iconSize + x) * 4
		pixels[i] = byte(argb >> 24)   // A
		pixels[i+1] = byte(argb >> 16) // R
		pixels[i+2] = byte(argb >> 8)  // G
		pixels[i+3] = byte(argb)       // B
	}

	fillRect := func(x1, y1, x2, y2 int, argb uint32) {
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				setPixel(x, y, argb)
			}
		}
	}

	fillRect(0, 0, iconSize-1, iconSize-1, transparent)

	// Body
	fillRect(3, 3, 18, 19, bodyColor)

	// Header bar
	fillRect(3, 3, 18, 6, headerColor)

	// Border
	for y := 4; y <= 19; y++ {
		setPixel(2, y, borderColor)
		setPixel(19, y, borderColor)
	}
	for x := 3; x <= 18; x++ {
		setPixel(x, 20, borderColor)
	}

	// Rings at top
	for _, x := range []int{6, 10, 14} {
		fillRect(x, 1, x+1, 3, ringColor)
	}

	for _, cell := range calendar.Grid(calendar.MonthOf(today), today) {
		color := dotColor
		if cell.Today {
			color = todayColor
		}
		x, y := dotPosition(cell)
		setPixel(x, y, color)
	}

	return pixels
}

func dotPosition(cell calendar.Cell) (x, y int) {
	return dotLeft + cell.Col*dotPitch, dotTop + cell.Row*dotPitch
}
