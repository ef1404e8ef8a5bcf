// Package icons provides the vector icon markup the delimiter tool hands to
// the host: the toolbox icon plus the per-width and per-thickness settings
// icons. Everything here is a pure lookup over fixed tables.
package icons

import "fmt"

// Toolbox is the icon shown in the host's toolbox next to the tool title.
const Toolbox = `<svg width="19" height="19" viewBox="0 0 19 19" xmlns="http://www.w3.org/2000/svg"><path d="M3 9.5h13" stroke="currentColor" stroke-width="2" stroke-linecap="round"/><circle cx="5" cy="4" r="1" fill="currentColor"/><circle cx="9.5" cy="4" r="1" fill="currentColor"/><circle cx="14" cy="4" r="1" fill="currentColor"/></svg>`

// Star is the settings icon for the star style.
const Star = `<svg width="38" height="24" viewBox="0 0 38 24" xmlns="http://www.w3.org/2000/svg"><text x="19" y="16" text-anchor="middle" font-size="12" fill="currentColor">***</text></svg>`

// Dash is the settings icon for the dash style.
const Dash = `<svg width="38" height="24" viewBox="0 0 38 24" xmlns="http://www.w3.org/2000/svg"><path d="M10 12h4m4 0h4m4 0h4" stroke="currentColor" stroke-width="2" stroke-linecap="round"/></svg>`

// lineWidthEndpoints maps each supported width percent to the x coordinates
// of the segment drawn in the settings icon. The segment grows with the
// width so the icon previews the relative rule length.
var lineWidthEndpoints = map[int][2]int{
	8:   {16, 22},
	15:  {14, 24},
	25:  {12, 26},
	35:  {10, 28},
	50:  {8, 30},
	60:  {6, 32},
	100: {4, 34},
}

// LineWidthEndpoints returns the icon segment endpoints for a width percent.
// Widths outside the supported set use the 100% segment.
func LineWidthEndpoints(width int) (x1, x2 int) {
	pair, ok := lineWidthEndpoints[width]
	if !ok {
		pair = lineWidthEndpoints[100]
	}
	return pair[0], pair[1]
}

// LineWidth returns the settings icon for a line width entry.
func LineWidth(width int) string {
	x1, x2 := LineWidthEndpoints(width)
	return fmt.Sprintf(`<svg width="38" height="24" viewBox="0 0 38 24" xmlns="http://www.w3.org/2000/svg"><line x1="%d" y1="12" x2="%d" y2="12" stroke="currentColor" stroke-width="2" stroke-linecap="round"/></svg>`, x1, x2)
}

// Thickness returns the settings icon for a thickness entry; the stroke
// weight encodes the value.
func Thickness(thickness int) string {
	return fmt.Sprintf(`<svg width="38" height="24" viewBox="0 0 38 24" xmlns="http://www.w3.org/2000/svg"><line x1="8" y1="12" x2="30" y2="12" stroke="currentColor" stroke-width="%d" stroke-linecap="round"/></svg>`, thickness)
}
