package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/neurosphere/internal/render"
)

// CallsToSVG converts one recorded frame to SVG. Every call gets its own
// gradient definition in user space so lines and discs keep their colour
// ramps.
func CallsToSVG(calls []render.Call, size int, background string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, size, size, size, size))
	if background != "" {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, background))
	}

	sb.WriteString("<defs>\n")
	for i, c := range calls {
		switch c.Kind {
		case render.CallLine:
			sb.WriteString(fmt.Sprintf(`<linearGradient id="g%d" gradientUnits="userSpaceOnUse" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f">
`, i, c.X0, c.Y0, c.X1, c.Y1))
			writeStops(&sb, c.Gradient)
			sb.WriteString("</linearGradient>\n")
		case render.CallCircle:
			sb.WriteString(fmt.Sprintf(`<radialGradient id="g%d" gradientUnits="userSpaceOnUse" cx="%.2f" cy="%.2f" r="%.2f">
`, i, c.X0, c.Y0, c.Radius))
			writeStops(&sb, c.Gradient)
			sb.WriteString("</radialGradient>\n")
		}
	}
	sb.WriteString("</defs>\n")

	for i, c := range calls {
		switch c.Kind {
		case render.CallLine:
			sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="url(#g%d)" stroke-width="%.2f" stroke-linecap="round"/>
`, c.X0, c.Y0, c.X1, c.Y1, i, c.Width))
		case render.CallCircle:
			sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="url(#g%d)"/>
`, c.X0, c.Y0, c.Radius, i))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeStops(sb *strings.Builder, g render.Gradient) {
	for _, s := range g.Stops {
		sb.WriteString(fmt.Sprintf(`<stop offset="%.3f" stop-color="%s" stop-opacity="%.3f"/>
`, s.Offset, s.Color.Hex(), s.Color.A*g.Alpha))
	}
}
