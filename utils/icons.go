package utils

import (
	"fmt"
	"html/template"
)

const (
	IconSpeedometer = "speedometer"
	IconPieChart    = "pie-chart"
	IconActivity    = "activity"
	IconTag         = "tag"
	IconBarChart    = "bar-chart"
	IconHourglass   = "hourglass"
)

// svg bodies, drawn on a 24x24 viewbox with the stroke color applied to the outer element
var iconPaths = map[string]string{
	IconSpeedometer: `<path d="M12 14l4-4"/><path d="M3.34 19a10 10 0 1 1 17.32 0"/>`,
	IconPieChart:    `<path d="M21.21 15.89A10 10 0 1 1 8 2.83"/><path d="M22 12A10 10 0 0 0 12 2v10z"/>`,
	IconActivity:    `<polyline points="22 12 18 12 15 21 9 3 6 12 2 12"/>`,
	IconTag:         `<path d="M20.59 13.41l-7.17 7.17a2 2 0 0 1-2.83 0L2 12V2h10l8.59 8.59a2 2 0 0 1 0 2.82z"/><line x1="7" y1="7" x2="7.01" y2="7"/>`,
	IconBarChart:    `<line x1="12" y1="20" x2="12" y2="10"/><line x1="18" y1="20" x2="18" y2="4"/><line x1="6" y1="20" x2="6" y2="16"/>`,
	IconHourglass:   `<path d="M5 22h14"/><path d="M5 2h14"/><path d="M17 22v-4.17a2 2 0 0 0-.59-1.42L12 12l-4.41 4.41A2 2 0 0 0 7 17.83V22"/><path d="M7 2v4.17a2 2 0 0 0 .59 1.42L12 12l4.41-4.41A2 2 0 0 0 17 6.17V2"/>`,
}

// FormatIcon renders a named icon. Unknown names render nothing.
func FormatIcon(name string, classname string, stroke string) template.HTML {
	paths, found := iconPaths[name]
	if !found {
		return template.HTML("")
	}
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="%s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="%s">%s</svg>`,
		template.HTMLEscapeString(stroke), template.HTMLEscapeString(classname), paths,
	))
}
