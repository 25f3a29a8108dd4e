package render

import (
	"fmt"
	"sort"
	"strings"

	"talkgen/internal/model"
)

const (
	mapWidth  = 900.0
	mapHeight = 450.0

	dotBaseRadius = 3
	dotMaxRadius  = 8
)

// WorldMap renders a decorative equirectangular SVG map with one dot per
// visited city. Cities missing from CityCoords are silently omitted; the
// dot radius grows with repeat visits up to a fixed cap. Returns the empty
// string when no talk has a mappable city.
func WorldMap(talks []model.Talk) string {
	counts := map[string]int{}
	labels := map[string]string{}
	for _, t := range talks {
		key := strings.ToLower(t.City)
		if _, known := CityCoords[key]; !known {
			continue
		}
		counts[key]++
		if _, seen := labels[key]; !seen {
			labels[key] = t.City
		}
	}
	if len(counts) == 0 {
		return ""
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg class="world-map" viewBox="0 0 %.0f %.0f" role="img" aria-label="Map of talk locations">`+"\n",
		mapWidth, mapHeight)
	for _, outline := range continents {
		fmt.Fprintf(&b, `<path class="map-land" d="%s"/>`+"\n", ContinentPath(outline, mapWidth, mapHeight))
	}
	for _, key := range keys {
		c := CityCoords[key]
		x, y := Project(c.Lon, c.Lat, mapWidth, mapHeight)
		r := dotBaseRadius + counts[key]
		if r > dotMaxRadius {
			r = dotMaxRadius
		}
		label := labels[key]
		if counts[key] > 1 {
			label = fmt.Sprintf("%s (%d)", label, counts[key])
		}
		fmt.Fprintf(&b, `<circle class="map-dot" cx="%.1f" cy="%.1f" r="%d"><title>%s</title></circle>`+"\n",
			x, y, r, label)
	}
	b.WriteString("</svg>")
	return b.String()
}
