package render

import (
	"fmt"
	"strings"
)

// LatLon is a decimal-degree coordinate pair.
type LatLon struct {
	Lat float64
	Lon float64
}

// CityCoords maps lowercased city names to coordinates for the decorative
// world map. Cities not listed here are silently omitted from the map.
var CityCoords = map[string]LatLon{
	"amsterdam":     {52.37, 4.90},
	"baltimore":     {39.29, -76.61},
	"bangalore":     {12.97, 77.59},
	"beijing":       {39.90, 116.41},
	"berlin":        {52.52, 13.40},
	"boston":        {42.36, -71.06},
	"canberra":      {-35.28, 149.13},
	"cape town":     {-33.92, 18.42},
	"chicago":       {41.88, -87.63},
	"garching":      {48.25, 11.65},
	"heidelberg":    {49.40, 8.69},
	"honolulu":      {21.31, -157.86},
	"london":        {51.51, -0.13},
	"madrid":        {40.42, -3.70},
	"melbourne":     {-37.81, 144.96},
	"mumbai":        {19.08, 72.88},
	"new york":      {40.71, -74.01},
	"paris":         {48.86, 2.35},
	"pasadena":      {34.15, -118.14},
	"phoenix":       {33.45, -112.07},
	"pune":          {18.52, 73.86},
	"santiago":      {-33.45, -70.67},
	"seattle":       {47.61, -122.33},
	"seoul":         {37.57, 126.98},
	"singapore":     {1.35, 103.82},
	"sydney":        {-33.87, 151.21},
	"tokyo":         {35.68, 139.69},
	"toronto":       {43.65, -79.38},
	"tucson":        {32.22, -110.97},
	"vienna":        {48.21, 16.37},
	"zurich":        {47.37, 8.54},
	"san francisco": {37.77, -122.42},
}

// CountryFlags maps lowercased country names to emoji flags.
var CountryFlags = map[string]string{
	"australia":      "\U0001F1E6\U0001F1FA",
	"austria":        "\U0001F1E6\U0001F1F9",
	"brazil":         "\U0001F1E7\U0001F1F7",
	"canada":         "\U0001F1E8\U0001F1E6",
	"chile":          "\U0001F1E8\U0001F1F1",
	"china":          "\U0001F1E8\U0001F1F3",
	"france":         "\U0001F1EB\U0001F1F7",
	"germany":        "\U0001F1E9\U0001F1EA",
	"india":          "\U0001F1EE\U0001F1F3",
	"italy":          "\U0001F1EE\U0001F1F9",
	"japan":          "\U0001F1EF\U0001F1F5",
	"mexico":         "\U0001F1F2\U0001F1FD",
	"netherlands":    "\U0001F1F3\U0001F1F1",
	"singapore":      "\U0001F1F8\U0001F1EC",
	"south africa":   "\U0001F1FF\U0001F1E6",
	"south korea":    "\U0001F1F0\U0001F1F7",
	"spain":          "\U0001F1EA\U0001F1F8",
	"switzerland":    "\U0001F1E8\U0001F1ED",
	"uk":             "\U0001F1EC\U0001F1E7",
	"united kingdom": "\U0001F1EC\U0001F1E7",
	"united states":  "\U0001F1FA\U0001F1F8",
	"usa":            "\U0001F1FA\U0001F1F8",
}

// CountryFlag returns the emoji flag for a country name, case-insensitively.
// Unknown countries yield the empty string.
func CountryFlag(country string) string {
	return CountryFlags[strings.ToLower(strings.TrimSpace(country))]
}

// Project maps a lon/lat pair onto an equirectangular canvas of the given
// width and height.
func Project(lon, lat, w, h float64) (x, y float64) {
	return (lon + 180) / 360 * w, (90 - lat) / 180 * h
}

// ContinentPath converts a (lon, lat) polygon into an SVG path string.
func ContinentPath(points [][2]float64, w, h float64) string {
	var b strings.Builder
	for i, p := range points {
		x, y := Project(p[0], p[1], w, h)
		if i == 0 {
			fmt.Fprintf(&b, "M%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&b, " L%.1f,%.1f", x, y)
		}
	}
	b.WriteString(" Z")
	return b.String()
}

// continents holds crude (lon, lat) outlines. Decorative only; accuracy is
// not a goal.
var continents = [][][2]float64{
	// North America
	{{-168, 66}, {-140, 70}, {-90, 72}, {-60, 60}, {-55, 48}, {-75, 40},
		{-80, 30}, {-97, 26}, {-105, 20}, {-95, 16}, {-85, 10}, {-105, 22},
		{-117, 33}, {-125, 42}, {-130, 55}, {-155, 60}},
	// South America
	{{-80, 10}, {-62, 10}, {-50, 0}, {-35, -8}, {-40, -22}, {-54, -35},
		{-62, -42}, {-70, -54}, {-75, -45}, {-72, -30}, {-70, -18}, {-78, -5}},
	// Europe
	{{-10, 36}, {0, 44}, {-5, 48}, {2, 52}, {8, 56}, {20, 60}, {30, 70},
		{40, 66}, {42, 48}, {28, 41}, {20, 40}, {10, 38}},
	// Africa
	{{-15, 30}, {0, 34}, {12, 34}, {32, 31}, {44, 11}, {51, 10}, {40, -10},
		{35, -22}, {20, -34}, {12, -18}, {8, 4}, {-10, 6}, {-17, 15}},
	// Asia
	{{42, 48}, {40, 66}, {70, 74}, {110, 76}, {140, 72}, {180, 66},
		{162, 58}, {142, 50}, {128, 38}, {122, 28}, {108, 16}, {104, 2},
		{96, 6}, {80, 8}, {72, 18}, {68, 24}, {56, 26}, {44, 30}},
	// Australia
	{{114, -22}, {124, -16}, {136, -12}, {146, -18}, {153, -28}, {146, -38},
		{132, -32}, {118, -34}},
}
