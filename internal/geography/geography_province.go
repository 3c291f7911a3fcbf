package geography

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	ProvincePunjab      = "Punjab"
	ProvinceSindh       = "Sindh"
	ProvinceKPK         = "Khyber Pakhtunkhwa"
	ProvinceBalochistan = "Balochistan"
	ProvinceGilgit      = "Gilgit-Baltistan"
	ProvinceAJK         = "Azad Kashmir"
	// ProvinceFederal is the label stored for the Islamabad Capital Territory.
	ProvinceFederal = "Fana"

	DefaultProvince = ProvincePunjab
)

type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// Region is one entry of the coordinate lookup. Boxes overlap, so regions
// are tried in ascending Priority and the first containing box wins.
type Region struct {
	Priority int
	Province string
	Box      BoundingBox
}

var regions = []Region{
	{Priority: 1, Province: ProvinceFederal, Box: BoundingBox{MinLat: 33.50, MaxLat: 33.80, MinLng: 72.80, MaxLng: 73.40}},
	{Priority: 2, Province: ProvinceGilgit, Box: BoundingBox{MinLat: 34.50, MaxLat: 37.10, MinLng: 72.50, MaxLng: 77.85}},
	{Priority: 3, Province: ProvinceAJK, Box: BoundingBox{MinLat: 32.90, MaxLat: 35.10, MinLng: 73.40, MaxLng: 74.80}},
	{Priority: 4, Province: ProvinceKPK, Box: BoundingBox{MinLat: 31.90, MaxLat: 36.50, MinLng: 69.20, MaxLng: 72.90}},
	{Priority: 5, Province: ProvinceSindh, Box: BoundingBox{MinLat: 23.60, MaxLat: 28.50, MinLng: 66.60, MaxLng: 71.10}},
	{Priority: 6, Province: ProvinceBalochistan, Box: BoundingBox{MinLat: 24.80, MaxLat: 32.10, MinLng: 60.80, MaxLng: 70.30}},
	{Priority: 7, Province: ProvincePunjab, Box: BoundingBox{MinLat: 27.70, MaxLat: 34.00, MinLng: 69.30, MaxLng: 75.40}},
}

var knownCities = map[string]string{
	"karachi":          ProvinceSindh,
	"hyderabad":        ProvinceSindh,
	"sukkur":           ProvinceSindh,
	"larkana":          ProvinceSindh,
	"nawabshah":        ProvinceSindh,
	"mirpur khas":      ProvinceSindh,
	"jacobabad":        ProvinceSindh,
	"shikarpur":        ProvinceSindh,
	"khairpur":         ProvinceSindh,
	"thatta":           ProvinceSindh,
	"badin":            ProvinceSindh,
	"lahore":           ProvincePunjab,
	"faisalabad":       ProvincePunjab,
	"rawalpindi":       ProvincePunjab,
	"multan":           ProvincePunjab,
	"gujranwala":       ProvincePunjab,
	"sialkot":          ProvincePunjab,
	"bahawalpur":       ProvincePunjab,
	"sargodha":         ProvincePunjab,
	"sheikhupura":      ProvincePunjab,
	"jhang":            ProvincePunjab,
	"gujrat":           ProvincePunjab,
	"sahiwal":          ProvincePunjab,
	"kasur":            ProvincePunjab,
	"rahim yar khan":   ProvincePunjab,
	"dera ghazi khan":  ProvincePunjab,
	"okara":            ProvincePunjab,
	"chiniot":          ProvincePunjab,
	"attock":           ProvincePunjab,
	"jhelum":           ProvincePunjab,
	"peshawar":         ProvinceKPK,
	"mardan":           ProvinceKPK,
	"abbottabad":       ProvinceKPK,
	"swat":             ProvinceKPK,
	"mingora":          ProvinceKPK,
	"kohat":            ProvinceKPK,
	"dera ismail khan": ProvinceKPK,
	"bannu":            ProvinceKPK,
	"mansehra":         ProvinceKPK,
	"nowshera":         ProvinceKPK,
	"charsadda":        ProvinceKPK,
	"quetta":           ProvinceBalochistan,
	"gwadar":           ProvinceBalochistan,
	"turbat":           ProvinceBalochistan,
	"khuzdar":          ProvinceBalochistan,
	"sibi":             ProvinceBalochistan,
	"zhob":             ProvinceBalochistan,
	"hub":              ProvinceBalochistan,
	"gilgit":           ProvinceGilgit,
	"skardu":           ProvinceGilgit,
	"hunza":            ProvinceGilgit,
	"muzaffarabad":     ProvinceAJK,
	"mirpur":           ProvinceAJK,
	"kotli":            ProvinceAJK,
	"islamabad":        ProvinceFederal,
}

// normalizeCityName folds case and collapses inner whitespace.
func normalizeCityName(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// Regions returns the coordinate lookup in evaluation order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// ResolveProvince names the province of a city. A known city name wins over
// coordinates. Without coordinates the default province is returned.
func ResolveProvince(name string, lat, lng *float64) string {
	if province, ok := knownCities[normalizeCityName(name)]; ok {
		return province
	}
	if lat == nil || lng == nil {
		return DefaultProvince
	}
	for _, r := range regions {
		if r.Box.Contains(*lat, *lng) {
			return r.Province
		}
	}
	return DefaultProvince
}
