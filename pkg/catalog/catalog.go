// Package catalog holds the static brand and city catalogs a session selects
// from. Profiles are fixed at build time; a selected profile never changes for
// the lifetime of a run.
package catalog

import (
	"errors"
	"strings"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

var ErrBrandNotFound = errors.New("brand not found in catalog")

// Cities lists the supported localities.
var Cities = []string{"Delhi", "Mumbai", "Bengaluru", "Kolkata", "Chennai", "Hyderabad"}

// CityStates maps each supported city to its state, required by the
// air-quality provider.
var CityStates = map[string]string{
	"Delhi":     "Delhi",
	"Mumbai":    "Maharashtra",
	"Bengaluru": "Karnataka",
	"Kolkata":   "West Bengal",
	"Chennai":   "Tamil Nadu",
	"Hyderabad": "Telangana",
}

var profiles = map[models.Industry]map[string]models.BrandProfile{
	models.IndustryFashion: {
		"h&m": {
			Industry:        models.IndustryFashion,
			BrandName:       "h&m",
			Voice:           "Trendy, affordable, inclusive, and fun. Focus on self-expression and seasonal styles. Use emojis. (e.g., #HM)",
			ProductExamples: []string{"graphic tees", "summer dresses", "denim jackets"},
		},
		"zara": {
			Industry:        models.IndustryFashion,
			BrandName:       "zara",
			Voice:           "High-fashion, sophisticated, minimalist, and fast-moving. Less emojis.",
			ProductExamples: []string{"blazers", "structured coats", "leather boots"},
		},
	},
	models.IndustryFood: {
		"zomato": {
			Industry:        models.IndustryFood,
			BrandName:       "zomato",
			Voice:           "Witty, playful, relatable, and very food-centric. Uses humor, puns.",
			ProductExamples: []string{"Biryani", "Pizza", "Restaurant deals"},
		},
		"swiggy": {
			Industry:        models.IndustryFood,
			BrandName:       "swiggy",
			Voice:           "Fast, reliable, and convenient. Focus on speed ('Delivered in minutes').",
			ProductExamples: []string{"Restaurant food", "Instamart groceries", "Snacks"},
		},
	},
	models.IndustryElectronics: {
		"croma": {
			Industry:        models.IndustryElectronics,
			BrandName:       "croma",
			Voice:           "Helpful, tech-savvy, and trustworthy. Focus on features, sales, offers.",
			ProductExamples: []string{"Smartphones", "Laptops", "Air Conditioners"},
		},
		"reliance digital": {
			Industry:        models.IndustryElectronics,
			BrandName:       "reliance digital",
			Voice:           "Wide range, best prices, and cutting-edge technology. Focus on big deals.",
			ProductExamples: []string{"New-launch TVs", "Gaming laptops", "Smart watches"},
		},
	},
}

// Industries returns every industry present in the catalog.
func Industries() []models.Industry {
	return []models.Industry{models.IndustryFashion, models.IndustryFood, models.IndustryElectronics}
}

// Brands returns the brand keys available for an industry.
func Brands(industry models.Industry) []string {
	byBrand, ok := profiles[industry]
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(byBrand))
	for key := range byBrand {
		keys = append(keys, key)
	}

	return keys
}

// Lookup resolves a (industry, brand key) pair to its profile. Brand keys are
// matched case-insensitively.
func Lookup(industry models.Industry, brand string) (models.BrandProfile, error) {
	byBrand, ok := profiles[industry]
	if !ok {
		return models.BrandProfile{}, ErrBrandNotFound
	}

	profile, ok := byBrand[strings.ToLower(brand)]
	if !ok {
		return models.BrandProfile{}, ErrBrandNotFound
	}

	return profile, nil
}

// StateFor resolves the city's state for the air-quality provider. The second
// return is false for cities missing from the mapping table.
func StateFor(city string) (string, bool) {
	state, ok := CityStates[city]

	return state, ok
}
