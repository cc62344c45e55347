package mapping

import (
	"strings"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
)

// Fallback literals for locations the normalizer cannot place.
const (
	UnknownState   = "Unknown State"
	UnknownCountry = "Unknown Country"
	DefaultCountry = "India"

	// NCRRegion is the canonical region name every national-capital-region
	// city collapses to, regardless of the administrative state the source
	// record carries.
	NCRRegion = "Delhi NCR"
)

// MetroOverride forces a city onto a canonical region when its name or state
// contains the token. Longer tokens come first so "greater noida" wins over
// "noida" and "new delhi" over "delhi".
type MetroOverride struct {
	Token   string
	Region  string
	Country string
}

// MetroOverrides is the ordered metro-area override table.
var MetroOverrides = []MetroOverride{
	{Token: "greater noida", Region: NCRRegion, Country: DefaultCountry},
	{Token: "new delhi", Region: NCRRegion, Country: DefaultCountry},
	{Token: "delhi", Region: NCRRegion, Country: DefaultCountry},
	{Token: "gurugram", Region: NCRRegion, Country: DefaultCountry},
	{Token: "gurgaon", Region: NCRRegion, Country: DefaultCountry},
	{Token: "noida", Region: NCRRegion, Country: DefaultCountry},
	{Token: "ghaziabad", Region: NCRRegion, Country: DefaultCountry},
	{Token: "faridabad", Region: NCRRegion, Country: DefaultCountry},
}

// CityState is one row of the city-to-state inference table.
type CityState struct {
	City  string
	State string
}

// CityStateTable infers a state from a city name by substring match when no
// state reference resolves at all. Within each state the largest cities come
// first; the table is consulted in order.
var CityStateTable = []CityState{
	{City: "mumbai", State: "Maharashtra"},
	{City: "pune", State: "Maharashtra"},
	{City: "nagpur", State: "Maharashtra"},
	{City: "nashik", State: "Maharashtra"},
	{City: "bengaluru", State: "Karnataka"},
	{City: "bangalore", State: "Karnataka"},
	{City: "mysuru", State: "Karnataka"},
	{City: "mangalore", State: "Karnataka"},
	{City: "chennai", State: "Tamil Nadu"},
	{City: "coimbatore", State: "Tamil Nadu"},
	{City: "madurai", State: "Tamil Nadu"},
	{City: "vellore", State: "Tamil Nadu"},
	{City: "hyderabad", State: "Telangana"},
	{City: "kolkata", State: "West Bengal"},
	{City: "ahmedabad", State: "Gujarat"},
	{City: "surat", State: "Gujarat"},
	{City: "vadodara", State: "Gujarat"},
	{City: "jaipur", State: "Rajasthan"},
	{City: "udaipur", State: "Rajasthan"},
	{City: "lucknow", State: "Uttar Pradesh"},
	{City: "kanpur", State: "Uttar Pradesh"},
	{City: "varanasi", State: "Uttar Pradesh"},
	{City: "kochi", State: "Kerala"},
	{City: "thiruvananthapuram", State: "Kerala"},
	{City: "trivandrum", State: "Kerala"},
	{City: "kozhikode", State: "Kerala"},
	{City: "chandigarh", State: "Chandigarh"},
	{City: "mohali", State: "Punjab"},
	{City: "ludhiana", State: "Punjab"},
	{City: "amritsar", State: "Punjab"},
	{City: "bhubaneswar", State: "Odisha"},
	{City: "indore", State: "Madhya Pradesh"},
	{City: "bhopal", State: "Madhya Pradesh"},
	{City: "patna", State: "Bihar"},
	{City: "guwahati", State: "Assam"},
	{City: "dehradun", State: "Uttarakhand"},
	{City: "raipur", State: "Chhattisgarh"},
	{City: "visakhapatnam", State: "Andhra Pradesh"},
	{City: "vijayawada", State: "Andhra Pradesh"},
}

// NormalizeCity maps a city onto a canonical {name, state, country} triple.
// Metro-area overrides run first; otherwise existing values pass through with
// fallback defaults applied.
func NormalizeCity(city entities.City) entities.City {
	name := strings.ToLower(city.Name)
	state := strings.ToLower(city.State)

	for _, override := range MetroOverrides {
		if strings.Contains(name, override.Token) || strings.Contains(state, override.Token) {
			city.State = override.Region
			city.Country = override.Country
			return city
		}
	}

	if city.State == "" {
		city.State = UnknownState
	}
	if city.Country == "" {
		if city.State != UnknownState {
			city.Country = DefaultCountry
		} else {
			city.Country = UnknownCountry
		}
	}
	return city
}

// InferState looks up a state for a city name via the ordered inference
// table. Returns "" when no row matches.
func InferState(cityName string) string {
	name := strings.ToLower(cityName)
	if name == "" {
		return ""
	}
	for _, row := range CityStateTable {
		if strings.Contains(name, row.City) {
			return row.State
		}
	}
	return ""
}
