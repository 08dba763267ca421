package profile

import "strings"

// countries backs the country selector. The ethnicity field historically held
// either one of these names or an ethnicity label.
var countries = []string{
	"Afghanistan", "Albania", "Algeria", "Argentina", "Armenia", "Australia",
	"Austria", "Azerbaijan", "Bangladesh", "Belarus", "Belgium", "Bolivia",
	"Bosnia and Herzegovina", "Brazil", "Bulgaria", "Cambodia", "Cameroon",
	"Canada", "Chile", "China", "Colombia", "Costa Rica", "Croatia", "Cuba",
	"Czech Republic", "Denmark", "Dominican Republic", "Ecuador", "Egypt",
	"El Salvador", "Estonia", "Ethiopia", "Fiji", "Finland", "France", "Georgia",
	"Germany", "Ghana", "Greece", "Guatemala", "Haiti", "Honduras", "Hungary",
	"Iceland", "India", "Indonesia", "Iran", "Iraq", "Ireland", "Israel",
	"Italy", "Jamaica", "Japan", "Jordan", "Kazakhstan", "Kenya", "Kuwait",
	"Laos", "Latvia", "Lebanon", "Lithuania", "Malaysia", "Mexico", "Mongolia",
	"Morocco", "Myanmar", "Nepal", "Netherlands", "New Zealand", "Nicaragua",
	"Nigeria", "Norway", "Pakistan", "Panama", "Paraguay", "Peru", "Philippines",
	"Poland", "Portugal", "Puerto Rico", "Qatar", "Romania", "Russia",
	"Samoa", "Saudi Arabia", "Senegal", "Serbia", "Singapore", "Slovakia",
	"Slovenia", "Somalia", "South Africa", "South Korea", "Spain", "Sri Lanka",
	"Sudan", "Sweden", "Switzerland", "Syria", "Taiwan", "Tanzania", "Thailand",
	"Tonga", "Trinidad and Tobago", "Tunisia", "Turkey", "Uganda", "Ukraine",
	"United Arab Emirates", "United Kingdom", "United States", "Uruguay",
	"Uzbekistan", "Venezuela", "Vietnam", "Yemen", "Zimbabwe",
}

var countrySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		set[c] = struct{}{}
	}
	return set
}()

// ethnicityCountries maps the retired ethnicity labels to the country shown
// in the selector. Labels with no sensible country ("Other", "Mixed") are
// deliberately absent.
var ethnicityCountries = map[string]string{
	"Asian":                               "China",
	"East Asian":                          "China",
	"Chinese":                             "China",
	"Japanese":                            "Japan",
	"Korean":                              "South Korea",
	"South Asian":                         "India",
	"Indian":                              "India",
	"Southeast Asian":                     "Philippines",
	"Filipino":                            "Philippines",
	"Vietnamese":                          "Vietnam",
	"White":                               "United States",
	"Caucasian":                           "United States",
	"African American":                    "United States",
	"Black or African American":           "United States",
	"Black":                               "United States",
	"American Indian or Alaska Native":    "United States",
	"Native American":                     "United States",
	"Hispanic or Latino":                  "Mexico",
	"Hispanic":                            "Mexico",
	"Latino":                              "Mexico",
	"Middle Eastern":                      "Saudi Arabia",
	"Middle Eastern or North African":     "Egypt",
	"Arab":                                "Saudi Arabia",
	"African":                             "Nigeria",
	"Native Hawaiian or Pacific Islander": "Samoa",
	"Pacific Islander":                    "Samoa",
}

func Countries() []string { return append([]string(nil), countries...) }

func IsCountry(name string) bool {
	_, ok := countrySet[name]
	return ok
}

// MapEthnicityToCountry returns the country to preselect for a stored
// ethnicity value: the value itself when it already names a country, the
// mapped country for a known ethnicity label, and "" otherwise. The result is
// for display only and must never be written back to the ethnicity field.
func MapEthnicityToCountry(ethnicity string) string {
	if ethnicity == "" {
		return ""
	}
	if IsCountry(ethnicity) {
		return ethnicity
	}
	if country, ok := ethnicityCountries[ethnicity]; ok {
		return country
	}
	if country, ok := ethnicityCountries[strings.TrimSpace(ethnicity)]; ok {
		return country
	}
	return ""
}
