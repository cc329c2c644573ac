package taxonomy

// Country is one entry of the static West-African country table bundled with the
// application. The table is immutable reference data: it is never fetched and never
// mutated after load.
type Country struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Flag   string   `json:"flag"`
	Cities []string `json:"cities"`
}

// Countries maps ISO country code to its entry. 8 countries, 6 cities each.
var Countries = map[string]Country{
	"BJ": {
		Code:   "BJ",
		Name:   "Bénin",
		Flag:   "🇧🇯",
		Cities: []string{"Cotonou", "Porto-Novo", "Parakou", "Abomey-Calavi", "Djougou", "Bohicon"},
	},
	"TG": {
		Code:   "TG",
		Name:   "Togo",
		Flag:   "🇹🇬",
		Cities: []string{"Lomé", "Sokodé", "Kara", "Atakpamé", "Kpalimé", "Dapaong"},
	},
	"NG": {
		Code:   "NG",
		Name:   "Nigeria",
		Flag:   "🇳🇬",
		Cities: []string{"Lagos", "Abuja", "Kano", "Ibadan", "Port Harcourt", "Benin City"},
	},
	"GH": {
		Code:   "GH",
		Name:   "Ghana",
		Flag:   "🇬🇭",
		Cities: []string{"Accra", "Kumasi", "Tamale", "Takoradi", "Cape Coast", "Tema"},
	},
	"SN": {
		Code:   "SN",
		Name:   "Sénégal",
		Flag:   "🇸🇳",
		Cities: []string{"Dakar", "Thiès", "Saint-Louis", "Kaolack", "Ziguinchor", "Touba"},
	},
	"CI": {
		Code:   "CI",
		Name:   "Côte d'Ivoire",
		Flag:   "🇨🇮",
		Cities: []string{"Abidjan", "Yamoussoukro", "Bouaké", "Daloa", "San-Pédro", "Korhogo"},
	},
	"BF": {
		Code:   "BF",
		Name:   "Burkina Faso",
		Flag:   "🇧🇫",
		Cities: []string{"Ouagadougou", "Bobo-Dioulasso", "Koudougou", "Ouahigouya", "Banfora", "Dédougou"},
	},
	"ML": {
		Code:   "ML",
		Name:   "Mali",
		Flag:   "🇲🇱",
		Cities: []string{"Bamako", "Sikasso", "Mopti", "Koutiala", "Kayes", "Ségou"},
	},
}

// CountryList returns all countries in a stable order (by code).
func CountryList() []Country {
	codes := []string{"BF", "BJ", "CI", "GH", "ML", "NG", "SN", "TG"}
	out := make([]Country, 0, len(codes))
	for _, c := range codes {
		out = append(out, Countries[c])
	}
	return out
}

// CountryCities returns the city list for a country code, or nil for an unknown code.
func CountryCities(code string) []string {
	c, ok := Countries[code]
	if !ok {
		return nil
	}
	return c.Cities
}

// CountryName returns the display name for a code, falling back to the code itself.
func CountryName(code string) string {
	if c, ok := Countries[code]; ok {
		return c.Name
	}
	return code
}

// IsValidCity reports whether city belongs to the given country's city list.
func IsValidCity(countryCode, city string) bool {
	for _, c := range CountryCities(countryCode) {
		if c == city {
			return true
		}
	}
	return false
}
