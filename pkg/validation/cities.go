package validation

import "strings"

// RomanianCities is the settlement whitelist used for the location field and
// its typeahead.
var RomanianCities = []string{
	"București", "Cluj-Napoca", "Timișoara", "Iași", "Constanța", "Craiova", "Brașov", "Galați",
	"Ploiești", "Oradea", "Bacău", "Pitești", "Arad", "Sibiu", "Târgu Mureș", "Baia Mare",
	"Buzău", "Botoșani", "Satu Mare", "Râmnicu Vâlcea", "Drobeta-Turnu Severin", "Suceava",
	"Piatra Neamț", "Târgu Jiu", "Tulcea", "Focșani", "Bistrița", "Reșița", "Alba Iulia",
	"Deva", "Hunedoara", "Slatina", "Vaslui", "Călărași", "Giurgiu", "Slobozia", "Zalău",
	"Turda", "Mediaș", "Onești", "Gheorgheni", "Pașcani", "Dej", "Reghin", "Roman",
	"Câmpina", "Caracal", "Făgăraș", "Lugoj", "Mangalia", "Moreni", "Oltenița", "Petroșani",
	"Râmnicu Sărat", "Roșiorii de Vede", "Săcele", "Sebeș", "Sfântu Gheorghe", "Tecuci",
	"Toplița", "Voluntari", "Pantelimon", "Popești-Leordeni", "Chiajna", "Otopeni",
	"Sector 1", "Sector 2", "Sector 3", "Sector 4", "Sector 5", "Sector 6",
	"Bragadiru", "Buftea", "Chitila", "Corbeanca", "Domnești", "Măgurele", "Mogoșoaia",
	"Cernica", "Glina", "Jilava", "Peris", "Snagov", "Stefanestii de Jos", "Tunari",
	"Florești", "Apahida", "Baciu", "Feleacu", "Gilău", "Jucu", "Kolozsvar",
	"Dumbrăvița", "Ghiroda", "Giroc", "Moșnița Nouă", "Pișchia", "Remetea Mare",
	"Rediu", "Miroslava", "Popricani", "Tomești", "Valea Lupului", "Ciurea",
	"Mamaia", "Eforie Nord", "Eforie Sud", "Neptun", "Olimp", "Costinești",
	"Predeal", "Sinaia", "Bușteni", "Azuga", "Câmpulung", "Mioveni",
	"Drobeta Turnu Severin", "Băilești", "Calafat", "Filiași", "Motru", "Segarcea",
}

const maxCitySuggestions = 10

// SuggestCities returns up to 10 cities whose name contains the partial
// string, case-insensitive. An empty partial yields no suggestions.
func SuggestCities(partial string) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" {
		return nil
	}

	var matches []string
	for _, city := range RomanianCities {
		if strings.Contains(strings.ToLower(city), partial) {
			matches = append(matches, city)
			if len(matches) == maxCitySuggestions {
				break
			}
		}
	}
	return matches
}
