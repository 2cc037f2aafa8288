package models

// Stations is the fixed LRT station catalog per supported city. Station
// names on submissions are checked against this list; the store never
// trusts a client-supplied city/station pairing.
var Stations = map[City][]string{
	Edmonton: {
		"Clareview",
		"Belvedere",
		"Coliseum",
		"Stadium",
		"Churchill",
		"Central",
		"Bay/Enterprise Square",
		"Corona",
		"Grandin/Government Centre",
		"University",
		"Health Sciences",
		"McKernan/Belgravia",
		"South Campus/Fort Edmonton Park",
		"Southgate",
		"Century Park",
		"Mill Woods",
	},
	Calgary: {
		"Tuscany",
		"Crowfoot",
		"Dalhousie",
		"Brentwood",
		"University",
		"Banff Trail",
		"Lions Park",
		"SAIT/ACAD/Jubilee",
		"Sunnyside",
		"Centre Street",
		"City Hall",
		"Victoria Park/Stampede",
		"Erlton/Stampede",
		"39 Avenue",
		"Chinook",
		"Heritage",
		"Southland",
		"Anderson",
		"Canyon Meadows",
		"Fish Creek-Lacombe",
		"Somerset-Bridlewood",
	},
}

// ValidStation reports whether name belongs to the city's station catalog.
func ValidStation(city City, name string) bool {
	for _, station := range Stations[city] {
		if station == name {
			return true
		}
	}
	return false
}
