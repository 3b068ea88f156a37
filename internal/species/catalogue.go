package species

// DefaultID is the dichromatic baseline used when a species id is unknown.
const DefaultID = "largemouth-bass"

var (
	fresh    = SalinityRange{Min: 0, Max: 2, Typical: 0}
	brackish = SalinityRange{Min: 0, Max: 20, Typical: 5}
	coastal  = SalinityRange{Min: 10, Max: 36, Typical: 30}
	ocean    = SalinityRange{Min: 32, Max: 38, Typical: 35}
	runs     = SalinityRange{Min: 0, Max: 35, Typical: 15}
)

// catalogue is the built-in species table, in display order.
func catalogue() []Profile {
	return []Profile{
		// Freshwater
		{ID: "largemouth-bass", CommonName: "Largemouth Bass", Cardinality: Dichromatic, Environment: Freshwater, ConePeaksNM: []float64{535, 614}, Salinity: fresh},
		{ID: "smallmouth-bass", CommonName: "Smallmouth Bass", Cardinality: Dichromatic, Environment: Freshwater, ConePeaksNM: []float64{530, 610}, Salinity: fresh},
		{ID: "spotted-bass", CommonName: "Spotted Bass", Cardinality: Dichromatic, Environment: Freshwater, ConePeaksNM: []float64{532, 612}, Salinity: fresh},
		{ID: "walleye", CommonName: "Walleye", Cardinality: Dichromatic, Environment: Freshwater, ConePeaksNM: []float64{533, 605}, Salinity: fresh},
		{ID: "black-crappie", CommonName: "Black Crappie", Cardinality: Dichromatic, Environment: Freshwater, ConePeaksNM: []float64{530, 600}, Salinity: fresh},
		{ID: "bluegill", CommonName: "Bluegill", Cardinality: Trichromatic, Environment: Freshwater, ConePeaksNM: []float64{440, 535, 620}, Salinity: fresh},
		{ID: "yellow-perch", CommonName: "Yellow Perch", Cardinality: Trichromatic, Environment: Freshwater, ConePeaksNM: []float64{440, 530, 610}, Salinity: fresh},
		{ID: "northern-pike", CommonName: "Northern Pike", Cardinality: Trichromatic, Environment: Freshwater, ConePeaksNM: []float64{440, 525, 615}, Salinity: brackish},
		{ID: "muskellunge", CommonName: "Muskellunge", Cardinality: Trichromatic, Environment: Freshwater, ConePeaksNM: []float64{440, 525, 615}, Salinity: fresh},
		{ID: "channel-catfish", CommonName: "Channel Catfish", Cardinality: Trichromatic, Environment: Freshwater, ConePeaksNM: []float64{450, 540, 610}, Salinity: fresh},
		{ID: "brown-trout", CommonName: "Brown Trout", Cardinality: Tetrachromatic, Environment: Freshwater, ConePeaksNM: []float64{365, 440, 530, 600}, Salinity: fresh},
		{ID: "common-carp", CommonName: "Common Carp", Cardinality: Tetrachromatic, Environment: Freshwater, ConePeaksNM: []float64{380, 460, 530, 620}, Salinity: fresh},
		{ID: "guppy", CommonName: "Guppy", Cardinality: Pentachromatic, Environment: Freshwater, ConePeaksNM: []float64{359, 408, 465, 516, 572}, Salinity: brackish},

		// Saltwater
		{ID: "red-drum", CommonName: "Red Drum", Cardinality: Dichromatic, Environment: Saltwater, ConePeaksNM: []float64{480, 560}, Salinity: coastal},
		{ID: "spotted-seatrout", CommonName: "Spotted Seatrout", Cardinality: Dichromatic, Environment: Saltwater, ConePeaksNM: []float64{485, 555}, Salinity: coastal},
		{ID: "common-snook", CommonName: "Common Snook", Cardinality: Dichromatic, Environment: Saltwater, ConePeaksNM: []float64{490, 560}, Salinity: coastal},
		{ID: "bonefish", CommonName: "Bonefish", Cardinality: Dichromatic, Environment: Saltwater, ConePeaksNM: []float64{470, 525}, Salinity: ocean},
		{ID: "yellowfin-tuna", CommonName: "Yellowfin Tuna", Cardinality: Dichromatic, Environment: Saltwater, ConePeaksNM: []float64{470, 510}, Salinity: ocean},
		{ID: "gag-grouper", CommonName: "Gag Grouper", Cardinality: Dichromatic, Environment: Saltwater, ConePeaksNM: []float64{460, 530}, Salinity: ocean},
		{ID: "blue-marlin", CommonName: "Blue Marlin", Cardinality: Monochromatic, Environment: Saltwater, ConePeaksNM: []float64{485}, Salinity: ocean},
		{ID: "sailfish", CommonName: "Sailfish", Cardinality: Monochromatic, Environment: Saltwater, ConePeaksNM: []float64{490}, Salinity: ocean},
		{ID: "tarpon", CommonName: "Tarpon", Cardinality: Trichromatic, Environment: Saltwater, ConePeaksNM: []float64{440, 530, 580}, Salinity: coastal},
		{ID: "mahi-mahi", CommonName: "Mahi-Mahi", Cardinality: Trichromatic, Environment: Saltwater, ConePeaksNM: []float64{450, 500, 540}, Salinity: ocean},
		{ID: "red-snapper", CommonName: "Red Snapper", Cardinality: Trichromatic, Environment: Saltwater, ConePeaksNM: []float64{455, 520, 575}, Salinity: ocean},
		{ID: "great-barracuda", CommonName: "Great Barracuda", Cardinality: Trichromatic, Environment: Saltwater, ConePeaksNM: []float64{450, 525, 570}, Salinity: ocean},
		{ID: "damselfish", CommonName: "Ambon Damselfish", Cardinality: Tetrachromatic, Environment: Saltwater, ConePeaksNM: []float64{360, 470, 500, 520}, Salinity: ocean},

		// Anadromous
		{ID: "striped-bass", CommonName: "Striped Bass", Cardinality: Dichromatic, Environment: Anadromous, ConePeaksNM: []float64{530, 605}, Salinity: runs},
		{ID: "chinook-salmon", CommonName: "Chinook Salmon", Cardinality: Tetrachromatic, Environment: Anadromous, ConePeaksNM: []float64{365, 440, 530, 600}, Salinity: runs},
		{ID: "coho-salmon", CommonName: "Coho Salmon", Cardinality: Tetrachromatic, Environment: Anadromous, ConePeaksNM: []float64{370, 440, 530, 595}, Salinity: runs},
		{ID: "atlantic-salmon", CommonName: "Atlantic Salmon", Cardinality: Tetrachromatic, Environment: Anadromous, ConePeaksNM: []float64{360, 435, 530, 600}, Salinity: runs},
		{ID: "steelhead", CommonName: "Steelhead", Cardinality: Tetrachromatic, Environment: Anadromous, ConePeaksNM: []float64{365, 440, 530, 600}, Salinity: runs},
		{ID: "american-shad", CommonName: "American Shad", Cardinality: Pentachromatic, Environment: Anadromous, ConePeaksNM: []float64{360, 420, 470, 520, 570}, Salinity: runs},

		// Deep sea
		{ID: "swordfish", CommonName: "Swordfish", Cardinality: Monochromatic, Environment: DeepSea, ConePeaksNM: []float64{485}, Salinity: ocean},
		{ID: "lanternfish", CommonName: "Lanternfish", Cardinality: Monochromatic, Environment: DeepSea, ConePeaksNM: []float64{480}, Salinity: ocean},
		{ID: "hatchetfish", CommonName: "Silver Hatchetfish", Cardinality: Monochromatic, Environment: DeepSea, ConePeaksNM: []float64{475}, Salinity: ocean},
		{ID: "stoplight-loosejaw", CommonName: "Stoplight Loosejaw", Cardinality: Dichromatic, Environment: DeepSea, ConePeaksNM: []float64{515, 540}, Salinity: ocean},
	}
}
