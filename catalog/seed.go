package catalog

// Image URLs for the model renders served by the asset CDN.
const (
	brancaImageURL = "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/image-23xp1zJBLi1vGhQ9clKBP2RrGmVaHE.png"
	cestoImageURL  = "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/image-RKer55S6HScORQ4MMOmdGBc6Q9EZrj.png"
	cityImageURL   = "/images/city_model.png"
)

// Default returns the built-in catalog used until an external source loads.
// Prices are the published estimates; a source replacement overrides them.
func Default() *Snapshot {
	return &Snapshot{
		Models: []BinModel{
			{ID: "branca", Name: "BRANCA", Image: brancaImageURL},
			{ID: "cesto", Name: "CeStò", Image: cestoImageURL},
			{ID: "city", Name: "CITY", Image: cityImageURL},
		},
		Bins: []Bin{
			{ModelID: "branca", Size: Size50, Name: "BRANCA", BasePrice: 300, ProdDays: 180, BaseImage: brancaImageURL, MaxPerTruck: 125},
			{ModelID: "branca", Size: Size80, Name: "BRANCA", BasePrice: 360, ProdDays: 180, BaseImage: brancaImageURL, MaxPerTruck: 88},
			{ModelID: "branca", Size: Size110, Name: "BRANCA", BasePrice: 420, ProdDays: 90, BaseImage: brancaImageURL, MaxPerTruck: 88},
			{ModelID: "cesto", Size: Size50, Name: "CeStò", BasePrice: 253, ProdDays: 180, BaseImage: cestoImageURL, MaxPerTruck: 125},
			{ModelID: "cesto", Size: Size80, Name: "CeStò", BasePrice: 329, ProdDays: 180, BaseImage: cestoImageURL, MaxPerTruck: 88},
			{ModelID: "cesto", Size: Size110, Name: "CeStò", BasePrice: 383, ProdDays: 90, BaseImage: cestoImageURL, MaxPerTruck: 88},
			{ModelID: "city", Size: Size50, Name: "CITY", BasePrice: 300, ProdDays: 180, BaseImage: cityImageURL, MaxPerTruck: 125},
			{ModelID: "city", Size: Size80, Name: "CITY", BasePrice: 360, ProdDays: 180, BaseImage: cityImageURL, MaxPerTruck: 88},
			{ModelID: "city", Size: Size110, Name: "CITY", BasePrice: 420, ProdDays: 90, BaseImage: cityImageURL, MaxPerTruck: 88},
		},
		Options: []Option{
			{Code: "color", Label: "Colorazione personalizzata", Price: 5, Percentage: true},
			{Code: "v0", Label: "Materiale plastico ignifugo (Classe V0)", Price: 80},
			{Code: "light", Label: "Illuminazione LED", Price: 65},
			{Code: "ashtray", Label: "Posacenere", Price: 45},
			{Code: "waste_limiter", Label: "Limitatore di conferimento rifiuti", Price: 15},
			{Code: "bird_net", Label: "Rete anti-volatili", Price: 65},
			{Code: "dog_compartment", Label: "Scomp. deiezioni canine", Price: 48},
			{Code: "fill_sensor", Label: "Sensore riempimento (no SIM)", Price: 185},
			{Code: "custom_plate", Label: "Placca personalizzazione", Price: 15},
			{Code: "uhf_tag", Label: "Tag UHF", Price: 3.5},
			{Code: "pole_hook", Label: "Gancio adatt. palo", Price: 40, AvailableFor: []Size{Size50}},
		},
	}
}
