package sprayrequest

// knownCrops is the crop catalog offered by the request form. Membership is
// advisory: a request carrying an unlisted crop is stored as-is.
var knownCrops = []string{
	"Arecanut",
	"Bajra",
	"Banana",
	"Barley",
	"Black Pepper",
	"Brinjal",
	"Cabbage",
	"Cardamom",
	"Cashew Nut",
	"Castor seed",
	"Cauliflower",
	"Chilli",
	"Coconut",
	"Coffee",
	"Cotton",
	"Cucumber",
	"Garlic",
	"Ginger",
	"Gram",
	"Grapes",
	"Groundnut",
	"Jowar",
	"Jute",
	"Lentil",
	"Maize",
	"Mango",
	"Mustard",
	"Onion",
	"Orange",
	"Paddy",
	"Pea",
	"Potato",
	"Ragi",
	"Rapeseed",
	"Rice",
	"Rubber",
	"Safflower",
	"Soyabean",
	"Sugarcane",
	"Sunflower",
	"Tea",
	"Tomato",
	"Turmeric",
	"Wheat",
}

var knownCropSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(knownCrops))
	for _, c := range knownCrops {
		set[c] = struct{}{}
	}
	return set
}()

func KnownCrops() []string {
	out := make([]string, len(knownCrops))
	copy(out, knownCrops)
	return out
}

func IsKnownCrop(crop string) bool {
	_, ok := knownCropSet[crop]
	return ok
}
