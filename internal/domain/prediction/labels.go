package prediction

// ClassNames lists the diseases the model was trained on, in output-layer
// order. The index into the probability vector is the index here.
var ClassNames = []string{
	"Anthracnose", "Bacterial Canker", "Cutting Weevil", "Die Back", "Gall Midge",
	"Healthy", "Powdery Mildew", "Sooty Mold", "Black Mold Rot", "Stem End Rot",
}

// FallbackTreatment is returned for classes without curated treatment text.
const FallbackTreatment = "No treatment information available."

var treatmentSuggestions = map[string]string{
	"Anthracnose":      "The diseased twigs should be pruned and burnt along with fallen leaves. Spraying twice with Carbendazim (Bavistin 0.1%) at 15 days interval during flowering controls blossom infection.",
	"Bacterial Canker": "Three sprays of Streptocycline (0.01%) or Agrimycin-100 (0.01%) after first visual symptom at 10 day intervals are effective in controlling the disease.",
	"Cutting Weevil":   "Use recommended insecticides and remove infested plant material.",
	"Die Back":         "Pruning of the diseased twigs 2-3 inches below the affected portion and spraying Copper Oxychloride (0.3%) on infected trees controls the disease.",
	"Gall Midge":       "Remove and destroy infested fruits; use appropriate insecticides.",
	"Healthy":          "No treatment needed. Maintain good agricultural practices.",
	"Powdery Mildew":   "Alternate spraying of Wettable sulphur 0.2 per cent at 15 days interval are recommended for effective control of the disease.",
	"Sooty Mold":       "Pruning of affected branches and their prompt destruction followed by spraying of Wettasulf (0.2%) helps to control the disease.",
}

// TreatmentFor returns the curated treatment text for a disease label.
func TreatmentFor(disease string) string {
	if t, ok := treatmentSuggestions[disease]; ok {
		return t
	}
	return FallbackTreatment
}

// TreatmentCount reports how many classes have curated treatment text.
func TreatmentCount() int {
	return len(treatmentSuggestions)
}
