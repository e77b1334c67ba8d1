package domain

// Interests is the fixed vocabulary of interest tags offered at event
// creation. Gift suggestions are keyed by these tags.
var Interests = []string{
	"Art & Crafting",
	"Sports",
	"Science",
	"Music",
	"Reading",
	"Video Games",
	"Outdoor Activities",
	"Cooking",
	"Animals",
	"Building & Construction",
}

// giftSuggestions maps an interest tag to its ordered gift ideas.
var giftSuggestions = map[string][]string{
	"Art & Crafting":          {"Art supplies set", "Craft kit", "Drawing tablet"},
	"Sports":                  {"Sports equipment", "Team jersey", "Training gear"},
	"Science":                 {"Science kit", "Microscope", "Chemistry set"},
	"Music":                   {"Musical instrument", "Headphones", "Music lessons"},
	"Reading":                 {"Book series", "E-reader", "Bookstore gift card"},
	"Video Games":             {"Video game", "Gaming accessory", "Gaming gift card"},
	"Outdoor Activities":      {"Bike", "Scooter", "Outdoor games"},
	"Cooking":                 {"Kids cookbook", "Cooking kit", "Baking set"},
	"Animals":                 {"Stuffed animals", "Animal books", "Zoo membership"},
	"Building & Construction": {"Building blocks", "Construction set", "Robot kit"},
}

// SuggestGifts expands each interest tag into its gift ideas, concatenated in
// input order. Unknown tags contribute nothing; duplicates are kept.
func SuggestGifts(interests []string) []string {
	suggestions := make([]string, 0, len(interests)*3)
	for _, interest := range interests {
		suggestions = append(suggestions, giftSuggestions[interest]...)
	}
	return suggestions
}
