package roster

// Entry is a single named record on the home list.
type Entry struct {
	Name string `json:"name"`
}

// SeedNames are the entries every fresh home list starts with.
var SeedNames = []string{"Tanu", "Tina", "Tono"}
