package models

// Show represents a TV show returned by a catalog search
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // HTML fragment as provided by the catalog, may be empty
	Image   string `json:"image"`   // never empty, the fallback image is substituted upstream of here
}
