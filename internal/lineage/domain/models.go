package domain

// Lineage is a static structural description of where the warehouse data
// conceptually comes from and goes to. It is not derived from store contents.
type Lineage struct {
	Sources         []Source         `json:"sources"`
	Transformations []Transformation `json:"transformations"`
	Targets         []Target         `json:"targets"`
}

type Source struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Tables []string `json:"tables"`
}

type Transformation struct {
	Step        int    `json:"step"`
	Process     string `json:"process"`
	Description string `json:"description"`
}

type Target struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Service interface {
	Get() Lineage
}
