package model

// City represents a geographic market the agency serves
type City struct {
	Slug          string
	Name          string
	State         string
	Lat           float64
	Lng           float64
	Neighborhoods []string
}
