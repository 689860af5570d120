package model

// Solution represents a sellable service offering
type Solution struct {
	Slug            string
	Name            string
	ShortName       string
	Tagline         string
	Description     string
	LongDescription string
	Benefits        []string
	Features        []string
	UseCases        []UseCase
	Industries      []string // Industry registry keys, validated at load time
	Stats           []Stat
	ROI             ROI
	FAQs            []FAQ
	Pricing         Pricing
}

// UseCase describes one way a solution is applied
type UseCase struct {
	Title       string
	Description string
	Industry    string
}

// Stat is a single marketing metric. Display is the pre-formatted string
// rendered on the page; Value/Unit carry the underlying number for any
// consumer that needs to compute with it. Nothing parses Display.
type Stat struct {
	Label   string
	Display string
	Value   float64
	Unit    string
}

// ROI summarizes return-on-investment claims for a solution
type ROI struct {
	TimeToValue string
	Efficiency  string
	CostSavings string
}

// FAQ is a question/answer pair rendered on solution pages
type FAQ struct {
	Question string
	Answer   string
}

// Pricing describes how a solution is priced
type Pricing struct {
	Model         string
	StartingPrice string
	Enterprise    bool
}
