package model

// Industry represents a vertical market segment. Unpublished industries
// exist as placeholders and must never appear in the sitemap or navigation.
type Industry struct {
	Key         string
	Name        string
	Description string
	Icon        string
	Published   bool
}

// Icon identifiers form a closed set so an unknown tag fails at load
// time instead of rendering nothing.
const (
	IconScale     = "scale"
	IconStetho    = "stethoscope"
	IconHouse     = "house"
	IconHardHat   = "hardhat"
	IconCart      = "cart"
	IconBed       = "bed"
	IconWrench    = "wrench"
	IconBriefcase = "briefcase"
)

// ValidIcon reports whether s names a known industry icon.
func ValidIcon(s string) bool {
	switch s {
	case IconScale, IconStetho, IconHouse, IconHardHat, IconCart, IconBed, IconWrench, IconBriefcase:
		return true
	}
	return false
}
