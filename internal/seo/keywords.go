package seo

import (
	"fmt"

	"github.com/brightpath-ai/website/internal/model"
)

// Keyword generation is plain string templating over entity names and
// modifier lists. Duplicates can occur when modifier lists overlap; whether
// to collapse them is a config decision (Config.DedupKeywords), not ours.

func serviceKeywords(sol *model.Solution) []string {
	kws := []string{
		sol.Name,
		sol.ShortName,
		fmt.Sprintf("%s for small business", sol.Name),
		fmt.Sprintf("%s agency", sol.ShortName),
	}
	for _, uc := range sol.UseCases {
		kws = append(kws, fmt.Sprintf("%s %s", sol.ShortName, uc.Title))
	}
	return kws
}

func cityKeywords(city *model.City) []string {
	kws := []string{
		fmt.Sprintf("AI automation %s", city.Name),
		fmt.Sprintf("AI agency %s %s", city.Name, city.State),
		fmt.Sprintf("business automation %s", city.Name),
	}
	for _, n := range city.Neighborhoods {
		kws = append(kws, fmt.Sprintf("AI automation %s", n))
	}
	return kws
}

func citySolutionKeywords(city *model.City, sol *model.Solution, industryNames []string) []string {
	kws := []string{
		fmt.Sprintf("%s %s", sol.Name, city.Name),
		fmt.Sprintf("%s %s %s", sol.Name, city.Name, city.State),
		fmt.Sprintf("%s %s", sol.ShortName, city.Name),
	}
	for _, n := range city.Neighborhoods {
		kws = append(kws, fmt.Sprintf("%s %s", sol.ShortName, n))
	}
	for _, name := range industryNames {
		kws = append(kws, fmt.Sprintf("%s for %s %s", sol.Name, name, city.Name))
	}
	return kws
}

// dedupe collapses duplicates preserving first-occurrence order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, kw := range in {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
