// Package catalog holds the static reference tables: design categories,
// industries, regions, personas, and the pools logo briefs draw their
// local details from.
package catalog

import (
	"strings"

	"github.com/alexanderramin/clientbuddy/internal/domain"
)

const (
	DefaultIndustry = "tech_software_dev"
	DefaultRegion   = "region_global"
)

// Label is a display string in both supported languages.
type Label struct {
	EN string `json:"en"`
	ID string `json:"id"`
}

// In returns the label for lang, falling back to English.
func (l Label) In(lang domain.Language) string {
	if lang == domain.LangID && l.ID != "" {
		return l.ID
	}
	return l.EN
}

type Category struct {
	Key   domain.DesignCategory `json:"key"`
	Label Label                 `json:"label"`
}

type CategoryGroup struct {
	Label Label      `json:"label"`
	Items []Category `json:"items"`
}

type Industry struct {
	Key   string `json:"key"`
	Label Label  `json:"label"`
}

type IndustryGroup struct {
	Key   string     `json:"key"`
	Label Label      `json:"label"`
	Items []Industry `json:"items"`
}

type Region struct {
	Key   string `json:"key"`
	Label Label  `json:"label"`
}

// CategoryGroups returns the detailed categories grouped for display.
func CategoryGroups() []CategoryGroup { return categoryGroups }

// CoreCategories returns the five core categories.
func CoreCategories() []Category { return coreCategories }

// CategoryLabel looks up the display label of a category.
func CategoryLabel(c domain.DesignCategory, lang domain.Language) (string, bool) {
	for _, cc := range coreCategories {
		if cc.Key == c {
			return cc.Label.In(lang), true
		}
	}
	for _, g := range categoryGroups {
		for _, item := range g.Items {
			if item.Key == c {
				return item.Label.In(lang), true
			}
		}
	}
	return "", false
}

// CategoryDisplayName returns the category label, or the key with
// underscores turned into spaces when the category is unknown.
func CategoryDisplayName(c domain.DesignCategory, lang domain.Language) string {
	if label, ok := CategoryLabel(c, lang); ok {
		return label
	}
	return strings.ReplaceAll(string(c), "_", " ")
}

// IndustryGroups returns the industry tree.
func IndustryGroups() []IndustryGroup { return industryGroups }

// IndustryName formats an industry key as "Item (Group)". Group keys
// resolve to the group label; anything else is returned unchanged.
func IndustryName(key string, lang domain.Language) string {
	for _, g := range industryGroups {
		if g.Key == key {
			return g.Label.In(lang)
		}
		for _, item := range g.Items {
			if item.Key == key {
				return item.Label.In(lang) + " (" + g.Label.In(lang) + ")"
			}
		}
	}
	return key
}

// IsIndustry reports whether key names an industry item.
func IsIndustry(key string) bool {
	for _, g := range industryGroups {
		for _, item := range g.Items {
			if item.Key == key {
				return true
			}
		}
	}
	return false
}

// Regions returns the client regions, global first.
func Regions() []Region { return regions }

// RegionName returns the display name of a region key, or the key itself.
func RegionName(key string, lang domain.Language) string {
	for _, r := range regions {
		if r.Key == key {
			return r.Label.In(lang)
		}
	}
	return key
}

// IsRegion reports whether key names a known region.
func IsRegion(key string) bool {
	for _, r := range regions {
		if r.Key == key {
			return true
		}
	}
	return false
}

// IsGlobalRegion reports whether key means "no particular region".
func IsGlobalRegion(key string) bool {
	return key == "" || key == DefaultRegion
}
