// Package brief maps design categories onto the five brief schemas and
// holds, per schema, the response shape, the prompt builder and the
// post-processor that turns model output into a domain.Brief.
package brief

import "github.com/alexanderramin/clientbuddy/internal/domain"

var categoryTypes = map[domain.DesignCategory]domain.CoreBriefType{
	domain.CategoryWebsiteUIUX:        domain.BriefWeb,
	domain.CategoryLandingPage:        domain.BriefWeb,
	domain.CategoryMobileAppUI:        domain.BriefWeb,
	domain.CategoryDashboardDesign:    domain.BriefWeb,
	domain.CategoryWebBannerHero:      domain.BriefWeb,
	domain.CategoryWireframePrototype: domain.BriefWeb,

	domain.CategoryBrandGuideline:    domain.BriefBrand,
	domain.CategoryRebrandingProject: domain.BriefBrand,

	domain.CategoryMagazineBook:          domain.BriefCover,
	domain.CategoryNewsletter:            domain.BriefCover,
	domain.CategoryProductCatalog:        domain.BriefCover,
	domain.CategoryEventPoster:           domain.BriefCover,
	domain.CategoryZineDesign:            domain.BriefCover,
	domain.CategoryAnnualReport:          domain.BriefCover,
	domain.CategoryCharacterIllustration: domain.BriefCover,
	domain.CategoryFlatIllustration:      domain.BriefCover,
	domain.CategoryDigitalPainting:       domain.BriefCover,
	domain.CategoryConceptArt:            domain.BriefCover,
	domain.CategoryChildrensBookArt:      domain.BriefCover,
	domain.CategoryVectorArt:             domain.BriefCover,
	domain.CategoryNFTArt:                domain.BriefCover,

	domain.CategoryPresentation: domain.BriefPresentation,
}

// ResolveType returns the brief schema used for a category. Anything not
// explicitly mapped, including the raw core keys web, brand and cover,
// produces a logo brief.
func ResolveType(c domain.DesignCategory) domain.CoreBriefType {
	if t, ok := categoryTypes[c]; ok {
		return t
	}
	return domain.BriefLogo
}
