package domain

import "fmt"

// DesignCategory is the fine-grained category a user picks. Every
// category maps onto exactly one CoreBriefType.
type DesignCategory string

// Core categories share their key with the brief type of the same name.
const (
	CategoryLogo         DesignCategory = "logo"
	CategoryWeb          DesignCategory = "web"
	CategoryBrand        DesignCategory = "brand"
	CategoryPresentation DesignCategory = "presentation"
	CategoryCover        DesignCategory = "cover"
)

// Branding & Identity
const (
	CategoryLogoDesign        DesignCategory = "logo_design"
	CategoryBrandGuideline    DesignCategory = "brand_guideline"
	CategoryStationery        DesignCategory = "stationery"
	CategoryRebrandingProject DesignCategory = "rebranding_project"
	CategoryIconDesign        DesignCategory = "icon_design"
	CategoryMascotLogo        DesignCategory = "mascot_logo"
)

// Marketing & Advertising
const (
	CategoryPoster         DesignCategory = "poster"
	CategoryFlyerBrochure  DesignCategory = "flyer_brochure"
	CategoryOnlineBanner   DesignCategory = "online_banner"
	CategoryBillboard      DesignCategory = "billboard"
	CategorySocialMediaAds DesignCategory = "social_media_ads"
	CategoryEmailCampaign  DesignCategory = "email_campaign"
	CategoryPromoPackaging DesignCategory = "promo_packaging"
)

// Digital & Web
const (
	CategoryWebsiteUIUX        DesignCategory = "website_ui_ux"
	CategoryLandingPage        DesignCategory = "landing_page"
	CategoryMobileAppUI        DesignCategory = "mobile_app_ui"
	CategoryDashboardDesign    DesignCategory = "dashboard_design"
	CategoryWebBannerHero      DesignCategory = "web_banner_hero"
	CategoryWireframePrototype DesignCategory = "wireframe_prototype"
)

// Print & Editorial
const (
	CategoryMagazineBook   DesignCategory = "magazine_book"
	CategoryNewsletter     DesignCategory = "newsletter"
	CategoryProductCatalog DesignCategory = "product_catalog"
	CategoryEventPoster    DesignCategory = "event_poster"
	CategoryZineDesign     DesignCategory = "zine_design"
	CategoryAnnualReport   DesignCategory = "annual_report"
)

// Social Media & Content
const (
	CategoryInstagramPostStory     DesignCategory = "instagram_post_story"
	CategoryTiktokThumbnailOverlay DesignCategory = "tiktok_thumbnail_overlay"
	CategoryYoutubeBannerThumbnail DesignCategory = "youtube_banner_thumbnail"
	CategoryCarouselTemplate       DesignCategory = "carousel_template"
	CategoryMemeDesign             DesignCategory = "meme_design"
	CategoryContentPackTemplate    DesignCategory = "content_pack_template"
)

// Packaging & Product
const (
	CategoryFoodPackaging   DesignCategory = "food_packaging"
	CategoryProductLabel    DesignCategory = "product_label"
	CategoryBoxBagDesign    DesignCategory = "box_bag_design"
	CategoryBottleJarLayout DesignCategory = "bottle_jar_layout"
	CategoryMerchandise     DesignCategory = "merchandise"
	CategoryStickerHangTag  DesignCategory = "sticker_hang_tag"
)

// Illustration & Art
const (
	CategoryCharacterIllustration DesignCategory = "character_illustration"
	CategoryFlatIllustration      DesignCategory = "flat_illustration"
	CategoryDigitalPainting       DesignCategory = "digital_painting"
	CategoryConceptArt            DesignCategory = "concept_art"
	CategoryChildrensBookArt      DesignCategory = "childrens_book_art"
	CategoryVectorArt             DesignCategory = "vector_art"
	CategoryNFTArt                DesignCategory = "nft_art"
)

// Typography & Layout
const (
	CategoryCustomFontLettering   DesignCategory = "custom_font_lettering"
	CategoryTypographicPoster     DesignCategory = "typographic_poster"
	CategoryLayoutGridDesign      DesignCategory = "layout_grid_design"
	CategoryMagazineSpread        DesignCategory = "magazine_spread"
	CategoryMinimalistComposition DesignCategory = "minimalist_composition"
	CategoryQuoteDesign           DesignCategory = "quote_design"
)

var designCategories = []DesignCategory{
	CategoryLogo, CategoryWeb, CategoryBrand, CategoryPresentation, CategoryCover,

	CategoryLogoDesign, CategoryBrandGuideline, CategoryStationery,
	CategoryRebrandingProject, CategoryIconDesign, CategoryMascotLogo,

	CategoryPoster, CategoryFlyerBrochure, CategoryOnlineBanner, CategoryBillboard,
	CategorySocialMediaAds, CategoryEmailCampaign, CategoryPromoPackaging,

	CategoryWebsiteUIUX, CategoryLandingPage, CategoryMobileAppUI,
	CategoryDashboardDesign, CategoryWebBannerHero, CategoryWireframePrototype,

	CategoryMagazineBook, CategoryNewsletter, CategoryProductCatalog,
	CategoryEventPoster, CategoryZineDesign, CategoryAnnualReport,

	CategoryInstagramPostStory, CategoryTiktokThumbnailOverlay, CategoryYoutubeBannerThumbnail,
	CategoryCarouselTemplate, CategoryMemeDesign, CategoryContentPackTemplate,

	CategoryFoodPackaging, CategoryProductLabel, CategoryBoxBagDesign,
	CategoryBottleJarLayout, CategoryMerchandise, CategoryStickerHangTag,

	CategoryCharacterIllustration, CategoryFlatIllustration, CategoryDigitalPainting,
	CategoryConceptArt, CategoryChildrensBookArt, CategoryVectorArt, CategoryNFTArt,

	CategoryCustomFontLettering, CategoryTypographicPoster, CategoryLayoutGridDesign,
	CategoryMagazineSpread, CategoryMinimalistComposition, CategoryQuoteDesign,
}

// AllDesignCategories returns every known category, core types first.
func AllDesignCategories() []DesignCategory {
	out := make([]DesignCategory, len(designCategories))
	copy(out, designCategories)
	return out
}

// ParseDesignCategory validates user input against the known categories.
func ParseDesignCategory(s string) (DesignCategory, error) {
	for _, c := range designCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &ValidationError{Field: "category", Message: fmt.Sprintf("unknown design category %q", s)}
}
