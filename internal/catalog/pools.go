package catalog

import (
	"slices"

	"github.com/alexanderramin/clientbuddy/internal/domain"
)

var palettes = []domain.Palette{
	{Name: "Corporate & Trustworthy", Colors: []string{"#0A2A4E", "#007BFF", "#F0F2F5", "#FFFFFF"}},
	{Name: "Warm & Energetic", Colors: []string{"#C14925", "#E87A00", "#F0C808", "#FDF8E2"}},
	{Name: "Natural & Eco-Friendly", Colors: []string{"#2D572C", "#7A9E7E", "#F5F0E6", "#3D352E"}},
	{Name: "Luxury & Premium", Colors: []string{"#121212", "#D4AF37", "#36454F", "#FFFFF0"}},
	{Name: "Tech & Modern", Colors: []string{"#00FFFF", "#3700B3", "#1E1E1E", "#FFFFFF"}},
	{Name: "Friendly & Soft", Colors: []string{"#FADADD", "#BEEFDD", "#C9E9FF", "#FFF8C9"}},
}

var deliverableSets = []domain.Deliverables{
	{Screen: []string{"PNG", "JPG"}, Print: []string{"AI", "EPS", "PDF"}},
	{Screen: []string{"PNG", "JPG", "GIF"}, Print: []string{"AI", "EPS", "PDF", "PSD"}},
	{Screen: []string{"PNG", "SVG"}, Print: []string{"AI", "EPS"}},
}

var fontNotes = map[domain.Language][]string{
	domain.LangEN: {
		"Client likes modern, clean Sans-Serif fonts like Inter, Montserrat, or Poppins.",
		"We are looking for an elegant, timeless Serif font, like Playfair Display or Lora.",
		"A casual but readable script font would be nice, but avoid anything too formal.",
		"No specific preference, as long as the font is professional and legible on small screens.",
	},
	domain.LangID: {
		"Klien menyukai font Sans-Serif yang modern dan bersih seperti Inter, Montserrat, atau Poppins.",
		"Kami mencari font Serif yang elegan dan abadi, seperti Playfair Display atau Lora.",
		"Font skrip yang kasual namun mudah dibaca akan bagus, tapi hindari yang terlalu formal.",
		"Kami tidak punya preferensi spesifik, asalkan font-nya profesional dan mudah dibaca di layar kecil.",
	},
}

var otherNotes = map[domain.Language][]string{
	domain.LangEN: {
		"The logo must look good when printed in black and white for invoices or letterheads.",
		"We plan to create merchandise (t-shirts, hats), so the logo must be easy to apply.",
		"Top priority is legibility at small sizes, like a social media profile picture.",
		"We are open to both wordmark (logotype) or abstract symbol ideas.",
	},
	domain.LangID: {
		"Logo harus terlihat bagus saat dicetak hitam putih untuk faktur atau kop surat.",
		"Kami berencana membuat merchandise (kaus, topi), jadi logo harus mudah diaplikasikan.",
		"Prioritas utama adalah keterbacaan pada ukuran kecil, seperti foto profil media sosial.",
		"Kami terbuka untuk ide wordmark (logotype) atau simbol abstrak.",
	},
}

var stylePairs = []domain.StylePair{
	{Left: "Classic", Right: "Modern"},
	{Left: "Mature", Right: "Youthful"},
	{Left: "Feminine", Right: "Masculine"},
	{Left: "Playful", Right: "Serious"},
	{Left: "Economical", Right: "Luxurious"},
	{Left: "Geometric", Right: "Organic"},
	{Left: "Abstract", Right: "Literal"},
}

// Palettes returns copies of the fixed logo color palettes.
func Palettes() []domain.Palette {
	out := make([]domain.Palette, len(palettes))
	for i, p := range palettes {
		out[i] = domain.Palette{Name: p.Name, Colors: slices.Clone(p.Colors)}
	}
	return out
}

// DeliverableSets returns copies of the fixed final-file sets.
func DeliverableSets() []domain.Deliverables {
	out := make([]domain.Deliverables, len(deliverableSets))
	for i, d := range deliverableSets {
		out[i] = domain.Deliverables{Screen: slices.Clone(d.Screen), Print: slices.Clone(d.Print)}
	}
	return out
}

func FontNotes(lang domain.Language) []string {
	if lang == domain.LangID {
		return slices.Clone(fontNotes[domain.LangID])
	}
	return slices.Clone(fontNotes[domain.LangEN])
}

func OtherNotes(lang domain.Language) []string {
	if lang == domain.LangID {
		return slices.Clone(otherNotes[domain.LangID])
	}
	return slices.Clone(otherNotes[domain.LangEN])
}

// StylePairs returns the axes used for logo style sliders.
func StylePairs() []domain.StylePair { return slices.Clone(stylePairs) }

// Persona is the display side of a client personality.
type Persona struct {
	Personality domain.ClientPersonality `json:"personality"`
	Label       Label                    `json:"label"`
	Avatar      string                   `json:"avatar"`
}

var personas = []Persona{
	{Personality: domain.Perfectionist, Label: Label{EN: "The Perfectionist", ID: "Si Perfeksionis"}, Avatar: "🧐"},
	{Personality: domain.KnowItAll, Label: Label{EN: "The Know-It-All", ID: "Si Tahu Segalanya"}, Avatar: "🤓"},
	{Personality: domain.Indecisive, Label: Label{EN: "The Indecisive", ID: "Si Ragu-ragu"}, Avatar: "🤔"},
	{Personality: domain.Enthusiast, Label: Label{EN: "The Enthusiast", ID: "Si Antusias"}, Avatar: "🎉"},
}

func Personas() []Persona { return personas }

// PersonaName returns the display name of a personality, or the raw key.
func PersonaName(p domain.ClientPersonality, lang domain.Language) string {
	for _, pp := range personas {
		if pp.Personality == p {
			return pp.Label.In(lang)
		}
	}
	return string(p)
}

func PersonaAvatar(p domain.ClientPersonality) string {
	for _, pp := range personas {
		if pp.Personality == p {
			return pp.Avatar
		}
	}
	return "👤"
}

// ChallengeSlot pairs a category with the industry its daily challenge
// is set in.
type ChallengeSlot struct {
	Category domain.DesignCategory
	Industry string
}

var dailySlots = []ChallengeSlot{
	{Category: domain.CategoryLogoDesign, Industry: "tech_software_dev"},
	{Category: domain.CategoryWebsiteUIUX, Industry: "tour_hospitality"},
	{Category: domain.CategoryInstagramPostStory, Industry: "retail_beauty"},
	{Category: domain.CategoryPoster, Industry: "creative_music"},
	{Category: domain.CategoryFoodPackaging, Industry: "man_food"},
	{Category: domain.CategoryLandingPage, Industry: "edu_edtech"},
	{Category: domain.CategoryCharacterIllustration, Industry: "tour_gaming"},
	{Category: domain.CategoryBrandGuideline, Industry: "nonprofit_social"},
	{Category: domain.CategoryMobileAppUI, Industry: "health_digital"},
}

// DailyChallengeSlots returns the fixed category/industry pairs used for
// the daily challenge set.
func DailyChallengeSlots() []ChallengeSlot { return slices.Clone(dailySlots) }
