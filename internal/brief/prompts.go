package brief

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
)

// SystemPrompt is the system instruction for every brief generation call.
const SystemPrompt = "You are a world-class creative director. Your task is to generate a creative and highly detailed design brief for a fictional company. The brief must be in the specified language and strictly follow the JSON schema provided."

// PromptInput is everything a prompt builder needs.
type PromptInput struct {
	IndustryName string
	// RegionKey decides whether the client is placed in a region; RegionName
	// is what the prompt shows.
	RegionKey   string
	RegionName  string
	Lang        domain.Language
	Challenge   *domain.DailyChallenge
	SubCategory domain.DesignCategory
}

func (in PromptInput) regional() bool {
	return !catalog.IsGlobalRegion(in.RegionKey)
}

// label names the requested work in the prompt language, falling back to
// the brief type's generic label.
func (in PromptInput) label(fallback string) string {
	if in.SubCategory == "" {
		return fallback
	}
	return catalog.CategoryDisplayName(in.SubCategory, in.Lang)
}

func challengeDirective(c *domain.DailyChallenge, label string) string {
	return fmt.Sprintf(`Based on this creative challenge: (Project: "%s", Description: "%s", Keywords: %s), generate a full, detailed %s brief`,
		c.ProjectName, c.Description, strings.Join(c.Keywords, ", "), label)
}

func allFieldsInLanguage(lang domain.Language) string {
	return fmt.Sprintf("All text fields in the JSON response MUST be in %s.", lang.Name())
}

func buildLogoPrompt(in PromptInput) string {
	label := in.label("logo design")
	langRule := fmt.Sprintf("The 'brandName' and 'tagline' can be in English or the local language, whichever sounds more professional, creative, or natural for the brand. All other fields (description, audience, values, etc.) MUST be in %s.", in.Lang.Name())

	base := fmt.Sprintf("Generate a creative %s brief for a fictional company.", label)
	if in.Challenge != nil {
		base = challengeDirective(in.Challenge, label) + " for this fictional company."
	}

	if !in.regional() {
		return fmt.Sprintf("%s The company is in the '%s' industry. %s Make the brand name and slogan as unique and wild as possible.",
			base, in.IndustryName, langRule)
	}
	return fmt.Sprintf("%s The company is in the '%s' industry, with a client based in '%s'. Make the brand name, slogan, and cultural references feel appropriate for the '%s' region. %s Make it unique and wild.",
		base, in.IndustryName, in.RegionName, in.RegionName, langRule)
}

// assemble finishes a non-logo prompt: region conditioning, then the
// language rule.
func assemble(base string, in PromptInput) string {
	var b strings.Builder
	b.WriteString(base)
	if in.regional() {
		fmt.Fprintf(&b, " The client is based in '%s'. The project's tone and references should feel appropriate for that region.", in.RegionName)
	}
	b.WriteString(" ")
	b.WriteString(allFieldsInLanguage(in.Lang))
	return b.String()
}

func challengeBase(in PromptInput, label string) string {
	return fmt.Sprintf("%s for a fictional company in the '%s' industry.", challengeDirective(in.Challenge, label), in.IndustryName)
}

func buildWebPrompt(in PromptInput) string {
	label := in.label("web design")
	if in.Challenge != nil {
		return assemble(challengeBase(in, label), in)
	}
	return assemble(fmt.Sprintf("Generate a creative %s brief for a fictional company in the '%s' industry. The project should be modern and have clear goals. Make the project name and summary creative and unique.",
		label, in.IndustryName), in)
}

func buildBrandPrompt(in PromptInput) string {
	label := in.label("brand identity")
	if in.Challenge != nil {
		return assemble(challengeBase(in, label), in)
	}
	return assemble(fmt.Sprintf("Generate a comprehensive %s brief for a fictional company in the '%s' industry. The brief should focus on the brand's core essence and required assets. The project name should be creative and memorable.",
		label, in.IndustryName), in)
}

func buildPresentationPrompt(in PromptInput) string {
	label := in.label("presentation design")
	if in.Challenge != nil {
		return assemble(challengeBase(in, label), in)
	}
	return assemble(fmt.Sprintf("Generate a creative and clear %s brief for a company in the '%s' industry. The brief should outline the presentation's goals, audience, and desired visual style. Make the presentation title engaging and unique.",
		label, in.IndustryName), in)
}

func buildCoverPrompt(in PromptInput) string {
	label := in.label("cover design")
	if in.Challenge != nil {
		return assemble(challengeBase(in, label), in)
	}
	return assemble(fmt.Sprintf("Generate a creative design brief for a %s (e.g., book cover, report cover, or album art) for a fictional project related to the '%s' industry. The brief should be imaginative and provide clear direction. Make the title and author name creative and fitting for the genre.",
		label, in.IndustryName), in)
}
