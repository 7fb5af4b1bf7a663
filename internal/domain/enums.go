package domain

import "fmt"

type Language string

const (
	LangEN Language = "en"
	LangID Language = "id"
)

// Name returns the language name used inside prompts.
func (l Language) Name() string {
	if l == LangID {
		return "Indonesian"
	}
	return "English"
}

// ParseLanguage accepts "en" or "id" (case-sensitive). An empty string
// yields English.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case "", LangEN:
		return LangEN, nil
	case LangID:
		return LangID, nil
	default:
		return "", &ValidationError{Field: "lang", Message: fmt.Sprintf("unsupported language %q (use en or id)", s)}
	}
}

type CoreBriefType string

const (
	BriefLogo         CoreBriefType = "logo"
	BriefWeb          CoreBriefType = "web"
	BriefBrand        CoreBriefType = "brand"
	BriefPresentation CoreBriefType = "presentation"
	BriefCover        CoreBriefType = "cover"
)

// CoreBriefTypes lists the five brief schemas in display order.
var CoreBriefTypes = []CoreBriefType{BriefLogo, BriefWeb, BriefBrand, BriefPresentation, BriefCover}

type ClientPersonality string

const (
	Perfectionist ClientPersonality = "perfectionist"
	KnowItAll     ClientPersonality = "knowitall"
	Indecisive    ClientPersonality = "indecisive"
	Enthusiast    ClientPersonality = "enthusiast"
)

// ClientPersonalities is the pool a new brief draws its personality from.
var ClientPersonalities = []ClientPersonality{Perfectionist, KnowItAll, Indecisive, Enthusiast}

type InteractionKind string

const (
	InteractionInitialBrief InteractionKind = "initial_brief"
	InteractionSubmission   InteractionKind = "user_submission"
	InteractionFeedback     InteractionKind = "client_feedback"
)
