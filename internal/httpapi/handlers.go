package httpapi

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/imagecap"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
	"github.com/alexanderramin/clientbuddy/internal/persona"
)

func (s *server) getCatalog(c *gin.Context) {
	respondOK(c, gin.H{
		"categories":     catalog.CategoryGroups(),
		"coreCategories": catalog.CoreCategories(),
		"industries":     catalog.IndustryGroups(),
		"regions":        catalog.Regions(),
		"personas":       catalog.Personas(),
		"defaults": gin.H{
			"industry": catalog.DefaultIndustry,
			"region":   catalog.DefaultRegion,
		},
	})
}

func queryLang(c *gin.Context) (domain.Language, error) {
	return domain.ParseLanguage(c.Query("lang"))
}

func (s *server) getWelcome(c *gin.Context) {
	lang, err := queryLang(c)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"message": persona.WelcomeMessage(lang)})
}

type chatRequest struct {
	Brief   json.RawMessage `json:"brief" binding:"required"`
	Message string          `json:"message" binding:"required"`
}

type chatResponse struct {
	Reply  string `json:"reply"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (s *server) postChat(c *gin.Context) {
	var req chatRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := decodeBrief(req.Brief)
	if err != nil {
		respondErr(c, err)
		return
	}
	h := persona.HeaderFor(b.Meta().ClientPersonality, b.Meta().Lang)
	respondOK(c, chatResponse{Reply: s.responder.Respond(req.Message, b), Name: h.Name, Avatar: h.Avatar})
}

func (s *server) postBrief(c *gin.Context) {
	var req intelligence.BriefRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validateBriefRequest(&req); err != nil {
		respondErr(c, err)
		return
	}
	b, err := s.deps.Briefs.Generate(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, b)
}

type translateRequest struct {
	Brief json.RawMessage `json:"brief" binding:"required"`
	Lang  string          `json:"lang" binding:"required"`
}

func (s *server) postTranslate(c *gin.Context) {
	var req translateRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := decodeBrief(req.Brief)
	if err != nil {
		respondErr(c, err)
		return
	}
	lang, err := domain.ParseLanguage(req.Lang)
	if err != nil {
		respondErr(c, err)
		return
	}
	out, err := s.deps.Briefs.Translate(c.Request.Context(), b, lang)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, out)
}

type feedbackRequest struct {
	Brief json.RawMessage `json:"brief" binding:"required"`
	// Image is a base64 data: URL.
	Image string `json:"image" binding:"required"`
	Note  string `json:"note"`
	Lang  string `json:"lang"`
}

func (s *server) postFeedback(c *gin.Context) {
	var req feedbackRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := decodeBrief(req.Brief)
	if err != nil {
		respondErr(c, err)
		return
	}
	img, err := imagecap.FromDataURL(req.Image)
	if err != nil {
		respondErr(c, err)
		return
	}
	var lang domain.Language
	if req.Lang != "" {
		if lang, err = domain.ParseLanguage(req.Lang); err != nil {
			respondErr(c, err)
			return
		}
	}

	text, err := s.deps.Feedback.Feedback(c.Request.Context(), intelligence.FeedbackRequest{
		Image: img,
		Brief: b,
		Lang:  lang,
		Note:  req.Note,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"feedback": text})
}

func (s *server) getChallenges(c *gin.Context) {
	lang, err := queryLang(c)
	if err != nil {
		respondErr(c, err)
		return
	}
	list, err := s.deps.Challenges.Daily(c.Request.Context(), lang)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"challenges": list})
}

func decodeBrief(raw json.RawMessage) (domain.Brief, error) {
	b, err := domain.UnmarshalBrief(raw)
	if err != nil {
		return nil, &domain.ValidationError{Field: "brief", Message: err.Error()}
	}
	return b, nil
}

// validateBriefRequest checks the keys of a generation request. Empty
// industry, region and language keep their defaults.
func validateBriefRequest(req *intelligence.BriefRequest) error {
	if _, err := domain.ParseDesignCategory(string(req.Category)); err != nil {
		return err
	}
	if req.IndustryKey != "" && !catalog.IsIndustry(req.IndustryKey) {
		return &domain.ValidationError{Field: "industry", Message: fmt.Sprintf("unknown industry %q", req.IndustryKey)}
	}
	if req.RegionKey != "" && !catalog.IsRegion(req.RegionKey) {
		return &domain.ValidationError{Field: "region", Message: fmt.Sprintf("unknown region %q", req.RegionKey)}
	}
	lang, err := domain.ParseLanguage(string(req.Lang))
	if err != nil {
		return err
	}
	req.Lang = lang
	return nil
}

