package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/clientbuddy/internal/imagecap"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
	"github.com/alexanderramin/clientbuddy/internal/scenario"
)

type scenarioResponse struct {
	ID string `json:"id"`
	scenario.Snapshot
}

func (s *server) machine(c *gin.Context) (*scenario.Machine, bool) {
	m, err := s.sessions.get(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return nil, false
	}
	return m, true
}

func (s *server) createScenario(c *gin.Context) {
	id, m := s.sessions.create()
	c.JSON(http.StatusCreated, scenarioResponse{ID: id, Snapshot: m.Snapshot()})
}

func (s *server) getScenario(c *gin.Context) {
	m, ok := s.machine(c)
	if !ok {
		return
	}
	respondOK(c, scenarioResponse{ID: c.Param("id"), Snapshot: m.Snapshot()})
}

func (s *server) deleteScenario(c *gin.Context) {
	if !s.sessions.remove(c.Param("id")) {
		respondErr(c, errSessionNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *server) startScenario(c *gin.Context) {
	m, ok := s.machine(c)
	if !ok {
		return
	}
	var req intelligence.BriefRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validateBriefRequest(&req); err != nil {
		respondErr(c, err)
		return
	}
	if _, err := m.Start(c.Request.Context(), req); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, scenarioResponse{ID: c.Param("id"), Snapshot: m.Snapshot()})
}

type revisionRequest struct {
	// Image is a base64 data: URL.
	Image string `json:"image" binding:"required"`
	Note  string `json:"note"`
}

func (s *server) submitRevision(c *gin.Context) {
	m, ok := s.machine(c)
	if !ok {
		return
	}
	var req revisionRequest
	if !bindJSON(c, &req) {
		return
	}
	img, err := imagecap.FromDataURL(req.Image)
	if err != nil {
		respondErr(c, err)
		return
	}
	if _, err := m.SubmitRevision(c.Request.Context(), img, req.Note); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, scenarioResponse{ID: c.Param("id"), Snapshot: m.Snapshot()})
}

func (s *server) completeScenario(c *gin.Context) {
	m, ok := s.machine(c)
	if !ok {
		return
	}
	if _, err := m.Complete(c.Request.Context()); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, scenarioResponse{ID: c.Param("id"), Snapshot: m.Snapshot()})
}

func (s *server) resetScenario(c *gin.Context) {
	m, ok := s.machine(c)
	if !ok {
		return
	}
	if err := m.Reset(); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, scenarioResponse{ID: c.Param("id"), Snapshot: m.Snapshot()})
}
