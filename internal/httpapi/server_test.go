package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
	"github.com/alexanderramin/clientbuddy/internal/llm"
	"github.com/alexanderramin/clientbuddy/internal/random"
)

// 1x1 transparent PNG.
const pngDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type stubBriefs struct {
	err  error
	reqs []intelligence.BriefRequest
}

func (s *stubBriefs) Generate(_ context.Context, req intelligence.BriefRequest) (domain.Brief, error) {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return nil, s.err
	}
	b := testLogoBrief()
	b.Lang = req.Lang
	return b, nil
}

func (s *stubBriefs) Translate(_ context.Context, b domain.Brief, target domain.Language) (domain.Brief, error) {
	if s.err != nil {
		return nil, &domain.TranslationError{Err: s.err}
	}
	out := b.Clone()
	out.Meta().Lang = target
	return out, nil
}

type stubFeedback struct {
	err  error
	reqs []intelligence.FeedbackRequest
}

func (s *stubFeedback) Feedback(_ context.Context, req intelligence.FeedbackRequest) (string, error) {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return "", s.err
	}
	return "Make the logo bigger.", nil
}

type stubReviews struct{}

func (stubReviews) FinalReview(context.Context, domain.Brief, []domain.Interaction, domain.Language) (domain.FinalReview, error) {
	return domain.FinalReview{Rating: 5, Testimonial: "Wonderful!"}, nil
}

type stubChallenges struct{}

func (stubChallenges) Daily(_ context.Context, lang domain.Language) ([]domain.DailyChallenge, error) {
	return []domain.DailyChallenge{{Category: domain.CategoryPoster, Industry: "creative_music", ProjectName: "Echo " + string(lang), Keywords: []string{"loud"}}}, nil
}

func testLogoBrief() *domain.LogoBrief {
	return &domain.LogoBrief{
		BriefMeta:       domain.BriefMeta{Type: domain.BriefLogo, Lang: domain.LangEN, ClientPersonality: domain.Indecisive, Industry: "Music"},
		BrandName:       "Echo",
		Audience:        "indie fans",
		Values:          []string{"honesty"},
		StyleAdjectives: []string{"raw"},
	}
}

type testServer struct {
	handler  http.Handler
	briefs   *stubBriefs
	feedback *stubFeedback
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ts := &testServer{briefs: &stubBriefs{}, feedback: &stubFeedback{}}
	reg := prometheus.NewRegistry()
	h, err := New(Deps{
		Briefs:      ts.briefs,
		Feedback:    ts.feedback,
		Reviews:     stubReviews{},
		Challenges:  stubChallenges{},
		Rand:        random.Sequence(0),
		Registerer:  reg,
		Gatherer:    reg,
		CORSOrigins: []string{"http://localhost:5173"},
		MaxSessions: 2,
	})
	require.NoError(t, err)
	ts.handler = h
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch v := body.(type) {
		case string:
			buf.WriteString(v)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(v))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	return decode[ErrorEnvelope](t, rec).Error.Code
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `clientbuddy_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/briefs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCatalogAndWelcome(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]json.RawMessage](t, rec)
	assert.Contains(t, string(body["regions"]), "region_global")
	assert.Contains(t, string(body["defaults"]), "tech_software_dev")

	rec = ts.do(t, http.MethodGet, "/api/chat/welcome?lang=id", nil)
	assert.Contains(t, rec.Body.String(), "Hai! Terima kasih")

	rec = ts.do(t, http.MethodGet, "/api/chat/welcome?lang=de", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", errorCode(t, rec))
}

func TestPostBrief(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/briefs", map[string]any{"category": "logo_design", "lang": "id"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	b, err := domain.UnmarshalBrief(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Echo", domain.Title(b))
	assert.Equal(t, domain.LangID, b.Meta().Lang)

	for _, body := range []map[string]any{
		{"category": "sculpture"},
		{"category": "logo_design", "industry": "space_mining"},
		{"category": "logo_design", "region": "region_mars"},
		{"category": "logo_design", "lang": "fr"},
	} {
		rec = ts.do(t, http.MethodPost, "/api/briefs", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "VALIDATION", errorCode(t, rec))
	}
	assert.Len(t, ts.briefs.reqs, 1)

	rec = ts.do(t, http.MethodPost, "/api/briefs", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, rec))
}

func TestPostBrief_GenerationFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.briefs.err = &domain.GenerationError{Op: "brief generation", Err: llm.ErrTimeout}

	rec := ts.do(t, http.MethodPost, "/api/briefs", map[string]any{"category": "poster"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decode[ErrorEnvelope](t, rec)
	assert.Equal(t, "GENERATION_FAILED", env.Error.Code)
	assert.Equal(t, "brief generation failed: llm request timed out", env.Error.Message)
}

func TestPostTranslate(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/briefs/translate", map[string]any{"brief": testLogoBrief(), "lang": "id"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"lang":"id"`)

	rec = ts.do(t, http.MethodPost, "/api/briefs/translate", map[string]any{"brief": map[string]any{"type": "mural"}, "lang": "id"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.briefs.err = errors.New("quota")
	rec = ts.do(t, http.MethodPost, "/api/briefs/translate", map[string]any{"brief": testLogoBrief(), "lang": "id"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "TRANSLATION_FAILED", errorCode(t, rec))
}

func TestPostChat(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/chat", map[string]any{"brief": testLogoBrief(), "message": "who is the audience?"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[chatResponse](t, rec)
	assert.Equal(t, "The Indecisive", resp.Name)
	assert.Equal(t, "🤔", resp.Avatar)
	assert.True(t, strings.HasPrefix(resp.Reply, "The audience? Oh, indie fans, I guess?"))

	rec = ts.do(t, http.MethodPost, "/api/chat", map[string]any{"brief": testLogoBrief()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostFeedback(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/feedback", map[string]any{"brief": testLogoBrief(), "image": pngDataURL, "note": "v2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Make the logo bigger.")
	require.Len(t, ts.feedback.reqs, 1)
	assert.Equal(t, "image/png", ts.feedback.reqs[0].Image.MIMEType)
	assert.Equal(t, "v2", ts.feedback.reqs[0].Note)

	rec = ts.do(t, http.MethodPost, "/api/feedback", map[string]any{"brief": testLogoBrief(), "image": "data:text/plain;base64,aGVsbG8="})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please upload a valid image file.", decode[ErrorEnvelope](t, rec).Error.Message)
}

func TestGetChallenges(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/challenges?lang=id", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"projectName":"Echo id"`)
}

func TestScenarioLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/scenarios", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[scenarioResponse](t, rec)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "idle", string(created.State))
	base := "/api/scenarios/" + created.ID

	rec = ts.do(t, http.MethodPost, base+"/complete", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, base+"/start", map[string]any{"category": "logo_design"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var started struct {
		State string            `json:"state"`
		Log   []json.RawMessage `json:"log"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))
	assert.Equal(t, "in_progress", started.State)
	assert.Len(t, started.Log, 1)

	ts.feedback.err = &domain.GenerationError{Op: "design feedback", Err: llm.ErrUnavailable}
	rec = ts.do(t, http.MethodPost, base+"/revisions", map[string]any{"image": pngDataURL, "note": "v1"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	ts.feedback.err = nil
	rec = ts.do(t, http.MethodPost, base+"/revisions", map[string]any{"image": pngDataURL, "note": "v2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))
	assert.Len(t, started.Log, 4)

	rec = ts.do(t, http.MethodPost, base+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"review":{"rating":5,"testimonial":"Wonderful!"}`)

	rec = ts.do(t, http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)

	rec = ts.do(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = ts.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestScenarioSessionsAreBounded(t *testing.T) {
	ts := newTestServer(t)

	var ids []string
	for range 3 {
		rec := ts.do(t, http.MethodPost, "/api/scenarios", nil)
		ids = append(ids, decode[scenarioResponse](t, rec).ID)
	}
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/scenarios/"+ids[0], nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/scenarios/"+ids[2], nil).Code)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{&domain.ValidationError{Field: "image"}, http.StatusBadRequest, "VALIDATION"},
		{errSessionNotFound, http.StatusNotFound, "NOT_FOUND"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, code := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code)
	}
}

func TestSessionStore(t *testing.T) {
	store, err := newSessionStore(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, store.len())
	_, err = store.get("missing")
	assert.ErrorIs(t, err, errSessionNotFound)
	assert.False(t, store.remove("missing"))
}
