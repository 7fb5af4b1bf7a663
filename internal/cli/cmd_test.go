package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
	"github.com/alexanderramin/clientbuddy/internal/random"
)

type stubBriefs struct {
	brief domain.Brief
	err   error
	reqs  []intelligence.BriefRequest

	translatedTo domain.Language
}

func (s *stubBriefs) Generate(_ context.Context, req intelligence.BriefRequest) (domain.Brief, error) {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return nil, s.err
	}
	b := s.brief.Clone()
	b.Meta().Lang = req.Lang
	return b, nil
}

func (s *stubBriefs) Translate(_ context.Context, b domain.Brief, target domain.Language) (domain.Brief, error) {
	s.translatedTo = target
	out := b.Clone()
	out.Meta().Lang = target
	if logo, ok := out.(*domain.LogoBrief); ok {
		logo.Audience = "profesional muda"
	}
	return out, nil
}

type stubFeedback struct {
	reply string
	err   error
	reqs  []intelligence.FeedbackRequest
}

func (s *stubFeedback) Feedback(_ context.Context, req intelligence.FeedbackRequest) (string, error) {
	s.reqs = append(s.reqs, req)
	return s.reply, s.err
}

type stubReviews struct {
	review domain.FinalReview
	logLen int
}

func (s *stubReviews) FinalReview(_ context.Context, _ domain.Brief, log []domain.Interaction, _ domain.Language) (domain.FinalReview, error) {
	s.logLen = len(log)
	return s.review, nil
}

type stubChallenges struct {
	list []domain.DailyChallenge
}

func (s *stubChallenges) Daily(context.Context, domain.Language) ([]domain.DailyChallenge, error) {
	return s.list, nil
}

func testLogoBrief() *domain.LogoBrief {
	return &domain.LogoBrief{
		BriefMeta: domain.BriefMeta{
			Type:              domain.BriefLogo,
			Lang:              domain.LangEN,
			ClientPersonality: domain.Perfectionist,
			Industry:          "Cafe (Food & Beverage)",
		},
		BrandName:       "Kopi Kita",
		BrandType:       "Coffee roastery",
		Audience:        "young professionals",
		Values:          []string{"honesty", "craft"},
		StyleAdjectives: []string{"warm", "bold"},
		LogoToAvoid:     "generic coffee cups",
		Competitor:      "Big Chain Coffee",
	}
}

type testDeps struct {
	briefs     *stubBriefs
	feedback   *stubFeedback
	reviews    *stubReviews
	challenges *stubChallenges
}

func testApp(t *testing.T) (*App, *testDeps) {
	t.Helper()
	deps := &testDeps{
		briefs:   &stubBriefs{brief: testLogoBrief()},
		feedback: &stubFeedback{reply: "The kerning is off. Fix it."},
		reviews:  &stubReviews{review: domain.FinalReview{Rating: 4, Testimonial: "Precise work, eventually."}},
		challenges: &stubChallenges{list: []domain.DailyChallenge{
			{Category: domain.CategoryLogoDesign, Industry: "tech_software_dev", ProjectName: "Nova", Description: "A mark for a compiler.", Keywords: []string{"fast", "sharp", "calm"}},
			{Category: domain.CategoryWebsiteUIUX, Industry: "tour_hospitality", ProjectName: "Stay", Description: "A booking site.", Keywords: []string{"airy", "warm", "clear"}},
		}},
	}
	app := &App{
		Briefs:     deps.briefs,
		Feedback:   deps.feedback,
		Reviews:    deps.reviews,
		Challenges: deps.challenges,
		Rand:       random.Sequence(0),
	}
	return app, deps
}

func executeCmd(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeBriefFile(t *testing.T, b domain.Brief) string {
	t.Helper()
	data, err := json.Marshal(b)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "brief.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writePNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "design.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestCatalogCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "", "catalog", "regions")
	require.NoError(t, err)
	assert.Contains(t, out, "region_global")

	out, err = executeCmd(t, app, "", "catalog", "categories", "--lang", "id")
	require.NoError(t, err)
	assert.Contains(t, out, "landing_page")
}

func TestBriefGenerate_JSONAndSave(t *testing.T) {
	app, deps := testApp(t)
	save := filepath.Join(t.TempDir(), "out.json")

	out, err := executeCmd(t, app, "", "brief", "generate",
		"--category", "landing_page", "--industry", "tour_hospitality", "--lang", "id", "--json", "--save", save)
	require.NoError(t, err)
	assert.Contains(t, out, `"brandName": "Kopi Kita"`)

	require.Len(t, deps.briefs.reqs, 1)
	req := deps.briefs.reqs[0]
	assert.Equal(t, domain.CategoryLandingPage, req.Category)
	assert.Equal(t, "tour_hospitality", req.IndustryKey)
	assert.Equal(t, "region_global", req.RegionKey)
	assert.Equal(t, domain.LangID, req.Lang)

	saved, err := readBrief(save)
	require.NoError(t, err)
	assert.Equal(t, domain.LangID, saved.Meta().Lang)
}

func TestBriefGenerate_Card(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "", "brief", "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "DESIGN BRIEF")
	assert.Contains(t, out, "Kopi Kita")
}

func TestBriefGenerate_BadInput(t *testing.T) {
	app, deps := testApp(t)

	_, err := executeCmd(t, app, "", "brief", "generate", "--industry", "space_mining")
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "industry", valErr.Field)

	_, err = executeCmd(t, app, "", "brief", "generate", "--category", "sculpture")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "", "brief", "generate", "--lang", "fr")
	assert.Error(t, err)
	assert.Empty(t, deps.briefs.reqs)
}

func TestBriefGenerate_NoAI(t *testing.T) {
	app := &App{AIErr: errors.New("missing API key")}
	_, err := executeCmd(t, app, "", "brief", "generate")
	require.Error(t, err)
	assert.Equal(t, "AI features are unavailable: missing API key", err.Error())
}

func TestBriefTranslate(t *testing.T) {
	app, deps := testApp(t)
	path := writeBriefFile(t, testLogoBrief())

	out, err := executeCmd(t, app, "", "brief", "translate", "--file", path, "--json")
	require.NoError(t, err)
	assert.Equal(t, domain.LangID, deps.briefs.translatedTo)
	assert.Contains(t, out, `"audience": "profesional muda"`)
	assert.Contains(t, out, `"lang": "id"`)
}

func TestChatCmd_LineMode(t *testing.T) {
	app, _ := testApp(t)
	path := writeBriefFile(t, testLogoBrief())

	out, err := executeCmd(t, app, "who is the target audience?\n\nwhat do you hate?\n", "chat", "--brief", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "The Perfectionist: Hey there! Thanks for checking in. I'm here to clarify the brief. What's on your mind?", lines[0])
	assert.Contains(t, lines[1], "The audience is *exactly* young professionals.")
	assert.Contains(t, lines[2], "I cannot stand logos that are generic coffee cups.")
}

func TestFeedbackCmd(t *testing.T) {
	app, deps := testApp(t)
	briefPath := writeBriefFile(t, testLogoBrief())

	out, err := executeCmd(t, app, "", "feedback", "--brief", briefPath, "--image", writePNG(t), "--note", "first pass")
	require.NoError(t, err)
	assert.Contains(t, out, "The Perfectionist")
	assert.Contains(t, out, "The kerning is off. Fix it.")

	require.Len(t, deps.feedback.reqs, 1)
	req := deps.feedback.reqs[0]
	assert.Equal(t, "first pass", req.Note)
	assert.Equal(t, "image/png", req.Image.MIMEType)
	assert.Equal(t, domain.LangEN, req.Lang)
}

func TestFeedbackCmd_RejectsNonImage(t *testing.T) {
	app, deps := testApp(t)
	briefPath := writeBriefFile(t, testLogoBrief())

	_, err := executeCmd(t, app, "", "feedback", "--brief", briefPath, "--image", briefPath)
	require.Error(t, err)
	assert.Equal(t, "Please upload a valid image file.", err.Error())
	assert.Empty(t, deps.feedback.reqs)
}

func TestChallengeCmd(t *testing.T) {
	app, deps := testApp(t)

	out, err := executeCmd(t, app, "", "challenge")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Nova")
	assert.Contains(t, out, "2. Stay")

	_, err = executeCmd(t, app, "", "challenge", "--brief", "2", "--json")
	require.NoError(t, err)
	require.Len(t, deps.briefs.reqs, 1)
	req := deps.briefs.reqs[0]
	assert.Equal(t, domain.CategoryWebsiteUIUX, req.Category)
	assert.Equal(t, "tour_hospitality", req.IndustryKey)
	require.NotNil(t, req.Challenge)
	assert.Equal(t, "Stay", req.Challenge.ProjectName)

	_, err = executeCmd(t, app, "", "challenge", "--brief", "3")
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestScenarioCmd_FullProject(t *testing.T) {
	app, deps := testApp(t)
	img := writePNG(t)

	stdin := strings.Join([]string{
		"complete-ish",
		"submit",
		"submit " + img + " first try",
		"status",
		"complete",
		"submit " + img,
		"quit",
	}, "\n")
	out, err := executeCmd(t, app, stdin, "scenario", "--category", "logo_design")
	require.NoError(t, err)

	assert.Contains(t, out, "Kopi Kita")
	assert.Contains(t, out, `Unknown command "complete-ish"`)
	assert.Contains(t, out, "Usage: submit <image> [note]")
	assert.Contains(t, out, "The kerning is off. Fix it.")
	assert.Contains(t, out, `revision 1 submitted ("first try")`)
	assert.Contains(t, out, "★★★★☆")
	assert.Contains(t, out, "cannot submit_revision from state completed")

	require.Len(t, deps.feedback.reqs, 1)
	assert.Equal(t, "first try", deps.feedback.reqs[0].Note)
	assert.Equal(t, 3, deps.reviews.logLen)
}

func TestScenarioCmd_StartFailureKeepsREPL(t *testing.T) {
	app, deps := testApp(t)
	deps.briefs.err = errors.New("model unavailable")

	out, err := executeCmd(t, app, "status\nquit\n", "scenario")
	require.NoError(t, err)
	assert.Contains(t, out, "✖ model unavailable")
	assert.Contains(t, out, "○ Idle")
}

func TestServeCmd_NoHandler(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "", "serve")
	assert.Error(t, err)
}
