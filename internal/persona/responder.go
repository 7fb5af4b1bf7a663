package persona

import (
	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/random"
)

// Responder answers chat messages in the voice of the brief's client.
type Responder struct {
	rnd random.Source
}

// NewResponder returns a Responder drawing generic replies from rnd
// (random.Default when nil).
func NewResponder(rnd random.Source) *Responder {
	if rnd == nil {
		rnd = random.Default()
	}
	return &Responder{rnd: rnd}
}

// Respond picks the client's reply to text. Only logo briefs with values
// and style adjectives get personality replies; anything else gets the
// fixed fallback.
func (r *Responder) Respond(text string, brief domain.Brief) string {
	logo, ok := brief.(*domain.LogoBrief)
	if !ok || logo == nil || len(logo.Values) == 0 || len(logo.StyleAdjectives) == 0 {
		return fallbackReply
	}

	topic := DetectTopic(text)
	if topic == TopicNone {
		topic = random.Pick(r.rnd, genericTopics)
	}
	return render(logo.ClientPersonality, topic, briefFacts{b: logo})
}

// WelcomeMessage is the client's opening line in the chat.
func WelcomeMessage(lang domain.Language) string {
	if lang == domain.LangID {
		return "Hai! Terima kasih sudah mampir. Saya di sini untuk mengklarifikasi brief. Ada yang bisa saya bantu?"
	}
	return "Hey there! Thanks for checking in. I'm here to clarify the brief. What's on your mind?"
}

// Header is the display name and avatar shown above the chat.
type Header struct {
	Name   string
	Avatar string
}

// HeaderFor returns the chat header for a client personality.
func HeaderFor(p domain.ClientPersonality, lang domain.Language) Header {
	return Header{Name: catalog.PersonaName(p, lang), Avatar: catalog.PersonaAvatar(p)}
}
