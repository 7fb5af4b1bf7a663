package intelligence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/llm"
)

const personaRules = `- If you are "The Perfectionist", be extremely detail-oriented, critical, and specific. Point out minor flaws.
- If you are "The Know-It-All", act like you know more about design than the designer. Suggest specific, often trendy, changes.
- If you are "The Indecisive", be vague, contradictory, and ask for more options. Express uncertainty.
- If you are "The Enthusiast", be overly positive and energetic, but your feedback might be unfocused and based on feelings rather than strategy.`

const challengeSystemPrompt = `You are a creative director who generates daily design challenges. Your response must be deterministic based on the date seed provided. For the same date, always return the exact same challenge. You must strictly follow the JSON schema.`

func translateSystemPrompt(lang domain.Language) string {
	return fmt.Sprintf("You are a professional translator. Translate the text values in the provided JSON object into %s. Return a valid JSON object that strictly adheres to the provided schema. Do not translate proper nouns or technical terms unless it's natural in the target language.", lang.Name())
}

// personaHeader opens every prompt that speaks as the client. The persona
// is always named in English, matching the rule list.
func personaHeader(p domain.ClientPersonality) string {
	return fmt.Sprintf("You are a design client simulator. Your name is ClientBuddy.\nYour personality is: %q.", catalog.PersonaName(p, domain.LangEN))
}

func feedbackSystemPrompt(p domain.ClientPersonality, lang domain.Language) string {
	var b strings.Builder
	b.WriteString(personaHeader(p))
	b.WriteString("\n")
	b.WriteString(personaRules)
	b.WriteString("\n\nYou are reviewing a design submitted by a freelancer. Your feedback MUST be directly related to the original design brief provided.\n")
	b.WriteString(`Provide your feedback in a conversational, professional, first-person chat format (e.g., "Hi, thanks for sending this over. My first impression is...").`)
	fmt.Fprintf(&b, "\nThe response MUST be in %s.", lang.Name())
	return b.String()
}

func feedbackUserPrompt(briefJSON []byte, note string) string {
	var b strings.Builder
	b.WriteString("This is the original project brief we agreed on:\n```json\n")
	b.Write(briefJSON)
	b.WriteString("\n```\nAnd here is the design I've submitted for your review.")
	if note != "" {
		fmt.Fprintf(&b, "\n\nThe designer also sent this note: \"%s\"", note)
	}
	b.WriteString("\n\nBased on the brief, my note, and your personality, please provide your feedback.")
	return b.String()
}

func reviewSystemPrompt(p domain.ClientPersonality, lang domain.Language) string {
	return personaHeader(p) + `
You are giving a final review for a completed project.
Analyze the entire project history, including the initial brief, the designer's submissions, their notes, and your previous feedback.
Based on this history, provide a final star rating from 1 to 5 and a short testimonial.
- If the designer followed the brief well and was responsive to feedback, give a high rating (4-5 stars).
- If the designer struggled to understand the brief or ignored your feedback, give a lower rating (1-3 stars).
The testimonial should reflect your client personality. Your entire response must be in ` + lang.Name() + ` and strictly follow the JSON schema.`
}

func reviewUserPrompt(historyJSON []byte) string {
	return "Here is the full history of our project:\n```json\n" + string(historyJSON) + "\n```\nPlease provide your final review."
}

func challengeUserPrompt(category domain.DesignCategory, lang domain.Language, date string) string {
	name, ok := catalog.CategoryLabel(category, domain.LangEN)
	if !ok {
		name = string(category)
	}
	return fmt.Sprintf("Generate a daily design challenge for the category %q in %s. The date seed is %s. Make it concise, creative, and inspiring.", name, lang.Name(), date)
}

var challengeSchema = llm.Object([]llm.Field{
	{Name: "projectName", Schema: llm.String("A creative, fictional name for the project or client.")},
	{Name: "description", Schema: llm.String("A single, compelling sentence describing the design task.")},
	{Name: "keywords", Schema: llm.StringArray("A list of exactly 3 keywords to guide the visual direction.")},
})

var reviewSchema = llm.Object([]llm.Field{
	{Name: "rating", Schema: llm.Number("A star rating from 1 to 5.")},
	{Name: "testimonial", Schema: llm.String("A short project testimonial reflecting your personality.")},
})

// promptJSON encodes v for embedding in a prompt, leaving <, > and &
// unescaped. indent > 0 pretty-prints with that many spaces.
func promptJSON(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
