// Package persona simulates the client side of the brief chat without
// calling a model: keyword topics select a personality-specific reply
// filled in from the logo brief.
package persona

import "strings"

// Topic is what a designer's chat message is asking about.
type Topic int

const (
	TopicNone Topic = iota
	TopicAudience
	TopicValues
	TopicHate
	TopicName
	TopicGeneric1
	TopicGeneric2
	TopicFallback
)

func (t Topic) String() string {
	switch t {
	case TopicAudience:
		return "audience"
	case TopicValues:
		return "values"
	case TopicHate:
		return "hate"
	case TopicName:
		return "name"
	case TopicGeneric1:
		return "generic1"
	case TopicGeneric2:
		return "generic2"
	case TopicFallback:
		return "generic_fallback"
	default:
		return "none"
	}
}

// topicKeywords is checked in order; English and Indonesian keywords
// share a topic.
var topicKeywords = []struct {
	topic    Topic
	keywords []string
}{
	{TopicAudience, []string{"audience", "audiens", "target"}},
	{TopicValues, []string{"value", "nilai"}},
	{TopicHate, []string{"hate", "benci", "avoid", "hindari"}},
	{TopicName, []string{"name", "nama"}},
}

// DetectTopic returns the first topic whose keyword appears in text, or
// TopicNone.
func DetectTopic(text string) Topic {
	lower := strings.ToLower(text)
	for _, tk := range topicKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(lower, kw) {
				return tk.topic
			}
		}
	}
	return TopicNone
}

var genericTopics = []Topic{TopicGeneric1, TopicGeneric2, TopicFallback}
