package persona

import (
	"fmt"

	"github.com/alexanderramin/clientbuddy/internal/domain"
)

// fallbackReply is the default-personality fallback, also used when the
// brief carries nothing to talk about.
const fallbackReply = "Hmm, I'm not sure I follow. Let's stick to the brief for now. What else can I clarify from it?"

// briefFacts are the logo brief fields the templates quote. Indexing is
// clamped so a short list repeats its last entry.
type briefFacts struct {
	b *domain.LogoBrief
}

func (f briefFacts) value(i int) string     { return at(f.b.Values, i) }
func (f briefFacts) adjective(i int) string { return at(f.b.StyleAdjectives, i) }

func at(items []string, i int) string {
	if len(items) == 0 {
		return ""
	}
	if i >= len(items) {
		i = len(items) - 1
	}
	return items[i]
}

func render(p domain.ClientPersonality, topic Topic, f briefFacts) string {
	b := f.b
	switch topic {
	case TopicAudience:
		switch p {
		case domain.Perfectionist:
			return fmt.Sprintf("The audience is *exactly* %s. Not 'similar to'. *Exactly*. The design must be perfectly targeted to their demographic.", b.Audience)
		case domain.KnowItAll:
			return fmt.Sprintf("It's %s. I read a marketing report that says this demographic *only* responds to the color blue. So, we should probably use blue.", b.Audience)
		case domain.Indecisive:
			return fmt.Sprintf("The audience? Oh, %s, I guess? But my cousin said we should also target some other group? What do you think is better?", b.Audience)
		case domain.Enthusiast:
			return fmt.Sprintf("OMG yes! The audience is %s! They are going to LOVE this! Just make it POP! Make it feel %s!", b.Audience, f.adjective(0))
		default:
			return fmt.Sprintf("Well, about our audience... we're really targeting %s. They're people who value %s and %s. So, the logo needs to feel right for them, you know?", b.Audience, f.value(0), f.value(1))
		}

	case TopicValues:
		switch p {
		case domain.Perfectionist:
			return fmt.Sprintf("The value '%s' is CRITICAL. The logo must be 100%% symmetrical and pixel-perfect to reflect that. It must feel %s and %s.", f.value(0), f.adjective(0), f.adjective(1))
		case domain.KnowItAll:
			return fmt.Sprintf("Sure. '%s' means we need to use a strong, Sans-Serif font. I read that fonts like Montserrat really convey that. And '%s' is about the color, obviously.", f.value(0), f.value(1))
		case domain.Indecisive:
			return fmt.Sprintf("Hmm, the values... I wrote down '%s' and '%s'. But I'm not sure how to show that. Maybe you can show me a few options? Like, 5 or 6?", f.value(0), f.value(1))
		case domain.Enthusiast:
			return fmt.Sprintf("Values! Yes! For '%s', I'm thinking... WOW! You know? And for '%s', it should be super %s! I can't wait to see it!", f.value(0), f.value(1), f.adjective(0))
		default:
			return fmt.Sprintf("Great question! When we say '%s', we mean we want to feel %s. And '%s' is all about appearing %s. That's the core of it.", f.value(0), f.adjective(0), f.value(1), f.adjective(1))
		}

	case TopicHate:
		switch p {
		case domain.Perfectionist:
			return fmt.Sprintf("I cannot stand logos that are %s. Or anything asymmetrical. Also, our competitor %s uses a similar font, so we must be *completely* different. Check their brand guide.", b.LogoToAvoid, b.Competitor)
		case domain.KnowItAll:
			return fmt.Sprintf("I hate %s logos. They are so last year. And whatever you do, don't make it look like %s. Their branding is all wrong.", b.LogoToAvoid, b.Competitor)
		case domain.Indecisive:
			return fmt.Sprintf("Hate is a strong word... I don't *love* logos that are %s, I guess? But if you think it works, maybe show me? Our competitor is %s, but their logo is... okay?", b.LogoToAvoid, b.Competitor)
		case domain.Enthusiast:
			return fmt.Sprintf("Ugh, YES! I hate %s logos. Sooo boring! And %s is the WORST. We need to crush them! Make our logo 10x better!", b.LogoToAvoid, b.Competitor)
		default:
			return fmt.Sprintf("Oh, definitely. We really don't like logos that are %s. Also, our main competitor is %s, so please, nothing that looks like their brand!", b.LogoToAvoid, b.Competitor)
		}

	case TopicName:
		switch p {
		case domain.Perfectionist:
			return fmt.Sprintf("The name '%s' is final. It's spelled exactly like that. Do not abbreviate it.", b.BrandName)
		case domain.KnowItAll:
			return fmt.Sprintf("Ah, the name. '%s'. It perfectly captures our focus on %s. You should probably use a wordmark to emphasize it.", b.BrandName, b.Focus)
		case domain.Indecisive:
			return fmt.Sprintf("It's '%s'. We *think* it works. But we're also considering '%sCo'. Which do you think is stronger?", b.BrandName, b.BrandName)
		case domain.Enthusiast:
			return fmt.Sprintf("It's '%s'! We LOVE it! It's all about %s and %s! It just sounds so... NOW! The logo should feel just as exciting as the name!", b.BrandName, f.value(0), b.Focus)
		default:
			return fmt.Sprintf("The name '%s'? It's a key part of our identity. We want it to feel %s.", b.BrandName, f.adjective(0))
		}

	case TopicGeneric1:
		switch p {
		case domain.Perfectionist:
			return fmt.Sprintf("I'm not following. How does that help us look %s? Please be specific.", f.adjective(0))
		case domain.KnowItAll:
			return "I don't think that's relevant. Let's talk about the font. I think we should use..."
		case domain.Indecisive:
			return "Oh, I'm not sure. What do you recommend? You're the expert."
		case domain.Enthusiast:
			return "Ooh, interesting! Tell me more! How does that make it more WOW?"
		default:
			return fmt.Sprintf("That's an interesting point. Could you elaborate on how that relates to our value of '%s'?", f.value(0))
		}

	case TopicGeneric2:
		switch p {
		case domain.Perfectionist:
			return fmt.Sprintf("I'm not sure I agree with that assessment. Let's stick to the brief. The target is %s, period.", b.Audience)
		case domain.KnowItAll:
			return "Right. But remember, as I said, that target audience *only* likes blue. Don't forget that."
		case domain.Indecisive:
			return fmt.Sprintf("That... makes sense? I think? As long as it works for %s, I'm open to it.", b.Audience)
		case domain.Enthusiast:
			return fmt.Sprintf("Totally! As long as %s loves it! This is going to be great!", b.Audience)
		default:
			return fmt.Sprintf("I see. I hadn't thought of it that way. Just remember, the key target is %s.", b.Audience)
		}

	default:
		switch p {
		case domain.Perfectionist:
			return "That's out of scope. Please re-read the brief and ask a specific question about the deliverables."
		case domain.KnowItAll:
			return "I already explained this. Please pay attention. Ask me about something else."
		case domain.Indecisive:
			return "I don't know... What do you think? I'm really relying on you here."
		case domain.Enthusiast:
			return "I don't know, but it sounds cool! Let's just make something awesome!"
		default:
			return fallbackReply
		}
	}
}
