package brief

import "github.com/alexanderramin/clientbuddy/internal/llm"

func logoSchema() *llm.Schema {
	return llm.Object([]llm.Field{
		{Name: "brandName", Schema: llm.String("")},
		{Name: "tagline", Schema: llm.String("")},
		{Name: "brandType", Schema: llm.String("")},
		{Name: "audience", Schema: llm.String("")},
		{Name: "focus", Schema: llm.String("")},
		{Name: "values", Schema: llm.StringArray("")},
		{Name: "styleAdjectives", Schema: llm.StringArray("")},
		{Name: "logoToAvoid", Schema: llm.String("")},
		{Name: "competitor", Schema: llm.String("")},
		{Name: "description", Schema: llm.String("")},
	}, "tagline")
}

func webSchema() *llm.Schema {
	return llm.Object([]llm.Field{
		{Name: "projectName", Schema: llm.String("")},
		{Name: "projectSummary", Schema: llm.String("")},
		{Name: "targetAudience", Schema: llm.String("")},
		{Name: "coreObjective", Schema: llm.String("A single, measurable primary goal, e.g., 'Increase online sales by 20%' or 'Generate 500 new qualified leads per month'.")},
		{Name: "keyFeatures", Schema: llm.StringArray("A list of 3-5 essential functionalities.")},
		{Name: "pages", Schema: llm.StringArray("A list of 4-6 required pages for the website.")},
		{Name: "designInspirations", Schema: llm.String("Describe the desired look and feel, maybe mentioning 1-2 example websites.")},
		{Name: "thingsToAvoid", Schema: llm.String("Specific design elements, colors, or layouts to avoid.")},
	})
}

func brandSchema() *llm.Schema {
	return llm.Object([]llm.Field{
		{Name: "projectName", Schema: llm.String("")},
		{Name: "coreValues", Schema: llm.StringArray("A list of 3-4 core principles or values of the brand.")},
		{Name: "brandArchetype", Schema: llm.String("A single, clear brand archetype, e.g., 'The Rebel', 'The Sage', 'The Jester'.")},
		{Name: "competitors", Schema: llm.StringArray("A list of 2-3 main competitors.")},
		{Name: "deliverables", Schema: llm.StringArray("A list of 5-7 required brand assets, e.g., 'Logo suite', 'Color palette', 'Typography guidelines', 'Business card design', 'Social media templates'.")},
	})
}

func presentationSchema() *llm.Schema {
	return llm.Object([]llm.Field{
		{Name: "presentationTitle", Schema: llm.String("")},
		{Name: "objective", Schema: llm.String("The primary goal of the presentation, e.g., 'To secure Series A funding' or 'To train new employees on company culture'.")},
		{Name: "audience", Schema: llm.String("A description of the target audience for the presentation.")},
		{Name: "keyMessage", Schema: llm.String("The single most important takeaway for the audience.")},
		{Name: "slideCount", Schema: llm.String("An estimated number of slides, e.g., '15-20 slides' or 'Around 10 slides'.")},
		{Name: "visualStyle", Schema: llm.String("The desired visual look and feel, e.g., 'Minimalist and corporate', 'Bold, vibrant, and energetic', or 'Data-driven and professional'.")},
	})
}

func coverSchema() *llm.Schema {
	return llm.Object([]llm.Field{
		{Name: "coverTitle", Schema: llm.String("")},
		{Name: "author", Schema: llm.String("The author, artist, or company name to be featured.")},
		{Name: "genre", Schema: llm.String("The genre of the work, e.g., 'Science Fiction Novel', 'Annual Financial Report', 'Indie Folk Album'.")},
		{Name: "synopsis", Schema: llm.String("A brief 2-3 sentence summary of the content.")},
		{Name: "mood", Schema: llm.String("The desired mood or emotional tone, e.g., 'Mysterious and dark', 'Optimistic and inspiring', 'Clean and professional'.")},
		{Name: "mustIncludeElements", Schema: llm.String("Any specific imagery, symbols, or text that must be included on the cover.")},
	})
}
