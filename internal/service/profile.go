package service

import "slices"

// CategoryProfile is the descriptive text shown for a winning category.
type CategoryProfile struct {
	Title             string   `json:"title" yaml:"title"`
	Description       string   `json:"description" yaml:"description"`
	ViewingTips       string   `json:"viewing_tips" yaml:"viewing_tips"`
	ViewingFocus      []string `json:"viewing_focus" yaml:"viewing_focus"`
	SuggestedApproach []string `json:"suggested_approach" yaml:"suggested_approach"`
	KeyConsiderations []string `json:"key_considerations" yaml:"key_considerations"`
}

// profiles must have an entry for every category.
var profiles = [categoryCount]CategoryProfile{
	SelfReflector: {
		Title:       "Self-Reflector",
		Description: "You prefer to find personal meaning through art and engage in internal dialogue. You value discovering connections between artworks and your own experiences or emotions.",
		ViewingTips: "Take time to connect the artwork with your personal experiences and explore its individual meaning to you.",
		ViewingFocus: []string{
			"Emotional resonance with the artwork",
			"Personal memories or experiences triggered",
			"Individual interpretation of symbols",
			"Reflection on personal growth",
		},
		SuggestedApproach: []string{
			"Spend time with works that emotionally resonate",
			"Journal your thoughts and feelings",
			"Compare different works' personal impact",
			"Consider how the artwork changes your perspective",
		},
		KeyConsiderations: []string{
			"What memories does this artwork evoke?",
			"How does this piece relate to my life experience?",
			"What personal meaning can I derive?",
			"How does this artwork change my perspective?",
		},
	},
	AestheticImmerser: {
		Title:       "Aesthetic Immerser",
		Description: "You deeply engage with the visual and aesthetic elements of artworks. You prefer to carefully observe formal elements, colors, and composition.",
		ViewingTips: "Focus on observing the formal elements and their harmonious relationships within the artwork.",
		ViewingFocus: []string{
			"Compositional structure",
			"Color relationships",
			"Texture and material qualities",
			"Visual rhythm and balance",
		},
		SuggestedApproach: []string{
			"Analyze formal elements systematically",
			"Observe color interactions",
			"Study technique and execution",
			"Examine spatial relationships",
		},
		KeyConsiderations: []string{
			"How do the visual elements interact?",
			"What technical choices create impact?",
			"How does composition guide viewing?",
			"What role does color play?",
		},
	},
	CreativeSeeker: {
		Title:       "Creative Seeker",
		Description: "You look for artistic inspiration and creative ideas. You're particularly interested in innovative approaches and techniques.",
		ViewingTips: "Pay attention to unique artistic expressions and techniques, exploring their creative potential.",
		ViewingFocus: []string{
			"Innovative techniques",
			"Creative problem-solving",
			"Experimental approaches",
			"Artistic inspiration",
		},
		SuggestedApproach: []string{
			"Study unique artistic solutions",
			"Analyze creative processes",
			"Consider alternative approaches",
			"Look for innovative techniques",
		},
		KeyConsiderations: []string{
			"What makes this approach innovative?",
			"How can this inspire new ideas?",
			"What creative risks were taken?",
			"How does this challenge conventions?",
		},
	},
	CulturalIdentity: {
		Title:       "Cultural Identity Seeker",
		Description: "You value understanding cultural contexts and historical significance in art. You're deeply interested in various cultural perspectives.",
		ViewingTips: "Consider the cultural and historical context while viewing, and interpret from various cultural perspectives.",
		ViewingFocus: []string{
			"Cultural context and symbolism",
			"Historical significance",
			"Social implications",
			"Cultural exchange elements",
		},
		SuggestedApproach: []string{
			"Research historical background",
			"Consider cultural symbolism",
			"Examine social context",
			"Compare cultural perspectives",
		},
		KeyConsiderations: []string{
			"What cultural context shaped this work?",
			"How does it reflect its time period?",
			"What cultural symbols are present?",
			"How does it relate to cultural identity?",
		},
	},
}

// LookupProfile returns the profile for c. Invalid categories fall back to
// the SelfReflector profile, matching Winner's default.
func LookupProfile(c Category) CategoryProfile {
	if !c.Valid() {
		c = SelfReflector
	}
	p := profiles[c]
	p.ViewingFocus = slices.Clone(p.ViewingFocus)
	p.SuggestedApproach = slices.Clone(p.SuggestedApproach)
	p.KeyConsiderations = slices.Clone(p.KeyConsiderations)
	return p
}
