package service

// DefaultQuestions returns the questionnaire. Each question lists its options
// in category declaration order.
func DefaultQuestions() []Question {
	return []Question{
		{
			Prompt: "What do you value most when viewing artworks?",
			Options: []Option{
				{Label: "Finding personal meaning and connections in artworks", Category: SelfReflector},
				{Label: "Appreciating visual elements and aesthetic qualities", Category: AestheticImmerser},
				{Label: "Discovering new and creative artistic expressions", Category: CreativeSeeker},
				{Label: "Understanding cultural and historical contexts", Category: CulturalIdentity},
			},
		},
		{
			Prompt: "What thoughts typically occupy your mind during art viewing?",
			Options: []Option{
				{Label: "What does this artwork mean to me personally?", Category: SelfReflector},
				{Label: "How do composition and technique create harmony?", Category: AestheticImmerser},
				{Label: "How can these expressions be applied creatively?", Category: CreativeSeeker},
				{Label: "What cultural background does this work represent?", Category: CulturalIdentity},
			},
		},
		{
			Prompt: "What interests you most in an exhibition?",
			Options: []Option{
				{Label: "Internal dialogue with the artwork", Category: SelfReflector},
				{Label: "Formal beauty of the works", Category: AestheticImmerser},
				{Label: "Original artistic approaches", Category: CreativeSeeker},
				{Label: "Various cultural perspectives", Category: CulturalIdentity},
			},
		},
	}
}
