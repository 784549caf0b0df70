package phase

// ClarityResult is the structured output expected from phase one.
type ClarityResult struct {
	Paraphrase         string `json:"paraphrase"`
	ChallengeType      string `json:"challengeType"`
	WhyItMatters       string `json:"whyItMatters"`
	NeedsWhyItMatters  bool   `json:"needsWhyItMatters"`
	ClarifyingQuestion string `json:"clarifyingQuestion"`
}

// TeamMember is one advisory board seat.
type TeamMember struct {
	Name      string `json:"name"`
	Years     string `json:"years"`
	Field     string `json:"field"`
	Relevance string `json:"relevance"`
	Role      string `json:"role"`
}

// TeamResult is the structured output expected from phase two.
type TeamResult struct {
	Team        []TeamMember `json:"team"`
	Composition string       `json:"composition"`
}

// QuestionResult is the structured output expected from phase three.
type QuestionResult struct {
	QuestionNumber int    `json:"questionNumber"`
	Question       string `json:"question"`
	AskedBy        string `json:"askedBy"`
	Reveals        string `json:"reveals"`
}
