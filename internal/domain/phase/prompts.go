// Package phase defines the three guided-reasoning phases: the instruction
// each phase sends to the model, the result shape each phase expects back,
// and the parsing that turns raw model text into those results.
package phase

import (
	"fmt"
	"strings"
)

// ChallengeTypes are the fixed categories phase one classifies into.
var ChallengeTypes = []string{
	"strategic",
	"technical",
	"creative",
	"interpersonal",
	"operational",
	"personal",
}

// TotalQuestions is the number of interrogation rounds the client walks
// through in phase three. The server hands one question back per call and
// leaves progression tracking to the caller.
const TotalQuestions = 5

// Static team policy returned with every phase-two response. These are
// product constants, not derived from the pool or the model output.
const (
	SwapLimit = 3
	TeamSize  = 9
)

const clarityPromptTemplate = `You are the intake stage of a guided reasoning session. The user has described a challenge they want help thinking through.

Your tasks:
1. Restate the challenge in one or two clear sentences (paraphrase).
2. Classify it as exactly one of: %s.
3. Decide whether the description already explains WHY this matters to the user. If it does, capture that reasoning; if not, leave it empty.
4. If one short clarifying question would materially sharpen the challenge, produce it; otherwise leave it empty.

Respond with ONLY a JSON object, no prose before or after:
{"paraphrase": "...", "challengeType": "...", "whyItMatters": "...", "needsWhyItMatters": true/false, "clarifyingQuestion": "..."}`

const teamPromptTemplate = `You are assembling a nine-person advisory board for the challenge below. Draw on the expert pool where someone fits; construct a plausible expert where the pool has a gap.

Challenge type: %s

Expert pool:
%s

Composition rules — exactly 9 members, exactly these roles:
- 1 Strategic
- 1 Analytical/Data
- 1 Ethical
- 1 Psychological/Behavioral
- 1 Implementation
- 1 Systems
- 1 Contrarian
- 2 Domain-specific (pick domains that match the challenge)
No two members may share the same cognitive lens.

For each member give: name, years of experience, field, one sentence on why they are relevant to THIS challenge, and their role from the list above. Then summarize the board's overall composition in two or three sentences.

Respond with ONLY a JSON object, no prose before or after:
{"team": [{"name": "...", "years": "...", "field": "...", "relevance": "...", "role": "..."} x9], "composition": "..."}`

const interrogationPromptTemplate = `You are running the questioning stage of a guided reasoning session. The advisory board members are: %s.

Across five rounds the board surfaces context the user has not stated yet. Each round targets one category of hidden information: assumptions, constraints, incentives, trade-offs, or emotional drivers. Produce the single next question in the sequence — one question only, attributed to the board member best placed to ask it, tagged with the category it is meant to reveal.

Respond with ONLY a JSON object, no prose before or after:
{"questionNumber": 1-5, "question": "...", "askedBy": "...", "reveals": "assumptions|constraints|incentives|trade-offs|emotional drivers"}`

// ClarityPrompt builds the phase-one system instruction.
func ClarityPrompt() string {
	return fmt.Sprintf(clarityPromptTemplate, strings.Join(ChallengeTypes, ", "))
}

// TeamPrompt builds the phase-two system instruction with the rendered
// expert pool embedded.
func TeamPrompt(challengeType, pool string) string {
	return fmt.Sprintf(teamPromptTemplate, challengeType, pool)
}

// InterrogationPrompt builds the phase-three system instruction from the
// team member display names.
func InterrogationPrompt(memberNames []string) string {
	return fmt.Sprintf(interrogationPromptTemplate, strings.Join(memberNames, ", "))
}
