package phase

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractJSON pulls the JSON object out of a raw completion. Models are
// instructed to emit bare JSON but occasionally wrap it in a markdown code
// fence or a leading sentence, so parsing is anchored on the outermost
// braces rather than the whole payload.
func extractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyResponse
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("%w: no JSON object found", ErrResponseParse)
	}
	return s[start : end+1], nil
}

func parseInto(raw string, v any) error {
	body, err := extractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseParse, err)
	}
	return nil
}

// ParseClarity decodes a phase-one completion.
func ParseClarity(raw string) (ClarityResult, error) {
	var r ClarityResult
	if err := parseInto(raw, &r); err != nil {
		return ClarityResult{}, err
	}
	return r, nil
}

// ParseTeam decodes a phase-two completion.
func ParseTeam(raw string) (TeamResult, error) {
	var r TeamResult
	if err := parseInto(raw, &r); err != nil {
		return TeamResult{}, err
	}
	return r, nil
}

// ParseQuestion decodes a phase-three completion.
func ParseQuestion(raw string) (QuestionResult, error) {
	var r QuestionResult
	if err := parseInto(raw, &r); err != nil {
		return QuestionResult{}, err
	}
	return r, nil
}
