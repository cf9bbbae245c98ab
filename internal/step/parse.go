package step

import (
	"fmt"
	"strings"
)

// Tags as they appear in stored lesson steps. This is the persisted wire
// format shared with authoring tooling and must be preserved byte-exact.
const (
	tagObservation = "[NEXT]"
	tagQuestion    = "[TEXT]"
	tagCodeTask    = "[CODE]"
	tagChoice      = "[CHOICE]"
)

// minChoiceSegments is question + at least one option + the answer letter.
const minChoiceSegments = 3

// Parse converts a stored instruction string into a Step.
// A missing tag is not an error: the step is treated as an untagged coding
// task. A malformed [CHOICE] body is an error and must be surfaced, never
// silently defaulted.
func Parse(raw string) (Step, error) {
	trimmed := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(trimmed, tagObservation):
		return Step{Kind: KindObservation, Body: body(trimmed, tagObservation)}, nil
	case strings.HasPrefix(trimmed, tagQuestion):
		return Step{Kind: KindQuestion, Body: body(trimmed, tagQuestion)}, nil
	case strings.HasPrefix(trimmed, tagCodeTask):
		return Step{Kind: KindCodeTask, Body: body(trimmed, tagCodeTask)}, nil
	case strings.HasPrefix(trimmed, tagChoice):
		b := body(trimmed, tagChoice)
		choice, err := parseChoice(b)
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: KindChoice, Body: b, Choice: choice}, nil
	}

	return Step{Kind: KindUntagged, Body: trimmed}, nil
}

// Serialize is the exact inverse of Parse. Untagged steps serialize with no
// tag at all.
func Serialize(kind Kind, body string) string {
	switch kind {
	case KindObservation:
		return tagObservation + " " + body
	case KindQuestion:
		return tagQuestion + " " + body
	case KindCodeTask:
		return tagCodeTask + " " + body
	case KindChoice:
		return tagChoice + " " + body
	}
	return body
}

func body(trimmed, tag string) string {
	return strings.TrimSpace(strings.TrimPrefix(trimmed, tag))
}

// parseChoice splits a choice body on "|": first segment is the question,
// middle segments are options formatted "<Letter>: <text>", last segment is
// the correct option's letter.
func parseChoice(b string) (*Choice, error) {
	segments := strings.Split(b, "|")
	if len(segments) < minChoiceSegments {
		return nil, fmt.Errorf("choice step needs at least %d pipe-delimited segments (question, options, answer), got %d", minChoiceSegments, len(segments))
	}

	c := &Choice{
		Question: strings.TrimSpace(segments[0]),
		Answer:   strings.TrimSpace(segments[len(segments)-1]),
	}

	for _, seg := range segments[1 : len(segments)-1] {
		seg = strings.TrimSpace(seg)
		letter, text, found := strings.Cut(seg, ":")
		if !found {
			c.Options = append(c.Options, Option{Text: seg})
			continue
		}
		c.Options = append(c.Options, Option{
			Letter: strings.TrimSpace(letter),
			Text:   strings.TrimSpace(text),
		})
	}

	return c, nil
}
