package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The model endpoint answers in one of a small closed set of shapes. Each
// variant gets its own decoder; adding a third provider shape means adding a
// variant here, nothing else changes.

// chatCompletionsResponse is the chat/completions shape: the schema-matching
// JSON document arrives as a string in choices[0].message.content.
type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (r chatCompletionsResponse) courseDocument() (string, bool) {
	if len(r.Choices) == 0 {
		return "", false
	}
	c := strings.TrimSpace(r.Choices[0].Message.Content)
	return c, c != ""
}

// legacyOutputResponse is the older responses shape: an output array of
// content blocks, each carrying text either inline or in a nested list.
type legacyOutputResponse struct {
	Output []struct {
		Text    string `json:"text"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

func (r legacyOutputResponse) courseDocument() (string, bool) {
	var b strings.Builder
	for _, block := range r.Output {
		if block.Text != "" {
			b.WriteString(block.Text)
		}
		for _, c := range block.Content {
			if c.Text != "" {
				b.WriteString(c.Text)
			}
		}
	}
	doc := strings.TrimSpace(b.String())
	return doc, doc != ""
}

// ExtractCourseDocument pulls the schema-matching JSON document out of a raw
// endpoint response, trying each known variant in order.
func ExtractCourseDocument(raw []byte) ([]byte, error) {
	var cc chatCompletionsResponse
	if err := json.Unmarshal(raw, &cc); err == nil {
		if doc, ok := cc.courseDocument(); ok {
			return []byte(stripCodeFence(doc)), nil
		}
	}
	var legacy legacyOutputResponse
	if err := json.Unmarshal(raw, &legacy); err == nil {
		if doc, ok := legacy.courseDocument(); ok {
			return []byte(stripCodeFence(doc)), nil
		}
	}
	return nil, fmt.Errorf("%w: no recognized response shape", ErrMalformedResponse)
}

// DecodeCourseList unmarshals a validated (or sanitized) course document.
// A missing or empty courses array decodes to an empty list, never an error.
func DecodeCourseList(doc []byte) (CourseList, error) {
	var out CourseList
	if err := json.Unmarshal(doc, &out); err != nil {
		return CourseList{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return out, nil
}

// stripCodeFence removes a markdown fence some models wrap around JSON even
// under structured output constraints.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
