package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Salam-35/PhdTrack-sub000/internal/llm"
	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

// ExtractCourses implements llm.CourseExtractor against chat/completions with
// a json_schema response format. Text chunks and image transcripts share the
// same response handling; only the message payload differs.
func (c *Client) ExtractCourses(ctx context.Context, req llm.ExtractRequest) ([]transcript.RawCourse, []byte, error) {
	if c.cfg.APIKey == "" {
		return nil, nil, llm.ErrMissingAPIKey
	}

	rid := uuid.New().String()
	start := time.Now()

	isImage := req.ImagePath != ""
	model := c.cfg.Model
	if isImage {
		model = c.cfg.VisionModel
	}

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", model,
		"temp", c.cfg.Temperature,
		"image", isImage,
		"chunk", req.ChunkIndex,
		"chunks", req.ChunkCount,
		"text_len", len(req.ChunkText),
	)

	schema := llm.BuildCourseListJSONSchema()
	userContent, err := buildUserContent(req)
	if err != nil {
		return nil, nil, err
	}

	body := map[string]any{
		"model":       model,
		"temperature": c.cfg.Temperature,
		"response_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "transcript_courses",
				"strict": true,
				"schema": schema,
			},
		},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildSystemPrompt(req)},
			{"role": "user", "content": userContent},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, err
	}

	doc, err := llm.ExtractCourseDocument(raw)
	if err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, err
	}

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, doc); err != nil {
		if !c.cfg.LenientOptional {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", err, "content", string(doc),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, doc, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
		}
		cleaned, notes, sErr := llm.SanitizeCourseDocument(doc)
		if sErr != nil {
			c.log.Error("llm.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, doc, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(doc),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, doc, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, vErr)
		}
		c.log.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "notes", notes,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		doc = cleaned
	}

	list, err := llm.DecodeCourseList(doc)
	if err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, doc, err
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"courses", len(list.Courses),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return list.Courses, doc, nil
}

// buildUserContent returns either the plain chunk prompt or the two-part
// vision payload with the image attached as a data URL.
func buildUserContent(req llm.ExtractRequest) (any, error) {
	if req.ImagePath == "" {
		return llm.BuildUserPrompt(req), nil
	}
	dataURL, _, err := llm.ReadImageDataURL(req.ImagePath)
	if err != nil {
		return nil, err
	}
	return []map[string]any{
		{"type": "text", "text": "Extract all courses from the attached transcript image."},
		{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
	}, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
