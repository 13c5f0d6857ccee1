package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bactien/YCBG/internal/models"
)

// Suggestion is the structured response contract of the generative-text
// collaborator: one suggested value per item field.
type Suggestion struct {
	System      string `json:"system"`
	Glass       string `json:"glass"`
	Accessories string `json:"accessories"`
}

// Suggester turns a door name into suggested item specs, or fails. Failures
// are reported once and never retried.
type Suggester interface {
	Suggest(ctx context.Context, doorName string) (*Suggestion, error)
}

var ErrSuggestionFailed = errors.New("suggestion failed")

// MergeSuggestion copies non-empty suggested fields onto the item, leaving
// existing values in place where the suggestion came back blank.
func MergeSuggestion(item *models.Item, s *Suggestion) {
	if s.System != "" {
		item.System = s.System
	}
	if s.Glass != "" {
		item.Glass = s.Glass
	}
	if s.Accessories != "" {
		item.Accessories = s.Accessories
	}
}

// GeminiSuggester calls the Gemini generateContent endpoint with a JSON
// response schema, the same request the original client issued directly.
type GeminiSuggester struct {
	APIKey string
	URL    string
	Client *http.Client
}

func NewGeminiSuggester(apiKey, url string) *GeminiSuggester {
	return &GeminiSuggester{APIKey: apiKey, URL: url, Client: &http.Client{Timeout: 30 * time.Second}}
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiSuggester) Suggest(ctx context.Context, doorName string) (*Suggestion, error) {
	prompt := fmt.Sprintf("Dựa vào tên cửa %q cho một công trình tại Việt Nam, hãy gợi ý thông số kỹ thuật. Trả về dưới dạng JSON.", doorName)
	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"system":      map[string]string{"type": "STRING", "description": "Hệ nhôm được đề xuất (ví dụ: Xingfa Class A, Aluman-DW50)."},
					"glass":       map[string]string{"type": "STRING", "description": "Loại kính phù hợp (ví dụ: Kính cường lực 10mm, Kính hộp 5-9-5)."},
					"accessories": map[string]string{"type": "STRING", "description": "Các phụ kiện đi kèm (ví dụ: Bản lề 3D, Khóa đa điểm, Tay nắm)."},
				},
				"required": []string{"system", "glass", "accessories"},
			},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSuggestionFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d", ErrSuggestionFailed, resp.StatusCode)
	}
	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSuggestionFailed, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrSuggestionFailed)
	}
	var s Suggestion
	if err := json.Unmarshal([]byte(decoded.Candidates[0].Content.Parts[0].Text), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSuggestionFailed, err)
	}
	return &s, nil
}
