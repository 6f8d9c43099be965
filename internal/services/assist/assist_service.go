package assist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AssistService calls the external generative-text API. The body contract is
// {prompt} in, {generatedText} out; anything else is treated as failure and
// surfaced to the caller, never retried, never stored.
type AssistService struct {
	Client  *http.Client
	APIKey  string
	BaseURL string
}

func NewAssistService(baseURL, apiKey string) *AssistService {
	return &AssistService{
		Client:  &http.Client{Timeout: 30 * time.Second},
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	GeneratedText string `json:"generatedText"`
	Error         string `json:"error,omitempty"`
}

func (s *AssistService) Generate(prompt string) (string, error) {
	jsonBody, _ := json.Marshal(generateRequest{Prompt: prompt})

	req, err := http.NewRequest("POST", s.BaseURL+"/v1/generate", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text service returned %d", resp.StatusCode)
	}

	var apiResp generateResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}
	if apiResp.GeneratedText == "" {
		if apiResp.Error != "" {
			return "", fmt.Errorf("text service error: %s", apiResp.Error)
		}
		return "", fmt.Errorf("text service returned empty text")
	}

	return apiResp.GeneratedText, nil
}

// CoachPrompt wraps a user's free-form profile text with the career-coach
// framing used by the resume helper.
func CoachPrompt(text string) string {
	return "You are a career coach helping a university student present themselves to potential clients. " +
		"Rewrite the following text to be professional, concise, and compelling. " +
		"Return only the improved text.\n\n" + text
}

// SupportPrompt wraps a support question with the knowledge-base blob and the
// deferral instruction.
func SupportPrompt(question, knowledge, supportEmail string) string {
	return "You are the support assistant for CampusGig, a marketplace connecting student freelancers with clients. " +
		"Answer the user's question using only the knowledge base below. " +
		"If the answer is not in the knowledge base, say you don't know and tell the user to contact " + supportEmail + ".\n\n" +
		"Knowledge base:\n" + knowledge + "\n\nQuestion: " + question
}
