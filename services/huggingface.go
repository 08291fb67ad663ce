package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const huggingFaceBaseURL = "https://api-inference.huggingface.co/models/"

type HuggingFaceClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewHuggingFaceClient(apiKey, model string, timeout time.Duration) *HuggingFaceClient {
	return &HuggingFaceClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: huggingFaceBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfResponse []struct {
	GeneratedText string `json:"generated_text"`
}

func (c *HuggingFaceClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.Wrap(ErrAIUnavailable, "huggingface API key not configured")
	}

	jsonBody, err := json.Marshal(hfRequest{
		Inputs: "[INST] " + prompt + " [/INST]",
		Parameters: hfParameters{
			MaxNewTokens:   1200,
			Temperature:    0.7,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.model, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "huggingface request")
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", errors.New("AI model is loading, please retry in a few seconds")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HuggingFace API error (%d): %s", resp.StatusCode, string(body))
	}

	var hfResp hfResponse
	if err := json.Unmarshal(body, &hfResp); err != nil {
		return "", errors.Wrap(err, "failed to parse AI response")
	}
	if len(hfResp) == 0 || strings.TrimSpace(hfResp[0].GeneratedText) == "" {
		return "", errors.New("empty response from AI")
	}

	return strings.TrimSpace(hfResp[0].GeneratedText), nil
}
