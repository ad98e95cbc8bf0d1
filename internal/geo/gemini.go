package geo

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	extractionModel = "gemini-1.5-flash-latest"
	visionModel     = "gemini-1.5-flash"

	extractionPromptTemplate = "Extract only the name of the city or town from the following disaster report. Do not return anything except the name.\n\n%q"
	imageAnalysisPrompt      = "Analyze this image for signs of disaster (e.g. flood, earthquake, fire) and check if it's authentic or manipulated."
)

// GeminiClient - клиент текстового извлечения и анализа изображений
// через Gemini generateContent API
type GeminiClient struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *logrus.Logger
}

// NewGeminiClient создает клиент Gemini
func NewGeminiClient(apiKey, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *logrus.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// ExtractLocation извлекает имя города или населенного пункта из свободного текста.
// Берется первый текстовый фрагмент первого кандидата, обрезанный по пробелам.
func (c *GeminiClient) ExtractLocation(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(extractionPromptTemplate, description)
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	text, err := c.generateContent(ctx, extractionModel, reqBody)
	if err != nil {
		c.metrics.ExtractionRequests.WithLabelValues("error").Inc()
		return "", err
	}

	location := strings.TrimSpace(text)
	if location == "" {
		c.metrics.ExtractionRequests.WithLabelValues("empty").Inc()
		return "", nil
	}

	c.metrics.ExtractionRequests.WithLabelValues("success").Inc()
	c.logger.WithField("location", location).Debug("Gemini extracted location")
	return location, nil
}

// AnalyzeImage анализирует изображение на признаки бедствия и подлинность
func (c *GeminiClient) AnalyzeImage(ctx context.Context, mimeType string, data []byte) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: imageAnalysisPrompt},
					{
						InlineData: &geminiInlineData{
							MimeType: mimeType,
							Data:     base64.StdEncoding.EncodeToString(data),
						},
					},
				},
			},
		},
	}

	analysis, err := c.generateContent(ctx, visionModel, reqBody)
	if err != nil {
		return "", err
	}
	if analysis == "" {
		return "Unable to analyze", nil
	}
	return analysis, nil
}

func (c *GeminiClient) generateContent(ctx context.Context, model string, body geminiRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	u := fmt.Sprintf("%s/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: status %d: %s", resp.StatusCode, respBody)
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// Типы запроса/ответа Gemini generateContent API.

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
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
