package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrAINotConfigured is returned when no API key is configured. The
// handler maps it to a localized message instead of crashing the app.
var ErrAINotConfigured = errors.New("AI API key not configured")

// Thai user-facing fallback messages.
const (
	MsgAINotConfigured = "AI Assistant ยังไม่ได้ตั้งค่า กรุณาใส่ OPENAI_API_KEY ใน environment variables"
	MsgAICallFailed    = "เกิดข้อผิดพลาดในการเรียกใช้ AI Assistant กรุณาลองใหม่อีกครั้ง"
	MsgAIEmptyAnswer   = "ไม่สามารถสร้างคำตอบได้ กรุณาลองใหม่อีกครั้ง"
)

// systemPrompts maps an assist type to its Thai system prompt.
var systemPrompts = map[string]string{
	"character":   "คุณเป็นผู้เชี่ยวชาญในการสร้างตัวละครสำหรับนิยาย ช่วยพัฒนาตัวละครให้มีมิติ น่าสนใจ และสมจริง ตอบเป็นภาษาไทยเสมอ",
	"plot":        "คุณเป็นผู้เชี่ยวชาญในการวางโครงเรื่อง ช่วยคิดเหตุการณ์ ความขัดแย้ง และการพัฒนาเรื่อง ตอบเป็นภาษาไทยเสมอ",
	"dialogue":    "คุณเป็นผู้เชี่ยวชาญในการเขียนบทสนทนา ช่วยสร้างบทพูดที่เป็นธรรมชาติและสอดคล้องกับตัวละคร ตอบเป็นภาษาไทยเสมอ",
	"description": "คุณเป็นผู้เชี่ยวชาญในการเขียนบรรยาย ช่วยสร้างการบรรยายที่สวยงามและมีภาพพจน์ ตอบเป็นภาษาไทยเสมอ",
	"continue":    "คุณเป็นนักเขียนมืออาชีพ ช่วยต่อเนื้อเรื่องให้สมเหตุสมผลและน่าติดตาม ตอบเป็นภาษาไทยเสมอ",
}

// genericSystemPrompt is used for unknown assist types.
const genericSystemPrompt = "คุณเป็นผู้ช่วยนักเขียน ช่วยเหลือในการเขียนนิยายภาษาไทย ตอบเป็นภาษาไทยเสมอ"

const (
	assistMaxTokens   = 800
	assistTemperature = 0.7
)

// AIConfig holds the settings for the assistant client.
type AIConfig struct {
	APIKey  string
	Model   string // Defaults to gpt-3.5-turbo
	BaseURL string // Optional, for OpenAI-compatible providers
	Timeout time.Duration
}

// AIService proxies free-text writing requests to a chat-completion
// provider with a prompt template chosen per assist type.
type AIService struct {
	client  *openai.Client // nil when no API key is configured
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewAIService creates the assistant service. A missing API key is not
// an error: the service is created disabled and every Assist call
// returns ErrAINotConfigured.
func NewAIService(cfg AIConfig, logger *zap.Logger) *AIService {
	if cfg.Model == "" {
		cfg.Model = openai.GPT3Dot5Turbo
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	s := &AIService{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger.Named("AIService"),
	}

	if cfg.APIKey == "" {
		s.logger.Warn("No AI API key configured, assistant is disabled")
		return s
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	s.client = openai.NewClientWithConfig(clientCfg)
	return s
}

// SystemPromptFor returns the Thai system prompt for an assist type,
// falling back to the generic writing-assistant prompt.
func SystemPromptFor(assistType string) string {
	if prompt, ok := systemPrompts[assistType]; ok {
		return prompt
	}
	return genericSystemPrompt
}

// Assist sends one chat-completion request. contextText carries the
// surrounding story material, request the author's instruction. There
// are no retries: a provider failure surfaces to the caller.
func (s *AIService) Assist(ctx context.Context, assistType, contextText, request string) (string, error) {
	if s.client == nil {
		return "", ErrAINotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SystemPromptFor(assistType),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("บริบท: %s\n\nคำขอ: %s", contextText, request),
			},
		},
		MaxTokens:   assistMaxTokens,
		Temperature: assistTemperature,
	})
	aiRequestDuration.WithLabelValues(s.model).Observe(time.Since(start).Seconds())

	if err != nil {
		aiRequestsTotal.WithLabelValues(s.model, "error").Inc()
		s.logger.Error("AI completion request failed", zap.String("type", assistType), zap.Error(err))
		return "", fmt.Errorf("AI completion request failed: %w", err)
	}
	aiRequestsTotal.WithLabelValues(s.model, "success").Inc()

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		s.logger.Warn("AI returned an empty answer", zap.String("type", assistType))
		return MsgAIEmptyAnswer, nil
	}
	return resp.Choices[0].Message.Content, nil
}
