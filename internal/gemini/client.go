// Package gemini adapts the Gemini generative API to the two operations a
// journey needs: compose an image from reference photos and write a short
// text.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/playperu/worldtour/internal/travel"
)

const (
	DefaultImageModel = "gemini-2.5-flash-image"
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultTimeout    = 90 * time.Second
)

type Config struct {
	APIKey     string
	ImageModel string
	TextModel  string
	Timeout    time.Duration
}

// contentGenerator is the slice of *genai.Models the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client is safe for concurrent use. Reconfigure swaps the credentials
// without disturbing requests already in flight.
type Client struct {
	mu     sync.RWMutex
	models contentGenerator
	cfg    Config
	logger *slog.Logger

	dial func(ctx context.Context, apiKey string) (contentGenerator, error)
}

// New builds a client. An empty API key is accepted; every call then fails
// with ReasonMissingKey until Reconfigure supplies one.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.TextModel == "" {
		cfg.TextModel = DefaultTextModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{cfg: cfg, logger: logger, dial: dialGenAI}
	if cfg.APIKey == "" {
		logger.Warn("gemini api key not set, generation disabled until reconfigured")
		return c, nil
	}
	if err := c.Reconfigure(ctx, cfg.APIKey); err != nil {
		return nil, err
	}
	return c, nil
}

func dialGenAI(ctx context.Context, apiKey string) (contentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

// Reconfigure replaces the underlying SDK client with one using apiKey.
func (c *Client) Reconfigure(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return &Error{Reason: ReasonMissingKey}
	}
	models, err := c.dial(ctx, apiKey)
	if err != nil {
		return &Error{Reason: ReasonRequest, Err: fmt.Errorf("creating genai client: %w", err)}
	}

	c.mu.Lock()
	c.models = models
	c.cfg.APIKey = apiKey
	c.mu.Unlock()
	c.logger.Info("gemini client configured", "image_model", c.cfg.ImageModel, "text_model", c.cfg.TextModel)
	return nil
}

// Configured reports whether an API key is in place.
func (c *Client) Configured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.models != nil
}

func (c *Client) current() (contentGenerator, Config, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.models == nil {
		return nil, Config{}, &Error{Reason: ReasonMissingKey}
	}
	return c.models, c.cfg, nil
}

// ImageRequest asks for one image composed from reference photos.
type ImageRequest struct {
	Images      []travel.Photo
	Prompt      string
	AspectRatio string
}

func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (travel.Photo, error) {
	models, cfg, err := c.current()
	if err != nil {
		return travel.Photo{}, err
	}

	parts := make([]*genai.Part, 0, len(req.Images)+1)
	for _, img := range req.Images {
		if len(img.Data) == 0 {
			continue
		}
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))

	genCfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	}
	if req.AspectRatio != "" {
		genCfg.ImageConfig = &genai.ImageConfig{AspectRatio: req.AspectRatio}
	}

	resp, err := c.call(ctx, models, cfg.ImageModel, cfg.Timeout, parts, genCfg)
	if err != nil {
		return travel.Photo{}, err
	}
	return parseImage(resp)
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	models, cfg, err := c.current()
	if err != nil {
		return "", err
	}
	resp, err := c.call(ctx, models, cfg.TextModel, cfg.Timeout, []*genai.Part{genai.NewPartFromText(prompt)}, nil)
	if err != nil {
		return "", err
	}
	return parseText(resp)
}

func (c *Client) call(ctx context.Context, models contentGenerator, model string, timeout time.Duration, parts []*genai.Part, genCfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := models.GenerateContent(ctx, model, contents, genCfg)
	if err != nil {
		c.logger.Error("generation request failed", "model", model, "duration_ms", time.Since(start).Milliseconds(), "error", err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &Error{Reason: ReasonTimeout, Err: err}
		}
		return nil, &Error{Reason: ReasonRequest, Err: err}
	}
	c.logger.Debug("generation request done", "model", model, "duration_ms", time.Since(start).Milliseconds())
	return resp, nil
}
