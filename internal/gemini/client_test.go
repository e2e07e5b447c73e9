package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/playperu/worldtour/internal/travel"
)

type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error
	wait time.Duration

	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents, f.config = model, contents, config
	if f.wait > 0 {
		select {
		case <-time.After(f.wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.resp, f.err
}

func testClient(t *testing.T, m *fakeModels, timeout time.Duration) *Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := New(context.Background(), Config{Timeout: timeout}, logger)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	c.dial = func(context.Context, string) (contentGenerator, error) { return m, nil }
	if err := c.Reconfigure(context.Background(), "test-key"); err != nil {
		t.Fatalf("reconfigure: %v", err)
	}
	return c
}

func imageResponse(mime string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "here you go"},
				{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
			}},
		}},
	}
}

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, len(texts))
	for i, s := range texts {
		parts[i] = &genai.Part{Text: s}
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func reasonOf(t *testing.T, err error) Reason {
	t.Helper()
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *gemini.Error, got %T: %v", err, err)
	}
	return gerr.Reason
}

func TestMissingKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := New(context.Background(), Config{}, logger)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if c.Configured() {
		t.Error("expected client without key to be unconfigured")
	}

	_, err = c.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})
	if r := reasonOf(t, err); r != ReasonMissingKey {
		t.Errorf("expected %s, got %s", ReasonMissingKey, r)
	}
	_, err = c.GenerateText(context.Background(), "x")
	if r := reasonOf(t, err); r != ReasonMissingKey {
		t.Errorf("expected %s, got %s", ReasonMissingKey, r)
	}
	if r := reasonOf(t, c.Reconfigure(context.Background(), "  ")); r != ReasonMissingKey {
		t.Errorf("expected blank key to be rejected, got %s", r)
	}
}

func TestGenerateImage(t *testing.T) {
	m := &fakeModels{resp: imageResponse("image/jpeg", []byte("jpeg-bytes"))}
	c := testClient(t, m, time.Second)

	photo, err := c.GenerateImage(context.Background(), ImageRequest{
		Images:      []travel.Photo{{MIMEType: "image/png", Data: []byte("persona")}, {}, {MIMEType: "image/png", Data: []byte("selfie")}},
		Prompt:      "stand in front of the tower",
		AspectRatio: "9:16",
	})
	if err != nil {
		t.Fatalf("generate image: %v", err)
	}
	if photo.MIMEType != "image/jpeg" || string(photo.Data) != "jpeg-bytes" {
		t.Errorf("unexpected photo %+v", photo)
	}

	if m.model != DefaultImageModel {
		t.Errorf("expected model %s, got %s", DefaultImageModel, m.model)
	}
	if len(m.contents) != 1 {
		t.Fatalf("expected one content, got %d", len(m.contents))
	}
	parts := m.contents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("expected 2 images and a prompt, got %d parts", len(parts))
	}
	if parts[2].Text != "stand in front of the tower" {
		t.Errorf("expected prompt last, got %q", parts[2].Text)
	}
	if m.config == nil || m.config.ImageConfig == nil || m.config.ImageConfig.AspectRatio != "9:16" {
		t.Errorf("expected aspect ratio 9:16 in config, got %+v", m.config)
	}
}

func TestGenerateImageFailures(t *testing.T) {
	tests := []struct {
		name    string
		models  *fakeModels
		timeout time.Duration
		want    Reason
	}{
		{"request error", &fakeModels{err: errors.New("quota")}, time.Second, ReasonRequest},
		{"timeout", &fakeModels{wait: time.Second}, 10 * time.Millisecond, ReasonTimeout},
		{"text only", &fakeModels{resp: textResponse("sorry, I can't")}, time.Second, ReasonNoImage},
		{"empty response", &fakeModels{resp: &genai.GenerateContentResponse{}}, time.Second, ReasonNoImage},
		{"nil response", &fakeModels{}, time.Second, ReasonNoImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, tt.models, tt.timeout)
			_, err := c.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})
			if r := reasonOf(t, err); r != tt.want {
				t.Errorf("expected %s, got %s (%v)", tt.want, r, err)
			}
		})
	}
}

func TestGenerateText(t *testing.T) {
	m := &fakeModels{resp: textResponse("  Tokyo was ", "amazing!  ")}
	c := testClient(t, m, time.Second)

	text, err := c.GenerateText(context.Background(), "write")
	if err != nil {
		t.Fatalf("generate text: %v", err)
	}
	if text != "Tokyo was amazing!" {
		t.Errorf("unexpected text %q", text)
	}
	if m.model != DefaultTextModel {
		t.Errorf("expected model %s, got %s", DefaultTextModel, m.model)
	}

	m.resp = textResponse("   ")
	_, err = c.GenerateText(context.Background(), "write")
	if r := reasonOf(t, err); r != ReasonNoText {
		t.Errorf("expected %s, got %s", ReasonNoText, r)
	}
}

func TestRefusalReason(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
	}
	_, err := parseImage(resp)
	var gerr *Error
	if !errors.As(err, &gerr) || gerr.Err == nil {
		t.Fatalf("expected wrapped block reason, got %v", err)
	}
}
