package gemini

import (
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/playperu/worldtour/internal/travel"
)

func responseParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil {
		return nil
	}
	var parts []*genai.Part
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		parts = append(parts, cand.Content.Parts...)
	}
	return parts
}

// parseImage returns the first inline image of the response.
func parseImage(resp *genai.GenerateContentResponse) (travel.Photo, error) {
	for _, p := range responseParts(resp) {
		if p == nil || p.InlineData == nil || len(p.InlineData.Data) == 0 {
			continue
		}
		mime := p.InlineData.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		return travel.Photo{MIMEType: mime, Data: p.InlineData.Data}, nil
	}
	return travel.Photo{}, &Error{Reason: ReasonNoImage, Err: refusal(resp)}
}

// parseText joins the non-thought text parts of the response.
func parseText(resp *genai.GenerateContentResponse) (string, error) {
	var b strings.Builder
	for _, p := range responseParts(resp) {
		if p == nil || p.Thought || p.Text == "" {
			continue
		}
		b.WriteString(p.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", &Error{Reason: ReasonNoText, Err: refusal(resp)}
	}
	return text, nil
}

// refusal describes why a response carried no usable payload, if the
// response says.
func refusal(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return errors.New("empty response")
	}
	if pf := resp.PromptFeedback; pf != nil && pf.BlockReason != "" {
		return errors.New("prompt blocked: " + string(pf.BlockReason))
	}
	for _, cand := range resp.Candidates {
		if cand != nil && cand.FinishReason != "" && cand.FinishReason != genai.FinishReasonStop {
			return errors.New("finish reason: " + string(cand.FinishReason))
		}
	}
	return nil
}
