// Package assist wraps the Gemini text-generation API for the two editor
// features that use it: drafting a client email and polishing itinerary
// wording. Every failure path degrades to a deterministic fallback string;
// nothing here ever returns an error to the editor.
package assist

import (
	"context"
	"fmt"

	"traveldesk-backend/internal/logger"
	"traveldesk-backend/internal/model"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const generationModel = "gemini-2.5-flash"

// Fallback strings. These are part of the observable contract.
const (
	NotConfiguredMessage = "AI API Key not configured."
	DraftErrorMessage    = "Error generating email draft. Please try again."
	EmptyDraftMessage    = "Could not generate draft."
)

// Client is the AI Assist collaborator. A Client without a configured
// credential is valid and reports itself unavailable.
type Client struct {
	genai *genai.Client
	log   zerolog.Logger
}

// New builds the collaborator. An empty API key, or a client that fails to
// initialize, yields an unavailable Client rather than an error.
func New(ctx context.Context, apiKey string) *Client {
	c := &Client{log: logger.WithComponent("assist")}
	if apiKey == "" {
		return c
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		c.log.Warn().Err(err).Msg("gemini client init failed, assist disabled")
		return c
	}
	c.genai = gc
	return c
}

// IsAvailable reports whether a credential is configured.
func (c *Client) IsAvailable() bool {
	return c.genai != nil
}

// DraftEmail generates the body of a client email for the given document.
// Unavailable -> fixed not-configured string; request failure -> fixed error
// string; empty model output -> fixed placeholder.
func (c *Client) DraftEmail(ctx context.Context, doc *model.Document, customer *model.Customer, settings model.AppSettings) string {
	if !c.IsAvailable() {
		return NotConfiguredMessage
	}

	totals := doc.Totals()
	prompt := fmt.Sprintf(`
You are a travel agent assistant. Write a professional and polite email to a client.
Agency Name: %s
Customer Name: %s
Document Type: %s (Number: %s)
Total Amount: %s%s
Return ONLY the body of the email.
`, settings.AgencyName, customer.Name, doc.Kind, doc.Number, settings.Currency, totals.Subtotal.String())

	resp, err := c.genai.Models.GenerateContent(ctx, generationModel, genai.Text(prompt), nil)
	if err != nil {
		c.log.Error().Err(err).Str("document", doc.Number).Msg("email draft generation failed")
		return DraftErrorMessage
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return EmptyDraftMessage
}

// EnhanceText rewrites an itinerary description. Unavailable or failed calls
// return the input unchanged.
func (c *Client) EnhanceText(ctx context.Context, text string) string {
	if !c.IsAvailable() {
		return text
	}

	prompt := fmt.Sprintf(`
Improve the following travel itinerary description to make it sound more exciting and professional.
Original text: %q
`, text)

	resp, err := c.genai.Models.GenerateContent(ctx, generationModel, genai.Text(prompt), nil)
	if err != nil {
		c.log.Warn().Err(err).Msg("enhance failed, keeping original text")
		return text
	}
	if enhanced := resp.Text(); enhanced != "" {
		return enhanced
	}
	return text
}
