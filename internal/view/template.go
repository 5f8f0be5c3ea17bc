// Package view renders retrieved newsletter data into HTML.
//
// Rendering is pure templating via the Liquid engine: no business logic, no
// database or network access. Every interpolated field goes through the
// escape filter so untrusted content cannot inject markup.
package view

import (
	"html"

	"github.com/osteele/liquid"
)

// TimeLayout is the fixed textual format for timestamps on the page.
const TimeLayout = "2006-01-02 15:04:05"

// Page carries everything the newsletter template interpolates. Timestamps
// arrive pre-formatted with TimeLayout.
type Page struct {
	NewsletterID string
	Content      string
	ImageURL     string
	Email        string
	CreatedAt    string
	CurrentTime  string
}

// Renderer holds the compiled newsletter template. Compile once at startup;
// a Renderer is safe for concurrent use.
type Renderer struct {
	newsletter *liquid.Template
}

// NewRenderer builds the Liquid engine, registers filters, and compiles the
// newsletter template.
func NewRenderer() (*Renderer, error) {
	engine := liquid.NewEngine()

	// HTML escape: {{ content | escape }}
	engine.RegisterFilter("escape", func(s string) string {
		return html.EscapeString(s)
	})

	tpl, err := engine.ParseString(newsletterTemplate)
	if err != nil {
		return nil, err
	}

	return &Renderer{newsletter: tpl}, nil
}

// RenderNewsletter renders the newsletter page for the given data.
func (r *Renderer) RenderNewsletter(p Page) (string, error) {
	return r.newsletter.RenderString(map[string]interface{}{
		"newsletter_id": p.NewsletterID,
		"content":       p.Content,
		"image_url":     p.ImageURL,
		"email":         p.Email,
		"created_at":    p.CreatedAt,
		"current_time":  p.CurrentTime,
	})
}

const newsletterTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Newsletter {{ newsletter_id | escape }}</title>
    <style>
        body { font-family: Arial, Helvetica, sans-serif; margin: 0; background: #f4f4f4; }
        .newsletter { max-width: 680px; margin: 24px auto; background: #fff; border-radius: 6px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
        .newsletter img { display: block; width: 100%; height: auto; }
        .content { padding: 24px; line-height: 1.6; color: #333; }
        .meta { padding: 16px 24px; background: #fafafa; border-top: 1px solid #eee; font-size: 12px; color: #888; }
        .meta p { margin: 4px 0; }
    </style>
</head>
<body>
    <div class="newsletter">
        <img src="{{ image_url | escape }}" alt="Newsletter image">
        <div class="content">{{ content | escape }}</div>
        <div class="meta">
            <p>Newsletter ID: {{ newsletter_id | escape }}</p>
            <p>Delivered to: {{ email | escape }}</p>
            <p>Created: {{ created_at | escape }}</p>
            <p>Viewed: {{ current_time | escape }}</p>
        </div>
    </div>
</body>
</html>
`
