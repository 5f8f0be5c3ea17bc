package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNewsletter(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out, err := r.RenderNewsletter(Page{
		NewsletterID: "n1",
		Content:      "Weekly digest",
		ImageURL:     "https://cdn.example.com/x.png",
		Email:        "a@x.com",
		CreatedAt:    "2026-03-01 09:30:00",
		CurrentTime:  "2026-03-02 10:00:00",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Weekly digest")
	assert.Contains(t, out, `src="https://cdn.example.com/x.png"`)
	assert.Contains(t, out, "a@x.com")
	assert.Contains(t, out, "Newsletter ID: n1")
	assert.Contains(t, out, "Created: 2026-03-01 09:30:00")
	assert.Contains(t, out, "Viewed: 2026-03-02 10:00:00")
}

func TestRenderNewsletterEscapesContent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	out, err := r.RenderNewsletter(Page{
		NewsletterID: "n1",
		Content:      `<script>alert("x")</script>`,
		ImageURL:     `https://cdn.example.com/x.png"><script>`,
		Email:        "a@x.com",
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, `x.png"><script>`)
}
