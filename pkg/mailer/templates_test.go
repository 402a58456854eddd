package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Welcome(t *testing.T) {
	subject, text, html, err := Render("welcome", map[string]any{
		"FullName": "Demo User",
		"Username": "demouser",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to cliphub", subject)
	assert.Contains(t, text, "Demo User")
	assert.Contains(t, text, "@demouser")
	assert.Contains(t, html, "Welcome to cliphub, Demo User!")
	assert.Contains(t, html, "<strong>@demouser</strong>")
}

func TestRender_EscapesHTMLInNames(t *testing.T) {
	_, _, html, err := Render("welcome", map[string]any{
		"FullName": "<script>alert(1)</script>",
		"Username": "demouser",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("goodbye", nil)
	assert.Error(t, err)
}
