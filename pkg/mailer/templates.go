package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to cliphub, {{.FullName}}!</h2>
    <p>Your channel <strong>@{{.Username}}</strong> is ready.</p>
    <p>Upload an avatar, subscribe to channels you like, and start watching.</p>
  </body>
</html>`))

// Render produces subject, text, and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "welcome":
		var buf bytes.Buffer
		if err := welcomeTmpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to cliphub"
		text = fmt.Sprintf("Welcome to cliphub, %v! Your channel @%v is ready.", data["FullName"], data["Username"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
