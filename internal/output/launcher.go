package output

import (
	"bytes"
	"html/template"
	"time"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/render"
)

// DefaultSettleDelay is the pause between the viewer finishing its load and
// the print command
const DefaultSettleDelay = 250 * time.Millisecond

const launcherTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Print {{.Title}}</title>
    <style>
        html, body { margin: 0; padding: 0; height: 100%; }
        iframe { border: 0; width: 100%; height: 100%; }
    </style>
</head>
<body>
    <iframe id="invoice-frame" title="{{.Title}}"></iframe>
    <script>
        (function () {
            var frame = document.getElementById('invoice-frame');
            frame.onload = function () {
                frame.onload = null;
                frame.contentWindow.focus();
                setTimeout(function () { frame.contentWindow.print(); }, {{.SettleMs}});
            };
            frame.srcdoc = {{.Document}};
        })();
    </script>
</body>
</html>
`

var launcherTpl = template.Must(template.New("launcher").Parse(launcherTemplate))

// Launcher builds the browser print page: it loads the exact rendered document
// into a frame, waits for the frame's load event and the settle delay, then
// opens the print dialog.
type Launcher struct {
	renderer render.Renderer
	settle   time.Duration
}

// NewLauncher creates a print launcher. A non-positive settle uses the default.
func NewLauncher(r render.Renderer, settle time.Duration) *Launcher {
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return &Launcher{renderer: r, settle: settle}
}

// Page renders the launcher for inv
func (l *Launcher) Page(inv *domain.Invoice) (string, error) {
	view := struct {
		Title    string
		SettleMs int64
		Document string
	}{
		Title:    render.Filename(inv),
		SettleMs: l.settle.Milliseconds(),
		Document: l.renderer.Render(inv),
	}

	var buf bytes.Buffer
	if err := launcherTpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
