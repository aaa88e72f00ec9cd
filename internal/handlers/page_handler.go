package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// PageHandler serves the main page, assembled by string concatenation of
// static HTML fragments.
type PageHandler struct {
	viewsDir string
	log      zerolog.Logger
}

// NewPageHandler creates a PageHandler reading fragments from viewsDir.
func NewPageHandler(viewsDir string, log zerolog.Logger) *PageHandler {
	return &PageHandler{viewsDir: viewsDir, log: log}
}

// HandleIndex assembles header + content + footer into the full page.
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	header := h.readFragment("header.html")
	content := h.readFragment("index.html")
	footer := h.readFragment("footer.html")

	page := `<!DOCTYPE html>
<html lang="es">
` + header + `
<body>
    <div class="app-container">
` + content + footer + `
    </div>
</body>
</html>`

	c.Type("html", "utf-8")
	return c.SendString(page)
}

// readFragment reads one HTML fragment; a missing fragment degrades to an
// empty string so the page still renders.
func (h *PageHandler) readFragment(name string) string {
	data, err := os.ReadFile(filepath.Join(h.viewsDir, name))
	if err != nil {
		h.log.Error().Err(err).Str("fragment", name).Msg("error leyendo fragmento de vista")
		return ""
	}
	return string(data)
}
