package core

// Overlay shows or hides a titled message on top of the game.
type Overlay interface {
	Show(title, message string)
	Hide()
}

// Banner is an Overlay that just remembers what should be displayed.
// Games draw it during Render.
type Banner struct {
	Visible bool
	Title   string
	Message string
}

// Show implements Overlay.
func (b *Banner) Show(title, message string) {
	b.Visible = true
	b.Title = title
	b.Message = message
}

// Hide implements Overlay.
func (b *Banner) Hide() {
	b.Visible = false
}

// Lines returns the non-empty text lines of the banner.
func (b *Banner) Lines() []string {
	var lines []string
	if b.Title != "" {
		lines = append(lines, b.Title)
	}
	if b.Message != "" {
		lines = append(lines, b.Message)
	}
	return lines
}
