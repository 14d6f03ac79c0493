package app

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jask/sheetstack/internal/store"
)

// Content is a sheet subtree that also accepts keys while its sheet is the
// focused layer.
type Content interface {
	View(width, height int) string
	HandleKey(key string)
}

// TextContent shows wrapped prose inside a scrollable viewport.
type TextContent struct {
	text string
	vp   viewport.Model
}

// NewTextContent builds body content for a detail sheet.
func NewTextContent(text string) *TextContent {
	return &TextContent{text: text, vp: viewport.New(0, 0)}
}

// HandleKey scrolls the viewport.
func (c *TextContent) HandleKey(key string) {
	switch key {
	case "up", "k":
		c.vp.LineUp(1)
	case "down", "j":
		c.vp.LineDown(1)
	}
}

// View renders the wrapped text clipped to the sheet body.
func (c *TextContent) View(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 1 {
		height = 1
	}
	c.vp.Width = width
	c.vp.Height = height
	c.vp.SetContent(wordwrap.String(c.text, width))
	return c.vp.View()
}

// PickerContent is a selectable item list for the picker sheet.
type PickerContent struct {
	items    []store.Item
	cursor   int
	onSelect func(store.Item)
}

var pickerCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// NewPickerContent builds the picker body; onSelect fires on enter.
func NewPickerContent(items []store.Item, onSelect func(store.Item)) *PickerContent {
	return &PickerContent{items: items, onSelect: onSelect}
}

// HandleKey moves the cursor and confirms a selection.
func (c *PickerContent) HandleKey(key string) {
	switch key {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.items)-1 {
			c.cursor++
		}
	case "enter":
		if c.onSelect != nil && len(c.items) > 0 {
			c.onSelect(c.items[c.cursor])
		}
	}
}

// View renders the list clipped to the sheet body.
func (c *PickerContent) View(width, height int) string {
	out := ""
	shown := 0
	for i, it := range c.items {
		if shown >= height {
			break
		}
		line := "  " + it.Title
		if i == c.cursor {
			line = pickerCursorStyle.Render("> " + it.Title)
		}
		if shown > 0 {
			out += "\n"
		}
		out += line
		shown++
	}
	return out
}
