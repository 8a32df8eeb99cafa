package surface

import "errors"

// ErrFinalized is returned when drawing onto a page that has been finalized.
var ErrFinalized = errors.New("surface: page is finalized")

// Page is an append-only list of draw commands. Once Finalize is called the
// page rejects further commands.
type Page struct {
	section  string
	commands []Command
	final    bool
}

// NewPage creates an empty page attributed to the named document section.
func NewPage(section string) *Page {
	return &Page{section: section}
}

// Section returns the name of the section that emitted the page.
func (p *Page) Section() string { return p.section }

// Append adds commands to the end of the page.
func (p *Page) Append(cmds ...Command) error {
	if p.final {
		return ErrFinalized
	}
	p.commands = append(p.commands, cmds...)
	return nil
}

// Commands returns a copy of the page's commands in draw order.
func (p *Page) Commands() []Command {
	out := make([]Command, len(p.commands))
	copy(out, p.commands)
	return out
}

// Len returns the number of commands on the page.
func (p *Page) Len() int { return len(p.commands) }

// Finalize freezes the page.
func (p *Page) Finalize() { p.final = true }

// Finalized reports whether the page has been frozen.
func (p *Page) Finalized() bool { return p.final }

// Texts returns the strings of all text commands on the page, in order.
func (p *Page) Texts() []string {
	var out []string
	for _, c := range p.commands {
		if t, ok := c.(Text); ok {
			out = append(out, t.Str)
		}
	}
	return out
}

// Images returns the image commands on the page, in order.
func (p *Page) Images() []Image {
	var out []Image
	for _, c := range p.commands {
		if img, ok := c.(Image); ok {
			out = append(out, img)
		}
	}
	return out
}

// Metadata describes the document as a whole.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Document is the terminal artifact of a build: an ordered list of pages.
type Document struct {
	Meta  Metadata
	Pages []*Page
}

// NumPages returns the number of pages.
func (d *Document) NumPages() int { return len(d.Pages) }

// PagesFor returns the pages attributed to a section.
func (d *Document) PagesFor(section string) []*Page {
	var out []*Page
	for _, p := range d.Pages {
		if p.section == section {
			out = append(out, p)
		}
	}
	return out
}

// Sections returns the section name of every page, in page order.
func (d *Document) Sections() []string {
	out := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		out[i] = p.section
	}
	return out
}
