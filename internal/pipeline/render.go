package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/nameparser/internal/model"
)

// ErrUnknownFormat is returned for an output format other than json, yaml or text
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes parse results in one output format
type Renderer struct {
	format string

	title *color.Color
	label *color.Color
	alias *color.Color
	flag  *color.Color
	muted *color.Color
}

// NewRenderer creates a renderer. colored only affects the text format.
func NewRenderer(format string, colored bool) (*Renderer, error) {
	switch format {
	case model.FormatJSON, model.FormatYAML, model.FormatText:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	r := &Renderer{
		format: format,
		title:  color.New(color.FgWhite, color.Bold),
		label:  color.New(color.FgCyan),
		alias:  color.New(color.FgMagenta),
		flag:   color.New(color.FgYellow),
		muted:  color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{r.title, r.label, r.alias, r.flag, r.muted} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r, nil
}

// Render writes names to w
func (r *Renderer) Render(w io.Writer, names []model.ParsedName) error {
	if names == nil {
		names = []model.ParsedName{}
	}

	switch r.format {
	case model.FormatYAML:
		return r.renderYAML(w, names)
	case model.FormatText:
		return r.renderText(w, names)
	default:
		return r.renderJSON(w, names)
	}
}

func (r *Renderer) renderJSON(w io.Writer, names []model.ParsedName) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(names); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func (r *Renderer) renderYAML(w io.Writer, names []model.ParsedName) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(names); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}
	return nil
}

func (r *Renderer) renderText(w io.Writer, names []model.ParsedName) (err error) {
	// Helper for writing with error checking
	printf := func(c *color.Color, format string, a ...interface{}) {
		if err != nil {
			return
		}
		_, err = c.Fprintf(w, format, a...)
	}
	row := func(label string, part model.Part) {
		if v, ok := part.Get(); ok {
			printf(r.label, "  %-13s", label+":")
			printf(r.title, "%s\n", v)
		}
	}

	for i, n := range names {
		if i > 0 {
			printf(r.muted, "\n")
		}

		full := n.FullName()
		if full == "" {
			full = "(no name)"
		}
		printf(r.title, "%s\n", full)
		printf(r.muted, "  %-13s%q\n", "input:", n.Input)

		row("salutation", n.Salutation)
		row("fore name", n.ForeName)
		row("middle name", n.MiddleName)
		row("surname", n.SurName)
		row("generation", n.Generation)
		row("suffix", n.Suffix)

		for _, a := range n.Aliases {
			printf(r.label, "  %-13s", "alias:")
			printf(r.alias, "%s\n", a)
		}
		if flags := n.Flags(); len(flags) > 0 {
			printf(r.label, "  %-13s", "flags:")
			printf(r.flag, "%s\n", strings.Join(flags, ", "))
		}
	}

	return err
}
