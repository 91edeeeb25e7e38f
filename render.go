package cliargs

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/mitchellh/go-wordwrap"
)

const (
	DefaultLineWidth = 80
	DefaultTabWidth  = 4
)

// Renderer formats a Usage as help text. NewRenderer sets the default widths.
type Renderer struct {
	lineWidth int
	tabWidth  int
}

func NewRenderer(opts ...RenderOpt) Renderer {
	r := Renderer{
		lineWidth: DefaultLineWidth,
		tabWidth:  DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r Renderer) tab() string {
	return strings.Repeat(" ", r.tabWidth)
}

// Render returns the help text for u. Each section is followed by a blank line.
func (r Renderer) Render(u Usage) string {
	var b strings.Builder
	if u.Overview != "" {
		fmt.Fprintf(&b, "OVERVIEW: %s\n\n", u.Overview)
	}
	if len(u.SeeAlso) != 0 {
		fmt.Fprintf(&b, "SEE ALSO: %s\n\n", strings.Join(u.SeeAlso, ", "))
	}
	switch len(u.Commands) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "USAGE: %s\n\n", formHelp(u.Commands[0]))
	default:
		b.WriteString("USAGE:\n")
		for _, form := range u.Commands {
			fmt.Fprintf(&b, "%s%s\n", r.tab(), formHelp(form))
		}
		b.WriteString("\n")
	}
	args := u.args()
	width := 0
	for _, a := range args {
		if l := xstrings.Len(a.helpName()); l > width {
			width = l
		}
	}
	byKind := make(map[Kind][]Arg)
	for _, a := range args {
		byKind[a.Kind] = append(byKind[a.Kind], a)
	}
	for _, as := range byKind {
		sortArgs(as)
	}
	r.writeSection(&b, "ARGUMENTS", byKind[ArgumentKind], width)
	r.writeSection(&b, "OPTIONS", append(byKind[OptionKind], byKind[FlagKind]...), width)
	return b.String()
}

// Fprint writes the rendering of u to w.
func (r Renderer) Fprint(w io.Writer, u Usage) error {
	_, err := io.WriteString(w, r.Render(u))
	return err
}

func formHelp(form []Component) string {
	words := make([]string, 0, len(form))
	for _, c := range form {
		words = append(words, c.commandHelp())
	}
	return strings.Join(words, " ")
}

func sortArgs(as []Arg) {
	sort.SliceStable(as, func(i, j int) bool {
		return as[i].helpName() < as[j].helpName()
	})
}

func (r Renderer) writeSection(b *strings.Builder, title string, args []Arg, width int) {
	if len(args) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, a := range args {
		fmt.Fprintf(b, " %s\n", r.argHelp(a, width))
	}
	b.WriteString("\n")
}

// The detailed listing entry for a, with its name padded to width and its description wrapped
// to fit the line width.
func (r Renderer) argHelp(a Arg, width int) string {
	name := xstrings.LeftJustify(a.helpName(), width, " ")
	text := strings.Join(strings.Fields(a.helpText()), " ")
	if text == "" {
		return strings.TrimRight(name, " ")
	}
	if lim := r.lineWidth - width - r.tabWidth; lim > 0 {
		indent := "\n" + strings.Repeat(" ", 1+width+r.tabWidth)
		text = strings.Replace(wordwrap.WrapString(text, uint(lim)), "\n", indent, -1)
	}
	return name + r.tab() + text
}
