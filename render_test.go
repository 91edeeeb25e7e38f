package cliargs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleUsage() Usage {
	return Usage{
		Overview: "This is the overview",
		SeeAlso:  []string{"this one", "that one"},
		Commands: [][]Component{{
			Literal("command"),
			Positional(Both("s", "something"), Help("This is something that you'll want to use.")),
			Option(Long("another"), Default("one bites the dust"), Help("Another thing that might matter. This description is really long and should wrap to multiple lines. It's gonna get lengthy.")),
			Literal("literal"),
			Flag(Long("flag"), Help("Turn this on for a good time.")),
		}},
	}
}

const exampleUsageText = `OVERVIEW: This is the overview

SEE ALSO: this one, that one

USAGE: command [--something] [--another <another>] literal [--flag]

ARGUMENTS:
 -s, --something        This is something that you'll want to use.

OPTIONS:
 --another <another>    Another thing that might matter. This description is
                        really long and should wrap to multiple lines. It's gonna
                        get lengthy. (default: one bites the dust)
 --flag                 Turn this on for a good time.

`

func TestRenderFull(t *testing.T) {
	assert.Equal(t, exampleUsageText, exampleUsage().String())
	assert.Equal(t, exampleUsageText, NewRenderer().Render(exampleUsage()))
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Usage{}.String())
	assert.Equal(t, "OVERVIEW: hi\n\n", Usage{Overview: "hi", SeeAlso: []string{}}.String())
}

func TestRenderMultipleForms(t *testing.T) {
	u := Usage{Commands: [][]Component{
		{Literal("tool"), Literal("add"), Positional(Long("path"), Required())},
		{Literal("tool"), Literal("rm"), Positional(Long("path"), Required()), Flag(Short("f"))},
	}}
	assert.Equal(t, "USAGE:\n"+
		"    tool add --path\n"+
		"    tool rm --path [-f]\n"+
		"\n"+
		"ARGUMENTS:\n"+
		" --path\n"+
		"\n"+
		"OPTIONS:\n"+
		" -f\n"+
		"\n", u.String())
}

func TestRenderDeduplicates(t *testing.T) {
	verbose := Flag(Both("v", "verbose"), Help("chatty"))
	file := Positional(Long("file"), Help("input"), Required())
	u := Usage{Commands: [][]Component{
		{Literal("a"), verbose, file},
		{Literal("b"), verbose, file},
		// Differs in description, so it's a separate entry.
		{Literal("c"), Positional(Long("file"), Help("output"), Required())},
	}}
	s := u.String()
	assert.Equal(t, 1, strings.Count(s, "-v, --verbose"))
	assert.Equal(t, 1, strings.Count(s, "input"))
	assert.Equal(t, 1, strings.Count(s, "output"))
	assert.Contains(t, s, "ARGUMENTS:\n"+
		" --file           input\n"+
		" --file           output\n"+
		"\n")
}

func TestRenderSortsAndSharesColumn(t *testing.T) {
	u := Usage{Commands: [][]Component{{
		Flag(Long("zeta"), Help("z")),
		Option(Short("o"), Help("o")),
		Flag(Long("alpha"), Help("a")),
		Positional(Long("b"), Help("b")),
		Positional(Long("a"), Help("a")),
		Option(Long("long-option"), Help("l")),
	}}}
	assert.Equal(t, "USAGE: [--zeta] [-o <o>] [--alpha] [--b] [--a] [--long-option <long-option>]\n"+
		"\n"+
		"ARGUMENTS:\n"+
		" --a                            a\n"+
		" --b                            b\n"+
		"\n"+
		"OPTIONS:\n"+
		" --long-option <long-option>    l\n"+
		" -o <o>                         o\n"+
		" --alpha                        a\n"+
		" --zeta                         z\n"+
		"\n", u.String())
}

func TestRenderRequiredAndDefault(t *testing.T) {
	u := Usage{Commands: [][]Component{{
		Option(Both("n", "count"), Required(), Default("3")),
		Flag(Long("x"), Required(), Default("ignored")),
	}}}
	assert.Equal(t, "USAGE: --count <count> [--x]\n"+
		"\n"+
		"OPTIONS:\n"+
		" -n, --count <count>    (default: 3)\n"+
		" --x\n"+
		"\n", u.String())
}

func TestRenderWraps(t *testing.T) {
	desc := strings.Repeat("lorem ipsum dolor sit amet ", 12)
	u := Usage{Commands: [][]Component{{Option(Long("name"), Help(desc))}}}
	r := NewRenderer(LineWidth(60))
	out := r.Render(u)
	lines := strings.Split(strings.TrimSuffix(out, "\n\n"), "\n")
	require.Equal(t, "OPTIONS:", lines[2])
	entry := lines[3:]
	require.True(t, len(entry) > 1, "%q", out)
	width := len("--name <name>")
	lim := 60 - width - DefaultTabWidth
	indent := strings.Repeat(" ", 1+width+DefaultTabWidth)
	assert.True(t, strings.HasPrefix(entry[0], " --name <name>    lorem"))
	for _, l := range entry[1:] {
		assert.True(t, strings.HasPrefix(l, indent), "%q", l)
		assert.NotEqual(t, " ", l[len(indent):len(indent)+1])
		assert.True(t, len(l)-len(indent) <= lim, "%q", l)
	}
	assert.True(t, len(entry[0])-len(indent) <= lim)
	var words []string
	words = append(words, strings.Fields(entry[0])[2:]...)
	for _, l := range entry[1:] {
		words = append(words, strings.Fields(l)...)
	}
	assert.Equal(t, strings.Fields(desc), words)
}

func TestRenderNoWrapWhenNoRoom(t *testing.T) {
	desc := "a description long enough that it would wrap at any sane width"
	u := Usage{Commands: [][]Component{{Flag(Long("flag"), Help(desc))}}}
	out := NewRenderer(LineWidth(8)).Render(u)
	assert.Contains(t, out, " --flag    "+desc+"\n")
}

func TestRenderTabWidth(t *testing.T) {
	u := Usage{Commands: [][]Component{
		{Flag(Short("a"), Help("first"))},
		{Flag(Short("b"), Help("second"))},
	}}
	assert.Equal(t, "USAGE:\n"+
		"  [-a]\n"+
		"  [-b]\n"+
		"\n"+
		"OPTIONS:\n"+
		" -a  first\n"+
		" -b  second\n"+
		"\n", NewRenderer(TabWidth(2)).Render(u))
}

func TestFprint(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NewRenderer().Fprint(&b, exampleUsage()))
	assert.Equal(t, exampleUsageText, b.String())
}
