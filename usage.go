package cliargs

// Usage describes the shapes a command accepts. Treat it as read-only once built.
type Usage struct {
	Overview string
	SeeAlso  []string
	// Alternative invocation shapes, each rendered on its own USAGE line.
	Commands [][]Component
}

func (u Usage) String() string {
	return NewRenderer().Render(u)
}

// A Component is one word of a command form. It's either a Literal or an Arg.
type Component interface {
	commandHelp() string
}

// Literal is a fixed word shown verbatim, such as a subcommand name.
type Literal string

func (me Literal) commandHelp() string {
	return string(me)
}

type Kind int

const (
	OptionKind Kind = iota
	ArgumentKind
	FlagKind
)

func (k Kind) String() string {
	switch k {
	case OptionKind:
		return "option"
	case ArgumentKind:
		return "argument"
	case FlagKind:
		return "flag"
	default:
		return "unknown"
	}
}

// Name is how an argument is spelled on the command line, without dashes.
type Name struct {
	Short string
	Long  string
}

func Short(s string) Name {
	return Name{Short: s}
}

func Long(l string) Name {
	return Name{Long: l}
}

func Both(short, long string) Name {
	return Name{Short: short, Long: long}
}

// The placeholder used for option values.
func (n Name) name() string {
	if n.Long != "" {
		return n.Long
	}
	return n.Short
}

func (n Name) commandHelp() string {
	if n.Long != "" {
		return "--" + n.Long
	}
	return "-" + n.Short
}

func (n Name) argumentHelp() string {
	switch {
	case n.Short != "" && n.Long != "":
		return "-" + n.Short + ", --" + n.Long
	case n.Long != "":
		return "--" + n.Long
	default:
		return "-" + n.Short
	}
}

// Arg describes a positional argument, option or flag. Two Args are the same entry in the help
// listing only if every field matches.
type Arg struct {
	Kind        Kind
	Name        Name
	Description string
	Required    bool
	Default     string
	HasDefault  bool
}

type ArgOpt func(*Arg)

// Sets the text shown next to the argument in the detailed listing.
func Help(text string) ArgOpt {
	return func(a *Arg) {
		a.Description = text
	}
}

// Drops the square brackets around the argument in the USAGE line.
func Required() ArgOpt {
	return func(a *Arg) {
		a.Required = true
	}
}

// Appends "(default: value)" to the description.
func Default(value string) ArgOpt {
	return func(a *Arg) {
		a.Default = value
		a.HasDefault = true
	}
}

func newArg(kind Kind, name Name, opts []ArgOpt) Arg {
	a := Arg{Kind: kind, Name: name}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Option is a named argument followed by a value.
func Option(name Name, opts ...ArgOpt) Arg {
	return newArg(OptionKind, name, opts)
}

// Positional is an argument identified by its position.
func Positional(name Name, opts ...ArgOpt) Arg {
	return newArg(ArgumentKind, name, opts)
}

// Flag is a valueless boolean. Flags are never required and have no default.
func Flag(name Name, opts ...ArgOpt) Arg {
	a := newArg(FlagKind, name, opts)
	a.Required = false
	a.Default = ""
	a.HasDefault = false
	return a
}

func (me Arg) commandHelp() string {
	help := me.Name.commandHelp()
	if me.Kind == OptionKind {
		help += " <" + me.Name.name() + ">"
	}
	if me.Required {
		return help
	}
	return "[" + help + "]"
}

func (me Arg) helpName() string {
	if me.Kind == OptionKind {
		return me.Name.argumentHelp() + " <" + me.Name.name() + ">"
	}
	return me.Name.argumentHelp()
}

func (me Arg) helpText() string {
	if !me.HasDefault {
		return me.Description
	}
	suffix := "(default: " + me.Default + ")"
	if me.Description == "" {
		return suffix
	}
	return me.Description + " " + suffix
}

// Distinct Args over all command forms, in order of first appearance.
func (u Usage) args() (ret []Arg) {
	seen := make(map[Arg]struct{})
	for _, form := range u.Commands {
		for _, c := range form {
			a, ok := c.(Arg)
			if !ok {
				continue
			}
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			ret = append(ret, a)
		}
	}
	return
}
