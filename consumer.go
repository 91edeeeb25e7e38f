package cliargs

import (
	"os"

	"github.com/bradfitz/iter"
)

// Consumer is a cursor over the unconsumed command-line tokens. Each consume call removes what
// it extracts, and leaves the remaining tokens in their original order. It is not safe for
// concurrent use.
type Consumer struct {
	tokens []string
	usage  *Usage
}

// New returns a Consumer over a copy of tokens.
func New(tokens []string, opts ...ConsumerOpt) *Consumer {
	c := &Consumer{
		tokens: append([]string(nil), tokens...),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromOS returns a Consumer over the process arguments, excluding the program name.
func FromOS(opts ...ConsumerOpt) *Consumer {
	return New(os.Args[1:], opts...)
}

// Remaining returns a copy of the tokens not yet consumed.
func (c *Consumer) Remaining() []string {
	return append([]string{}, c.tokens...)
}

func (c *Consumer) Len() int {
	return len(c.tokens)
}

func (c *Consumer) newError(reason Reason) *Error {
	return &Error{Reason: reason, Usage: c.usage}
}

func (c *Consumer) index(name string) int {
	for i := range iter.N(len(c.tokens)) {
		if c.tokens[i] == name {
			return i
		}
	}
	return -1
}

func (c *Consumer) remove(i, n int) {
	c.tokens = append(c.tokens[:i], c.tokens[i+n:]...)
}

// ConsumeArgument removes and returns the first remaining token.
func (c *Consumer) ConsumeArgument() (string, error) {
	if len(c.tokens) == 0 {
		return "", c.newError(MissingArgument)
	}
	arg := c.tokens[0]
	c.remove(0, 1)
	return arg, nil
}

// Returns the index of the first occurrence of name, and the value following it.
func (c *Consumer) findOption(name string) (int, string, error) {
	i := c.index(name)
	if i == -1 || i+1 == len(c.tokens) {
		err := c.newError(MissingOption)
		err.Name = name
		return -1, "", err
	}
	return i, c.tokens[i+1], nil
}

// ConsumeOption removes the first occurrence of name and the token following it, and returns
// that token. Later occurrences are left for subsequent calls.
func (c *Consumer) ConsumeOption(name string) (string, error) {
	i, value, err := c.findOption(name)
	if err != nil {
		return "", err
	}
	c.remove(i, 2)
	return value, nil
}

// ConsumeFlag removes the first occurrence of name, and reports whether there was one.
func (c *Consumer) ConsumeFlag(name string) bool {
	i := c.index(name)
	if i == -1 {
		return false
	}
	c.remove(i, 1)
	return true
}
