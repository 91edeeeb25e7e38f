package cliargs

import (
	"encoding"
	"reflect"
)

func typeName(t reflect.Type) string {
	return t.String()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// OptionAs consumes the option name and converts its value. If conversion fails, the tokens
// are left as they were and an InvalidOption error is returned.
func OptionAs[T any](c *Consumer, name string, convert func(string) (T, error)) (ret T, err error) {
	i, raw, err := c.findOption(name)
	if err != nil {
		return
	}
	ret, err = convert(raw)
	if err != nil {
		return ret, c.invalidOption(name, raw, typeOf[T](), err)
	}
	c.remove(i, 2)
	return
}

// ArgumentAs consumes the first token and converts it. If conversion fails, the tokens are left
// as they were and an InvalidArgument error is returned.
func ArgumentAs[T any](c *Consumer, convert func(string) (T, error)) (ret T, err error) {
	if len(c.tokens) == 0 {
		err = c.newError(MissingArgument)
		return
	}
	raw := c.tokens[0]
	ret, err = convert(raw)
	if err != nil {
		return ret, c.invalidArgument(raw, typeOf[T](), err)
	}
	c.remove(0, 1)
	return
}

// OptionInto consumes the option name and decodes its value into v.
func (c *Consumer) OptionInto(name string, v encoding.TextUnmarshaler) error {
	i, raw, err := c.findOption(name)
	if err != nil {
		return err
	}
	if err := v.UnmarshalText([]byte(raw)); err != nil {
		return c.invalidOption(name, raw, reflect.TypeOf(v).Elem(), err)
	}
	c.remove(i, 2)
	return nil
}

// ArgumentInto consumes the first token and decodes it into v.
func (c *Consumer) ArgumentInto(v encoding.TextUnmarshaler) error {
	if len(c.tokens) == 0 {
		return c.newError(MissingArgument)
	}
	raw := c.tokens[0]
	if err := v.UnmarshalText([]byte(raw)); err != nil {
		return c.invalidArgument(raw, reflect.TypeOf(v).Elem(), err)
	}
	c.remove(0, 1)
	return nil
}

func (c *Consumer) invalidOption(name, raw string, t reflect.Type, cause error) *Error {
	err := c.newError(InvalidOption)
	err.Name = name
	err.Value = raw
	err.ExpectedType = typeName(t)
	err.cause = cause
	return err
}

func (c *Consumer) invalidArgument(raw string, t reflect.Type, cause error) *Error {
	err := c.newError(InvalidArgument)
	err.Value = raw
	err.ExpectedType = typeName(t)
	err.cause = cause
	return err
}
