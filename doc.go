// Package cliargs consumes command-line tokens one expected item at a time, and renders help
// text for a declared command shape.
//
// For example:
//  usage := cliargs.Usage{
//      Overview: "copy a file",
//      Commands: [][]cliargs.Component{{
//          cliargs.Literal("cp"),
//          cliargs.Option(cliargs.Long("mode"), cliargs.Default("0644"), cliargs.Help("file mode")),
//          cliargs.Flag(cliargs.Both("v", "verbose"), cliargs.Help("print what is copied")),
//          cliargs.Positional(cliargs.Long("src"), cliargs.Required()),
//      }},
//  }
//  c := cliargs.FromOS(cliargs.WithUsage(usage))
//  verbose := c.ConsumeFlag("-v") || c.ConsumeFlag("--verbose")
//  mode, err := cliargs.OptionAs(c, "--mode", cliargs.Scan[uint32])
//  src, err := c.ConsumeArgument()
//
// Positional arguments are always taken from the front of what remains, so consume options and
// flags first. Options and flags are matched by exact token, and only the first remaining
// occurrence is consumed per call.
//
// Errors carry the Usage given to the Consumer, and include its rendering in their message.
package cliargs
