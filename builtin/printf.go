/*
File    : lim/builtin/printf.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"fmt"
	"os"
	"strings"

	"github.com/akashmaji946/lim/value"
)

// printfBuiltin implements host builtin id 12: printf(fmt, ...args).
// fmt must be a string; each `{}` placeholder consumes the next arg's
// ToString form, left to right. Too few or too many args is an error.
// Writes to stdout and returns Nothing — a printf call's result is never
// meant to be used as a value.
//
// Syntax: printf(fmt, ...args)
//
// Example:
//
//	printf("{} + {} = {}\n", 2, 3, 5);
func printfBuiltin(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("printf expects at least a format string")
	}
	format, ok := args[0].(value.String)
	if !ok {
		return nil, fmt.Errorf("printf: first argument must be a string, got %s", args[0].Type())
	}
	rest := args[1:]

	var out strings.Builder
	argIdx := 0
	src := string(format)
	for i := 0; i < len(src); i++ {
		if src[i] == '{' && i+1 < len(src) && src[i+1] == '}' {
			if argIdx >= len(rest) {
				return nil, fmt.Errorf("printf: not enough arguments for format string")
			}
			out.WriteString(rest[argIdx].ToString())
			argIdx++
			i++
			continue
		}
		out.WriteByte(src[i])
	}
	if argIdx < len(rest) {
		return nil, fmt.Errorf("printf: too many arguments for format string (used %d, got %d)", argIdx, len(rest))
	}

	fmt.Fprint(os.Stdout, out.String())
	return value.Nothing{}, nil
}
