// Package cliargs rewrites named-argument runs into single flag tokens.
//
// The generator historically took "-input some dir -output out": the value of
// a named argument is every following token, joined by spaces, up to the next
// token starting with '-'. Normalize turns that into "--input=some dir" so a
// regular flag parser can take over. Values starting with '-' are not
// supported in that form.
//
// A run also swallows trailing subcommand names: "-input a -output b kinds"
// sets the output to "b kinds". Put the subcommand first, or use the
// "--output=b" form, to keep it separate.
package cliargs

import (
	"slices"
	"strings"
)

// Normalize rewrites runs of the given named arguments in args.
// Tokens that are not part of such a run are kept as they are.
func Normalize(args []string, names ...string) []string {
	res := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		name, ok := named(args[i], names)
		if !ok {
			res = append(res, args[i])
			continue
		}

		var values []string
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			values = append(values, args[i])
		}

		res = append(res, "--"+name+"="+strings.Join(values, " "))
	}

	return res
}

// named reports whether token is "-name" or "--name" for one of names.
func named(token string, names []string) (string, bool) {
	if !strings.HasPrefix(token, "-") || strings.Contains(token, "=") {
		return "", false
	}

	name := strings.TrimPrefix(strings.TrimPrefix(token, "-"), "-")

	return name, slices.Contains(names, name)
}
