// Package flagx lets several components parse their own flags from the same
// os.Args without tripping over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// FilterArgs keeps only the flags named in allowed, together with their
// values, and drops everything else.
//
// Two spellings are understood:
//
//	-b 250.00      flag and value as separate arguments
//	-config=x.json flag and value joined by '='
//
// A separate argument is taken as the value unless it looks like another
// flag. Negative numbers such as "-5" are values, not flags.
func FilterArgs(args []string, allowed []string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		keep[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, joined := strings.Cut(arg, "="); joined && strings.HasPrefix(arg, "-") {
			if _, ok := keep[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := keep[arg]; !ok {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !looksLikeFlag(args[i+1]) {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

func looksLikeFlag(s string) bool {
	if !strings.HasPrefix(s, "-") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err != nil
}

// JsonConfigFlags returns the JSON config path given with -c or -config, or
// an empty string when neither is present. Other flags are ignored.
func JsonConfigFlags() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}
