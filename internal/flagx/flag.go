// Package flagx contains command-line argument helpers shared by the
// config layers, which each parse their own small flag set.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the arguments belonging to the allowed flags,
// so independent flag sets can each parse os.Args without tripping over
// flags they do not know.
//
// Both "-f value" and "-f=value" forms are recognized.
func FilterArgs(args []string, allowed []string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		keep[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := keep[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := keep[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// ConfigFileFlags resolves the config file path from -c/-config flags,
// returning "" when neither is present.
func ConfigFileFlags() string {
	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("configfile", flag.ContinueOnError)
	var short, long string
	fs.StringVar(&short, "c", "", "path to JSON config file")
	fs.StringVar(&long, "config", "", "path to JSON config file")
	if err := fs.Parse(args); err != nil {
		return ""
	}

	if long != "" {
		return long
	}
	return short
}
