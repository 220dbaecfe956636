package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SplitArgs separates arguments recognized as flags of the flag set from the ones to forward.
// Order of forwarded arguments is preserved, everything after "--" is forwarded.
func SplitArgs(flags *pflag.FlagSet, args []string) (own []string, forwarded []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return own, append(forwarded, args[i+1:]...)
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			flag := flags.Lookup(name)
			if flag == nil {
				forwarded = append(forwarded, arg)
				continue
			}
			own = append(own, arg)
			if !hasValue && flag.NoOptDefVal == "" && i+1 < len(args) {
				i++
				own = append(own, args[i])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flag := flags.ShorthandLookup(arg[1:2])
			if flag == nil || (len(arg) > 2 && flag.NoOptDefVal != "") {
				forwarded = append(forwarded, arg)
				continue
			}
			own = append(own, arg)
			if len(arg) == 2 && flag.NoOptDefVal == "" && i+1 < len(args) {
				i++
				own = append(own, args[i])
			}
		default:
			forwarded = append(forwarded, arg)
		}
	}
	return own, forwarded
}

func knownFlags(cmd *cobra.Command) *pflag.FlagSet {
	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.Usage = func() {}
	flags.AddFlagSet(cmd.LocalFlags())
	flags.AddFlagSet(cmd.InheritedFlags())
	return flags
}
