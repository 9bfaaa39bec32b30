package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/strx/core/errors"
	"github.com/msto63/strx/core/log"
	"github.com/msto63/strx/utils/stringx"
)

type replaceOptions struct {
	pairs           []string
	caseInsensitive bool
	every           bool
	nonrecursive    bool
}

func newReplaceCmd(a *app) *cobra.Command {
	var opts replaceOptions

	cmd := &cobra.Command{
		Use:   "replace --pair old=new [--pair old=new ...] [text]",
		Short: "Replace patterns in the input",
		Long: `Replace every occurrence of one or more patterns.

Pairs are applied in the order given. By default each pair is a separate
pass over the result of the previous one, so text inserted by an earlier
pair can be replaced by a later one. With --nonrecursive the input is scanned
once, the longest pattern wins at each position and replaced text is never
looked at again.`,
		Example: `  strx replace --pair a=b --pair b=c ab                 # cc
  strx replace --nonrecursive --pair a=b --pair b=c ab  # bc
  strx replace --ci --nonrecursive --pair a=X --pair ab=Y ABC  # YC`,
		Args: inputArgs,
	}
	cmd.Flags().StringArrayVarP(&opts.pairs, "pair", "p", nil, "pattern and replacement as old=new (repeatable)")
	cmd.Flags().BoolVarP(&opts.caseInsensitive, "ci", "i", false, "match patterns ignoring ASCII case")
	cmd.Flags().BoolVar(&opts.every, "every", false, "apply pairs one pass at a time (default for several pairs)")
	cmd.Flags().BoolVar(&opts.nonrecursive, "nonrecursive", false, "replace all pairs in a single longest-match pass")
	cmd.MarkFlagsMutuallyExclusive("every", "nonrecursive")
	_ = cmd.MarkFlagRequired("pair")

	cmd.RunE = a.transform(func(s string) (string, error) {
		r, err := parsePairs(opts.pairs)
		if err != nil {
			return "", err
		}
		a.logger.Debug("replacing", log.Int("pairs", r.Len()))
		return opts.apply(s, r)
	})
	return cmd
}

// parsePairs splits each old=new argument at its first "="
func parsePairs(pairs []string) (*stringx.Replacements, error) {
	r := stringx.NewReplacements()
	for _, p := range pairs {
		old, repl, ok := strings.Cut(p, "=")
		if !ok {
			return nil, errors.InvalidInput(errors.ModuleCLI, "replace", p, "a pair of the form old=new")
		}
		r.Set(old, repl)
	}
	return r, nil
}

func (o replaceOptions) apply(s string, r *stringx.Replacements) (string, error) {
	switch {
	case o.nonrecursive && o.caseInsensitive:
		return stringx.ReplaceEveryNonrecursiveCI(s, r)
	case o.nonrecursive:
		return stringx.ReplaceEveryNonrecursive(s, r)
	case r.Len() == 1 && !o.every:
		old := r.Keys()[0]
		repl, _ := r.Get(old)
		if o.caseInsensitive {
			return stringx.ReplaceCI(s, old, repl), nil
		}
		return stringx.Replace(s, old, repl), nil
	case o.caseInsensitive:
		return stringx.ReplaceEveryCI(s, r), nil
	default:
		return stringx.ReplaceEvery(s, r), nil
	}
}
