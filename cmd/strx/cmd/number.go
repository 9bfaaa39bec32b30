package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/strx/core/error"
	"github.com/msto63/strx/core/errors"
	"github.com/msto63/strx/utils/stringx"
)

func newFormatNumberCmd(a *app) *cobra.Command {
	var (
		decimals  int
		point     string
		separator string
	)

	cmd := &cobra.Command{
		Use:   "format-number [number]",
		Short: "Format a number with grouped thousands",
		Long: `Round the input to --decimals fractional digits (half away from zero) and
group the integer part in threes. Defaults come from the number.* keys of
the configuration.`,
		Example: `  strx format-number --decimals 2 1234567.891                          # 1,234,567.89
  strx format-number --decimals 2 --point , --separator . 1234567.891  # 1.234.567,89`,
		Args: inputArgs,
	}
	cmd.Flags().IntVar(&decimals, "decimals", 0, "fractional digits")
	cmd.Flags().StringVar(&point, "point", "", "decimal point (default from number.decimal_point)")
	cmd.Flags().StringVar(&separator, "separator", "", "thousands separator (default from number.thousands_separator)")

	cmd.RunE = a.transform(func(s string) (string, error) {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return "", errors.InvalidInput(errors.ModuleCLI, "format-number", s, "a decimal number")
		}
		if !cmd.Flags().Changed("decimals") {
			decimals = a.cfg.GetInt("number.decimals")
		}
		if !cmd.Flags().Changed("point") {
			point = a.cfg.GetString("number.decimal_point")
		}
		if !cmd.Flags().Changed("separator") {
			separator = a.cfg.GetString("number.thousands_separator")
		}
		return stringx.FormatNumberWith(n, decimals, point, separator), nil
	})
	return cmd
}

func newToIntCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "to-int [text]",
		Short: "Print the input if it is exactly a decimal integer",
		Long: `Print the integer spelled by the input. The command fails with exit status
1 unless formatting the integer gives back the input exactly, so leading
zeros, a plus sign and surrounding space are rejected.`,
		Args: inputArgs,
		RunE: a.transform(func(s string) (string, error) {
			n, ok := stringx.ToInt(s)
			if !ok {
				return "", mdwerror.New(fmt.Sprintf("%q is not an integer", s)).
					WithCode(mdwerror.CodeNotFound).
					WithOperation("to-int").
					WithDetail("module", errors.ModuleCLI)
			}
			return strconv.Itoa(n), nil
		}),
	}
}
