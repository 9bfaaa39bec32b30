package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strx/utils/stringx"
)

func newSpliceCmd(a *app) *cobra.Command {
	var (
		replacement string
		offset      int
		length      int
	)

	cmd := &cobra.Command{
		Use:   "splice --replacement S --offset N [--length N] [text]",
		Short: "Replace a byte range of the input",
		Long: `Replace --length bytes starting at --offset with --replacement. A negative
offset counts from the end of the input. Without --length everything from
the offset to the end is replaced.`,
		Example: `  strx splice --replacement Go --offset 6 --length 5 "Hello World"  # Hello Go
  strx splice --replacement , --offset 5 --length 0 "Hello World"   # Hello, World`,
		Args: inputArgs,
	}
	cmd.Flags().StringVar(&replacement, "replacement", "", "text to insert")
	cmd.Flags().IntVar(&offset, "offset", 0, "byte offset, negative counts from the end")
	cmd.Flags().IntVar(&length, "length", 0, "number of bytes to replace (default: to the end)")
	_ = cmd.MarkFlagRequired("offset")

	cmd.RunE = a.transform(func(s string) (string, error) {
		if cmd.Flags().Changed("length") {
			return stringx.SpliceN(s, replacement, offset, length)
		}
		return stringx.Splice(s, replacement, offset)
	})
	return cmd
}
