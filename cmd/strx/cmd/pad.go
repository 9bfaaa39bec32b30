package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strx/utils/stringx"
)

func newPadCmd(a *app, name string, pad func(string, int, string) (string, error)) *cobra.Command {
	var (
		length    int
		padString string
	)

	side := "left"
	if name == "pad-right" {
		side = "right"
	}

	cmd := &cobra.Command{
		Use:   name + " [text]",
		Short: "Pad on the " + side + " to a fixed byte length",
		Args:  inputArgs,
	}
	cmd.Flags().IntVar(&length, "length", 0, "total length in bytes")
	cmd.Flags().StringVar(&padString, "pad", "", "pad string, repeated and truncated as needed (default from pad.string)")
	_ = cmd.MarkFlagRequired("length")

	cmd.RunE = a.transform(func(s string) (string, error) {
		if !cmd.Flags().Changed("pad") {
			padString = a.cfg.GetString("pad.string")
		}
		return pad(s, length, padString)
	})
	return cmd
}

func newRepeatCmd(a *app) *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "repeat [text]",
		Short: "Repeat the input",
		Args:  inputArgs,
	}
	cmd.Flags().IntVar(&times, "times", 1, "number of copies")

	cmd.RunE = a.transform(func(s string) (string, error) {
		return stringx.Repeat(s, times)
	})
	return cmd
}

func newReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [text]",
		Short: "Reverse the bytes of the input",
		Args:  inputArgs,
		RunE:  a.transform(pure(stringx.Reverse)),
	}
}
