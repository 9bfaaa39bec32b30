package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strx/utils/stringx"
)

func newUpperCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upper [text]",
		Short: "Convert ASCII letters to uppercase",
		Args:  inputArgs,
		RunE:  a.transform(pure(stringx.Uppercase)),
	}
}

func newLowerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lower [text]",
		Short: "Convert ASCII letters to lowercase",
		Args:  inputArgs,
		RunE:  a.transform(pure(stringx.Lowercase)),
	}
}

func newCapitalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capitalize [text]",
		Short: "Uppercase the first letter",
		Args:  inputArgs,
		RunE:  a.transform(pure(stringx.Capitalize)),
	}
}

func newCapitalizeWordsCmd(a *app) *cobra.Command {
	var delimiters string

	cmd := &cobra.Command{
		Use:   "capitalize-words [text]",
		Short: "Uppercase the first letter of every word",
		Long: `Uppercase the first letter of the input and of every letter that follows
a delimiter byte. --delimiters replaces the default set (whitespace, or
words.delimiters from the configuration) entirely.`,
		Args: inputArgs,
	}
	cmd.Flags().StringVar(&delimiters, "delimiters", "", "bytes that separate words")

	cmd.RunE = a.transform(func(s string) (string, error) {
		if !cmd.Flags().Changed("delimiters") {
			delimiters = a.cfg.GetString("words.delimiters")
		}
		return stringx.CapitalizeWordsWith(s, delimiters), nil
	})
	return cmd
}
