package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nephila016/emailcanon/internal/address"
	"github.com/nephila016/emailcanon/internal/canonical"
	"github.com/nephila016/emailcanon/internal/debug"
)

var sameJSON bool

var sameCmd = &cobra.Command{
	Use:   "same <email> <email>",
	Short: "Tell whether two addresses reach the same mailbox",
	Long: `Canonicalize two addresses and compare them. The exit status is 0 when
they reach the same mailbox and 1 when they differ.

Examples:
  emailcanon same john.doe@gmail.com JohnDoe+news@googlemail.com
  emailcanon same alice@hotmail.com alice@outlook.com --json`,
	Args: cobra.ExactArgs(2),
	RunE: runSame,
}

func init() {
	rootCmd.AddCommand(sameCmd)

	sameCmd.Flags().BoolVar(&sameJSON, "json", false, "Output as JSON")
}

type sameResult struct {
	First           string `json:"first"`
	Second          string `json:"second"`
	FirstCanonical  string `json:"first_canonical"`
	SecondCanonical string `json:"second_canonical"`
	Same            bool   `json:"same"`
}

func runSame(cmd *cobra.Command, args []string) error {
	a, err := address.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := address.Parse(args[1])
	if err != nil {
		return err
	}

	c := canonical.New(registry())
	result := sameResult{
		First:           args[0],
		Second:          args[1],
		FirstCanonical:  c.Canonical(a),
		SecondCanonical: c.Canonical(b),
		Same:            c.Same(a, b),
	}
	debug.Info("SAME", "%s vs %s: %t", result.FirstCanonical, result.SecondCanonical, result.Same)

	switch {
	case sameJSON:
		if err := printJSON(result); err != nil {
			return err
		}
	case cfg.Quiet:
	default:
		fmt.Printf("%s -> %s\n", result.First, result.FirstCanonical)
		fmt.Printf("%s -> %s\n", result.Second, result.SecondCanonical)
		if result.Same {
			green.Println("Same mailbox")
		} else {
			red.Println("Different mailboxes")
		}
	}

	if !result.Same {
		return errMismatch
	}
	return nil
}
