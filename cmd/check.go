package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nephila016/emailcanon/internal/address"
	"github.com/nephila016/emailcanon/internal/debug"
	"github.com/nephila016/emailcanon/internal/inspector"
	"github.com/nephila016/emailcanon/internal/output"
)

var (
	checkOutput string
	checkJSON   bool
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check <email>",
	Short: "Inspect a single email address",
	Long: `Inspect a single email address.

The inspection includes:
  1. Parsing and normalization
  2. Syntax validation of the address, local part and domain
  3. Classification (disposable, free, corporate, role account)
  4. Provider canonicalization
  5. Domain typo suggestion

With --format only the requested part of the normalized address is printed:
full, local, domain, provider or subdomain.

Examples:
  emailcanon check user@example.com
  emailcanon check First.Last+news@GoogleMail.com --json
  emailcanon check user@mail.example.co.uk --format subdomain`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Output file")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON to stdout")
	checkCmd.Flags().StringVar(&checkFormat, "format", "", "Print one part of the address (full|local|domain|provider|subdomain)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	email := args[0]
	log := debug.GetLogger()

	log.Info("CHECK", "Inspecting email: %s", email)

	if checkFormat != "" {
		format, err := address.ParseFormat(checkFormat)
		if err != nil {
			return err
		}
		a, err := address.Parse(email)
		if err != nil {
			return err
		}
		fmt.Println(a.Formatted(format))
		return nil
	}

	in, err := newInspector(cmd.Context())
	if err != nil {
		return err
	}
	result := in.Inspect(email)

	// Output
	if checkJSON {
		return printJSON(result)
	}

	if checkOutput != "" {
		return outputToFile(result, checkOutput)
	}

	outputConsole(result)
	return nil
}

func outputToFile(result *inspector.Result, filename string) error {
	if err := output.WriteResultsToFile(filename, []*inspector.Result{result}); err != nil {
		return err
	}

	if !cfg.Quiet {
		fmt.Printf("Result saved to: %s\n", filename)
	}
	return nil
}

func outputConsole(result *inspector.Result) {
	if cfg.Quiet {
		fmt.Printf("%s %s\n", result.Status, result.Canonical)
		return
	}

	fmt.Println()
	white.Printf("Email: %s\n", result.Email)
	fmt.Println()

	// Status
	fmt.Print("Status: ")
	switch result.Status {
	case inspector.StatusValid:
		green.Println("VALID")
	case inspector.StatusInvalid:
		red.Println("INVALID")
	case inspector.StatusMalformed:
		red.Println("MALFORMED")
	}

	if result.Reason != "" {
		fmt.Printf("Reason: %s\n", result.Reason)
	}
	if result.Status == inspector.StatusMalformed {
		fmt.Println()
		return
	}

	fmt.Println()
	cyan.Println("Details:")

	fmt.Printf("  Normalized:   %s\n", result.Normalized)
	fmt.Printf("  Local Part:   %s\n", result.LocalPart)
	fmt.Printf("  Domain:       %s\n", result.Domain)
	fmt.Printf("  Provider:     %s\n", result.Provider)
	if result.Subdomain != "" {
		fmt.Printf("  Subdomain:    %s\n", result.Subdomain)
	}
	if result.RegistrableDomain != "" && result.RegistrableDomain != result.Provider {
		fmt.Printf("  Registrable:  %s\n", result.RegistrableDomain)
	}
	fmt.Printf("  Syntax:       %s\n", validText(result.SyntaxValid))
	fmt.Printf("  Local Syntax: %s\n", validText(result.LocalValid))
	fmt.Printf("  Domain Syntax: %s\n", validText(result.DomainValid))

	fmt.Println()
	cyan.Println("Classification:")

	fmt.Printf("  Class:        %s\n", result.Class)
	fmt.Printf("  Disposable:   %s\n", yesNo(result.Disposable, red))
	fmt.Printf("  Free Provider: %s\n", yesNo(result.Free, yellow))
	fmt.Printf("  Role Account: %s\n", yesNo(result.RoleAccount, yellow))

	fmt.Println()
	cyan.Println("Canonical:")

	if result.Canonical != "" {
		fmt.Printf("  Address:      %s\n", white.Sprint(result.Canonical))
	}
	if result.CanonicalSupported {
		fmt.Printf("  Provider:     %s (%s)\n", green.Sprint(result.CanonicalProvider), result.CanonicalDomain)
	} else {
		fmt.Printf("  Provider:     %s\n", yellow.Sprint("generic (no provider rule)"))
	}

	if result.Suggestion != "" {
		fmt.Println()
		yellow.Printf("Did you mean %s@%s?\n", result.LocalPart, result.Suggestion)
	}

	fmt.Println()
	fmt.Printf("Latency: %dµs\n", result.LatencyUs)
	fmt.Println()
}

func validText(ok bool) string {
	if ok {
		return green.Sprint("Valid")
	}
	return red.Sprint("Invalid")
}
