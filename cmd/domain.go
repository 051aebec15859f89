package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nephila016/emailcanon/internal/debug"
	"github.com/nephila016/emailcanon/internal/inspector"
)

var domainJSON bool

var domainCmd = &cobra.Command{
	Use:   "domain <domain>",
	Short: "Classify a domain and show its provider family",
	Long: `Classify a domain as disposable, free or corporate and show which
provider, if any, owns it together with the provider's canonical domain and
aliases.

Examples:
  emailcanon domain hotmail.co.uk
  emailcanon domain mailinator.com
  emailcanon domain example.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDomain,
}

func init() {
	rootCmd.AddCommand(domainCmd)

	domainCmd.Flags().BoolVar(&domainJSON, "json", false, "Output as JSON")
}

func runDomain(cmd *cobra.Command, args []string) error {
	domain := args[0]
	log := debug.GetLogger()

	log.Info("DOMAIN", "Checking domain: %s", domain)

	in, err := newInspector(cmd.Context())
	if err != nil {
		return err
	}

	result, err := in.InspectDomain(domain)
	if err != nil {
		return err
	}

	if domainJSON {
		return printJSON(result)
	}

	outputDomainConsole(result)
	return nil
}

func outputDomainConsole(result *inspector.DomainResult) {
	if cfg.Quiet {
		fmt.Printf("%s %s\n", result.Class, result.CanonicalProvider)
		return
	}

	fmt.Println()
	white.Printf("Domain: %s\n", result.Domain)
	fmt.Println()

	if !result.Valid {
		red.Println("Not a valid mail domain")
		fmt.Println()
	}

	// Classification
	cyan.Println("Classification:")
	fmt.Printf("  Class:         %s\n", result.Class)
	fmt.Printf("  Disposable:    %s\n", yesNo(result.IsDisposable, red))
	fmt.Printf("  Free Provider: %s\n", yesNo(result.IsFreeProvider, yellow))
	if result.RegistrableDomain != "" {
		fmt.Printf("  Registrable:   %s\n", result.RegistrableDomain)
	}
	if !result.ICANNSuffix {
		fmt.Printf("  Suffix:        %s\n", yellow.Sprint("not managed by ICANN"))
	}
	if result.Subdomain != "" {
		fmt.Printf("  Subdomain:     %s\n", result.Subdomain)
	}
	fmt.Println()

	// Provider
	cyan.Println("Provider:")
	if result.CanonicalSupported {
		fmt.Printf("  Name:          %s\n", green.Sprint(result.CanonicalProvider))
		fmt.Printf("  Canonical:     %s\n", result.CanonicalDomain)
		fmt.Printf("  Aliases:       %s\n", strings.Join(result.AliasDomains, ", "))
	} else {
		yellow.Println("  No provider rule, addresses are kept as written")
	}
	fmt.Println()

	if result.Suggestion != "" {
		yellow.Printf("Did you mean %s?\n\n", result.Suggestion)
	}
}
