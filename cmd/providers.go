package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nephila016/emailcanon/internal/provider"
)

var (
	providersExtended bool
	providersJSON     bool
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the providers with canonicalization rules",
	Long: `List the providers whose addresses are canonicalized, with their
canonical domain and every domain they own. Yandex and Walla are only
active with --extended-providers.

Examples:
  emailcanon providers
  emailcanon providers --extended --json`,
	Args: cobra.NoArgs,
	RunE: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)

	providersCmd.Flags().BoolVar(&providersExtended, "extended", false, "Include opt-in providers")
	providersCmd.Flags().BoolVar(&providersJSON, "json", false, "Output as JSON")
}

type providerInfo struct {
	Name            string   `json:"name"`
	CanonicalDomain string   `json:"canonical_domain"`
	Domains         []string `json:"domains"`
}

func runProviders(cmd *cobra.Command, args []string) error {
	reg := registry()
	if providersExtended {
		reg = provider.Extended()
	}

	infos := make([]providerInfo, 0, len(reg.Providers()))
	for _, p := range reg.Providers() {
		infos = append(infos, providerInfo{
			Name:            p.String(),
			CanonicalDomain: p.CanonicalDomain(),
			Domains:         p.SupportedDomains(),
		})
	}

	if providersJSON {
		return printJSON(infos)
	}

	for _, info := range infos {
		if cfg.Quiet {
			fmt.Println(info.Name)
			continue
		}
		white.Printf("%s", info.Name)
		fmt.Printf(" -> %s\n", cyan.Sprint(info.CanonicalDomain))
		fmt.Printf("  %s\n\n", strings.Join(info.Domains, ", "))
	}
	return nil
}
