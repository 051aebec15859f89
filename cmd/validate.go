package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nephila016/emailcanon/internal/address"
	"github.com/nephila016/emailcanon/internal/classifier"
	"github.com/nephila016/emailcanon/internal/debug"
)

// errRejected makes the process exit 1 without printing an error.
var errRejected = errors.New("address rejected")

type validateRule func(c *classifier.Classifier, raw string) bool

var validateRules = map[string]validateRule{
	"email": func(_ *classifier.Classifier, raw string) bool {
		return address.ValidEmail(raw)
	},
	"local": func(_ *classifier.Classifier, raw string) bool {
		return address.ValidEmailLocal(raw)
	},
	"domain": func(_ *classifier.Classifier, raw string) bool {
		return address.ValidEmailDomain(raw)
	},
	"corporate":      (*classifier.Classifier).ValidCorporate,
	"not-disposable": (*classifier.Classifier).ValidNotDisposable,
}

func validateRuleNames() []string {
	names := make([]string, 0, len(validateRules))
	for name := range validateRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	validateRuleName string
	validateJSON     bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <email>...",
	Short: "Accept or reject addresses against a single rule",
	Long: `Check each address against one rule and report accepted or rejected.
The exit status is 0 when every address is accepted and 1 otherwise.

Rules:
  email           valid mailbox syntax
  local           valid syntax and a strict local part
  domain          valid syntax and a valid domain
  corporate       valid syntax on a domain that is neither free nor disposable
  not-disposable  valid syntax on a domain that is not disposable

Examples:
  emailcanon validate user@company.org --rule corporate
  emailcanon validate a@gmail.com b@mailinator.com --rule not-disposable --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateRuleName, "rule", "r", "email", "Rule: "+strings.Join(validateRuleNames(), ", "))
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output as JSON")
}

type validateResult struct {
	Email    string `json:"email"`
	Rule     string `json:"rule"`
	Accepted bool   `json:"accepted"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(strings.TrimSpace(validateRuleName))
	rule, ok := validateRules[name]
	if !ok {
		return fmt.Errorf("unknown rule %q (valid: %s)", validateRuleName, strings.Join(validateRuleNames(), ", "))
	}

	lists, err := loadLists(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load domain lists: %w", err)
	}
	c := lists.Classifier()

	results := make([]validateResult, 0, len(args))
	rejected := 0
	for _, raw := range args {
		r := validateResult{Email: raw, Rule: name, Accepted: rule(c, raw)}
		if !r.Accepted {
			rejected++
		}
		debug.Detail("VALIDATE", "%s %s: %t", name, raw, r.Accepted)
		results = append(results, r)
	}

	switch {
	case validateJSON:
		if err := printJSON(results); err != nil {
			return err
		}
	case cfg.Quiet:
	default:
		for _, r := range results {
			if r.Accepted {
				fmt.Printf("%s: %s\n", r.Email, green.Sprint("accepted"))
			} else {
				fmt.Printf("%s: %s\n", r.Email, red.Sprint("rejected"))
			}
		}
	}

	if rejected > 0 {
		return errRejected
	}
	return nil
}
