package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	red    = color.New(color.FgRed, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
	cyan   = color.New(color.FgCyan)
	white  = color.New(color.FgWhite, color.Bold)
)

func setColor(enabled bool) {
	if !enabled {
		color.NoColor = true
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// yesNo paints "Yes" with warn when flag is set, "No" in green otherwise.
func yesNo(flag bool, warn *color.Color) string {
	if flag {
		return warn.Sprint("Yes")
	}
	return green.Sprint("No")
}

func printBanner(title string) {
	fmt.Println()
	cyan.Println("========================================")
	white.Printf("%*s\n", 20+len(title)/2, title)
	cyan.Println("========================================")
	fmt.Println()
}
