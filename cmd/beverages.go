package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	pk "github.com/luisgoma4/bracsim/pk"
)

// beveragesCmd prints the built-in beverage catalog.
var beveragesCmd = &cobra.Command{
	Use:   "beverages",
	Short: "List the built-in beverage catalog",
	Run: func(cmd *cobra.Command, args []string) {
		catalog := pk.DefaultCatalog()
		fmt.Println("=== Beverage Catalog ===")
		for _, name := range catalog.Names() {
			frac, _ := catalog.Fraction(name)
			fmt.Printf("%-10s : %3.0f%% ethanol by volume\n", name, frac*100)
		}
	},
}

func init() {
	rootCmd.AddCommand(beveragesCmd)
}
