package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lotworks/dealcalc/internal/breakeven"
	"github.com/lotworks/dealcalc/internal/calculation"
	"github.com/lotworks/dealcalc/internal/compare"
	"github.com/lotworks/dealcalc/internal/config"
	"github.com/lotworks/dealcalc/internal/domain"
	"github.com/lotworks/dealcalc/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "dealcalc",
	Short: "Dealership deal sheet calculator",
	Long:  "Side-by-side finance and lease payment calculator for dealership deal sheets",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [deal-sheet-file]",
	Short: "Compute and compare every option on a deal sheet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		sheet, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		set, err := compare.NewEngine().Compare(sheet)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		switch outputFormat {
		case "table":
			fmt.Print((&compare.TableFormatter{}).Format(set))
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		case "json":
			pretty, _ := cmd.Flags().GetBool("pretty")
			out, err := (&compare.JSONFormatter{Pretty: pretty}).Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		default:
			log.Fatalf("unknown output format: %s (expected table, csv or json)", outputFormat)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [deal-sheet-file]",
	Short: "Validate a deal sheet file without computing anything",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		sheet, err := parser.LoadFromFile(args[0])
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deal sheet %q is valid: %d option(s), %d credit tier(s)\n",
			sheet.Name, len(sheet.Options), len(sheet.CreditTiers))
	},
}

var breakEvenCmd = &cobra.Command{
	Use:   "breakeven [deal-sheet-file]",
	Short: "Solve for the deal structure that hits a target payment",
	Long: `Solve for the down payment or selling price that brings one option to a
target monthly payment, or find the month where one option's cumulative cost
overtakes another's.

Examples:
  dealcalc breakeven sheet.yaml --option opt-a --target 450
  dealcalc breakeven sheet.yaml --option opt-a --target 450 --adjust selling_price
  dealcalc breakeven sheet.yaml --option opt-a --versus opt-b
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		sheet, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		optionID, _ := cmd.Flags().GetString("option")
		opt := findOption(sheet, optionID)
		if opt == nil {
			log.Fatalf("option %q not found in deal sheet", optionID)
		}

		engine := calculation.NewEngine()
		if versusID, _ := cmd.Flags().GetString("versus"); versusID != "" {
			other := findOption(sheet, versusID)
			if other == nil {
				log.Fatalf("option %q not found in deal sheet", versusID)
			}

			cross, err := breakeven.CompareCumulative(engine, opt, other)
			if err != nil {
				log.Fatal(err)
			}

			fmt.Println("CUMULATIVE COST CROSSOVER")
			fmt.Printf("Cheaper at signing: %s\n", cross.CheaperEarly)
			if cross.Month > 0 {
				fmt.Printf("%s becomes cheaper at month %d\n", cross.CheaperLate, cross.Month)
			} else {
				fmt.Printf("%s stays cheaper for the full horizon\n", cross.CheaperLate)
			}
			fmt.Printf("Total outlay: %s $%s, %s $%s\n",
				cross.FirstLabel, cross.FirstTotal.StringFixed(2),
				cross.SecondLabel, cross.SecondTotal.StringFixed(2))
			return
		}

		targetStr, _ := cmd.Flags().GetString("target")
		target, err := decimal.NewFromString(targetStr)
		if err != nil {
			log.Fatalf("invalid target payment: %s", targetStr)
		}
		adjust, _ := cmd.Flags().GetString("adjust")

		result, err := breakeven.NewDefaultSolver(engine).SolveForPayment(opt, breakeven.Parameter(adjust), target)
		if err != nil {
			log.Fatal(err)
		}
		if !result.Success {
			fmt.Printf("No solution: %s\n", result.ConvergenceInfo)
			os.Exit(1)
		}

		fmt.Printf("TARGET PAYMENT ANALYSIS: %s\n", opt.Label)
		fmt.Printf("Set %s to $%s for a $%s/mo payment ($%s requested, %d iterations)\n",
			result.Parameter, result.Value.StringFixed(2),
			result.AchievedPayment.StringFixed(2), result.TargetPayment.StringFixed(2),
			result.Iterations)
	},
}

// findOption matches by option id first, then by label.
func findOption(sheet *domain.DealSheet, key string) *domain.DealOption {
	for i := range sheet.Options {
		if sheet.Options[i].ID == key || sheet.Options[i].Label == key {
			return &sheet.Options[i]
		}
	}
	return nil
}

var tuiCmd = &cobra.Command{
	Use:   "tui [deal-sheet-file]",
	Short: "Edit a deal sheet interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sheetPath := args[0]
		if _, err := os.Stat(sheetPath); os.IsNotExist(err) {
			fmt.Printf("Error: deal sheet file not found: %s\n", sheetPath)
			os.Exit(1)
		}

		p := tea.NewProgram(tui.NewModel(sheetPath), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running TUI: %v\n", err)
			os.Exit(1)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "dealcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func main() {
	calculateCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	calculateCmd.Flags().Bool("pretty", false, "Indent JSON output")

	breakEvenCmd.Flags().String("option", "", "Option id or label to solve for (required)")
	breakEvenCmd.Flags().String("target", "", "Target monthly payment in dollars")
	breakEvenCmd.Flags().String("adjust", "down_payment", "Input to adjust (down_payment, selling_price)")
	breakEvenCmd.Flags().String("versus", "", "Second option id or label for a cumulative cost crossover")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
