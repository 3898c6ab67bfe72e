package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"fincontrol/cmd"
	"fincontrol/internal/app"
	"fincontrol/internal/domain"
	"fincontrol/internal/logger"
	"fincontrol/internal/util"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

type ledgerCsvRow struct {
	Date        string  `csv:"date"`
	EquityValue float64 `csv:"equity_value"`
	BondValue   float64 `csv:"bond_value"`
	CryptoValue float64 `csv:"crypto_value"`
	Cash        float64 `csv:"cash"`
	Total       float64 `csv:"total"`
}

func main() {
	var (
		equitySymbol    string
		bondSymbol      string
		cryptoSymbol    string
		equityWeight    float64
		bondWeight      float64
		cryptoWeight    float64
		monthly         float64
		rebalanceMonths int
		start           string
		end             string
		currency        string
		csvPath         string
	)

	rootCmd := &cobra.Command{
		Use:   "fincontrol",
		Short: "DCA portfolio simulator",
	}

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a monthly DCA simulation and print the results",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			startDate, err := util.ParseDate(start)
			if err != nil {
				return fmt.Errorf("could not parse start date: %w", err)
			}
			var endDate *time.Time
			if end != "" {
				e, err := util.ParseDate(end)
				if err != nil {
					return fmt.Errorf("could not parse end date: %w", err)
				}
				endDate = &e
			}

			rawWeights := equityWeight + bondWeight
			assets := []domain.Asset{
				{Symbol: equitySymbol, Role: domain.AssetRole_Equity, Weight: equityWeight},
				{Symbol: bondSymbol, Role: domain.AssetRole_Bond, Weight: bondWeight},
			}
			if cryptoSymbol != "" {
				assets = append(assets, domain.Asset{
					Symbol: cryptoSymbol,
					Role:   domain.AssetRole_Crypto,
					Weight: cryptoWeight,
				})
				rawWeights += cryptoWeight
			}
			if rawWeights <= 0 {
				return fmt.Errorf("weights must sum to a positive value")
			}
			for i := range assets {
				assets[i].Weight /= rawWeights
			}

			ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())

			if missing := handler.SimulationHandler.MissingHistory(ctx, assets, startDate); len(missing) > 0 {
				return fmt.Errorf("no price history from %s for: %v", start, missing)
			}

			result, err := handler.SimulationHandler.Run(ctx, app.SimulationInput{
				Assets:              assets,
				MonthlyContribution: monthly,
				RebalanceMonths:     rebalanceMonths,
				Start:               startDate,
				End:                 endDate,
				DisplayCurrency:     currency,
			})
			if err != nil {
				return err
			}
			if result.Ledger.Empty() {
				return fmt.Errorf("not enough data between %s and today to simulate", start)
			}

			printResult(result, currency)

			if csvPath != "" {
				if err := writeLedgerCsv(csvPath, result.Ledger); err != nil {
					return err
				}
				fmt.Printf("ledger written to %s\n", csvPath)
			}

			return nil
		},
	}

	simulateCmd.Flags().StringVar(&equitySymbol, "equity", "VWRA.L", "equity ETF symbol")
	simulateCmd.Flags().StringVar(&bondSymbol, "bond", "AGGU.L", "bond ETF symbol")
	simulateCmd.Flags().StringVar(&cryptoSymbol, "crypto", "", "optional crypto symbol")
	simulateCmd.Flags().Float64Var(&equityWeight, "equity-weight", 80, "relative equity weight")
	simulateCmd.Flags().Float64Var(&bondWeight, "bond-weight", 20, "relative bond weight")
	simulateCmd.Flags().Float64Var(&cryptoWeight, "crypto-weight", 0, "relative crypto weight")
	simulateCmd.Flags().Float64Var(&monthly, "monthly", 300, "monthly contribution in the display currency")
	simulateCmd.Flags().IntVar(&rebalanceMonths, "rebalance-months", 6, "rebalancing period in months, 0 disables")
	simulateCmd.Flags().StringVar(&start, "start", "2018-01-01", "start date (YYYY-MM-DD)")
	simulateCmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD), defaults to today")
	simulateCmd.Flags().StringVar(&currency, "currency", "EUR", "display currency")
	simulateCmd.Flags().StringVar(&csvPath, "csv", "", "write the full ledger to this CSV file")

	rootCmd.AddCommand(simulateCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func printResult(result *app.SimulationResult, currency string) {
	fmt.Printf("final value:  %.2f %s\n", result.FinalValue, currency)
	fmt.Printf("contributed:  %.2f %s\n", result.Contributed, currency)
	fmt.Printf("CAGR:         %.2f%%\n", result.Stats.Cagr*100)
	fmt.Printf("volatility:   %.2f%%\n", result.Stats.AnnualizedVolatility*100)
	fmt.Printf("max drawdown: %.2f%%\n", result.Stats.MaxDrawdown*100)
	fmt.Printf("sharpe:       %.2f\n", result.Stats.SharpeRatio)
	fmt.Printf("risk level:   %s\n", result.RiskLevel)
	fmt.Printf("HHI: %.3f  effective assets: %.2f\n", result.Hhi, result.EffectiveN)
	for symbol, signal := range result.TrendSignals {
		fmt.Printf("trend %s: %s\n", symbol, signal)
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	rows := result.Ledger
	if len(rows) > 12 {
		rows = rows[len(rows)-12:]
	}
	fmt.Println("\nlast months:")
	for _, row := range rows {
		fmt.Printf("%s  equity=%.2f bond=%.2f crypto=%.2f cash=%.2f total=%.2f\n",
			row.Date.Format("2006-01-02"),
			row.Value(domain.AssetRole_Equity),
			row.Value(domain.AssetRole_Bond),
			row.Value(domain.AssetRole_Crypto),
			row.Cash,
			row.Total,
		)
	}
}

func writeLedgerCsv(path string, ledger domain.Ledger) error {
	rows := make([]ledgerCsvRow, 0, len(ledger))
	for _, row := range ledger {
		rows = append(rows, ledgerCsvRow{
			Date:        row.Date.Format("2006-01-02"),
			EquityValue: row.Value(domain.AssetRole_Equity),
			BondValue:   row.Value(domain.AssetRole_Bond),
			CryptoValue: row.Value(domain.AssetRole_Crypto),
			Cash:        row.Cash,
			Total:       row.Total,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}
