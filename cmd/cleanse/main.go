package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/massprop-dedup/internal/config"
	"github.com/massprop-dedup/internal/db"
	"github.com/massprop-dedup/internal/etl"
	"github.com/massprop-dedup/internal/normalize"
	"github.com/massprop-dedup/internal/refdata"
	"github.com/massprop-dedup/internal/web"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd := &cobra.Command{
		Use:   "cleanse",
		Short: "Property-record text canonicalization",
		Long:  `Canonicalizes street addresses, owner names, city names and postal codes extracted from Massachusetts assessor records, so downstream matching can compare records on equal footing`,
	}

	rootCmd.AddCommand(createCleanCmd(log))
	rootCmd.AddCommand(createPingCmd())
	rootCmd.AddCommand(createServeCmd(log))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadLookup fetches the neighborhood table from Postgres, falling back
// to the compiled-in Boston table when no database is reachable.
func loadLookup(log zerolog.Logger) normalize.CityLookup {
	conn, err := db.NewConnection()
	if err != nil {
		log.Warn().Err(err).Msg("no database, using compiled-in neighborhood table")
		return refdata.Static()
	}
	defer conn.Close()

	lookup, err := refdata.Load(conn.DB)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load ref_neighborhood, using compiled-in table")
		return refdata.Static()
	}
	log.Info().Int("neighborhoods", len(lookup)).Msg("loaded neighborhood table")
	return lookup
}

func createCleanCmd(log zerolog.Logger) *cobra.Command {
	var (
		output      string
		stringCols  []string
		addressCols []string
		cityCols    []string
		nameCols    []string
		zipCols     []string
		audit       bool
	)

	cmd := &cobra.Command{
		Use:   "clean [input.csv]",
		Short: "Clean a CSV extract",
		Long:  `Runs the string, address, city, name and zip workflows over the configured columns of a CSV extract and writes the canonicalized extract`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input := args[0]
			if output == "" {
				output = input + ".cleaned.csv"
			}

			cfg := etl.ColumnConfig{
				Strings:   stringCols,
				Addresses: addressCols,
				Cities:    cityCols,
				Names:     nameCols,
				Zips:      zipCols,
			}

			pipeline := etl.New(loadLookup(log), log)
			report, err := pipeline.CleanCSV(input, output, cfg)
			if err != nil {
				log.Fatal().Err(err).Msg("cleaning run failed")
			}

			if audit {
				conn, err := db.NewConnection()
				if err != nil {
					log.Fatal().Err(err).Msg("audit requested but database unreachable")
				}
				defer conn.Close()
				if err := etl.RecordChanges(conn.DB, report); err != nil {
					log.Fatal().Err(err).Msg("failed to record audit trail")
				}
			}

			fmt.Printf("Cleaned %d rows (%d changes) -> %s\n", report.Rows, len(report.Changes), output)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "output CSV path (default: input + .cleaned.csv)")
	cmd.Flags().StringSliceVar(&stringCols, "strings", nil, "columns for the generic string workflow")
	cmd.Flags().StringSliceVar(&addressCols, "addresses", nil, "street-address columns")
	cmd.Flags().StringSliceVar(&cityCols, "cities", nil, "city columns")
	cmd.Flags().StringSliceVar(&nameCols, "names", nil, "owner/corporate name columns")
	cmd.Flags().StringSliceVar(&zipCols, "zips", nil, "postal-code columns")
	cmd.Flags().BoolVar(&audit, "audit", false, "record per-field changes to the cleaning_audit table")

	return cmd
}

func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			conn, err := db.NewConnection()
			if err != nil {
				fmt.Printf("Database connection failed: %v\n", err)
				os.Exit(1)
			}
			defer conn.Close()
			fmt.Println("Database connection successful!")

			var count int
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM ref_neighborhood").Scan(&count); err == nil {
				fmt.Printf("Neighborhoods loaded: %d\n", count)
			}
			if err := conn.DB.QueryRow("SELECT COUNT(*) FROM cleaning_audit").Scan(&count); err == nil {
				fmt.Printf("Audit rows recorded: %d\n", count)
			}
		},
	}
}

func createServeCmd(log zerolog.Logger) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the normalization preview API",
		Run: func(cmd *cobra.Command, args []string) {
			lookup := loadLookup(log)

			var sqlDB *sql.DB
			if conn, err := db.NewConnection(); err == nil {
				defer conn.Close()
				sqlDB = conn.DB
			}

			server := web.NewServer(addr, lookup, sqlDB, log)
			if err := server.Start(); err != nil {
				log.Fatal().Err(err).Msg("server failed")
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.GetEnv("CLEANSE_ADDR", ":8080"), "listen address")
	return cmd
}
