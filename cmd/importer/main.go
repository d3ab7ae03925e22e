package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/common/config"
	"github.com/ecosedes/facilities/internal/common/dto"
	"github.com/ecosedes/facilities/internal/importer"
	"github.com/ecosedes/facilities/pkg/logger"
	"github.com/ecosedes/facilities/pkg/utils"
	"github.com/ecosedes/facilities/pkg/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath    string
	sheetName     string
	ownerEmail    string
	normalizeOnly string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of importer",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("importer version %s\n", version.Full())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "importer <file.xlsx|file.csv>",
		Short: "Load regions, centers and sites from a spreadsheet",
		Long: `importer reads the centers spreadsheet (columns Codigo Regional, Regional, Cod,
Descripcion Centro de Costos, Sedes, Direccion, Municipio) and inserts the
regions, centers and sites it lists, skipping records that already exist.

With --normalize-only the sheet is written back with accents removed and
nothing is imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if normalizeOnly != "" {
				return runNormalize(args[0], normalizeOnly)
			}
			return run(ctx, args[0], cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", "importer.yaml", "path to configuration file")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "worksheet to read from xlsx files (default: first sheet)")
	rootCmd.Flags().StringVar(&ownerEmail, "owner", "", "email of the user that owns the imported centers")
	rootCmd.Flags().StringVar(&normalizeOnly, "normalize-only", "", "write the normalized sheet to this .xlsx or .csv file and exit")
	rootCmd.AddCommand(versionCmd)
}

// runNormalize rewrites the sheet at in with every cell normalized.
func runNormalize(in, out string) error {
	rows, err := importer.ReadSheet(in, sheetName)
	if err != nil {
		return err
	}
	if err := importer.WriteSheet(out, importer.NormalizeTable(rows)); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("normalized %d rows into %s\n", len(rows), out)
	return nil
}

func run(ctx context.Context, path string, out io.Writer) error {
	cfg, cfgPath, err := config.LoadConfig[config.ImporterConfig](configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", cfgPath, err)
	}
	if err := cfg.Validate(cfgPath); err != nil {
		return err
	}
	sheetName = utils.FirstNonEmpty(sheetName, cfg.Import.Sheet)
	ownerEmail = utils.FirstNonEmpty(ownerEmail, cfg.Import.OwnerEmail)
	if ownerEmail == "" {
		return fmt.Errorf("an owner is required: pass --owner or set import.owner_email")
	}

	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	stats, err := importFile(ctx, db, lg, path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}

// importFile reads the sheet at path and imports it with the configured owner.
func importFile(ctx context.Context, db database.Database, lg *zap.Logger, path string) (importer.Stats, error) {
	owner, err := db.GetUserByEmail(ctx, dto.NormalizeEmail(ownerEmail))
	if err != nil {
		return importer.Stats{}, fmt.Errorf("owner %s: %w", ownerEmail, err)
	}

	table, err := importer.ReadSheet(path, sheetName)
	if err != nil {
		return importer.Stats{}, err
	}
	rows, err := importer.ParseRows(table)
	if err != nil {
		return importer.Stats{}, fmt.Errorf("%s: %w", path, err)
	}

	lg.Info("Starting import",
		zap.String("file", path),
		zap.Int("rows", len(rows)),
		zap.Uint("owner_id", owner.ID),
	)
	return importer.New(db, owner.ID, lg).Import(ctx, rows)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
