package cmd

import (
	"context"
	"fmt"

	"altered-knowledge/feature/integrity"
	"altered-knowledge/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

type integrityChecks struct {
	structure, collection, rules, server bool
}

var allChecks = integrityChecks{structure: true, collection: true, rules: true, server: true}

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the knowledge bucket",
	Long:  `Checks the bucket folder structure, collection files, the rule object and the history schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), allChecks)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{structure: true})
	},
}

var collectionCheckCmd = &cobra.Command{
	Use:   "collection",
	Short: "Check collection files row by row",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{collection: true})
	},
}

var rulesCheckCmd = &cobra.Command{
	Use:   "rules",
	Short: "Check that the rule object loads",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{rules: true})
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the history database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{server: true})
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, collectionCheckCmd, rulesCheckCmd, serverCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, run integrityChecks) error {
	env, err := setup()
	if err != nil {
		return err
	}
	logg := env.logger

	db := env.connectDB()
	svc := integrity.NewService(env.client, env.cfg.Storage.Bucket, logg, db, env.cfg.Data)

	failed := false

	if run.structure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fixFlag:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Fixing missing folders...")
			if err := svc.FixStructure(ctx, missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.")
		default:
			failed = true
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run 'integrity structure --fix' to create missing folders.")
		}
	}

	if run.collection {
		logg.Info("Checking collection files...", zap.String("prefix", env.cfg.Data.CollectionPrefix))
		report, err := svc.CheckCollection(ctx)
		if err != nil {
			return fmt.Errorf("collection check failed: %w", err)
		}
		for _, p := range report.Problems {
			fields := []zap.Field{zap.String("key", p.Key), zap.Int("row", p.Row), zap.String("problem", p.Message)}
			if p.Severity == checks.SeverityError {
				logg.Error("Collection row invalid", fields...)
			} else {
				logg.Warn("Collection row suspicious", fields...)
			}
		}
		if report.Errors > 0 {
			failed = true
		}
		logg.Info("Collection check completed",
			zap.Int("files", report.Files),
			zap.Int("rows", report.Rows),
			zap.Int("errors", report.Errors),
			zap.Int("warnings", report.Warnings))
	}

	if run.rules {
		logg.Info("Checking rules...", zap.String("object", env.cfg.Data.RulesObject))
		report, err := svc.CheckRules(ctx)
		if err != nil {
			return fmt.Errorf("rules check failed: %w", err)
		}
		if report.Status == "ok" {
			logg.Info("Rules load.", zap.String("format", report.Format))
		} else {
			failed = true
			logg.Warn("Rules unusable", zap.String("status", report.Status), zap.String("error", report.Error))
		}
	}

	if run.server {
		logg.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
		} else {
			failed = true
			logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if failed {
		return fmt.Errorf("integrity checks found problems")
	}
	return nil
}
