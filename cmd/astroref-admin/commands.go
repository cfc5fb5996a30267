package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"astroref/internal/platform/config"
	"astroref/internal/platform/logger"
	"astroref/internal/platform/store"
	"astroref/internal/platform/store/schema"
	taxdom "astroref/internal/services/api/taxonomy/domain"
	taxrepo "astroref/internal/services/api/taxonomy/repo"
	taxsvc "astroref/internal/services/api/taxonomy/service"
	auditrepo "astroref/internal/services/audit/repo"
	auditsvc "astroref/internal/services/audit/service"

	"github.com/spf13/cobra"
)

// env bundles what every command needs after bootstrap
type env struct {
	log   *logger.Logger
	st    *store.Store
	audit *auditsvc.Sink
}

func open(cmd *cobra.Command) (*env, error) {
	files, _ := cmd.Flags().GetStringSlice("env-file")
	if _, err := config.LoadDotenv(files...); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	l := logger.Named("admin")

	st, err := store.Open(cmd.Context(), store.ConfigFromEnv(config.New(), "astroref-admin"), store.WithLogger(*l))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	e := &env{log: l, st: st, audit: auditsvc.Nop()}
	if st.CH != nil {
		e.audit = auditsvc.New(auditrepo.NewCH(st.CH), *l)
	}
	return e, nil
}

func (e *env) close() {
	if err := e.st.Close(context.Background()); err != nil {
		e.log.Error().Err(err).Msg("failed to close store")
	}
}

func (e *env) service(k taxdom.Kind) *taxsvc.Svc {
	return taxsvc.New(k, e.st.PG, taxrepo.NewPG(k), e.audit)
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create every table that does not exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			if err := schema.Apply(cmd.Context(), e.st.PG); err != nil {
				return err
			}
			if err := e.audit.EnsureTable(cmd.Context()); err != nil {
				return fmt.Errorf("audit table: %w", err)
			}
			e.log.Info().Int("statements", len(schema.Statements())).Bool("audit", e.audit.Enabled()).Msg("schema applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Bulk insert taxonomy rows from a YAML file",
		Long: `seed reads a YAML document keyed by kind (rasi, bhavam, natchathiram, planet,
combinations), each holding a list of rows in the bulk insert shape, and inserts
every kind in one transaction per kind. A kind that fails stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("file")
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			batches, err := parseSeed(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			for _, b := range batches {
				rows, err := e.service(b.Kind).BulkInsert(cmd.Context(), b.Rows)
				if err != nil {
					return fmt.Errorf("seed %s: %w", b.Kind.Name, err)
				}
				e.log.Info().Str("kind", b.Kind.Name).Int("rows", len(rows)).Msg("seeded")
			}
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "seeds/taxonomy.yaml", "seed file")
	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every row of a kind as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("kind")
			k, ok := taxdom.KindByName(name)
			if !ok {
				return fmt.Errorf("unknown kind %q (want one of %v)", name, kindNames())
			}

			e, err := open(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			rows, err := e.service(k).List(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		},
	}
	cmd.Flags().StringP("kind", "k", "rasi", "taxonomy kind")
	return cmd
}

func kindNames() []string {
	out := make([]string, 0, len(taxdom.Kinds()))
	for _, k := range taxdom.Kinds() {
		out = append(out, k.Name)
	}
	return out
}
