package main

import (
	"fmt"
	"io"
	"strconv"

	"catalog_service/internal/domain"
	"catalog_service/internal/taxonomy"
	"catalog_service/internal/usecase"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func newRootCommand(open storeOpener, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect and maintain the storefront product catalog",
		Long: `catalogctl reads the catalog from the storage backend configured for the
service (STORAGE_DRIVER and friends) and prints results as YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(
		newFilterCommand(open, out),
		newShowCommand(open, out),
		newResetCommand(open, out),
		newExportCommand(open, out),
	)
	return root
}

func newFilterCommand(open storeOpener, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "filter <identifier>",
		Short: "List the products a category identifier resolves to",
		Long: `Resolve a taxonomy key (men, hats, christmas) or a composite
"<department>:<subcategory>" key (women:dress) against the catalog.

Examples:
  catalogctl filter men
  catalogctl filter accessories:hats`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identifier := domain.NormalizeKey(args[0])
			return withStore(cmd.Context(), open, out, func(store *usecase.ProductStore) error {
				info := taxonomy.ResolveMetadata(identifier)
				products := taxonomy.ResolveFilter(identifier, store.Products())
				info.ProductCount = len(products)
				return writeYAML(out, struct {
					Category domain.CategoryInfo `yaml:"category"`
					Products []domain.Product    `yaml:"products"`
				}{info, products})
			})
		},
	}
}

func newShowCommand(open storeOpener, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a product and its related products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid product ID %q", args[0])
			}
			return withStore(cmd.Context(), open, out, func(store *usecase.ProductStore) error {
				products := store.Products()
				product, ok := usecase.ByID(products, id)
				if !ok {
					return fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
				}
				return writeYAML(out, struct {
					Product domain.Product   `yaml:"product"`
					Related []domain.Product `yaml:"related"`
				}{product, usecase.Related(products, product, usecase.DefaultRelatedLimit)})
			})
		},
	}
}

func newResetCommand(open storeOpener, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the persisted catalog with the bundled seed catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), open, out, func(store *usecase.ProductStore) error {
				store.Reset(cmd.Context())
				fmt.Fprintf(out, "catalog reset to %d seed products\n", len(store.Products()))
				return nil
			})
		},
	}
}

func newExportCommand(open storeOpener, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the whole catalog as YAML",
		Long: `Print the whole catalog as YAML in the same shape as the bundled seed
file, so an export can be reviewed or diffed against it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), open, out, func(store *usecase.ProductStore) error {
				return writeYAML(out, store.Products())
			})
		},
	}
}

func writeYAML(out io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	_, err = out.Write(data)
	return err
}
