package main

import (
	"fmt"
	"io"
	"strconv"

	"retail/internal/adapters/out/postgres"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/kernel"

	"github.com/jmoiron/sqlx"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var warehouse string

	report := &cobra.Command{
		Use:   "report",
		Short: "Print store reports",
	}
	report.PersistentFlags().StringVarP(&warehouse, "warehouse", "w", "", "limit the report to one warehouse id")

	run := func(render func(c *cobra.Command, db *sqlx.DB, warehouseID *kernel.UUID) error) func(*cobra.Command, []string) error {
		return func(c *cobra.Command, _ []string) error {
			configs, _, err := opts.load()
			if err != nil {
				return err
			}

			var warehouseID *kernel.UUID
			if warehouse != "" {
				id, err := kernel.UUIDFromString(warehouse)
				if err != nil {
					return err
				}
				warehouseID = &id
			}

			db, err := postgres.OpenReadModel(configs.Database())
			if err != nil {
				return err
			}
			defer db.Close()
			return render(c, db, warehouseID)
		}
	}

	report.AddCommand(
		&cobra.Command{
			Use:   "low-stock",
			Short: "Products below their reorder threshold",
			Args:  cobra.NoArgs,
			RunE: run(func(c *cobra.Command, db *sqlx.DB, warehouseID *kernel.UUID) error {
				query, err := queries.NewGetLowStockQuery(warehouseID)
				if err != nil {
					return err
				}
				items, err := queries.NewGetLowStockQueryHandler(db).Handle(c.Context(), query)
				if err != nil {
					return err
				}
				return printLowStock(c.OutOrStdout(), items)
			}),
		},
		&cobra.Command{
			Use:   "sales",
			Short: "Sales with totals, newest first",
			Args:  cobra.NoArgs,
			RunE: run(func(c *cobra.Command, db *sqlx.DB, warehouseID *kernel.UUID) error {
				query, err := queries.NewGetSalesReportQuery(warehouseID)
				if err != nil {
					return err
				}
				sales, err := queries.NewGetSalesReportQueryHandler(db).Handle(c.Context(), query)
				if err != nil {
					return err
				}
				return printSales(c.OutOrStdout(), sales)
			}),
		},
	)
	return report
}

func printLowStock(w io.Writer, items []queries.LowStockView) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "Every product is above its minimum")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Warehouse", "Product", "Category", "Quantity", "Minimum", "Short")
	for _, item := range items {
		if err := table.Append([]string{
			item.WarehouseName,
			item.ProductName,
			item.Category,
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.MinQuantity),
			strconv.Itoa(item.Shortage()),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func printSales(w io.Writer, sales []queries.SaleView) error {
	if len(sales) == 0 {
		_, err := fmt.Fprintln(w, "No sales yet")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Sold at", "Warehouse", "Cashier", "Items", "Total", "Status")
	revenue := kernel.ZeroMoney()
	for _, s := range sales {
		if err := table.Append([]string{
			s.SoldAt.Format("2006-01-02 15:04"),
			s.WarehouseName,
			s.CashierName,
			s.Items,
			s.Total.String(),
			s.Status,
		}); err != nil {
			return err
		}
		if s.Status != "cancelled" {
			revenue = revenue.Add(s.Total)
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Revenue: %s\n", revenue)
	return err
}
