package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"tripplanner/internal/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the generated activity catalog",
	RunE:  runCatalog,
}

var catalogDestination string

func init() {
	catalogCmd.Flags().StringVarP(&catalogDestination, "destination", "d", "", "Only list activities at this destination")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := newService(cfg, newLogger(cfg, os.Stderr)).Snapshot()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), catalogTable(snap.Catalog(), catalogDestination).Render())
	return err
}

// headerRow is the StyleFunc row index of the header in lipgloss v0.10.0.
const headerRow = 0

var catalogHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func catalogTable(cat domain.Catalog, destination string) *table.Table {
	rows := make([][]string, 0, len(cat))
	for _, rec := range cat {
		if destination != "" && rec.Destination != destination {
			continue
		}
		rows = append(rows, []string{rec.Category, rec.Name, rec.Destination})
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CATEGORY", "ACTIVITY", "DESTINATION").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == headerRow {
				return catalogHeaderStyle
			}
			return cell
		})
}
