package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stagelight/go-dmxboot/flash"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show the address range and space used by a firmware image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadImage(args[0])
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), args[0], img.Summary())
		return nil
	},
}

func printSummary(w io.Writer, file string, s flash.Summary) {
	if s.Empty {
		fmt.Fprintf(w, "%s: no data records\n", file)
		return
	}
	fmt.Fprintf(w, "Min Addr: 0x%04X\n", s.MinAddress)
	fmt.Fprintf(w, "Max Addr: 0x%04X\n", s.MaxAddress)
	fmt.Fprintf(w, "Pages: %d-%d (%d used)\n", s.MinPage, s.MaxPage, s.UsedPages)
	fmt.Fprintf(w, "Total Space Used: %d bytes, %.2f%%\n", s.Span, s.PercentUsed)
}
