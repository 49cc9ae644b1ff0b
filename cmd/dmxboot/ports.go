package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stagelight/go-dmxboot/transport"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ports, err := transport.ListPorts()
		if err != nil {
			return err
		}
		if len(ports) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no serial ports found")
			return nil
		}
		for _, p := range ports {
			if p.IsUSB {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tUSB %s:%s %s\n", p.Name, p.VID, p.PID, p.Product)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Name)
		}
		return nil
	},
}
