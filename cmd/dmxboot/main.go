// Command dmxboot uploads Intel HEX firmware to a DMX fixture bootloader
// over a serial line.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
