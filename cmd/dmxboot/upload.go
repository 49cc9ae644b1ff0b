package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/stagelight/go-dmxboot/bootloader"
	"github.com/stagelight/go-dmxboot/flash"
	"github.com/stagelight/go-dmxboot/ihex"
	"github.com/stagelight/go-dmxboot/internal/logging"
	"github.com/stagelight/go-dmxboot/transport"
)

const retryDelay = 500 * time.Millisecond

var (
	showDetail bool
	dryRun     bool
)

func init() {
	uploadCmd.Flags().StringP("port", "p", "", "serial port of the fixture")
	uploadCmd.Flags().StringP("file", "f", "", "Intel HEX firmware file")
	uploadCmd.Flags().Int("baud-rate", 0, "serial baud rate")
	uploadCmd.Flags().Duration("byte-delay", 0, "pause after each payload byte")
	uploadCmd.Flags().Duration("page-delay", 0, "pause after each page frame")
	uploadCmd.Flags().Uint("open-retries", 0, "attempts to open a busy serial port")
	uploadCmd.Flags().Bool("strict", false, "reject records with a bad checksum")
	uploadCmd.Flags().BoolVarP(&showDetail, "detail", "d", false, "print the address range and space used")
	uploadCmd.Flags().BoolVar(&dryRun, "dry-run", false, "encode the frames without opening the serial port")
	rootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a firmware image",
	Long:  "Parses an Intel HEX file, splits it into flash pages and sends them to the bootloader.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := cfg.File
		if len(args) == 1 {
			file = args[0]
		}
		if file == "" {
			return errors.New("no firmware file given")
		}

		img, err := loadImage(file)
		if err != nil {
			return err
		}
		if showDetail {
			printSummary(cmd.OutOrStdout(), file, img.Summary())
		}

		opts := []bootloader.Option{
			bootloader.WithLogger(logging.Adapter{Logger: log}),
			bootloader.WithByteDelay(cfg.ByteDelay),
			bootloader.WithPageDelay(cfg.PageDelay),
		}

		var w io.Writer
		if dryRun {
			var buf bytes.Buffer
			w = &buf
			opts = append(opts, bootloader.WithNoDelay())
			defer func() {
				fmt.Fprintf(cmd.OutOrStdout(), "dry run: %d bytes encoded\n", buf.Len())
			}()
		} else {
			dialer := transport.Dialer{
				Attempts: cfg.OpenRetries,
				Delay:    retryDelay,
				OnRetry: func(attempt uint, err error) {
					log.Warn().Err(err).Uint("attempt", attempt).Str("port", cfg.Port).Msg("serial port busy, retrying")
				},
			}
			port, err := dialer.Dial(cfg.Port, cfg.BaudRate)
			if err != nil {
				return err
			}
			defer port.Close()
			w = port
		}

		bar := progressbar.NewOptions(100,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Uploading"),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
		)
		opts = append(opts, bootloader.WithProgressCallback(func(p bootloader.Progress) {
			bar.Describe(fmt.Sprintf("Page %d/%d", p.PagesSent, p.TotalPages))
			_ = bar.Set(int(p.Percentage))
		}))

		up := bootloader.New(w, opts...)
		if err := up.Upload(img); err != nil {
			return fmt.Errorf("upload %s: %w", file, err)
		}
		log.Info().Str("file", file).Msg("firmware uploaded")
		return nil
	},
}

// loadImage parses file and lays it out on the configured flash geometry.
func loadImage(file string) (*flash.Image, error) {
	var parseOpts []ihex.ParseOption
	if cfg.Strict {
		parseOpts = append(parseOpts, ihex.WithChecksumValidation())
	}

	records, err := ihex.Parse(file, parseOpts...)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("hex file %q does not exist", file)
		}
		return nil, fmt.Errorf("hex file %q contains invalid records: %w", file, err)
	}

	img, err := flash.Assemble(records, cfg.Geometry())
	if err != nil {
		return nil, fmt.Errorf("hex file %q: %w", file, err)
	}
	return img, nil
}
