// Package flash maps Intel HEX records onto fixed-size flash pages.
//
// A Geometry describes the device: how many pages it has, how large a page
// is and which pages belong to the bootloader. Assemble folds parsed records
// into an Image holding every page of the device, pre-zeroed, with the pages
// touched by a record marked as used:
//
//	records, err := ihex.Parse("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img, err := flash.Assemble(records, flash.DefaultGeometry())
//	if err != nil {
//	    log.Fatal(err) // *PageOverflowError or *ProtectedRegionError
//	}
//	s := img.Summary()
//	fmt.Printf("%d bytes, %.2f%% of program space\n", s.BytesWritten, s.PercentUsed)
//
// Assembly fails before anything is sent to a device, so an image that
// would overwrite the bootloader never reaches the wire.
package flash
