package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"GrayStego/pkg/console"
	"GrayStego/pkg/resample"
	"GrayStego/pkg/stego"
)

func main() {
	// Parse command line arguments
	var (
		resampler      = flag.String("resample", resample.DefaultMethod, "Interpolation used when the secret image must be resized to the cover")
		verbose        = flag.Bool("verbose", false, "Enable verbose output (image sizes and quality metrics)")
		noColor        = flag.Bool("nocolor", false, "Disable coloured output")
		listResamplers = flag.Bool("listresamplers", false, "List all available resamplers")
	)

	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	registry := resample.NewDefaultRegistry()
	printer := console.NewPrinter(color.Output, *verbose)

	if *listResamplers {
		fmt.Println("Available resamplers:")
		for _, name := range registry.Names() {
			if name == resample.DefaultMethod {
				fmt.Printf("- %s (default)\n", name)
				continue
			}
			fmt.Printf("- %s\n", name)
		}
		return
	}

	op, err := stego.NewOperator(stego.Options{Resampler: *resampler, Verbose: *verbose}, registry)
	if err != nil {
		printer.Error("Invalid configuration: %v", err)
		os.Exit(2)
	}

	printer.Verbose("Using %s resampling for mismatched image sizes", op.Options().Resampler)

	console.NewMenu(op, os.Stdin, printer).Run()
}
