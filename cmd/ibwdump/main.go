// Diagnostic tool for inspecting Igor binary wave scan files
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/robert-malhotra/go-ibw/ibw"
)

func main() {
	channel := flag.String("channel", "HeightTrace", "channel to extract")
	showNotes := flag.Bool("notes", false, "dump the full parsed note map")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ibwdump [-channel name] [-notes] <file.ibw> [...]")
		os.Exit(1)
	}

	exit := 0
	for _, path := range flag.Args() {
		if err := dump(path, *channel, *showNotes); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func dump(path, channel string, showNotes bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	res, err := ibw.Decode(data, channel)
	if err != nil {
		return err
	}

	rows, cols := res.Image.Dims()
	heights := res.Image.RawMatrix().Data

	fmt.Printf("=== %s ===\n", path)
	fmt.Printf("Image:    %dx%d px\n", rows, cols)
	fmt.Printf("Height:   %.3f .. %.3f nm\n", floats.Min(heights), floats.Max(heights))
	fmt.Printf("Channels: %v\n", res.Channels)
	fmt.Printf("Scaling:  slow %.6g px/nm, fast %.6g px/nm\n", res.Scaling.Slow, res.Scaling.Fast)

	fmt.Println("Metadata:")
	for _, key := range ibw.StandardMetadataKeys {
		fmt.Printf("  %-34s %v\n", key, res.Metadata[key])
	}

	if showNotes {
		fmt.Printf("Notes (%d entries):\n", len(res.Notes))
		for k, v := range res.Notes {
			fmt.Printf("  %s: %s\n", k, v)
		}
	}
	return nil
}
