// Command webpkit validates WebP files and prints their structural metadata.
//
// Usage:
//
//	webpkit [-checksum] file.webp [file.webp ...]
//
// Validation limits and the checksum algorithm are read from the
// BEAVER_WEBPKIT_* environment variables; see webpkit.Config. The exit code
// is 1 when any file fails validation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gobeaver/webpkit"
)

func main() {
	checksum := flag.Bool("checksum", false, "print a checksum for files that validate")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: webpkit [-checksum] file.webp [file.webp ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := webpkit.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "webpkit: %v\n", err)
		os.Exit(2)
	}

	validator := webpkit.New(cfg.Constraints())
	algorithm := webpkit.ChecksumAlgorithm(cfg.ChecksumAlgorithm)

	failed := 0
	for _, path := range flag.Args() {
		info, err := validator.Validate(path)
		if err != nil {
			failed++
			fmt.Printf("%s: invalid: %s\n", path, webpkit.GetErrorMessage(err))
			continue
		}

		fmt.Printf("%s: %s\n", path, info.Summary())

		if *checksum {
			sum, err := webpkit.ChecksumFile(path, algorithm)
			if err != nil {
				fmt.Fprintf(os.Stderr, "webpkit: %s: %v\n", path, err)
				continue
			}
			fmt.Printf("%s: %s %s\n", path, algorithm, sum)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
