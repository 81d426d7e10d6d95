// Command internstat interns the lines or words of text inputs and reports
// how much the arena deduplicated.
//
// Usage:
//
//	internstat [flags] INPUT...
//
// INPUT is a local path, "-" for stdin, s3://bucket/key or minio://bucket/key.
// Inputs ending in .zst, .gz or .lz4 are decompressed on the fly.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
