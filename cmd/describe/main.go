// describe reads newline-separated numbers from stdin and prints a
// descriptive summary of their distribution.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newDescribeCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
