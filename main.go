package main

import (
	"fmt"
	"os"

	"github.com/mrhaji1999/vandapay-sub001/cmd"

	_ "github.com/mrhaji1999/vandapay-sub001/cmd/console"
)

func main() {
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
