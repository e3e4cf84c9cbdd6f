package main

import (
	cmd "github.com/extractorapi/extractor/cmd/extractor"
	"github.com/extractorapi/extractor/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting extractor")
	cmd.Execute()
}
