package main

import (
	"os"

	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
	cli "github.com/viant/aiperson/cmd/aiperson"
)

var Version = "dev"

func main() {
	cli.SetVersion(Version)
	cli.RunWithCommands(os.Args[1:])
}
