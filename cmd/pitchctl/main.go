package main

import (
	"log"
	"os"

	"github.com/riskibarqy/matchboard/internal/interfaces/pitchcli"
)

var version = "dev"

func main() {
	app := pitchcli.NewApp(version, os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
