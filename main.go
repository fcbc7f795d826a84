package main

import (
	"log"

	"github.com/spigell/skill-scout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
