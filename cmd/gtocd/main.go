package main

import (
	"log"

	"github.com/Alrightsc/gtnh-flow/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
