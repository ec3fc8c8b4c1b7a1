package main

import (
	"log"

	"github.com/vizigr0u/sugarcube/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
