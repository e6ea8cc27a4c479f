package main

import (
	"log"

	"github.com/housekit/housekit/csv"
	"github.com/jaffee/commandeer"
)

func main() {
	if err := commandeer.Run(csv.NewMain()); err != nil {
		log.Fatal(err)
	}
}
