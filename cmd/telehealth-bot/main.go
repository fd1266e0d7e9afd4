package main

import (
	"log"

	"github.com/BetelgeuseOrientAlph/telehealth-bot/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
