// main.go (точка входа)
package main

import (
	"log"

	"uwazi/config"
	"uwazi/server"
)

func main() {
	cfg := config.MustLoad()
	app := &server.App{}
	app.Initialize(cfg)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
