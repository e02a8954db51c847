package main

import (
	"log"

	"papertrade/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	apiHandler, config, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(config.Port)
	if err != nil {
		log.Fatal(err)
	}
}
