package main

import (
	"fmt"
	"log"
	"os"

	"fincontrol/cmd"

	_ "github.com/lib/pq"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)
	err = apiHandler.StartApi(3009)
	if err != nil {
		log.Fatal(err)
	}
}
