package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Gayatrinj/Your-Personal-Stylists/config"
	"github.com/Gayatrinj/Your-Personal-Stylists/utils"
)

// Mints a bearer token for local testing against the authenticated routes.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: mint_token <user_id>")
		os.Exit(1)
	}

	config.LoadConfig()

	token, err := utils.GenerateToken(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Println(token)
}
