package main

import (
	"fmt"
	"log"
	"os"
	"time"
	"travel/pkg/pricing"

	"github.com/gin-gonic/gin"
)

func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	latency := time.Duration(0)
	if len(os.Args) > 2 {
		d, err := time.ParseDuration(os.Args[2])
		if err != nil {
			log.Fatalf("invalid latency %q: %v", os.Args[2], err)
		}
		latency = d
	}

	r := gin.Default()
	newPriceHandler(pricing.NewHeuristicOracle(latency)).register(r)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Go Mock Pricing Server running on port %s...\n", port)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
