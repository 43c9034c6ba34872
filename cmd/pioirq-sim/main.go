// cmd/pioirq-sim/main.go
package main

import (
	"log"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
