package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/renproject/dealer/httpapi"
	"github.com/renproject/dealer/pairing"
)

func main() {
	var port uint16

	root := &cobra.Command{
		Use:   "dealer-server",
		Short: "Trusted dealer for the two-party SPDZ offline phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(port)
		},
	}
	root.Flags().Uint16VarP(&port, "port", "p", 3000, "port to listen on")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(port uint16) error {
	logger := log.New(os.Stderr, "dealer: ", log.LstdFlags)

	engine := pairing.NewEngine(rand.Reader, logger)
	router := httpapi.NewRouter(engine, logger)

	addr := fmt.Sprintf("0.0.0.0:%d", port)
	logger.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, router)
}
