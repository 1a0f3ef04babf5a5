package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Arun445/iperfer/internal/client"
	"github.com/Arun445/iperfer/internal/config"
	"github.com/Arun445/iperfer/internal/server"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run parses either "-s -p <port>" or "-c -h <host> -p <port> -t <seconds>"
// and writes the result line to stdout.
func run(args []string, stdout io.Writer) int {
	serverConfig := config.Server()
	clientConfig := config.Client()

	flags := flag.NewFlagSet("iperfer", flag.ContinueOnError)
	serverMode := flags.Bool("s", false, "run in server mode")
	clientMode := flags.Bool("c", false, "run in client mode")
	host := flags.String("h", clientConfig.Host, "server host (client mode)")
	port := flags.Int("p", serverConfig.Port, "port to listen on or connect to")
	duration := flags.Int("t", clientConfig.Duration, "seconds to send data for (client mode)")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() != 0 {
		log.Printf("Error: unexpected arguments %v", flags.Args())
		return exitUsage
	}
	if *serverMode == *clientMode {
		log.Printf("Error: exactly one of -s or -c is required")
		return exitUsage
	}

	visited := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { visited[f.Name] = true })

	if *serverMode {
		if visited["h"] || visited["t"] {
			log.Printf("Error: -h and -t are only valid in client mode")
			return exitUsage
		}
		if !visited["p"] {
			log.Printf("Error: server mode requires -p <port>")
			return exitUsage
		}

		serverConfig.Port = *port
		return runServer(serverConfig, stdout)
	}

	if !visited["h"] || !visited["p"] || !visited["t"] {
		log.Printf("Error: client mode requires -h <host> -p <port> -t <seconds>")
		return exitUsage
	}

	clientConfig.Host = *host
	clientConfig.Port = *port
	clientConfig.Duration = *duration
	return runClient(clientConfig, stdout)
}

func runServer(serverConfig *config.ServerConfig, stdout io.Writer) int {
	if err := serverConfig.Validate(); err != nil {
		log.Printf("Error: %v", err)
		return exitUsage
	}

	measurement, err := server.NewServer(serverConfig).Run()
	if err != nil {
		log.Printf("Server failed: %v", err)
		return exitFailure
	}

	fmt.Fprintln(stdout, measurement.Report("Received"))
	return exitOK
}

func runClient(clientConfig *config.ClientConfig, stdout io.Writer) int {
	if err := clientConfig.Validate(); err != nil {
		log.Printf("Error: %v", err)
		return exitUsage
	}

	measurement, err := client.NewClient(clientConfig).Run()
	if err != nil {
		log.Printf("Client failed: %v", err)
		return exitFailure
	}

	fmt.Fprintln(stdout, measurement.Report("Sent"))
	return exitOK
}
