// Command schedulectl searches Searoutes itineraries and resolves ports and carriers from the terminal.
package main

import "github.com/schedule-lookup/schedule-lookup-service/internal/cli"

func main() {
	cli.Execute()
}
