package main

import (
	"os"

	"github.com/mcap-hotel/staffdesk/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
