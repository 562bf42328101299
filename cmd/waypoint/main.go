// Command waypoint serves the custom scheduling API.
package main

import (
	"log"
	"os"

	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/ranger"
)

func main() {
	rng, err := ranger.New()
	if err != nil {
		log.Fatal(err)
	}

	if err := rng.Guide(); err != nil {
		rng.Logger().Fatal(err.Error(), &logger.LogContext{Error: err})
		os.Exit(1)
	}
}
