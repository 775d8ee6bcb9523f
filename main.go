package main

import (
	"os"

	"github.com/rs/zerolog/log"

	devutils "github.com/devutils/devutils/cmd/devutils"
	"github.com/devutils/devutils/pkg/config"
)

func main() {
	configFile := ""
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	conf, err := config.Load(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load config file")
	}

	devutils.Run(conf)
}
