package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mohammed-danyal/brainrot-news/pkg/config/env"
	"github.com/mohammed-danyal/brainrot-news/pkg/stringsutil"
)

const DefaultPort = "5000"

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
}

// LoadConfig reads server settings from the environment. The .env file is
// expected to be loaded by the caller.
func LoadConfig() (*Config, error) {
	useHttp2, err := env.Bool("USE_HTTP2", false)
	if err != nil {
		return nil, err
	}

	port := env.String("PORT", DefaultPort)

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := stringsutil.SplitList(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
