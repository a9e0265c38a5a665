// Package config loads typed configuration from environment variables.
//
// Struct fields are described with caarlos0/env tags; an optional .env file
// is read through godotenv before the first parse. Each config type is parsed
// once and cached, so packages can call Load for their own config struct
// without re-reading the environment.
package config
