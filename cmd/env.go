package cmd

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	envStatusDB        = "SEQDELIVER_DB"
	envBundlesDB       = "SEQDELIVER_BUNDLES"
	envCustomersFolder = "SEQDELIVER_CUSTOMERS"
)

var dotEnvKeys = []string{ //nolint:gochecknoglobals
	envStatusDB,
	envBundlesDB,
	envCustomersFolder,
}

// loadDotEnv overlays .env and .env.local on to the environment, without
// overriding variables that were already set.
func loadDotEnv() {
	orig := originalEnvKeys(dotEnvKeys)

	loadDotEnvFile(".env", orig)
	loadDotEnvFile(".env.local", orig)
}

func originalEnvKeys(keys []string) map[string]struct{} {
	orig := map[string]struct{}{}

	for _, key := range keys {
		if _, ok := os.LookupEnv(key); ok {
			orig[key] = struct{}{}
		}
	}

	return orig
}

func loadDotEnvFile(path string, orig map[string]struct{}) {
	env, err := godotenv.Read(path)
	if err != nil {
		return
	}

	for _, key := range dotEnvKeys {
		val, ok := env[key]
		if !ok {
			continue
		}

		if _, ok := orig[key]; ok {
			continue
		}

		_ = os.Setenv(key, val)
	}
}

// flagOrEnv returns the flag value if set, otherwise the environment value.
func flagOrEnv(flag, envKey string) string {
	if flag != "" {
		return flag
	}

	return os.Getenv(envKey)
}
