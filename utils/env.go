package utils

import (
	"os"
	"strings"
)

func GetEnvVarWithDefault(envVar, defaultValue string) string {
	value, found := os.LookupEnv(envVar)
	if !found {
		return defaultValue
	}
	return value
}

// GetEnvListWithDefault splits a comma separated env var, dropping blanks.
func GetEnvListWithDefault(envVar string, defaultValue []string) []string {
	value, found := os.LookupEnv(envVar)
	if !found {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
