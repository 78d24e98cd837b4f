package main

import (
	"os"
	"path/filepath"
	"strings"
)

// configBaseName is the file name (without extension) looked up in the
// working directory.
const configBaseName = "scalar-generator"

// findUserConfig returns the value of --config from args or the
// SCALAR_GENERATOR_CONFIG environment variable.
func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("SCALAR_GENERATOR_CONFIG"); v != "" {
		return v
	}
	return ""
}

// configCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching
// loader by extension.
func configCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return
	}

	base := filepath.Join(wd, configBaseName)
	jsonPaths = append(jsonPaths, base+".json")
	yamlPaths = append(yamlPaths, base+".yaml", base+".yml")
	tomlPaths = append(tomlPaths, base+".toml")

	return
}
