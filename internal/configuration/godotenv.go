package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider is an implementation wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read reads dotenv-type configuration files into a map (map[key]value). Later
// files take precedence over earlier ones.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	merged := make(map[string]string)

	for _, filename := range filenames {
		data, err := godotenv.Read(filename)
		if err != nil {
			return nil, fmt.Errorf("(config-godotenv) %w", err)
		}

		for key, value := range data {
			merged[key] = value
		}
	}

	return merged, nil
}
