package instance

import "github.com/angelmondragon/cartstore/pkg/env"

// GetID returns the process instance identifier or a default value.
func GetID() string {
	return env.First("local", "CARTSTORE_INSTANCE_ID", "DYNO", "HOSTNAME")
}
