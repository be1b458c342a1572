package instanceid

import (
	"github.com/google/uuid"
)

// nolint:gochecknoglobals
var instanceID = uuid.New()

// String returns the id of the running process, generated once at startup.
func String() string {
	return instanceID.String()
}
