package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID generates the ULID that tags every log line of one audit run.
var NewRunID = func() string {
	return ulid.Make().String()
}
