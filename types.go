package paystack

import "encoding/json"

// Metadata holds free-form JSON the API echoes back verbatim. It is kept
// raw because the remote contract allows objects, arrays, and plain strings
// in these positions.
type Metadata = json.RawMessage
