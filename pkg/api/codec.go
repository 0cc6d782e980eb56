package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec marshals wire messages with encoding/json. Registering it under
// the name "json" replaces Connect's default protojson codec, so handlers and
// clients exchange plain Go structs over application/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}

// WithJSONCodec returns the Connect option registering the plain JSON codec.
// Every handler and client in this API must be constructed with it.
func WithJSONCodec() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
