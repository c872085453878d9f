package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// codecName is the content-subtype of planner calls
const codecName = "json"

// jsonCodec carries planner messages as JSON. The planner contract reuses the
// application DTOs directly, so there are no generated protobuf types.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return codecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
