// Package codec は gRPC の content-subtype "json" で利用する JSON コーデックを提供します。
// インポートするだけでコーデックが登録されます。
package codec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name は content-subtype として利用するコーデック名です。
const Name = "json"

// JSON は encoding.Codec の JSON 実装です。
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSON) Name() string {
	return Name
}

func init() {
	encoding.RegisterCodec(JSON{})
}
