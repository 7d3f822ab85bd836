// internal/render/msgpack.go
//
// MessagePack renderer — the binary map format of the pipeline.
package render

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/yanizio/halyard/internal/media"
)

// MsgPack renders application/msgpack (and the x- alias).
type MsgPack struct {
	claims
}

// NewMsgPack returns the MessagePack renderer.
func NewMsgPack() *MsgPack {
	return &MsgPack{claims: claims(media.MsgPackFamily)}
}

func (r *MsgPack) Render(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}
