package vector

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/lumenlang/lumenrt/value"
)

// Text renders the vector's contents. Managed elements are formatted
// through the runtime context; plain values are rendered as hex bytes.
func (v *Vector) Text() (string, error) {
	v.lock()
	defer v.unlock()
	return v.text()
}

func (v *Vector) text() (string, error) {
	if v.closed {
		return "", ErrClosed
	}

	var sb strings.Builder
	sb.WriteByte('[')
	s := v.stride
	for i := range v.num {
		if i > 0 {
			sb.WriteString(", ")
		}
		slot := v.buf[i*s : (i+1)*s]
		if v.ctx != nil {
			text, err := v.ctx.Format(value.GetRef(slot))
			if err != nil {
				return "", err
			}
			sb.WriteString(text)
		} else {
			sb.WriteString("0x")
			sb.WriteString(hex.EncodeToString(slot))
		}
	}
	sb.WriteByte(']')
	return sb.String(), nil
}

// String implements fmt.Stringer. Formatting failures degrade to a
// structural summary.
func (v *Vector) String() string {
	text, err := v.Text()
	if err != nil {
		return fmt.Sprintf("vector(len=%d, stride=%d)", v.Len(), v.stride)
	}
	return text
}
