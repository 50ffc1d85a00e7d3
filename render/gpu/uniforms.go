package gpu

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// uniformBytes serializes a uniform struct to the little-endian layout
// its WGSL counterpart declares. The Go struct must be fixed-size and
// carry any trailing padding the shader-side alignment rules add.
func uniformBytes(u any) []byte {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, u); err != nil {
		panic(fmt.Sprintf("gpu: uniform %T is not fixed-size: %v", u, err))
	}
	return buf.Bytes()
}
