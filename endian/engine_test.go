package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"big", GetBigEndianEngine(), []byte{0x00, 0x00, 0x01, 0x2C}},
		{"little", GetLittleEndianEngine(), []byte{0x2C, 0x01, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint32(nil, 300)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint32(300), tt.engine.Uint32(buf))

			put := make([]byte, 4)
			tt.engine.PutUint32(put, 300)
			require.Equal(t, buf, put)
		})
	}
}
