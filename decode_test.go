package chirp8_test

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/aquinn/chirp8"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		w0, w1 byte
		want   chirp8.Op
	}{
		{"SYS", 0x03, 0x45, chirp8.Op{Kind: chirp8.OpSys, Y: 0x4, N: 0x5, NN: 0x45, NNN: 0x345, X: 0x3}},
		{"CLS", 0x00, 0xE0, chirp8.Op{Kind: chirp8.OpCls, Y: 0xE, NN: 0xE0, NNN: 0x0E0}},
		{"RET", 0x00, 0xEE, chirp8.Op{Kind: chirp8.OpRet, Y: 0xE, N: 0xE, NN: 0xEE, NNN: 0x0EE}},
		{"JP", 0x1A, 0xBC, chirp8.Op{Kind: chirp8.OpJp, X: 0xA, Y: 0xB, N: 0xC, NN: 0xBC, NNN: 0xABC}},
		{"CALL", 0x2F, 0xFE, chirp8.Op{Kind: chirp8.OpCall, X: 0xF, Y: 0xF, N: 0xE, NN: 0xFE, NNN: 0xFFE}},
		{"SE byte", 0x31, 0x42, chirp8.Op{Kind: chirp8.OpSeByte, X: 0x1, Y: 0x4, N: 0x2, NN: 0x42, NNN: 0x142}},
		{"SNE byte", 0x42, 0x42, chirp8.Op{Kind: chirp8.OpSneByte, X: 0x2, Y: 0x4, N: 0x2, NN: 0x42, NNN: 0x242}},
		{"SE reg", 0x51, 0x20, chirp8.Op{Kind: chirp8.OpSeReg, X: 0x1, Y: 0x2, NN: 0x20, NNN: 0x120}},
		{"LD byte", 0x63, 0x42, chirp8.Op{Kind: chirp8.OpLdByte, X: 0x3, Y: 0x4, N: 0x2, NN: 0x42, NNN: 0x342}},
		{"ADD byte", 0x70, 0x01, chirp8.Op{Kind: chirp8.OpAddByte, N: 0x1, NN: 0x01, NNN: 0x001}},
		{"LD reg", 0x81, 0x20, chirp8.Op{Kind: chirp8.OpLdReg, X: 0x1, Y: 0x2, NN: 0x20, NNN: 0x120}},
		{"OR", 0x81, 0x21, chirp8.Op{Kind: chirp8.OpOr, X: 0x1, Y: 0x2, N: 0x1, NN: 0x21, NNN: 0x121}},
		{"AND", 0x81, 0x22, chirp8.Op{Kind: chirp8.OpAnd, X: 0x1, Y: 0x2, N: 0x2, NN: 0x22, NNN: 0x122}},
		{"XOR", 0x81, 0x23, chirp8.Op{Kind: chirp8.OpXor, X: 0x1, Y: 0x2, N: 0x3, NN: 0x23, NNN: 0x123}},
		{"ADD reg", 0x81, 0x24, chirp8.Op{Kind: chirp8.OpAddReg, X: 0x1, Y: 0x2, N: 0x4, NN: 0x24, NNN: 0x124}},
		{"SUB", 0x81, 0x25, chirp8.Op{Kind: chirp8.OpSub, X: 0x1, Y: 0x2, N: 0x5, NN: 0x25, NNN: 0x125}},
		{"SHR", 0x81, 0x26, chirp8.Op{Kind: chirp8.OpShr, X: 0x1, Y: 0x2, N: 0x6, NN: 0x26, NNN: 0x126}},
		{"SUBN", 0x81, 0x27, chirp8.Op{Kind: chirp8.OpSubn, X: 0x1, Y: 0x2, N: 0x7, NN: 0x27, NNN: 0x127}},
		{"SHL", 0x81, 0x2E, chirp8.Op{Kind: chirp8.OpShl, X: 0x1, Y: 0x2, N: 0xE, NN: 0x2E, NNN: 0x12E}},
		{"SNE reg", 0x91, 0x20, chirp8.Op{Kind: chirp8.OpSneReg, X: 0x1, Y: 0x2, NN: 0x20, NNN: 0x120}},
		{"LD I", 0xA1, 0x23, chirp8.Op{Kind: chirp8.OpLdI, X: 0x1, Y: 0x2, N: 0x3, NN: 0x23, NNN: 0x123}},
		{"JP V0", 0xB1, 0x23, chirp8.Op{Kind: chirp8.OpJpV0, X: 0x1, Y: 0x2, N: 0x3, NN: 0x23, NNN: 0x123}},
		{"RND", 0xC4, 0x0F, chirp8.Op{Kind: chirp8.OpRnd, X: 0x4, N: 0xF, NN: 0x0F, NNN: 0x40F}},
		{"DRW", 0xD1, 0x25, chirp8.Op{Kind: chirp8.OpDrw, X: 0x1, Y: 0x2, N: 0x5, NN: 0x25, NNN: 0x125}},
		{"SKP", 0xE1, 0x9E, chirp8.Op{Kind: chirp8.OpSkp, X: 0x1, Y: 0x9, N: 0xE, NN: 0x9E, NNN: 0x19E}},
		{"SKNP", 0xE1, 0xA1, chirp8.Op{Kind: chirp8.OpSknp, X: 0x1, Y: 0xA, N: 0x1, NN: 0xA1, NNN: 0x1A1}},
		{"LD Vx DT", 0xF1, 0x07, chirp8.Op{Kind: chirp8.OpLdVxDt, X: 0x1, N: 0x7, NN: 0x07, NNN: 0x107}},
		{"LD Vx K", 0xF1, 0x0A, chirp8.Op{Kind: chirp8.OpLdVxKey, X: 0x1, N: 0xA, NN: 0x0A, NNN: 0x10A}},
		{"LD DT Vx", 0xF1, 0x15, chirp8.Op{Kind: chirp8.OpLdDtVx, X: 0x1, Y: 0x1, N: 0x5, NN: 0x15, NNN: 0x115}},
		{"LD ST Vx", 0xF1, 0x18, chirp8.Op{Kind: chirp8.OpLdStVx, X: 0x1, Y: 0x1, N: 0x8, NN: 0x18, NNN: 0x118}},
		{"ADD I", 0xF1, 0x1E, chirp8.Op{Kind: chirp8.OpAddI, X: 0x1, Y: 0x1, N: 0xE, NN: 0x1E, NNN: 0x11E}},
		{"LD F", 0xF1, 0x29, chirp8.Op{Kind: chirp8.OpLdFont, X: 0x1, Y: 0x2, N: 0x9, NN: 0x29, NNN: 0x129}},
		{"LD B", 0xF1, 0x33, chirp8.Op{Kind: chirp8.OpLdBcd, X: 0x1, Y: 0x3, N: 0x3, NN: 0x33, NNN: 0x133}},
		{"LD [I] Vx", 0xF1, 0x55, chirp8.Op{Kind: chirp8.OpLdMemVx, X: 0x1, Y: 0x5, N: 0x5, NN: 0x55, NNN: 0x155}},
		{"LD Vx [I]", 0xF1, 0x65, chirp8.Op{Kind: chirp8.OpLdVxMem, X: 0x1, Y: 0x6, N: 0x5, NN: 0x65, NNN: 0x165}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := chirp8.Decode(tt.w0, tt.w1)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		w0, w1 byte
	}{
		{"5xy with nonzero low nibble", 0x51, 0x21},
		{"8xy with unknown ALU selector", 0x81, 0x28},
		{"8xy with selector F", 0x81, 0x2F},
		{"9xy with nonzero low nibble", 0x91, 0x21},
		{"Ex with unknown selector", 0xE1, 0x00},
		{"Fx with unknown selector", 0xF1, 0x66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chirp8.Decode(tt.w0, tt.w1)

			var opErr chirp8.ErrInvalidOp
			assert.True(t, errors.As(err, &opErr))
			assert.Equal(t, [2]byte{tt.w0, tt.w1}, opErr.Words)
		})
	}
}
