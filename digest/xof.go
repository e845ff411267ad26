package digest

import (
	"hash"

	"github.com/cloudflare/circl/xof"
	"github.com/cloudflare/circl/xof/k12"
)

const (
	shake256Size = 64
	k12Size      = 32

	// Sponge rates in bytes, reported as BlockSize.
	shake256Rate = 136
	k12Rate      = 168
)

// xofHash adapts an extendable-output function to [hash.Hash] by squeezing a
// fixed number of bytes.  Sum reads from a clone, so Write may continue
// afterwards exactly as with the fixed-length hashes.
type xofHash struct {
	x    xof.XOF
	size int
	rate int
}

func newShake256() hash.Hash {
	return &xofHash{x: xof.SHAKE256.New(), size: shake256Size, rate: shake256Rate}
}

func (h *xofHash) Write(p []byte) (int, error) { return h.x.Write(p) }

func (h *xofHash) Sum(b []byte) []byte {
	out := make([]byte, h.size)
	_, _ = h.x.Clone().Read(out)
	return append(b, out...)
}

func (h *xofHash) Reset()         { h.x.Reset() }
func (h *xofHash) Size() int      { return h.size }
func (h *xofHash) BlockSize() int { return h.rate }

// k12Hash wraps a KangarooTwelve state with an empty customisation string.
type k12Hash struct {
	s k12.State
}

func newK12() hash.Hash {
	return &k12Hash{s: k12.NewDraft10(nil)}
}

func (h *k12Hash) Write(p []byte) (int, error) { return h.s.Write(p) }

func (h *k12Hash) Sum(b []byte) []byte {
	out := make([]byte, k12Size)
	c := h.s.Clone()
	_, _ = c.Read(out)
	return append(b, out...)
}

func (h *k12Hash) Reset()         { h.s.Reset() }
func (h *k12Hash) Size() int      { return k12Size }
func (h *k12Hash) BlockSize() int { return k12Rate }
