package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// cryptoSource reads draws from the operating system's CSPRNG.
// Non-reproducible: there is no seed and no replay.
type cryptoSource struct{}

// NewCrypto returns a Source backed by crypto/rand. Use it when the hidden
// state must be unpredictable rather than replayable.
// Complexity: O(1) per draw (one 8-byte read).
func NewCrypto() Source {
	return cryptoSource{}
}

// Next reads 8 bytes from the CSPRNG and packs them into one draw.
// Fails with ErrBackendRead if the backend read fails; a partial read is
// never turned into a partial draw.
func (cryptoSource) Next() (Draw, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBackendRead, err)
	}

	return Draw(binary.BigEndian.Uint64(buf[:])), nil
}
