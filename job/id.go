package job

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"lukechampine.com/blake3"
)

// NewID mints an opaque job identifier by hashing the submitted
// protein sequence together with a random nonce and the submission
// time, the same Blake3-only hashing policy poly's seqhash package
// uses for its content-addressed sequence hashes. Unlike seqhash, two
// submissions of the same protein must still get distinct ids, hence
// the nonce.
func NewID(proteinSequence string) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("job: generating id nonce: %w", err)
	}

	payload := make([]byte, 0, len(proteinSequence)+len(nonce)+8)
	payload = append(payload, proteinSequence...)
	payload = append(payload, nonce...)
	payload = append(payload, []byte(time.Now().UTC().Format(time.RFC3339Nano))...)

	sum := blake3.Sum256(payload)
	return hex.EncodeToString(sum[:16]), nil
}
