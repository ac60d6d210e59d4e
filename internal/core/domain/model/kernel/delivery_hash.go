package kernel

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"deliveryescrow/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrDeliveryHashIsNotConstructed indicates a DeliveryHash that was not produced
// by DeriveDeliveryHash or one of the parsing constructors.
var ErrDeliveryHashIsNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryHash must be created via DeriveDeliveryHash, DeliveryHashFromString, or DeliveryHashFromBytes")

// deliveryHashSize is the byte length of a delivery identifier.
const deliveryHashSize = 32

// DeliveryHash is the collision-resistant identifier of a delivery, derived
// from its creation inputs at registration time. It is a 32-byte SHA-256 digest
// salted with a random nonce so that two identical deliveries created by the
// same sender still receive distinct identifiers; a collision at insert time is
// astronomically unlikely but is still checked and rejected by the registry.
//
// The zero value is invalid.
type DeliveryHash struct {
	sum [deliveryHashSize]byte
}

// DeriveDeliveryHash computes the identifier for a delivery from its creation
// inputs. The digest covers every field that fixes the delivery's economics so
// the identifier commits to them.
func DeriveDeliveryHash(
	sender Account,
	receiver Account,
	fromAddress string,
	toAddress string,
	reward Money,
	cautionAmount Money,
	deadline time.Time,
) DeliveryHash {
	h := sha256.New()
	senderID := sender.Bytes()
	receiverID := receiver.Bytes()
	h.Write(senderID[:])
	h.Write(receiverID[:])
	h.Write([]byte(fromAddress))
	h.Write([]byte(toAddress))

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], reward.Units())
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], cautionAmount.Units())
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(deadline.Unix()))
	h.Write(buf[:])

	nonce := uuid.New()
	h.Write(nonce[:])

	var hash DeliveryHash
	copy(hash.sum[:], h.Sum(nil))
	return hash
}

// DeliveryHashFromString parses a delivery identifier from its hex form.
func DeliveryHashFromString(s string) (DeliveryHash, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return DeliveryHash{}, fmt.Errorf("invalid delivery hash format: %w", err)
	}
	return DeliveryHashFromBytes(raw)
}

// DeliveryHashFromBytes creates a DeliveryHash from a 32-byte slice.
func DeliveryHashFromBytes(b []byte) (DeliveryHash, error) {
	if len(b) != deliveryHashSize {
		return DeliveryHash{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery hash",
			fmt.Errorf("expected %d bytes, got %d", deliveryHashSize, len(b)),
		)
	}

	var hash DeliveryHash
	copy(hash.sum[:], b)
	if err := hash.Validate(); err != nil {
		return DeliveryHash{}, err
	}
	return hash, nil
}

// String returns the lowercase hex form of the hash.
func (h DeliveryHash) String() string {
	return hex.EncodeToString(h.sum[:])
}

// Bytes returns a copy of the raw digest for persistence mapping.
func (h DeliveryHash) Bytes() []byte {
	out := make([]byte, deliveryHashSize)
	copy(out, h.sum[:])
	return out
}

// IsEqual reports whether two hashes identify the same delivery.
func (h DeliveryHash) IsEqual(other DeliveryHash) bool {
	return h.sum == other.sum
}

// Validate returns ErrDeliveryHashIsNotConstructed for a zero-value hash.
func (h DeliveryHash) Validate() error {
	if h.sum == [deliveryHashSize]byte{} {
		return ErrDeliveryHashIsNotConstructed
	}
	return nil
}
