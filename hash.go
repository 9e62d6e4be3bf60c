package iostreams

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// hashAlgorithms maps upper-cased algorithm names to hash constructors.
var hashAlgorithms = map[string]func() hash.Hash{
	"MD5":         md5.New,
	"SHA":         sha1.New,
	"SHA1":        sha1.New,
	"SHA-1":       sha1.New,
	"SHA256":      sha256.New,
	"SHA-256":     sha256.New,
	"SHA384":      sha512.New384,
	"SHA-384":     sha512.New384,
	"SHA512":      sha512.New,
	"SHA-512":     sha512.New,
	"SHA3-256":    sha3.New256,
	"SHA3-512":    sha3.New512,
	"BLAKE2B-256": mustHash(blake2b.New256),
	"BLAKE2B-512": mustHash(blake2b.New512),
	"BLAKE3":      func() hash.Hash { return blake3.New() },
	"RIPEMD160":   ripemd160.New,
	"RIPEMD-160":  ripemd160.New,
}

// mustHash adapts a keyed hash constructor, called without key.
func mustHash(newKeyed func([]byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newKeyed(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

// HashAlgorithms returns the sorted list of names CalculateHash accepts.
// Names are matched case-insensitively.
func HashAlgorithms() []string {
	names := make([]string, 0, len(hashAlgorithms))
	for name := range hashAlgorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CalculateHash reads r until EOF and returns its digest, computed with the
// named algorithm ("MD5", "SHA1", "SHA256", ...), as an uppercase hex string.
//
// r is consumed from its current position. If algorithm is unknown,
// CalculateHash returns an error matching ErrInvalidArgument without reading
// from r.
func CalculateHash(r io.Reader, algorithm string) (string, error) {
	newHash, ok := hashAlgorithms[strings.ToUpper(strings.TrimSpace(algorithm))]
	if !ok {
		return "", fmt.Errorf("%w: unsupported hash function %q", ErrInvalidArgument, algorithm)
	}

	h := newHash()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", fmt.Errorf("iostreams: can't hash stream: %w", err)
	}

	log.WithFields(log.Fields{"f": "CalculateHash", "algorithm": algorithm}).Debugf("hashed %s", humanize.Bytes(uint64(n)))
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil))), nil
}
