// Package hashes is a registry of the streaming hashers in this module,
// addressed by name or by a bit in a Type mask so callers can pick and
// run several algorithms over one stream.
package hashes

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"math/bits"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/opd-ai/go-digest/blake2"
	"github.com/opd-ai/go-digest/sha2"
	"github.com/opd-ai/go-digest/sha3"
)

// Type identifies one registered algorithm. Each Type is a distinct bit so
// that Types combine into a Set.
type Type int

type definition struct {
	name    string
	alias   string
	width   int
	newFunc func() hash.Hash
	t       Type
}

var (
	byType  = map[Type]*definition{}
	byName  = map[string]*definition{}
	byAlias = map[string]*definition{}
	all     []Type
)

// ErrUnsupported is returned when a Type outside the registry is requested.
var ErrUnsupported = errors.New("hashes: hash type not supported")

// RegisterHash adds an algorithm and returns its Type. width is the length of
// the hex-encoded digest. name is matched case-insensitively, alias
// exactly.
func RegisterHash(name, alias string, width int, newFunc func() hash.Hash) Type {
	if len(all) >= bits.UintSize-1 {
		panic("hashes: too many registered hash types")
	}
	if _, dup := byName[strings.ToLower(name)]; dup {
		panic(fmt.Sprintf("hashes: %q registered twice", name))
	}
	t := Type(1 << len(all))
	all = append(all, t)

	d := &definition{name: name, alias: alias, width: width, newFunc: newFunc, t: t}
	byType[t] = d
	byName[strings.ToLower(name)] = d
	byAlias[alias] = d
	return t
}

var (
	// None is the empty selection.
	None Type

	// SHA224 indicates SHA-224 support
	SHA224 Type

	// SHA256 indicates SHA-256 support
	SHA256 Type

	// SHA3_224 indicates SHA3-224 support
	SHA3_224 Type

	// SHA3_256 indicates SHA3-256 support
	SHA3_256 Type

	// SHA3_384 indicates SHA3-384 support
	SHA3_384 Type

	// SHA3_512 indicates SHA3-512 support
	SHA3_512 Type

	// Keccak256 indicates legacy Keccak-256 support
	Keccak256 Type

	// Shake128 indicates SHAKE128 support with a 32-byte digest
	Shake128 Type

	// Shake256 indicates SHAKE256 support with a 64-byte digest
	Shake256 Type

	// Blake2b256 indicates BLAKE2b-256 support
	Blake2b256 Type

	// Blake2b512 indicates BLAKE2b-512 support
	Blake2b512 Type
)

func init() {
	SHA224 = RegisterHash("sha224", "SHA-224", 2*sha2.Size224, func() hash.Hash { return sha2.New224() })
	SHA256 = RegisterHash("sha256", "SHA-256", 2*sha2.Size, func() hash.Hash { return sha2.New256() })
	SHA3_224 = RegisterHash("sha3-224", "SHA3-224", 56, func() hash.Hash { return sha3.New224() })
	SHA3_256 = RegisterHash("sha3-256", "SHA3-256", 64, func() hash.Hash { return sha3.New256() })
	SHA3_384 = RegisterHash("sha3-384", "SHA3-384", 96, func() hash.Hash { return sha3.New384() })
	SHA3_512 = RegisterHash("sha3-512", "SHA3-512", 128, func() hash.Hash { return sha3.New512() })
	Keccak256 = RegisterHash("keccak256", "Keccak-256", 64, func() hash.Hash { return sha3.NewLegacyKeccak256() })
	Shake128 = RegisterHash("shake128", "SHAKE128", 64, func() hash.Hash {
		return &xofHash[*sha3.Shake128]{x: sha3.NewShake128(), size: 32}
	})
	Shake256 = RegisterHash("shake256", "SHAKE256", 128, func() hash.Hash {
		return &xofHash[*sha3.Shake256]{x: sha3.NewShake256(), size: 64}
	})
	Blake2b256 = RegisterHash("blake2b-256", "BLAKE2b-256", 2*blake2.Size256, func() hash.Hash { return blake2.New256() })
	Blake2b512 = RegisterHash("blake2b-512", "BLAKE2b-512", 2*blake2.Size, func() hash.Hash { return blake2.New512() })
}

// xofHash presents the first size bytes of an extendable output as a
// hash.Hash.
type xofHash[X interface {
	io.Writer
	Reset()
	BlockSize() int
	Sum(b []byte, n int) []byte
}] struct {
	x    X
	size int
}

func (h *xofHash[X]) Write(p []byte) (int, error) { return h.x.Write(p) }
func (h *xofHash[X]) Sum(b []byte) []byte         { return h.x.Sum(b, h.size) }
func (h *xofHash[X]) Reset()                      { h.x.Reset() }
func (h *xofHash[X]) Size() int                   { return h.size }
func (h *xofHash[X]) BlockSize() int              { return h.x.BlockSize() }

// Supported returns every registered Type.
func Supported() Set {
	return NewSet(all...)
}

// New returns a fresh hasher for t.
func New(t Type) (hash.Hash, error) {
	d := byType[t]
	if d == nil {
		return nil, ErrUnsupported
	}
	return d.newFunc(), nil
}

// Width returns the hex width of t's digest, or 0 for an unknown Type.
func Width(t Type) int {
	if d := byType[t]; d != nil {
		return d.width
	}
	return 0
}

// Stream hashes r with every registered algorithm.
func Stream(r io.Reader) (map[Type]string, error) {
	return StreamTypes(r, Supported())
}

// StreamTypes hashes r with each algorithm in set and returns hex digests.
func StreamTypes(r io.Reader, set Set) (map[Type]string, error) {
	m, err := NewMultiHasherTypes(set)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(m, r); err != nil {
		return nil, errors.Wrap(err, "hashes: read stream")
	}
	return m.Sums(), nil
}

// String returns the registered name of t. It panics on an unknown Type.
func (t Type) String() string {
	if t == None {
		return "none"
	}
	if d := byType[t]; d != nil {
		return d.name
	}
	panic(fmt.Sprintf("hashes: unknown hash type 0x%x", int(t)))
}

// Set parses a name or alias, so that *Type is a pflag.Value.
func (t *Type) Set(s string) error {
	if strings.EqualFold(s, "none") {
		*t = None
		return nil
	}
	if d := byName[strings.ToLower(s)]; d != nil {
		*t = d.t
		return nil
	}
	if d := byAlias[s]; d != nil {
		*t = d.t
		return nil
	}
	return errors.Errorf("hashes: unknown hash type %q", s)
}

// Type implements pflag.Value.
func (t Type) Type() string {
	return "string"
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, t := range all {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// MultiHasher feeds every write to a set of hashers.
type MultiHasher struct {
	w    io.Writer
	size int64
	h    map[Type]hash.Hash
}

// NewMultiHasher returns a MultiHasher running every registered algorithm.
func NewMultiHasher() *MultiHasher {
	m, err := NewMultiHasherTypes(Supported())
	if err != nil {
		panic("hashes: could not build multihasher for the supported set")
	}
	return m
}

// NewMultiHasherTypes returns a MultiHasher running the algorithms in set.
func NewMultiHasherTypes(set Set) (*MultiHasher, error) {
	if !set.SubsetOf(Supported()) {
		return nil, errors.Errorf("hashes: set %08x contains unknown hash types", int(set))
	}
	m := &MultiHasher{h: map[Type]hash.Hash{}}
	writers := make([]io.Writer, 0, set.Count())
	for _, t := range set.Array() {
		h := byType[t].newFunc()
		m.h[t] = h
		writers = append(writers, h)
	}
	m.w = io.MultiWriter(writers...)
	return m, nil
}

func (m *MultiHasher) Write(p []byte) (int, error) {
	n, err := m.w.Write(p)
	m.size += int64(n)
	return n, err
}

// Sums returns every digest so far, hex-encoded. Writing may continue.
func (m *MultiHasher) Sums() map[Type]string {
	out := make(map[Type]string, len(m.h))
	for t, h := range m.h {
		out[t] = hex.EncodeToString(h.Sum(nil))
	}
	return out
}

// Sum returns the digest so far for t.
func (m *MultiHasher) Sum(t Type) ([]byte, error) {
	h, ok := m.h[t]
	if !ok {
		return nil, ErrUnsupported
	}
	return h.Sum(nil), nil
}

// Size returns the number of bytes written.
func (m *MultiHasher) Size() int64 {
	return m.size
}

// Set is a bit set of Types.
type Set int

// NewSet returns a set holding t.
func NewSet(t ...Type) Set {
	var s Set
	return s.Add(t...)
}

// Add adds t to the set and returns the result.
func (s *Set) Add(t ...Type) Set {
	for _, v := range t {
		*s |= Set(v)
	}
	return *s
}

// Contains reports whether t is in the set.
func (s Set) Contains(t Type) bool {
	return int(s)&int(t) != 0
}

// Overlap returns the Types present in both sets.
func (s Set) Overlap(o Set) Set {
	return s & o
}

// SubsetOf reports whether every Type in s is also in o.
func (s Set) SubsetOf(o Set) bool {
	return s|o == o
}

// GetOne returns the lowest Type in the set, or None.
func (s Set) GetOne() Type {
	if s == 0 {
		return None
	}
	return Type(1 << bits.TrailingZeros(uint(s)))
}

// Array returns the Types in the set, lowest first.
func (s Set) Array() []Type {
	var out []Type
	for v := uint(s); v != 0; v &= v - 1 {
		out = append(out, Type(1<<bits.TrailingZeros(v)))
	}
	return out
}

// Count returns the number of Types in the set.
func (s Set) Count() int {
	return bits.OnesCount(uint(s))
}

// String lists the set's names. It panics on an unknown Type.
func (s Set) String() string {
	names := make([]string, 0, s.Count())
	for _, t := range s.Array() {
		names = append(names, t.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
