// Package securemem holds secrets in process memory a little more safely
// than a bare byte slice: WipeMemory scrubs a buffer on release, and
// SecureString keeps a passphrase AES-GCM-encrypted under a process-wide
// key while it is held for longer than one call into the hasher.
package securemem

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"
	"sync"
)

var (
	memoryKey     []byte
	memoryKeyOnce sync.Once
)

func getMemoryKey() []byte {
	memoryKeyOnce.Do(func() {
		memoryKey = make([]byte, 32)
		if _, err := rand.Read(memoryKey); err != nil {
			panic("securemem: failed to generate memory encryption key: " + err.Error())
		}
	})
	return memoryKey
}

// SecureString stores a string AES-GCM-encrypted under a process-wide key
// rather than in plaintext, so a heap scan between Get calls does not find
// the password. It is not a defense against a compromised process reading
// its own memory — only against incidental plaintext exposure.
type SecureString struct {
	ciphertext []byte
	nonce      []byte
	mu         sync.RWMutex
}

// NewSecureString encrypts plaintext and returns a SecureString holding it.
func NewSecureString(plaintext string) (*SecureString, error) {
	s := &SecureString{}
	if plaintext == "" {
		return s, nil
	}
	if err := s.Set(plaintext); err != nil {
		return nil, err
	}
	return s, nil
}

func newGCM() (cipher.AEAD, error) {
	block, err := aes.NewCipher(getMemoryKey())
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Get decrypts and returns the held plaintext.
func (s *SecureString) Get() (string, error) {
	if s == nil || len(s.ciphertext) == 0 {
		return "", nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	gcm, err := newGCM()
	if err != nil {
		return "", err
	}
	plaintext, err := gcm.Open(nil, s.nonce, s.ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Set replaces the held value, encrypting plaintext under a fresh nonce.
func (s *SecureString) Set(plaintext string) error {
	if plaintext == "" {
		s.mu.Lock()
		s.ciphertext = nil
		s.nonce = nil
		s.mu.Unlock()
		return nil
	}

	gcm, err := newGCM()
	if err != nil {
		return err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return err
	}
	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	s.mu.Lock()
	s.ciphertext = ciphertext
	s.nonce = nonce
	s.mu.Unlock()
	return nil
}

// Wipe zeros the encrypted contents and drops the reference to them.
func (s *SecureString) Wipe() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	WipeMemory(s.ciphertext)
	WipeMemory(s.nonce)
	s.ciphertext = nil
	s.nonce = nil
}

// IsEmpty reports whether the SecureString currently holds nothing.
func (s *SecureString) IsEmpty() bool {
	if s == nil {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ciphertext) == 0
}

// WipeMemory overwrites data with random bytes, then zeros, in place.
// Used by pkg/argon2 to scrub the H0 buffers, the final block, and the
// computed tag; the memory matrix and the address blocks are cleared there
// by plain zeroing instead.
func WipeMemory(data []byte) {
	if len(data) == 0 {
		return
	}
	_, _ = rand.Read(data)
	for i := range data {
		data[i] = 0
	}
}
