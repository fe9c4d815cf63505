package utils

import "github.com/matthewhartstonge/argon2"

// One shared config so the seeded admin hash and login verification
// always agree on parameters.
var argonCfg = argon2.DefaultConfig()

// HashPassword returns an encoded argon2id hash ready for storage.
func HashPassword(plain string) (string, error) {
	encoded, err := argonCfg.HashEncoded([]byte(plain))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks a password attempt against a stored encoded
// hash. A mismatch is (false, nil); an error means the stored hash is
// unreadable.
func VerifyPassword(encoded, plain string) (bool, error) {
	return argon2.VerifyEncoded([]byte(plain), []byte(encoded))
}
