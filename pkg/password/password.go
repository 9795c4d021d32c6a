package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost balances hashing latency against brute-force resistance for
// interactive logins.
const DefaultCost = 12

// Hash derives a one-way salted digest from a plaintext password.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. The underlying bcrypt
// comparison is constant-time.
func Verify(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
