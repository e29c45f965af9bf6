package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes an account credential with bcrypt at the given
// cost. Costs below bcrypt's minimum (zero included) fall back to the
// library default; tests pass bcrypt.MinCost explicitly to stay fast.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a login attempt against the stored hash. Both
// stored accounts and the synthesized bootstrap admin go through this.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
