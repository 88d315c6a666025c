package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher с cost 0 берёт bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(credential string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt generate: %w", err)
	}
	return string(hash), nil
}

// Compare сравнивает за постоянное время, nil при совпадении.
func (h *BcryptHasher) Compare(hash, credential string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential))
}
