package bcrypt

import (
	"errors"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinCost     = bcrypt.MinCost
	MaxCost     = bcrypt.MaxCost
	DefaultCost = bcrypt.DefaultCost
)

// ErrMismatch is returned by ComparePassword when the password does not
// match the hash.
var ErrMismatch = errors.New("password does not match")

type IBcrypt interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashPassword string, password string) error
}

type bcryptService struct {
	cost int
}

// New reads BCRYPT_COST, clamped to [MinCost, MaxCost]. Unset or invalid
// values use DefaultCost.
func New() IBcrypt {
	cost, err := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if err != nil {
		cost = DefaultCost
	}
	return NewWithCost(cost)
}

func NewWithCost(cost int) IBcrypt {
	switch {
	case cost < MinCost:
		cost = MinCost
	case cost > MaxCost:
		cost = MaxCost
	}
	return &bcryptService{
		cost: cost,
	}
}

func (b *bcryptService) HashPassword(password string) (string, error) {
	pass := []byte(password)
	result, err := bcrypt.GenerateFromPassword(pass, b.cost)
	if err != nil {
		return "", err
	}
	return string(result), nil
}

func (b *bcryptService) ComparePassword(hashPassword string, password string) error {
	pass := []byte(password)
	hashPass := []byte(hashPassword)
	err := bcrypt.CompareHashAndPassword(hashPass, pass)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
