package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", hasher.cost)
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("1234567ty")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "1234567ty" {
		t.Fatal("hash must not equal plaintext")
	}

	if err := hasher.Compare(hash, "1234567ty"); err != nil {
		t.Fatalf("compare with correct password: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("compare with wrong password must fail")
	}
}
