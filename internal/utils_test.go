package internal

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestValidEmail(t *testing.T) {
	c := qt.New(t)
	c.Assert(ValidEmail("member@society.org"), qt.IsTrue)
	c.Assert(ValidEmail("member+tag@society.org.bd"), qt.IsTrue)
	c.Assert(ValidEmail("not-an-email"), qt.IsFalse)
	c.Assert(ValidEmail("missing@tld"), qt.IsFalse)
	c.Assert(ValidEmail(""), qt.IsFalse)
}

func TestRandomHex(t *testing.T) {
	c := qt.New(t)
	a := RandomHex(8)
	b := RandomHex(8)
	c.Assert(a, qt.HasLen, 16)
	c.Assert(a, qt.Not(qt.Equals), b)
}

func TestHashPassword(t *testing.T) {
	c := qt.New(t)
	hash, err := HashPassword("secret-password")
	c.Assert(err, qt.IsNil)
	c.Assert(hash, qt.Not(qt.Equals), "secret-password")
	c.Assert(CheckPassword(hash, "secret-password"), qt.IsTrue)
	c.Assert(CheckPassword(hash, "wrong-password"), qt.IsFalse)
	// two hashes of the same password must not match (random salt)
	hash2, err := HashPassword("secret-password")
	c.Assert(err, qt.IsNil)
	c.Assert(hash2, qt.Not(qt.Equals), hash)
}
