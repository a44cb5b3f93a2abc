package db

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestSetDonation(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// record a donation
	donationID, err := testDB.SetDonation(&Donation{
		SessionID: "cs_test_123",
		Name:      testMemberName,
		Email:     testMemberEmail,
		Amount:    150000,
		Currency:  "bdt",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(donationID.IsZero(), qt.IsFalse)
	// a retry for the same checkout session is rejected
	_, err = testDB.SetDonation(&Donation{
		SessionID: "cs_test_123",
		Name:      testMemberName,
		Amount:    150000,
		Currency:  "bdt",
	})
	c.Assert(err, qt.Equals, ErrAlreadyExists)
	donations, err := testDB.Donations()
	c.Assert(err, qt.IsNil)
	c.Assert(donations, qt.HasLen, 1)
	c.Assert(donations[0].Amount, qt.Equals, int64(150000))
}

func TestDonations(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// donations are listed newest first
	base := time.Now().Add(-2 * time.Hour)
	for i, session := range []string{"cs_old", "cs_mid", "cs_new"} {
		_, err := testDB.SetDonation(&Donation{
			SessionID: session,
			Amount:    int64(100 * (i + 1)),
			Currency:  "bdt",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		c.Assert(err, qt.IsNil)
	}
	donations, err := testDB.Donations()
	c.Assert(err, qt.IsNil)
	c.Assert(donations, qt.HasLen, 3)
	c.Assert(donations[0].SessionID, qt.Equals, "cs_new")
	c.Assert(donations[2].SessionID, qt.Equals, "cs_old")
}
