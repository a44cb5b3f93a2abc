package db

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateRegistration(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// an unknown payment method is rejected before touching the database
	_, err := testDB.CreateRegistration(&EventRegistration{
		Name:          testMemberName,
		Phone:         testMemberPhone,
		PaymentMethod: "paypal",
	})
	c.Assert(err, qt.Equals, ErrInvalidData)
	// a valid registration is stored as pending, whatever the caller set
	registrationID, err := testDB.CreateRegistration(&EventRegistration{
		Name:          testMemberName,
		Phone:         testMemberPhone,
		Profession:    "Teacher",
		Age:           34,
		PaymentMethod: PaymentBkash,
		Amount:        500,
		TransactionID: "TX123456",
		Status:        RegistrationAccepted,
	})
	c.Assert(err, qt.IsNil)
	registration, err := testDB.Registration(registrationID)
	c.Assert(err, qt.IsNil)
	c.Assert(registration.Status, qt.Equals, RegistrationPending)
	c.Assert(registration.CreatedAt.IsZero(), qt.IsFalse)
	c.Assert(registration.PaymentMethod, qt.Equals, PaymentBkash)
	c.Assert(registration.Amount, qt.Equals, int64(500))
	// the payment method may be omitted entirely
	_, err = testDB.CreateRegistration(&EventRegistration{
		Name:  "Walk-in Guest",
		Phone: "+8801999999999",
	})
	c.Assert(err, qt.IsNil)
	registrations, err := testDB.Registrations()
	c.Assert(err, qt.IsNil)
	c.Assert(registrations, qt.HasLen, 2)
}

func TestSetRegistrationStatus(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// invalid status
	c.Assert(testDB.SetRegistrationStatus(primitive.NewObjectID(), "approved"), qt.Equals, ErrInvalidData)
	// unknown registration
	c.Assert(testDB.SetRegistrationStatus(primitive.NewObjectID(), RegistrationAccepted), qt.Equals, ErrNotFound)
	// create a registration and walk it through the workflow
	registrationID, err := testDB.CreateRegistration(&EventRegistration{
		Name:          testMemberName,
		Phone:         testMemberPhone,
		PaymentMethod: PaymentNagad,
		Amount:        300,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(testDB.SetRegistrationStatus(registrationID, RegistrationAccepted), qt.IsNil)
	registration, err := testDB.Registration(registrationID)
	c.Assert(err, qt.IsNil)
	c.Assert(registration.Status, qt.Equals, RegistrationAccepted)
	// a later decision overwrites the previous one
	c.Assert(testDB.SetRegistrationStatus(registrationID, RegistrationRejected), qt.IsNil)
	registration, err = testDB.Registration(registrationID)
	c.Assert(err, qt.IsNil)
	c.Assert(registration.Status, qt.Equals, RegistrationRejected)
	// the rest of the document is untouched
	c.Assert(registration.Name, qt.Equals, testMemberName)
	c.Assert(registration.PaymentMethod, qt.Equals, PaymentNagad)
	c.Assert(registration.Amount, qt.Equals, int64(300))
}

func TestDelRegistration(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// unknown registration
	c.Assert(testDB.DelRegistration(primitive.NewObjectID()), qt.Equals, ErrNotFound)
	// create and delete a registration
	registrationID, err := testDB.CreateRegistration(&EventRegistration{
		Name:  testMemberName,
		Phone: testMemberPhone,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(testDB.DelRegistration(registrationID), qt.IsNil)
	_, err = testDB.Registration(registrationID)
	c.Assert(err, qt.Equals, ErrNotFound)
}
