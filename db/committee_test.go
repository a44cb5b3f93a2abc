package db

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCommitteeMembers(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// empty committee returns an empty slice
	members, err := testDB.CommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(members, qt.HasLen, 0)
	// insert out of order
	for _, m := range []CommitteeMember{
		{Name: "Treasurer", Designation: "Treasurer", OrderIndex: 3},
		{Name: "President", Designation: "President", OrderIndex: 1},
		{Name: "Secretary", Designation: "General Secretary", OrderIndex: 2},
	} {
		member := m
		_, err := testDB.SetCommitteeMember(&member)
		c.Assert(err, qt.IsNil)
	}
	// the list is ordered by ascending order index
	members, err = testDB.CommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(members, qt.HasLen, 3)
	c.Assert(members[0].Name, qt.Equals, "President")
	c.Assert(members[1].Name, qt.Equals, "Secretary")
	c.Assert(members[2].Name, qt.Equals, "Treasurer")
}

func TestSetCommitteeMember(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// create a committee member
	memberID, err := testDB.SetCommitteeMember(&CommitteeMember{
		Name:        "President",
		Designation: "President",
		ImageURL:    "https://img.test/p.jpg",
		OrderIndex:  1,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(memberID.IsZero(), qt.IsFalse)
	// updating is a full overwrite
	_, err = testDB.SetCommitteeMember(&CommitteeMember{
		ID:          memberID,
		Name:        "New President",
		Designation: "President",
		OrderIndex:  1,
	})
	c.Assert(err, qt.IsNil)
	member, err := testDB.CommitteeMember(memberID)
	c.Assert(err, qt.IsNil)
	c.Assert(member.Name, qt.Equals, "New President")
	c.Assert(member.ImageURL, qt.Equals, "")
}

func TestDelCommitteeMember(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// unknown member
	c.Assert(testDB.DelCommitteeMember(primitive.NewObjectID()), qt.Equals, ErrNotFound)
	// create and delete a member
	memberID, err := testDB.SetCommitteeMember(&CommitteeMember{Name: "President", OrderIndex: 1})
	c.Assert(err, qt.IsNil)
	c.Assert(testDB.DelCommitteeMember(memberID), qt.IsNil)
	_, err = testDB.CommitteeMember(memberID)
	c.Assert(err, qt.Equals, ErrNotFound)
}

func TestAdhocCommitteeMembers(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// create, update and list ad-hoc committee members
	memberID, err := testDB.SetAdhocCommitteeMember(&AdhocCommitteeMember{
		Name:        "Convener",
		Designation: "Convener",
		Phone:       testMemberPhone,
		OrderIndex:  2,
	})
	c.Assert(err, qt.IsNil)
	_, err = testDB.SetAdhocCommitteeMember(&AdhocCommitteeMember{
		Name:        "Chief Advisor",
		Designation: "Advisor",
		OrderIndex:  1,
	})
	c.Assert(err, qt.IsNil)
	members, err := testDB.AdhocCommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(members, qt.HasLen, 2)
	c.Assert(members[0].Name, qt.Equals, "Chief Advisor")
	c.Assert(members[1].Name, qt.Equals, "Convener")
	// fetch a single member
	member, err := testDB.AdhocCommitteeMember(memberID)
	c.Assert(err, qt.IsNil)
	c.Assert(member.Phone, qt.Equals, testMemberPhone)
	// delete it
	c.Assert(testDB.DelAdhocCommitteeMember(memberID), qt.IsNil)
	c.Assert(testDB.DelAdhocCommitteeMember(memberID), qt.Equals, ErrNotFound)
}

func TestMigrateCommitteeToAdhoc(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// an empty committee migrates nothing
	migrated, err := testDB.MigrateCommitteeToAdhoc()
	c.Assert(err, qt.IsNil)
	c.Assert(migrated, qt.Equals, 0)
	// seed a committee
	names := []string{"President", "Secretary", "Treasurer"}
	for i, name := range names {
		_, err := testDB.SetCommitteeMember(&CommitteeMember{
			Name:        name,
			Designation: name,
			ImageURL:    "https://img.test/" + name + ".jpg",
			OrderIndex:  i + 1,
		})
		c.Assert(err, qt.IsNil)
	}
	migrated, err = testDB.MigrateCommitteeToAdhoc()
	c.Assert(err, qt.IsNil)
	c.Assert(migrated, qt.Equals, 3)
	// the managing committee is now empty
	committee, err := testDB.CommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(committee, qt.HasLen, 0)
	// every member landed in the ad-hoc committee keeping order, image and
	// designation, with an empty phone
	adhoc, err := testDB.AdhocCommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(adhoc, qt.HasLen, 3)
	for i, member := range adhoc {
		c.Assert(member.Name, qt.Equals, names[i])
		c.Assert(member.OrderIndex, qt.Equals, i+1)
		c.Assert(member.ImageURL, qt.Equals, "https://img.test/"+names[i]+".jpg")
		c.Assert(member.Phone, qt.Equals, "")
	}
	// a second run with an empty committee is a no-op
	migrated, err = testDB.MigrateCommitteeToAdhoc()
	c.Assert(err, qt.IsNil)
	c.Assert(migrated, qt.Equals, 0)
	adhoc, err = testDB.AdhocCommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(adhoc, qt.HasLen, 3)
}

func TestMigrateCommitteeToAdhocResumable(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// simulate a run that crashed after tagging and copying one member but
	// before cleaning up the committee: the source document keeps its
	// migratedTo tag and the copy already exists in the ad-hoc committee
	memberID, err := testDB.SetCommitteeMember(&CommitteeMember{
		Name:        "President",
		Designation: "President",
		OrderIndex:  1,
	})
	c.Assert(err, qt.IsNil)
	targetID := primitive.NewObjectID()
	_, err = testDB.committee.UpdateOne(context.Background(), bson.M{"_id": memberID},
		bson.M{"$set": bson.M{"migratedTo": targetID}})
	c.Assert(err, qt.IsNil)
	_, err = testDB.SetAdhocCommitteeMember(&AdhocCommitteeMember{
		ID:          targetID,
		Name:        "President",
		Designation: "President",
		OrderIndex:  1,
	})
	c.Assert(err, qt.IsNil)
	// and one member that was never touched
	_, err = testDB.SetCommitteeMember(&CommitteeMember{
		Name:        "Secretary",
		Designation: "General Secretary",
		OrderIndex:  2,
	})
	c.Assert(err, qt.IsNil)
	// re-running the migration finishes the job without duplicating the
	// already-copied member
	migrated, err := testDB.MigrateCommitteeToAdhoc()
	c.Assert(err, qt.IsNil)
	c.Assert(migrated, qt.Equals, 2)
	committee, err := testDB.CommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(committee, qt.HasLen, 0)
	adhoc, err := testDB.AdhocCommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(adhoc, qt.HasLen, 2)
	c.Assert(adhoc[0].ID, qt.Equals, targetID)
	c.Assert(adhoc[0].Name, qt.Equals, "President")
	c.Assert(adhoc[1].Name, qt.Equals, "Secretary")
}
