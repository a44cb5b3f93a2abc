package db

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEnsureDefaultContent(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// a fresh database gets the default news item and committee roster
	c.Assert(testDB.EnsureDefaultContent(), qt.IsNil)
	news, err := testDB.NewsItems()
	c.Assert(err, qt.IsNil)
	c.Assert(news, qt.HasLen, 1)
	committee, err := testDB.CommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(committee, qt.HasLen, len(defaultCommittee))
	c.Assert(committee[0].Designation, qt.Equals, "President")
	// a second run is a no-op
	c.Assert(testDB.EnsureDefaultContent(), qt.IsNil)
	news, err = testDB.NewsItems()
	c.Assert(err, qt.IsNil)
	c.Assert(news, qt.HasLen, 1)
	committee, err = testDB.CommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(committee, qt.HasLen, len(defaultCommittee))
}

func TestEnsureDefaultContentKeepsRealData(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// collections that already hold content are never touched
	_, err := testDB.SetNewsItem(&NewsItem{Title: "Annual general meeting"})
	c.Assert(err, qt.IsNil)
	_, err = testDB.SetCommitteeMember(&CommitteeMember{Name: "Real President", Designation: "President", OrderIndex: 1})
	c.Assert(err, qt.IsNil)
	c.Assert(testDB.EnsureDefaultContent(), qt.IsNil)
	news, err := testDB.NewsItems()
	c.Assert(err, qt.IsNil)
	c.Assert(news, qt.HasLen, 1)
	c.Assert(news[0].Title, qt.Equals, "Annual general meeting")
	committee, err := testDB.CommitteeMembers()
	c.Assert(err, qt.IsNil)
	c.Assert(committee, qt.HasLen, 1)
	c.Assert(committee[0].Name, qt.Equals, "Real President")
}
