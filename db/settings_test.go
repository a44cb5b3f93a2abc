package db

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSiteSettingsBootstrap(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// the first read on an empty database returns the defaults
	settings, err := testDB.SiteSettings()
	c.Assert(err, qt.IsNil)
	defaults := DefaultSiteSettings()
	c.Assert(settings.HeroTitle, qt.Equals, defaults.HeroTitle)
	c.Assert(settings.MissionTitle, qt.Equals, defaults.MissionTitle)
	c.Assert(settings.Version, qt.Equals, 1)
	// a second read returns the very same document, not a fresh bootstrap
	again, err := testDB.SiteSettings()
	c.Assert(err, qt.IsNil)
	c.Assert(again, qt.DeepEquals, settings)
}

func TestSetSiteSettings(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// a save on an empty database bootstraps the singleton first
	err := testDB.SetSiteSettings(&SiteSettings{HeroTitle: "New hero title"}, 0)
	c.Assert(err, qt.IsNil)
	settings, err := testDB.SiteSettings()
	c.Assert(err, qt.IsNil)
	c.Assert(settings.HeroTitle, qt.Equals, "New hero title")
	// fields left empty keep their stored value, the version is bumped
	defaults := DefaultSiteSettings()
	c.Assert(settings.MissionTitle, qt.Equals, defaults.MissionTitle)
	c.Assert(settings.StatsMembers, qt.Equals, defaults.StatsMembers)
	c.Assert(settings.Version, qt.Equals, 2)
	// a second patch touches only its own fields
	err = testDB.SetSiteSettings(&SiteSettings{ContactEmail: "info@test.com"}, settings.Version)
	c.Assert(err, qt.IsNil)
	settings, err = testDB.SiteSettings()
	c.Assert(err, qt.IsNil)
	c.Assert(settings.ContactEmail, qt.Equals, "info@test.com")
	c.Assert(settings.HeroTitle, qt.Equals, "New hero title")
	c.Assert(settings.Version, qt.Equals, 3)
}

func TestSetSiteSettingsVersionConflict(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	settings, err := testDB.SiteSettings()
	c.Assert(err, qt.IsNil)
	// a save against a stale version is rejected and writes nothing
	err = testDB.SetSiteSettings(&SiteSettings{HeroTitle: "Stale edit"}, settings.Version+1)
	c.Assert(err, qt.Equals, ErrConflict)
	current, err := testDB.SiteSettings()
	c.Assert(err, qt.IsNil)
	c.Assert(current, qt.DeepEquals, settings)
	// the matching version succeeds
	err = testDB.SetSiteSettings(&SiteSettings{HeroTitle: "Fresh edit"}, settings.Version)
	c.Assert(err, qt.IsNil)
	current, err = testDB.SiteSettings()
	c.Assert(err, qt.IsNil)
	c.Assert(current.HeroTitle, qt.Equals, "Fresh edit")
	c.Assert(current.Version, qt.Equals, settings.Version+1)
}
