package db

import (
	"context"
	"time"

	"go.vocdoni.io/dvote/log"
)

// defaultCommittee is the placeholder roster shown until the admin edits it.
var defaultCommittee = []CommitteeMember{
	{Name: "President", Designation: "President", OrderIndex: 1},
	{Name: "General Secretary", Designation: "General Secretary", OrderIndex: 2},
	{Name: "Treasurer", Designation: "Treasurer", OrderIndex: 3},
}

// EnsureDefaultContent seeds the public collections with default rows on
// first run. Collections that already hold content are left untouched, so a
// redeploy never clobbers real data.
func (ms *MongoStorage) EnsureDefaultContent() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	count, err := ms.news.CountDocuments(ctx, emptyFilter)
	if err != nil {
		return err
	}
	if count == 0 {
		welcome := &NewsItem{
			Title:   "Welcome to the Bishnupur Union Society",
			Content: "The society website is now online. News and announcements will be published here.",
			Date:    time.Now(),
		}
		if _, err := ms.SetNewsItem(welcome); err != nil {
			return err
		}
		log.Infow("seeded default news item")
	}

	count, err = ms.committee.CountDocuments(ctx, emptyFilter)
	if err != nil {
		return err
	}
	if count == 0 {
		for i := range defaultCommittee {
			member := defaultCommittee[i]
			if _, err := ms.SetCommitteeMember(&member); err != nil {
				return err
			}
		}
		log.Infow("seeded default committee roster", "count", len(defaultCommittee))
	}
	return nil
}
