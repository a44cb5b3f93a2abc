package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberRole is the role of a member within the society.
type MemberRole string

// RegistrationStatus is the workflow state of an iftar event registration.
type RegistrationStatus string

// PaymentMethod is the payment channel declared on an event registration.
type PaymentMethod string

// Member is a registered member of the society. The password field only ever
// holds a bcrypt hash.
type Member struct {
	ID        uint64     `json:"id" bson:"_id"`
	Name      string     `json:"name" bson:"name"`
	Email     string     `json:"email" bson:"email"`
	Password  string     `json:"-" bson:"password"`
	Phone     string     `json:"phone" bson:"phone"`
	Address   string     `json:"address" bson:"address"`
	Role      MemberRole `json:"role" bson:"role"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}

// NewsItem is a news entry published on the site, listed newest first.
type NewsItem struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title    string             `json:"title" bson:"title"`
	Content  string             `json:"content" bson:"content"`
	ImageURL string             `json:"imageUrl" bson:"imageUrl"`
	Date     time.Time          `json:"date" bson:"date"`
}

// CommitteeMember is a member of the current managing committee, listed by
// ascending order index. MigratedTo is set while the committee is being moved
// to the ad-hoc committee, so an interrupted migration can be resumed without
// duplicating records.
type CommitteeMember struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Designation string             `json:"designation" bson:"designation"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	OrderIndex  int                `json:"orderIndex" bson:"orderIndex"`
	MigratedTo  primitive.ObjectID `json:"-" bson:"migratedTo,omitempty"`
}

// AdhocCommitteeMember is a member of the ad-hoc committee. It has the same
// shape as CommitteeMember plus a phone number.
type AdhocCommitteeMember struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Designation string             `json:"designation" bson:"designation"`
	Phone       string             `json:"phone" bson:"phone"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	OrderIndex  int                `json:"orderIndex" bson:"orderIndex"`
}

// EventRegistration is a public sign-up for the iftar event. Status starts as
// pending and is only changed by an admin.
type EventRegistration struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Phone         string             `json:"phone" bson:"phone"`
	Profession    string             `json:"profession" bson:"profession"`
	Age           int                `json:"age" bson:"age"`
	PaymentMethod PaymentMethod      `json:"paymentMethod" bson:"paymentMethod"`
	Amount        int64              `json:"amount" bson:"amount"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Status        RegistrationStatus `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// SiteSettings is the singleton document with the site copy and contact
// details. Version is bumped on every save.
type SiteSettings struct {
	ID             string `json:"-" bson:"_id"`
	HeroTitle      string `json:"heroTitle" bson:"heroTitle"`
	HeroSubtitle   string `json:"heroSubtitle" bson:"heroSubtitle"`
	HeroImage      string `json:"heroImage" bson:"heroImage"`
	LogoImage      string `json:"logoImage" bson:"logoImage"`
	MissionTitle   string `json:"missionTitle" bson:"missionTitle"`
	MissionDesc    string `json:"missionDesc" bson:"missionDesc"`
	ContactEmail   string `json:"contactEmail" bson:"contactEmail"`
	ContactPhone   string `json:"contactPhone" bson:"contactPhone"`
	ContactAddress string `json:"contactAddress" bson:"contactAddress"`
	FacebookURL    string `json:"facebookUrl" bson:"facebookUrl"`
	YoutubeURL     string `json:"youtubeUrl" bson:"youtubeUrl"`
	StatsMembers   string `json:"statsMembers" bson:"statsMembers"`
	StatsEvents    string `json:"statsEvents" bson:"statsEvents"`
	StatsProjects  string `json:"statsProjects" bson:"statsProjects"`
	StatsYears     string `json:"statsYears" bson:"statsYears"`
	Version        int    `json:"version" bson:"version"`
}

// Donation is a completed donation recorded from a Stripe checkout session.
type Donation struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SessionID string             `json:"sessionId" bson:"sessionId"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Amount    int64              `json:"amount" bson:"amount"`
	Currency  string             `json:"currency" bson:"currency"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Object is an uploaded binary (an image) served back by the storage handler.
type Object struct {
	ID          string    `json:"id" bson:"_id"`
	Data        []byte    `json:"data" bson:"data"`
	ContentType string    `json:"contentType" bson:"contentType"`
	UploadedBy  string    `json:"uploadedBy" bson:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
