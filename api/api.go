// Package api provides the HTTP API of the society backend. It exposes the
// public read views and registration endpoints, the JWT-authenticated member
// endpoints and the admin-only content management endpoints.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/notifications"
	"github.com/bishnupur-union/society-backend/objectstorage"
	"github.com/bishnupur-union/society-backend/stripe"
	"github.com/bishnupur-union/society-backend/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"go.vocdoni.io/dvote/log"
)

// Config holds the dependencies and settings of the API server.
type Config struct {
	Host        string
	Port        int
	Secret      string
	DB          *db.MongoStorage
	MailService notifications.NotificationService
	// ContactAddress is the association inbox that receives the contact form
	// submissions.
	ContactAddress string
	ServerURL      string
	ObjectStorage  *objectstorage.Client
	Stripe         *stripe.Client
}

// API type represents the API HTTP server with JWT authentication capabilities.
type API struct {
	db             *db.MongoStorage
	auth           *jwtauth.JWTAuth
	host           string
	port           int
	router         *chi.Mux
	mail           notifications.NotificationService
	contactAddress string
	serverURL      string
	objectStorage  *objectstorage.Client
	stripe         *stripe.Client
	validator      *validator.Validator
}

// New creates a new API HTTP server. It does not start the server. Use Start() for that.
func New(conf *Config) *API {
	if conf == nil {
		return nil
	}
	// set the ServerURL for the object storage client so it can build the
	// public URLs of the uploaded objects
	if conf.ObjectStorage != nil {
		conf.ObjectStorage.ServerURL = conf.ServerURL
	}
	return &API{
		db:             conf.DB,
		auth:           jwtauth.New("HS256", []byte(conf.Secret), nil),
		host:           conf.Host,
		port:           conf.Port,
		mail:           conf.MailService,
		contactAddress: conf.ContactAddress,
		serverURL:      conf.ServerURL,
		objectStorage:  conf.ObjectStorage,
		stripe:         conf.Stripe,
		validator:      validator.New(),
	}
}

// Start starts the API HTTP server (non blocking).
func (a *API) Start() {
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", a.host, a.port), a.initRouter()); err != nil {
			log.Fatalf("failed to start the API server: %v", err)
		}
	}()
}

// initRouter creates the router with all the routes and middleware.
func (a *API) initRouter() http.Handler {
	// Create the router with a basic middleware stack
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}).Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Throttle(100))
	r.Use(middleware.ThrottleBacklog(5000, 40000, 60*time.Second))
	r.Use(middleware.Timeout(45 * time.Second))

	// admin routes
	r.Group(func(r chi.Router) {
		// seek, verify and validate JWT tokens
		r.Use(jwtauth.Verifier(a.auth))
		// handle valid JWT tokens
		r.Use(a.authenticator)
		// require the admin role
		r.Use(a.adminOnly)
		// list members
		log.Infow("new route", "method", "GET", "path", membersEndpoint)
		r.Get(membersEndpoint, a.membersListHandler)
		// change a member role
		log.Infow("new route", "method", "PUT", "path", memberRoleEndpoint)
		r.Put(memberRoleEndpoint, a.updateMemberRoleHandler)
		// remove a member
		log.Infow("new route", "method", "DELETE", "path", memberEndpoint)
		r.Delete(memberEndpoint, a.deleteMemberHandler)
		// create a news item
		log.Infow("new route", "method", "POST", "path", newsEndpoint)
		r.Post(newsEndpoint, a.createNewsItemHandler)
		// update a news item
		log.Infow("new route", "method", "PUT", "path", newsItemEndpoint)
		r.Put(newsItemEndpoint, a.updateNewsItemHandler)
		// delete a news item
		log.Infow("new route", "method", "DELETE", "path", newsItemEndpoint)
		r.Delete(newsItemEndpoint, a.deleteNewsItemHandler)
		// create a committee member
		log.Infow("new route", "method", "POST", "path", committeeEndpoint)
		r.Post(committeeEndpoint, a.createCommitteeMemberHandler)
		// update a committee member
		log.Infow("new route", "method", "PUT", "path", committeeMemberEndpoint)
		r.Put(committeeMemberEndpoint, a.updateCommitteeMemberHandler)
		// delete a committee member
		log.Infow("new route", "method", "DELETE", "path", committeeMemberEndpoint)
		r.Delete(committeeMemberEndpoint, a.deleteCommitteeMemberHandler)
		// migrate the committee to the ad-hoc committee
		log.Infow("new route", "method", "POST", "path", committeeMigrateEndpoint)
		r.Post(committeeMigrateEndpoint, a.migrateCommitteeHandler)
		// create an ad-hoc committee member
		log.Infow("new route", "method", "POST", "path", adhocCommitteeEndpoint)
		r.Post(adhocCommitteeEndpoint, a.createAdhocCommitteeMemberHandler)
		// update an ad-hoc committee member
		log.Infow("new route", "method", "PUT", "path", adhocCommitteeMemberEndpoint)
		r.Put(adhocCommitteeMemberEndpoint, a.updateAdhocCommitteeMemberHandler)
		// delete an ad-hoc committee member
		log.Infow("new route", "method", "DELETE", "path", adhocCommitteeMemberEndpoint)
		r.Delete(adhocCommitteeMemberEndpoint, a.deleteAdhocCommitteeMemberHandler)
		// list registrations
		log.Infow("new route", "method", "GET", "path", registrationsEndpoint)
		r.Get(registrationsEndpoint, a.registrationsListHandler)
		// change a registration status
		log.Infow("new route", "method", "PUT", "path", registrationStatusEndpoint)
		r.Put(registrationStatusEndpoint, a.updateRegistrationStatusHandler)
		// delete a registration
		log.Infow("new route", "method", "DELETE", "path", registrationEndpoint)
		r.Delete(registrationEndpoint, a.deleteRegistrationHandler)
		// save the site settings
		log.Infow("new route", "method", "PUT", "path", settingsEndpoint)
		r.Put(settingsEndpoint, a.updateSiteSettingsHandler)
		// upload an image to the object storage
		log.Infow("new route", "method", "POST", "path", objectStorageUploadEndpoint)
		r.Post(objectStorageUploadEndpoint, a.objectStorage.UploadImageWithFormHandler)
		// list donations
		log.Infow("new route", "method", "GET", "path", donationsEndpoint)
		r.Get(donationsEndpoint, a.donationsListHandler)
	})

	// authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(a.auth))
		r.Use(a.authenticator)
		// refresh the token
		log.Infow("new route", "method", "POST", "path", authRefreshTokenEndpoint)
		r.Post(authRefreshTokenEndpoint, a.refreshTokenHandler)
		// get the current member information
		log.Infow("new route", "method", "GET", "path", membersMeEndpoint)
		r.Get(membersMeEndpoint, a.memberInfoHandler)
	})

	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			if _, err := w.Write([]byte(".")); err != nil {
				log.Warnw("failed to write ping response", "error", err)
			}
		})
		// login
		log.Infow("new route", "method", "POST", "path", authLoginEndpoint)
		r.Post(authLoginEndpoint, a.authLoginHandler)
		// register a member
		log.Infow("new route", "method", "POST", "path", membersEndpoint)
		r.Post(membersEndpoint, a.registerMemberHandler)
		// list news
		log.Infow("new route", "method", "GET", "path", newsEndpoint)
		r.Get(newsEndpoint, a.newsListHandler)
		// list the committee
		log.Infow("new route", "method", "GET", "path", committeeEndpoint)
		r.Get(committeeEndpoint, a.committeeListHandler)
		// list the ad-hoc committee
		log.Infow("new route", "method", "GET", "path", adhocCommitteeEndpoint)
		r.Get(adhocCommitteeEndpoint, a.adhocCommitteeListHandler)
		// get the site settings
		log.Infow("new route", "method", "GET", "path", settingsEndpoint)
		r.Get(settingsEndpoint, a.siteSettingsHandler)
		// create a registration
		log.Infow("new route", "method", "POST", "path", registrationsEndpoint)
		r.Post(registrationsEndpoint, a.createRegistrationHandler)
		// relay a contact form submission
		log.Infow("new route", "method", "POST", "path", contactEndpoint)
		r.Post(contactEndpoint, a.contactHandler)
		// start a donation checkout session
		log.Infow("new route", "method", "POST", "path", donationsCheckoutEndpoint)
		r.Post(donationsCheckoutEndpoint, a.donationCheckoutHandler)
		// handle stripe webhook
		log.Infow("new route", "method", "POST", "path", donationsWebhookEndpoint)
		r.Post(donationsWebhookEndpoint, a.donationWebhookHandler)
		// download an image from the object storage
		log.Infow("new route", "method", "GET", "path", objectStorageDownloadEndpoint)
		r.Get(objectStorageDownloadEndpoint, a.objectStorage.DownloadImageInlineHandler)
	})
	a.router = r
	return r
}
