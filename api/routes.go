package api

const (
	// auth routes

	// POST /auth/login to login and get a JWT token
	authLoginEndpoint = "/auth/login"
	// POST /auth/refresh to refresh the JWT token
	authRefreshTokenEndpoint = "/auth/refresh"

	// member routes

	// POST /members to register a new member (public),
	// GET /members to list members (admin)
	membersEndpoint = "/members"
	// GET /members/me to get the current member
	membersMeEndpoint = "/members/me"
	// PUT /members/{memberID}/role to change a member role (admin)
	memberRoleEndpoint = "/members/{memberID}/role"
	// DELETE /members/{memberID} to remove a member (admin)
	memberEndpoint = "/members/{memberID}"

	// news routes

	// GET /news (public), POST /news (admin)
	newsEndpoint = "/news"
	// PUT /news/{newsID}, DELETE /news/{newsID} (admin)
	newsItemEndpoint = "/news/{newsID}"

	// committee routes

	// GET /committee (public), POST /committee (admin)
	committeeEndpoint = "/committee"
	// PUT /committee/{committeeID}, DELETE /committee/{committeeID} (admin)
	committeeMemberEndpoint = "/committee/{committeeID}"
	// POST /committee/migrate-adhoc to move the committee to the ad-hoc one (admin)
	committeeMigrateEndpoint = "/committee/migrate-adhoc"
	// GET /adhoc-committee (public), POST /adhoc-committee (admin)
	adhocCommitteeEndpoint = "/adhoc-committee"
	// PUT /adhoc-committee/{adhocID}, DELETE /adhoc-committee/{adhocID} (admin)
	adhocCommitteeMemberEndpoint = "/adhoc-committee/{adhocID}"

	// registration routes

	// POST /iftar/registrations (public), GET /iftar/registrations (admin)
	registrationsEndpoint = "/iftar/registrations"
	// PUT /iftar/registrations/{registrationID}/status (admin)
	registrationStatusEndpoint = "/iftar/registrations/{registrationID}/status"
	// DELETE /iftar/registrations/{registrationID} (admin)
	registrationEndpoint = "/iftar/registrations/{registrationID}"

	// settings routes

	// GET /settings (public), PUT /settings (admin)
	settingsEndpoint = "/settings"

	// contact routes

	// POST /contact to relay a contact form submission
	contactEndpoint = "/contact"

	// donation routes

	// POST /donations/checkout to start a checkout session (public)
	donationsCheckoutEndpoint = "/donations/checkout"
	// POST /donations/webhook to receive Stripe events (public)
	donationsWebhookEndpoint = "/donations/webhook"
	// GET /donations to list donations (admin)
	donationsEndpoint = "/donations"

	// storage routes

	// POST /storage to upload images (admin)
	objectStorageUploadEndpoint = "/storage"
	// GET /storage/{objectName} to download an image (public)
	objectStorageDownloadEndpoint = "/storage/{objectName}"
)
