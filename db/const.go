package db

const (
	// member roles
	RegularRole MemberRole = "member"
	AdminRole   MemberRole = "admin"

	// registration workflow states
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationAccepted RegistrationStatus = "accepted"
	RegistrationRejected RegistrationStatus = "rejected"

	// payment methods
	PaymentBkash PaymentMethod = "bkash"
	PaymentNagad PaymentMethod = "nagad"
	PaymentCash  PaymentMethod = "cash"

	// SiteSettingsID is the fixed identifier of the settings singleton.
	SiteSettingsID = "site"
)

// validRoles is a map that contains the valid member roles
var validRoles = map[MemberRole]bool{
	RegularRole: true,
	AdminRole:   true,
}

// IsValidMemberRole function checks if the member role is valid
func IsValidMemberRole(role MemberRole) bool {
	_, valid := validRoles[role]
	return valid
}

// validRegistrationStatuses is a map that contains the valid workflow states
var validRegistrationStatuses = map[RegistrationStatus]bool{
	RegistrationPending:  true,
	RegistrationAccepted: true,
	RegistrationRejected: true,
}

// IsValidRegistrationStatus function checks if the registration status is valid
func IsValidRegistrationStatus(status RegistrationStatus) bool {
	_, valid := validRegistrationStatuses[status]
	return valid
}

// validPaymentMethods is a map that contains the valid payment methods
var validPaymentMethods = map[PaymentMethod]bool{
	PaymentBkash: true,
	PaymentNagad: true,
	PaymentCash:  true,
}

// IsValidPaymentMethod function checks if the payment method is valid
func IsValidPaymentMethod(method PaymentMethod) bool {
	_, valid := validPaymentMethods[method]
	return valid
}

// DefaultSiteSettings returns the settings document written the first time the
// singleton is read (or saved) on an empty database.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:            SiteSettingsID,
		HeroTitle:     "United Bishnupur, a prosperous future",
		HeroSubtitle:  "The Bishnupur Union Society in Dhaka is a non-political social organization working for the welfare of the people of our union and to strengthen the bond of brotherhood.",
		HeroImage:     "https://picsum.photos/seed/society-hero/1920/1080?blur=2",
		MissionTitle:  "Our goals and objectives",
		MissionDesc:   "Our main goal is to work for the socio-economic development of the people of Bishnupur Union and the spread of education.",
		StatsMembers:  "500+",
		StatsEvents:   "20+",
		StatsProjects: "50+",
		StatsYears:    "10+",
		Version:       1,
	}
}
