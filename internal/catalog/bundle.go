package catalog

import "github.com/careshift/servicetree/internal/i18n"

// DefaultBundle returns the built-in translations for the default catalog.
// English is complete and serves as the fallback language; French and German
// cover the category labels and the highest-traffic actions. Missing entries
// resolve through the fallback chain, never as errors.
func DefaultBundle() i18n.Bundle {
	return i18n.Bundle{
		"en": {
			"categories": {
				"calendar":  "Calendar",
				"contracts": "Contracts",
				"messages":  "Messages",
				"profile":   "Profile",
				"payroll":   "Payroll",
				"common":    "General",
				"account":   "Account",
				"documents": "Documents",
				"catalog":   "Directory",
				"api":       "Registries",
			},
			"calendar": {
				"getEvents":        "Get Calendar Events",
				"getEventsDesc":    "Fetch events and shifts from your calendar",
				"createEvent":      "Create Calendar Event",
				"createEventDesc":  "Add a new availability, shift, or appointment",
				"updateEvent":      "Update Calendar Event",
				"updateEventDesc":  "Edit or reschedule an existing event",
				"deleteEvent":      "Delete Calendar Event",
				"deleteEventDesc":  "Remove or cancel an event",
				"syncCalendar":     "Sync External Calendar",
				"syncCalendarDesc": "Import events from Google or Outlook",
			},
			"contracts": {
				"getContracts":       "View Contracts",
				"getContractsDesc":   "List all your contracts and agreements",
				"createContract":     "Create Contract",
				"createContractDesc": "Draft a new employment contract",
				"updateContract":     "Update Contract",
				"updateContractDesc": "Change contract details or status",
				"generatePdf":        "Download Contract PDF",
				"generatePdfDesc":    "Generate and download a contract document",
				"applyToJob":         "Apply to Job",
				"applyToJobDesc":     "Submit an application for an open shift",
			},
			"messages": {
				"getConversations":       "Open Inbox",
				"getConversationsDesc":   "List your conversations",
				"createConversation":     "Start Conversation",
				"createConversationDesc": "Open a new conversation with a contact",
				"sendMessage":            "Send Message",
				"sendMessageDesc":        "Reply in an existing conversation",
			},
			"profile": {
				"getCurrentUser":           "View My Profile",
				"getCurrentUserDesc":       "Show your own profile and account details",
				"updateUserProfile":        "Edit Profile",
				"updateUserProfileDesc":    "Update your profile information",
				"changePassword":           "Change Password",
				"changePasswordDesc":       "Update your account credentials",
				"uploadProfilePicture":     "Upload Profile Picture",
				"uploadProfilePictureDesc": "Change your avatar photo",
				"searchUsers":              "Search Professionals",
				"searchUsersDesc":          "Find professionals by name or email",
			},
			"payroll": {
				"createPayrollRequest":     "Create Payroll Request",
				"createPayrollRequestDesc": "Request payment for a completed shift",
				"getPayrollRequests":       "View Payroll Requests",
				"getPayrollRequestsDesc":   "List payroll requests and payment history",
				"calculateShiftFees":       "Calculate Shift Fees",
				"calculateShiftFeesDesc":   "Preview cost and commission for a shift",
			},
			"storage": {
				"uploadFile":     "Upload File",
				"uploadFileDesc": "Upload a document, image, or attachment",
				"deleteFile":     "Delete File",
				"deleteFileDesc": "Remove a stored file",
			},
			"notifications": {
				"listNotifications":     "View Notifications",
				"listNotificationsDesc": "Show your notification inbox",
				"markAllAsRead":         "Mark All as Read",
				"markAllAsReadDesc":     "Dismiss all unread notifications",
			},
			"account": {
				"getDeletionPreview":     "Preview Account Deletion",
				"getDeletionPreviewDesc": "See what data would be removed or retained",
				"deleteAccount":          "Delete Account",
				"deleteAccountDesc":      "Close and anonymize your account",
				"exportUserData":         "Export My Data",
				"exportUserDataDesc":     "Download a copy of your personal data",
			},
			"documents": {
				"processWithAI":     "Scan Document",
				"processWithAIDesc": "Extract profile data from a CV or diploma",
			},
			"catalog": {
				"searchOrganizations":     "Search Organizations",
				"searchOrganizationsDesc": "Find pharmacy chains, hospital groups, and networks",
				"searchProfessionals":     "Search Directory",
				"searchProfessionalsDesc": "Find healthcare professionals in the directory",
			},
			"api": {
				"healthRegistryLookup":     "Verify Health Registry",
				"healthRegistryLookupDesc": "Look up a professional license by GLN",
				"companySearch":            "Search Company Register",
				"companySearchDesc":        "Look up a business or facility by GLN",
			},
		},
		"fr": {
			"categories": {
				"calendar":  "Calendrier",
				"contracts": "Contrats",
				"messages":  "Messages",
				"profile":   "Profil",
				"payroll":   "Salaires",
				"common":    "Général",
				"account":   "Compte",
				"documents": "Documents",
				"catalog":   "Annuaire",
				"api":       "Registres",
			},
			"calendar": {
				"getEvents":       "Consulter le calendrier",
				"getEventsDesc":   "Afficher vos événements et vacations",
				"createEvent":     "Créer un événement",
				"createEventDesc": "Ajouter une disponibilité ou une vacation",
			},
			"profile": {
				"getCurrentUser":  "Voir mon profil",
				"searchUsers":     "Rechercher des professionnels",
				"searchUsersDesc": "Trouver un médecin ou un pharmacien",
			},
			"messages": {
				"getConversations": "Ouvrir la messagerie",
				"sendMessage":      "Envoyer un message",
			},
		},
		"de": {
			"categories": {
				"calendar":  "Kalender",
				"contracts": "Verträge",
				"messages":  "Nachrichten",
				"profile":   "Profil",
				"payroll":   "Lohn",
				"common":    "Allgemein",
				"account":   "Konto",
				"documents": "Dokumente",
				"catalog":   "Verzeichnis",
				"api":       "Register",
			},
			"calendar": {
				"getEvents":   "Kalender anzeigen",
				"createEvent": "Termin erstellen",
			},
		},
	}
}
