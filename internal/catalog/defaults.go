package catalog

import "github.com/careshift/servicetree/internal/i18n"

// Default returns the built-in staffing-marketplace catalog. Bundle files
// loaded by the Seeder extend this set; they never replace it.
func Default() (*Catalog, error) {
	return New(defaultActions(), defaultCategories())
}

func defaultCategories() []Category {
	return []Category{
		{ID: "calendar", LabelKey: i18n.NewKey("categories", "calendar"), Icon: "calendar", Color: "#3B82F6"},
		{ID: "contracts", LabelKey: i18n.NewKey("categories", "contracts"), Icon: "file-text", Color: "#10B981"},
		{ID: "messages", LabelKey: i18n.NewKey("categories", "messages"), Icon: "message-circle", Color: "#8B5CF6"},
		{ID: "profile", LabelKey: i18n.NewKey("categories", "profile"), Icon: "user", Color: "#F59E0B"},
		{ID: "payroll", LabelKey: i18n.NewKey("categories", "payroll"), Icon: "dollar-sign", Color: "#EF4444"},
		{ID: "common", LabelKey: i18n.NewKey("categories", "common"), Icon: "settings", Color: "#6B7280"},
		{ID: "account", LabelKey: i18n.NewKey("categories", "account"), Icon: "shield", Color: "#EC4899"},
		{ID: "documents", LabelKey: i18n.NewKey("categories", "documents"), Icon: "file", Color: "#14B8A6"},
		{ID: "catalog", LabelKey: i18n.NewKey("categories", "catalog"), Icon: "book-open", Color: "#F97316"},
		{ID: "api", LabelKey: i18n.NewKey("categories", "api"), Icon: "cloud", Color: "#6366F1"},
	}
}

func defaultActions() []Action {
	personalFacility := []Workspace{WorkspacePersonal, WorkspaceFacility}
	facilityOrg := []Workspace{WorkspaceFacility, WorkspaceOrganization}
	everyWorkspace := []Workspace{WorkspacePersonal, WorkspaceFacility, WorkspaceOrganization, WorkspaceAdmin}

	return []Action{
		{
			ID:             "calendar.getEvents",
			Category:       "calendar",
			Workspaces:     personalFacility,
			Keywords:       []string{"calendar", "events", "shifts", "schedule", "get", "fetch", "list", "agenda", "planning"},
			LabelKey:       i18n.NewKey("calendar", "getEvents"),
			DescriptionKey: i18n.NewKey("calendar", "getEventsDesc"),
			Route:          "/dashboard/calendar",
			Icon:           "calendar",
			Parameters: []Parameter{
				{Name: "startDate", Type: "string", Description: "Start of the event range (ISO 8601)", Required: false},
				{Name: "endDate", Type: "string", Description: "End of the event range (ISO 8601)", Required: false},
				{Name: "eventType", Type: "string", Description: "Filter by event type", Required: false,
					Enum: []string{"availability", "appointment", "meeting", "blocking"}},
			},
		},
		{
			ID:             "calendar.createEvent",
			Category:       "calendar",
			Workspaces:     personalFacility,
			Keywords:       []string{"calendar", "event", "shift", "create", "add", "new", "schedule", "book"},
			LabelKey:       i18n.NewKey("calendar", "createEvent"),
			DescriptionKey: i18n.NewKey("calendar", "createEventDesc"),
			Route:          "/dashboard/calendar?action=create",
			Icon:           "plus-circle",
			Parameters: []Parameter{
				{Name: "title", Type: "string", Description: "Event title", Required: true},
				{Name: "start", Type: "string", Description: "Event start (ISO 8601)", Required: true},
				{Name: "end", Type: "string", Description: "Event end (ISO 8601)", Required: true},
				{Name: "type", Type: "string", Description: "Event type", Required: false, Default: "availability",
					Enum: []string{"availability", "appointment", "meeting", "blocking", "shift"}},
				{Name: "isRecurring", Type: "boolean", Description: "Whether the event repeats", Required: false, Default: false},
			},
		},
		{
			ID:             "calendar.updateEvent",
			Category:       "calendar",
			Workspaces:     personalFacility,
			Keywords:       []string{"calendar", "event", "shift", "update", "edit", "modify", "change", "reschedule"},
			LabelKey:       i18n.NewKey("calendar", "updateEvent"),
			DescriptionKey: i18n.NewKey("calendar", "updateEventDesc"),
			Route:          "/dashboard/calendar",
			Icon:           "edit",
		},
		{
			ID:             "calendar.deleteEvent",
			Category:       "calendar",
			Workspaces:     personalFacility,
			Keywords:       []string{"calendar", "event", "shift", "delete", "remove", "cancel"},
			LabelKey:       i18n.NewKey("calendar", "deleteEvent"),
			DescriptionKey: i18n.NewKey("calendar", "deleteEventDesc"),
			Route:          "/dashboard/calendar",
			Icon:           "trash",
		},
		{
			ID:             "calendar.syncCalendar",
			Category:       "calendar",
			Workspaces:     personalFacility,
			Keywords:       []string{"calendar", "sync", "external", "google", "outlook", "integration", "import"},
			LabelKey:       i18n.NewKey("calendar", "syncCalendar"),
			DescriptionKey: i18n.NewKey("calendar", "syncCalendarDesc"),
			Route:          "/dashboard/calendar",
			Icon:           "refresh",
		},
		{
			ID:             "contracts.getContracts",
			Category:       "contracts",
			Workspaces:     []Workspace{WorkspacePersonal, WorkspaceFacility, WorkspaceOrganization},
			Keywords:       []string{"contracts", "list", "fetch", "get", "all", "agreements", "view"},
			LabelKey:       i18n.NewKey("contracts", "getContracts"),
			DescriptionKey: i18n.NewKey("contracts", "getContractsDesc"),
			Route:          "/dashboard/contracts",
			Icon:           "file-text",
		},
		{
			ID:             "contracts.createContract",
			Category:       "contracts",
			Workspaces:     facilityOrg,
			Keywords:       []string{"contract", "create", "new", "draft", "agreement", "hire", "employ"},
			LabelKey:       i18n.NewKey("contracts", "createContract"),
			DescriptionKey: i18n.NewKey("contracts", "createContractDesc"),
			Route:          "/dashboard/contracts/new",
			Icon:           "file-plus",
		},
		{
			ID:             "contracts.updateContract",
			Category:       "contracts",
			Workspaces:     facilityOrg,
			Keywords:       []string{"contract", "update", "edit", "modify", "status", "change", "sign"},
			LabelKey:       i18n.NewKey("contracts", "updateContract"),
			DescriptionKey: i18n.NewKey("contracts", "updateContractDesc"),
			Route:          "/dashboard/contracts",
			Icon:           "edit",
		},
		{
			ID:             "contracts.generatePdf",
			Category:       "contracts",
			Workspaces:     []Workspace{WorkspacePersonal, WorkspaceFacility, WorkspaceOrganization},
			Keywords:       []string{"contract", "pdf", "generate", "download", "document", "export", "print"},
			LabelKey:       i18n.NewKey("contracts", "generatePdf"),
			DescriptionKey: i18n.NewKey("contracts", "generatePdfDesc"),
			Route:          "/dashboard/contracts",
			Icon:           "download",
		},
		{
			ID:             "contracts.applyToJob",
			Category:       "contracts",
			Workspaces:     []Workspace{WorkspacePersonal},
			Keywords:       []string{"job", "apply", "application", "shift", "vacancy", "submit", "candidate"},
			LabelKey:       i18n.NewKey("contracts", "applyToJob"),
			DescriptionKey: i18n.NewKey("contracts", "applyToJobDesc"),
			Route:          "/dashboard/marketplace",
			Icon:           "send",
		},
		{
			ID:             "messages.getConversations",
			Category:       "messages",
			Workspaces:     []Workspace{WorkspacePersonal, WorkspaceFacility, WorkspaceOrganization},
			Keywords:       []string{"messages", "conversations", "chats", "inbox", "list", "fetch"},
			LabelKey:       i18n.NewKey("messages", "getConversations"),
			DescriptionKey: i18n.NewKey("messages", "getConversationsDesc"),
			Route:          "/dashboard/messages",
			Icon:           "inbox",
		},
		{
			ID:             "messages.createConversation",
			Category:       "messages",
			Workspaces:     []Workspace{WorkspacePersonal, WorkspaceFacility, WorkspaceOrganization},
			Keywords:       []string{"conversation", "chat", "create", "new", "start", "message", "contact"},
			LabelKey:       i18n.NewKey("messages", "createConversation"),
			DescriptionKey: i18n.NewKey("messages", "createConversationDesc"),
			Route:          "/dashboard/messages",
			Icon:           "message-plus",
		},
		{
			ID:             "messages.sendMessage",
			Category:       "messages",
			Workspaces:     []Workspace{WorkspacePersonal, WorkspaceFacility, WorkspaceOrganization},
			Keywords:       []string{"message", "send", "chat", "reply", "text", "communicate", "write"},
			LabelKey:       i18n.NewKey("messages", "sendMessage"),
			DescriptionKey: i18n.NewKey("messages", "sendMessageDesc"),
			Route:          "/dashboard/messages",
			Icon:           "send",
		},
		{
			ID:             "profile.getCurrentUser",
			Category:       "profile",
			Workspaces:     everyWorkspace,
			Keywords:       []string{"user", "profile", "current", "me", "self", "get", "account"},
			LabelKey:       i18n.NewKey("profile", "getCurrentUser"),
			DescriptionKey: i18n.NewKey("profile", "getCurrentUserDesc"),
			Route:          "/dashboard/profile",
			Icon:           "user",
		},
		{
			ID:             "profile.updateUserProfile",
			Category:       "profile",
			Workspaces:     everyWorkspace,
			Keywords:       []string{"profile", "update", "edit", "save", "modify", "user", "settings"},
			LabelKey:       i18n.NewKey("profile", "updateUserProfile"),
			DescriptionKey: i18n.NewKey("profile", "updateUserProfileDesc"),
			Route:          "/dashboard/profile/edit",
			Icon:           "user-edit",
		},
		{
			ID:             "profile.changePassword",
			Category:       "profile",
			Workspaces:     everyWorkspace,
			Keywords:       []string{"password", "change", "update", "security", "account", "credentials"},
			LabelKey:       i18n.NewKey("profile", "changePassword"),
			DescriptionKey: i18n.NewKey("profile", "changePasswordDesc"),
			Route:          "/dashboard/settings",
			Icon:           "lock",
		},
		{
			ID:             "profile.uploadProfilePicture",
			Category:       "profile",
			Workspaces:     everyWorkspace,
			Keywords:       []string{"profile", "picture", "photo", "avatar", "upload", "image"},
			LabelKey:       i18n.NewKey("profile", "uploadProfilePicture"),
			DescriptionKey: i18n.NewKey("profile", "uploadProfilePictureDesc"),
			Route:          "/dashboard/profile",
			Icon:           "camera",
		},
		{
			ID:             "profile.searchUsers",
			Category:       "profile",
			Workspaces:     facilityOrg,
			Keywords:       []string{"users", "search", "find", "lookup", "name", "email", "professionals"},
			LabelKey:       i18n.NewKey("profile", "searchUsers"),
			DescriptionKey: i18n.NewKey("profile", "searchUsersDesc"),
			Route:          "/dashboard/marketplace",
			Icon:           "search",
			Parameters: []Parameter{
				{Name: "searchTerm", Type: "string", Description: "Term matched against names and email (minimum 2 characters)", Required: true},
				{Name: "limit", Type: "number", Description: "Maximum number of results", Required: false, Default: 20},
			},
		},
		{
			ID:             "payroll.createPayrollRequest",
			Category:       "payroll",
			Workspaces:     facilityOrg,
			Keywords:       []string{"payroll", "create", "request", "payment", "shift", "worker", "salary"},
			LabelKey:       i18n.NewKey("payroll", "createPayrollRequest"),
			DescriptionKey: i18n.NewKey("payroll", "createPayrollRequestDesc"),
			Route:          "/dashboard/payroll",
			Icon:           "dollar-sign",
			Parameters: []Parameter{
				{Name: "shiftId", Type: "string", Description: "Shift the payroll request covers", Required: true},
				{Name: "note", Type: "string", Description: "Optional note for the payroll office", Required: false},
			},
		},
		{
			ID:             "payroll.getPayrollRequests",
			Category:       "payroll",
			Workspaces:     facilityOrg,
			Keywords:       []string{"payroll", "requests", "list", "fetch", "history", "payments"},
			LabelKey:       i18n.NewKey("payroll", "getPayrollRequests"),
			DescriptionKey: i18n.NewKey("payroll", "getPayrollRequestsDesc"),
			Route:          "/dashboard/payroll",
			Icon:           "list",
		},
		{
			ID:             "payroll.calculateShiftFees",
			Category:       "payroll",
			Workspaces:     facilityOrg,
			Keywords:       []string{"fees", "calculate", "shift", "cost", "commission", "preview", "price"},
			LabelKey:       i18n.NewKey("payroll", "calculateShiftFees"),
			DescriptionKey: i18n.NewKey("payroll", "calculateShiftFeesDesc"),
			Route:          "/dashboard/contracts",
			Icon:           "calculator",
		},
		{
			ID:             "storage.uploadFile",
			Category:       "common",
			Workspaces:     everyWorkspace,
			Keywords:       []string{"upload", "file", "storage", "document", "image", "attachment"},
			LabelKey:       i18n.NewKey("storage", "uploadFile"),
			DescriptionKey: i18n.NewKey("storage", "uploadFileDesc"),
			Route:          "/dashboard/documents?modal=upload",
			Icon:           "upload",
			Parameters: []Parameter{
				{Name: "file", Type: "file", Description: "File to upload", Required: true},
				{Name: "folder", Type: "string", Description: "Destination folder", Required: false, Default: "documents"},
			},
		},
		{
			ID:             "storage.deleteFile",
			Category:       "common",
			Workspaces:     everyWorkspace,
			Keywords:       []string{"file", "delete", "remove", "storage"},
			LabelKey:       i18n.NewKey("storage", "deleteFile"),
			DescriptionKey: i18n.NewKey("storage", "deleteFileDesc"),
			Route:          "/dashboard/documents",
			Icon:           "trash",
		},
		{
			ID:             "notifications.listNotifications",
			Category:       "common",
			Workspaces:     everyWorkspace,
			Keywords:       []string{"notifications", "list", "fetch", "alerts", "inbox", "bell"},
			LabelKey:       i18n.NewKey("notifications", "listNotifications"),
			DescriptionKey: i18n.NewKey("notifications", "listNotificationsDesc"),
			Route:          "/dashboard",
			Icon:           "bell",
		},
		{
			ID:             "notifications.markAllAsRead",
			Category:       "common",
			Workspaces:     everyWorkspace,
			Keywords:       []string{"notifications", "read", "all", "clear", "mark", "dismiss"},
			LabelKey:       i18n.NewKey("notifications", "markAllAsRead"),
			DescriptionKey: i18n.NewKey("notifications", "markAllAsReadDesc"),
			Route:          "/dashboard",
			Icon:           "check-circle",
		},
		{
			ID:             "account.getDeletionPreview",
			Category:       "account",
			Workspaces:     []Workspace{WorkspacePersonal},
			Keywords:       []string{"account", "delete", "preview", "gdpr", "data", "retention"},
			LabelKey:       i18n.NewKey("account", "getDeletionPreview"),
			DescriptionKey: i18n.NewKey("account", "getDeletionPreviewDesc"),
			Route:          "/dashboard/settings",
			Icon:           "alert-triangle",
		},
		{
			ID:             "account.deleteAccount",
			Category:       "account",
			Workspaces:     []Workspace{WorkspacePersonal},
			Keywords:       []string{"account", "delete", "gdpr", "anonymize", "close", "remove"},
			LabelKey:       i18n.NewKey("account", "deleteAccount"),
			DescriptionKey: i18n.NewKey("account", "deleteAccountDesc"),
			Route:          "/dashboard/settings",
			Icon:           "user-x",
		},
		{
			ID:             "account.exportUserData",
			Category:       "account",
			Workspaces:     []Workspace{WorkspacePersonal},
			Keywords:       []string{"export", "data", "gdpr", "download", "user", "backup"},
			LabelKey:       i18n.NewKey("account", "exportUserData"),
			DescriptionKey: i18n.NewKey("account", "exportUserDataDesc"),
			Route:          "/dashboard/settings",
			Icon:           "download",
		},
		{
			ID:             "documents.processWithAI",
			Category:       "documents",
			Workspaces:     personalFacility,
			Keywords:       []string{"document", "ocr", "ai", "extract", "cv", "resume", "scan", "autofill"},
			LabelKey:       i18n.NewKey("documents", "processWithAI"),
			DescriptionKey: i18n.NewKey("documents", "processWithAIDesc"),
			Route:          "/dashboard/documents",
			Icon:           "cpu",
		},
		{
			ID:             "catalog.searchOrganizations",
			Category:       "catalog",
			Workspaces:     []Workspace{WorkspacePersonal, WorkspaceFacility, WorkspaceOrganization},
			Keywords:       []string{"organization", "search", "chain", "group", "company", "find", "lookup"},
			LabelKey:       i18n.NewKey("catalog", "searchOrganizations"),
			DescriptionKey: i18n.NewKey("catalog", "searchOrganizationsDesc"),
			Route:          "/dashboard/organization",
			Icon:           "search",
			Parameters: []Parameter{
				{Name: "searchTerm", Type: "string", Description: "Term matched against organization names or GLN (minimum 2 characters)", Required: true},
				{Name: "organizationType", Type: "string", Description: "Filter by organization type", Required: false,
					Enum: []string{"pharmacy_chain", "hospital_group", "clinic_network", "chain", "group", "network"}},
				{Name: "limit", Type: "number", Description: "Maximum number of results", Required: false, Default: 20},
			},
		},
		{
			ID:             "catalog.searchProfessionals",
			Category:       "catalog",
			Workspaces:     []Workspace{WorkspacePersonal, WorkspaceFacility, WorkspaceOrganization},
			Keywords:       []string{"professional", "search", "worker", "employee", "staff", "find", "lookup", "healthcare"},
			LabelKey:       i18n.NewKey("catalog", "searchProfessionals"),
			DescriptionKey: i18n.NewKey("catalog", "searchProfessionalsDesc"),
			Route:          "/dashboard/marketplace",
			Icon:           "search",
			Parameters: []Parameter{
				{Name: "searchTerm", Type: "string", Description: "Term matched against professional names, email, or GLN (minimum 2 characters)", Required: true},
				{Name: "limit", Type: "number", Description: "Maximum number of results", Required: false, Default: 20},
			},
		},
		{
			ID:             "api.healthRegistryLookup",
			Category:       "api",
			Workspaces:     []Workspace{WorkspaceFacility, WorkspaceOrganization, WorkspaceAdmin},
			Keywords:       []string{"health", "registry", "gln", "lookup", "verify", "professional", "license"},
			LabelKey:       i18n.NewKey("api", "healthRegistryLookup"),
			DescriptionKey: i18n.NewKey("api", "healthRegistryLookupDesc"),
			Route:          "/dashboard/verification",
			Icon:           "shield",
			Parameters: []Parameter{
				{Name: "gln", Type: "string", Description: "Global Location Number of the professional", Required: true},
			},
		},
		{
			ID:             "api.companySearch",
			Category:       "api",
			Workspaces:     []Workspace{WorkspaceOrganization, WorkspaceAdmin},
			Keywords:       []string{"company", "search", "gln", "business", "facility", "organization"},
			LabelKey:       i18n.NewKey("api", "companySearch"),
			DescriptionKey: i18n.NewKey("api", "companySearchDesc"),
			Route:          "/dashboard/organization",
			Icon:           "building",
		},
	}
}
