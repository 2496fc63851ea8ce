package rbac

// Default policy. Sharing eligibility is decided in the workflow (a guest
// asking to share is a normal "unavailable" outcome, not a 403), so there
// is no exam:share permission here.
var RolePermissions = map[string][]string{
	"user": {
		"exam:generate",
		"exam:grade",
		"shared:view",
		"shared:submit",
		"user:change_password",
	},
	"guest": {
		"exam:generate",
		"exam:grade",
		"shared:view",
		"shared:submit",
	},
	"admin": {
		"*",
	},
}
