package domain

// Permissions are fine-grained capability strings layered on top of the
// coarse role. The role decides which bucket an endpoint is open to, the
// permission discriminates within it (e.g. "analytics.view" vs
// "analytics.view.all").
const (
	PermUsersManage         = "users.manage"
	PermCustomersManage     = "customers.manage"
	PermStaffManage         = "staff.manage"
	PermPaymentsView        = "payments.view"
	PermPaymentsManage      = "payments.manage"
	PermNotificationsManage = "notifications.manage"
	PermSettingsManage      = "settings.manage"
	PermLogsView            = "logs.view"
	PermLogsManage          = "logs.manage"
	PermAnalyticsView       = "analytics.view"
	PermAnalyticsViewAll    = "analytics.view.all"
)

var rolePermissions = map[UserRole][]string{
	RoleUser: {},
	RoleAdmin: {
		PermUsersManage,
		PermCustomersManage,
		PermStaffManage,
		PermPaymentsView,
		PermPaymentsManage,
		PermNotificationsManage,
		PermSettingsManage,
		PermLogsView,
		PermAnalyticsView,
	},
	RoleSuperAdmin: {
		PermUsersManage,
		PermCustomersManage,
		PermStaffManage,
		PermPaymentsView,
		PermPaymentsManage,
		PermNotificationsManage,
		PermSettingsManage,
		PermLogsView,
		PermLogsManage,
		PermAnalyticsView,
		PermAnalyticsViewAll,
	},
}

// PermissionsForRole returns a copy of the capability set granted to a role.
func PermissionsForRole(role UserRole) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

func RoleHasPermission(role UserRole, perm string) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
