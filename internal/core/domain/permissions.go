package domain

// Permission names an action over a resource type, e.g. "article.create".
type Permission string

const (
	PermCategoryCreate Permission = "category.create"
	PermCategoryRead   Permission = "category.read"
	PermCategoryUpdate Permission = "category.update"
	PermCategoryDelete Permission = "category.delete"

	PermArticleCreate Permission = "article.create"
	PermArticleRead   Permission = "article.read"
	PermArticleUpdate Permission = "article.update"
	PermArticleDelete Permission = "article.delete"

	PermRepairCreate Permission = "repair_request.create"
	PermRepairRead   Permission = "repair_request.read"
	PermRepairUpdate Permission = "repair_request.update"
	PermRepairDelete Permission = "repair_request.delete"

	PermSupportCreate Permission = "support_request.create"
	PermSupportRead   Permission = "support_request.read"
	PermSupportUpdate Permission = "support_request.update"
	PermSupportDelete Permission = "support_request.delete"

	PermUserCreate Permission = "user.create"
	PermUserRead   Permission = "user.read"
	PermUserUpdate Permission = "user.update"
	PermUserDelete Permission = "user.delete"
)

// rolePermissions is the fixed role→permission expansion. A user's effective
// permission set is the union of the permissions attached to its role.
var rolePermissions = map[string][]Permission{
	RoleAdmin: {
		PermCategoryCreate, PermCategoryRead, PermCategoryUpdate, PermCategoryDelete,
		PermArticleCreate, PermArticleRead, PermArticleUpdate, PermArticleDelete,
		PermRepairCreate, PermRepairRead, PermRepairUpdate, PermRepairDelete,
		PermSupportCreate, PermSupportRead, PermSupportUpdate, PermSupportDelete,
		PermUserCreate, PermUserRead, PermUserUpdate, PermUserDelete,
	},
	RoleEmployee: {
		PermCategoryRead, PermCategoryUpdate,
		PermArticleRead, PermArticleUpdate,
		PermRepairRead, PermRepairUpdate,
		PermSupportRead, PermSupportUpdate,
	},
	RoleUser: {
		PermCategoryRead,
		PermArticleRead,
		PermSupportCreate,
	},
}

// PermissionsFor returns the effective permission set for a role.
func PermissionsFor(role string) map[Permission]struct{} {
	perms := rolePermissions[role]
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// HasPermission reports whether a role's effective set contains p.
func HasPermission(role string, p Permission) bool {
	for _, granted := range rolePermissions[role] {
		if granted == p {
			return true
		}
	}
	return false
}
