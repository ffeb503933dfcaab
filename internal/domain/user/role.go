package user

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleTrainer    = "TRAINER"
	RoleLearner    = "LEARNER"
)

var Roles = []string{RoleSuperAdmin, RoleAdmin, RoleTrainer, RoleLearner}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
