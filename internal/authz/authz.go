package authz

import (
	"github.com/yungbote/neurobridge-lms/internal/domain/user"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/ctxutil"
)

// Permission is a resource:action pair checked against the policy table.
type Permission string

const (
	CourseCreate  Permission = "course:create"
	CourseUpdate  Permission = "course:update"
	CoursePublish Permission = "course:publish"
	CourseDelete  Permission = "course:delete"

	ModuleCreate Permission = "module:create"
	ModuleUpdate Permission = "module:update"
	ModuleDelete Permission = "module:delete"

	LessonCreate Permission = "lesson:create"
	LessonUpdate Permission = "lesson:update"
	LessonDelete Permission = "lesson:delete"

	OrganizationCreate Permission = "organization:create"
	OrganizationUpdate Permission = "organization:update"

	PolicyCreate Permission = "policy:create"
	PolicyUpdate Permission = "policy:update"

	UserList   Permission = "user:list"
	UserUpdate Permission = "user:update"
)

const (
	MsgNotAuthenticated = "User not authenticated"
	MsgForbidden        = "Access denied. Insufficient permissions."
	MsgAdminOnly        = "Admin access only"
)

var (
	AdminRoles  = []string{user.RoleAdmin, user.RoleSuperAdmin}
	AuthorRoles = []string{user.RoleTrainer, user.RoleAdmin, user.RoleSuperAdmin}
)

type rule struct {
	roles  []string
	denial string
}

func authors() rule   { return rule{roles: AuthorRoles, denial: MsgForbidden} }
func adminOnly() rule { return rule{roles: AdminRoles, denial: MsgAdminOnly} }

var policy = map[Permission]rule{
	CourseCreate:  authors(),
	CourseUpdate:  authors(),
	CoursePublish: authors(),
	CourseDelete:  {roles: AdminRoles, denial: MsgForbidden},

	ModuleCreate: authors(),
	ModuleUpdate: authors(),
	ModuleDelete: authors(),

	LessonCreate: authors(),
	LessonUpdate: authors(),
	LessonDelete: authors(),

	OrganizationCreate: adminOnly(),
	OrganizationUpdate: adminOnly(),

	PolicyCreate: adminOnly(),
	PolicyUpdate: adminOnly(),

	UserList:   adminOnly(),
	UserUpdate: adminOnly(),
}

func Authorize(rd *ctxutil.RequestData, p Permission) error {
	r, ok := policy[p]
	if !ok {
		r = rule{denial: MsgForbidden}
	}
	return authorize(rd, r.denial, r.roles)
}

func authorize(rd *ctxutil.RequestData, denial string, roles []string) error {
	if rd == nil {
		return apierr.Auth(MsgNotAuthenticated)
	}
	for _, r := range roles {
		if rd.Role == r {
			return nil
		}
	}
	return apierr.Forbidden(denial)
}

func IsAdmin(rd *ctxutil.RequestData) bool {
	return rd != nil && user.IsAdminRole(rd.Role)
}
