package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string     `gorm:"column:name;not null" json:"name"`
	Email          string     `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password       string     `gorm:"column:password;not null" json:"-"`
	Role           string     `gorm:"column:role;not null;default:LEARNER;index" json:"role"`
	OrganizationID *uuid.UUID `gorm:"column:organization_id;type:uuid;index" json:"organizationId,omitempty"`
	Active         bool       `gorm:"column:is_active;not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (User) TableName() string { return "user" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// PublicUser is the user as returned to clients: never carries the hash.
type PublicUser struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	OrganizationID *uuid.UUID `json:"organizationId,omitempty"`
	Active         bool       `json:"isActive"`
}

func (u *User) Public() PublicUser {
	if u == nil {
		return PublicUser{}
	}
	return PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
		Active:         u.Active,
	}
}

// TrainerSummary is the slice of a user embedded in course listings.
type TrainerSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
