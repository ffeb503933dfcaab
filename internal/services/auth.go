package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/data/repos"
	types "github.com/yungbote/neurobridge-lms/internal/domain"
	"github.com/yungbote/neurobridge-lms/internal/domain/user"
	"github.com/yungbote/neurobridge-lms/internal/platform/apierr"
	"github.com/yungbote/neurobridge-lms/internal/platform/ctxutil"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
	"github.com/yungbote/neurobridge-lms/internal/platform/normalization"
)

const (
	MsgRegisterRequired   = "Name, email, and password are required"
	MsgLoginRequired      = "Email and password are required"
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgTokenExpired       = "Token expired"
	MsgInvalidToken       = "Invalid token"
	MsgNotAuthenticated   = "User not authenticated"
)

// Claims is the signed session payload.
type Claims struct {
	UserID         string  `json:"userId"`
	Role           string  `json:"role"`
	OrganizationID *string `json:"organizationId"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Password       string     `json:"password"`
	Role           string     `json:"role"`
	OrganizationID *uuid.UUID `json:"organizationId"`
}

type AuthResult struct {
	Token string           `json:"token"`
	User  types.PublicUser `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Verify(ctx context.Context, token string) (*Claims, error)
	SetContextFromToken(ctx context.Context, token string) (context.Context, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*types.PublicUser, error)
	TokenTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	orgRepo      repos.OrganizationRepo
	revoked      TokenRevocationStore
	jwtSecretKey []byte
	tokenTTL     time.Duration
	bcryptCost   int
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	orgRepo repos.OrganizationRepo,
	revoked TokenRevocationStore,
	jwtSecretKey string,
	tokenTTL time.Duration,
) AuthService {
	if revoked == nil {
		revoked = NewMemoryTokenStore()
	}
	return &authService{
		db:           db,
		log:          log.With("service", "AuthService"),
		userRepo:     userRepo,
		orgRepo:      orgRepo,
		revoked:      revoked,
		jwtSecretKey: []byte(jwtSecretKey),
		tokenTTL:     tokenTTL,
		bcryptCost:   bcrypt.DefaultCost,
	}
}

func (as *authService) TokenTTL() time.Duration { return as.tokenTTL }

func (as *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := normalization.ParseInputString(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, logFailure(as.log, "register", apierr.Validation(MsgRegisterRequired))
	}
	role := normalization.ParseEnum(in.Role)
	if role == "" {
		role = user.RoleLearner
	}
	if !user.IsValidRole(role) {
		return nil, logFailure(as.log, "register", apierr.Validation(fmt.Sprintf("Invalid role: %s", in.Role)))
	}

	if in.OrganizationID != nil {
		orgs, err := as.orgRepo.GetByIDs(ctx, nil, []uuid.UUID{*in.OrganizationID})
		if err != nil {
			return nil, logFailure(as.log, "register", internal("load organization", err))
		}
		if len(orgs) == 0 {
			return nil, logFailure(as.log, "register", apierr.Validation("Organization does not exist"))
		}
	}

	exists, err := as.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, logFailure(as.log, "register", internal("check email", err))
	}
	if exists {
		return nil, logFailure(as.log, "register", apierr.Conflict(MsgUserExists))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), as.bcryptCost)
	if err != nil {
		return nil, logFailure(as.log, "register", internal("hash password", err))
	}

	u := &types.User{
		Name:           name,
		Email:          email,
		Password:       string(hash),
		Role:           role,
		OrganizationID: in.OrganizationID,
		Active:         true,
	}
	if _, err := as.userRepo.Create(ctx, nil, []*types.User{u}); err != nil {
		// lost a race with a concurrent registration for the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, logFailure(as.log, "register", apierr.Conflict(MsgUserExists))
		}
		return nil, logFailure(as.log, "register", internal("create user", err))
	}

	token, err := as.issueToken(u)
	if err != nil {
		return nil, logFailure(as.log, "register", internal("sign token", err))
	}
	as.log.Info("user registered", "user_id", u.ID, "role", u.Role)
	return &AuthResult{Token: token, User: u.Public()}, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalization.ParseInputString(email)
	if email == "" || password == "" {
		return nil, logFailure(as.log, "login", apierr.Validation(MsgLoginRequired))
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return nil, logFailure(as.log, "login", internal("load user", err))
	}
	if len(users) == 0 || !users[0].Active {
		return nil, logFailure(as.log, "login", apierr.Auth(MsgInvalidCredentials))
	}
	u := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, logFailure(as.log, "login", apierr.Auth(MsgInvalidCredentials))
	}

	token, err := as.issueToken(u)
	if err != nil {
		return nil, logFailure(as.log, "login", internal("sign token", err))
	}
	as.log.Info("user logged in", "user_id", u.ID)
	return &AuthResult{Token: token, User: u.Public()}, nil
}

func (as *authService) issueToken(u *types.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID.String(),
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.tokenTTL)),
		},
	}
	if u.OrganizationID != nil {
		orgID := u.OrganizationID.String()
		claims.OrganizationID = &orgID
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(as.jwtSecretKey)
}

func (as *authService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return as.jwtSecretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apierr.Auth(MsgTokenExpired)
		}
		invalid := apierr.Auth(MsgInvalidToken)
		invalid.Err = err
		return nil, invalid
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, apierr.Auth(MsgInvalidToken)
	}
	if claims.OrganizationID != nil {
		if _, err := uuid.Parse(*claims.OrganizationID); err != nil {
			return nil, apierr.Auth(MsgInvalidToken)
		}
	}
	revoked, err := as.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, internal("check token revocation", err)
	}
	if revoked {
		return nil, apierr.Auth(MsgInvalidToken)
	}
	return claims, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims, err := as.Verify(ctx, tokenString)
	if err != nil {
		return ctx, err
	}
	rd := &ctxutil.RequestData{
		UserID:  uuid.MustParse(claims.UserID),
		Role:    claims.Role,
		TokenID: claims.ID,
	}
	if claims.OrganizationID != nil {
		orgID := uuid.MustParse(*claims.OrganizationID)
		rd.OrganizationID = &orgID
	}
	if claims.ExpiresAt != nil {
		rd.ExpiresAt = claims.ExpiresAt.Time
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}

func (as *authService) Logout(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return logFailure(as.log, "logout", apierr.Auth(MsgNotAuthenticated))
	}
	if err := as.revoked.Revoke(ctx, rd.TokenID, rd.ExpiresAt); err != nil {
		return logFailure(as.log, "logout", internal("revoke token", err))
	}
	as.log.Info("user logged out", "user_id", rd.UserID)
	return nil
}

func (as *authService) Me(ctx context.Context) (*types.PublicUser, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, logFailure(as.log, "me", apierr.Auth(MsgNotAuthenticated))
	}
	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, logFailure(as.log, "me", internal("load user", err))
	}
	if len(users) == 0 {
		return nil, logFailure(as.log, "me", apierr.NotFound("User not found"))
	}
	pub := users[0].Public()
	return &pub, nil
}
