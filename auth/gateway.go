// Package auth registers users, checks credentials and binds sessions to users.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/models"
	"github.com/biharidelicacies/marketplace-api/session"
	"github.com/biharidelicacies/marketplace-api/store"
	"go.uber.org/zap"
)

// RegisterInput is the body of POST /auth/register.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Address   any    `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Gateway struct {
	store    store.RecordStore
	sessions *session.Registry
	log      *zap.SugaredLogger
}

func NewGateway(s store.RecordStore, sessions *session.Registry, log *zap.SugaredLogger) *Gateway {
	return &Gateway{store: s, sessions: sessions, log: log}
}

// Register stores a new user and opens a session for it.
func (g *Gateway) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" || strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return models.User{}, "", apperr.Validation("email, password, firstName and lastName are required")
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleSeller {
		return models.User{}, "", apperr.Validation("role must be user or seller")
	}

	existing, err := g.findByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", apperr.Wrap("look up user", err)
	}
	if existing != nil {
		return models.User{}, "", apperr.Conflict("Email already registered")
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return models.User{}, "", apperr.Wrap("hash password", err)
	}

	user := models.User{
		Email:     email,
		Password:  hash,
		Role:      role,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	rec, err := models.ToRecord(user)
	if err != nil {
		return models.User{}, "", apperr.Wrap("encode user", err)
	}
	saved, err := g.store.Insert(ctx, models.CollectionUsers, rec)
	if err != nil {
		return models.User{}, "", apperr.Wrap("save user", err)
	}
	user = models.UserFromRecord(saved)

	sid := g.sessions.Create(user.IDString())
	g.log.Infow("user registered", "userId", user.IDString(), "role", role)
	return user, sid, nil
}

// Login checks credentials and opens a new session.
func (g *Gateway) Login(ctx context.Context, in LoginInput) (models.User, string, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return models.User{}, "", apperr.Validation("email and password are required")
	}

	rec, err := g.findByEmail(ctx, in.Email)
	if err != nil {
		return models.User{}, "", apperr.Wrap("look up user", err)
	}
	if rec == nil {
		return models.User{}, "", apperr.Authentication("Invalid credentials")
	}
	user := models.UserFromRecord(rec)
	if !CheckPassword(user.Password, in.Password) {
		return models.User{}, "", apperr.Authentication("Invalid credentials")
	}

	return user, g.sessions.Create(user.IDString()), nil
}

// Logout never fails, even for sessions that do not exist.
func (g *Gateway) Logout(sessionID string) {
	if sessionID != "" {
		g.sessions.Destroy(sessionID)
	}
}

// CurrentUser follows session -> user id -> user record and returns nil when any link is missing.
func (g *Gateway) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	userID, ok := g.sessions.Resolve(sessionID)
	if !ok {
		return nil, nil
	}
	rec, err := g.store.FindOne(ctx, models.CollectionUsers, store.ByID(userID))
	if err != nil {
		return nil, apperr.Wrap("load user", err)
	}
	if rec == nil {
		return nil, nil
	}
	user := models.UserFromRecord(rec)
	return &user, nil
}

func (g *Gateway) findByEmail(ctx context.Context, email string) (models.Record, error) {
	want := strings.ToLower(strings.TrimSpace(email))
	return g.store.FindOne(ctx, models.CollectionUsers, func(r models.Record) bool {
		return strings.ToLower(strings.TrimSpace(r.Str("email"))) == want
	})
}
