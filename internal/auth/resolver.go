package auth

import (
	"context" // Context for cache operations
	"errors"  // Error inspection
	"strings" // Email normalisation

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain"  // Importing domain models
	"github.com/MarcoPr4do/Neighlink-Backend/internal/service" // Entity services
	"github.com/MarcoPr4do/Neighlink-Backend/internal/utils"   // Cache and password helpers
)

// ErrUnresolved means no principal matched the credentials or token.
var ErrUnresolved = errors.New("principal not resolved")

// Principal is a resolved administrator or resident. Exactly one of the two
// pointers is set, matching Kind.
type Principal struct {
	Kind          string                `json:"kind"`                    // ADMINISTRADOR or RESIDENTE
	Administrator *domain.Administrator `json:"administrator,omitempty"` // Set for administrators
	Resident      *domain.Resident      `json:"resident,omitempty"`      // Set for residents
}

// Record returns the administrator or resident behind p.
func (p *Principal) Record() any {
	if p.Administrator != nil {
		return p.Administrator
	}
	return p.Resident
}

// Resolver looks principals up through the request's services. Token
// lookups are cached in Redis when a client is configured.
type Resolver struct {
	rdb *redis.Client // Token cache, nil when disabled
}

// NewResolver creates a resolver; rdb may be nil to disable caching.
func NewResolver(rdb *redis.Client) *Resolver {
	return &Resolver{rdb: rdb}
}

// ByCredentials matches email and password against stored users,
// administrators first, then residents.
func (r *Resolver) ByCredentials(svc *service.Services, email, password string) (*Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrUnresolved // Nothing to match
	}
	users, err := svc.Users.ListByEmail(email)
	if err != nil {
		return nil, err
	}
	var matched []domain.User
	for _, u := range users {
		if utils.CheckPassword(u.Password, password) { // Bcrypt comparison
			matched = append(matched, u)
		}
	}
	for _, u := range matched { // Administrators first
		a, err := svc.Administrators.GetByUser(u.ID)
		if err == nil {
			return &Principal{Kind: domain.KindAdministrator, Administrator: a}, nil
		}
		if !errors.Is(err, service.ErrNotFound) {
			return nil, err
		}
	}
	for _, u := range matched { // Then residents
		res, err := svc.Residents.GetByUser(u.ID)
		if err == nil {
			return &Principal{Kind: domain.KindResident, Resident: res}, nil
		}
		if !errors.Is(err, service.ErrNotFound) {
			return nil, err
		}
	}
	return nil, ErrUnresolved
}

// ByToken resolves token according to mode. Credential and None modes never
// resolve a token.
func (r *Resolver) ByToken(ctx context.Context, svc *service.Services, mode Mode, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrUnresolved
	}
	var kinds []string
	switch mode {
	case AdminToken:
		kinds = []string{domain.KindAdministrator}
	case ResidentToken:
		kinds = []string{domain.KindResident}
	case AnyToken:
		kinds = []string{domain.KindAdministrator, domain.KindResident}
	default:
		return nil, ErrUnresolved
	}
	for _, kind := range kinds {
		p, err := r.byTokenKind(ctx, svc, kind, token)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrUnresolved) {
			return nil, err
		}
	}
	return nil, ErrUnresolved
}

func (r *Resolver) byTokenKind(ctx context.Context, svc *service.Services, kind, token string) (*Principal, error) {
	key := utils.TokenCacheKey(kind, token)
	var cached Principal
	found, err := utils.GetCache(ctx, r.rdb, key, &cached)
	if err != nil {
		logrus.WithFields(logrus.Fields{"kind": kind, "error": err.Error()}).Warn("Token cache read failed")
	} else if found {
		return &cached, nil // Cache hit
	}

	p := &Principal{Kind: kind}
	switch kind {
	case domain.KindAdministrator:
		p.Administrator, err = svc.Administrators.GetByToken(token)
	case domain.KindResident:
		p.Resident, err = svc.Residents.GetByToken(token)
	}
	if errors.Is(err, service.ErrNotFound) {
		return nil, ErrUnresolved // Misses are not cached
	}
	if err != nil {
		return nil, err
	}

	if err := utils.SetCache(ctx, r.rdb, key, p, utils.TokenCacheTTL); err != nil {
		logrus.WithFields(logrus.Fields{"kind": kind, "error": err.Error()}).Warn("Token cache write failed")
	}
	return p, nil
}
