// Package session is a mock identity provider: users log in by username
// and role against a fixed directory, and the current identity is kept in
// the key/value backend so it survives restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"beatboost/internal/core/domain"
	"beatboost/internal/core/port"
)

// Key is where the current identity is stored.
const Key = "tikTokUser"

// Directory returns the fixed set of known users.
func Directory() []domain.Identity {
	return []domain.Identity{
		{ID: 1, Username: "musician1", Name: "John Beats", Role: domain.RoleMusician},
		{ID: 2, Username: "musician2", Name: "Sarah Sounds", Role: domain.RoleMusician},
		{ID: 3, Username: "creator1", Name: "TikTok Prince", Role: domain.RoleCreator},
		{ID: 4, Username: "creator2", Name: "Dance Queen", Role: domain.RoleCreator},
	}
}

// Provider implements port.Session. It holds a single session for the whole
// process, not one per client: after a Login every HTTP caller acts as that
// identity until the next Login or Logout. It is a demo login with a fixed
// user directory and no credentials.
type Provider struct {
	kv        port.KeyValue
	directory []domain.Identity
	logger    *slog.Logger
}

func NewProvider(kv port.KeyValue, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{kv: kv, directory: Directory(), logger: logger}
}

// Login looks username up among the users of role and stores the match as
// the current identity.
func (p *Provider) Login(ctx context.Context, username string, role domain.Role) (domain.Identity, error) {
	if !role.Valid() {
		return domain.Identity{}, port.ErrInvalidRole
	}
	user, ok := lo.Find(p.directory, func(u domain.Identity) bool {
		return u.Role == role && u.Username == username
	})
	if !ok {
		return domain.Identity{}, port.ErrInvalidCredentials
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return domain.Identity{}, err
	}
	if err = p.kv.Set(ctx, Key, raw); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", port.ErrPersist, err)
	}
	p.logger.Info("user logged in", slog.Int64("user_id", user.ID), slog.String("role", string(user.Role)))
	return user, nil
}

// Logout forgets the current identity.
func (p *Provider) Logout(ctx context.Context) error {
	if err := p.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("%w: %w", port.ErrPersist, err)
	}
	return nil
}

// Current returns the stored identity.
func (p *Provider) Current(ctx context.Context) (domain.Identity, bool, error) {
	raw, found, err := p.kv.Get(ctx, Key)
	if err != nil || !found {
		return domain.Identity{}, false, err
	}
	var user domain.Identity
	if err = json.Unmarshal(raw, &user); err != nil {
		return domain.Identity{}, false, fmt.Errorf("decode session: %w", err)
	}
	return user, true, nil
}

// IsAuthenticated reports whether someone is logged in.
func (p *Provider) IsAuthenticated(ctx context.Context) bool {
	_, ok, err := p.Current(ctx)
	return err == nil && ok
}
