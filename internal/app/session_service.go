package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/jafar554/satr-panel/internal/domain"
	"github.com/jafar554/satr-panel/internal/kv"
	"github.com/jafar554/satr-panel/internal/notify"
)

// SessionService tracks the visitor/admin role and persists it so admin
// mode survives a restart while the stored flag remains "true".
type SessionService struct {
	store    kv.Store
	secret   string
	notifier Notifier

	mu    sync.RWMutex
	admin bool
}

// NewSessionService derives the initial role from the persisted flag.
func NewSessionService(ctx context.Context, store kv.Store, secret string, opts ...SessionOption) (*SessionService, error) {
	svc := &SessionService{
		store:    store,
		secret:   secret,
		notifier: nopNotifier{},
	}
	for _, opt := range opts {
		opt(svc)
	}

	value, ok, err := store.Get(ctx, kv.AdminModeKey)
	if err != nil {
		return nil, fmt.Errorf("read admin flag: %w", err)
	}
	svc.admin = ok && value == "true"
	return svc, nil
}

type SessionOption func(*SessionService)

// WithSessionNotifier routes session toasts to n.
func WithSessionNotifier(n Notifier) SessionOption {
	return func(s *SessionService) {
		s.notifier = n
	}
}

// Admin reports whether the session is in admin mode.
func (s *SessionService) Admin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

// RequireAdmin gates mutating operations.
func (s *SessionService) RequireAdmin() error {
	if !s.Admin() {
		return domain.ErrAdminRequired
	}
	return nil
}

// Login enters admin mode when secret matches. A mismatch reports an error
// and leaves the session in visitor mode.
func (s *SessionService) Login(ctx context.Context, secret string) error {
	if secret != s.secret {
		s.notifier.Notify("كلمة المرور غير صحيحة", notify.LevelError)
		return domain.ErrWrongPassword
	}

	s.mu.Lock()
	s.admin = true
	s.mu.Unlock()

	if err := s.store.Set(ctx, kv.AdminModeKey, "true"); err != nil {
		return fmt.Errorf("persist admin flag: %w", err)
	}
	s.notifier.Notify("تم تسجيل الدخول كمدير", notify.LevelSuccess)
	return nil
}

// Logout unconditionally returns the session to visitor mode.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.admin = false
	s.mu.Unlock()

	if err := s.store.Remove(ctx, kv.AdminModeKey); err != nil {
		return fmt.Errorf("remove admin flag: %w", err)
	}
	s.notifier.Notify("تم تسجيل الخروج من وضع المدير", notify.LevelInfo)
	return nil
}

// Toggle logs out when in admin mode, otherwise prompts for the secret.
// A cancelled prompt changes nothing and is not an error.
func (s *SessionService) Toggle(ctx context.Context, prompter Prompter) error {
	if s.Admin() {
		return s.Logout(ctx)
	}

	secret, ok := prompter.PromptSecret("أدخل كلمة مرور المدير:")
	if !ok {
		return nil
	}
	return s.Login(ctx, secret)
}
