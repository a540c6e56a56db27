package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
)

// Storage key prefixes, shared with the web client's local-storage key space.
const (
	keyCurrency = "currencySettings"
	keyLanguage = "language"
	keyPeriod   = "selectedPeriod"
	keyTheme    = "theme"
)

// PreferenceService persists per-user display settings through a KVStore.
// Corrupt persisted values are logged and replaced by defaults, never
// surfaced to the caller.
type PreferenceService struct {
	kv  ports.KVStore
	log zerolog.Logger

	mu      sync.Mutex
	subs    map[int]func(domain.PreferenceChange)
	nextSub int
}

func NewPreferenceService(kv ports.KVStore, log zerolog.Logger) *PreferenceService {
	return &PreferenceService{
		kv:   kv,
		log:  log,
		subs: make(map[int]func(domain.PreferenceChange)),
	}
}

func prefKey(prefix, userID string) string {
	return prefix + ":" + userID
}

func (s *PreferenceService) Currency(ctx context.Context, userID string) domain.CurrencySettings {
	raw, err := s.kv.Get(ctx, prefKey(keyCurrency, userID))
	if err != nil {
		return domain.DefaultCurrency
	}
	var cs domain.CurrencySettings
	if err := json.Unmarshal(raw, &cs); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("corrupt currency settings, using defaults")
		return domain.DefaultCurrency
	}
	if cs.Validate() != nil {
		return domain.DefaultCurrency
	}
	return cs
}

func (s *PreferenceService) SetCurrency(ctx context.Context, userID string, cs domain.CurrencySettings) error {
	if err := cs.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(cs)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, prefKey(keyCurrency, userID), raw, 0); err != nil {
		return err
	}
	s.notify(domain.PreferenceChange{UserID: userID, Kind: domain.PrefCurrency})
	return nil
}

func (s *PreferenceService) Language(ctx context.Context, userID string) domain.Language {
	raw, err := s.kv.Get(ctx, prefKey(keyLanguage, userID))
	if err != nil {
		return domain.DefaultLanguage
	}
	lang := domain.Language(strings.TrimSpace(string(raw)))
	if !lang.Supported() {
		return domain.DefaultLanguage
	}
	return lang
}

func (s *PreferenceService) SetLanguage(ctx context.Context, userID string, lang domain.Language) error {
	if !lang.Supported() {
		return domain.ErrInvalidPreference
	}
	if err := s.kv.Set(ctx, prefKey(keyLanguage, userID), []byte(lang), 0); err != nil {
		return err
	}
	s.notify(domain.PreferenceChange{UserID: userID, Kind: domain.PrefLanguage})
	return nil
}

func (s *PreferenceService) Period(ctx context.Context, userID string) domain.Period {
	raw, err := s.kv.Get(ctx, prefKey(keyPeriod, userID))
	if err != nil {
		return domain.DefaultPeriod
	}
	p := domain.Period(strings.TrimSpace(string(raw)))
	if !p.Valid() {
		return domain.DefaultPeriod
	}
	return p
}

func (s *PreferenceService) SetPeriod(ctx context.Context, userID string, p domain.Period) error {
	if !p.Valid() {
		return domain.ErrUnknownPeriod
	}
	if err := s.kv.Set(ctx, prefKey(keyPeriod, userID), []byte(p), 0); err != nil {
		return err
	}
	s.notify(domain.PreferenceChange{UserID: userID, Kind: domain.PrefPeriod})
	return nil
}

func (s *PreferenceService) Theme(ctx context.Context, userID string) domain.Theme {
	raw, err := s.kv.Get(ctx, prefKey(keyTheme, userID))
	if err != nil {
		return domain.DefaultTheme
	}
	t := domain.Theme(strings.TrimSpace(string(raw)))
	if !t.Valid() {
		return domain.DefaultTheme
	}
	return t
}

func (s *PreferenceService) SetTheme(ctx context.Context, userID string, t domain.Theme) error {
	if !t.Valid() {
		return domain.ErrInvalidPreference
	}
	if err := s.kv.Set(ctx, prefKey(keyTheme, userID), []byte(t), 0); err != nil {
		return err
	}
	s.notify(domain.PreferenceChange{UserID: userID, Kind: domain.PrefTheme})
	return nil
}

// FormatCurrency renders amount with the user's settings as a plain
// concatenation of symbol, optional separator, grouped number and ISO code.
func (s *PreferenceService) FormatCurrency(ctx context.Context, userID string, amount float64) string {
	return FormatAmount(s.Currency(ctx, userID), amount)
}

func (s *PreferenceService) Subscribe(fn func(domain.PreferenceChange)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *PreferenceService) notify(change domain.PreferenceChange) {
	s.mu.Lock()
	fns := make([]func(domain.PreferenceChange), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(change)
	}
}
