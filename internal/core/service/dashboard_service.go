package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/i18n"
	"github.com/younivent/platform/internal/core/ports"
)

const panelRowLimit = 5

// DashboardService composes the role-specific dashboard document. One
// composer per role; an unrecognised role falls through to the super-admin
// layout without error.
type DashboardService struct {
	repos ports.Repositories
	prefs ports.PreferenceService
	log   zerolog.Logger
}

func NewDashboardService(repos ports.Repositories, prefs ports.PreferenceService, log zerolog.Logger) *DashboardService {
	return &DashboardService{repos: repos, prefs: prefs, log: log}
}

// viewContext carries the per-request preference snapshot every composer needs.
type viewContext struct {
	user     *domain.User
	period   domain.Period
	currency domain.CurrencySettings
	lang     domain.Language
}

func (v viewContext) money(amount float64) (string, error) {
	scaled, err := PeriodValue(amount, v.period)
	if err != nil {
		return "", err
	}
	return FormatAmount(v.currency, scaled), nil
}

func (v viewContext) count(n int) (string, error) {
	scaled, err := PeriodCount(n, v.period)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", scaled), nil
}

func (v viewContext) label(key string) string {
	return i18n.T(v.lang, key)
}

func (s *DashboardService) Compose(ctx context.Context, user *domain.User) (*domain.DashboardView, error) {
	vc := viewContext{
		user:     user,
		period:   s.prefs.Period(ctx, user.ID),
		currency: s.prefs.Currency(ctx, user.ID),
		lang:     s.prefs.Language(ctx, user.ID),
	}

	var (
		view *domain.DashboardView
		err  error
	)
	switch user.Role {
	case domain.RoleClientAdmin:
		view, err = s.clientAdminView(ctx, vc)
	case domain.RoleProvider:
		view, err = s.providerView(ctx, vc)
	case domain.RoleSubAdmin:
		view, err = s.subAdminView(ctx, vc)
	case domain.RoleCustomer:
		view, err = s.customerView(ctx, vc)
	case domain.RoleSuperAdmin:
		view, err = s.superAdminView(ctx, vc)
	default:
		s.log.Warn().Str("role", string(user.Role)).Str("user_id", user.ID).Msg("unrecognised role, serving default dashboard")
		view, err = s.superAdminView(ctx, vc)
	}
	if err != nil {
		return nil, err
	}

	view.Role = user.Role
	view.Period = vc.period
	return view, nil
}

func (s *DashboardService) superAdminView(ctx context.Context, vc viewContext) (*domain.DashboardView, error) {
	clients, err := s.repos.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	providers, err := s.repos.Providers.List(ctx, "")
	if err != nil {
		return nil, err
	}
	txns, err := s.repos.Transactions.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var revenue float64
	active, events := 0, 0
	for _, c := range clients {
		revenue += c.Revenue
		events += c.EventCount
		if c.Status == domain.StatusActive {
			active++
		}
	}

	stats, err := statCards(vc,
		moneyStat{"revenue", "dashboard.revenue", revenue},
		countStat{"clients", "dashboard.clients", active},
		countStat{"events", "dashboard.events", events},
		countStat{"providers", "dashboard.providers", len(providers)},
	)
	if err != nil {
		return nil, err
	}

	sort.Slice(clients, func(i, j int) bool { return clients[i].CreatedAt.After(clients[j].CreatedAt) })
	clientRows := make([]domain.PanelRow, 0, panelRowLimit)
	for _, c := range clients {
		if len(clientRows) == panelRowLimit {
			break
		}
		clientRows = append(clientRows, domain.PanelRow{
			ID:        c.ID,
			Primary:   c.CompanyName,
			Secondary: c.Plan,
			Badge:     c.Status,
		})
	}

	return &domain.DashboardView{
		Navigation: navItems(vc, "dashboard", "clients", "plans", "transactions", "settings"),
		Stats:      stats,
		Panels: []domain.ListPanel{
			{Key: "recent_clients", Title: vc.label("dashboard.recent_clients"), Rows: clientRows},
			{Key: "recent_transactions", Title: vc.label("dashboard.recent_transactions"), Rows: transactionRows(vc, txns)},
		},
		QuickActions: []domain.QuickAction{
			{Key: "export", Label: vc.label("actions.export"), Job: ports.JobExport},
			{Key: "send_email", Label: vc.label("actions.send_email"), Job: ports.JobSendEmail},
		},
	}, nil
}

func (s *DashboardService) clientAdminView(ctx context.Context, vc viewContext) (*domain.DashboardView, error) {
	tenant := vc.user.TenantID
	events, err := s.repos.Events.List(ctx, tenant)
	if err != nil {
		return nil, err
	}
	customers, err := s.repos.Customers.List(ctx, tenant)
	if err != nil {
		return nil, err
	}
	txns, err := s.repos.Transactions.List(ctx, tenant)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, t := range txns {
		if t.Status == "completed" {
			revenue += t.Amount
		}
	}
	sold := 0
	for _, e := range events {
		sold += e.TicketsSold
	}

	stats, err := statCards(vc,
		moneyStat{"revenue", "dashboard.revenue", revenue},
		countStat{"events", "dashboard.events", len(events)},
		countStat{"customers", "dashboard.customers", len(customers)},
		countStat{"tickets_sold", "dashboard.tickets_sold", sold},
	)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardView{
		Navigation: navItems(vc, "dashboard", "events", "providers", "customers", "gateways", "settings"),
		Stats:      stats,
		Panels: []domain.ListPanel{
			{Key: "upcoming_events", Title: vc.label("dashboard.upcoming_events"), Rows: eventRows(events)},
			{Key: "recent_transactions", Title: vc.label("dashboard.recent_transactions"), Rows: transactionRows(vc, txns)},
		},
		QuickActions: []domain.QuickAction{
			{Key: "new_event", Label: vc.label("actions.new_event")},
			{Key: "export", Label: vc.label("actions.export"), Job: ports.JobExport},
		},
	}, nil
}

func (s *DashboardService) providerView(ctx context.Context, vc viewContext) (*domain.DashboardView, error) {
	tenant := vc.user.TenantID
	providers, err := s.repos.Providers.List(ctx, tenant)
	if err != nil {
		return nil, err
	}
	events, err := s.repos.Events.List(ctx, tenant)
	if err != nil {
		return nil, err
	}

	bookings := 0
	for _, p := range providers {
		if p.Email == vc.user.Email {
			bookings = p.Bookings
			break
		}
	}

	stats, err := statCards(vc,
		countStat{"bookings", "dashboard.bookings", bookings},
		countStat{"events", "dashboard.events", len(events)},
	)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardView{
		Navigation: navItems(vc, "dashboard", "events", "settings"),
		Stats:      stats,
		Panels: []domain.ListPanel{
			{Key: "upcoming_events", Title: vc.label("dashboard.upcoming_events"), Rows: eventRows(events)},
		},
		QuickActions: []domain.QuickAction{
			{Key: "save_edit", Label: vc.label("actions.save_edit"), Job: ports.JobSaveEdit},
		},
	}, nil
}

func (s *DashboardService) subAdminView(ctx context.Context, vc viewContext) (*domain.DashboardView, error) {
	tenant := vc.user.TenantID
	customers, err := s.repos.Customers.List(ctx, tenant)
	if err != nil {
		return nil, err
	}
	events, err := s.repos.Events.List(ctx, tenant)
	if err != nil {
		return nil, err
	}

	sold := 0
	for _, e := range events {
		sold += e.TicketsSold
	}

	stats, err := statCards(vc,
		countStat{"customers", "dashboard.customers", len(customers)},
		countStat{"events", "dashboard.events", len(events)},
		countStat{"tickets_sold", "dashboard.tickets_sold", sold},
	)
	if err != nil {
		return nil, err
	}

	customerRows := make([]domain.PanelRow, 0, panelRowLimit)
	for _, c := range customers {
		if len(customerRows) == panelRowLimit {
			break
		}
		customerRows = append(customerRows, domain.PanelRow{
			ID:        c.ID,
			Primary:   c.Name,
			Secondary: c.Email,
			Badge:     c.Status,
		})
	}

	return &domain.DashboardView{
		Navigation: navItems(vc, "dashboard", "events", "customers", "settings"),
		Stats:      stats,
		Panels: []domain.ListPanel{
			{Key: "customers", Title: vc.label("dashboard.customers"), Rows: customerRows},
			{Key: "upcoming_events", Title: vc.label("dashboard.upcoming_events"), Rows: eventRows(events)},
		},
		QuickActions: []domain.QuickAction{
			{Key: "export", Label: vc.label("actions.export"), Job: ports.JobExport},
		},
	}, nil
}

func (s *DashboardService) customerView(ctx context.Context, vc viewContext) (*domain.DashboardView, error) {
	tenant := vc.user.TenantID
	customers, err := s.repos.Customers.List(ctx, tenant)
	if err != nil {
		return nil, err
	}
	events, err := s.repos.Events.List(ctx, tenant)
	if err != nil {
		return nil, err
	}

	tickets := 0
	var spent float64
	for _, c := range customers {
		if c.Email == vc.user.Email {
			tickets = c.Tickets
			spent = c.TotalSpent
			break
		}
	}

	stats, err := statCards(vc,
		countStat{"tickets", "dashboard.tickets_sold", tickets},
		moneyStat{"spent", "dashboard.spent", spent},
	)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardView{
		Navigation: navItems(vc, "dashboard", "tickets", "settings"),
		Stats:      stats,
		Panels: []domain.ListPanel{
			{Key: "upcoming_events", Title: vc.label("dashboard.upcoming_events"), Rows: eventRows(events)},
		},
		QuickActions: nil,
	}, nil
}

// --- composition helpers ---

type moneyStat struct {
	key, labelKey string
	value         float64
}

type countStat struct {
	key, labelKey string
	value         int
}

// statCards renders a mixed list of money and count metrics, period-scaled.
func statCards(vc viewContext, specs ...any) ([]domain.StatCard, error) {
	cards := make([]domain.StatCard, 0, len(specs))
	for _, spec := range specs {
		switch s := spec.(type) {
		case moneyStat:
			v, err := vc.money(s.value)
			if err != nil {
				return nil, err
			}
			cards = append(cards, domain.StatCard{Key: s.key, Label: vc.label(s.labelKey), Value: v})
		case countStat:
			v, err := vc.count(s.value)
			if err != nil {
				return nil, err
			}
			cards = append(cards, domain.StatCard{Key: s.key, Label: vc.label(s.labelKey), Value: v})
		}
	}
	return cards, nil
}

func navItems(vc viewContext, keys ...string) []domain.NavItem {
	items := make([]domain.NavItem, 0, len(keys))
	for _, k := range keys {
		items = append(items, domain.NavItem{
			Key:   k,
			Label: vc.label("nav." + k),
			Path:  "/" + k,
		})
	}
	return items
}

func eventRows(events []domain.Event) []domain.PanelRow {
	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
	rows := make([]domain.PanelRow, 0, panelRowLimit)
	for _, e := range events {
		if len(rows) == panelRowLimit {
			break
		}
		rows = append(rows, domain.PanelRow{
			ID:        e.ID,
			Primary:   e.Name,
			Secondary: e.Venue,
			Badge:     e.Status,
		})
	}
	return rows
}

func transactionRows(vc viewContext, txns []domain.Transaction) []domain.PanelRow {
	sort.Slice(txns, func(i, j int) bool { return txns[i].CreatedAt.After(txns[j].CreatedAt) })
	rows := make([]domain.PanelRow, 0, panelRowLimit)
	for _, t := range txns {
		if len(rows) == panelRowLimit {
			break
		}
		rows = append(rows, domain.PanelRow{
			ID:        t.ID,
			Primary:   FormatAmount(vc.currency, t.Amount),
			Secondary: t.Gateway,
			Badge:     t.Status,
		})
	}
	return rows
}
