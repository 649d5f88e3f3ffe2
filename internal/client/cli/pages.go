package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/appointo/internal/client/models"
)

var (
	// ErrLoginRequired: the command needs a signed-in account.
	ErrLoginRequired = errors.New("login required")
	// ErrAdminRequired: the command needs an admin account.
	ErrAdminRequired = errors.New("admin role required")
)

// require checks the in-memory user the way protected pages do: anonymous
// users are refused, and with adminOnly so is every non-admin role.
func (a *App) require(adminOnly bool) (*models.Account, error) {
	if a.user == nil {
		return nil, ErrLoginRequired
	}
	if adminOnly && a.user.Role != models.RoleAdmin {
		return nil, ErrAdminRequired
	}
	return a.user, nil
}

// Services prints the public catalog. No login is needed.
func (a *App) Services(ctx context.Context) error {
	for _, s := range models.ServiceCatalog() {
		fmt.Fprintf(a.out, "%d. %-22s %-11s %3.0f min  $%-4d %.1f\n",
			s.ID, s.Name, s.Category, s.Duration.Minutes(), s.PriceUSD, s.Rating)
		fmt.Fprintf(a.out, "   %s\n", s.Description)
	}
	return nil
}

// Dashboard prints the signed-in account's bookings and profile.
func (a *App) Dashboard(ctx context.Context) error {
	user, err := a.require(false)
	if err != nil {
		return a.fail(ctx, "dashboard", err)
	}

	d := models.NewDashboard(*user)
	fmt.Fprintf(a.out, "Welcome back, %s!\n", d.Account.Name)
	fmt.Fprintf(a.out, "Upcoming: %d  Completed: %d  Pending: %d  Total hours: %.1f\n",
		d.Stats.Upcoming, d.Stats.Completed, d.Stats.Pending, d.Stats.TotalHours)

	fmt.Fprintln(a.out, "Upcoming appointments:")
	for _, ap := range d.Upcoming {
		fmt.Fprintf(a.out, "  %s  %-20s %s\n", ap.StartsAt.Format("2006-01-02 15:04"), ap.Title, ap.Status)
	}

	fmt.Fprintf(a.out, "Account: %s <%s> (%s)\n", d.Account.Name, d.Account.Email, d.Account.Role)
	return nil
}

// Admin prints the account directory. Only admins may use it.
func (a *App) Admin(ctx context.Context) error {
	if _, err := a.require(true); err != nil {
		return a.fail(ctx, "admin", err)
	}

	all, err := a.accounts.List(ctx)
	if err != nil {
		return a.fail(ctx, "admin", err)
	}

	fmt.Fprintf(a.out, "Admin panel: %d accounts\n", len(all))
	for _, acc := range all {
		fmt.Fprintf(a.out, "  %-3s %-20s %-24s %s\n", acc.ID, acc.Name, acc.Email, acc.Role)
	}
	return nil
}
