package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/helixcrm/console/internal/analytics"
	"github.com/helixcrm/console/internal/appstate"
	"github.com/helixcrm/console/internal/crmapi"
	"github.com/helixcrm/console/internal/forms"
	"github.com/helixcrm/console/internal/invoice"
	"github.com/helixcrm/console/internal/modal"
	"github.com/helixcrm/console/internal/notify"
	"github.com/helixcrm/console/internal/passwords"
	"github.com/helixcrm/console/internal/records"
	"github.com/helixcrm/console/pkg/config"
	"github.com/helixcrm/console/pkg/enums"
	"github.com/helixcrm/console/pkg/logger"
	"github.com/helixcrm/console/pkg/store"
	"github.com/helixcrm/console/pkg/visibility"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "console"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "console",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	st, err := store.Open(ctx, cfg.Store, logg)
	if err != nil {
		logg.Error(ctx, "failed to open state store", err)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logg.Error(ctx, "error closing state store", err)
		}
	}()

	api, err := crmapi.NewClient(cfg.API)
	if err != nil {
		logg.Error(ctx, "failed to build crm api client", err)
		os.Exit(1)
	}

	resetter := passwords.NewResetter(api, cfg.Password, logg)

	state := appstate.New(st, api, logg)
	if err := state.Rehydrate(ctx); err != nil {
		logg.Error(ctx, "failed to rehydrate state", err)
		os.Exit(1)
	}
	logg.Info(logg.WithField(ctx, "theme", state.Theme().String()), "state rehydrated")

	notifications := notify.NewCenter(cfg.Notify)

	if err := runDemo(ctx, cfg, logg, state, resetter, notifications); err != nil {
		logg.Error(ctx, "demo session failed", err)
		os.Exit(1)
	}
}

// runDemo drives a scripted session through the console state core the way
// the UI would: sign in, browse and mutate the employee table, edit an
// invoice, read the dashboard summary, sign out.
func runDemo(ctx context.Context, cfg *config.Config, logg *logger.Logger, state *appstate.State, resetter *passwords.Resetter, notifications *notify.Center) error {
	if !state.SignedIn() {
		if _, err := state.SignIn(ctx, "dana@example.com", "Str0ng!pass", true); err != nil {
			notifications.FromError(err)
			return err
		}
		notifications.Success("signed in")
	}

	role, err := enums.ParseRole(state.Session().User.Role)
	if err != nil {
		return err
	}
	logg.Info(logg.WithField(ctx, "sections", len(visibility.NavFor(role))), "navigation resolved")

	table := records.NewTable()
	if err := table.Collection().Seed(seedRecords()); err != nil {
		return err
	}

	table.SetQuery("sales")
	table.CycleSort(records.SortKeyName)
	visible := table.Visible()
	logg.Info(logg.WithField(ctx, "visible", len(visible)), "filtered employee table")

	table.SelectAllVisible()
	logg.Info(logg.WithField(ctx, "selected", table.Selection().Count()), "selected filtered rows")
	table.Selection().Clear()
	table.ResetFilters()

	modals := modal.NewManager()
	if target, err := table.Collection().Get(3); err == nil {
		ctrl := modals.RequestDelete(target)
		if _, err := ctrl.Confirm(); err == nil {
			// Employee mutations have no backing endpoint yet; the configured
			// latency stands in for the round trip.
			time.Sleep(cfg.API.SimulatedLatency)
			if err := table.Delete(target.ID); err == nil {
				notifications.Success("employee deleted")
			}
		}
	}

	decline := forms.DeclineLeadForm{Reason: "budget was cut for this quarter"}
	if err := forms.Validate(decline); err != nil {
		return err
	}
	if _, err := table.DeclineLead(5, decline.Reason); err != nil {
		return err
	}

	// Reset a teammate's password; the temp credential is shown once.
	resets, err := resetter.ResetAll(ctx, []int64{2})
	if err != nil {
		notifications.FromError(err)
	}
	for _, reset := range resets {
		logg.Info(logg.WithRecordID(ctx, reset.UserID), "temporary password issued")
	}

	eng := invoice.NewEngine()
	item := eng.Items()[0]
	_ = eng.UpdateItem(item.ID, invoice.FieldDescription, "Quarterly retainer")
	_ = eng.UpdateItem(item.ID, invoice.FieldQuantity, "2")
	_ = eng.UpdateItem(item.ID, invoice.FieldUnitPrice, "50.00")
	eng.SetTaxRate("10")
	totals := eng.Totals()
	logg.Info(logg.WithFields(ctx, map[string]any{
		"subtotal": totals.Subtotal.String(),
		"tax":      totals.TaxAmount.String(),
		"total":    totals.Total.String(),
	}), "invoice totals")

	summary := analytics.Build(table.Collection().All(), []*invoice.Engine{eng}, state.Session().SignedInAt)
	logg.Info(logg.WithFields(ctx, map[string]any{
		"employees": summary.TotalEmployees,
		"leads":     summary.TotalLeads,
		"revenue":   summary.InvoiceRevenue.String(),
	}), "dashboard summary")

	mode, err := state.ToggleTheme(ctx)
	if err != nil {
		return err
	}
	logg.Info(logg.WithField(ctx, "theme", mode.String()), "theme toggled")

	for _, n := range notifications.Active() {
		logg.Info(logg.WithField(ctx, "kind", string(n.Kind)), n.Message)
	}

	return state.SignOut(ctx)
}

func seedRecords() []records.Record {
	return []records.Record{
		{ID: 1, Kind: enums.EntityKindEmployee, FirstName: "Dana", LastName: "Reyes", Email: "dana@example.com", Position: "Operations Lead", Role: enums.RoleAdmin, TimeZone: "America/Mexico_City"},
		{ID: 2, Kind: enums.EntityKindEmployee, FirstName: "Luis", LastName: "Ortega", Email: "luis@example.com", Position: "Account Manager", Role: enums.RoleStaff},
		{ID: 3, Kind: enums.EntityKindEmployee, FirstName: "Mara", LastName: "Ibanez", Email: "mara@example.com", Position: "Sales Associate", Role: enums.RoleStaff},
		{ID: 4, Kind: enums.EntityKindEmployee, FirstName: "Tomas", LastName: "Vega", Email: "tomas@example.com", Position: "Head of Sales", Role: enums.RoleManagement},
		{ID: 5, Kind: enums.EntityKindLead, FirstName: "Iris", LastName: "Calloway", Email: "iris@prospect.example", Position: "Procurement", Status: enums.LeadStatusContacted},
		{ID: 6, Kind: enums.EntityKindLead, FirstName: "Oren", LastName: "Fields", Email: "oren@prospect.example", Status: enums.LeadStatusNew},
		{ID: 7, Kind: enums.EntityKindClient, FirstName: "Selma", LastName: "Duarte", Email: "selma@client.example"},
	}
}
