package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"medtrack-go/internal/config"
	"medtrack-go/internal/db"
	categoriesdomain "medtrack-go/internal/domain/categories"
	medicinesdomain "medtrack-go/internal/domain/medicines"
	alertsrepo "medtrack-go/internal/repository/postgres/alerts"
	categoriesrepo "medtrack-go/internal/repository/postgres/categories"
	medicinesrepo "medtrack-go/internal/repository/postgres/medicines"
	"medtrack-go/pkg/logger"
)

const usage = `usage: medtrack-cli <command> [flags]

commands:
  category add --name NAME
  category list
  medicine add --name NAME --expiry YYYY-MM-DD --category NAME [--quantity N]
  medicine list
  medicine expiring [--days N]
  medicine delete-expired
  alert due
  alert pending
  alert sent --id ID
`

type cli struct {
	categories *categoriesdomain.Service
	medicines  *medicinesdomain.Service
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	log := logger.NewFromEnv()

	cfg, err := config.Load(log)
	if err != nil {
		fatal(err)
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		fatal(err)
	}
	defer func() {
		if sqlDB, err := dbConn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := db.Migrate(dbConn); err != nil {
		fatal(err)
	}

	categoriesService := categoriesdomain.NewService(categoriesrepo.NewPostgres(dbConn))
	medicinesService := medicinesdomain.NewServiceWithPolicy(
		medicinesrepo.NewPostgres(dbConn),
		alertsrepo.NewPostgres(dbConn),
		categoriesService,
		medicinesdomain.AlertPolicy{
			LeadDays:     cfg.Alerts.LeadDays,
			ReuseOnMerge: cfg.Alerts.OnMerge == config.OnMergeReuse,
		},
	)

	c := &cli{categories: categoriesService, medicines: medicinesService}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.run(ctx, os.Args[1], os.Args[2], os.Args[3:]); err != nil {
		fatal(err)
	}
}

func (c *cli) run(ctx context.Context, command, action string, args []string) error {
	switch command + " " + action {
	case "category add":
		return c.addCategory(ctx, args)
	case "category list":
		return c.listCategories(ctx)
	case "medicine add":
		return c.addMedicine(ctx, args)
	case "medicine list":
		return c.listMedicines(ctx)
	case "medicine expiring":
		return c.listExpiring(ctx, args)
	case "medicine delete-expired":
		return c.deleteExpired(ctx)
	case "alert due":
		return c.listDueAlerts(ctx)
	case "alert pending":
		return c.listPendingAlerts(ctx)
	case "alert sent":
		return c.markAlertSent(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command+" "+action)
	}
}

func (c *cli) addCategory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("category add", flag.ExitOnError)
	name := fs.String("name", "", "category name")
	_ = fs.Parse(args)

	category, err := c.categories.AddCategory(ctx, *name)
	if err != nil {
		return err
	}
	return printJSON(category)
}

func (c *cli) listCategories(ctx context.Context) error {
	items, err := c.categories.ListCategories(ctx)
	if err != nil {
		return err
	}
	return printJSON(items)
}

func (c *cli) addMedicine(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("medicine add", flag.ExitOnError)
	name := fs.String("name", "", "medicine name")
	expiry := fs.String("expiry", "", "expiry date, YYYY-MM-DD")
	categoryName := fs.String("category", "", "category name, created when missing")
	quantity := fs.Int("quantity", 1, "quantity to add")
	_ = fs.Parse(args)

	expiryDate, err := time.Parse("2006-01-02", *expiry)
	if err != nil {
		return fmt.Errorf("expiry must be YYYY-MM-DD: %w", err)
	}

	category, err := c.categories.AddCategory(ctx, *categoryName)
	if err != nil {
		return err
	}

	medicine, err := c.medicines.AddMedicine(ctx, medicinesdomain.AddMedicineInput{
		Name:       *name,
		ExpiryDate: expiryDate,
		CategoryID: category.ID,
		Quantity:   *quantity,
	})
	if err != nil {
		return err
	}
	return printJSON(medicine)
}

func (c *cli) listMedicines(ctx context.Context) error {
	items, err := c.medicines.ListMedicines(ctx)
	if err != nil {
		return err
	}
	return printJSON(items)
}

func (c *cli) listExpiring(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("medicine expiring", flag.ExitOnError)
	days := fs.Int("days", medicinesdomain.ExpiringSoonWindowDays, "window size in days")
	_ = fs.Parse(args)

	items, err := c.medicines.ExpiringWithin(ctx, *days)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Printf("No medicines expiring in the next %d days.\n", *days)
		return nil
	}
	return printJSON(items)
}

func (c *cli) deleteExpired(ctx context.Context) error {
	cleared, err := c.medicines.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if len(cleared) == 0 {
		fmt.Println("No expired medicines to delete.")
		return nil
	}
	return printJSON(cleared)
}

func (c *cli) listDueAlerts(ctx context.Context) error {
	items, err := c.medicines.DueAlerts(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No due alerts.")
		return nil
	}
	return printJSON(items)
}

func (c *cli) listPendingAlerts(ctx context.Context) error {
	items, err := c.medicines.PendingAlerts(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No pending alerts.")
		return nil
	}
	return printJSON(items)
}

func (c *cli) markAlertSent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("alert sent", flag.ExitOnError)
	alertID := fs.String("id", "", "alert id")
	_ = fs.Parse(args)

	if err := c.medicines.MarkAlertSent(ctx, *alertID); err != nil {
		return err
	}
	fmt.Println("Alert marked as sent.")
	return nil
}

func printJSON(value any) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
