package notifier

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"medtrack-go/internal/domain/medicines"
	"medtrack-go/pkg/logger"
)

const scanTimeout = 30 * time.Second

// Notifier runs a scheduled scan over due pending alerts and logs a summary.
// It never transitions alert status and never pushes anything; marking an
// alert Sent stays an explicit API call.
type Notifier struct {
	medicines *medicines.Service
	schedule  string
	log       logger.Logger
	cron      *cron.Cron
}

func New(medicines *medicines.Service, schedule string, log logger.Logger) *Notifier {
	return &Notifier{
		medicines: medicines,
		schedule:  schedule,
		log:       log,
		cron:      cron.New(),
	}
}

func (n *Notifier) Start() error {
	if _, err := n.cron.AddFunc(n.schedule, n.scan); err != nil {
		return err
	}
	n.cron.Start()
	n.log.Info("notifier: started", "schedule", n.schedule)
	return nil
}

func (n *Notifier) Stop() {
	ctx := n.cron.Stop()
	<-ctx.Done()
	n.log.Info("notifier: stopped")
}

func (n *Notifier) scan() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	due, err := n.medicines.DueAlerts(ctx)
	if err != nil {
		n.log.InternalError("notifier: due alert scan failed", err)
		return
	}
	if len(due) == 0 {
		n.log.Debug("notifier: no due alerts")
		return
	}

	for _, alert := range due {
		n.log.Info("notifier: alert due",
			"alert_id", alert.ID,
			"medicine_id", alert.MedicineID,
			"alert_date", alert.AlertDate.Format("2006-01-02"),
		)
	}
	n.log.Info("notifier: scan finished", "due", len(due))
}
