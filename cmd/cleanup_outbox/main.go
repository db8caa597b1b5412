package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/inventory-service/internal/models/m_outbox"
	"github.com/light-bringer/inventory-service/internal/pkg/config"
)

func main() {
	app := &cli.App{
		Name:  "cleanup-outbox",
		Usage: "delete processed outbox events past their retention window",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "database",
				Usage: "full Spanner database path (overrides INVENTORY_SPANNER_DATABASE)",
			},
			&cli.IntFlag{
				Name:  "completed-retention",
				Value: 30,
				Usage: "retention days for completed events",
			},
			&cli.IntFlag{
				Name:  "failed-retention",
				Value: 90,
				Usage: "retention days for failed events",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "report what would be deleted without deleting",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("cleanup failed")
	}
}

func run(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db := cfg.SpannerDatabase
	if v := c.String("database"); v != "" {
		db = v
	}

	client, err := spanner.NewClient(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	completedCutoff := now.AddDate(0, 0, -c.Int("completed-retention"))
	failedCutoff := now.AddDate(0, 0, -c.Int("failed-retention"))

	logrus.WithFields(logrus.Fields{
		"completed_cutoff": completedCutoff.Format(time.RFC3339),
		"failed_cutoff":    failedCutoff.Format(time.RFC3339),
		"dry_run":          c.Bool("dry-run"),
	}).Info("starting outbox cleanup")

	if c.Bool("dry-run") {
		return dryRun(ctx, client, completedCutoff, failedCutoff)
	}
	return cleanup(ctx, client, completedCutoff, failedCutoff)
}

func cutoffParams(completedCutoff, failedCutoff time.Time) map[string]interface{} {
	return map[string]interface{}{
		"completedCutoff": completedCutoff,
		"failedCutoff":    failedCutoff,
	}
}

const cutoffPredicate = `(status = 'completed' AND processed_at < @completedCutoff)
	   OR (status = 'failed' AND processed_at < @failedCutoff)`

func dryRun(ctx context.Context, client *spanner.Client, completedCutoff, failedCutoff time.Time) error {
	stmt := spanner.Statement{
		SQL: `SELECT status, COUNT(*) FROM ` + m_outbox.TableName + `
		WHERE ` + cutoffPredicate + `
		GROUP BY status`,
		Params: cutoffParams(completedCutoff, failedCutoff),
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	total := int64(0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to query events: %w", err)
		}

		var status string
		var count int64
		if err := row.Columns(&status, &count); err != nil {
			return fmt.Errorf("failed to parse row: %w", err)
		}

		logrus.WithFields(logrus.Fields{"status": status, "count": count}).Info("would delete")
		total += count
	}

	logrus.WithField("total", total).Info("dry run complete, nothing deleted")
	return nil
}

func cleanup(ctx context.Context, client *spanner.Client, completedCutoff, failedCutoff time.Time) error {
	stmt := spanner.Statement{
		SQL:    `DELETE FROM ` + m_outbox.TableName + ` WHERE ` + cutoffPredicate,
		Params: cutoffParams(completedCutoff, failedCutoff),
	}

	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		deleted, err := txn.Update(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		logrus.WithField("deleted", deleted).Info("deleted old events")
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}
	return nil
}
