package metrics

import (
	"context"
	"log/slog"
	"time"

	"threadline/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm/schema"
)

var (
	tableCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "threadline_table_estimated_count",
		Help: "Estimated record count for a table.",
	}, []string{"table"})
)

type Collector struct {
	Logger *slog.Logger
	DB     core.DB
}

func (c *Collector) Init(_ context.Context) error {
	c.Logger = c.Logger.With("component", "metrics.Collector")
	return nil
}

func (c *Collector) Run(ctx context.Context) error {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.Logger.Debug("Collecting metrics")

			for _, tabler := range []schema.Tabler{
				core.UserModel{},
				core.PostModel{},
				core.CommentModel{},
				core.LikeModel{},
				core.NotificationModel{},
			} {
				if err := c.collectTableEstimatedCount(tabler); err != nil {
					return err
				}
			}
		}
	}
}

func (c *Collector) collectTableEstimatedCount(tabler schema.Tabler) error {
	count, err := c.DB.EstimatedCount(tabler.TableName())
	if err != nil {
		return err
	}
	tableCount.WithLabelValues(tabler.TableName()).Set(float64(count))
	return nil
}
