package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/guttosm/shoppulse/internal/domain/models"
)

// ActivityReader supplies the user activities of a timestamp window.
type ActivityReader interface {
	FindBetween(ctx context.Context, start, end time.Time) ([]models.UserActivity, error)
}

// ActivityRepository adds the bulk load used by the seeder.
type ActivityRepository interface {
	ActivityReader
	InsertActivitiesBatch(ctx context.Context, activities []models.UserActivity) error
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

var activityColumns = []string{"id", "user_id", "activity_type", "product_id", "activity_timestamp", "ip_address", "user_agent"}

// FindBetween returns activities with start <= activity_timestamp <= end, oldest first.
func (r *activityRepository) FindBetween(ctx context.Context, start, end time.Time) ([]models.UserActivity, error) {
	b := psql.Select(activityColumns...).
		From("user_activities").
		Where(squirrel.Expr("activity_timestamp BETWEEN ? AND ?", start, end)).
		OrderBy("activity_timestamp ASC", "id ASC")

	rows, err := query(ctx, r.db, b)
	if err != nil {
		return nil, fmt.Errorf("query user activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	activities := make([]models.UserActivity, 0)
	for rows.Next() {
		var a models.UserActivity
		var product sql.NullInt64
		var ip, agent sql.NullString
		if err := rows.Scan(&a.ID, &a.UserID, &a.ActivityType, &product, &a.Timestamp, &ip, &agent); err != nil {
			return nil, fmt.Errorf("scan user activity: %w", err)
		}
		if product.Valid {
			id := product.Int64
			a.ProductID = &id
		}
		a.IPAddress = ip.String
		a.UserAgent = agent.String
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user activities: %w", err)
	}
	return activities, nil
}

// InsertActivitiesBatch bulk-loads activities; ids come from the table sequence.
func (r *activityRepository) InsertActivitiesBatch(ctx context.Context, activities []models.UserActivity) error {
	columns := activityColumns[1:]
	return copyIn(ctx, r.db, "user_activities", columns, len(activities), func(i int) []any {
		a := activities[i]
		var product any
		if a.ProductID != nil {
			product = *a.ProductID
		}
		return []any{a.UserID, a.ActivityType, product, a.Timestamp, a.IPAddress, a.UserAgent}
	})
}
