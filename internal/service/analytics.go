package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/shoppulse/internal/analytics"
	"github.com/guttosm/shoppulse/internal/cache"
	"github.com/guttosm/shoppulse/internal/domain/dto"
	"github.com/guttosm/shoppulse/internal/domain/models"
	"github.com/guttosm/shoppulse/internal/logger"
	"github.com/guttosm/shoppulse/internal/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService is the single entry point for every report.
//
// Date arguments are calendar dates; see NormalizeWindow. Absence of data is
// never an error: operations return empty slices or zero scalars.
type AnalyticsService interface {
	SalesByCategory(ctx context.Context, startDate, endDate time.Time) ([]dto.CategorySales, error)
	TopSellingProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]dto.RankedProduct, error)
	DailySales(ctx context.Context, startDate, endDate time.Time) ([]dto.DailySales, error)
	TotalSales(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, error)

	InventoryStatus(ctx context.Context) ([]dto.InventoryStatus, error)
	LowStockProducts(ctx context.Context, threshold int) ([]dto.InventoryStatus, error)

	ActivitySummary(ctx context.Context, startDate, endDate time.Time) ([]dto.ActivitySummary, error)
	MostViewedProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]dto.RankedProduct, error)
	UniqueUsers(ctx context.Context, startDate, endDate time.Time) (int64, error)

	Overview(ctx context.Context, startDate, endDate time.Time, threshold int) (*dto.Overview, error)
}

type analyticsService struct {
	products   storage.ProductReader
	sales      storage.SaleReader
	activities storage.ActivityReader
	store      cache.Store
}

// NewAnalyticsService composes the record providers with the aggregation engine.
//
// Parameters:
//   - products, sales, activities: record providers, usually the postgres repositories.
//   - store: memoization store; nil disables memoization (cache.Noop).
//
// Returns:
//   - AnalyticsService: every operation normalizes its window to whole UTC days
//     and caches its result under a key built from the operation and parameters.
//
// Example:
//
//	svc := service.NewAnalyticsService(products, sales, activities, cache.NewMemory(10*time.Minute, 1000))
func NewAnalyticsService(products storage.ProductReader, sales storage.SaleReader, activities storage.ActivityReader, store cache.Store) AnalyticsService {
	if store == nil {
		store = cache.NewNoop()
	}
	return &analyticsService{products: products, sales: sales, activities: activities, store: store}
}

func (s *analyticsService) SalesByCategory(ctx context.Context, startDate, endDate time.Time) ([]dto.CategorySales, error) {
	start, end := NormalizeWindow(startDate, endDate)
	key := cache.Key("salesByCategory", start, end)
	return memoize(ctx, s.store, key, func(ctx context.Context) ([]dto.CategorySales, error) {
		logger.L().Info().Time("start", start).Time("end", end).Msg("fetching sales by category")
		sales, lookup, err := s.salesWithProducts(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("sales by category: %w", err)
		}
		return analytics.GroupSalesByCategory(sales, lookup), nil
	})
}

func (s *analyticsService) TopSellingProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]dto.RankedProduct, error) {
	start, end := NormalizeWindow(startDate, endDate)
	key := cache.Key("topProducts", start, end, limit)
	return memoize(ctx, s.store, key, func(ctx context.Context) ([]dto.RankedProduct, error) {
		logger.L().Info().Time("start", start).Time("end", end).Int("limit", limit).Msg("fetching top selling products")
		sales, lookup, err := s.salesWithProducts(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("top selling products: %w", err)
		}
		return analytics.RankProductsByQuantity(sales, lookup, limit), nil
	})
}

func (s *analyticsService) DailySales(ctx context.Context, startDate, endDate time.Time) ([]dto.DailySales, error) {
	start, end := NormalizeWindow(startDate, endDate)
	key := cache.Key("dailySales", start, end)
	return memoize(ctx, s.store, key, func(ctx context.Context) ([]dto.DailySales, error) {
		logger.L().Info().Time("start", start).Time("end", end).Msg("fetching daily sales")
		sales, err := s.sales.FindBetween(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("daily sales: %w", err)
		}
		return analytics.DailySalesSeries(sales), nil
	})
}

func (s *analyticsService) TotalSales(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, error) {
	start, end := NormalizeWindow(startDate, endDate)
	key := cache.Key("totalSales", start, end)
	return memoize(ctx, s.store, key, func(ctx context.Context) (decimal.Decimal, error) {
		logger.L().Info().Time("start", start).Time("end", end).Msg("fetching total sales")
		sales, err := s.sales.FindBetween(ctx, start, end)
		if err != nil {
			return decimal.Zero, fmt.Errorf("total sales: %w", err)
		}
		return analytics.SumTotalAmount(sales), nil
	})
}

func (s *analyticsService) InventoryStatus(ctx context.Context) ([]dto.InventoryStatus, error) {
	return memoize(ctx, s.store, cache.Key("inventoryStatus"), func(ctx context.Context) ([]dto.InventoryStatus, error) {
		logger.L().Info().Msg("fetching inventory status")
		products, err := s.products.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("inventory status: %w", err)
		}
		return analytics.ClassifyInventory(products), nil
	})
}

// LowStockProducts lists products below threshold. Every row is tagged LOW
// regardless of where its quantity falls in the classification bands.
func (s *analyticsService) LowStockProducts(ctx context.Context, threshold int) ([]dto.InventoryStatus, error) {
	return memoize(ctx, s.store, cache.Key("lowStock", threshold), func(ctx context.Context) ([]dto.InventoryStatus, error) {
		logger.L().Info().Int("threshold", threshold).Msg("fetching low stock products")
		products, err := s.products.FindLowStock(ctx, threshold)
		if err != nil {
			return nil, fmt.Errorf("low stock products: %w", err)
		}
		return analytics.FilterLowStock(products, threshold), nil
	})
}

func (s *analyticsService) ActivitySummary(ctx context.Context, startDate, endDate time.Time) ([]dto.ActivitySummary, error) {
	start, end := NormalizeWindow(startDate, endDate)
	key := cache.Key("activitySummary", start, end)
	return memoize(ctx, s.store, key, func(ctx context.Context) ([]dto.ActivitySummary, error) {
		logger.L().Info().Time("start", start).Time("end", end).Msg("fetching user activity summary")
		activities, err := s.activities.FindBetween(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("activity summary: %w", err)
		}
		return analytics.SummarizeActivityByType(activities), nil
	})
}

func (s *analyticsService) MostViewedProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]dto.RankedProduct, error) {
	start, end := NormalizeWindow(startDate, endDate)
	key := cache.Key("mostViewed", start, end, limit)
	return memoize(ctx, s.store, key, func(ctx context.Context) ([]dto.RankedProduct, error) {
		logger.L().Info().Time("start", start).Time("end", end).Int("limit", limit).Msg("fetching most viewed products")
		activities, err := s.activities.FindBetween(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("most viewed products: %w", err)
		}
		lookup, err := s.lookup(ctx, analytics.ReferencedProductIDs(activities))
		if err != nil {
			return nil, fmt.Errorf("most viewed products: %w", err)
		}
		return analytics.RankViewedProducts(activities, lookup, limit), nil
	})
}

func (s *analyticsService) UniqueUsers(ctx context.Context, startDate, endDate time.Time) (int64, error) {
	start, end := NormalizeWindow(startDate, endDate)
	key := cache.Key("uniqueUsers", start, end)
	return memoize(ctx, s.store, key, func(ctx context.Context) (int64, error) {
		logger.L().Info().Time("start", start).Time("end", end).Msg("fetching unique users")
		activities, err := s.activities.FindBetween(ctx, start, end)
		if err != nil {
			return 0, fmt.Errorf("unique users: %w", err)
		}
		return analytics.CountUniqueUsers(activities), nil
	})
}

// Overview gathers the dashboard headline figures. Each figure goes through
// its own memoized operation, so a warm cache answers without any fetch.
func (s *analyticsService) Overview(ctx context.Context, startDate, endDate time.Time, threshold int) (*dto.Overview, error) {
	start, end := NormalizeWindow(startDate, endDate)
	out := &dto.Overview{StartDate: dto.NewDate(start), EndDate: dto.NewDate(end)}

	var categories []dto.CategorySales
	var lowStock []dto.InventoryStatus

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.TotalSales(gctx, start, end)
		out.TotalSales = total
		return err
	})
	g.Go(func() error {
		users, err := s.UniqueUsers(gctx, start, end)
		out.UniqueUsers = users
		return err
	})
	g.Go(func() error {
		var err error
		lowStock, err = s.LowStockProducts(gctx, threshold)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.SalesByCategory(gctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}

	out.LowStockCount = len(lowStock)
	if len(categories) > 0 {
		top := categories[0]
		out.TopCategory = &top
	}
	return out, nil
}

func (s *analyticsService) salesWithProducts(ctx context.Context, start, end time.Time) ([]models.Sale, models.ProductLookup, error) {
	sales, err := s.sales.FindBetween(ctx, start, end)
	if err != nil {
		return nil, nil, err
	}
	lookup, err := s.lookup(ctx, analytics.SoldProductIDs(sales))
	if err != nil {
		return nil, nil, err
	}
	return sales, lookup, nil
}

func (s *analyticsService) lookup(ctx context.Context, ids []int64) (models.ProductLookup, error) {
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return models.NewProductLookup(products), nil
}
