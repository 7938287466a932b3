package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/storefront/settlements.api/config"
	"github.com/storefront/settlements.api/dao"
	"github.com/storefront/settlements.api/metrics"
	"github.com/storefront/settlements.api/models"
	"github.com/storefront/settlements.api/transformers"
	"golang.org/x/sync/errgroup"
)

// StockRestorationService re-drives the inventory increments that refunded
// returns still owe
type StockRestorationService struct {
	DAO       dao.DAO
	Config    config.Config
	Inventory InventoryService
	Now       func() time.Time
}

func (service *StockRestorationService) now() time.Time {
	if service.Now != nil {
		return service.Now()
	}
	return defaultClock()
}

// ProcessPendingStockRestorations retries every pending restoration in one
// batch, using a bounded number of concurrent workers
func (service *StockRestorationService) ProcessPendingStockRestorations(ctx context.Context) (*models.StockRestorationSummary, ResponseType, error) {
	pending, err := service.DAO.GetPendingStockRestorations(ctx, service.Config.RestorationBatchSize)
	if err != nil {
		err = fmt.Errorf("error getting pending stock restorations: [%w]", err)
		return nil, responseTypeFor(err), err
	}

	summary := &models.StockRestorationSummary{Processed: len(pending)}
	if len(pending) == 0 {
		return summary, Success, nil
	}

	workers := service.Config.RestorationWorkers
	if workers < 1 {
		workers = 1
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, dbResource := range pending {
		ret := transformers.ReturnRequestTransformer{}.TransformToDomain(dbResource)

		g.Go(func() error {
			// a cancelled batch leaves the remaining restorations pending for the next run
			if err := gctx.Err(); err != nil {
				return err
			}

			restoreErr := restoreStock(gctx, service.DAO, service.Inventory, ret, service.now)

			mu.Lock()
			defer mu.Unlock()
			if restoreErr != nil {
				summary.Failed = append(summary.Failed, ret.ID())
				return nil
			}
			summary.Completed++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		err = fmt.Errorf("processing pending stock restorations stopped: [%w]", err)
		log.Error(err, log.Data{"processed": summary.Processed, "completed": summary.Completed})
		return summary, responseTypeFor(err), err
	}

	log.Info("processed pending stock restorations", log.Data{
		"processed": summary.Processed,
		"completed": summary.Completed,
		"failed":    len(summary.Failed),
	})

	return summary, Success, nil
}

// restoreStock sends the pending increments of a refunded return to inventory
// and saves the outcome. It returns the inventory or save error, if any.
func restoreStock(ctx context.Context, store dao.DAO, inventory InventoryService, ret *models.ReturnRequest, now func() time.Time) error {
	adjustments := ret.PendingStockAdjustments()
	if len(adjustments) == 0 {
		return nil
	}

	restoreErr := inventory.IncrementStock(ctx, ret.ID(), adjustments)
	if restoreErr != nil {
		metrics.RecordStockRestoration(metrics.OutcomeError)
		log.Error(fmt.Errorf("error restoring stock for return request: [%w]", restoreErr), log.Data{"return_id": ret.ID()})
		ret.RecordStockRestorationFailure(restoreErr, now())
	} else {
		metrics.RecordStockRestoration(metrics.OutcomeSuccess)
		ret.CompleteStockRestoration(now())
	}

	if err := saveReturn(ctx, store, ret); err != nil {
		log.Error(fmt.Errorf("error saving stock restoration outcome: [%w]", err), log.Data{"return_id": ret.ID()})
		if restoreErr == nil {
			return err
		}
	}

	return restoreErr
}
