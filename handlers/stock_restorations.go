package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/storefront/settlements.api/utils"
)

// HandleProcessPendingStockRestorations retries the inventory call for every
// refunded return whose stock has not been restored yet
func HandleProcessPendingStockRestorations(w http.ResponseWriter, req *http.Request) {
	summary, responseType, err := stockRestorationService.ProcessPendingStockRestorations(req.Context())
	if err != nil {
		writeServiceError(w, req, "process pending stock restorations", responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, summary, http.StatusOK)
	log.InfoR(req, "Processed pending stock restorations", log.Data{
		"processed": summary.Processed,
		"completed": summary.Completed,
		"failed":    len(summary.Failed),
	})
}
