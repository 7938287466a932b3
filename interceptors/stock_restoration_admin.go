package interceptors

import (
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/storefront/settlements.api/helpers"
)

// StockRestorationAdminIntercept allows the re-drive of pending stock
// restorations to elevated API keys and to users holding the admin role.
func StockRestorationAdminIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identityType := helpers.GetAuthorisedIdentityType(r)
		hasAdminRole := helpers.IsRoleAuthorised(r, helpers.AdminStockRestorationRole)

		debugMap := log.Data{
			"identity_type":  identityType,
			"has_admin_role": hasAdminRole,
		}

		switch {
		case identityType == helpers.APIKeyIdentityType && authentication.IsKeyElevatedPrivilegesAuthorised(r):
			next.ServeHTTP(w, r)
		case identityType == helpers.Oauth2IdentityType && hasAdminRole:
			next.ServeHTTP(w, r)
		default:
			log.InfoR(r, "StockRestorationAdminIntercept unauthorised", debugMap)
			w.WriteHeader(http.StatusUnauthorized)
		}
	})
}
