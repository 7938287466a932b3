package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/storefront/settlements.api/helpers"
)

// IdentityInterceptor rejects requests that carry no authorised identity and
// stores the caller id on the request context for the handlers.
func IdentityInterceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check headers for identity type and identity
		identityType := helpers.GetAuthorisedIdentityType(r)
		if identityType != helpers.Oauth2IdentityType && identityType != helpers.APIKeyIdentityType {
			log.ErrorR(r, fmt.Errorf("identity interceptor unauthorised: not oauth2 or API key identity type"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		identity := helpers.GetAuthorisedIdentity(r)
		if identity == "" {
			log.ErrorR(r, fmt.Errorf("identity interceptor unauthorised: no authorised identity"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyCallerID, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
