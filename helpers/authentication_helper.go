package helpers

import (
	"net/http"
	"strings"
)

const (
	Oauth2IdentityType = "oauth2"
	APIKeyIdentityType = "key"

	// AdminStockRestorationRole allows an oauth2 user to re-drive pending stock restorations.
	AdminStockRestorationRole = "/admin/stock-restorations"

	ericIdentity        = "ERIC-Identity"
	ericIdentityType    = "ERIC-Identity-Type"
	ericAuthorisedRoles = "ERIC-Authorised-Roles"
)

func GetAuthorisedIdentity(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(ericIdentity))
}

func GetAuthorisedIdentityType(r *http.Request) string {
	return r.Header.Get(ericIdentityType)
}

func getAuthorisedRolesArray(r *http.Request) []string {
	roles := r.Header.Get(ericAuthorisedRoles)
	if len(roles) == 0 {
		return nil
	}

	return strings.Fields(roles)
}

func IsRoleAuthorised(r *http.Request, role string) bool {
	if len(role) == 0 {
		return false
	}

	return contains(getAuthorisedRolesArray(r), role)
}

// GetCallerID returns the identity stored on the request context by the identity interceptor.
func GetCallerID(r *http.Request) string {
	callerID, _ := r.Context().Value(ContextKeyCallerID).(string)
	return callerID
}

// contains tells whether array contains s.
func contains(array []string, s string) bool {
	for _, n := range array {
		if s == n {
			return true
		}
	}
	return false
}
