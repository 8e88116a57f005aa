package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-market/internal/accountService"
	"campus-market/internal/collectionService"
	"campus-market/internal/listingService"
	"campus-market/internal/messageService"
	"campus-market/internal/repository"
	"campus-market/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the full router over the in-memory repository.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	accountSvc := account.NewAccountService(repo, "integration-test-secret", time.Hour)

	return server.SetupRouter(server.Services{
		Listings:    listing.NewListingService(repo, repo),
		Collections: collection.NewCollectionService(repo, repo),
		Accounts:    accountSvc,
		Messages:    messaging.NewMessageService(repo, repo),
		Verifier:    accountSvc,
		UploadDir:   t.TempDir(),
	})
}

// ExecuteRequest executes an HTTP request with an optional bearer token and
// parses the response envelope.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// RegisterAndLogin creates an account through the API and returns its bearer
// token plus the public account handle.
func RegisterAndLogin(t *testing.T, router *gin.Engine, name, email string) (token, accountID string) {
	t.Helper()

	resp, w := ExecuteRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	accountID = resp["data"].(map[string]any)["account_id"].(string)

	resp, w = ExecuteRequest(t, router, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token = resp["data"].(map[string]any)["token"].(string)
	return token, accountID
}

// CreateListing posts a listing and returns its id.
func CreateListing(t *testing.T, router *gin.Engine, token string, body map[string]any) string {
	t.Helper()

	resp, w := ExecuteRequest(t, router, http.MethodPost, "/api/items", token, body)
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["data"].(map[string]any)["id"].(string)
}
