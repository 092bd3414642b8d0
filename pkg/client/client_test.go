package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"code":    status,
		"message": "ok",
		"data":    data,
	})
	require.NoError(t, err)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(t, w, http.StatusOK, map[string]any{"full_name": "Asha Iyer"})
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("access-token")

	_, err := c.Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer access-token", gotAuth)
}

func TestClient_LoginStoresAccessToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"access_token":  "fresh-access",
			"refresh_token": "fresh-refresh",
			"user":          map[string]string{"id": "u1", "email": "asha@example.com", "name": "Asha"},
		})
	}))
	defer server.Close()

	c := New(server.URL)

	session, err := c.Login(context.Background(), "asha@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "fresh-access", session.AccessToken)
	assert.Equal(t, "fresh-access", c.token)
}

func TestClient_UnauthorizedMapsToTokenExpired(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.Profile(context.Background())

	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestClient_ServerFaultMapsToServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.Bookings(context.Background())

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusServiceUnavailable, serverErr.Code)
}

func TestClient_MalformedBodyMapsToDecoding(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.Conversations(context.Background())

	assert.ErrorIs(t, err, ErrDecoding)
}

func TestClient_NullDataMapsToNoData(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusOK, nil)
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.Reports(context.Background())

	assert.ErrorIs(t, err, ErrNoData)
}

func TestClient_SlowServerMapsToTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeEnvelope(t, w, http.StatusOK, []any{})
	}))
	defer server.Close()

	c := New(server.URL, WithTimeout(20*time.Millisecond))

	_, err := c.Matches(context.Background())

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_UnreachableServerMapsToOffline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	c := New(server.URL)

	_, err := c.Discover(context.Background())

	assert.ErrorIs(t, err, ErrOffline)
}

func TestClient_RejectedEnvelopeSurfacesErrorCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"code":    http.StatusBadRequest,
			"message": "Birth data is incomplete",
			"error":   map[string]string{"code": "PROFILE_INCOMPLETE"},
		})
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.BirthChart(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROFILE_INCOMPLETE")
}

func TestClient_PositionsFallsBackToEphemeris(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/astrology/positions":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/v1/ephemeris/current":
			writeEnvelope(t, w, http.StatusOK, map[string]any{
				"planets": []map[string]any{
					{"planet": "Moon", "longitude": 95.5, "sign": "Cancer", "degree": 5.5},
					{"planet": "Sun", "longitude": 212.0, "sign": "Libra", "degree": 2.0},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL)

	positions, err := c.Positions(context.Background())

	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, "Cancer", positions["Moon"].Sign)
	assert.InDelta(t, 5.5, positions["Moon"].Degree, 0.001)
}

func TestClient_PositionsDoesNotFallBackOnAuthFailure(t *testing.T) {
	t.Parallel()

	var ephemerisCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/ephemeris/current" {
			ephemerisCalled = true
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.Positions(context.Background())

	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.False(t, ephemerisCalled)
}

func TestClient_BookingPassReturnsRawPNG(t *testing.T) {
	t.Parallel()

	pngBytes := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/temple/bookings/b1/pass", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("access-token")

	png, err := c.BookingPass(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}

func TestClient_DeleteEndpointsSendNoBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/bookmarks/bm1", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]string{"message": "Bookmark deleted"})
	}))
	defer server.Close()

	c := New(server.URL)

	err := c.DeleteBookmark(context.Background(), "bm1")

	assert.NoError(t, err)
}
