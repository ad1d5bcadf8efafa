package gradebook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bigredeye/gradebook/api"
)

func TestLoadStandings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/marks/sort-by-grades", r.URL.Path)
		require.Equal(t, "desc", r.URL.Query().Get("order"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]api.RankedStudent{{ID: 2, Name: "Turing", AverageMarks: 9.5}})
	}))
	defer srv.Close()

	standings, err := NewClient(srv.URL).LoadStandings("desc")
	require.NoError(t, err)
	require.Equal(t, []api.RankedStudent{{ID: 2, Name: "Turing", AverageMarks: 9.5}}, standings)
}

func TestErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/marks/student/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(api.ErrorResponse{Error: "No marks found for the student with id 7!", Kind: "no_marks"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).StudentMarks(7)
	require.Error(t, err)

	reqErr, ok := err.(*RequestError)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	require.Equal(t, "no_marks", reqErr.Kind)
}
