package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medigrip/internal/domain"
)

func TestSearchSendsQueryParameters(t *testing.T) {
	var gotQuery, gotType, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotType = r.URL.Query().Get("type")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{"id": 1, "type": "provider", "title": "Dr. Smith", "subtitle": "Cardiology", "url": "/providers/1"},
				{"id": "m-2", "type": "member", "title": "John Smith", "subtitle": "GoldCare", "metadata": {"scheme": "GoldCare"}}
			],
			"total": 2,
			"query": "smi",
			"entity_type": "all"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", time.Second)
	resp, err := c.Search(context.Background(), "smi", domain.FilterAll, 10)
	require.NoError(t, err)

	assert.Equal(t, "smi", gotQuery)
	assert.Equal(t, "all", gotType)
	assert.Equal(t, "10", gotLimit)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, domain.ID("1"), resp.Results[0].ID)
	assert.Equal(t, domain.EntityProvider, resp.Results[0].Type)
	assert.Equal(t, domain.ID("m-2"), resp.Results[1].ID)
	assert.Equal(t, "GoldCare", resp.Results[1].Metadata["scheme"])
	assert.Equal(t, 2, resp.Total)
}

func TestSearchServerOrderIsPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [
			{"id": 3, "type": "scheme", "title": "Zeta"},
			{"id": 1, "type": "scheme", "title": "Alpha"},
			{"id": 2, "type": "scheme", "title": "Mid"}
		], "total": 3}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	resp, err := c.Search(context.Background(), "sch", domain.FilterSchemes, 10)
	require.NoError(t, err)

	titles := []string{resp.Results[0].Title, resp.Results[1].Title, resp.Results[2].Title}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, titles)
}

func TestClaimFetchByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/claims/77", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 77, "claim_number": "CLM-77", "member_name": "John Smith", "amount": 1250.5, "status": "pending"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	claim, err := c.Claim(context.Background(), domain.ID("77"))
	require.NoError(t, err)

	assert.Equal(t, "CLM-77", claim.ClaimNumber)
	assert.Equal(t, 1250.5, claim.Amount)
}

func TestMembersFilterParameter(t *testing.T) {
	var gotFilter string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("member_id")
		_, _ = w.Write([]byte(`[{"id": 5, "member_number": "M-5", "first_name": "Jane", "last_name": "Doe"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	members, err := c.Members(context.Background(), domain.ID("5"))
	require.NoError(t, err)
	assert.Equal(t, "5", gotFilter)
	require.Len(t, members, 1)
	assert.Equal(t, "Jane Doe", members[0].FullName())

	_, err = c.Members(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", gotFilter)
}

func TestErrorStatusIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Search(context.Background(), "x", domain.FilterAll, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestContextCancellationStopsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Search(ctx, "x", domain.FilterAll, 10)
	require.Error(t, err)
}
