package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

func TestStartRefresherDisabled(t *testing.T) {
	if r := StartRefresher("", nil, nil); r != nil {
		t.Error("Expected nil refresher for empty schedule")
	}
	if r := StartRefresher("not a cron expr", nil, nil); r != nil {
		t.Error("Expected nil refresher for invalid schedule")
	}

	// Stop must be safe on a disabled refresher.
	var r *Refresher
	r.Stop()
}

func TestRefresherRefreshReplacesCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"rows":[["CONT-900","Resumo","Credor","","","",100,10,true,"","Objeto","",""]]}}`))
	}))
	defer server.Close()

	collection := NewCollection()
	collection.ReplaceAll(model.SampleContracts(), true)

	// Far-future schedule so only the explicit call fires.
	r := StartRefresher("0 0 1 1 *", newTestAPI(server.URL, 0), collection)
	if r == nil {
		t.Fatal("Expected refresher to start")
	}
	defer r.Stop()

	r.Refresh(context.Background())

	if collection.Len() != 1 {
		t.Errorf("Expected collection replaced, got %d records", collection.Len())
	}
	if collection.Fallback() {
		t.Error("Expected fallback flag cleared after successful refresh")
	}
}

func TestRefresherRefreshFailureKeepsCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	collection := NewCollection()
	collection.ReplaceAll(model.SampleContracts(), false)

	r := StartRefresher("0 0 1 1 *", newTestAPI(server.URL, 0), collection)
	if r == nil {
		t.Fatal("Expected refresher to start")
	}
	defer r.Stop()

	r.Refresh(context.Background())

	if collection.Len() != 5 {
		t.Errorf("Expected collection untouched after failed refresh, got %d", collection.Len())
	}
}
