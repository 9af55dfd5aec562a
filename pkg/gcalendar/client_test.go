package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"georeminder/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*gcalendar.Client, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		ts.Close()
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client, ts.Close
}

func TestNewClientFromCredentials(t *testing.T) {
	_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
	if err == nil {
		t.Error("expected failure on non service-account JSON")
	}

	_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
	if err == nil {
		t.Error("expected reading file error")
	}
}

func TestCreateEvent(t *testing.T) {
	var gotBody struct {
		Summary  string `json:"summary"`
		Location string `json:"location"`
		Start    struct {
			Date     string `json:"date"`
			DateTime string `json:"dateTime"`
		} `json:"start"`
	}

	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, &gotBody)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "event-123",
				"summary": "Buy milk",
				"location": "Corner shop",
				"htmlLink": "https://calendar.google.com/event-uri"
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	defer closeFn()

	start := time.Date(2024, 5, 8, 14, 30, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Buy milk",
		Location:  "Corner shop",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected link: %s", event.HtmlLink)
	}
	if event.Location != "Corner shop" {
		t.Errorf("unexpected location: %s", event.Location)
	}
	if gotBody.Location != "Corner shop" {
		t.Errorf("location not sent to API: %+v", gotBody)
	}
	if gotBody.Start.DateTime == "" || gotBody.Start.Date != "" {
		t.Errorf("timed event should use dateTime: %+v", gotBody.Start)
	}
}

func TestCreateEvent_AllDay(t *testing.T) {
	var gotBody struct {
		Start struct {
			Date     string `json:"date"`
			DateTime string `json:"dateTime"`
		} `json:"start"`
	}

	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id": "event-456"}`))
	})
	defer closeFn()

	day := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "All day errand",
		StartTime: day,
		EndTime:   day.AddDate(0, 0, 1),
		AllDay:    true,
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if gotBody.Start.Date != "2024-05-08" || gotBody.Start.DateTime != "" {
		t.Errorf("all-day event should use date only: %+v", gotBody.Start)
	}
}

func TestListEvents(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" && r.Method == http.MethodGet {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-123",
						"summary": "Existing Event",
						"location": "Office",
						"start": { "date": "2024-05-01" },
						"end": { "date": "2024-05-01" }
					}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	defer closeFn()

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "primary",
		TimeMin:    time.Now(),
		TimeMax:    time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 1 || events[0].Summary != "Existing Event" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if events[0].Location != "Office" {
		t.Errorf("unexpected location: %s", events[0].Location)
	}

	if _, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "test-fail",
		TimeMin:    time.Now(),
		TimeMax:    time.Now().Add(24 * time.Hour),
	}); err == nil {
		t.Fatal("expected api error on test-fail")
	}
}
