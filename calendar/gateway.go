package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	// calendarID is the fixed calendar identity all operations target.
	calendarID = "primary"

	// TagProperty marks events owned by this system.
	TagProperty = "shiftUploader"
	// TagValue is the marker value.
	TagValue = "1"
	// KeyProperty carries the shift identity key.
	KeyProperty = "key"
)

// Gateway executes event operations against the remote calendar. All
// operations are scoped to the primary calendar and, for listing, to events
// tagged as owned by this system.
type Gateway interface {
	// List returns one page of tagged events starting at or after timeMin
	// (no lower bound when timeMin is zero), plus the token of the next
	// page ("" on the last page).
	List(ctx context.Context, timeMin time.Time, pageToken string) ([]*gcal.Event, string, error)

	// Insert creates a new event.
	Insert(ctx context.Context, event *gcal.Event) error

	// Patch updates the identified event in place.
	Patch(ctx context.Context, eventID string, event *gcal.Event) error

	// Delete removes the identified event.
	Delete(ctx context.Context, eventID string) error
}

// GoogleGateway is the Google Calendar implementation of Gateway.
type GoogleGateway struct {
	svc *gcal.Service
}

// NewGoogleGateway builds a gateway from an authenticated HTTP client, as
// returned by Client.
func NewGoogleGateway(ctx context.Context, httpClient *http.Client) (*GoogleGateway, error) {
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("building calendar service: %w", err)
	}
	return &GoogleGateway{svc: svc}, nil
}

func (g *GoogleGateway) List(ctx context.Context, timeMin time.Time, pageToken string) ([]*gcal.Event, string, error) {
	call := g.svc.Events.List(calendarID).
		PrivateExtendedProperty(TagProperty + "=" + TagValue).
		PageToken(pageToken)
	if !timeMin.IsZero() {
		call = call.TimeMin(timeMin.Format(time.RFC3339))
	}

	res, err := call.Context(ctx).Do()
	if err != nil {
		return nil, "", err
	}
	return res.Items, res.NextPageToken, nil
}

func (g *GoogleGateway) Insert(ctx context.Context, event *gcal.Event) error {
	_, err := g.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	return err
}

func (g *GoogleGateway) Patch(ctx context.Context, eventID string, event *gcal.Event) error {
	_, err := g.svc.Events.Patch(calendarID, eventID, event).Context(ctx).Do()
	return err
}

func (g *GoogleGateway) Delete(ctx context.Context, eventID string) error {
	return g.svc.Events.Delete(calendarID, eventID).Context(ctx).Do()
}
