package mindbody

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchClients looks up clients by free-text search (name, email, ID).
func (c *Client) SearchClients(ctx context.Context, searchText string) ([]ClientRecord, error) {
	q := url.Values{}
	q.Set("searchText", searchText)
	q.Set("limit", "20")

	var out struct {
		Clients []ClientRecord `json:"Clients"`
	}
	if err := c.call(ctx, http.MethodGet, "/client/clients", q, nil, &out); err != nil {
		return nil, err
	}

	return out.Clients, nil
}

// GetClientByID fetches one client record by its upstream ID.
func (c *Client) GetClientByID(ctx context.Context, clientID string) (*ClientRecord, error) {
	q := url.Values{}
	q.Set("clientIds", clientID)

	var out struct {
		Clients []ClientRecord `json:"Clients"`
	}
	if err := c.call(ctx, http.MethodGet, "/client/clients", q, nil, &out); err != nil {
		return nil, err
	}
	if len(out.Clients) == 0 {
		return nil, &HTTPError{StatusCode: http.StatusNotFound, Endpoint: "/client/clients", Body: "client not found"}
	}

	return &out.Clients[0], nil
}

// CreateClient registers a new client and returns the created record.
func (c *Client) CreateClient(ctx context.Context, fields map[string]any) (*ClientRecord, error) {
	var out struct {
		Client ClientRecord `json:"Client"`
	}
	if err := c.call(ctx, http.MethodPost, "/client/addclient", nil, fields, &out); err != nil {
		return nil, err
	}

	return &out.Client, nil
}

// UpdateClient updates mutable client fields. The upstream expects the client
// payload nested under "Client" with CrossRegionalUpdate disabled.
func (c *Client) UpdateClient(ctx context.Context, clientID string, fields map[string]any) (*ClientRecord, error) {
	body := map[string]any{
		"Client":              mergeClientID(fields, clientID),
		"CrossRegionalUpdate": false,
	}

	var out struct {
		Client ClientRecord `json:"Client"`
	}
	if err := c.call(ctx, http.MethodPost, "/client/updateclient", nil, body, &out); err != nil {
		return nil, err
	}

	return &out.Client, nil
}

// GetClientCompleteInfo returns the full account view (client, memberships,
// contracts, services) as the upstream shapes it.
func (c *Client) GetClientCompleteInfo(ctx context.Context, clientID string) (*CompleteInfo, error) {
	q := url.Values{}
	q.Set("clientID", clientID)
	q.Set("limit", "200")
	q.Set("offset", "0")

	var out CompleteInfo
	if err := c.call(ctx, http.MethodGet, "/client/clientcompleteinfo", q, nil, &out); err != nil {
		return nil, err
	}
	if out.Client == nil {
		return nil, &HTTPError{StatusCode: http.StatusNotFound, Endpoint: "/client/clientcompleteinfo", Body: "client not found"}
	}

	return &out, nil
}

// GetClientVisits lists class and appointment visits between the given dates,
// both past and upcoming.
func (c *Client) GetClientVisits(ctx context.Context, clientID, startDate, endDate string) ([]Visit, error) {
	q := url.Values{}
	q.Set("clientId", clientID)
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	q.Set("limit", "200")

	var out struct {
		Visits []Visit `json:"Visits"`
	}
	if err := c.call(ctx, http.MethodGet, "/client/clientvisits", q, nil, &out); err != nil {
		return nil, err
	}

	return out.Visits, nil
}

// GetClientServices lists active purchased services, optionally filtered by
// session type.
func (c *Client) GetClientServices(ctx context.Context, clientID string, sessionTypeID int64) ([]ClientService, error) {
	q := url.Values{}
	q.Set("clientId", clientID)
	if sessionTypeID > 0 {
		q.Set("sessionTypeIds", strconv.FormatInt(sessionTypeID, 10))
	}

	var out struct {
		ClientServices []ClientService `json:"ClientServices"`
	}
	if err := c.call(ctx, http.MethodGet, "/client/clientservices", q, nil, &out); err != nil {
		return nil, err
	}

	return out.ClientServices, nil
}

// GetClientSchedule lists upcoming visits between the given dates.
func (c *Client) GetClientSchedule(ctx context.Context, clientID, startDate, endDate string) ([]Visit, error) {
	q := url.Values{}
	q.Set("clientId", clientID)
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}

	var out struct {
		Visits []Visit `json:"Visits"`
	}
	if err := c.call(ctx, http.MethodGet, "/client/clientschedule", q, nil, &out); err != nil {
		return nil, err
	}

	return out.Visits, nil
}

func mergeClientID(fields map[string]any, clientID string) map[string]any {
	merged := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["Id"] = clientID

	return merged
}
