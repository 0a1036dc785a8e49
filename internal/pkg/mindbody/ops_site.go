package mindbody

import (
	"context"
	"net/http"
)

// GetLocations lists the studio locations.
func (c *Client) GetLocations(ctx context.Context) ([]Location, error) {
	var out struct {
		Locations []Location `json:"Locations"`
	}
	if err := c.call(ctx, http.MethodGet, "/site/locations", nil, nil, &out); err != nil {
		return nil, err
	}

	return out.Locations, nil
}

// GetPrograms lists the site programs.
func (c *Client) GetPrograms(ctx context.Context) ([]Program, error) {
	var out struct {
		Programs []Program `json:"Programs"`
	}
	if err := c.call(ctx, http.MethodGet, "/site/programs", nil, nil, &out); err != nil {
		return nil, err
	}

	return out.Programs, nil
}

// GetSessionTypes lists the bookable session types.
func (c *Client) GetSessionTypes(ctx context.Context) ([]SessionType, error) {
	var out struct {
		SessionTypes []SessionType `json:"SessionTypes"`
	}
	if err := c.call(ctx, http.MethodGet, "/site/sessiontypes", nil, nil, &out); err != nil {
		return nil, err
	}

	return out.SessionTypes, nil
}
