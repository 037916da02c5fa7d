// internal/upstream/notifications.go
package upstream

import (
	"context"
	"errors"
	"net/http"

	"vendora-admin/internal/domain/notification"
)

// FetchNotifications retrieves the authoritative notification list for
// the authenticated admin.
func (c *Client) FetchNotifications(ctx context.Context) ([]notification.Record, error) {
	var envelope struct {
		Data []notification.Record `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/notifications", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// MarkNotificationRead confirms a single read upstream. A 404 means
// the record is already gone upstream, which the caller's optimistic
// state agrees with, so it counts as success.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodPut, "/admin/notifications/"+id+"/read", nil, nil, nil)
	return ignoreNotFound(err)
}

// MarkAllNotificationsRead confirms a bulk read upstream.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/admin/notifications/read-all", nil, nil, nil)
}

// DeleteNotification confirms a delete upstream; 404 counts as
// success for the same reason as MarkNotificationRead.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/admin/notifications/"+id, nil, nil, nil)
	return ignoreNotFound(err)
}

func ignoreNotFound(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return nil
	}
	return err
}
