package client

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"

	"github.com/cirisai/ciris-go/schema"
)

// WiseAuthorityService covers the /v1/wa endpoints: deferrals, permissions
// and guidance.
type WiseAuthorityService struct {
	client *Client
}

// Deferrals lists decisions the agent handed over, pending first.
func (s *WiseAuthorityService) Deferrals(ctx context.Context) (*schema.DeferralList, error) {
	return send[schema.DeferralList](ctx, s.client, http.MethodGet, "/v1/wa/deferrals", nil, nil)
}

// ResolveDeferral applies a resolution (see schema.Deferral* constants) to a
// pending deferral.
func (s *WiseAuthorityService) ResolveDeferral(ctx context.Context, deferralID string, resolution *schema.DeferralResolution) (*schema.Deferral, error) {
	return send[schema.Deferral](ctx, s.client, http.MethodPost,
		fmt.Sprintf("/v1/wa/deferrals/%s/resolve", neturl.PathEscape(deferralID)), nil, resolution)
}

// Permissions lists authority grants, optionally filtered by WA ID.
func (s *WiseAuthorityService) Permissions(ctx context.Context, waID string) ([]schema.WAPermission, error) {
	values := neturl.Values{}
	if waID != "" {
		values.Set("wa_id", waID)
	}
	ret, err := send[[]schema.WAPermission](ctx, s.client, http.MethodGet, "/v1/wa/permissions", values, nil)
	if err != nil {
		return nil, err
	}
	return *ret, nil
}

// Status summarizes the wise-authority service.
func (s *WiseAuthorityService) Status(ctx context.Context) (*schema.WAStatus, error) {
	return send[schema.WAStatus](ctx, s.client, http.MethodGet, "/v1/wa/status", nil, nil)
}

// Guidance asks an authority for advice on a topic.
func (s *WiseAuthorityService) Guidance(ctx context.Context, request *schema.GuidanceRequest) (*schema.WAGuidance, error) {
	return send[schema.WAGuidance](ctx, s.client, http.MethodPost, "/v1/wa/guidance", nil, request)
}
