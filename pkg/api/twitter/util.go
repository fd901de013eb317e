package twitter

import (
	"context"
	"strconv"
	"strings"

	"github.com/xfetch-cli/xfetch/pkg/api"
	"github.com/xfetch-cli/xfetch/pkg/errorx"
	"github.com/xfetch-cli/xfetch/pkg/xcontext"
)

// checkStatus maps a non-2xx response to the error taxonomy, keeping a
// snippet of the upstream body for the message.
func checkStatus(ctx context.Context, resp *api.Response) error {
	if resp.Code >= 200 && resp.Code < 300 {
		return nil
	}

	xcontext.Logger(ctx).Debugf("API error %d: %s", resp.Code, truncate(resp.RawBody, 300))
	return errorx.WithDetail(errorx.FromStatus(resp.Code), "status %d: %s", resp.Code, truncate(resp.RawBody, 300))
}

func normalizeHandle(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
