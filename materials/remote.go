package materials

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Remote loads the catalog of another xraydb service from its
// /materials endpoint. Materials the remote only has built in are
// skipped.
type Remote struct {
	Address string
	Client  *http.Client
}

func (r Remote) Name() string { return "remote:" + r.Address }

func (r Remote) url() string {
	addr := r.Address
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	if !strings.HasSuffix(addr, "/materials") {
		addr = strings.TrimSuffix(addr, "/") + "/materials"
	}
	return addr
}

func (r Remote) Load(ctx context.Context) ([]Material, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url(), nil)
	if err != nil {
		return nil, err
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote returned %s", resp.Status)
	}

	var all []Material
	if err = json.NewDecoder(resp.Body).Decode(&all); err != nil {
		return nil, fmt.Errorf("error decoding remote materials: %w", err)
	}
	ms := all[:0]
	for _, m := range all {
		if m.Source != "builtin" {
			ms = append(ms, m)
		}
	}
	return ms, nil
}
