package command

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clinic_queue/internal/config"
	"clinic_queue/internal/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const cleanupPath = "/api/admin/cleanup/completed-queues"

// PurgeCommand asks a running server to delete COMPLETED entries. The server's
// engine is the only writer of queue state, so the command never touches the
// database itself.
type PurgeCommand struct {
	Logger *logrus.Logger
}

func (cmd PurgeCommand) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	var server string
	c := &cobra.Command{
		Use:   "purge",
		Short: "delete COMPLETED queue entries through the running server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(ctx, cfg, server)
		},
	}
	c.Flags().StringVar(&server, "server", fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port), "base URL of the queue server")
	return c
}

func (cmd PurgeCommand) main(ctx context.Context, cfg *config.Config, server string) {
	client := cleanupClient{
		baseURL: server,
		secret:  []byte(cfg.Auth.AccessSecret),
		http:    &http.Client{Timeout: time.Minute},
	}

	res, err := client.purge(ctx)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "purge : cleanup request failed"))
		return
	}
	cmd.Logger.WithContext(ctx).WithField("deleted_count", res.DeletedCount).Info("completed queue entries purged")
}

type cleanupClient struct {
	baseURL string
	secret  []byte
	http    *http.Client
}

// purge calls the admin cleanup route, signing a short-lived admin token when a
// secret is configured.
func (c cleanupClient) purge(ctx context.Context) (response.CleanupResponse, error) {
	var out response.CleanupResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, strings.TrimRight(c.baseURL, "/")+cleanupPath, nil)
	if err != nil {
		return out, errors.Wrap(err, "build request")
	}
	if len(c.secret) > 0 {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": 0,
			"exp":     time.Now().Add(time.Minute).Unix(),
		}).SignedString(c.secret)
		if err != nil {
			return out, errors.Wrap(err, "sign admin token")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return out, errors.Wrapf(err, "call %s", req.URL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr response.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return out, errors.Errorf("server answered %d %s: %s", resp.StatusCode, apiErr.Code, apiErr.Message)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, errors.Wrap(err, "decode cleanup response")
	}
	return out, nil
}
