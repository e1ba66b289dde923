package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julien-sketch/progressive-pulse/pkg/pulsesdk"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*testEnv, *pulsesdk.Client) {
	t.Helper()

	env := newTestEnv(t)
	srv := httptest.NewServer(env.router)
	t.Cleanup(srv.Close)

	client := pulsesdk.NewClient(srv.URL)
	client.AdminUser = testAdminUser
	client.AdminPassword = testAdminPass
	return env, client
}

func TestClientProjectLifecycle(t *testing.T) {
	env, client := newTestServer(t)
	ctx := context.Background()

	created, err := client.CreateProject(ctx, pulsesdk.CreateProjectRequest{
		ClientName:   "Jean Dupont",
		BrokerEmail:  "broker@example.com",
		PropertyName: "12 rue de l'Église",
		Category:     "real-estate",
		DriveFolder:  "https://drive.example/folders/dupont",
	})
	require.NoError(t, err)
	require.Regexp(t, `^12-rue-de-l-eglise-\d{3}$`, created.Project.AccessToken)
	require.Equal(t, "https://drive.example/folders/dupont", created.Project.DriveFolder)
	require.Len(t, created.Steps, 8)

	advanced, err := client.Advance(ctx, created.Project.AccessToken, 4)
	require.NoError(t, err)
	require.Equal(t, 50, advanced.Project.ProgressPercent)
	require.Equal(t, "Visites en cours", advanced.Project.StatusText)

	view, err := client.Track(ctx, created.Project.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "Jean Dupont", view.Project.ClientName)
	require.Equal(t, "https://drive.example/folders/dupont", view.Project.DriveFolder)
	require.Empty(t, view.Project.AccessToken)

	require.NoError(t, client.GrantCredits(ctx, pulsesdk.GrantCreditsRequest{
		BrokerEmail: "broker@example.com",
		Credits:     2,
	}))

	reminded, err := client.Remind(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, reminded.Recipients)
	require.Equal(t, 1, reminded.Sent)
	require.Len(t, env.mailer.sent, 1)

	health, err := client.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}

func TestClientDecodesAPIErrors(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	_, err := client.Track(ctx, "no-such-token")
	var apiErr *pulsesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "not_found", apiErr.Code)
	require.NotEmpty(t, apiErr.Description)

	_, err = client.CreateProject(ctx, pulsesdk.CreateProjectRequest{Category: "real-estate"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "invalid_request", apiErr.Code)

	unauthenticated := pulsesdk.NewClient(client.BaseURL)
	_, err = unauthenticated.Remind(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "unauthorized", apiErr.Code)
}
