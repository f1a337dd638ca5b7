package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prperemyshlev/healthtrack-smoke/internal/client"
	"github.com/prperemyshlev/healthtrack-smoke/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type result struct {
	resp *client.Response
	err  error
}

// fakeAPI replays canned results and records which calls were made
type fakeAPI struct {
	results map[string]result
	calls   []string
	tokens  []string
	notes   string
	panicOn string
}

func (f *fakeAPI) BaseURL() string { return "http://localhost:3000/api" }

func (f *fakeAPI) call(name, token string) (*client.Response, error) {
	f.calls = append(f.calls, name)
	f.tokens = append(f.tokens, token)
	if f.panicOn == name {
		panic("unexpected nil body")
	}
	r, ok := f.results[name]
	if !ok {
		return ok200(`{"success":true}`), nil
	}
	return r.resp, r.err
}

func (f *fakeAPI) Login(ctx context.Context, identifier, password string) (*client.Response, error) {
	return f.call("login", "")
}

func (f *fakeAPI) Profile(ctx context.Context, token string) (*client.Response, error) {
	return f.call("profile", token)
}

func (f *fakeAPI) Standards(ctx context.Context, token string) (*client.Response, error) {
	return f.call("standards", token)
}

func (f *fakeAPI) UpdateDoctorNotes(ctx context.Context, token, notes string) (*client.Response, error) {
	f.notes = notes
	return f.call("doctorNotes", token)
}

func (f *fakeAPI) PersonalizedAnalysis(ctx context.Context, token string) (*client.Response, error) {
	return f.call("analysis", token)
}

func response(status int, body string) *client.Response {
	resp, err := client.NewResponse(status, []byte(body))
	if err != nil {
		panic(err)
	}
	return resp
}

func ok200(body string) *client.Response {
	return response(200, body)
}

var loginOK = result{resp: ok200(`{"success":true,"data":{"accessToken":"tok-123"}}`)}

var smokeCfg = config.SmokeConfig{
	BaseURL:        "http://localhost:3000/api",
	Identifier:     "test@example.com",
	Password:       "Password123!",
	Timeout:        config.Duration{Duration: 5 * time.Second},
	DoctorNotes:    "keep exercising",
	ProfilePreview: 200,
	ReportPreview:  300,
}

func run(t *testing.T, api *fakeAPI) (int, string) {
	t.Helper()
	var out bytes.Buffer
	runner := NewRunner(api, smokeCfg, NewReporter(&out), zap.NewNop())
	code := runner.Execute(context.Background())
	return code, out.String()
}

func TestExecute_FullRun(t *testing.T) {
	api := &fakeAPI{results: map[string]result{"login": loginOK}}

	code, out := run(t, api)

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, []string{"login", "profile", "standards", "doctorNotes", "analysis"}, api.calls)
	assert.Equal(t, []string{"", "tok-123", "tok-123", "tok-123", "tok-123"}, api.tokens)
	assert.Equal(t, "keep exercising", api.notes)
	assert.Contains(t, out, "Token obtained")
	assert.Contains(t, out, "Smoke test complete!")

	steps := []string{"\n1. ", "\n2. ", "\n3. ", "\n4. ", "\n5. "}
	last := -1
	for _, s := range steps {
		idx := strings.Index(out, s)
		require.Greater(t, idx, last, "step %q out of order", s)
		last = idx
	}
}

func TestExecute_LoginWithoutToken(t *testing.T) {
	tests := []struct {
		name string
		resp *client.Response
	}{
		{"invalid credentials", response(401, `{"success":false,"code":"INVALID_CREDENTIALS","message":"bad"}`)},
		{"success without token", ok200(`{"success":true,"data":{}}`)},
		{"token without success", ok200(`{"data":{"accessToken":"tok"}}`)},
		{"empty token", ok200(`{"success":true,"data":{"accessToken":""}}`)},
		{"null data", ok200(`{"success":true,"data":null}`)},
		{"array body", ok200(`[]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{results: map[string]result{"login": {resp: tt.resp}}}

			code, out := run(t, api)

			assert.Equal(t, ExitLoginFailed, code)
			assert.Equal(t, []string{"login"}, api.calls)
			assert.Contains(t, out, "Login failed")
			assert.NotContains(t, out, "\n2. ")
			assert.NotContains(t, out, "Smoke test complete!")
		})
	}
}

func TestExecute_ConnectionRefused(t *testing.T) {
	err := fmt.Errorf("%w: dial tcp 127.0.0.1:3000: connect: connection refused", client.ErrConnectionRefused)
	api := &fakeAPI{results: map[string]result{"login": {err: err}}}

	code, out := run(t, api)

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Connection error: cannot connect to http://localhost:3000/api")
	assert.Contains(t, out, "Make sure the backend is running at http://localhost:3000\n")
	assert.Equal(t, []string{"login"}, api.calls)
}

func TestExecute_Timeout(t *testing.T) {
	api := &fakeAPI{results: map[string]result{
		"login":     loginOK,
		"standards": {err: fmt.Errorf("%w: context deadline exceeded", client.ErrTimeout)},
	}}

	code, out := run(t, api)

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Request timed out")
	assert.NotContains(t, out, "Smoke test complete!")
	assert.Equal(t, []string{"login", "profile", "standards"}, api.calls)
}

func TestExecute_UnexpectedError(t *testing.T) {
	api := &fakeAPI{results: map[string]result{
		"login":   loginOK,
		"profile": {err: errors.New("invalid JSON response (status 502)")},
	}}

	code, out := run(t, api)

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Error: invalid JSON response (status 502)")
}

func TestExecute_RecoversPanic(t *testing.T) {
	api := &fakeAPI{results: map[string]result{"login": loginOK}, panicOn: "analysis"}

	code, out := run(t, api)

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Error: unexpected nil body")
}

func TestExecute_ErrorBranches(t *testing.T) {
	api := &fakeAPI{results: map[string]result{
		"login":     loginOK,
		"standards": {resp: response(500, `{"success":false,"message":"failed","error":"view missing"}`)},
		"analysis":  {resp: response(404, `{"success":false}`)},
	}}

	code, out := run(t, api)

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Failed! Error: view missing")
	assert.Contains(t, out, "Failed! Error: null")
	assert.NotContains(t, out, "Success! Data preview")
	assert.Contains(t, out, "Smoke test complete!")
}

func TestExecute_SuccessPreviewIsTruncated(t *testing.T) {
	long := strings.Repeat("a", 1000)
	api := &fakeAPI{results: map[string]result{
		"login":     loginOK,
		"standards": {resp: ok200(`{"success":true,"data":"` + long + `"}`)},
	}}

	_, out := run(t, api)

	preview := Preview(api.results["standards"].resp.Raw, 300)
	assert.Contains(t, out, "Success! Data preview:\n   "+preview+"\n")
	assert.NotContains(t, out, long)
}

func TestExecute_DoctorNotesPrintsFullBody(t *testing.T) {
	long := strings.Repeat("n", 1000)
	for _, status := range []int{200, 400, 500} {
		t.Run(fmt.Sprint(status), func(t *testing.T) {
			body := `{"success":false,"error":"` + long + `"}`
			api := &fakeAPI{results: map[string]result{
				"login":       loginOK,
				"doctorNotes": {resp: response(status, body)},
			}}

			_, out := run(t, api)

			full := Render(api.results["doctorNotes"].resp.Raw)
			assert.Contains(t, out, fmt.Sprintf("Status: %d\n   Response: %s\n", status, full))
		})
	}
}

func TestExecute_NonObjectErrorBody(t *testing.T) {
	api := &fakeAPI{results: map[string]result{
		"login":     loginOK,
		"standards": {resp: response(500, `["x"]`)},
	}}

	code, out := run(t, api)

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Status: 500\n")
	assert.Contains(t, out, "Error: error response is not a JSON object: status 500")
	assert.NotContains(t, out, "Failed! Error")
	assert.NotContains(t, out, "Smoke test complete!")
	assert.Equal(t, []string{"login", "profile", "standards"}, api.calls)
}

func TestExecute_NonObjectSuccessBody(t *testing.T) {
	api := &fakeAPI{results: map[string]result{
		"login":    loginOK,
		"analysis": {resp: ok200(`["a","b"]`)},
	}}

	code, out := run(t, api)

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Success! Data preview:\n   [\n  \"a\",\n  \"b\"\n]...\n")
	assert.Contains(t, out, "Smoke test complete!")
}

func TestExecute_PreviewKeepsWireOrder(t *testing.T) {
	api := &fakeAPI{results: map[string]result{
		"login":   loginOK,
		"profile": {resp: ok200(`{"success":true,"data":{"userId":"u1","activityLevel":"active"}}`)},
	}}

	_, out := run(t, api)

	assert.Contains(t, out, "Response: {\n  \"success\": true,\n  \"data\": {\n    \"userId\": \"u1\",")
}

func TestTruthy(t *testing.T) {
	assert.True(t, truthy(true))
	assert.True(t, truthy("yes"))
	assert.True(t, truthy(json.Number("1")))
	assert.True(t, truthy(map[string]any{"a": 1}))
	assert.False(t, truthy(nil))
	assert.False(t, truthy(false))
	assert.False(t, truthy(""))
	assert.False(t, truthy(json.Number("0")))
	assert.False(t, truthy([]any{}))
}
