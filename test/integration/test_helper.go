package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"
)

var (
	// BaseURL points at a running API instance.
	BaseURL = "http://localhost:8080"

	// OperatorAddress must match the OPERATOR_ADDRESS the API was started with.
	OperatorAddress = "operator-local"
)

func TestMain(m *testing.M) {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		BaseURL = v
	}
	if v := os.Getenv("OPERATOR_ADDRESS"); v != "" {
		OperatorAddress = v
	}

	// 等待服务启动
	time.Sleep(5 * time.Second)

	os.Exit(m.Run())
}

// testNonce returns a value unique enough to keep test identities from
// colliding across runs against the same database.
func testNonce() int64 {
	return time.Now().UnixNano()
}

// doJSON sends a JSON request as the given caller and returns the response.
func doJSON(t *testing.T, method, url, caller string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set("X-Caller-Address", caller)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

// decodeBody decodes the response body into out and closes it.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
