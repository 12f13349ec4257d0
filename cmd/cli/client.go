package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// apiClient prints the responses of the overlay server.
type apiClient struct {
	base string
	http *http.Client
	out  io.Writer
}

func newAPIClient(base string, timeout time.Duration, out io.Writer) *apiClient {
	return &apiClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
		out:  out,
	}
}

// do sends a request and writes the body to out, indented when it is JSON.
// A status of 400 or above is returned as an error after the body is printed.
func (c *apiClient) do(ctx context.Context, method, endpoint string) error {
	target := c.base + endpoint
	log.Debug("Sending request", "method", method, "url", target)

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", c.base, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var pretty bytes.Buffer
	if json.Indent(&pretty, body, "", "  ") == nil {
		body = pretty.Bytes()
	}
	fmt.Fprintln(c.out, strings.TrimRight(string(body), "\n"))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: %s", method, endpoint, resp.Status)
	}
	return nil
}
