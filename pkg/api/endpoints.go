package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Health fetches GET /health on the "health" channel. The endpoint has no
// success envelope; an empty status field is treated as a domain failure.
func (c *Client) Health(ctx context.Context) (*HealthInfo, error) {
	var info HealthInfo
	if err := c.do(ctx, ChannelHealth, http.MethodGet, "/health", nil, &info); err != nil {
		return nil, err
	}
	if info.Status == "" {
		return nil, &DomainError{Message: "health response carried no status"}
	}
	return &info, nil
}

// Recent fetches the most recent limit samples from GET /api/recent on the
// "telemetry" channel. A false success flag is a domain failure carrying the
// backend's message.
func (c *Client) Recent(ctx context.Context, limit int) (*TelemetryData, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var data TelemetryData
	if err := c.do(ctx, ChannelTelemetry, http.MethodGet, "/api/recent", q, &data); err != nil {
		return nil, err
	}
	if !data.Success {
		return nil, &DomainError{Message: domainMessage(data.Error, data.Message, "recent data unavailable")}
	}
	return &data, nil
}

// CurrentStatus fetches the latest derived analysis from
// GET /api/status/current on the "status" channel.
func (c *Client) CurrentStatus(ctx context.Context) (*StatusInfo, error) {
	var env statusEnvelope
	if err := c.do(ctx, ChannelStatus, http.MethodGet, "/api/status/current", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Status == nil {
		return nil, &DomainError{Message: domainMessage(env.Error, "", "status unavailable")}
	}
	return env.Status, nil
}

// GenerateReport triggers LLM report generation via POST /api/report/manual
// on the "report" channel. The report block must be present; a nil LLMParsed
// inside it is left for the caller to judge, since only the report view
// decides how to surface a parse failure.
func (c *Client) GenerateReport(ctx context.Context) (*Report, error) {
	var env reportEnvelope
	if err := c.do(ctx, ChannelReport, http.MethodPost, "/api/report/manual", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Report == nil {
		return nil, &DomainError{Message: domainMessage(env.Error, "", "report generation failed")}
	}
	return env.Report, nil
}

// BufferStatus fetches GET /api/buffer on the "buffer" channel.
func (c *Client) BufferStatus(ctx context.Context) (*BufferInfo, error) {
	var env bufferEnvelope
	if err := c.do(ctx, ChannelBuffer, http.MethodGet, "/api/buffer", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Buffer == nil {
		return nil, &DomainError{Message: domainMessage(env.Error, "", "buffer status unavailable")}
	}
	return env.Buffer, nil
}

// domainMessage picks the most specific non-empty message for a domain
// failure.
func domainMessage(errField ErrorText, message, fallback string) string {
	if s := errField.String(); s != "" {
		return s
	}
	if message != "" {
		return message
	}
	return fallback
}
