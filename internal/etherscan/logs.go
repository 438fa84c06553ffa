package etherscan

import (
	"context"
	"encoding/json"
	"net/url"
)

// LogFilter narrows an event-log query. Address or at least one topic is
// expected; empty fields are omitted from the request.
type LogFilter struct {
	Address   string
	FromBlock string
	ToBlock   string
	Topic0    string
	Topic1    string
	Page      string
	Offset    string
}

// EventLogsResult wraps an event-log query; the explorer's log records
// pass through unmodified.
type EventLogsResult struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Address string          `json:"address,omitempty"`
	Logs    json.RawMessage `json:"logs,omitempty"`
	Network string          `json:"network"`
}

// EventLogs returns event logs matching the filter.
func (c *Client) EventLogs(ctx context.Context, chainID string, filter LogFilter) *EventLogsResult {
	out := &EventLogsResult{Address: filter.Address, Network: c.network(chainID)}

	params := url.Values{}
	params.Set("module", "logs")
	params.Set("action", "getLogs")
	if filter.Address != "" {
		params.Set("address", filter.Address)
	}
	fromBlock := filter.FromBlock
	if fromBlock == "" {
		fromBlock = "0"
	}
	toBlock := filter.ToBlock
	if toBlock == "" {
		toBlock = "latest"
	}
	params.Set("fromBlock", fromBlock)
	params.Set("toBlock", toBlock)
	if filter.Topic0 != "" {
		params.Set("topic0", filter.Topic0)
	}
	if filter.Topic1 != "" {
		params.Set("topic1", filter.Topic1)
		if filter.Topic0 != "" {
			params.Set("topic0_1_opr", "and")
		}
	}
	if filter.Page != "" {
		params.Set("page", filter.Page)
	}
	if filter.Offset != "" {
		params.Set("offset", filter.Offset)
	}

	raw, err := c.request(ctx, chainID, params, false)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	out.Logs = raw
	return out
}
