package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// recoveryMiddleware converts handler panics into the generic error payload
// so no raw fault ever reaches the caller. Tool calls get the payload as
// their result; other methods get a plain error.
func recoveryMiddleware(logger *slog.Logger) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (result sdkmcp.Result, err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if logger != nil {
					logger.Error("recovered panic in handler", "method", method, "panic", r)
				}
				if method == "tools/call" {
					data, _ := json.Marshal(failure(fmt.Errorf("internal error")))
					result = &sdkmcp.CallToolResult{
						Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
						IsError: true,
					}
					err = nil
					return
				}
				err = fmt.Errorf("internal error")
			}()
			return next(ctx, method, req)
		}
	}
}

func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			sessionID := safeSessionID(req)
			params := formatPayload(safeParams(req))
			logger.Debug("mcp traffic", "direction", direction, "stage", "request", "method", method, "session_id", sessionID, "params", params)

			result, err := next(ctx, method, req)
			if !strings.HasPrefix(method, "notifications/") {
				if err != nil {
					logger.Debug("mcp traffic", "direction", direction, "stage", "response", "method", method, "session_id", sessionID, "result", formatPayload(result), "error", err)
				} else {
					logger.Debug("mcp traffic", "direction", direction, "stage", "response", "method", method, "session_id", sessionID, "result", formatPayload(result))
				}
			}

			return result, err
		}
	}
}

func safeSessionID(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	defer func() { recover() }()
	session := req.GetSession()
	if session == nil {
		return ""
	}
	defer func() { recover() }()
	return session.ID()
}

func safeParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
