package bridge

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dunkmaster/hoopstats/internal/debug"
	"github.com/dunkmaster/hoopstats/internal/query"
)

// JSON-RPC 2.0 error codes used by the bridge.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInternalError  = -32000
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *rpcError   `json:"error,omitempty"`
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// contentBlock mimics MCP tool-result content so bridge clients and MCP
// hosts see identical payloads.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callResult struct {
	Content []contentBlock `json:"content"`
	IsError bool           `json:"isError"`
}

// toolDescriptor is the tools/list entry shape.
type toolDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

// handleJSONRPC implements the four bridge methods: initialize,
// tools/list, tools/call, and shutdown. Every completed call gets a
// well-formed response; tool failures ride inside the result envelope.
func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, errorResponse(nil, codeParseError, "invalid JSON body"))
		return
	}

	switch req.Method {
	case "initialize":
		writeResponse(w, resultResponse(req.ID, map[string]interface{}{
			"protocolVersion": "2.0",
		}))

	case "tools/list":
		tools := query.Tools()
		descriptors := make([]toolDescriptor, 0, len(tools))
		for _, t := range tools {
			descriptors = append(descriptors, toolDescriptor{
				Name:        t.Name,
				Description: t.Description,
				InputSchema: t.InputSchema,
			})
		}
		writeResponse(w, resultResponse(req.ID, map[string]interface{}{
			"tools": descriptors,
		}))

	case "tools/call":
		s.handleToolsCall(w, req)

	case "shutdown":
		writeResponse(w, resultResponse(req.ID, map[string]interface{}{"ok": true}))
		select {
		case <-s.shutdown:
		default:
			close(s.shutdown)
		}

	default:
		writeResponse(w, errorResponse(req.ID, codeMethodNotFound, "Method not found"))
	}
}

func (s *Server) handleToolsCall(w http.ResponseWriter, req rpcRequest) {
	var params callParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			writeResponse(w, errorResponse(req.ID, codeInvalidRequest, "invalid params"))
			return
		}
	}

	payload, err := query.Call(s.ds, params.Name, params.Arguments)
	if err != nil {
		var unknown *query.UnknownToolError
		if errors.As(err, &unknown) {
			writeResponse(w, errorResponse(req.ID, codeMethodNotFound, unknown.Error()))
			return
		}
		debug.LogBridge("tool %s failed: %v\n", params.Name, err)
		writeResponse(w, errorResponse(req.ID, codeInternalError, err.Error()))
		return
	}

	text, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		writeResponse(w, errorResponse(req.ID, codeInternalError, err.Error()))
		return
	}

	writeResponse(w, resultResponse(req.ID, callResult{
		Content: []contentBlock{{Type: "text", Text: string(text)}},
		IsError: false,
	}))
}

func resultResponse(id, result interface{}) rpcResponse {
	return rpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func errorResponse(id interface{}, code int, message string) rpcResponse {
	return rpcResponse{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}}
}

func writeResponse(w http.ResponseWriter, resp rpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		debug.LogBridge("writing response: %v\n", err)
	}
}
