package handler

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/jsonschema-go/jsonschema"
	jsoniter "github.com/json-iterator/go"

	"github.com/easeaico/eq-coach/internal/middleware"
)

// SolveRequest is the body of POST /solve. Data defaults to "".
type SolveRequest struct {
	Data string `json:"data"`
}

// SolveResponse is the body returned by POST /solve.
type SolveResponse struct {
	Output string `json:"output"`
}

var solveSchema = mustResolve(&jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"data": {Type: "string"},
	},
})

func mustResolve(schema *jsonschema.Schema) *jsonschema.Resolved {
	resolved, err := schema.Resolve(nil)
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return resolved
}

// decodeSolveRequest checks body against the request schema. An empty body is
// treated as an empty object.
func decodeSolveRequest(body []byte) (SolveRequest, error) {
	var req SolveRequest
	if len(body) == 0 {
		return req, nil
	}

	var instance any
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &instance); err != nil {
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := solveSchema.Validate(instance); err != nil {
		return req, fmt.Errorf("invalid request: %w", err)
	}

	if obj, ok := instance.(map[string]any); ok {
		if data, ok := obj["data"].(string); ok {
			req.Data = data
		}
	}
	return req, nil
}

// Solve handles POST /solve.
func (h *Handler) Solve(c *fiber.Ctx) error {
	req, err := decodeSolveRequest(c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	result := h.solver.Solve(c.UserContext(), req.Data)
	slog.Info("solve completed",
		"request_id", middleware.GetRequestID(c),
		"source", result.Source,
		"category", result.Category,
		"input_len", len(req.Data),
	)

	return c.JSON(SolveResponse{Output: result.Output})
}
